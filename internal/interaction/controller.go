// Package interaction connects pointer events on the shoe to the shared store and to the
// hover cursor. Hover is local to the controller; selection lives in the store.
package interaction

import (
	"github.com/sirupsen/logrus"

	"kicks-lab/internal/cursor"
	"kicks-lab/internal/pointer"
	"kicks-lab/internal/store"
)

// Controller is the pointer.Handler for the shoe group.
type Controller struct {
	store *store.Store
	log   *logrus.Entry

	hovered    store.Region
	hasHover   bool
	hoverColor store.Subscription

	icon       cursor.Icon
	customIcon bool
	iconRev    uint64
}

var _ pointer.Handler = (*Controller)(nil)

// New returns a controller writing selection into s. Until the first hover the system
// cursor is used.
func New(s *store.Store, log *logrus.Entry) *Controller {
	return &Controller{store: s, log: log}
}

// PointerEnter hovers the region under the pointer and consumes the event so regions
// behind it are not hovered too.
func (c *Controller) PointerEnter(e *pointer.Event) {
	e.StopPropagation()
	r, ok := store.ParseRegion(e.Object)
	if !ok {
		return
	}
	c.setHover(r, true)
}

// PointerLeave clears the hover only when nothing is under the pointer any more; when the
// pointer slides onto a touching region, that region's enter replaces the hover instead.
func (c *Controller) PointerLeave(e *pointer.Event) {
	if len(e.Intersections) == 0 {
		c.setHover("", false)
	}
}

// PointerDown selects the region under the pointer.
func (c *Controller) PointerDown(e *pointer.Event) {
	e.StopPropagation()
	r, ok := store.ParseRegion(e.Object)
	if !ok {
		return
	}
	if err := c.store.Select(r); err != nil {
		c.log.WithError(err).Warn("select region")
		return
	}
	c.log.WithField("region", r).Debug("region selected")
}

// PointerMissed clears the selection after a click that hit no region.
func (c *Controller) PointerMissed() {
	c.store.ClearSelection()
}

// Hover returns the hovered region.
func (c *Controller) Hover() (store.Region, bool) {
	return c.hovered, c.hasHover
}

// Cursor returns the icon to show and whether a custom icon replaces the system cursor.
func (c *Controller) Cursor() (cursor.Icon, bool) {
	return c.icon, c.customIcon
}

// CursorRevision increases every time the icon is regenerated, so a renderer can
// rebuild its texture only when needed.
func (c *Controller) CursorRevision() uint64 {
	return c.iconRev
}

func (c *Controller) setHover(r store.Region, ok bool) {
	if c.hasHover == ok && c.hovered == r {
		return
	}
	c.hoverColor.Cancel()
	c.hoverColor = store.Subscription{}
	c.hovered, c.hasHover = r, ok

	if !ok {
		c.setIcon(cursor.Neutral())
		return
	}
	c.setIcon(cursor.ForRegion(string(r), c.store.Color(r)))
	// Recolor the icon while hovering if the color is edited from elsewhere.
	c.hoverColor = c.store.OnColor(r, func(region store.Region, value string) {
		if c.hasHover && c.hovered == region {
			c.setIcon(cursor.ForRegion(string(region), value))
		}
	})
}

func (c *Controller) setIcon(icon cursor.Icon) {
	c.icon = icon
	c.customIcon = true
	c.iconRev++
}
