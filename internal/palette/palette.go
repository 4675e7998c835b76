// Package palette turns store colors into render colors. It remembers which regions
// changed since the last frame so materials are only rewritten when needed.
package palette

import (
	"image/color"
	"sync"

	"github.com/sirupsen/logrus"

	"kicks-lab/internal/colorhex"
	"kicks-lab/internal/store"
)

// Fallback is used for stored values that are not hex colors.
var Fallback = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Palette watches the store and hands out the colors of changed regions.
type Palette struct {
	store *store.Store
	log   *logrus.Entry

	mu     sync.Mutex
	dirty  map[store.Region]bool
	warned map[string]bool
	sub    store.Subscription
}

// New returns a palette over s with every region marked changed, so the first Drain
// yields all eight colors.
func New(s *store.Store, log *logrus.Entry) *Palette {
	p := &Palette{
		store:  s,
		log:    log,
		dirty:  make(map[store.Region]bool, len(store.Regions)),
		warned: make(map[string]bool),
	}
	for _, r := range store.Regions {
		p.dirty[r] = true
	}
	p.sub = s.OnAnyColor(func(r store.Region, _ string) {
		p.mu.Lock()
		p.dirty[r] = true
		p.mu.Unlock()
	})
	return p
}

// Drain returns the resolved colors of the regions changed since the previous call.
func (p *Palette) Drain() map[store.Region]color.RGBA {
	p.mu.Lock()
	changed := make([]store.Region, 0, len(p.dirty))
	for r := range p.dirty {
		changed = append(changed, r)
	}
	clear(p.dirty)
	p.mu.Unlock()

	if len(changed) == 0 {
		return nil
	}
	out := make(map[store.Region]color.RGBA, len(changed))
	for _, r := range changed {
		out[r] = p.Resolve(r, p.store.Color(r))
	}
	return out
}

// Resolve parses value, falling back to white. The warning for a given bad value is
// logged once.
func (p *Palette) Resolve(r store.Region, value string) color.RGBA {
	if c, ok := colorhex.Parse(value); ok {
		return c
	}
	p.mu.Lock()
	seen := p.warned[value]
	p.warned[value] = true
	p.mu.Unlock()
	if !seen {
		p.log.WithFields(logrus.Fields{"region": r, "value": value}).Warn("not a hex color, using white")
	}
	return Fallback
}

// Close stops watching the store.
func (p *Palette) Close() {
	p.sub.Cancel()
}
