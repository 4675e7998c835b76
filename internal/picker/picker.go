// Package picker holds the state behind the color picker panel. It reads the selected
// region from the store and writes edits back under that region's key.
package picker

import (
	"image/color"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kicks-lab/internal/colorhex"
	"kicks-lab/internal/store"
)

// Placeholder is the label shown while no region is selected.
const Placeholder = "Choose"

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Panel binds the picker to the store.
type Panel struct {
	store *store.Store
	title cases.Caser
}

// New returns a picker panel over s.
func New(s *store.Store) *Panel {
	return &Panel{store: s, title: cases.Title(language.English)}
}

// Active reports whether a region is selected, i.e. whether the picker is shown.
func (p *Panel) Active() bool {
	_, ok := p.store.Selection()
	return ok
}

// Label returns the selected region's name capitalized, or Placeholder.
func (p *Panel) Label() string {
	r, ok := p.store.Selection()
	if !ok {
		return Placeholder
	}
	return p.title.String(string(r))
}

// Value returns the selected region's color for display. A stored value that is not a
// hex color shows as white. ok is false when nothing is selected.
func (p *Panel) Value() (c color.RGBA, ok bool) {
	v, ok := p.store.SelectedColor()
	if !ok {
		return color.RGBA{}, false
	}
	if c, parsed := colorhex.Parse(v); parsed {
		return c, true
	}
	return white, true
}

// Hex returns the raw stored value of the selected region, or "".
func (p *Panel) Hex() string {
	v, _ := p.store.SelectedColor()
	return v
}

// Apply writes c as #rrggbb under the selected region. It reports whether the store
// changed; with no selection, or when c is already the stored color, nothing happens.
func (p *Panel) Apply(c color.RGBA) bool {
	cur, ok := p.Value()
	if !ok {
		return false
	}
	if cur.R == c.R && cur.G == c.G && cur.B == c.B {
		if v, _ := p.store.SelectedColor(); v == colorhex.Format(c) {
			return false
		}
	}
	return p.store.SetSelectedColor(colorhex.Format(c))
}
