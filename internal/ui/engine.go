package ui

import (
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"kicks-lab/internal/ui/style"
)

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change to avoid per-frame allocations.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet        *style.Stylesheet
	nodes        []*Node
	cachedStyles []style.Computed
	cacheValid   bool
	font         rl.Font
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	sheet, err := style.Load(path)
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded or merged CSS).
func (e *Engine) SetStylesheet(sheet *style.Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	e.Unload()
	e.font = f
	return nil
}

// Font returns the loaded font; its texture ID is 0 when none is loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// Unload releases the loaded font, if any.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

func (e *Engine) resolve() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]style.Computed, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = style.Resolve(e.sheet.Match(n.Type, n.Class, n.ID))
	}
	e.cacheValid = true
}

// place resolves a node's absolute bounds inside container.
func place(n *Node, s style.Computed, container rl.Rectangle) {
	w, h := float32(s.Width), float32(s.Height)
	if s.WidthPct >= 0 {
		w = container.Width * float32(s.WidthPct) / 100
	}
	if s.HeightPct >= 0 {
		h = container.Height * float32(s.HeightPct) / 100
	}
	x, y := float32(s.Left), float32(s.Top)
	if s.LeftPct >= 0 {
		x = (container.Width - w) * float32(s.LeftPct) / 100
	}
	if s.TopPct >= 0 {
		y = (container.Height - h) * float32(s.TopPct) / 100
	}
	n.Bounds = rl.NewRectangle(container.X+x, container.Y+y, w, h)
}

// Layout resolves every node's bounds against container without drawing.
func (e *Engine) Layout(container rl.Rectangle) {
	e.resolve()
	for i, n := range e.nodes {
		place(n, e.cachedStyles[i], container)
	}
}

// Draw lays out the nodes inside container and draws background, border and text of each visible node.
func (e *Engine) Draw(container rl.Rectangle) {
	e.Layout(container)
	for i, n := range e.nodes {
		if n.Hidden {
			continue
		}
		s := e.cachedStyles[i]
		b := n.Bounds

		if s.Background.A > 0 {
			if s.Radius > 0 && b.Height > 0 {
				rl.DrawRectangleRounded(b, s.Radius*2/b.Height, 8, toRL(s.Background))
			} else {
				rl.DrawRectangleRec(b, toRL(s.Background))
			}
		}
		if s.HasBorder && b.Width > 0 && b.Height > 0 {
			if s.Radius > 0 {
				rl.DrawRectangleRoundedLinesEx(b, s.Radius*2/b.Height, 8, 1, toRL(s.Border))
			} else {
				rl.DrawRectangleLinesEx(b, 1, toRL(s.Border))
			}
		}
		if n.Text != "" {
			e.drawText(n, s)
		}
	}
}

func (e *Engine) drawText(n *Node, s style.Computed) {
	size := float32(s.FontSize)
	pad := float32(s.Padding)
	var tw float32
	if e.font.Texture.ID != 0 {
		tw = rl.MeasureTextEx(e.font, n.Text, size, 1).X
	} else {
		tw = float32(rl.MeasureText(n.Text, int32(size)))
	}
	x := n.Bounds.X + pad
	switch s.TextAlign {
	case style.AlignCenter:
		x = n.Bounds.X + (n.Bounds.Width-tw)/2
	case style.AlignRight:
		x = n.Bounds.X + n.Bounds.Width - pad - tw
	}
	y := n.Bounds.Y + pad
	if n.Bounds.Height > size {
		y = n.Bounds.Y + (n.Bounds.Height-size)/2
	}
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, n.Text, rl.NewVector2(x, y), size, 1, toRL(s.Color))
	} else {
		rl.DrawText(n.Text, int32(x), int32(y), int32(size), toRL(s.Color))
	}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func fromRL(c rl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
