// Package style parses the panel stylesheet and resolves node styles. Only the small CSS
// subset the panel uses is understood: .class, #id and bare type selectors, and a handful
// of properties.
package style

import (
	"image/color"
	"strconv"
	"strings"

	"kicks-lab/internal/colorhex"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel", "#picker" or "button"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Align is horizontal text alignment inside a node.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Computed holds resolved values used for drawing.
// LeftPct/TopPct: 0–100 for percentage positioning inside the container; -1 means use
// Left/Top as pixels. WidthPct and HeightPct work the same way for the size.
type Computed struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	WidthPct   int32
	HeightPct  int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
	Radius     float32
	TextAlign  Align
}

// Default returns a minimal style: transparent background, black text, no border, zero size.
func Default() Computed {
	return Computed{
		Background: color.RGBA{},
		Color:      color.RGBA{A: 255},
		Border:     color.RGBA{A: 255},
		LeftPct:    -1,
		TopPct:     -1,
		WidthPct:   -1,
		HeightPct:  -1,
		Padding:    4,
		FontSize:   20,
	}
}

// ParseHexColor parses #RGB, #RRGGBB (and forms with alpha) into an RGBA color.
func ParseHexColor(s string) (color.RGBA, bool) {
	return colorhex.Parse(s)
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100).
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// Resolve builds a Computed style from a merged property map (e.g. from matching rules).
func Resolve(props map[string]string) Computed {
	out := Default()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if pct, ok := ParsePct(v); ok {
				out.WidthPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if pct, ok := ParsePct(v); ok {
				out.HeightPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "border-radius":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Radius = float32(n)
			}
		case "text-align":
			switch v {
			case "center":
				out.TextAlign = AlignCenter
			case "right":
				out.TextAlign = AlignRight
			default:
				out.TextAlign = AlignLeft
			}
		}
	}
	return out
}

// Match merges the properties of every rule whose selector matches the node's type,
// class or id. Later rules win.
func (s *Stylesheet) Match(typ, class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		sel := rule.Selector
		var matches bool
		switch {
		case strings.HasPrefix(sel, "."):
			matches = class != "" && hasClass(class, sel[1:])
		case strings.HasPrefix(sel, "#"):
			matches = id != "" && sel[1:] == id
		default:
			matches = typ != "" && sel == typ
		}
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// hasClass reports whether the space-separated class list contains name.
func hasClass(list, name string) bool {
	for _, c := range strings.Fields(list) {
		if c == name {
			return true
		}
	}
	return false
}
