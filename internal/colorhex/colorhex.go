// Package colorhex converts between CSS-style hex strings and image/color values.
package colorhex

import (
	"fmt"
	"image/color"
	"strings"
)

// Parse parses #RGB, #RGBA, #RRGGBB or #RRGGBBAA. The leading # is required.
// Alpha defaults to 255.
func Parse(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{A: 255}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := nibble(hex[i]); !ok {
			return color.RGBA{A: 255}, false
		}
	}
	short := func(i int) uint8 {
		v, _ := nibble(hex[i])
		return v * 17
	}
	long := func(i int) uint8 {
		hi, _ := nibble(hex[i])
		lo, _ := nibble(hex[i+1])
		return hi<<4 | lo
	}
	switch len(hex) {
	case 3:
		return color.RGBA{R: short(0), G: short(1), B: short(2), A: 255}, true
	case 4:
		return color.RGBA{R: short(0), G: short(1), B: short(2), A: short(3)}, true
	case 6:
		return color.RGBA{R: long(0), G: long(2), B: long(4), A: 255}, true
	case 8:
		return color.RGBA{R: long(0), G: long(2), B: long(4), A: long(6)}, true
	}
	return color.RGBA{A: 255}, false
}

// Format returns c as lower-case #rrggbb. Alpha is dropped.
func Format(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Normalize parses s and formats it back, so "#FFF" becomes "#ffffff".
func Normalize(s string) (string, bool) {
	c, ok := Parse(s)
	if !ok {
		return "", false
	}
	return Format(c), true
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
