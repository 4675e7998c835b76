// Package cursor builds the pointer icons shown over the shoe. Each icon is an SVG
// document (usable directly as a CSS cursor through a base64 data URI) and can be
// rasterized for windows that draw their own cursor.
package cursor

import (
	"encoding/base64"
	"fmt"
	"html"
)

// Size is the width and height of every icon in pixels.
const Size = 64

const (
	ringPath  = `<path fill="rgba(255, 255, 255, 0.5)" d="M29.5 54C43.031 54 54 43.031 54 29.5S43.031 5 29.5 5 5 15.969 5 29.5 15.969 54 29.5 54z" stroke="#000"/>`
	arrowPath = `<path d="M2 2l11 2.947L4.947 13 2 2z" fill="#000"/>`
	discDefs  = `<defs><clipPath id="clip0"><path fill="#fff" d="M0 0h64v64H0z"/></clipPath>` +
		`<filter id="filter0_d" x="6" y="8" width="47" height="47" filterUnits="userSpaceOnUse" color-interpolation-filters="sRGB">` +
		`<feFlood flood-opacity="0" result="BackgroundImageFix"/>` +
		`<feColorMatrix in="SourceAlpha" values="0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 127 0"/>` +
		`<feOffset dy="2"/><feGaussianBlur stdDeviation="3"/>` +
		`<feColorMatrix values="0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0.15 0"/>` +
		`<feBlend in2="BackgroundImageFix" result="effect1_dropShadow"/>` +
		`<feBlend in="SourceGraphic" in2="effect1_dropShadow" result="shape"/></filter></defs>`
)

// Icon is one cursor image. Label and Fill are empty for the neutral icon.
type Icon struct {
	Label string
	Fill  string
	SVG   string
}

// ForRegion returns the icon shown while hovering a region: the ring, an inner disc in
// the region's current color and the region name under the arrow.
func ForRegion(label, fill string) Icon {
	svg := fmt.Sprintf(`<svg width="%d" height="%d" fill="none" xmlns="http://www.w3.org/2000/svg">`+
		`<g clip-path="url(#clip0)">%s`+
		`<g filter="url(#filter0_d)"><path d="M29.5 47C39.165 47 47 39.165 47 29.5S39.165 12 29.5 12 12 19.835 12 29.5 19.835 47 29.5 47z" fill="%s"/></g>`+
		`%s<text fill="#000" style="white-space:pre" font-family="Inter var, sans-serif" font-size="10" letter-spacing="-.01em"><tspan x="35" y="63">%s</tspan></text></g>`+
		`%s</svg>`,
		Size, Size, ringPath, html.EscapeString(fill), arrowPath, html.EscapeString(label), discDefs)
	return Icon{Label: label, Fill: fill, SVG: svg}
}

// Neutral returns the icon shown after the pointer leaves every region.
func Neutral() Icon {
	svg := fmt.Sprintf(`<svg width="%d" height="%d" fill="none" xmlns="http://www.w3.org/2000/svg">%s%s</svg>`,
		Size, Size, ringPath, arrowPath)
	return Icon{SVG: svg}
}

// DataURI returns the SVG as a base64 data URI.
func (i Icon) DataURI() string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(i.SVG))
}

// CSS returns a value for the CSS cursor property, falling back to the default cursor.
func (i Icon) CSS() string {
	return "url('" + i.DataURI() + "'), auto"
}

// IsNeutral reports whether i is the icon without a region.
func (i Icon) IsNeutral() bool {
	return i.Label == ""
}
