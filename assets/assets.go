// Package assets embeds fallbacks for files normally read from disk.
package assets

import _ "embed"

// PanelCSS is the side panel stylesheet shipped in ui/panel.css.
//
//go:embed ui/panel.css
var PanelCSS string
