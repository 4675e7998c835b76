// Package layout splits the window between the 3D viewport and the side panel.
package layout

import "image"

const (
	// PanelWidth is the side panel width on wide windows.
	PanelWidth = 280
	// NarrowWidth is the window width below which the panel moves under the viewport.
	NarrowWidth = 768
)

// Narrow reports whether a window of width w uses the stacked layout.
func Narrow(w int) bool {
	return w < NarrowWidth
}

// Split returns the viewport and panel rectangles for a w x h window. Wide windows put
// the panel on the right; narrow ones stack the viewport over the panel in equal halves.
// The two rectangles never overlap and together cover the window.
func Split(w, h int) (viewport, panel image.Rectangle) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if Narrow(w) {
		mid := h / 2
		return image.Rect(0, 0, w, mid), image.Rect(0, mid, w, h)
	}
	split := w - PanelWidth
	return image.Rect(0, 0, split, h), image.Rect(split, 0, w, h)
}
