// Package shadow generates the soft contact shadow texture drawn under the shoe.
package shadow

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
)

// Options shape the shadow texture. Opacity is applied to the darkest point; Blur is the
// Gaussian radius in pixels.
type Options struct {
	Size    int
	Radius  float64
	Blur    float64
	Opacity float64
}

// DefaultOptions matches a shadow of opacity 0.25 and a 1.5 world-unit blur on a 10-unit plane.
func DefaultOptions() Options {
	return Options{Size: 256, Radius: 0.22, Blur: 12, Opacity: 0.25}
}

// Image returns a square black texture whose alpha falls off from a central ellipse.
// Radius is relative to Size; the ellipse is twice as wide as it is deep, like a shoe's
// footprint.
func Image(opts Options) *image.RGBA {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	if opts.Opacity <= 0 || opts.Opacity > 1 {
		opts.Opacity = 1
	}
	n := opts.Size
	src := image.NewRGBA(image.Rect(0, 0, n, n))
	alpha := uint8(opts.Opacity * 255)
	cx, cy := float64(n)/2, float64(n)/2
	rx := opts.Radius * float64(n)
	ry := rx / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				src.SetRGBA(x, y, color.RGBA{A: alpha})
			}
		}
	}
	if opts.Blur <= 0 {
		return src
	}
	return blur.Gaussian(src, opts.Blur)
}

// Scale returns how much the shadow shrinks as the shoe rises: 1 at rest, smaller as
// height grows, never below 0.5.
func Scale(height float32) float32 {
	s := 1 - height
	if s < 0.5 {
		return 0.5
	}
	if s > 1 {
		return 1
	}
	return s
}
