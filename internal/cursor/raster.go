package cursor

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"kicks-lab/internal/colorhex"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847

const (
	centerX, centerY = 29.5, 29.5
	ringRadius       = 24.5
	discRadius       = 17.5
	labelX, labelY   = 35, 63
)

var (
	ringFill   = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
	ringStroke = color.Black
)

// Raster draws the icon geometry into a Size x Size image. A fill that is not a hex
// color leaves the inner disc out, the way an SVG renderer treats an invalid paint.
func (i Icon) Raster() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, Size, Size))

	fillPath(dst, ringFill, func(z *vector.Rasterizer) {
		circle(z, centerX, centerY, ringRadius, false)
	})
	fillPath(dst, ringStroke, func(z *vector.Rasterizer) {
		circle(z, centerX, centerY, ringRadius+0.5, false)
		circle(z, centerX, centerY, ringRadius-0.5, true)
	})
	if !i.IsNeutral() {
		if c, ok := colorhex.Parse(i.Fill); ok {
			fillPath(dst, color.NRGBA{A: 38}, func(z *vector.Rasterizer) {
				circle(z, centerX, centerY+2, discRadius+1, false)
			})
			fillPath(dst, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, func(z *vector.Rasterizer) {
				circle(z, centerX, centerY, discRadius, false)
			})
		}
	}
	fillPath(dst, color.Black, func(z *vector.Rasterizer) {
		z.MoveTo(2, 2)
		z.LineTo(13, 4.947)
		z.LineTo(4.947, 13)
		z.ClosePath()
	})
	if i.Label != "" {
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.Black),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(labelX, labelY),
		}
		d.DrawString(i.Label)
	}
	return dst
}

func fillPath(dst draw.Image, c color.Color, build func(z *vector.Rasterizer)) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	build(z)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// circle appends a closed circle to z. reverse flips the winding so a second, smaller
// circle cuts a hole.
func circle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := r * kappa
	if !reverse {
		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}
