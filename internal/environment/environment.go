// Package environment derives hemisphere ambient lighting for the model: one tint for
// light arriving from above and one for light bouncing up from the ground. The tints
// come from a panorama image when one is present, otherwise from a built-in daylight
// city preset. The panorama only lights the model; it is never drawn.
package environment

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/sirupsen/logrus"
)

// sampleWidth and sampleHeight are the size the panorama is reduced to before averaging.
const (
	sampleWidth  = 64
	sampleHeight = 32
)

// Paths are tried in order so the panorama is found from the repo root or cmd/kickslab.
var Paths = []string{
	"assets/environment/city.png",
	"assets/environment/city.jpg",
	"../../assets/environment/city.png",
	"../../assets/environment/city.jpg",
}

// Environment is a pair of ambient tints.
type Environment struct {
	Sky    color.RGBA
	Ground color.RGBA
}

// City is a cool overcast sky over warm pavement.
var City = Environment{
	Sky:    color.RGBA{R: 236, G: 241, B: 250, A: 255},
	Ground: color.RGBA{R: 206, G: 198, B: 186, A: 255},
}

// FromImage averages the upper half of an equirectangular panorama into Sky and the
// lower half into Ground.
func FromImage(img image.Image) Environment {
	small := transform.Resize(img, sampleWidth, sampleHeight, transform.Linear)
	return Environment{
		Sky:    average(small, 0, sampleHeight/2),
		Ground: average(small, sampleHeight/2, sampleHeight),
	}
}

func average(img *image.RGBA, y0, y1 int) color.RGBA {
	var r, g, b, n uint64
	for y := y0; y < y1; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			c := img.RGBAAt(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}

// Load decodes the panorama at path.
func Load(path string) (Environment, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return Environment{}, fmt.Errorf("environment: %w", err)
	}
	return FromImage(img), nil
}

// Resolve returns the environment of the first panorama in paths that exists, or City.
// An unreadable panorama is logged and City is used.
func Resolve(paths []string, log *logrus.Entry) Environment {
	for _, p := range paths {
		p = filepath.Clean(p)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		env, err := Load(p)
		if err != nil {
			log.WithError(err).Warn("environment unreadable, using city preset")
			return City
		}
		log.WithField("path", p).Info("environment loaded")
		return env
	}
	return City
}

// Vec returns c as normalized RGB.
func Vec(c color.RGBA) [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
