package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage_CenterDarkEdgesClear(t *testing.T) {
	img := Image(DefaultOptions())
	n := DefaultOptions().Size
	assert.Equal(t, n, img.Bounds().Dx())

	center := img.RGBAAt(n/2, n/2).A
	corner := img.RGBAAt(0, 0).A
	assert.Greater(t, center, uint8(0))
	assert.LessOrEqual(t, center, uint8(64))
	assert.Equal(t, uint8(0), corner)
}

func TestImage_NoBlurIsHardEdged(t *testing.T) {
	img := Image(Options{Size: 32, Radius: 0.25, Opacity: 1})
	assert.Equal(t, uint8(255), img.RGBAAt(16, 16).A)
	assert.Equal(t, uint8(0), img.RGBAAt(16, 2).A)
}

func TestScale(t *testing.T) {
	assert.Equal(t, float32(1), Scale(0))
	assert.InDelta(t, 0.9, Scale(0.1), 1e-6)
	assert.Equal(t, float32(0.5), Scale(3))
	assert.Equal(t, float32(1), Scale(-1))
}
