package cursor

import (
	"encoding/base64"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForRegion_EmbedsColorAndLabel(t *testing.T) {
	icon := ForRegion("laces", "#ff0000")
	assert.Contains(t, icon.SVG, `fill="#ff0000"`)
	assert.Contains(t, icon.SVG, `<tspan x="35" y="63">laces</tspan>`)
	assert.False(t, icon.IsNeutral())
}

func TestForRegion_EscapesValues(t *testing.T) {
	icon := ForRegion("a<b", `"><script>`)
	assert.NotContains(t, icon.SVG, "<script>")
	assert.Contains(t, icon.SVG, "a&lt;b")
}

func TestNeutral(t *testing.T) {
	icon := Neutral()
	assert.True(t, icon.IsNeutral())
	assert.NotContains(t, icon.SVG, "<text")
	assert.True(t, strings.HasPrefix(icon.SVG, `<svg width="64" height="64"`))
}

func TestCSS_DataURIRoundTrip(t *testing.T) {
	icon := ForRegion("sole", "#123456")
	css := icon.CSS()
	require.True(t, strings.HasPrefix(css, "url('data:image/svg+xml;base64,"))
	require.True(t, strings.HasSuffix(css, "'), auto"))

	encoded := strings.TrimSuffix(strings.TrimPrefix(css, "url('data:image/svg+xml;base64,"), "'), auto")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, icon.SVG, string(decoded))
}

func TestRaster_InnerDiscUsesFill(t *testing.T) {
	img := ForRegion("mesh", "#00ff00").Raster()
	require.Equal(t, Size, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(29, 29))
	// Arrow tip is opaque black.
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(4, 4))
	// Outside the ring is transparent.
	assert.Equal(t, uint8(0), img.RGBAAt(62, 2).A)
}

func TestRaster_NeutralHasTranslucentCenter(t *testing.T) {
	img := Neutral().Raster()
	c := img.RGBAAt(29, 29)
	assert.InDelta(t, 128, int(c.A), 2)
}

func TestRaster_InvalidFillSkipsDisc(t *testing.T) {
	img := ForRegion("band", "chartreuse-ish").Raster()
	c := img.RGBAAt(29, 29)
	assert.InDelta(t, 128, int(c.A), 2)
}
