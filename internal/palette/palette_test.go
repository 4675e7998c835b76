package palette

import (
	"image/color"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kicks-lab/internal/store"
)

func newPalette(t *testing.T) (*Palette, *store.Store, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	s := store.New()
	p := New(s, logrus.NewEntry(log))
	t.Cleanup(p.Close)
	return p, s, hook
}

func TestDrain_FirstCallHasAllRegions(t *testing.T) {
	p, _, _ := newPalette(t)
	got := p.Drain()
	require.Len(t, got, len(store.Regions))
	for _, r := range store.Regions {
		assert.Equal(t, Fallback, got[r])
	}
	assert.Nil(t, p.Drain())
}

func TestDrain_OnlyChangedRegions(t *testing.T) {
	p, s, _ := newPalette(t)
	p.Drain()

	require.NoError(t, s.SetColor(store.Stripes, "#ff0000"))
	got := p.Drain()
	assert.Equal(t, map[store.Region]color.RGBA{store.Stripes: {R: 255, A: 255}}, got)

	// Unchanged writes do not mark the region.
	require.NoError(t, s.SetColor(store.Stripes, "#ff0000"))
	assert.Nil(t, p.Drain())
}

func TestResolve_WarnsOncePerValue(t *testing.T) {
	p, s, hook := newPalette(t)
	p.Drain()

	require.NoError(t, s.SetColor(store.Sole, "tomato"))
	assert.Equal(t, Fallback, p.Drain()[store.Sole])
	require.NoError(t, s.SetColor(store.Band, "tomato"))
	assert.Equal(t, Fallback, p.Drain()[store.Band])

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "tomato", hook.LastEntry().Data["value"])
}

func TestClose_StopsTracking(t *testing.T) {
	p, s, _ := newPalette(t)
	p.Drain()
	p.Close()
	require.NoError(t, s.SetColor(store.Caps, "#000"))
	assert.Nil(t, p.Drain())
}
