package picker

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kicks-lab/internal/store"
)

func TestLabel(t *testing.T) {
	s := store.New()
	p := New(s)
	assert.Equal(t, Placeholder, p.Label())
	assert.False(t, p.Active())

	require.NoError(t, s.Select(store.Stripes))
	assert.Equal(t, "Stripes", p.Label())
	assert.True(t, p.Active())
}

func TestApply_NoSelectionIsNoop(t *testing.T) {
	s := store.New()
	p := New(s)
	assert.False(t, p.Apply(color.RGBA{R: 10, A: 255}))
	assert.Equal(t, store.New().Colors(), s.Colors())
	_, ok := p.Value()
	assert.False(t, ok)
}

func TestApply_WritesOnlySelectedRegion(t *testing.T) {
	s := store.New()
	p := New(s)
	require.NoError(t, s.Select(store.Laces))

	assert.True(t, p.Apply(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}))
	assert.Equal(t, "#123456", s.Color(store.Laces))
	for _, r := range store.Regions {
		if r != store.Laces {
			assert.Equal(t, store.DefaultColor, s.Color(r), "region %s", r)
		}
	}
	assert.Equal(t, "#123456", p.Hex())
	c, ok := p.Value()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, c)
}

func TestApply_SameColorDoesNotNotify(t *testing.T) {
	s := store.New()
	p := New(s)
	require.NoError(t, s.Select(store.Sole))
	require.True(t, p.Apply(color.RGBA{R: 1, G: 2, B: 3, A: 255}))

	calls := 0
	s.OnColor(store.Sole, func(store.Region, string) { calls++ })
	assert.False(t, p.Apply(color.RGBA{R: 1, G: 2, B: 3, A: 255}))
	assert.Zero(t, calls)
}

func TestApply_NormalizesShortDefault(t *testing.T) {
	s := store.New()
	p := New(s)
	require.NoError(t, s.Select(store.Band))
	// "#fff" displays as white; picking white stores the long form.
	assert.True(t, p.Apply(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
	assert.Equal(t, "#ffffff", s.Color(store.Band))
}

func TestValue_InvalidStoredColorShowsWhite(t *testing.T) {
	s := store.New()
	p := New(s)
	require.NoError(t, s.Select(store.Patch))
	require.NoError(t, s.SetColor(store.Patch, "sparkly"))
	c, ok := p.Value()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)
	assert.Equal(t, "sparkly", p.Hex())
}
