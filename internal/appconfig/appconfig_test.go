package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	assert.Equal(t, 1500*time.Millisecond, p.ExportDelay())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": true, "export_delay_ms": 200}`), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
	assert.Equal(t, 200*time.Millisecond, p.ExportDelay())
	assert.Equal(t, "assets/shoe.glb", p.ModelPath)
}

func TestLoad_InvalidFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KICKS_MODEL", "https://example.com/shoe.glb")
	t.Setenv("KICKS_GRID", "true")
	t.Setenv("KICKS_WIDTH", "640")

	p, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/shoe.glb", p.ModelPath)
	assert.True(t, p.GridVisible)
	assert.Equal(t, 640, p.Width)
	assert.Equal(t, 800, p.Height)
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("KICKS_WIDTH", "wide")
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	p := Default()
	p.ShowMemAlloc = true
	p.DownloadDir = "/tmp/shots"
	require.NoError(t, Save(path, p))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestClone_Independent(t *testing.T) {
	p := Default()
	c := p.Clone()
	c.ShowFPS = true
	assert.False(t, p.ShowFPS)
	assert.Equal(t, p.ModelPath, c.ModelPath)
}

func TestResolveDownloadDir_Configured(t *testing.T) {
	p := Default()
	p.DownloadDir = "/srv/out"
	assert.Equal(t, "/srv/out", p.ResolveDownloadDir())
	p.DownloadDir = ""
	assert.NotEmpty(t, p.ResolveDownloadDir())
}

func TestUpdate_KeepsOverridesOutOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 1024, "show_fps": false}`), 0644))
	t.Setenv("KICKS_MODEL", "https://example.com/once.glb")
	t.Setenv("KICKS_WIDTH", "640")

	running, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 640, running.Width)

	require.NoError(t, Update(path, func(p *Prefs) { p.ShowFPS = true }))

	stored := LoadFile(path)
	assert.True(t, stored.ShowFPS)
	assert.Equal(t, 1024, stored.Width)
	assert.Equal(t, Default().ModelPath, stored.ModelPath)
}

func TestLoadFile_IgnoresEnvironment(t *testing.T) {
	t.Setenv("KICKS_GRID", "true")
	p := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, Default(), p)
}
