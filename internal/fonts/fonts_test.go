package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("font"), 0o644))
}

func TestFindIn_PrefersRegular(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	writeFile(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	writeFile(t, filepath.Join(dir, "Inter", "LICENSE.txt"))

	got, err := FindIn([]string{filepath.Join(dir, "missing"), dir}, "inter")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)
}

func TestFindIn_FuzzyName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Medium.otf"))

	got, err := FindIn([]string{dir}, "Google Sans")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Medium.otf"), got)

	_, err = FindIn([]string{dir}, "Roboto")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = FindIn([]string{dir}, "  ")
	assert.Error(t, err)
}

func TestFindFont_DirectPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Custom.ttf")
	writeFile(t, path)
	got, err := FindFont(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestScanDir_OnlyFonts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.TTF"))
	writeFile(t, filepath.Join(dir, "sub", "b.otf"))
	writeFile(t, filepath.Join(dir, "c.woff"))
	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.TTF", "sub/b.otf"}, list)
}
