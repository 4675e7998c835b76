package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/shoe.glb"))
	assert.True(t, IsRemote("http://localhost:8080/a"))
	assert.False(t, IsRemote("assets/shoe.glb"))
	assert.False(t, IsRemote("/abs/shoe.glb"))
	assert.False(t, IsRemote("file:///tmp/shoe.glb"))
}

func TestFetch_SavesAndCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "model/gltf-binary")
		_, _ = w.Write([]byte("glTF-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	var f Fetcher
	path, err := f.Fetch(context.Background(), srv.URL+"/models/shoe-draco.glb?v=2", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shoe-draco.glb"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "glTF-bytes", string(data))

	_, err = f.Fetch(context.Background(), srv.URL+"/models/shoe-draco.glb?v=2", dir)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestFetch_ExtensionFromContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "model/gltf-binary")
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	path, err := Fetcher{}.Fetch(context.Background(), srv.URL+"/latest", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "latest.glb", filepath.Base(path))
}

func TestFetch_ExtensionlessURLReusesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "model/gltf-binary")
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	first, err := Fetcher{}.Fetch(context.Background(), srv.URL+"/latest", dir)
	require.NoError(t, err)
	second, err := Fetcher{}.Fetch(context.Background(), srv.URL+"/latest", dir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	_, err := Fetcher{}.Fetch(context.Background(), srv.URL+"/shoe.glb", dir)
	assert.ErrorContains(t, err, "HTTP 404")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "model", sanitizeFilename(""))
	assert.Equal(t, "a_b.glb", sanitizeFilename("a b.glb"))
}
