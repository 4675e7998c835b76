// Package download fetches remote assets (models, fonts) into a local cache directory.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "kicks-lab/1.0"
)

// IsRemote reports whether path is an http(s) URL rather than a local file.
func IsRemote(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetcher downloads asset files. The zero value uses a client with a 60s timeout.
type Fetcher struct {
	Client *http.Client
}

// Fetch downloads rawURL into destDir and returns the saved path. A file already cached
// under the same name is reused without a request. The file is written to a temporary
// name first so a failed download never leaves a truncated file behind.
func (f Fetcher) Fetch(ctx context.Context, rawURL, destDir string) (savedPath string, err error) {
	name := sanitizeFilename(filenameFromURL(rawURL))
	if ext := extensionFromURL(rawURL); ext != "" && !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	if cached, ok := cachedPath(destDir, name); ok {
		return cached, nil
	}
	savedPath = filepath.Join(destDir, name)

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: %s: HTTP %d", rawURL, resp.StatusCode)
	}
	if !strings.Contains(name, ".") {
		if ext := extensionFromContentType(resp.Header.Get("Content-Type")); ext != "" {
			name += ext
			savedPath = filepath.Join(destDir, name)
		}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	tmp, err := os.CreateTemp(destDir, name+".*.part")
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if err := os.Rename(tmp.Name(), savedPath); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	return savedPath, nil
}

// contentTypeExts are the extensions extensionFromContentType can add.
var contentTypeExts = []string{".glb", ".gltf", ".ttf", ".otf"}

// cachedPath finds a previous download of name in dir. A name without an extension may
// have been saved with one taken from the response Content-Type.
func cachedPath(dir, name string) (string, bool) {
	candidates := []string{name}
	if !strings.Contains(name, ".") {
		for _, ext := range contentTypeExts {
			candidates = append(candidates, name+ext)
		}
	}
	for _, c := range candidates {
		p := filepath.Join(dir, c)
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() && st.Size() > 0 {
			return p, true
		}
	}
	return "", false
}

func extensionFromContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	switch ct {
	case "model/gltf-binary":
		return ".glb"
	case "model/gltf+json":
		return ".gltf"
	case "font/ttf":
		return ".ttf"
	case "font/otf":
		return ".otf"
	}
	return ""
}

func extensionFromURL(rawURL string) string {
	path := rawURL
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb", ".gltf", ".bin", ".yaml", ".yml", ".ttf", ".otf":
		return ext
	}
	return ""
}

func filenameFromURL(rawURL string) string {
	path := rawURL
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	if name == "" || name == "." || name == "/" {
		return "model"
	}
	name = safeNameRe.ReplaceAllString(name, "_")
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
