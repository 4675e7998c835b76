// Package fonts locates TTF/OTF files for the panel and console text.
package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. Only .ttf and .otf are included. A missing dir yields no paths.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// FindFont resolves search to a font file. An existing font path is returned as is;
// otherwise BaseDirs are searched by name (see FindIn).
func FindFont(search string) (string, error) {
	if isFont(search) {
		if st, err := os.Stat(search); err == nil && !st.IsDir() {
			return search, nil
		}
	}
	return FindIn(BaseDirs(), search)
}

// FindIn searches dirs for a font file whose path matches search, e.g. "Inter",
// "Google Sans" or "Inter-Regular". When several files match, a path containing
// "Regular" wins.
func FindIn(dirs []string, search string) (string, error) {
	norm := normalizeForMatch(strings.TrimSuffix(strings.TrimSuffix(search, ".ttf"), ".otf"))
	if norm == "" {
		return "", os.ErrNotExist
	}
	var candidates []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				candidates = append(candidates, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(candidates) == 0 {
		return "", os.ErrNotExist
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(filepath.Base(c)), "regular") {
			return c, nil
		}
	}
	return candidates[0], nil
}
