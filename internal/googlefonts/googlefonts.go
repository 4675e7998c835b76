// Package googlefonts resolves a font family name to a downloadable TTF/OTF file in the
// google/fonts GitHub repository, for the panel and console text.
package googlefonts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultAPIBase lists the OFL font folders of google/fonts.
	DefaultAPIBase = "https://api.github.com/repos/google/fonts/contents/ofl"
	// DefaultRawPrefix is the only download location accepted from the listing.
	DefaultRawPrefix = "https://raw.githubusercontent.com/google/fonts/"
)

type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Client queries the folder listing. The zero value talks to GitHub with a 15s timeout.
type Client struct {
	HTTP      *http.Client
	APIBase   string
	RawPrefix string
}

func (c Client) apiBase() string {
	if c.APIBase != "" {
		return strings.TrimSuffix(c.APIBase, "/")
	}
	return DefaultAPIBase
}

func (c Client) rawPrefix() string {
	if c.RawPrefix != "" {
		return c.RawPrefix
	}
	return DefaultRawPrefix
}

// NormalizeFamily converts a display name to folder names used in google/fonts ofl.
// e.g. "Inter" -> ["inter"], "Open Sans" -> ["opensans", "open-sans"].
func NormalizeFamily(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)
	noSpaces := strings.ReplaceAll(lower, " ", "")
	withHyphens := strings.ReplaceAll(lower, " ", "-")
	out := []string{noSpaces}
	if withHyphens != noSpaces {
		out = append(out, withHyphens)
	}
	return out
}

// DownloadURL returns the raw download URL for a font file in folder. An upright style is
// preferred over italics. Only URLs under the raw prefix are returned.
func (c Client) DownloadURL(ctx context.Context, folder string) (string, error) {
	u := c.apiBase() + "/" + url.PathEscape(folder)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("font %q not found on Google Fonts", folder)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google fonts: HTTP %d", resp.StatusCode)
	}
	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	var preferred, fallback string
	for _, f := range files {
		if f.Type != "file" || f.DownloadURL == "" {
			continue
		}
		lower := strings.ToLower(f.Name)
		if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
			continue
		}
		if !strings.HasPrefix(f.DownloadURL, c.rawPrefix()) {
			continue
		}
		if strings.Contains(lower, "italic") {
			if fallback == "" {
				fallback = f.DownloadURL
			}
			continue
		}
		preferred = f.DownloadURL
		break
	}
	if preferred != "" {
		return preferred, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("no .ttf/.otf file found for %q on Google Fonts", folder)
}

// DownloadURLByFamily tries NormalizeFamily(name) variants and returns the first URL found.
func (c Client) DownloadURLByFamily(ctx context.Context, name string) (string, error) {
	candidates := NormalizeFamily(name)
	if len(candidates) == 0 {
		return "", fmt.Errorf("invalid font name")
	}
	var lastErr error
	for _, folder := range candidates {
		u, err := c.DownloadURL(ctx, folder)
		if err == nil {
			return u, nil
		}
		lastErr = err
	}
	return "", lastErr
}
