package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"kicks-lab/internal/appconfig"
	"kicks-lab/internal/download"
	"kicks-lab/internal/googlefonts"
)

// FontsDir is where fetched fonts are stored.
const FontsDir = "assets/fonts"

// FetchFont downloads a Google Fonts family into FontsDir and makes it the UI font in the
// prefs file at prefsPath. It returns the saved font path.
func FetchFont(ctx context.Context, prefsPath, family string) (string, error) {
	if prefsPath == "" {
		prefsPath = appconfig.DefaultPath
	}
	u, err := googlefonts.Client{}.DownloadURLByFamily(ctx, family)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(FontsDir, strings.ReplaceAll(strings.TrimSpace(family), " ", "_"))
	saved, err := download.Fetcher{}.Fetch(ctx, u, dir)
	if err != nil {
		return "", err
	}
	if err := appconfig.Update(prefsPath, func(p *appconfig.Prefs) { p.FontName = saved }); err != nil {
		return "", fmt.Errorf("app: %w", err)
	}
	return saved, nil
}
