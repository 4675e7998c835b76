package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jinzhu/copier"
)

// DefaultPath is the prefs file, relative to the process working directory.
const DefaultPath = "config/kickslab.json"

// Prefs holds application preferences. They are persisted across runs; the colors of the
// shoe are not. Every field can be overridden by a KICKS_* environment variable.
type Prefs struct {
	ModelPath      string `json:"model" env:"KICKS_MODEL"`
	ManifestPath   string `json:"manifest" env:"KICKS_MANIFEST"`
	CacheDir       string `json:"cache_dir" env:"KICKS_CACHE_DIR"`
	DownloadDir    string `json:"download_dir,omitempty" env:"KICKS_DOWNLOAD_DIR"`
	ExportDelayMS  int    `json:"export_delay_ms" env:"KICKS_EXPORT_DELAY_MS"`
	StylesheetPath string `json:"stylesheet" env:"KICKS_STYLESHEET"`
	FontName       string `json:"font,omitempty" env:"KICKS_FONT"`
	LogPath        string `json:"log_file" env:"KICKS_LOG_FILE"`
	LogLevel       string `json:"log_level" env:"KICKS_LOG_LEVEL"`
	Width          int    `json:"width" env:"KICKS_WIDTH"`
	Height         int    `json:"height" env:"KICKS_HEIGHT"`
	Fullscreen     bool   `json:"fullscreen" env:"KICKS_FULLSCREEN"`
	ShowFPS        bool   `json:"show_fps" env:"KICKS_SHOW_FPS"`
	ShowMemAlloc   bool   `json:"show_memalloc" env:"KICKS_SHOW_MEMALLOC"`
	GridVisible    bool   `json:"grid_visible" env:"KICKS_GRID"`
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		ModelPath:      "assets/shoe.glb",
		ManifestPath:   "assets/shoe.yaml",
		CacheDir:       "assets/cache",
		ExportDelayMS:  1500,
		StylesheetPath: "assets/ui/panel.css",
		LogPath:        "logs/kickslab.log",
		LogLevel:       "info",
		Width:          1280,
		Height:         800,
	}
}

// ExportDelay returns the capture delay as a duration.
func (p Prefs) ExportDelay() time.Duration {
	if p.ExportDelayMS <= 0 {
		return 1500 * time.Millisecond
	}
	return time.Duration(p.ExportDelayMS) * time.Millisecond
}

// Clone returns a deep copy, so callers can edit prefs without touching the running ones.
func (p Prefs) Clone() Prefs {
	var out Prefs
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		return p
	}
	return out
}

// Load reads prefs from path. A missing or invalid file falls back to Default() without
// creating one. Fields absent from the file keep their default. Environment overrides are
// applied last; a malformed environment value is an error.
func Load(path string) (Prefs, error) {
	p := LoadFile(path)
	if err := env.Parse(&p); err != nil {
		return Default(), fmt.Errorf("appconfig: environment: %w", err)
	}
	return p, nil
}

// LoadFile reads prefs from path like Load but without environment overrides. It is the
// starting point for edits that are written back.
func LoadFile(path string) Prefs {
	p := Default()
	if data, err := os.ReadFile(path); err == nil {
		fromFile := Default()
		if err := json.Unmarshal(data, &fromFile); err == nil {
			p = fromFile
		}
	}
	return p
}

// Update applies edit to the prefs stored at path and saves them. Environment and
// command-line overrides of the running process never reach the file.
func Update(path string, edit func(*Prefs)) error {
	p := LoadFile(path)
	edit(&p)
	if err := Save(path, p); err != nil {
		return fmt.Errorf("appconfig: save %s: %w", path, err)
	}
	return nil
}

// Save writes prefs to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveDownloadDir returns the directory screenshots go to: the configured one, else
// ~/Downloads when it exists, else the working directory.
func (p Prefs) ResolveDownloadDir() string {
	if p.DownloadDir != "" {
		return p.DownloadDir
	}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, "Downloads")
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
