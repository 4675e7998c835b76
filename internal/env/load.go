package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads KEY=VALUE lines from the given file (e.g. ".env") into the process
// environment. Variables already set in the environment win over the file.
// The file may be missing; that is not an error.
func Load(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("env: %s: %w", path, err)
	}
	return nil
}
