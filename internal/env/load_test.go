package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, Load(""))
}

func TestLoad_SetsUnsetVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# prefs\nKICKS_TEST_A=\"quoted\"\nKICKS_TEST_B=file\n"), 0644))
	t.Setenv("KICKS_TEST_B", "process")
	t.Setenv("KICKS_TEST_A", "")
	require.NoError(t, os.Unsetenv("KICKS_TEST_A"))

	require.NoError(t, Load(path))
	assert.Equal(t, "quoted", os.Getenv("KICKS_TEST_A"))
	assert.Equal(t, "process", os.Getenv("KICKS_TEST_B"))
}
