package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/workcheck/internal/config"
)

// isolateHome points $HOME at a temp dir so no real config is read.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// writeFile writes content to name inside a temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// singleStatusCatalog returns a catalog file with exactly one entry.
func singleStatusCatalog(t *testing.T, working bool, message string) string {
	t.Helper()
	w := "false"
	if working {
		w = "true"
	}
	return writeFile(t, "statuses.yaml",
		"statuses:\n  - working: "+w+"\n    message: \""+message+"\"\n    icon: Coffee\n")
}

// testConfig returns defaults with a fixed seed.
func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Seed = 42
	return cfg
}
