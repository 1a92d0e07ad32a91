// Package testutil provides testing utilities for the kanban project.
package testutil

import (
	"path/filepath"
	"testing"
)

// SetupTestDir creates a temp directory, resolves symlinks (for macOS) and
// changes to it for the duration of the test.
// Returns the resolved temp directory path.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	// Resolve symlinks for macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err != nil {
		t.Logf("warning: could not resolve symlinks for temp dir: %v", err)
	} else {
		tmpDir = resolved
	}

	t.Chdir(tmpDir)
	return tmpDir
}

// IsolateConfig points XDG_CONFIG_HOME at an empty directory and runs the
// test from an empty working directory, so no config.yaml is found.
// Returns the config home.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	SetupTestDir(t)
	return home
}
