package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// homeDirs are the directories tilectl expects under $HOME.
var homeDirs = [][]string{
	{".local", "state", "tiler", "events"},
	{".config", "tiler"},
}

// EnsureHomeDirs creates the default state, events, and config directories
// under homeDir.
func EnsureHomeDirs(homeDir string) error {
	for _, parts := range homeDirs {
		dir := filepath.Join(append([]string{homeDir}, parts...)...)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// SetupTestHome points HOME at a fresh temp directory with the default
// tiler directories in place, and returns it.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	homeDir := t.TempDir()
	if err := EnsureHomeDirs(homeDir); err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	t.Setenv("HOME", homeDir)
	return homeDir
}
