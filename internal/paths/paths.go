package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// DefaultStateDir returns the default tiler state directory.
func DefaultStateDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".local", "state", "tiler"), nil
}

// DefaultEventsDir returns the default directory for workspace event logs.
func DefaultEventsDir() (string, error) {
	stateDir, err := DefaultStateDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(stateDir, "events"), nil
}

// DefaultConfigPath returns the path of the global config file.
func DefaultConfigPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "tiler", "config.toml"), nil
}

// ResolveWithDefault returns override when set, otherwise the result of fallback.
func ResolveWithDefault(override string, fallback func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return fallback()
}
