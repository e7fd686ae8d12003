// Package paths resolves the default locations of tasker's files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataFile returns the default store file path,
// $XDG_DATA_HOME/tasker/tasks.json with the ~/.local/share fallback.
func DefaultDataFile() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tasker", "tasks.json"), nil
}

// GlobalConfigFile returns the global config file path,
// ~/.config/tasker/config.toml.
func GlobalConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tasker", "config.toml"), nil
}
