package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "gridmove"

// ConfigDir returns $XDG_CONFIG_HOME/gridmove (default ~/.config/gridmove).
func ConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/gridmove (default ~/.local/state/gridmove).
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultLogPath is where logs go when stderr is not a terminal.
func DefaultLogPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gridmove.log"), nil
}

func xdgDir(envVar string, homeRelative string) (string, error) {
	if base := os.Getenv(envVar); base != "" && filepath.IsAbs(base) {
		return filepath.Join(base, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, homeRelative, appName), nil
}
