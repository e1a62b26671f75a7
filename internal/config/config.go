package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Backend names.
const (
	BackendExec = "exec"
	BackendX11  = "x11"
)

// Tools names the external binaries used by the exec backend. Each entry is
// either a bare name looked up in PATH or an absolute path.
type Tools struct {
	Enumerator string `yaml:"enumerator"` // lists displays (xrandr)
	Activator  string `yaml:"activator"`  // prints the active window id (xdotool)
	Geometry   string `yaml:"geometry"`   // prints window geometry (xwininfo)
	Controller string `yaml:"controller"` // changes window state/geometry (wmctrl)
	KeySim     string `yaml:"keysim"`     // synthesizes key presses (xdotool)
}

// SnapKeys are replayed after the resize to re-apply the desktop's own
// half-screen snap.
type SnapKeys struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Config holds the application configuration.
type Config struct {
	Backend     string   `yaml:"backend"`
	Tools       Tools    `yaml:"tools"`
	RestoreSnap bool     `yaml:"restore_snap"`
	SnapKeys    SnapKeys `yaml:"snap_keys"`
	Display     string   `yaml:"display,omitempty"`
	XAuthority  string   `yaml:"xauthority,omitempty"`
	LogLevel    string   `yaml:"log_level"`
	LogFile     string   `yaml:"log_file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend: BackendExec,
		Tools: Tools{
			Enumerator: "xrandr",
			Activator:  "xdotool",
			Geometry:   "xwininfo",
			Controller: "wmctrl",
			KeySim:     "xdotool",
		},
		RestoreSnap: true,
		SnapKeys: SnapKeys{
			Left:  "super+Left",
			Right: "super+Right",
		},
		LogLevel: "info",
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendExec, BackendX11:
	default:
		return &ValidationError{Path: "backend", Err: fmt.Errorf("backend must be one of: exec, x11")}
	}

	tools := []struct {
		path  string
		value string
	}{
		{"tools.enumerator", c.Tools.Enumerator},
		{"tools.activator", c.Tools.Activator},
		{"tools.geometry", c.Tools.Geometry},
		{"tools.controller", c.Tools.Controller},
		{"tools.keysim", c.Tools.KeySim},
	}
	for _, tool := range tools {
		if strings.TrimSpace(tool.value) == "" {
			return &ValidationError{Path: tool.path, Err: fmt.Errorf("tool path must not be empty")}
		}
	}

	if c.RestoreSnap {
		if strings.TrimSpace(c.SnapKeys.Left) == "" {
			return &ValidationError{Path: "snap_keys.left", Err: fmt.Errorf("snap key is required when restore_snap is enabled")}
		}
		if strings.TrimSpace(c.SnapKeys.Right) == "" {
			return &ValidationError{Path: "snap_keys.right", Err: fmt.Errorf("snap key is required when restore_snap is enabled")}
		}
	}

	if _, ok := parseLogLevel(c.LogLevel); !ok {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

// SlogLevel maps log_level onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLogLevel(c.LogLevel)
	return level
}

func parseLogLevel(s string) (slog.Level, bool) {
	switch s {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
