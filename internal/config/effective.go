package config

import (
	"fmt"
	"strings"
)

// Environment variables that override the file. Values are trimmed; empty
// values are ignored.
const (
	EnvEnumerator = "GRIDMOVE_ENUMERATOR"
	EnvActivator  = "GRIDMOVE_ACTIVATOR"
	EnvGeometry   = "GRIDMOVE_GEOMETRY"
	EnvController = "GRIDMOVE_CONTROLLER"
	EnvKeySim     = "GRIDMOVE_KEYSIM"
	EnvBackend    = "GRIDMOVE_BACKEND"
	EnvLogLevel   = "GRIDMOVE_LOG_LEVEL"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Source.Kind == SourceEnv && e.Source.Name != "" {
		return fmt.Sprintf("%s (from $%s): %v", e.Path, e.Source.Name, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig applies raw on top of DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.Backend != nil {
		cfg.Backend = *raw.Backend
	}
	if raw.Tools != nil {
		setString(&cfg.Tools.Enumerator, raw.Tools.Enumerator)
		setString(&cfg.Tools.Activator, raw.Tools.Activator)
		setString(&cfg.Tools.Geometry, raw.Tools.Geometry)
		setString(&cfg.Tools.Controller, raw.Tools.Controller)
		setString(&cfg.Tools.KeySim, raw.Tools.KeySim)
	}
	if raw.RestoreSnap != nil {
		cfg.RestoreSnap = *raw.RestoreSnap
	}
	if raw.SnapKeys != nil {
		setString(&cfg.SnapKeys.Left, raw.SnapKeys.Left)
		setString(&cfg.SnapKeys.Right, raw.SnapKeys.Right)
	}
	setString(&cfg.Display, raw.Display)
	setString(&cfg.XAuthority, raw.XAuthority)
	setString(&cfg.LogLevel, raw.LogLevel)
	setString(&cfg.LogFile, raw.LogFile)

	return cfg
}

// applyEnvOverrides overwrites cfg from the environment and records the
// variable that supplied each overridden path.
func applyEnvOverrides(cfg *Config, lookup func(string) (string, bool), sources map[string]Source) {
	overrides := []struct {
		env    string
		path   string
		target *string
	}{
		{EnvEnumerator, "tools.enumerator", &cfg.Tools.Enumerator},
		{EnvActivator, "tools.activator", &cfg.Tools.Activator},
		{EnvGeometry, "tools.geometry", &cfg.Tools.Geometry},
		{EnvController, "tools.controller", &cfg.Tools.Controller},
		{EnvKeySim, "tools.keysim", &cfg.Tools.KeySim},
		{EnvBackend, "backend", &cfg.Backend},
		{EnvLogLevel, "log_level", &cfg.LogLevel},
	}
	for _, o := range overrides {
		value, ok := lookup(o.env)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		*o.target = value
		sources[o.path] = Source{Kind: SourceEnv, Name: o.env}
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
