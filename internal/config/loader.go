package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
	SourceEnv     SourceKind = "env"
)

type Source struct {
	Kind   SourceKind
	Name   string // environment variable for env sources
	File   string
	Line   int
	Column int
}

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // YAML path -> where the value came from (file/env only)
	File    string            // loaded file, empty when none existed
}

// Load reads the config from the default location, applies environment
// overrides and validates the result. A missing file yields defaults.
func Load() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return load(path, false, os.LookupEnv)
}

// LoadFromPath is like Load but reads path, which must exist.
func LoadFromPath(path string) (*LoadResult, error) {
	return load(path, true, os.LookupEnv)
}

func load(path string, required bool, lookup func(string) (string, bool)) (*LoadResult, error) {
	raw := RawConfig{}
	sources := map[string]Source{}
	loadedFile := ""

	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}
	switch {
	case exists:
		fileRaw, fileSources, canon, err := loadRaw(path)
		if err != nil {
			return nil, err
		}
		raw = fileRaw
		sources = fileSources
		loadedFile = canon
	case required:
		return nil, fmt.Errorf("%s: failed to read: file does not exist", path)
	}

	cfg := BuildEffectiveConfig(raw)
	applyEnvOverrides(cfg, lookup, sources)

	if err := cfg.Validate(); err != nil {
		return nil, attachSourceContext(err, sources)
	}

	return &LoadResult{
		Config:  cfg,
		Sources: sources,
		File:    loadedFile,
	}, nil
}

func loadRaw(path string) (RawConfig, map[string]Source, string, error) {
	canon, err := canonicalPath(path)
	if err != nil {
		return RawConfig{}, nil, "", err
	}

	data, err := os.ReadFile(canon)
	if err != nil {
		return RawConfig{}, nil, "", fmt.Errorf("%s: failed to read: %w", canon, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RawConfig{}, nil, "", fmt.Errorf("%s: failed to parse yaml: %w", canon, err)
	}

	var raw RawConfig
	if err := decodeStrictYAML(data, &raw); err != nil {
		return RawConfig{}, nil, "", fmt.Errorf("%s: %w", canon, err)
	}

	return raw, collectSources(&doc, canon), canon, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Best-effort; still use abs.
		return abs, nil
	}
	return real, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func collectSources(doc *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	if doc == nil {
		return out
	}
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	collectSourcesRec(node, file, "", out)
	return out
}

func collectSourcesRec(node *yaml.Node, file string, prefix string, out map[string]Source) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		path := keyNode.Value
		if prefix != "" {
			path = prefix + "." + keyNode.Value
		}
		out[path] = Source{
			Kind:   SourceFile,
			File:   file,
			Line:   valNode.Line,
			Column: valNode.Column,
		}
		collectSourcesRec(valNode, file, path, out)
	}
}

func attachSourceContext(err error, sources map[string]Source) error {
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path == "" {
		return err
	}
	if src, ok := sources[verr.Path]; ok {
		verr.Source = src
	}
	return verr
}
