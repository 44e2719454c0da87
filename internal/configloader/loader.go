// Package configloader discovers and loads the optional docfmt config file.
// Discovery looks for a project config in the working directory; an explicit
// --config path skips discovery. Absent config means defaults.
package configloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/docfmt/pkg/config"
)

// configFileNames are the project config file names searched for, in order
// of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".docfmt.yml",
	".docfmt.yaml",
	"docfmt.yml",
	"docfmt.yaml",
}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory searched for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, it must exist and discovery is skipped.
	ExplicitPath string
}

// LoadResult holds the resolved configuration and its provenance.
type LoadResult struct {
	// Config is the final configuration, defaults merged with file values.
	Config *config.Config

	// LoadedFrom is the config file path that was read, or empty when the
	// configuration is all defaults.
	LoadedFrom string
}

// Load resolves the configuration. File values overlay defaults; missing
// keys keep their default values. The file is validated after merging.
func Load(opts LoadOptions) (*LoadResult, error) {
	cfg := config.NewConfig()
	result := &LoadResult{Config: cfg}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return result, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	result.LoadedFrom = path
	return result, nil
}

// resolvePath returns the config file to load, or empty when none applies.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	for _, name := range configFileNames {
		candidate := filepath.Join(workDir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

// decodeStrict parses YAML rejecting unknown keys, so typos in option names
// surface as errors instead of silently applying defaults.
func decodeStrict(data []byte, cfg *config.Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		// Empty file means all defaults.
		return nil
	}
	return err
}
