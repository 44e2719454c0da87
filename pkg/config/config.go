// Package config defines core configuration types for docfmt.
// These are pure data structures; discovery and parsing live in
// internal/configloader.
package config

import "fmt"

// ColorMode controls colorized terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Limits on formatting options. Values outside these ranges are rejected at
// load time rather than producing pathological output.
const (
	MinJSONIndent = 1
	MaxJSONIndent = 8

	MinTableWidth = 1
	MaxTableWidth = 16
)

// Config is the root configuration for docfmt.
type Config struct {
	// JSONIndent is the number of spaces per JSON nesting level.
	JSONIndent int `yaml:"json_indent"`

	// TableMinWidth is the minimum reflowed Markdown table column width.
	TableMinWidth int `yaml:"table_min_width"`

	// Color controls colorized diagnostic output.
	Color ColorMode `yaml:"color"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		JSONIndent:    2,
		TableMinWidth: 3,
		Color:         ColorAuto,
	}
}

// Validate checks that all options are within their allowed ranges.
func (c *Config) Validate() error {
	if c.JSONIndent < MinJSONIndent || c.JSONIndent > MaxJSONIndent {
		return fmt.Errorf("json_indent must be between %d and %d, got %d",
			MinJSONIndent, MaxJSONIndent, c.JSONIndent)
	}
	if c.TableMinWidth < MinTableWidth || c.TableMinWidth > MaxTableWidth {
		return fmt.Errorf("table_min_width must be between %d and %d, got %d",
			MinTableWidth, MaxTableWidth, c.TableMinWidth)
	}
	if !c.Color.IsValid() {
		return fmt.Errorf("color must be auto, always, or never, got %q", c.Color)
	}
	return nil
}
