package config

import (
	"fmt"
	"strings"
)

// ColorMode controls whether the diagram is coloured.
type ColorMode string

const (
	// ColorAuto colours output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways forces colour, even when output is redirected.
	ColorAlways ColorMode = "always"

	// ColorNever disables colour.
	ColorNever ColorMode = "never"
)

// String returns the string representation of ColorMode.
func (m ColorMode) String() string {
	return string(m)
}

// IsValid checks whether the ColorMode is one of the predefined modes.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ParseColorMode converts a string to a ColorMode, case-insensitively.
func ParseColorMode(s string) (ColorMode, error) {
	mode := ColorMode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid color mode: %q (valid: auto, always, never)", s)
	}
	return mode, nil
}

// Format selects how the result is printed.
type Format string

const (
	// FormatText prints the ASCII-art diagram.
	FormatText Format = "text"

	// FormatJSON prints a JSON result object.
	FormatJSON Format = "json"

	// FormatYAML prints a YAML result document.
	FormatYAML Format = "yaml"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks whether the Format is one of the predefined formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format, case-insensitively.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}

// Config holds the resolved rolldice settings.
type Config struct {
	// Seed makes rolls reproducible. Zero seeds from the clock.
	Seed int64 `json:"seed" yaml:"seed" toml:"seed" env:"ROLLDICE_SEED"`

	// Color is the colour mode (auto, always, never).
	Color ColorMode `json:"color" yaml:"color" toml:"color" env:"ROLLDICE_COLOR"`

	// Format is the output format (text, json, yaml).
	Format Format `json:"format" yaml:"format" toml:"format" env:"ROLLDICE_FORMAT"`

	// StandardFour draws face 4 with four corner pips instead of the
	// classic three-pip diagonal.
	StandardFour bool `json:"standard_four" yaml:"standard_four" toml:"standard_four" env:"ROLLDICE_STANDARD_FOUR"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Seed:   0,
		Color:  ColorNever,
		Format: FormatText,
	}
}

// Validate normalises case and rejects unknown colour modes and formats.
func (c *Config) Validate() error {
	color, err := ParseColorMode(string(c.Color))
	if err != nil {
		return err
	}
	format, err := ParseFormat(string(c.Format))
	if err != nil {
		return err
	}
	c.Color = color
	c.Format = format
	return nil
}
