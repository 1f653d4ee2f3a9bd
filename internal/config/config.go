// =============================================================================
// repnum - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration. The tool
// runs happily with no configuration file at all: every option has a default
// that reproduces the classic output line. A YAML file (repnum.yaml) can
// adjust presentation details without touching code.
//
// CONFIGURATION OPTIONS:
//   - Output labels for the four representations
//   - Field separator for the output line
//   - Uppercase hexadecimal rendering
//   - Binary formatting buffer capacity
//   - Default base applied when neither --base nor auto-detection is wanted
//
// The Config value is constructed once in cmd and passed by value into the
// converter: there is no process-wide configuration state.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/amrayman/repnum/internal/binfmt"
	"github.com/amrayman/repnum/internal/numparse"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// DecimalLabel is the label printed before the decimal field.
	// Default: "[dec]"
	DecimalLabel string `yaml:"decimal_label"`

	// HexLabel is the label printed before the hexadecimal field.
	// Default: "[hex]"
	HexLabel string `yaml:"hex_label"`

	// OctalLabel is the label printed before the octal field.
	// Default: "[oct]"
	OctalLabel string `yaml:"octal_label"`

	// BinaryLabel is the label printed before the binary field.
	// Default: "[bin]"
	BinaryLabel string `yaml:"binary_label"`

	// FieldSeparator separates the labels and values on the output line.
	// Default: "\t"
	FieldSeparator string `yaml:"field_separator"`

	// UppercaseHex renders hexadecimal digits in upper case when true.
	// Default: false
	UppercaseHex bool `yaml:"uppercase_hex"`

	// =========================================================================
	// CONVERSION SETTINGS
	// =========================================================================

	// BinaryBufferCapacity is the buffer capacity handed to the binary
	// formatter, including its terminator slot. Any 64-bit value needs at
	// most 65 bytes; the default leaves generous headroom.
	// Default: 1024
	BinaryBufferCapacity int `yaml:"binary_buffer_capacity"`

	// DefaultBase is the base used when --base is not given.
	// Zero means auto-detect from the numeral prefix; otherwise it must lie
	// in [2, 36].
	// Default: 0 (auto-detect)
	DefaultBase int `yaml:"default_base"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	applyDefaults(&cfg)
	return cfg
}

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file. An empty path means "no
//     configuration file"; the defaults are returned.
//
// RETURNS:
//   - The loaded configuration with defaults applied to unset options.
//   - An error if the file cannot be read, parsed, or validated.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	// Read the configuration file.
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse the YAML.
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply default values.
	applyDefaults(&cfg)

	// Validate the configuration.
	if err := validate(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.DecimalLabel == "" {
		cfg.DecimalLabel = "[dec]"
	}
	if cfg.HexLabel == "" {
		cfg.HexLabel = "[hex]"
	}
	if cfg.OctalLabel == "" {
		cfg.OctalLabel = "[oct]"
	}
	if cfg.BinaryLabel == "" {
		cfg.BinaryLabel = "[bin]"
	}
	if cfg.FieldSeparator == "" {
		cfg.FieldSeparator = "\t"
	}
	if cfg.BinaryBufferCapacity == 0 {
		cfg.BinaryBufferCapacity = binfmt.DefaultCapacity
	}
	// DefaultBase zero already means auto-detect; nothing to fill in.
}

// validate checks the configuration for values the converter cannot work
// with.
func validate(cfg *Config) error {
	if cfg.BinaryBufferCapacity < 2 {
		return fmt.Errorf("binary_buffer_capacity must be at least 2, got %d", cfg.BinaryBufferCapacity)
	}
	if cfg.DefaultBase != 0 &&
		(cfg.DefaultBase < int(numparse.MinBase) || cfg.DefaultBase > int(numparse.MaxBase)) {
		return fmt.Errorf("default_base must be 0 (auto) or in [%d, %d], got %d",
			numparse.MinBase, numparse.MaxBase, cfg.DefaultBase)
	}
	return nil
}
