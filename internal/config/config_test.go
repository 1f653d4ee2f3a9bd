package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes a temporary config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repnum.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestDefault tests the built-in defaults.
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DecimalLabel != "[dec]" || cfg.HexLabel != "[hex]" ||
		cfg.OctalLabel != "[oct]" || cfg.BinaryLabel != "[bin]" {
		t.Errorf("unexpected default labels: %+v", cfg)
	}
	if cfg.FieldSeparator != "\t" {
		t.Errorf("default separator = %q, want tab", cfg.FieldSeparator)
	}
	if cfg.BinaryBufferCapacity != 1024 {
		t.Errorf("default buffer capacity = %d, want 1024", cfg.BinaryBufferCapacity)
	}
	if cfg.DefaultBase != 0 {
		t.Errorf("default base = %d, want 0 (auto)", cfg.DefaultBase)
	}
	if cfg.UppercaseHex {
		t.Error("uppercase hex should default to false")
	}
}

// TestLoadEmptyPath tests that an empty path yields the defaults.
func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

// TestLoadOverrides tests that file values override defaults while unset
// options keep theirs.
func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
hex_label: "[HEX]"
uppercase_hex: true
default_base: 16
binary_buffer_capacity: 65
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.HexLabel != "[HEX]" {
		t.Errorf("hex label = %q, want \"[HEX]\"", cfg.HexLabel)
	}
	if !cfg.UppercaseHex {
		t.Error("uppercase_hex not applied")
	}
	if cfg.DefaultBase != 16 {
		t.Errorf("default base = %d, want 16", cfg.DefaultBase)
	}
	if cfg.BinaryBufferCapacity != 65 {
		t.Errorf("buffer capacity = %d, want 65", cfg.BinaryBufferCapacity)
	}

	// Untouched options keep their defaults.
	if cfg.DecimalLabel != "[dec]" || cfg.FieldSeparator != "\t" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

// TestLoadInvalidValues tests that validation rejects unusable settings.
func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"base too small", "default_base: 1", "default_base"},
		{"base too large", "default_base: 37", "default_base"},
		{"capacity too small", "binary_buffer_capacity: 1", "binary_buffer_capacity"},
		{"negative capacity", "binary_buffer_capacity: -4", "binary_buffer_capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load accepted %q", tt.content)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

// TestLoadMissingFile tests that an explicitly named missing file is an
// error rather than silent defaults.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file returned nil error")
	}
}

// TestLoadMalformedYAML tests parse-failure reporting.
func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "field_separator: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML returned nil error")
	}
}
