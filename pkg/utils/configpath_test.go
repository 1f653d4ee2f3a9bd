package utils

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// restoring it afterwards. (t.Chdir requires Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

// TestResolveConfigPathExplicit tests that an explicit path always wins,
// existing or not.
func TestResolveConfigPathExplicit(t *testing.T) {
	path, ok := ResolveConfigPath("/no/such/place/repnum.yaml")
	if !ok || path != "/no/such/place/repnum.yaml" {
		t.Errorf("ResolveConfigPath(explicit) = (%q, %v), want the explicit path", path, ok)
	}
}

// TestResolveConfigPathCurrentDir tests discovery of ./repnum.yaml.
func TestResolveConfigPathCurrentDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	chdir(t, dir)

	path, ok := ResolveConfigPath("")
	if !ok || path != ConfigFileName {
		t.Errorf("ResolveConfigPath(\"\") = (%q, %v), want (%q, true)", path, ok, ConfigFileName)
	}
}

// TestResolveConfigPathNothingFound tests the defaults fallback.
func TestResolveConfigPathNothingFound(t *testing.T) {
	// An empty working directory and a user config dir pointed at another
	// empty directory leave nothing to discover.
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, ok := ResolveConfigPath("")
	if ok || path != "" {
		t.Errorf("ResolveConfigPath(\"\") = (%q, %v), want (\"\", false)", path, ok)
	}
}
