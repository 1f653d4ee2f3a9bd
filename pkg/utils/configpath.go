// =============================================================================
// repnum - File Utilities
// =============================================================================
//
// This package contains shared file-handling utilities. Currently that means
// one thing: locating the configuration file.
//
// LOOKUP ORDER:
//   1. An explicit path (from the --config flag) always wins, even if the
//      file does not exist: a user who names a file wants to hear about a
//      typo, not get silent defaults.
//   2. ./repnum.yaml in the current working directory.
//   3. <user config dir>/repnum/repnum.yaml (e.g. ~/.config/repnum/ on
//      Linux).
//
// If none is found, the tool runs on built-in defaults.
//
// =============================================================================

package utils

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the conventional name of the configuration file.
const ConfigFileName = "repnum.yaml"

// ResolveConfigPath determines which configuration file to load.
//
// PARAMETERS:
//   - explicit: The path given via --config, or "" when the flag was unset.
//
// RETURNS:
//   - The path to load and true, or "" and false when no file applies and
//     the defaults should be used.
func ResolveConfigPath(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}

	// Current working directory.
	if fileExists(ConfigFileName) {
		return ConfigFileName, true
	}

	// Per-user configuration directory.
	if dir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(dir, "repnum", ConfigFileName)
		if fileExists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
