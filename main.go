// =============================================================================
// repnum - Main Entry Point
// =============================================================================
//
// This is the main entry point for the repnum CLI application. It initializes
// the Cobra CLI framework and delegates command execution to the cmd package.
//
// USAGE:
//   repnum <numeral>         - Print the numeral in decimal, hex, octal, binary
//   repnum -b 16 <numeral>   - Force a base (2-36) instead of auto-detection
//   repnum version           - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core conversion logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/amrayman/repnum/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
