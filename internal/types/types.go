// =============================================================================
// repnum - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - converter
//   - cmd
//
// =============================================================================

package types

import "github.com/amrayman/repnum/internal/numparse"

// Number is a parsed numeral: the value plus the context it was parsed in.
// Immutable once produced; owned by whoever received it from the parser.
type Number struct {
	// Value is the parsed unsigned integer.
	Value uint64

	// Base is the effective base the digits were interpreted in (the
	// detected base when auto-detection was requested).
	Base numparse.Base

	// Text is the original numeral as given on the command line.
	Text string
}

// Representations holds the four textual renderings of a single parsed
// value. Each field is computed independently from Number.Value.
type Representations struct {
	// Decimal is the base-10 rendering.
	Decimal string

	// Hex is the base-16 rendering (case controlled by configuration).
	Hex string

	// Octal is the base-8 rendering.
	Octal string

	// Binary is the base-2 rendering produced by the binary formatter.
	Binary string

	// RunID uniquely identifies the conversion run that produced these
	// representations. Surfaced in verbose diagnostics.
	RunID string
}
