// =============================================================================
// repnum - Validation Module
// =============================================================================
//
// This module owns the error taxonomy for the conversion pipeline and the two
// validation duties wrapped around the numeral parser:
//   - Base validation: an explicit base must lie in [2, 36] before any
//     numeral is parsed with it.
//   - Result classification: mapping a parse outcome to a typed error (or
//     nil for success).
//
// ERROR TAXONOMY:
//   UsageError           - missing/absent input (programmer or usage error)
//   InvalidNumeralError  - zero characters recognized as a numeral
//   PartialNumeralError  - a valid prefix was parsed, trailing bytes remain
//   OverflowError        - value exceeds the unsigned 64-bit range
//   UnsupportedBaseError - explicit base outside [2, 36]
//
// Every error surfaces immediately to the caller; nothing is retried or
// silently recovered. The driver maps each one to a diagnostic on stderr and
// exit code 1.
//
// PartialNumeralError is kept distinct from InvalidNumeralError even though
// the current driver treats both as fatal: the distinction preserves
// diagnostic precision ("12x" names its unconsumed suffix, "x12" does not)
// and leaves room for a caller that accepts numeral-with-suffix input.
//
// =============================================================================

package validation

import (
	"fmt"

	"github.com/amrayman/repnum/internal/numparse"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError indicates degenerate input: the numeral was missing or empty.
// This is a usage/programmer error, not bad numeral syntax.
type UsageError struct {
	// Reason describes what was missing.
	Reason string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Reason
}

// UnsupportedBaseError indicates an explicit base outside [2, 36].
type UnsupportedBaseError struct {
	// Base is the rejected candidate value.
	Base int
}

// Error implements the error interface.
func (e *UnsupportedBaseError) Error() string {
	return fmt.Sprintf("Unsupported base: %d", e.Base)
}

// InvalidNumeralError indicates that no character of the input was
// recognized as a numeral in the requested base.
type InvalidNumeralError struct {
	// Text is the rejected input.
	Text string

	// Base is the requested base (numparse.BaseAuto when auto-detected).
	Base numparse.Base
}

// Error implements the error interface.
func (e *InvalidNumeralError) Error() string {
	return fmt.Sprintf("%s is not a valid number.%s", e.Text, baseHint(e.Base))
}

// PartialNumeralError indicates that a valid numeral prefix was parsed but
// trailing characters remain. The partial value is carried for callers that
// want it; the current driver discards it and fails.
type PartialNumeralError struct {
	// Text is the full input.
	Text string

	// Base is the requested base (numparse.BaseAuto when auto-detected).
	Base numparse.Base

	// Value is the value of the valid prefix.
	Value uint64

	// Consumed is the number of leading bytes that parsed as a numeral.
	Consumed int
}

// Error implements the error interface.
func (e *PartialNumeralError) Error() string {
	return fmt.Sprintf("%s is not a valid number: unexpected %q after %q.%s",
		e.Text,
		e.Text[e.Consumed:],
		e.Text[:e.Consumed],
		baseHint(e.Base),
	)
}

// OverflowError indicates a numeral whose value exceeds the unsigned 64-bit
// range.
type OverflowError struct {
	// Text is the overflowing input.
	Text string
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s is a too large number.", e.Text)
}

// baseHint appends the required base to a diagnostic when the base was
// forced, so the user knows which alphabet rejected the input.
func baseHint(base numparse.Base) string {
	if base == numparse.BaseAuto {
		return ""
	}
	return fmt.Sprintf(" Base %d is required.", base)
}

// =============================================================================
// BASE VALIDATION
// =============================================================================

// ValidateBase checks that candidate is a supported explicit base.
//
// PARAMETERS:
//   - candidate: The base requested by the user.
//
// RETURNS:
//   - The candidate as a numparse.Base if it lies in [2, 36].
//   - An UnsupportedBaseError otherwise.
//
// The auto-detect sentinel is not accepted here: this function guards the
// explicit --base path, which must name a concrete base.
func ValidateBase(candidate int) (numparse.Base, error) {
	if candidate < int(numparse.MinBase) || candidate > int(numparse.MaxBase) {
		return 0, &UnsupportedBaseError{Base: candidate}
	}
	return numparse.Base(candidate), nil
}

// =============================================================================
// RESULT CLASSIFICATION
// =============================================================================

// ClassifyResult maps a parse result to the driver's error policy.
//
// PARAMETERS:
//   - text: The original input, used for diagnostics.
//   - base: The base the user requested (BaseAuto when none was forced).
//   - res:  The parse result to classify.
//
// RETURNS:
//   - nil for OutcomeSuccess.
//   - The matching typed error for every other outcome. Partial parses are
//     fatal under this policy; their value and consumed count ride along on
//     the error for diagnostic rendering.
func ClassifyResult(text string, base numparse.Base, res numparse.Result) error {
	switch res.Outcome {
	case numparse.OutcomeSuccess:
		return nil
	case numparse.OutcomeInvalid:
		return &InvalidNumeralError{Text: text, Base: base}
	case numparse.OutcomePartial:
		return &PartialNumeralError{Text: text, Base: base, Value: res.Value, Consumed: res.Consumed}
	case numparse.OutcomeOverflow:
		return &OverflowError{Text: text}
	}
	return fmt.Errorf("unrecognized parse outcome: %v", res.Outcome)
}
