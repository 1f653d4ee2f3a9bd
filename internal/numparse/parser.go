// =============================================================================
// repnum - Numeral Parser Module
// =============================================================================
//
// This module converts a textual numeral into an unsigned 64-bit integer.
// It implements the classic strtoull consumption model: the longest valid
// prefix of the input is consumed as digits of the requested base, and the
// result reports exactly how the input was classified:
//   - Success : the whole string was consumed as valid digits
//   - Partial : a non-empty valid prefix was consumed, trailing bytes remain
//   - Invalid : zero characters were consumed as a numeral
//   - Overflow: the numeral exceeds the unsigned 64-bit range
//
// BASE HANDLING:
//   - BaseAuto (0) detects the base from the numeral prefix:
//       "0x"/"0X" -> 16, leading "0" -> 8, otherwise -> 10
//   - Explicit base 16 also accepts an optional "0x"/"0X" prefix
//   - Letters are case-insensitive for bases above 10
//
// The parser never touches process-wide state; callers receive a Result value
// and own it outright.
//
// =============================================================================

package numparse

import (
	"errors"
	"math"
	"strconv"
)

// =============================================================================
// BASE TYPE
// =============================================================================

// Base is the radix used to interpret a numeral's digits.
type Base int

const (
	// BaseAuto requests prefix-based auto-detection ("0x" -> 16, "0" -> 8,
	// otherwise 10).
	BaseAuto Base = 0

	// MinBase is the smallest explicit base the parser supports.
	MinBase Base = 2

	// MaxBase is the largest explicit base the parser supports.
	MaxBase Base = 36
)

// String renders the base for diagnostics. The auto sentinel reads as "auto".
func (b Base) String() string {
	if b == BaseAuto {
		return "auto"
	}
	return strconv.Itoa(int(b))
}

// =============================================================================
// RESULT TYPE
// =============================================================================

// Outcome classifies how the input text was consumed.
type Outcome int

const (
	// OutcomeSuccess means the entire input was consumed as valid digits.
	OutcomeSuccess Outcome = iota

	// OutcomeInvalid means no character was consumed as a valid numeral.
	OutcomeInvalid

	// OutcomePartial means a non-empty valid prefix was consumed but trailing
	// characters remain. The partial value is still produced; the caller
	// decides whether to accept it.
	OutcomePartial

	// OutcomeOverflow means the numeral's value exceeds the unsigned 64-bit
	// range. No value is produced.
	OutcomeOverflow
)

// String returns a short name for the outcome, used in diagnostics.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalid:
		return "invalid"
	case OutcomePartial:
		return "partial"
	case OutcomeOverflow:
		return "overflow"
	}
	return "unknown"
}

// Result is the tagged outcome of a parse. Value is meaningful only for
// OutcomeSuccess and OutcomePartial.
type Result struct {
	// Outcome is the classification of the parse.
	Outcome Outcome

	// Value is the parsed unsigned integer (zero unless Outcome is
	// OutcomeSuccess or OutcomePartial).
	Value uint64

	// Consumed is the number of leading bytes of the input that were
	// recognized as part of the numeral (including any base prefix).
	Consumed int

	// EffectiveBase is the base actually used to interpret the digits.
	// For explicit bases this echoes the request; for BaseAuto it reports
	// the detected base.
	EffectiveBase Base
}

// ErrEmptyInput is returned when the input text is empty. This is a
// degenerate-input (usage) condition, deliberately distinct from
// OutcomeInvalid: it signals a caller error rather than bad numeral syntax.
var ErrEmptyInput = errors.New("numparse: empty input")

// =============================================================================
// PARSER
// =============================================================================

// Parse converts text as a base `base` numeral into an unsigned 64-bit
// integer.
//
// PARAMETERS:
//   - text: The numeral to parse. Must be non-empty.
//   - base: An explicit base in [MinBase, MaxBase], or BaseAuto.
//
// RETURNS:
//   - A Result classifying the parse (see Outcome) with the value, consumed
//     byte count, and effective base.
//   - ErrEmptyInput if text is empty; the Result is zero in that case.
//
// Signs and leading whitespace are not accepted: the tool deals in unsigned
// numerals handed over as a single argument.
func Parse(text string, base Base) (Result, error) {
	if text == "" {
		return Result{}, ErrEmptyInput
	}

	effective, offset := resolveBase(text, base)

	// Consume the longest run of digits valid in the effective base.
	// Digits keep being consumed after an overflow is detected, matching
	// strtoull: overflow is a property of the whole digit run.
	var (
		value      uint64
		ndigits    int
		overflowed bool
	)
	i := offset
	for ; i < len(text); i++ {
		d, ok := digitValue(text[i])
		if !ok || d >= int(effective) {
			break
		}
		ndigits++
		if overflowed {
			continue
		}
		if value > (math.MaxUint64-uint64(d))/uint64(effective) {
			overflowed = true
			continue
		}
		value = value*uint64(effective) + uint64(d)
	}

	// A "0x" prefix with no hex digit after it is not a hex numeral: only
	// the leading zero counts, and the "x" is an unconsumed suffix.
	if offset == 2 && ndigits == 0 {
		return Result{
			Outcome:       OutcomePartial,
			Value:         0,
			Consumed:      1,
			EffectiveBase: effective,
		}, nil
	}

	switch {
	case ndigits == 0:
		return Result{Outcome: OutcomeInvalid, EffectiveBase: effective}, nil
	case overflowed:
		// Overflow wins over trailing garbage; no value is produced.
		return Result{Outcome: OutcomeOverflow, Consumed: i, EffectiveBase: effective}, nil
	case i < len(text):
		return Result{Outcome: OutcomePartial, Value: value, Consumed: i, EffectiveBase: effective}, nil
	}
	return Result{Outcome: OutcomeSuccess, Value: value, Consumed: i, EffectiveBase: effective}, nil
}

// resolveBase determines the effective base and the number of prefix bytes
// to skip before the digits start.
func resolveBase(text string, base Base) (Base, int) {
	switch {
	case base == BaseAuto:
		if hasHexPrefix(text) {
			return 16, 2
		}
		if text[0] == '0' {
			return 8, 0
		}
		return 10, 0
	case base == 16 && hasHexPrefix(text):
		return 16, 2
	}
	return base, 0
}

// hasHexPrefix reports whether text starts with "0x" or "0X".
func hasHexPrefix(text string) bool {
	return len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

// digitValue maps a byte to its digit value. Letters are case-insensitive,
// covering the full base-36 alphabet; the caller rejects values at or above
// the effective base.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}
