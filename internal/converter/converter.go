// =============================================================================
// repnum - Converter Module
// =============================================================================
//
// This module contains the core conversion pipeline. It orchestrates a single
// run from raw command-line text to the four base representations:
//
// CONVERSION PIPELINE:
//   1. Parse the numeral text in the requested (or auto-detected) base
//   2. Classify the parse result against the driver's error policy
//   3. Render decimal, hexadecimal, and octal via native formatting
//   4. Render binary via the fixed-capacity binary formatter
//   5. Assemble the labeled, separator-joined output line
//
// Each run is stamped with a UUID. The ID never appears on the stdout
// contract line; it is only surfaced in verbose diagnostics on stderr, so
// runs can be told apart when a shell script loops over inputs.
//
// =============================================================================

package converter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amrayman/repnum/internal/binfmt"
	"github.com/amrayman/repnum/internal/config"
	"github.com/amrayman/repnum/internal/numparse"
	"github.com/amrayman/repnum/internal/types"
	"github.com/amrayman/repnum/internal/validation"
	"github.com/google/uuid"
)

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter runs the conversion pipeline for a single numeral.
type Converter struct {
	// cfg is the application configuration, passed by value: the converter
	// never mutates it and holds no other state between runs.
	cfg config.Config

	// diag receives verbose diagnostics. Nil means quiet.
	diag io.Writer
}

// Option customizes a Converter.
type Option func(*Converter)

// WithDiagnostics directs verbose per-step diagnostics to w.
func WithDiagnostics(w io.Writer) Option {
	return func(c *Converter) {
		c.diag = w
	}
}

// New creates a new Converter with the given configuration.
func New(cfg config.Config, opts ...Option) *Converter {
	c := &Converter{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// =============================================================================
// CONVERSION
// =============================================================================

// Convert parses text in the given base and renders all four representations.
//
// PARAMETERS:
//   - text: The numeral to convert.
//   - base: An explicit, already-validated base, or numparse.BaseAuto.
//
// RETURNS:
//   - The four representations of the parsed value plus the run ID.
//   - A typed error from the validation taxonomy on any failure; the
//     representations are zero in that case.
func (c *Converter) Convert(text string, base numparse.Base) (types.Representations, error) {
	runID := uuid.New().String()
	c.logf("run %s: converting %q (base %s)", runID, text, base)

	// Parse the numeral. Empty input is a usage error, distinct from a
	// syntactically invalid numeral.
	res, err := numparse.Parse(text, base)
	if err != nil {
		return types.Representations{}, &validation.UsageError{
			Reason: "missing numeral: an empty string cannot be converted",
		}
	}
	c.logf("run %s: outcome %s, consumed %d/%d bytes, effective base %s",
		runID, res.Outcome, res.Consumed, len(text), res.EffectiveBase)

	// Apply the driver's error policy: partial parses are fatal here.
	if err := validation.ClassifyResult(text, base, res); err != nil {
		return types.Representations{}, err
	}

	num := types.Number{Value: res.Value, Base: res.EffectiveBase, Text: text}
	return c.render(runID, num)
}

// render computes the four representations of a parsed number.
func (c *Converter) render(runID string, num types.Number) (types.Representations, error) {
	bin, err := binfmt.FormatBinary(num.Value, c.cfg.BinaryBufferCapacity)
	if err != nil {
		// Unreachable with the default capacity, but a misconfigured buffer
		// still fails cleanly instead of printing a truncated field.
		return types.Representations{}, fmt.Errorf("formatting %d as binary: %w", num.Value, err)
	}

	hexStr := strconv.FormatUint(num.Value, 16)
	if c.cfg.UppercaseHex {
		hexStr = strings.ToUpper(hexStr)
	}

	reps := types.Representations{
		Decimal: strconv.FormatUint(num.Value, 10),
		Hex:     hexStr,
		Octal:   strconv.FormatUint(num.Value, 8),
		Binary:  bin,
		RunID:   runID,
	}
	c.logf("run %s: dec=%s hex=%s oct=%s bin=%s",
		runID, reps.Decimal, reps.Hex, reps.Octal, reps.Binary)
	return reps, nil
}

// =============================================================================
// OUTPUT LINE
// =============================================================================

// RenderLine assembles the labeled output line for a set of representations:
//
//	[dec]	18	=	[hex]	12	[oct]	22	[bin]	10010
//
// Labels and the separator come from the configuration.
func (c *Converter) RenderLine(reps types.Representations) string {
	fields := []string{
		c.cfg.DecimalLabel, reps.Decimal,
		"=",
		c.cfg.HexLabel, reps.Hex,
		c.cfg.OctalLabel, reps.Octal,
		c.cfg.BinaryLabel, reps.Binary,
	}
	return strings.Join(fields, c.cfg.FieldSeparator)
}

// logf writes a verbose diagnostic line, if diagnostics are enabled.
func (c *Converter) logf(format string, args ...interface{}) {
	if c.diag == nil {
		return
	}
	fmt.Fprintf(c.diag, format+"\n", args...)
}
