// =============================================================================
// repnum - Binary Formatter Module
// =============================================================================
//
// This module converts an unsigned 64-bit integer into its minimal binary
// digit string (no leading zeros, a single "0" for zero) using a
// caller-specified fixed buffer capacity.
//
// The digits are written back to front: the least significant bit lands last,
// so the loop never needs a reversal pass. The final buffer slot is reserved
// as a terminator position, which keeps the capacity contract identical to a
// C-string buffer: formatting fails whenever capacity < bitlen(value) + 1.
//
// The failure path is a real, checked condition. With the default capacity of
// 1024 it is unreachable for any 64-bit value (at most 64 digits plus the
// terminator slot), but callers supplying small buffers get an explicit error
// and never a truncated string.
//
// =============================================================================

package binfmt

import (
	"errors"
	"math/bits"
)

// DefaultCapacity is the buffer capacity used when the caller has no reason
// to pick another; it comfortably holds any 64-bit value.
const DefaultCapacity = 1024

// ErrInsufficientCapacity is returned when the buffer cannot hold the binary
// representation plus its terminator slot.
var ErrInsufficientCapacity = errors.New("binfmt: buffer capacity too small for binary representation")

// MinCapacity returns the smallest capacity for which FormatBinary(value, n)
// succeeds: one slot per significant binary digit plus the terminator slot.
func MinCapacity(value uint64) int {
	if value == 0 {
		return 2
	}
	return bits.Len64(value) + 1
}

// FormatBinary writes the minimal binary representation of value into a
// buffer of the given capacity and returns it as a string.
//
// PARAMETERS:
//   - value: The unsigned integer to format.
//   - capacity: The buffer capacity in bytes, including one terminator slot.
//
// RETURNS:
//   - The binary digit string, exactly bitlen(value) characters ("0" for zero).
//   - ErrInsufficientCapacity if capacity < MinCapacity(value). No partial
//     output is produced in that case.
func FormatBinary(value uint64, capacity int) (string, error) {
	// Even the single digit "0" needs a slot plus the terminator position.
	if capacity < 2 {
		return "", ErrInsufficientCapacity
	}

	buf := make([]byte, capacity)
	n := capacity - 1 // buf[capacity-1] is the reserved terminator slot

	for {
		n--
		if value%2 == 0 {
			buf[n] = '0'
		} else {
			buf[n] = '1'
		}
		value /= 2
		if value == 0 {
			break
		}
		if n == 0 {
			return "", ErrInsufficientCapacity
		}
	}

	return string(buf[n : capacity-1]), nil
}
