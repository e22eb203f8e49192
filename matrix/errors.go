// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels, possibly
// wrapped with fmt.Errorf("ctx: %w", ErrX) at the detection site. Tests and
// callers match them via errors.Is. No public function panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: " so log lines are easy to grep.
//
// ERROR PRIORITY (enforced in FromRows):
// nil/empty -> shape (non-square, ragged) -> numeric policy (NaN/Inf, negative).

var (
	// ErrInvalidDimensions indicates that a requested side length is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrMalformedMatrix signals an input array that is empty, not square, or ragged.
	// The wrapping message names the offending row index and its length.
	ErrMalformedMatrix = errors.New("matrix: malformed matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadWindow is returned when a requested block window does not fit the base.
	ErrBadWindow = errors.New("matrix: invalid block window")

	// ErrEmptyBlock is returned when a reduction (mean) is requested over a
	// zero-area block.
	ErrEmptyBlock = errors.New("matrix: empty block")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry under the non-negative policy.
	// Predicted aligned errors are distances in Ångström and never negative.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrDimensionMismatch indicates two matrices of different sizes where equal
	// sizes are required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
