// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for ingestion checks.
//   - Keep constructors minimal by delegating shape/nil/policy checks here.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing beyond the error value.
//   - Rows are scanned in ascending index order, so the first offending row
//     reported is always the lowest one.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRows checks that rows describe a non-empty N×N array.
//
// Implementation:
//   - Stage 1: reject an empty outer slice (N ≥ 1 is required).
//   - Stage 2: compare every row length against N = len(rows).
//
// Errors:
//   - ErrMalformedMatrix, wrapped with the row index and its length.
//
// Complexity:
//   - Time O(N), Space O(1).
func ValidateRows(rows [][]float64) error {
	n := len(rows)
	if n == 0 {
		return fmt.Errorf("ValidateRows: no rows: %w", ErrMalformedMatrix)
	}
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return fmt.Errorf("ValidateRows: row %d has length %d, want %d: %w",
				i, len(rows[i]), n, ErrMalformedMatrix)
		}
	}

	return nil
}

// ValidateEntry applies the numeric policy to a single value.
// Returns a plain sentinel so the caller can wrap it with coordinates.
//
// Errors:
//   - ErrNaNInf when validateNaNInf is on and v is NaN or ±Inf.
//   - ErrNegative when requireNonNegative is on and v < 0.
func ValidateEntry(v float64, o Options) error {
	if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}
	if o.requireNonNegative && v < 0 {
		return ErrNegative
	}

	return nil
}

// ValidateIndex checks 0 ≤ i < n and 0 ≤ j < n.
func ValidateIndex(n, i, j int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrOutOfRange
	}

	return nil
}
