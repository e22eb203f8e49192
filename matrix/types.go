// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Kept deliberately small so callers can plug in their own storage (for
// example a memory-mapped predictor output) and still reuse Block reductions.
package matrix

// Matrix is a read-only square matrix of float64 values indexed by residue
// (token) position in a predicted complex.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Size returns the side length N of the N×N matrix.
	Size() int

	// At retrieves the element at position (i, j): the predicted error of
	// residue j when the complex is aligned on residue i.
	// Returns ErrOutOfRange if i or j is outside [0, Size()).
	At(i, j int) (float64, error)
}
