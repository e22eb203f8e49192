// SPDX-License-Identifier: MIT

// Package matrix stores pairwise predicted-error matrices of protein complexes.
//
// The matrix package provides:
//
//   - Dense, a square row-major N×N matrix with bounds-checked At/Set and a
//     numeric ingestion policy (finite, non-negative by default).
//   - FromRows, which validates a decoded [][]float64 (non-empty, square, no
//     ragged rows) and copies it into a Dense.
//   - Block, a no-copy rectangular window with deterministic Sum/Mean, used to
//     reduce the binder/target quadrants of a PAE matrix.
//
// Entry (i,j) is the predicted error of token j when the prediction is aligned
// on token i. The matrix is directional and is never assumed symmetric.
//
// All failures are reported through the sentinels in errors.go; match them
// with errors.Is.
package matrix
