// SPDX-License-Identifier: MIT

// Package matrix - Dense square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy windows (Block) for quadrant reductions.
//   - Enforce the numeric policy (finite, non-negative) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; FromRows: O(n²); At/Set: O(1); Clone: O(n²); Block: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for FromRows
	ctxBlock    = "Block"    // ctor tag for Dense.Block
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete N×N row-major matrix of predicted aligned errors.
//   - n is the side length (number of tokens in the complex).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - opts is the numeric policy enforced by Set and FromRows.
type Dense struct {
	n    int       // side length (>0)
	data []float64 // contiguous row-major storage (len == n*n)
	opts Options   // numeric policy, preserved by Clone
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an n×n zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and resolve the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(n int, opts ...Option) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		n:    n,
		data: make([]float64, n*n),
		opts: gatherOptions(opts...),
	}, nil
}

// FromRows materializes a Dense from a rectangular array of rows.
//
// Implementation:
//   - Stage 1: shape check via ValidateRows (empty, non-square, ragged).
//   - Stage 2: copy row by row, applying the numeric policy to every cell.
//
// Behavior highlights:
//   - The input is copied; later mutation of rows does not affect the result.
//   - The first violation in row-major order is reported.
//
// Errors:
//   - ErrMalformedMatrix naming the offending row index and its length.
//   - ErrNaNInf / ErrNegative naming the offending cell.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromRows, err)
	}
	n := len(rows)
	o := gatherOptions(opts...)
	data := make([]float64, n*n)

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if err := ValidateEntry(v, o); err != nil {
				return nil, denseErrorf(ctxFromRows, i, j, err)
			}
			data[base+j] = v
		}
	}

	return &Dense{n: n, data: data, opts: o}, nil
}

// Size returns the side length N.
func (m *Dense) Size() int { return m.n }

// Rows returns the row count (== Size).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count (== Size).
func (m *Dense) Cols() int { return m.n }

// Options returns the numeric policy this matrix enforces.
func (m *Dense) Options() Options { return m.opts }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if err := ValidateIndex(m.n, row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.n+col], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf / ErrNegative for policy violations.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if err := ValidateIndex(m.n, row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err := ValidateEntry(v, m.opts); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[row*m.n+col] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp, opts: m.opts}
}

// RowsCopy exports the matrix as a fresh [][]float64 (row-major).
// Handy for re-serialization; the result shares nothing with m.
func (m *Dense) RowsCopy() [][]float64 {
	out := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]float64, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// String renders matrix rows as lines with comma-separated values.
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Block creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
//
// Implementation:
//   - Stage 1: validate window bounds; zero-area windows are legal.
//   - Stage 2: return a Block with offsets into the base buffer.
//
// Errors:
//   - ErrBadWindow when the window does not fit inside the matrix.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Block(r0, c0, rows, cols int) (*Block, error) {
	if err := validateWindow(m.n, r0, c0, rows, cols); err != nil {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxBlock, r0, c0, rows, cols, err)
	}

	return &Block{base: m, dense: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(n²).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// validateWindow checks a window against an n×n base.
func validateWindow(n, r0, c0, rows, cols int) error {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > n || c0+cols > n {
		return ErrBadWindow
	}

	return nil
}
