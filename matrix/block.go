// SPDX-License-Identifier: MIT

// Package matrix - Block windows and reductions.
//
// Purpose:
//   - Represent a contiguous rectangular sub-region of a square matrix, such as
//     the binder×target quadrant of a PAE matrix, without copying.
//   - Reduce a window to Sum / Mean in a fixed row-major order.
//
// Determinism & Performance:
//   - Fixed i→j traversal; the same window always sums in the same order, so
//     repeated reductions are bit-identical.
//   - *Dense bases use direct offsets into the flat buffer; other Matrix
//     implementations go through At with full error propagation.

package matrix

import "fmt"

// Block is a non-owning, read-only window into a Matrix.
// Zero-area blocks are legal; reductions that need at least one element
// (Mean) report ErrEmptyBlock.
type Block struct {
	base  Matrix // underlying storage owner
	dense *Dense // non-nil when base is *Dense (fast path)
	r0    int    // top-left row offset in base
	c0    int    // top-left col offset in base
	r     int    // block height
	c     int    // block width
}

// BlockOf creates a window over any Matrix implementation.
// For *Dense it is equivalent to Dense.Block.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrBadWindow when the window does not fit.
//
// Complexity: O(1).
func BlockOf(m Matrix, r0, c0, rows, cols int) (*Block, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.Block(r0, c0, rows, cols)
	}
	if err := validateWindow(m.Size(), r0, c0, rows, cols); err != nil {
		return nil, fmt.Errorf("BlockOf(%d,%d,%d,%d): %w", r0, c0, rows, cols, err)
	}

	return &Block{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Rows returns the block height.
func (b *Block) Rows() int { return b.r }

// Cols returns the block width.
func (b *Block) Cols() int { return b.c }

// Origin returns the top-left coordinates of the block in its base.
func (b *Block) Origin() (row, col int) { return b.r0, b.c0 }

// Len returns the number of elements in the block.
func (b *Block) Len() int { return b.r * b.c }

// Empty reports whether the block has zero area.
func (b *Block) Empty() bool { return b.r == 0 || b.c == 0 }

// At reads element (i,j) of the block, in block-local coordinates.
func (b *Block) At(i, j int) (float64, error) {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return 0, fmt.Errorf("Block.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if b.dense != nil {
		return b.dense.data[(b.r0+i)*b.dense.n+(b.c0+j)], nil
	}

	return b.base.At(b.r0+i, b.c0+j)
}

// Do visits each element in block-local row-major order and calls f(i,j,v).
// Stops early when f returns false. Errors from a non-Dense base abort the walk.
//
// Complexity: O(rows*cols).
func (b *Block) Do(f func(i, j int, v float64) bool) error {
	var i, j int
	if b.dense != nil {
		n := b.dense.n
		for i = 0; i < b.r; i++ {
			base := (b.r0+i)*n + b.c0
			for j = 0; j < b.c; j++ {
				if !f(i, j, b.dense.data[base+j]) {
					return nil
				}
			}
		}

		return nil
	}

	var v float64
	var err error
	for i = 0; i < b.r; i++ {
		for j = 0; j < b.c; j++ {
			v, err = b.base.At(b.r0+i, b.c0+j)
			if err != nil {
				return fmt.Errorf("Block.Do(%d,%d): %w", i, j, err)
			}
			if !f(i, j, v) {
				return nil
			}
		}
	}

	return nil
}

// Sum adds every element in fixed row-major order.
// The sum of a zero-area block is 0.
//
// Complexity: O(rows*cols).
func (b *Block) Sum() (float64, error) {
	var sum float64
	if b.dense != nil {
		// Fast path: direct row slices of the flat buffer.
		n := b.dense.n
		for i := 0; i < b.r; i++ {
			base := (b.r0+i)*n + b.c0
			for _, v := range b.dense.data[base : base+b.c] {
				sum += v
			}
		}

		return sum, nil
	}

	err := b.Do(func(_, _ int, v float64) bool {
		sum += v
		return true
	})
	if err != nil {
		return 0, err
	}

	return sum, nil
}

// Mean returns the arithmetic mean of the block.
//
// Errors:
//   - ErrEmptyBlock for zero-area blocks; a mean over nothing is undefined and
//     is never reported as 0 or NaN.
//
// Complexity: O(rows*cols).
func (b *Block) Mean() (float64, error) {
	if b.Empty() {
		return 0, fmt.Errorf("Block.Mean(%dx%d at %d,%d): %w", b.r, b.c, b.r0, b.c0, ErrEmptyBlock)
	}
	sum, err := b.Sum()
	if err != nil {
		return 0, err
	}

	return sum / float64(b.Len()), nil
}
