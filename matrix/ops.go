// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Whole-matrix helpers used when comparing predictions: Transpose swaps
//     the aligned and scored roles of every token pair; AllClose compares two
//     matrices under an absolute/relative tolerance.
//
// Determinism:
//   - Both walk cells in row-major order with a *Dense fast path over the
//     flat slices and an At-based fallback for other implementations.

package matrix

import "math"

const (
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
)

// Transpose returns a new Dense with Mᵀ[i,j] = M[j,i].
// A *Dense source keeps its numeric policy; other sources get the defaults.
// Values are copied as is and are not re-validated.
//
// Complexity: O(N²) time and space.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf(opTranspose, err)
	}

	n := m.Size()
	res := &Dense{n: n, data: make([]float64, n*n), opts: defaultOptions()}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.opts = dm.opts
		var base int
		for i = 0; i < n; i++ {
			base = i * n
			for j = 0; j < n; j++ {
				res.data[j*n+i] = dm.data[base+j]
			}
		}
		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, denseErrorf(opTranspose, i, j, err)
			}
			res.data[j*n+i] = v
		}
	}

	return res, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds for every cell.
// Negative tolerances are taken by absolute value.
//
// Errors:
//   - ErrNaNInf for a non-finite tolerance.
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, validatorErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, validatorErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, validatorErrorf(opAllClose, err)
	}
	n := a.Size()
	if b.Size() != n {
		return false, validatorErrorf(opAllClose, ErrDimensionMismatch)
	}

	within := func(av, bv float64) bool { return math.Abs(av-bv) <= atol+rtol*math.Abs(bv) }

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, validatorErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, validatorErrorf(opAllClose, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
