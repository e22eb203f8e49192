// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and Block tests.
//   • Keep all data finite and non-negative so the default policy never interferes.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/paescore/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based fallback paths in Block.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// Sequential returns an n×n matrix with entries 0,1,2,... in row-major order.
func Sequential(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = float64(i*n + j)
		}
	}

	return MustFromRows(t, rows)
}
