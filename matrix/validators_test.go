package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/paescore/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateRows covers the shape validator directly.
func TestValidateRows(t *testing.T) {
	require.NoError(t, matrix.ValidateRows([][]float64{{1}}))
	require.NoError(t, matrix.ValidateRows([][]float64{{1, 2}, {3, 4}}))

	err := matrix.ValidateRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrMalformedMatrix)
	require.Contains(t, err.Error(), "row 1 has length 1")
}

// TestValidateEntry checks each policy switch in isolation.
func TestValidateEntry(t *testing.T) {
	strict := matrix.NewOptions()
	lax := matrix.NewOptions(matrix.WithNoValidateNaNInf(), matrix.WithAllowNegative())

	require.NoError(t, matrix.ValidateEntry(0, strict))
	require.NoError(t, matrix.ValidateEntry(31.75, strict))
	require.ErrorIs(t, matrix.ValidateEntry(math.NaN(), strict), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateEntry(math.Inf(-1), strict), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateEntry(-1e-9, strict), matrix.ErrNegative)

	require.NoError(t, matrix.ValidateEntry(math.NaN(), lax))
	require.NoError(t, matrix.ValidateEntry(-3, lax))
}

// TestValidateNotNil rejects untyped and typed nils.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

// TestValidateIndex covers the four bound edges.
func TestValidateIndex(t *testing.T) {
	require.NoError(t, matrix.ValidateIndex(2, 1, 1))
	require.ErrorIs(t, matrix.ValidateIndex(2, 2, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(2, 0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(2, -1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(2, 0, -1), matrix.ErrOutOfRange)
}
