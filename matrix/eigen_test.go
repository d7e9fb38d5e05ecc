// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/matrix"
)

// TestSymEigen_ReadsLowerTriangle ignores garbage in the strict upper part.
func TestSymEigen_ReadsLowerTriangle(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(2, 2, []float64{
		2, 99,
		1, 2,
	})
	vals, vecs, err := matrix.SymEigen(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 3}, vals, 1e-12)
	r, c := vecs.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
}

// TestGeneralizedSymEigen_Cholesky verifies B·a = φ·C·a and aᵀ·C·a = I.
func TestGeneralizedSymEigen_Cholesky(t *testing.T) {
	t.Parallel()

	B := mat.NewDense(2, 2, []float64{2, 1, 1, 3})
	C := mat.NewDense(2, 2, []float64{4, 0, 0, 1})

	ge, err := matrix.GeneralizedSymEigen(B, C, 1e-10)
	require.NoError(t, err)
	require.False(t, ge.Whitened)
	require.LessOrEqual(t, ge.Values[0], ge.Values[1])

	var ba, ca mat.Dense
	ba.Mul(B, ge.Vectors)
	ca.Mul(C, ge.Vectors)
	for j, phi := range ge.Values {
		for i := 0; i < 2; i++ {
			require.InDelta(t, ba.At(i, j), phi*ca.At(i, j), 1e-10)
		}
	}

	var gram mat.Dense
	gram.Mul(ge.Vectors.T(), &ca)
	ok, err := matrix.AllClose(&gram, mat.NewDense(2, 2, []float64{1, 0, 0, 1}), 0, 1e-10)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestGeneralizedSymEigen_WhitenFallback handles a singular C.
func TestGeneralizedSymEigen_WhitenFallback(t *testing.T) {
	t.Parallel()

	B := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	C := mat.NewDense(2, 2, []float64{1, 1, 1, 1})

	ge, err := matrix.GeneralizedSymEigen(B, C, 1e-10)
	require.NoError(t, err)
	require.True(t, ge.Whitened)
	require.NoError(t, matrix.ValidateFinite(ge.Vectors))
}

// TestGeneralizedSymEigen_Mismatch rejects B and C of different order.
func TestGeneralizedSymEigen_Mismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.GeneralizedSymEigen(mat.NewDense(2, 2, nil), mat.NewDense(3, 3, nil), 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestArgsort orders are stable.
func TestArgsort(t *testing.T) {
	t.Parallel()

	vals := []float64{1, -3, 2, 3}
	require.Equal(t, []int{1, 0, 2, 3}, matrix.ArgsortAscending(vals))
	require.Equal(t, []int{1, 3, 2, 0}, matrix.ArgsortAbsDescending(vals))
}
