// SPDX-License-Identifier: MIT
package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/subalign/dataset"
)

func TestShiftedBlobs_ShapeAndLabels(t *testing.T) {
	t.Parallel()

	s, err := dataset.ShiftedBlobs(5, 3, 4, dataset.WithClasses(3))
	require.NoError(t, err)
	r, c := s.X.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 4, c)
	require.Equal(t, []int{1, 1, 1, 1, 1, -1, -1, -1}, s.Domains)
	require.Equal(t, []float64{0, 1, 2, 0, 1, 0, 1, 2}, s.Classes)

	s, err = dataset.ShiftedBlobs(3, 2, 2, dataset.WithInterleave())
	require.NoError(t, err)
	require.Equal(t, []int{1, -1, 1, -1, 1}, s.Domains)
}

func TestShiftedBlobs_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := dataset.ShiftedBlobs(6, 6, 3, dataset.WithSeed(9))
	require.NoError(t, err)
	b, err := dataset.ShiftedBlobs(6, 6, 3, dataset.WithSeed(9))
	require.NoError(t, err)
	c, err := dataset.ShiftedBlobs(6, 6, 3, dataset.WithSeed(10))
	require.NoError(t, err)
	require.True(t, mat.Equal(a.X, b.X))
	require.False(t, mat.Equal(a.X, c.X))
}

// TestShiftedBlobs_Shift: without noise or rotation, target rows are the
// class centres plus the shift.
func TestShiftedBlobs_Shift(t *testing.T) {
	t.Parallel()

	s, err := dataset.ShiftedBlobs(2, 2, 3, dataset.WithNoiseSigma(0), dataset.WithShift(5), dataset.WithClasses(2))
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		require.InDelta(t, s.X.At(0, j)+5, s.X.At(2, j), 1e-12)
		require.InDelta(t, s.X.At(1, j)+5, s.X.At(3, j), 1e-12)
	}

	col := mat.Col(nil, 0, s.X)
	require.Greater(t, stat.Mean(col[2:], nil), stat.Mean(col[:2], nil))
}

func TestShiftedBlobs_Errors(t *testing.T) {
	t.Parallel()

	_, err := dataset.ShiftedBlobs(0, 2, 2)
	require.ErrorIs(t, err, dataset.ErrTooFewRows)
	_, err = dataset.ShiftedBlobs(2, 2, 0)
	require.ErrorIs(t, err, dataset.ErrTooFewFeatures)
	_, err = dataset.ShiftedBlobs(2, 2, 1, dataset.WithRotation(0.3))
	require.ErrorIs(t, err, dataset.ErrRotationDims)

	require.Panics(t, func() { dataset.WithClasses(0) })
	require.Panics(t, func() { dataset.WithNoiseSigma(-1) })
}
