// SPDX-License-Identifier: MIT
// Package subspace_test exercises the fit/adapt contract shared by all aligners.
package subspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/domain"
	"github.com/katalvlaran/subalign/matrix"
	"github.com/katalvlaran/subalign/subspace"
)

func aligners() map[string]func() subspace.Aligner {
	return map[string]func() subspace.Aligner{
		"SA":  func() subspace.Aligner { return subspace.NewSubspaceAlignment(subspace.WithComponents(2)) },
		"TCA": func() subspace.Aligner { return subspace.NewTCA(subspace.WithComponents(2)) },
		"TJM": func() subspace.Aligner {
			return subspace.NewTJM(subspace.WithComponents(2), subspace.WithMaxIter(10))
		},
	}
}

// TestAligner_Contract runs the shared guarantees against every variant.
func TestAligner_Contract(t *testing.T) {
	t.Parallel()

	s := blobs(t, 12, 10, 4, 11)
	for name, mk := range aligners() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a := mk()

			// Unfitted use fails deterministically.
			require.False(t, a.Fitted())
			_, err := a.Adapt(s.X, nil, s.Domains)
			require.ErrorIs(t, err, subspace.ErrNotFitted)

			// Missing domain aborts without state.
			err = a.Fit(s.X, nil, onlyLabel(22, 1))
			require.ErrorIs(t, err, subspace.ErrMissingDomain)
			require.ErrorIs(t, err, domain.ErrMissingTarget)
			require.False(t, a.Fitted())

			require.NoError(t, a.Fit(s.X, s.Classes, s.Domains))
			require.True(t, a.Fitted())

			Z, err := a.Adapt(s.X, nil, s.Domains)
			require.NoError(t, err)
			r, c := Z.Dims()
			require.Equal(t, 22, r)
			require.Equal(t, 2, c)
			requireFinite(t, Z)

			// Adapt is deterministic.
			Z2, err := a.Adapt(s.X, nil, s.Domains)
			require.NoError(t, err)
			require.True(t, matrix.EqualExact(Z, Z2))

			// Output rows follow input rows: reversing the input reverses
			// the output.
			rev := make([]int, 22)
			for i := range rev {
				rev[i] = 21 - i
			}
			Xr, err := matrix.SelectRows(s.X, rev)
			require.NoError(t, err)
			lr := make([]int, 22)
			for i, j := range rev {
				lr[i] = s.Domains[j]
			}
			Zr, err := a.Adapt(Xr, nil, lr)
			require.NoError(t, err)
			want, err := matrix.SelectRows(Z, rev)
			require.NoError(t, err)
			ok, err := matrix.AllClose(Zr, want, 1e-9, 1e-9)
			require.NoError(t, err)
			require.True(t, ok)

			// A target-only block is accepted at adapt time.
			Xt, err := matrix.SelectRows(s.X, domain.NewPartition(s.Domains).Target)
			require.NoError(t, err)
			Zt, err := a.Adapt(Xt, nil, onlyLabel(10, -1))
			require.NoError(t, err)
			r, c = Zt.Dims()
			require.Equal(t, 10, r)
			require.Equal(t, 2, c)

			// Feature count is checked against the fit.
			_, err = a.Adapt(mat.NewDense(3, 5, nil), nil, []int{1, -1, 0})
			require.ErrorIs(t, err, subspace.ErrFeatureMismatch)

			// y, when present, needs one entry per row.
			_, err = a.Adapt(s.X, []float64{1}, s.Domains)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}
}

// TestAligner_FailedRefitKeepsModel checks that no partial state is
// committed by a failing Fit.
func TestAligner_FailedRefitKeepsModel(t *testing.T) {
	t.Parallel()

	s := blobs(t, 12, 10, 4, 5)
	for name, mk := range aligners() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a := mk()
			require.NoError(t, a.Fit(s.X, nil, s.Domains))
			before, err := a.Adapt(s.X, nil, s.Domains)
			require.NoError(t, err)

			err = a.Fit(s.X, nil, onlyLabel(22, -1))
			require.ErrorIs(t, err, domain.ErrMissingSource)
			require.True(t, a.Fitted())

			after, err := a.Adapt(s.X, nil, s.Domains)
			require.NoError(t, err)
			require.True(t, matrix.EqualExact(before, after))
		})
	}
}

// TestAligner_UnassignedRows: rows labelled 0 never influence the fit and
// are still projected at adapt time.
func TestAligner_UnassignedRows(t *testing.T) {
	t.Parallel()

	s := blobs(t, 12, 10, 4, 9)
	withNoise := append([]int(nil), s.Domains...)
	withNoise[0], withNoise[1] = 0, 0
	trimmed := domain.NewPartition(withNoise)
	keep := append(append([]int(nil), trimmed.Source...), trimmed.Target...)
	Xk, err := matrix.SelectRows(s.X, keep)
	require.NoError(t, err)
	lk := make([]int, len(keep))
	for i, j := range keep {
		lk[i] = withNoise[j]
	}

	for name, mk := range aligners() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a, b := mk(), mk()
			require.NoError(t, a.Fit(s.X, nil, withNoise))
			require.NoError(t, b.Fit(Xk, nil, lk))

			Za, err := a.Adapt(Xk, nil, lk)
			require.NoError(t, err)
			Zb, err := b.Adapt(Xk, nil, lk)
			require.NoError(t, err)
			ok, err := matrix.AllClose(Za, Zb, 1e-9, 1e-9)
			require.NoError(t, err)
			require.True(t, ok)

			Z, err := a.Adapt(s.X, nil, withNoise)
			require.NoError(t, err)
			r, _ := Z.Dims()
			require.Equal(t, 22, r)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { subspace.WithComponents(0) })
	require.Panics(t, func() { subspace.WithTol(-1) })
	require.Panics(t, func() { subspace.WithMaxIter(0) })
	require.Panics(t, func() { subspace.WithMu(-0.1) })
	require.Panics(t, func() { subspace.WithKernel(nil) })
	require.Panics(t, func() { subspace.WithKernelName("not-a-kernel") })
	require.Panics(t, func() { subspace.WithLogger(nil) })
	require.NotPanics(t, func() { subspace.WithTradeoff(0) })
}
