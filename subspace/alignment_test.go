// SPDX-License-Identifier: MIT
package subspace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/dataset"
	"github.com/katalvlaran/subalign/domain"
	"github.com/katalvlaran/subalign/matrix"
	"github.com/katalvlaran/subalign/subspace"
)

// TestSubspaceAlignment_Shapes fits 10×5 source and 8×5 target rows with k=3.
func TestSubspaceAlignment_Shapes(t *testing.T) {
	t.Parallel()

	s, err := dataset.ShiftedBlobs(10, 8, 5, dataset.WithSeed(3), dataset.WithClasses(3))
	require.NoError(t, err)

	sa := subspace.NewSubspaceAlignment(subspace.WithComponents(3))
	require.NoError(t, sa.Fit(s.X, nil, s.Domains))

	M, err := sa.Alignment()
	require.NoError(t, err)
	r, c := M.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	Cs, err := sa.SourceComponents()
	require.NoError(t, err)
	r, c = Cs.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 5, c)

	Ct, err := sa.TargetComponents()
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(Cs, Ct.T())
	require.True(t, mat.EqualApprox(&want, M, 1e-15))
}

// TestSubspaceAlignment_AdaptSource: adapt on the fit-time source block is
// bit-for-bit PCA_s.Transform(X_s)·M; target rows skip M.
func TestSubspaceAlignment_AdaptSource(t *testing.T) {
	t.Parallel()

	s, err := dataset.ShiftedBlobs(10, 8, 5, dataset.WithSeed(4))
	require.NoError(t, err)
	sa := subspace.NewSubspaceAlignment(subspace.WithComponents(3), subspace.WithSeed(42))
	require.NoError(t, sa.Fit(s.X, nil, s.Domains))

	b, err := domain.Split(s.X, s.Domains)
	require.NoError(t, err)
	M, err := sa.Alignment()
	require.NoError(t, err)

	proj, err := sa.SourcePCA().Transform(b.Source)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(proj, M)

	got, err := sa.Adapt(b.Source, nil, onlyLabel(10, 1))
	require.NoError(t, err)
	require.True(t, matrix.EqualExact(&want, got))

	wantT, err := sa.TargetPCA().Transform(b.Target)
	require.NoError(t, err)
	gotT, err := sa.Adapt(b.Target, nil, onlyLabel(8, -1))
	require.NoError(t, err)
	require.True(t, matrix.EqualExact(wantT, gotT))
}

// TestSubspaceAlignment_ComponentBound: k = min(rows, features) is accepted,
// one more is rejected.
func TestSubspaceAlignment_ComponentBound(t *testing.T) {
	t.Parallel()

	s, err := dataset.ShiftedBlobs(10, 8, 5, dataset.WithSeed(5))
	require.NoError(t, err)

	require.NoError(t, subspace.NewSubspaceAlignment(subspace.WithComponents(5)).Fit(s.X, nil, s.Domains))
	require.NoError(t, subspace.NewSubspaceAlignment().Fit(s.X, nil, s.Domains), "default k = min(n, d)")

	sa := subspace.NewSubspaceAlignment(subspace.WithComponents(6))
	err = sa.Fit(s.X, nil, s.Domains)
	require.ErrorIs(t, err, subspace.ErrInvalidConfig)
	require.False(t, sa.Fitted())

	// The bound is per block: 3 target rows cap k at 3.
	small, err := dataset.ShiftedBlobs(10, 3, 5, dataset.WithSeed(5))
	require.NoError(t, err)
	require.NoError(t, subspace.NewSubspaceAlignment(subspace.WithComponents(3)).Fit(small.X, nil, small.Domains))
	err = subspace.NewSubspaceAlignment(subspace.WithComponents(4)).Fit(small.X, nil, small.Domains)
	require.ErrorIs(t, err, subspace.ErrInvalidConfig)
}

// TestSubspaceAlignment_AccessorsBeforeFit report ErrNotFitted.
func TestSubspaceAlignment_AccessorsBeforeFit(t *testing.T) {
	t.Parallel()

	sa := subspace.NewSubspaceAlignment()
	_, err := sa.Alignment()
	require.ErrorIs(t, err, subspace.ErrNotFitted)
	_, err = sa.SourceComponents()
	require.ErrorIs(t, err, subspace.ErrNotFitted)
	require.Nil(t, sa.SourcePCA())
}

// TestPCA_RandomizedMatchesFull: with oversampling covering the full rank
// the randomized basis equals the exact one up to rounding, and the sign
// convention makes both comparable.
func TestPCA_RandomizedMatchesFull(t *testing.T) {
	t.Parallel()

	s, err := dataset.ShiftedBlobs(30, 25, 5, dataset.WithSeed(8), dataset.WithClasses(4))
	require.NoError(t, err)

	full := subspace.NewSubspaceAlignment(subspace.WithComponents(2), subspace.WithPCASolver(subspace.SolverFull))
	rnd := subspace.NewSubspaceAlignment(subspace.WithComponents(2),
		subspace.WithPCASolver(subspace.SolverRandomized), subspace.WithSeed(99))
	require.NoError(t, full.Fit(s.X, nil, s.Domains))
	require.NoError(t, rnd.Fit(s.X, nil, s.Domains))
	require.Equal(t, subspace.SolverFull, full.SourcePCA().Solver())
	require.Equal(t, subspace.SolverRandomized, rnd.SourcePCA().Solver())

	a, err := full.SourceComponents()
	require.NoError(t, err)
	b, err := rnd.SourceComponents()
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(a, b, 1e-8))

	va, vb := full.SourcePCA().ExplainedVariance(), rnd.SourcePCA().ExplainedVariance()
	require.InDeltaSlice(t, va, vb, 1e-8)
	require.GreaterOrEqual(t, va[0], va[1])

	// Largest-magnitude coefficient of each component is positive.
	for i := 0; i < 2; i++ {
		row := a.RawRowView(i)
		best := 0
		for j := range row {
			if math.Abs(row[j]) > math.Abs(row[best]) {
				best = j
			}
		}
		require.Positive(t, row[best])
	}
}

// TestPCA_RandomizedSeedDeterminism: same seed ⇒ identical bases.
func TestPCA_RandomizedSeedDeterminism(t *testing.T) {
	t.Parallel()

	s, err := dataset.ShiftedBlobs(40, 40, 6, dataset.WithSeed(2))
	require.NoError(t, err)
	fit := func() *mat.Dense {
		sa := subspace.NewSubspaceAlignment(subspace.WithComponents(1),
			subspace.WithPCASolver(subspace.SolverRandomized), subspace.WithSeed(7))
		require.NoError(t, sa.Fit(s.X, nil, s.Domains))
		M, err := sa.Alignment()
		require.NoError(t, err)
		return M
	}
	require.True(t, matrix.EqualExact(fit(), fit()))
}
