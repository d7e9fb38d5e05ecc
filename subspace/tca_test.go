// SPDX-License-Identifier: MIT
package subspace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/domain"
	"github.com/katalvlaran/subalign/kernel"
	"github.com/katalvlaran/subalign/matrix"
	"github.com/katalvlaran/subalign/subspace"
)

// TestTCA_ReproducesFitEmbedding: adapt on the fit data equals K·V with
// kernel-ordered rows returned to their input positions.
func TestTCA_ReproducesFitEmbedding(t *testing.T) {
	t.Parallel()

	s := blobs(t, 9, 7, 3, 21)
	tca := subspace.NewTCA(subspace.WithComponents(3), subspace.WithMu(0.5))
	require.NoError(t, tca.Fit(s.X, nil, s.Domains))

	g, err := tca.Gram()
	require.NoError(t, err)
	V, err := tca.Eigenvectors()
	require.NoError(t, err)
	var KV mat.Dense
	KV.Mul(g.Matrix(), V)

	Z, err := tca.Adapt(s.X, nil, s.Domains)
	require.NoError(t, err)
	require.True(t, matrix.EqualExact(kernelOrdered(t, &KV, s.Domains), Z))
}

// TestTCA_EigenvalueOrder: selected |λ| are non-increasing and the
// eigenvectors have one row per fit sample.
func TestTCA_EigenvalueOrder(t *testing.T) {
	t.Parallel()

	s := blobs(t, 10, 10, 3, 22)
	tca := subspace.NewTCA(subspace.WithComponents(5), subspace.WithKernelName(kernel.NameLinear))
	require.NoError(t, tca.Fit(s.X, nil, s.Domains))

	vals, err := tca.Eigenvalues()
	require.NoError(t, err)
	require.Len(t, vals, 5)
	for i := 1; i < len(vals); i++ {
		require.GreaterOrEqual(t, math.Abs(vals[i-1]), math.Abs(vals[i]))
	}

	V, err := tca.Eigenvectors()
	require.NoError(t, err)
	r, c := V.Dims()
	require.Equal(t, 20, r)
	require.Equal(t, 5, c)

	rep, err := tca.Report()
	require.NoError(t, err)
	require.Equal(t, 1, rep.Iterations)
	require.True(t, rep.Converged)
}

// TestTCA_NewDataUsesCrossKernel: perturbed inputs bypass the cache.
func TestTCA_NewDataUsesCrossKernel(t *testing.T) {
	t.Parallel()

	s := blobs(t, 8, 8, 3, 23)
	tca := subspace.NewTCA(subspace.WithComponents(2))
	require.NoError(t, tca.Fit(s.X, nil, s.Domains))

	X := mat.DenseCopyOf(s.X)
	X.Set(0, 0, X.At(0, 0)+0.25)

	g, err := tca.Gram()
	require.NoError(t, err)
	_, hit := g.Lookup(mustSplit(t, X, s.Domains))
	require.False(t, hit)

	Kx, err := g.Map(X)
	require.NoError(t, err)
	V, err := tca.Eigenvectors()
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(Kx, V)

	Z, err := tca.Adapt(X, nil, s.Domains)
	require.NoError(t, err)
	require.True(t, matrix.EqualExact(&want, Z))
}

// TestTCA_ComponentBound: k may reach ns+nt but not exceed it.
func TestTCA_ComponentBound(t *testing.T) {
	t.Parallel()

	s := blobs(t, 3, 2, 6, 24)
	require.NoError(t, subspace.NewTCA(subspace.WithComponents(5)).Fit(s.X, nil, s.Domains))
	err := subspace.NewTCA(subspace.WithComponents(6)).Fit(s.X, nil, s.Domains)
	require.ErrorIs(t, err, subspace.ErrInvalidConfig)
}

func mustSplit(t *testing.T, X mat.Matrix, labels []int) (mat.Matrix, mat.Matrix) {
	t.Helper()
	b, err := domain.Split(X, labels)
	require.NoError(t, err)
	return b.Source, b.Target
}
