// SPDX-License-Identifier: MIT
package subspace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/dataset"
	"github.com/katalvlaran/subalign/domain"
)

// blobs returns an interleaved source/target fixture.
func blobs(t *testing.T, ns, nt, d int, seed uint64) dataset.Sample {
	t.Helper()
	s, err := dataset.ShiftedBlobs(ns, nt, d,
		dataset.WithSeed(seed), dataset.WithInterleave(), dataset.WithRotation(0.4))
	require.NoError(t, err)
	return s
}

// twelvePoints is six 2-D source points around the origin and six target
// points around (3, 3), source rows first.
func twelvePoints() (*mat.Dense, []int) {
	X := mat.NewDense(12, 2, []float64{
		0.0, 0.1,
		0.4, -0.2,
		-0.3, 0.5,
		0.2, 0.3,
		-0.5, -0.4,
		0.1, -0.6,
		3.0, 3.2,
		3.5, 2.7,
		2.6, 3.4,
		3.3, 3.1,
		2.8, 2.5,
		3.6, 3.6,
	})
	labels := []int{1, 1, 1, 1, 1, 1, -1, -1, -1, -1, -1, -1}
	return X, labels
}

// kernelOrdered scatters kernel-ordered rows (source first) of E back to the
// input positions recorded by labels.
func kernelOrdered(t *testing.T, E *mat.Dense, labels []int) *mat.Dense {
	t.Helper()
	p := domain.NewPartition(labels)
	ns, nt := len(p.Source), len(p.Target)
	_, k := E.Dims()
	out, err := domain.Merge(p, E.Slice(0, ns, 0, k), E.Slice(ns, ns+nt, 0, k), nil)
	require.NoError(t, err)
	return out
}

// onlyLabel returns n copies of l.
func onlyLabel(n, l int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = l
	}
	return out
}

func requireFinite(t *testing.T, m mat.Matrix) {
	t.Helper()
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite at (%d,%d): %v", i, j, v)
		}
	}
}
