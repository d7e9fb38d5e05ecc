// SPDX-License-Identifier: MIT
package subspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUpdateWeights covers every branch of the reweighting: a zero-norm
// source row, a nonzero source row and target rows.
func TestUpdateWeights(t *testing.T) {
	G := []float64{7, 7, 7, 7}
	norms := []float64{0, 0.25, 0, 3}

	updateWeights(G, norms, 2)

	require.Equal(t, 0.0, G[0], "zero-norm source row")
	require.Equal(t, 1/(2*0.25+Jitter), G[1])
	require.Equal(t, 1.0, G[2], "target row with zero norm")
	require.Equal(t, 1.0, G[3])
	for _, g := range G {
		require.False(t, math.IsNaN(g) || math.IsInf(g, 0))
	}
}

// TestSmallestEigenpairs keeps the k smallest values in ascending order,
// shifted by Jitter.
func TestSmallestEigenpairs(t *testing.T) {
	idx, phi := smallestEigenpairs([]float64{3, -1, 2, 0.5}, 2)

	require.Equal(t, []int{1, 3}, idx)
	require.Equal(t, []float64{-1 + Jitter, 0.5 + Jitter}, phi)
}

func TestLossSettled(t *testing.T) {
	tests := []struct {
		name       string
		last, loss float64
		tol        float64
		want       bool
	}{
		{"zero previous loss", 0, 5, 0.01, true},
		{"small relative change", 100, 100.5, 0.01, true},
		{"large relative change", 100, 150, 0.01, false},
		{"negative previous loss, large change", -5e-16, -4e-16, 0.01, false},
		{"negative previous loss, small change", -5e-16, -5.0001e-16, 0.01, true},
		{"zero tolerance", 1, 1, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, lossSettled(tc.last, tc.loss, tc.tol))
		})
	}
}
