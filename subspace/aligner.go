// SPDX-License-Identifier: MIT
// Package: subalign/subspace
//
// aligner.go — the shared fit/adapt contract and input preparation.
//
// Contract:
//   • Fit validates, computes a complete model, then publishes it with one
//     atomic store. A failed Fit leaves the previous model (or none) intact.
//   • Adapt only loads the published model and allocates fresh outputs, so
//     concurrent Adapt calls on a fitted aligner are safe. Fit is not safe
//     to run concurrently with other calls on the same instance.
//   • Output row order always matches input row order.

package subspace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/domain"
	"github.com/katalvlaran/subalign/matrix"
)

// Aligner learns a domain-invariant projection from a combined matrix whose
// rows are tagged source (label > 0), target (label < 0) or unassigned (0).
//
// y is an optional per-row supervision vector; it may be nil, and when
// present must have one entry per row. None of the aligners read it.
type Aligner interface {
	// Fit learns the transform. It requires at least one source and one
	// target row.
	Fit(X mat.Matrix, y []float64, domains []int) error
	// Adapt projects X through the fitted transform. Requires a prior Fit.
	Adapt(X mat.Matrix, y []float64, domains []int) (*mat.Dense, error)
	// Fitted reports whether a model is available.
	Fitted() bool
}

var (
	_ Aligner = (*SubspaceAlignment)(nil)
	_ Aligner = (*TCA)(nil)
	_ Aligner = (*TJM)(nil)
)

// splitInput validates X, y and domains and splits X into blocks.
func splitInput(X mat.Matrix, y []float64, domains []int) (domain.Blocks, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return domain.Blocks{}, err
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return domain.Blocks{}, err
	}
	n, _ := X.Dims()
	if y != nil {
		if err := matrix.ValidateVecLen(y, n); err != nil {
			return domain.Blocks{}, fmt.Errorf("y: %w", err)
		}
	}

	return domain.Split(X, domains)
}

// splitFit is splitInput plus the both-groups requirement of Fit.
func splitFit(X mat.Matrix, y []float64, domains []int) (domain.Blocks, error) {
	b, err := splitInput(X, y, domains)
	if err != nil {
		return domain.Blocks{}, err
	}
	if err = b.RequireBoth(); err != nil {
		return domain.Blocks{}, err
	}

	return b, nil
}

// splitAdapt is splitInput plus the feature-count check against the fit.
func splitAdapt(X mat.Matrix, y []float64, domains []int, features int) (domain.Blocks, error) {
	b, err := splitInput(X, y, domains)
	if err != nil {
		return domain.Blocks{}, err
	}
	if _, d := X.Dims(); d != features {
		return domain.Blocks{}, fmt.Errorf("%d features, fitted on %d: %w", d, features, ErrFeatureMismatch)
	}

	return b, nil
}

// resolveComponents returns the configured k, or min(n, d) of the combined
// input when unset.
func resolveComponents(k int, X mat.Matrix) int {
	if k > 0 {
		return k
	}
	n, d := X.Dims()

	return min(n, d)
}
