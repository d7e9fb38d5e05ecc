// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms the aligners need (column centering,
//     row L2 norms, Frobenius normalization) as deterministic compositions
//     over gonum kernels.
//
// Exposed API:
//   - CenterColumns(X)    -> (Xc, means)  // subtract per-column mean
//   - SubtractColumns(X, means) -> Xc     // reuse fitted means on new data
//   - RowNorms(X)         -> norms        // ‖X[i,:]‖₂ per row
//   - NormalizeFrobenius(X) -> (Y, norm)  // Y = X/‖X‖_F (zero matrix unchanged)

package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means with stat.Mean over each column.
//   - Stage 3: Broadcast-subtract via SubtractColumns into a fresh copy.
//
// Returns:
//   - *mat.Dense: centered copy (r×c); X is never mutated.
//   - []float64: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func CenterColumns(X mat.Matrix) (*mat.Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Dims()
	means := make([]float64, c)
	col := make([]float64, r) // scratch column, reused across j
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		means[j] = stat.Mean(col, nil)
	}

	Xc, err := SubtractColumns(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// SubtractColumns returns X with means[j] subtracted from every entry of column j.
// len(means) must equal the column count of X.
// Complexity: O(r*c).
func SubtractColumns(X mat.Matrix, means []float64) (*mat.Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	if err := ValidateVecLen(means, c); err != nil {
		return nil, err
	}

	out := mat.DenseCopyOf(X)
	var i int
	for i = 0; i < r; i++ {
		floats.Sub(out.RawRowView(i), means) // row -= means, in place on the copy
	}

	return out, nil
}

// RowNorms returns the Euclidean norm of every row of X.
// Zero rows yield exactly 0 (never NaN).
// Complexity: O(r*c).
func RowNorms(X mat.Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowNorms, err)
	}
	r, c := X.Dims()
	norms := make([]float64, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, X)
		norms[i] = floats.Norm(row, 2)
	}

	return norms, nil
}

// NormalizeFrobenius returns X/‖X‖_F and the norm used.
// A zero matrix is returned unchanged (copy) with norm 0.
// Complexity: O(r*c).
func NormalizeFrobenius(X mat.Matrix) (*mat.Dense, float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, 0, err
	}
	out := mat.DenseCopyOf(X)
	norm := mat.Norm(out, 2) // Frobenius for matrices
	if norm == 0 {
		return out, 0, nil
	}
	out.Scale(1/norm, out)

	return out, norm, nil
}
