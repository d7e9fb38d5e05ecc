// SPDX-License-Identifier: MIT
// Package: subalign/subspace
//
// pca.go — fixed-rank principal component bases for the closed-form aligner.
//
// Solvers:
//   - full:       exact thin SVD of the centered block via stat.PC.
//   - randomized: range finder with Gaussian test matrix, power iterations
//     re-orthonormalised by QR, then a small thin SVD.
//
// Determinism:
//   - Each component's largest-magnitude coefficient is made positive, so
//     repeated fits agree regardless of the SVD sign gauge.
//   - The randomized solver draws only from the rand.Source it is given.

package subspace

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/subalign/matrix"
)

const (
	// autoRandomizedMinDim is the max(n,d) above which SolverAuto may pick
	// the randomized solver.
	autoRandomizedMinDim = 500
	// autoRandomizedRankRatio is the k/min(n,d) ratio below which it does.
	autoRandomizedRankRatio = 0.8

	oversamples        = 10
	powerItersSmall    = 7
	powerItersDefault  = 4
	smallRankThreshold = 0.1
)

// PCA is a fitted principal component basis. It is immutable.
type PCA struct {
	mean       []float64
	components *mat.Dense // k×d, one component per row
	variance   []float64
	solver     PCASolver
}

// resolveSolver maps SolverAuto onto a concrete solver for an n×d block.
func resolveSolver(s PCASolver, n, d, k int) PCASolver {
	if s != SolverAuto {
		return s
	}
	lo := min(n, d)
	if max(n, d) > autoRandomizedMinDim && float64(k) < autoRandomizedRankRatio*float64(lo) {
		return SolverRandomized
	}

	return SolverFull
}

// fitPCA extracts a k-component basis of X.
//
// Errors:
//   - ErrInvalidConfig if k is outside [1, min(n, d)].
//   - matrix.ErrEigenFailed if a factorization does not converge.
func fitPCA(X *mat.Dense, k int, solver PCASolver, src rand.Source) (*PCA, error) {
	n, d := X.Dims()
	if k < 1 || k > min(n, d) {
		return nil, fmt.Errorf("PCA: n_components=%d outside [1, min(%d, %d)]: %w", k, n, d, ErrInvalidConfig)
	}

	centered, mean, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, fmt.Errorf("PCA: %w", err)
	}

	p := &PCA{mean: mean, solver: resolveSolver(solver, n, d, k)}
	switch p.solver {
	case SolverRandomized:
		p.components, p.variance, err = randomizedBasis(centered, k, src)
	default:
		p.components, p.variance, err = fullBasis(X, k)
	}
	if err != nil {
		return nil, fmt.Errorf("PCA(%s): %w", p.solver, err)
	}
	flipSigns(p.components)

	return p, nil
}

// fullBasis delegates to stat.PC, which centers internally.
func fullBasis(X *mat.Dense, k int) (*mat.Dense, []float64, error) {
	var pc stat.PC
	if !pc.PrincipalComponents(X, nil) {
		return nil, nil, matrix.ErrEigenFailed
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs) // d×min(n,d)

	n, d := X.Dims()
	comps := mat.NewDense(k, d, nil)
	comps.Copy(vecs.Slice(0, d, 0, k).T())

	variance := make([]float64, k)
	if n > 1 {
		copy(variance, pc.VarsTo(nil))
	}

	return comps, variance, nil
}

// randomizedBasis approximates the top-k right singular vectors of the
// centered block Xc.
func randomizedBasis(Xc *mat.Dense, k int, src rand.Source) (*mat.Dense, []float64, error) {
	n, d := Xc.Dims()
	lo := min(n, d)
	l := min(k+oversamples, lo)
	iters := powerItersDefault
	if float64(k) < smallRankThreshold*float64(lo) {
		iters = powerItersSmall
	}

	// Stage 1: Gaussian test matrix.
	gauss := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	omega := mat.NewDense(d, l, nil)
	raw := omega.RawMatrix()
	for i := 0; i < d; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+l]
		for j := range row {
			row[j] = gauss.Rand()
		}
	}

	// Stage 2: power iterations on Xc·Xcᵀ.
	var y mat.Dense
	y.Mul(Xc, omega)
	q := orthonormalize(&y, l)
	for it := 0; it < iters; it++ {
		var z mat.Dense
		z.Mul(Xc.T(), q)
		qz := orthonormalize(&z, l)
		y.Reset()
		y.Mul(Xc, qz)
		q = orthonormalize(&y, l)
	}

	// Stage 3: project and factor the small l×d block.
	var b mat.Dense
	b.Mul(q.T(), Xc)
	var svd mat.SVD
	if !svd.Factorize(&b, mat.SVDThin) {
		return nil, nil, matrix.ErrEigenFailed
	}
	var v mat.Dense
	svd.VTo(&v) // d×l
	s := svd.Values(nil)

	comps := mat.NewDense(k, d, nil)
	comps.Copy(v.Slice(0, d, 0, k).T())
	variance := make([]float64, k)
	if n > 1 {
		for i := 0; i < k; i++ {
			variance[i] = s[i] * s[i] / float64(n-1)
		}
	}

	return comps, variance, nil
}

// orthonormalize returns the first l columns of the QR factor Q of Y.
func orthonormalize(Y *mat.Dense, l int) *mat.Dense {
	var qr mat.QR
	qr.Factorize(Y)
	var q mat.Dense
	qr.QTo(&q)
	r, _ := Y.Dims()

	return mat.DenseCopyOf(q.Slice(0, r, 0, l))
}

// flipSigns makes the largest-|v| entry of each row positive.
func flipSigns(comps *mat.Dense) {
	k, _ := comps.Dims()
	for i := 0; i < k; i++ {
		row := comps.RawRowView(i)
		best, at := -1.0, 0
		for j, v := range row {
			if a := math.Abs(v); a > best {
				best, at = a, j
			}
		}
		if row[at] < 0 {
			for j := range row {
				row[j] = -row[j]
			}
		}
	}
}

// Transform projects X onto the basis: (X − mean)·componentsᵀ.
//
// Errors:
//   - matrix.ErrNilMatrix for nil X.
//   - ErrFeatureMismatch if X's column count differs from the fit.
func (p *PCA) Transform(X mat.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("PCA.Transform: %w", err)
	}
	if _, d := X.Dims(); d != len(p.mean) {
		return nil, fmt.Errorf("PCA.Transform: %d features, fitted on %d: %w", d, len(p.mean), ErrFeatureMismatch)
	}
	centered, err := matrix.SubtractColumns(X, p.mean)
	if err != nil {
		return nil, fmt.Errorf("PCA.Transform: %w", err)
	}
	var out mat.Dense
	out.Mul(centered, p.components.T())

	return &out, nil
}

// Components returns a copy of the k×d component matrix.
func (p *PCA) Components() *mat.Dense { return mat.DenseCopyOf(p.components) }

// Mean returns a copy of the per-feature mean removed before projection.
func (p *PCA) Mean() []float64 { return append([]float64(nil), p.mean...) }

// ExplainedVariance returns the variance captured by each component.
func (p *PCA) ExplainedVariance() []float64 { return append([]float64(nil), p.variance...) }

// Solver reports the concrete solver that produced the basis.
func (p *PCA) Solver() PCASolver { return p.solver }

// NComponents is k.
func (p *PCA) NComponents() int {
	k, _ := p.components.Dims()
	return k
}
