// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Symmetric eigen decomposition reading only the lower triangle of a
//     (possibly numerically asymmetric) square matrix.
//   - Symmetric-definite generalized eigenproblem B·a = φ·C·a.
//   - Stable index orderings for eigenpair selection.
//
// Determinism:
//   - gonum/LAPACK kernels are deterministic for identical inputs; ordering
//     helpers are stable (ties keep original index order).

package matrix

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// LowerSym builds a symmetric matrix from the lower triangle of m
// (diagonal included). The strict upper triangle of m is ignored, which is
// the LAPACK 'L' convention for symmetric drivers.
// Complexity: O(n^2).
func LowerSym(m mat.Matrix) (*mat.SymDense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	n, _ := m.Dims()
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sym.SetSym(i, j, m.At(i, j))
		}
	}

	return sym, nil
}

// SymEigen decomposes the symmetric matrix given by the lower triangle of m.
// Eigenvalues are returned in ascending order; column k of the returned
// matrix is the unit eigenvector for value k.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare (validation).
//   - ErrEigenFailed when the LAPACK driver does not converge.
//
// Complexity: O(n^3).
func SymEigen(m mat.Matrix) ([]float64, *mat.Dense, error) {
	sym, err := LowerSym(m)
	if err != nil {
		return nil, nil, matrixErrorf(opSymEigen, err)
	}

	return symEigen(sym)
}

func symEigen(sym mat.Symmetric) ([]float64, *mat.Dense, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, nil, matrixErrorf(opSymEigen, ErrEigenFailed)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	return vals, &vecs, nil
}

// GeneralizedEigen is the solution of B·a = φ·C·a.
type GeneralizedEigen struct {
	// Values holds φ in ascending order.
	Values []float64
	// Vectors holds a as columns, C-orthonormal (aᵀ·C·a = I).
	Vectors *mat.Dense
	// Whitened is true when C was not numerically positive definite and the
	// eigen-whitening fallback was used instead of the Cholesky reduction.
	Whitened bool
	// IllConditioned is true when a triangular solve reported a condition
	// number above gonum's tolerance; the result is still returned.
	IllConditioned bool
}

// GeneralizedSymEigen solves the symmetric-definite generalized eigenproblem
// B·a = φ·C·a, reading the lower triangles of B and C.
//
// Implementation:
//   - Stage 1: Cholesky C = L·Lᵀ.
//   - Stage 2: S = L⁻¹·B·L⁻ᵀ (symmetrized), eigen-decompose S.
//   - Stage 3: back-transform a = L⁻ᵀ·v.
//   - Fallback: when the Cholesky factorization fails, whiten with
//     W = U·diag(max(λ, floor)^{-1/2})·Uᵀ from the eigen decomposition of C,
//     S = W·B·W, a = W·v.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch (validation).
//   - ErrEigenFailed when an eigen driver does not converge.
//
// Notes:
//   - floor is the smallest eigenvalue admitted for C in the fallback; pass
//     the diagonal jitter added by the caller.
//
// Complexity: O(n^3).
func GeneralizedSymEigen(B, C mat.Matrix, floor float64) (GeneralizedEigen, error) {
	var res GeneralizedEigen
	symB, err := LowerSym(B)
	if err != nil {
		return res, matrixErrorf(opGeneralizedEig, err)
	}
	symC, err := LowerSym(C)
	if err != nil {
		return res, matrixErrorf(opGeneralizedEig, err)
	}
	if symB.SymmetricDim() != symC.SymmetricDim() {
		return res, matrixErrorf(opGeneralizedEig, ErrDimensionMismatch)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(symC); ok {
		return choleskyReduce(symB, &chol)
	}

	return whitenReduce(symB, symC, floor)
}

// choleskyReduce runs Stages 2–3 of GeneralizedSymEigen on a factorized C.
func choleskyReduce(B *mat.SymDense, chol *mat.Cholesky) (GeneralizedEigen, error) {
	var res GeneralizedEigen
	var L mat.TriDense
	chol.LTo(&L)

	// Y = L⁻¹·B, then S = L⁻¹·Yᵀ = L⁻¹·B·L⁻ᵀ (B symmetric).
	var Y, S mat.Dense
	if err := Y.Solve(&L, B); err != nil {
		if !isCondition(err) {
			return res, matrixErrorf(opGeneralizedEig, err)
		}
		res.IllConditioned = true
	}
	if err := S.Solve(&L, Y.T()); err != nil {
		if !isCondition(err) {
			return res, matrixErrorf(opGeneralizedEig, err)
		}
		res.IllConditioned = true
	}

	vals, V, err := symEigen(symmetrize(&S))
	if err != nil {
		return res, matrixErrorf(opGeneralizedEig, err)
	}

	var A mat.Dense
	if err = A.Solve(L.T(), V); err != nil {
		if !isCondition(err) {
			return res, matrixErrorf(opGeneralizedEig, err)
		}
		res.IllConditioned = true
	}
	res.Values, res.Vectors = vals, &A

	return res, nil
}

// whitenReduce is the fallback path of GeneralizedSymEigen.
func whitenReduce(B, C *mat.SymDense, floor float64) (GeneralizedEigen, error) {
	res := GeneralizedEigen{Whitened: true}
	lam, U, err := symEigen(C)
	if err != nil {
		return res, matrixErrorf(opGeneralizedEig, err)
	}
	if floor <= 0 || math.IsNaN(floor) {
		floor = math.SmallestNonzeroFloat64
	}

	// W = U·diag(λ^{-1/2})·Uᵀ with λ clamped from below.
	n := len(lam)
	scaled := mat.DenseCopyOf(U)
	for j := 0; j < n; j++ {
		s := 1 / math.Sqrt(math.Max(lam[j], floor))
		for i := 0; i < n; i++ {
			scaled.Set(i, j, scaled.At(i, j)*s)
		}
	}
	var W, WB, S mat.Dense
	W.Mul(scaled, U.T())
	WB.Mul(&W, B)
	S.Mul(&WB, &W)

	vals, V, err := symEigen(symmetrize(&S))
	if err != nil {
		return res, matrixErrorf(opGeneralizedEig, err)
	}
	var A mat.Dense
	A.Mul(&W, V)
	res.Values, res.Vectors = vals, &A

	return res, nil
}

// symmetrize returns (S + Sᵀ)/2 as a SymDense.
func symmetrize(S *mat.Dense) *mat.SymDense {
	n, _ := S.Dims()
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(S.At(i, j)+S.At(j, i)))
		}
	}

	return sym
}

func isCondition(err error) bool {
	var c mat.Condition
	return errors.As(err, &c)
}

// ArgsortAscending returns indices ordering vals ascending; ties keep index order.
// Complexity: O(n log n).
func ArgsortAscending(vals []float64) []int {
	idx := identityPerm(len(vals))
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })

	return idx
}

// ArgsortAbsDescending returns indices ordering vals by |v| descending;
// ties keep index order.
// Complexity: O(n log n).
func ArgsortAbsDescending(vals []float64) []int {
	idx := identityPerm(len(vals))
	sort.SliceStable(idx, func(a, b int) bool { return math.Abs(vals[idx[a]]) > math.Abs(vals[idx[b]]) })

	return idx
}

func identityPerm(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}
