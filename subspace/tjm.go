// SPDX-License-Identifier: MIT
// Package: subalign/subspace
//
// tjm.go — Transfer Joint Matching, an alternating solver.
//
// Notation (n = ns + nt, kernel row order: source rows first):
//   K  joint kernel (n×n)     M  MMD weighting, unit Frobenius norm
//   H  centering matrix       G  diagonal reweighting, starts at I
//   A  projection (n×k)       ε  Jitter
//
// Iteration t:
//   1) B = K·M·Kᵀ + tradeoff·G + εI,  C = K·H·Kᵀ + εI.
//   2) Solve B·a = φ·C·a; keep the k smallest φ, shifted by ε. Residual
//      ‖B·A − C·A·diag(φ)‖_F above ResidualTolerance is a warning.
//   3) G_ii = 1/(2‖A_i‖ + ε) for ‖A_i‖ ≠ 0, else 0; target rows G_ii = 1.
//   4) loss = trace(AᵀKMKA) + tradeoff·(Σ_src ‖A_i‖ + ‖A_tgt‖²_F).
//   5) From the second iteration on: stop when last == 0 or
//      |last − loss| / |last| < tol.
//
// Fail-soft: exhausting max_iter is not an error; numerical trouble after
// the first iteration is reported and the last good projection is kept.

package subspace

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/kernel"
	"github.com/katalvlaran/subalign/matrix"
)

const nameTJM = "TJM"

// TJM is the iterative joint matching aligner.
type TJM struct {
	cfg   config
	model atomic.Pointer[tjmModel]
}

type tjmModel struct {
	gram    *kernel.Gram
	proj    *mat.Dense // A, n×k
	weights []float64  // diag G after the last iteration
	report  Report
}

// NewTJM returns an unfitted aligner.
// Honoured options: WithComponents, WithKernel, WithKernelName, WithTradeoff,
// WithMaxIter, WithTol, WithLogger.
func NewTJM(opts ...Option) *TJM {
	return &TJM{cfg: gatherOptions(opts...)}
}

// Fit runs the alternating solver.
//
// Errors:
//   - ErrMissingDomain if either group is empty.
//   - ErrInvalidConfig if k > ns+nt.
//   - matrix.ErrEigenFailed if the first generalized eigensolve fails.
func (t *TJM) Fit(X mat.Matrix, y []float64, domains []int) error {
	b, err := splitFit(X, y, domains)
	if err != nil {
		return alignerErrorf(nameTJM, opFit, err)
	}
	ns, nt := len(b.Partition.Source), len(b.Partition.Target)
	k := resolveComponents(t.cfg.components, X)
	if k > ns+nt {
		return alignerErrorf(nameTJM, opFit, fmt.Errorf(
			"n_components=%d exceeds %d fit rows: %w", k, ns+nt, ErrInvalidConfig))
	}

	gram, err := kernel.NewGram(t.cfg.kernel, b.Source, b.Target)
	if err != nil {
		return alignerErrorf(nameTJM, opFit, err)
	}

	res, err := solveJointMatching(gram.Matrix(), ns, k, t.cfg)
	if err != nil {
		return alignerErrorf(nameTJM, opFit, err)
	}
	t.model.Store(&tjmModel{gram: gram, proj: res.proj, weights: res.weights, report: res.report})

	return nil
}

// jointResult is the outcome of solveJointMatching.
type jointResult struct {
	proj    *mat.Dense
	weights []float64
	report  Report
}

// solveJointMatching runs the TJM iterations on the joint kernel K whose
// first ns rows are source rows.
func solveJointMatching(K *mat.Dense, ns, k int, cfg config) (jointResult, error) {
	n, _ := K.Dims()
	log := cfg.logger

	// Stage 1: loop invariants.
	M, _, err := matrix.NormalizeFrobenius(mmdMatrix(ns, n-ns))
	if err != nil {
		return jointResult{}, err
	}
	var km, kmk, kh, khk mat.Dense
	km.Mul(K, M)
	kmk.Mul(&km, K.T())
	kh.Mul(K, centeringMatrix(n))
	khk.Mul(&kh, K.T())

	C := mat.DenseCopyOf(&khk)
	addDiagonal(C, Jitter)

	G := make([]float64, n)
	for i := range G {
		G[i] = 1
	}

	var (
		report   Report
		A        *mat.Dense
		lastLoss = -2 * cfg.tol
	)

	// Stage 2: alternate.
	for it := 0; it < cfg.maxIter; it++ {
		B := mat.DenseCopyOf(&kmk)
		for i := 0; i < n; i++ {
			B.Set(i, i, B.At(i, i)+cfg.tradeoff*G[i]+Jitter)
		}

		ge, err := matrix.GeneralizedSymEigen(B, C, Jitter)
		if err == nil {
			err = matrix.ValidateFinite(ge.Vectors)
		}
		if err != nil {
			if A == nil {
				return jointResult{}, err
			}
			report.warn(it, WarnEigenFailed, 0)
			log.Warn("TJM eigensolve failed; keeping previous projection", "iter", it, "err", err)
			break
		}
		if ge.Whitened {
			report.warn(it, WarnWhitened, 0)
		}
		if ge.IllConditioned {
			report.warn(it, WarnIllConditioned, 0)
		}

		idx, phi := smallestEigenpairs(ge.Values, k)
		next, err := matrix.SelectColumns(ge.Vectors, idx)
		if err != nil {
			return jointResult{}, err
		}
		A = next

		residual := eigenResidual(B, C, A, phi)
		if residual > ResidualTolerance {
			report.warn(it, WarnResidual, residual)
			log.Warn("TJM generalized eigensolve is inaccurate", "iter", it, "residual", residual)
		}

		// Reweighting.
		norms, err := matrix.RowNorms(A)
		if err != nil {
			return jointResult{}, err
		}
		updateWeights(G, norms, ns)

		// Loss.
		mmdLoss := quadTrace(A, &kmk)
		reg := regularizer(norms, ns)
		loss := mmdLoss + cfg.tradeoff*reg

		report.Iterations = it + 1
		report.Losses = append(report.Losses, loss)
		report.MMDLosses = append(report.MMDLosses, mmdLoss)
		report.Regularizers = append(report.Regularizers, reg)
		report.Residuals = append(report.Residuals, residual)

		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("TJM iteration", "iter", it, "loss", loss, "mmd", mmdLoss,
				"regularizer", reg, "residual", residual, "constraint", constraintDistance(A, &khk))
		}

		if it > 0 && lossSettled(lastLoss, loss, cfg.tol) {
			report.Converged = true
			break
		}
		lastLoss = loss
	}

	log.Debug("TJM finished", "iterations", report.Iterations, "converged", report.Converged,
		"warnings", len(report.Warnings))

	return jointResult{proj: A, weights: G, report: report}, nil
}

// smallestEigenpairs returns the indices of the k smallest eigenvalues and
// those eigenvalues shifted by Jitter, the shift the jittered B carries.
func smallestEigenpairs(values []float64, k int) ([]int, []float64) {
	idx := matrix.ArgsortAscending(values)[:k]
	phi := make([]float64, k)
	for i, j := range idx {
		phi[i] = values[j] + Jitter
	}

	return idx, phi
}

// lossSettled is the stop rule: the previous loss is exactly zero, or the
// change relative to its magnitude is below tol.
func lossSettled(last, loss, tol float64) bool {
	if last == 0 {
		return true
	}

	return math.Abs(last-loss)/math.Abs(last) < tol
}

// addDiagonal adds v to every diagonal entry of the square matrix m.
func addDiagonal(m *mat.Dense, v float64) {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)+v)
	}
}

// eigenResidual returns ‖B·A − C·A·diag(φ)‖_F.
func eigenResidual(B, C, A *mat.Dense, phi []float64) float64 {
	var ba, ca mat.Dense
	ba.Mul(B, A)
	ca.Mul(C, A)
	r, _ := ca.Dims()
	for i := 0; i < r; i++ {
		row := ca.RawRowView(i)
		for j := range row {
			row[j] *= phi[j]
		}
	}
	ba.Sub(&ba, &ca)

	return mat.Norm(&ba, 2)
}

// updateWeights applies the ℓ2,1 reweighting to source rows and pins target
// rows to 1.
func updateWeights(G, norms []float64, ns int) {
	for i, nrm := range norms {
		switch {
		case i >= ns:
			G[i] = 1
		case nrm != 0:
			G[i] = 1 / (2*nrm + Jitter)
		default:
			G[i] = 0
		}
	}
}

// regularizer returns Σ_src ‖A_i‖ + Σ_tgt ‖A_i‖².
func regularizer(norms []float64, ns int) float64 {
	var src, tgt float64
	for i, nrm := range norms {
		if i < ns {
			src += nrm
		} else {
			tgt += nrm * nrm
		}
	}

	return src + tgt
}

// quadTrace returns trace(Aᵀ·Q·A).
func quadTrace(A, Q *mat.Dense) float64 {
	var qa, prod mat.Dense
	qa.Mul(Q, A)
	prod.MulElem(A, &qa)

	return mat.Sum(&prod)
}

// constraintDistance returns ‖Aᵀ·Q·A − I‖_F.
func constraintDistance(A, Q *mat.Dense) float64 {
	var qa, g mat.Dense
	qa.Mul(Q, A)
	g.Mul(A.T(), &qa)
	_, k := A.Dims()
	g.Sub(&g, identity(k))

	return mat.Norm(&g, 2)
}

// Adapt returns K(X, fit blocks)·A in input row order.
func (t *TJM) Adapt(X mat.Matrix, y []float64, domains []int) (*mat.Dense, error) {
	m := t.model.Load()
	if m == nil {
		return nil, alignerErrorf(nameTJM, opAdapt, ErrNotFitted)
	}
	b, err := splitAdapt(X, y, domains, m.gram.Features())
	if err != nil {
		return nil, alignerErrorf(nameTJM, opAdapt, err)
	}
	out, err := kernelProject(m.gram, m.proj, b, X)
	if err != nil {
		return nil, alignerErrorf(nameTJM, opAdapt, err)
	}

	return out, nil
}

// Fitted reports whether Fit has succeeded at least once.
func (t *TJM) Fitted() bool { return t.model.Load() != nil }

// Projection returns a copy of A (n×k, source rows first).
func (t *TJM) Projection() (*mat.Dense, error) {
	m := t.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	return mat.DenseCopyOf(m.proj), nil
}

// Weights returns the diagonal of the final reweighting matrix G.
func (t *TJM) Weights() ([]float64, error) {
	m := t.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	return append([]float64(nil), m.weights...), nil
}

// Gram returns the fit-time kernel cache. Its matrices must not be modified.
func (t *TJM) Gram() (*kernel.Gram, error) {
	m := t.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	return m.gram, nil
}

// Report returns the iteration diagnostics.
func (t *TJM) Report() (Report, error) {
	m := t.model.Load()
	if m == nil {
		return Report{}, ErrNotFitted
	}
	return m.report.clone(), nil
}
