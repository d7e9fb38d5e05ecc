// SPDX-License-Identifier: MIT
// Package: subalign/subspace
//
// tca.go — Transfer Component Analysis.
//
// Fit (n = ns + nt):
//   1) K = joint kernel over [X_s; X_t]                       (n×n)
//   2) L = MMD weighting, H = centering                       (n×n)
//   3) S = solve(I + μ·K·L·K, K·H·K)                          (LU, no inverse)
//   4) eigh on the lower triangle of S; keep the k eigenvectors with the
//      largest |λ|, ties by original index.
//
// Adapt: K(X, fit blocks) · V, reusing the stored K when the input blocks
// equal the fit blocks.

package subspace

import (
	"errors"
	"fmt"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/kernel"
	"github.com/katalvlaran/subalign/matrix"
)

const nameTCA = "TCA"

// TCA is the closed-form kernel component aligner.
type TCA struct {
	cfg   config
	model atomic.Pointer[tcaModel]
}

type tcaModel struct {
	gram    *kernel.Gram
	vectors *mat.Dense // n×k
	values  []float64  // |λ| non-increasing
	report  Report
}

// NewTCA returns an unfitted aligner.
// Honoured options: WithComponents, WithKernel, WithKernelName, WithMu, WithLogger.
func NewTCA(opts ...Option) *TCA {
	return &TCA{cfg: gatherOptions(opts...)}
}

// Fit solves the TCA eigenproblem.
//
// Errors:
//   - ErrMissingDomain if either group is empty.
//   - ErrInvalidConfig if k > ns+nt.
//   - matrix.ErrNaNInf if the regularised solve yields non-finite values.
//   - matrix.ErrEigenFailed if the eigendecomposition does not converge.
func (t *TCA) Fit(X mat.Matrix, y []float64, domains []int) error {
	b, err := splitFit(X, y, domains)
	if err != nil {
		return alignerErrorf(nameTCA, opFit, err)
	}
	ns, nt := len(b.Partition.Source), len(b.Partition.Target)
	n := ns + nt
	k := resolveComponents(t.cfg.components, X)
	if k > n {
		return alignerErrorf(nameTCA, opFit, fmt.Errorf(
			"n_components=%d exceeds %d fit rows: %w", k, n, ErrInvalidConfig))
	}

	gram, err := kernel.NewGram(t.cfg.kernel, b.Source, b.Target)
	if err != nil {
		return alignerErrorf(nameTCA, opFit, err)
	}
	K := gram.Matrix()

	// Stage 1: K·L·K and K·H·K.
	var kl, klk, kh, khk mat.Dense
	kl.Mul(K, mmdMatrix(ns, nt))
	klk.Mul(&kl, K)
	kh.Mul(K, centeringMatrix(n))
	khk.Mul(&kh, K)

	// Stage 2: (I + μ·KLK) S = KHK.
	var lhs mat.Dense
	lhs.Scale(t.cfg.mu, &klk)
	lhs.Add(&lhs, identity(n))

	var report Report
	var sol mat.Dense
	if err = sol.Solve(&lhs, &khk); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return alignerErrorf(nameTCA, opFit, err)
		}
		report.warn(0, WarnIllConditioned, float64(cond))
		t.cfg.logger.Warn("TCA regularised system is ill-conditioned", "condition", float64(cond))
	}
	if err = matrix.ValidateFinite(&sol); err != nil {
		return alignerErrorf(nameTCA, opFit, err)
	}

	// Stage 3: eigh + selection by |λ|.
	vals, vecs, err := matrix.SymEigen(&sol)
	if err != nil {
		return alignerErrorf(nameTCA, opFit, err)
	}
	idx := matrix.ArgsortAbsDescending(vals)[:k]
	vectors, err := matrix.SelectColumns(vecs, idx)
	if err != nil {
		return alignerErrorf(nameTCA, opFit, err)
	}
	values := make([]float64, k)
	for i, j := range idx {
		values[i] = vals[j]
	}

	report.Iterations, report.Converged = 1, true
	t.cfg.logger.Debug("TCA fitted", "kernel", gram.Kernel().Name(), "n_components", k,
		"source_rows", ns, "target_rows", nt, "leading_eigenvalue", values[0])
	t.model.Store(&tcaModel{gram: gram, vectors: vectors, values: values, report: report})

	return nil
}

// Adapt returns K(X, fit blocks)·V in input row order.
func (t *TCA) Adapt(X mat.Matrix, y []float64, domains []int) (*mat.Dense, error) {
	m := t.model.Load()
	if m == nil {
		return nil, alignerErrorf(nameTCA, opAdapt, ErrNotFitted)
	}
	b, err := splitAdapt(X, y, domains, m.gram.Features())
	if err != nil {
		return nil, alignerErrorf(nameTCA, opAdapt, err)
	}
	out, err := kernelProject(m.gram, m.vectors, b, X)
	if err != nil {
		return nil, alignerErrorf(nameTCA, opAdapt, err)
	}

	return out, nil
}

// Fitted reports whether Fit has succeeded at least once.
func (t *TCA) Fitted() bool { return t.model.Load() != nil }

// Eigenvectors returns a copy of the n×k selected eigenvectors (kernel row
// order: source rows first).
func (t *TCA) Eigenvectors() (*mat.Dense, error) {
	m := t.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	return mat.DenseCopyOf(m.vectors), nil
}

// Eigenvalues returns the selected eigenvalues, |λ| non-increasing.
func (t *TCA) Eigenvalues() ([]float64, error) {
	m := t.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	return append([]float64(nil), m.values...), nil
}

// Gram returns the fit-time kernel cache. Its matrices must not be modified.
func (t *TCA) Gram() (*kernel.Gram, error) {
	m := t.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	return m.gram, nil
}

// Report returns the fit diagnostics.
func (t *TCA) Report() (Report, error) {
	m := t.model.Load()
	if m == nil {
		return Report{}, ErrNotFitted
	}
	return m.report.clone(), nil
}
