// SPDX-License-Identifier: MIT
// Package: subalign/subspace
//
// alignment.go — closed-form Subspace Alignment.
//
// Fit:
//   1) PCA_s on the source block, PCA_t on the target block, both rank k.
//   2) M = C_s · C_tᵀ (k×k), where C_* are the k×d component matrices.
//
// Adapt:
//   source rows      → PCA_s.Transform(X_s) · M
//   target rows      → PCA_t.Transform(X_t)
//   unassigned rows  → PCA_t.Transform(X_u)
//
// Complexity: dominated by the two PCA fits.

package subspace

import (
	"fmt"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/domain"
)

const nameSA = "SubspaceAlignment"

// SubspaceAlignment aligns independent source and target PCA bases with a
// linear map.
type SubspaceAlignment struct {
	cfg   config
	model atomic.Pointer[alignmentModel]
}

type alignmentModel struct {
	source, target *PCA
	m              *mat.Dense // k×k
	features       int
}

// NewSubspaceAlignment returns an unfitted aligner.
// Honoured options: WithComponents, WithSeed, WithPCASolver, WithLogger.
func NewSubspaceAlignment(opts ...Option) *SubspaceAlignment {
	return &SubspaceAlignment{cfg: gatherOptions(opts...)}
}

// Fit learns both bases and the alignment map.
//
// Errors:
//   - ErrMissingDomain if either group is empty.
//   - ErrInvalidConfig if k exceeds min(rows, features) of either block.
func (a *SubspaceAlignment) Fit(X mat.Matrix, y []float64, domains []int) error {
	b, err := splitFit(X, y, domains)
	if err != nil {
		return alignerErrorf(nameSA, opFit, err)
	}
	k := resolveComponents(a.cfg.components, X)
	_, d := X.Dims()
	for _, blk := range []struct {
		name string
		rows int
	}{{"source", len(b.Partition.Source)}, {"target", len(b.Partition.Target)}} {
		if k > min(blk.rows, d) {
			return alignerErrorf(nameSA, opFit, fmt.Errorf(
				"n_components=%d exceeds min(%d, %d) of the %s block: %w", k, blk.rows, d, blk.name, ErrInvalidConfig))
		}
	}

	ps, err := fitPCA(b.Source, k, a.cfg.solver, deriveSource(a.cfg.seed, streamSource))
	if err != nil {
		return alignerErrorf(nameSA, opFit, err)
	}
	pt, err := fitPCA(b.Target, k, a.cfg.solver, deriveSource(a.cfg.seed, streamTarget))
	if err != nil {
		return alignerErrorf(nameSA, opFit, err)
	}

	var m mat.Dense
	m.Mul(ps.components, pt.components.T())

	a.cfg.logger.Debug("subspace alignment fitted",
		"n_components", k, "source_rows", len(b.Partition.Source), "target_rows", len(b.Partition.Target),
		"source_solver", ps.solver.String(), "target_solver", pt.solver.String())
	a.model.Store(&alignmentModel{source: ps, target: pt, m: &m, features: d})

	return nil
}

// Adapt projects X. Any group may be empty.
func (a *SubspaceAlignment) Adapt(X mat.Matrix, y []float64, domains []int) (*mat.Dense, error) {
	m := a.model.Load()
	if m == nil {
		return nil, alignerErrorf(nameSA, opAdapt, ErrNotFitted)
	}
	b, err := splitAdapt(X, y, domains, m.features)
	if err != nil {
		return nil, alignerErrorf(nameSA, opAdapt, err)
	}

	var src, tgt, un *mat.Dense
	if b.Source != nil {
		proj, err := m.source.Transform(b.Source)
		if err != nil {
			return nil, alignerErrorf(nameSA, opAdapt, err)
		}
		src = new(mat.Dense)
		src.Mul(proj, m.m)
	}
	if b.Target != nil {
		if tgt, err = m.target.Transform(b.Target); err != nil {
			return nil, alignerErrorf(nameSA, opAdapt, err)
		}
	}
	if b.Unassigned != nil {
		if un, err = m.target.Transform(b.Unassigned); err != nil {
			return nil, alignerErrorf(nameSA, opAdapt, err)
		}
	}

	out, err := domain.Merge(b.Partition, src, tgt, un)
	if err != nil {
		return nil, alignerErrorf(nameSA, opAdapt, err)
	}

	return out, nil
}

// Fitted reports whether Fit has succeeded at least once.
func (a *SubspaceAlignment) Fitted() bool { return a.model.Load() != nil }

// SourcePCA returns the source basis, or nil before Fit.
func (a *SubspaceAlignment) SourcePCA() *PCA {
	if m := a.model.Load(); m != nil {
		return m.source
	}
	return nil
}

// TargetPCA returns the target basis, or nil before Fit.
func (a *SubspaceAlignment) TargetPCA() *PCA {
	if m := a.model.Load(); m != nil {
		return m.target
	}
	return nil
}

// SourceComponents returns a copy of the k×d source components.
func (a *SubspaceAlignment) SourceComponents() (*mat.Dense, error) {
	m := a.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	return m.source.Components(), nil
}

// TargetComponents returns a copy of the k×d target components.
func (a *SubspaceAlignment) TargetComponents() (*mat.Dense, error) {
	m := a.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	return m.target.Components(), nil
}

// Alignment returns a copy of the k×k map M.
func (a *SubspaceAlignment) Alignment() (*mat.Dense, error) {
	m := a.model.Load()
	if m == nil {
		return nil, ErrNotFitted
	}
	return mat.DenseCopyOf(m.m), nil
}
