// SPDX-License-Identifier: MIT
// Package: kernel
//
// gram.go — fit-time joint Gram matrix with content-addressed reuse.
//
// Policy:
//   - A Gram owns private copies of the fit-time source/target blocks and the
//     joint matrix built from them; nothing is shared with callers.
//   - Lookup matches by value, never by reference: dimensions, then xxhash
//     fingerprints, then exact element comparison.
//   - A Gram is immutable after NewGram; concurrent reads are safe.

package kernel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/matrix"
)

// Gram is the joint kernel matrix of a fit-time (source, target) pair.
type Gram struct {
	kernel   Kernel
	source   *mat.Dense
	target   *mat.Dense
	fpSource uint64
	fpTarget uint64
	joint    *mat.Dense
}

// NewGram copies Xs and Xt, fingerprints them and builds the joint matrix.
func NewGram(k Kernel, Xs, Xt mat.Matrix) (*Gram, error) {
	if k == nil {
		return nil, kernelErrorf("<nil>", ErrUnknownKernel)
	}
	if err := matrix.ValidateNotNil(Xs); err != nil {
		return nil, kernelErrorf(k.Name(), err)
	}
	if err := matrix.ValidateNotNil(Xt); err != nil {
		return nil, kernelErrorf(k.Name(), err)
	}

	src, tgt := mat.DenseCopyOf(Xs), mat.DenseCopyOf(Xt)
	K, err := Joint(k, src, tgt)
	if err != nil {
		return nil, err
	}

	return &Gram{
		kernel:   k,
		source:   src,
		target:   tgt,
		fpSource: matrix.Fingerprint(src),
		fpTarget: matrix.Fingerprint(tgt),
		joint:    K,
	}, nil
}

// Kernel returns the kernel the matrix was built with.
func (g *Gram) Kernel() Kernel { return g.kernel }

// Matrix returns the joint matrix. Callers must treat it as read-only.
func (g *Gram) Matrix() *mat.Dense { return g.joint }

// SourceRows returns the number of fit-time source rows (n_s).
func (g *Gram) SourceRows() int {
	r, _ := g.source.Dims()
	return r
}

// TargetRows returns the number of fit-time target rows (n_t).
func (g *Gram) TargetRows() int {
	r, _ := g.target.Dims()
	return r
}

// Features returns the fit-time feature count.
func (g *Gram) Features() int {
	_, c := g.source.Dims()
	return c
}

// Lookup returns the stored joint matrix when Xs and Xt equal the fit-time
// blocks by value; otherwise (nil, false).
func (g *Gram) Lookup(Xs, Xt mat.Matrix) (*mat.Dense, bool) {
	if !sameBlock(g.source, g.fpSource, Xs) || !sameBlock(g.target, g.fpTarget, Xt) {
		return nil, false
	}

	return g.joint, true
}

// Map returns the kernel map [k(X, Xs) k(X, Xt)] of arbitrary rows X
// against the fit-time blocks.
func (g *Gram) Map(X mat.Matrix) (*mat.Dense, error) {
	return Cross(g.kernel, X, g.source, g.target)
}

func sameBlock(stored *mat.Dense, fp uint64, X mat.Matrix) bool {
	if matrix.ValidateNotNil(X) != nil {
		return false
	}
	if matrix.ValidateSameShape(stored, X) != nil {
		return false
	}
	if matrix.Fingerprint(X) != fp {
		return false
	}

	return matrix.EqualExact(stored, X)
}
