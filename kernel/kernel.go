// SPDX-License-Identifier: MIT
// Package: kernel
//
// kernel.go — the Kernel contract and the pairwise evaluation loops.
//
// Contract:
//   - Pairwise(X, Y) returns the rows(X)×rows(Y) similarity matrix.
//   - Self(k, X) returns the square self-similarity, symmetric by
//     construction (upper triangle evaluated, lower triangle mirrored).
//   - Kernels are pure: no state is mutated by evaluation.

package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/matrix"
)

// Kernel computes pairwise similarities between the rows of two blocks.
type Kernel interface {
	// Name identifies the kernel in logs and errors.
	Name() string

	// Pairwise returns K with K[i,j] = k(X[i,:], Y[j,:]).
	// X and Y must share a column count.
	Pairwise(X, Y mat.Matrix) (*mat.Dense, error)
}

// PointFunc is a similarity between two rows of equal length.
type PointFunc func(x, y []float64) float64

// BlockFunc computes a whole similarity block at once; it must return a
// rows(X)×rows(Y) matrix.
type BlockFunc func(X, Y mat.Matrix) (*mat.Dense, error)

// FromPointFunc wraps a row-level similarity as a Kernel.
// Panics on nil fn (programmer error).
func FromPointFunc(name string, fn PointFunc) Kernel {
	if fn == nil {
		panic("kernel: FromPointFunc(nil)")
	}

	return pointKernel{name: name, eval: func(x, y []float64, _ params) float64 { return fn(x, y) }}
}

// FromBlockFunc wraps a block-level similarity as a Kernel.
// Panics on nil fn (programmer error).
func FromBlockFunc(name string, fn BlockFunc) Kernel {
	if fn == nil {
		panic("kernel: FromBlockFunc(nil)")
	}

	return blockKernel{name: name, fn: fn}
}

type blockKernel struct {
	name string
	fn   BlockFunc
}

func (k blockKernel) Name() string { return k.name }

func (k blockKernel) Pairwise(X, Y mat.Matrix) (*mat.Dense, error) {
	if err := validatePair(X, Y); err != nil {
		return nil, kernelErrorf(k.name, err)
	}
	K, err := k.fn(X, Y)
	if err != nil {
		return nil, kernelErrorf(k.name, err)
	}
	xr, _ := X.Dims()
	yr, _ := Y.Dims()
	if K == nil {
		return nil, kernelErrorf(k.name, matrix.ErrNilMatrix)
	}
	if kr, kc := K.Dims(); kr != xr || kc != yr {
		return nil, kernelErrorf(k.name, fmt.Errorf("block %dx%d, want %dx%d: %w", kr, kc, xr, yr, ErrBadBlock))
	}

	return K, nil
}

// pointKernel evaluates a row-level function with resolved parameters.
type pointKernel struct {
	name string
	eval func(x, y []float64, p params) float64
	p    params
}

func (k pointKernel) Name() string { return k.name }

func (k pointKernel) Pairwise(X, Y mat.Matrix) (*mat.Dense, error) {
	if err := validatePair(X, Y); err != nil {
		return nil, kernelErrorf(k.name, err)
	}
	_, c := X.Dims()
	p := k.p.resolve(c)

	xr, _ := X.Dims()
	yr, _ := Y.Dims()
	out := mat.NewDense(xr, yr, nil)
	xRows, yRows := rowsOf(X), rowsOf(Y)
	var i, j int
	for i = 0; i < xr; i++ {
		for j = 0; j < yr; j++ {
			out.Set(i, j, k.eval(xRows[i], yRows[j], p))
		}
	}

	return out, nil
}

// Self returns the square self-similarity of X. Only the upper triangle is
// taken from the kernel; the lower triangle is its exact mirror.
func Self(k Kernel, X mat.Matrix) (*mat.Dense, error) {
	K, err := k.Pairwise(X, X)
	if err != nil {
		return nil, err
	}
	n, _ := K.Dims()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			K.Set(j, i, K.At(i, j))
		}
	}

	return K, nil
}

// Joint assembles the (ns+nt)×(ns+nt) matrix [[Kss, Kst], [Kstᵀ, Ktt]].
// The lower-left block is the structural transpose of Kst.
func Joint(k Kernel, Xs, Xt mat.Matrix) (*mat.Dense, error) {
	Kss, err := Self(k, Xs)
	if err != nil {
		return nil, err
	}
	Ktt, err := Self(k, Xt)
	if err != nil {
		return nil, err
	}
	Kst, err := k.Pairwise(Xs, Xt)
	if err != nil {
		return nil, err
	}

	return matrix.SymBlock(Kss, Kst, Ktt)
}

// Cross returns [k(X, Xs)  k(X, Xt)], the kernel map of new rows X against
// the fit-time blocks.
func Cross(k Kernel, X, Xs, Xt mat.Matrix) (*mat.Dense, error) {
	Ks, err := k.Pairwise(X, Xs)
	if err != nil {
		return nil, err
	}
	Kt, err := k.Pairwise(X, Xt)
	if err != nil {
		return nil, err
	}

	return matrix.HStack(Ks, Kt)
}

func validatePair(X, Y mat.Matrix) error {
	if err := matrix.ValidateNotNil(X); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(Y); err != nil {
		return err
	}
	if err := matrix.ValidateSameCols(X, Y); err != nil {
		return fmt.Errorf("%w: %w", ErrFeatureMismatch, err)
	}

	return nil
}

// rowsOf materializes the rows of X once so that inner loops work on slices.
func rowsOf(X mat.Matrix) [][]float64 {
	r, _ := X.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, X)
	}

	return rows
}
