// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Assemble block matrices (2×2 symmetric blocks, horizontal stacks).
//   - Select and scatter rows by index sets (split/merge plumbing).
//
// Determinism:
//   - Fixed i→j traversal; copies only, inputs are never mutated.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SymBlock assembles the (p+q)×(p+q) matrix
//
//	[ a   b ]
//	[ bᵀ  d ]
//
// from a (p×p), b (p×q) and d (q×q). The lower-left block is written as the
// exact transpose of b, so the off-diagonal symmetry holds bit-for-bit and is
// never recomputed.
//
// Errors:
//   - ErrNilMatrix if any block is nil.
//   - ErrDimensionMismatch if the blocks do not line up.
//
// Complexity: Time O((p+q)^2), Space O((p+q)^2).
func SymBlock(a, b, d mat.Matrix) (*mat.Dense, error) {
	for _, m := range []mat.Matrix{a, b, d} {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(opBlock, err)
		}
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	dr, dc := d.Dims()
	if ar != ac || dr != dc || br != ar || bc != dr {
		return nil, matrixErrorf(opBlock, fmt.Errorf("a=%dx%d b=%dx%d d=%dx%d: %w", ar, ac, br, bc, dr, dc, ErrDimensionMismatch))
	}

	p, q := ar, dr
	out := mat.NewDense(p+q, p+q, nil)
	out.Slice(0, p, 0, p).(*mat.Dense).Copy(a)
	out.Slice(p, p+q, p, p+q).(*mat.Dense).Copy(d)

	var i, j int
	var v float64
	for i = 0; i < p; i++ {
		for j = 0; j < q; j++ {
			v = b.At(i, j)
			out.Set(i, p+j, v) // upper-right
			out.Set(p+j, i, v) // lower-left mirror
		}
	}

	return out, nil
}

// HStack concatenates a (r×c1) and b (r×c2) into r×(c1+c2).
// Complexity: O(r*(c1+c2)).
func HStack(a, b mat.Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	ar, _ := a.Dims()
	br, _ := b.Dims()
	if ar != br {
		return nil, matrixErrorf(opHStack, ErrDimensionMismatch)
	}

	var out mat.Dense
	out.Augment(a, b) // r×(c1+c2), fresh storage

	return &out, nil
}

// SelectRows returns an independent copy holding rows idx of X in idx order.
// Returns (nil, nil) for an empty index set: gonum has no 0-row Dense.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (index outside [0..rows)).
//
// Complexity: O(len(idx)*c).
func SelectRows(X mat.Matrix, idx []int) (*mat.Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}
	if len(idx) == 0 {
		return nil, nil
	}

	r, c := X.Dims()
	out := mat.NewDense(len(idx), c, nil)
	var i, j, ri int
	for i, ri = range idx {
		if ri < 0 || ri >= r {
			return nil, matrixErrorf(opSelectRows, fmt.Errorf("row %d: %w", ri, ErrOutOfRange))
		}
		for j = 0; j < c; j++ {
			out.Set(i, j, X.At(ri, j))
		}
	}

	return out, nil
}

// ScatterRows writes row i of src into row idx[i] of dst.
// dst and src must share a column count and len(idx) must equal src rows.
// A nil src with an empty idx is a no-op.
//
// Complexity: O(len(idx)*c).
func ScatterRows(dst *mat.Dense, src mat.Matrix, idx []int) error {
	if len(idx) == 0 {
		return nil
	}
	if dst == nil {
		return matrixErrorf(opScatterRows, ErrNilMatrix)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opScatterRows, err)
	}
	dr, dc := dst.Dims()
	sr, sc := src.Dims()
	if sc != dc || sr != len(idx) {
		return matrixErrorf(opScatterRows, ErrDimensionMismatch)
	}

	var i, j, ri int
	for i, ri = range idx {
		if ri < 0 || ri >= dr {
			return matrixErrorf(opScatterRows, fmt.Errorf("row %d: %w", ri, ErrOutOfRange))
		}
		for j = 0; j < dc; j++ {
			dst.Set(ri, j, src.At(i, j))
		}
	}

	return nil
}

// SelectColumns returns a copy holding columns idx of X in idx order.
// Used to keep a subset of eigenvectors after sorting eigenvalues.
// Complexity: O(r*len(idx)).
func SelectColumns(X mat.Matrix, idx []int) (*mat.Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opSelectColumns, err)
	}
	r, c := X.Dims()
	if len(idx) == 0 {
		return nil, matrixErrorf(opSelectColumns, ErrDimensionMismatch)
	}

	out := mat.NewDense(r, len(idx), nil)
	var i, j, cj int
	for j, cj = range idx {
		if cj < 0 || cj >= c {
			return nil, matrixErrorf(opSelectColumns, fmt.Errorf("col %d: %w", cj, ErrOutOfRange))
		}
		for i = 0; i < r; i++ {
			out.Set(i, j, X.At(i, cj))
		}
	}

	return out, nil
}
