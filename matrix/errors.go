// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All helpers MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No helper should
// panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Helpers wrap with matrixErrorf(op, ErrX); callers
// still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. blocks whose row/column counts do not line up.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (inputs, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEigenFailed indicates that an eigen decomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opBlock          = "Block"
	opHStack         = "HStack"
	opSelectRows     = "SelectRows"
	opScatterRows    = "ScatterRows"
	opCenterColumns  = "CenterColumns"
	opRowNorms       = "RowNorms"
	opAllClose       = "AllClose"
	opSymEigen       = "SymEigen"
	opGeneralizedEig = "GeneralizedSymEigen"
	opSelectColumns  = "SelectColumns"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
