// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparisons used by solvers (residual checks) and tests.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN entries never compare close.
func AllClose(a, b mat.Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Dims()
	var i, j int
	var av, bv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, bv = a.At(i, j), b.At(i, j)
			// Negated form so that NaN fails the check.
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}

// EqualExact reports whether a and b have identical shapes and bit-identical
// values. Nil operands compare equal only to each other.
// Complexity: O(r*c).
func EqualExact(a, b mat.Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	return mat.Equal(a, b)
}
