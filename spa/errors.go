// SPDX-License-Identifier: MIT

package spa

import "errors"

var (
	// ErrBankShape indicates a bank size or update block whose shape does not
	// match the bank.
	ErrBankShape = errors.New("spa: memory bank shape mismatch")

	// ErrNonFinite indicates a NaN or ±Inf loss term.
	ErrNonFinite = errors.New("spa: non-finite loss term")
)
