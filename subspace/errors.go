// SPDX-License-Identifier: MIT

package subspace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/subalign/domain"
)

var (
	// ErrInvalidConfig reports a configuration the data cannot support, e.g.
	// n_components above the sample/feature bound. Fatal to the Fit call.
	ErrInvalidConfig = errors.New("subspace: invalid configuration")

	// ErrNotFitted is returned by Adapt (and accessors) before a successful Fit.
	ErrNotFitted = errors.New("subspace: aligner is not fitted")

	// ErrFeatureMismatch indicates Adapt input whose column count differs from
	// the fit-time feature count.
	ErrFeatureMismatch = errors.New("subspace: feature count does not match fit")

	// ErrMissingDomain aliases domain.ErrMissingDomain; Fit returns it (wrapped
	// as domain.ErrMissingSource / domain.ErrMissingTarget) when either group
	// has no rows.
	ErrMissingDomain = domain.ErrMissingDomain
)

// Operation tags.
const (
	opFit   = "Fit"
	opAdapt = "Adapt"
)

// alignerErrorf tags err with aligner and operation, e.g. "TJM.Fit: ...".
func alignerErrorf(aligner, op string, err error) error {
	return fmt.Errorf("%s.%s: %w", aligner, op, err)
}
