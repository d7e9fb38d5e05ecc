// SPDX-License-Identifier: MIT

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDomain is the umbrella sentinel for inputs lacking a required
	// group of rows. ErrMissingSource and ErrMissingTarget both match it.
	ErrMissingDomain = errors.New("domain: missing domain")

	// ErrMissingSource indicates that no row carries a source label.
	ErrMissingSource = fmt.Errorf("%w: no source rows", ErrMissingDomain)

	// ErrMissingTarget indicates that no row carries a target label.
	ErrMissingTarget = fmt.Errorf("%w: no target rows", ErrMissingDomain)

	// ErrLabelLength indicates len(labels) differs from the row count of X.
	ErrLabelLength = errors.New("domain: label count does not match row count")

	// ErrRowCount indicates a block handed to Merge has the wrong row count
	// for its group, or blocks disagree on column count.
	ErrRowCount = errors.New("domain: block shape does not match partition")
)
