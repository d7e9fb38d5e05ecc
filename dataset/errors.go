// SPDX-License-Identifier: MIT
// Package: subalign/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w; sentinels carry no parameters.
//   • Generators never panic; validation panics are confined to WithX options.

package dataset

import (
	"errors"
	"fmt"
)

// ErrTooFewRows indicates a non-positive row count for a domain.
var ErrTooFewRows = errors.New("dataset: row count too small")

// ErrTooFewFeatures indicates a non-positive feature count.
var ErrTooFewFeatures = errors.New("dataset: feature count too small")

// ErrRotationDims indicates a non-zero rotation requested on fewer than two
// features.
var ErrRotationDims = errors.New("dataset: rotation needs at least two features")

// datasetErrorf prefixes err with the generator name.
func datasetErrorf(gen string, err error) error {
	return fmt.Errorf("%s: %w", gen, err)
}
