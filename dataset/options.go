// SPDX-License-Identifier: MIT
// Package: subalign/dataset
//
// options.go — functional options for the generators.
//
// Option constructors validate and panic on meaningless inputs; generators
// themselves return errors.

package dataset

import "math"

// Option customizes a generator.
type Option func(*config)

// WithSeed fixes the random stream. Seed 0 maps to the default seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.seed = seed
	}
}

// WithClasses sets the number of Gaussian classes. Panics if k < 1.
func WithClasses(k int) Option {
	if k < 1 {
		panic("dataset: WithClasses(k<1)")
	}
	return func(c *config) { c.classes = k }
}

// WithShift sets the offset added to every target feature.
func WithShift(shift float64) Option {
	if math.IsNaN(shift) || math.IsInf(shift, 0) {
		panic("dataset: WithShift(non-finite)")
	}
	return func(c *config) { c.shift = shift }
}

// WithRotation rotates target rows in the plane of features 0 and 1 by
// theta radians.
func WithRotation(theta float64) Option {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		panic("dataset: WithRotation(non-finite)")
	}
	return func(c *config) { c.rotation = theta }
}

// WithNoiseSigma sets the per-feature Gaussian noise stdev (≥ 0).
func WithNoiseSigma(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic("dataset: WithNoiseSigma(sigma<0 or non-finite)")
	}
	return func(c *config) { c.noiseSigma = sigma }
}

// WithSpread sets the stdev of class centres (> 0).
func WithSpread(spread float64) Option {
	if math.IsNaN(spread) || math.IsInf(spread, 0) || spread <= 0 {
		panic("dataset: WithSpread(spread<=0 or non-finite)")
	}
	return func(c *config) { c.spread = spread }
}

// WithInterleave alternates source and target rows instead of stacking
// source rows first.
func WithInterleave() Option {
	return func(c *config) { c.interleave = true }
}
