// SPDX-License-Identifier: MIT
// Package: kernel
//
// options.go — functional options for named kernels.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     kernel evaluation itself never panics.
//   - Unset gamma resolves to 1/n_features at evaluation time, so one
//     configured kernel can be reused across feature spaces.

package kernel

import "math"

// Defaults for named kernels.
const (
	// DefaultDegree is the polynomial kernel degree.
	DefaultDegree = 3.0

	// DefaultCoef0 is the independent term of polynomial and sigmoid kernels.
	DefaultCoef0 = 1.0

	// DefaultChi2Gamma is the gamma of the exponential chi² kernel.
	DefaultChi2Gamma = 1.0
)

// Option customizes a named kernel's parameters.
type Option func(*params)

// params holds kernel parameters; gammaSet distinguishes "unset" from 0.
type params struct {
	gamma    float64
	gammaSet bool
	degree   float64
	coef0    float64
}

func defaultParams() params {
	return params{degree: DefaultDegree, coef0: DefaultCoef0}
}

// resolve fills the data-dependent default gamma = 1/nFeatures.
func (p params) resolve(nFeatures int) params {
	if !p.gammaSet && nFeatures > 0 {
		p.gamma = 1 / float64(nFeatures)
	}

	return p
}

// WithGamma sets the kernel coefficient (RBF bandwidth, polynomial/sigmoid
// scale, Laplacian/chi² rate). Panics unless gamma is finite and > 0.
func WithGamma(gamma float64) Option {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma <= 0 {
		panic("kernel: WithGamma: gamma must be finite and > 0")
	}

	return func(p *params) { p.gamma, p.gammaSet = gamma, true }
}

// WithDegree sets the polynomial degree. Panics unless degree is finite and > 0.
func WithDegree(degree float64) Option {
	if math.IsNaN(degree) || math.IsInf(degree, 0) || degree <= 0 {
		panic("kernel: WithDegree: degree must be finite and > 0")
	}

	return func(p *params) { p.degree = degree }
}

// WithCoef0 sets the independent term of polynomial and sigmoid kernels.
// Panics on NaN/Inf.
func WithCoef0(coef0 float64) Option {
	if math.IsNaN(coef0) || math.IsInf(coef0, 0) {
		panic("kernel: WithCoef0: coef0 must be finite")
	}

	return func(p *params) { p.coef0 = coef0 }
}
