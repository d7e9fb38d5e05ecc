// SPDX-License-Identifier: MIT
// Package: kernel
//
// named.go — built-in kernels addressable by name.
//
// Formulas (γ = gamma, c₀ = coef0, d = degree):
//   - linear:        ⟨x, y⟩
//   - rbf:           exp(-γ‖x−y‖²)
//   - poly:          (γ⟨x, y⟩ + c₀)^d
//   - sigmoid:       tanh(γ⟨x, y⟩ + c₀)
//   - laplacian:     exp(-γ‖x−y‖₁)
//   - cosine:        ⟨x, y⟩ / (‖x‖‖y‖), 0 when either row is zero
//   - additive_chi2: −Σ (xᵢ−yᵢ)² / (xᵢ+yᵢ), terms with xᵢ+yᵢ = 0 skipped
//   - chi2:          exp(γ · additive_chi2(x, y))

package kernel

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Kernel names accepted by ByName.
const (
	NameLinear       = "linear"
	NameRBF          = "rbf"
	NamePoly         = "poly"
	NamePolynomial   = "polynomial"
	NameSigmoid      = "sigmoid"
	NameLaplacian    = "laplacian"
	NameCosine       = "cosine"
	NameChi2         = "chi2"
	NameAdditiveChi2 = "additive_chi2"
)

// registry maps a name to its row-level formula.
var registry = map[string]func(x, y []float64, p params) float64{
	NameLinear: func(x, y []float64, _ params) float64 {
		return floats.Dot(x, y)
	},
	NameRBF: func(x, y []float64, p params) float64 {
		d := floats.Distance(x, y, 2)
		return math.Exp(-p.gamma * d * d)
	},
	NamePoly: func(x, y []float64, p params) float64 {
		return math.Pow(p.gamma*floats.Dot(x, y)+p.coef0, p.degree)
	},
	NamePolynomial: func(x, y []float64, p params) float64 {
		return math.Pow(p.gamma*floats.Dot(x, y)+p.coef0, p.degree)
	},
	NameSigmoid: func(x, y []float64, p params) float64 {
		return math.Tanh(p.gamma*floats.Dot(x, y) + p.coef0)
	},
	NameLaplacian: func(x, y []float64, p params) float64 {
		return math.Exp(-p.gamma * floats.Distance(x, y, 1))
	},
	NameCosine: func(x, y []float64, _ params) float64 {
		nx, ny := floats.Norm(x, 2), floats.Norm(y, 2)
		if nx == 0 || ny == 0 {
			return 0
		}
		return floats.Dot(x, y) / (nx * ny)
	},
	NameAdditiveChi2: func(x, y []float64, _ params) float64 {
		return additiveChi2(x, y)
	},
	NameChi2: func(x, y []float64, p params) float64 {
		return math.Exp(p.gamma * additiveChi2(x, y))
	},
}

func additiveChi2(x, y []float64) float64 {
	var s, num, den float64
	for i := range x {
		den = x[i] + y[i]
		if den == 0 {
			continue
		}
		num = x[i] - y[i]
		s += num * num / den
	}

	return -s
}

// ByName returns the named kernel configured by opts.
//
// Errors:
//   - ErrUnknownKernel when name is not one of the Name* constants.
func ByName(name string, opts ...Option) (Kernel, error) {
	eval, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w (known: %v)", name, ErrUnknownKernel, Names())
	}
	p := defaultParams()
	if name == NameChi2 {
		p.gamma, p.gammaSet = DefaultChi2Gamma, true
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	return pointKernel{name: name, eval: eval, p: p}, nil
}

// MustByName is ByName that panics on an unknown name; for package-level
// defaults and tests.
func MustByName(name string, opts ...Option) Kernel {
	k, err := ByName(name, opts...)
	if err != nil {
		panic(err)
	}

	return k
}

// RBF returns the radial-basis-function kernel.
func RBF(opts ...Option) Kernel { return MustByName(NameRBF, opts...) }

// Linear returns the dot-product kernel.
func Linear() Kernel { return MustByName(NameLinear) }

// Names lists the accepted kernel names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
