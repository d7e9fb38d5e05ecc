// SPDX-License-Identifier: MIT
// Package: subalign/subspace
//
// options.go — functional options shared by the three aligners.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (NaN, negative tolerance, non-positive iteration budget, nil kernel).
//   • Data-dependent violations (n_components above the bound of the data)
//     are not knowable here; Fit reports them as ErrInvalidConfig.
//   • Options irrelevant to an aligner are accepted and ignored
//     (e.g. WithMu on TJM), so one option slice can configure any variant.

package subspace

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/subalign/kernel"
)

// Defaults.
const (
	// DefaultMu is the TCA trade-off between MMD and the identity regulariser.
	DefaultMu = 0.1
	// DefaultTradeoff weighs the ℓ2,1 regulariser in TJM.
	DefaultTradeoff = 1e-2
	// DefaultMaxIter bounds TJM's alternating loop.
	DefaultMaxIter = 100
	// DefaultTol is TJM's relative loss-change threshold.
	DefaultTol = 0.01
	// DefaultKernel names the kernel used by TCA and TJM.
	DefaultKernel = kernel.NameRBF

	// Jitter is the diagonal conditioning added to both sides of the TJM
	// generalized eigenproblem and used in the ℓ2,1 reweighting denominator.
	Jitter = 1e-10
	// ResidualTolerance is the ‖B·A − C·A·diag(φ)‖ level above which TJM
	// records an accuracy warning.
	ResidualTolerance = 1e-5
)

// PCASolver selects the basis extraction used by the closed-form aligner.
type PCASolver int

const (
	// SolverAuto picks SolverRandomized for large inputs with a small rank
	// and SolverFull otherwise.
	SolverAuto PCASolver = iota
	// SolverFull runs an exact decomposition via gonum's stat.PC.
	SolverFull
	// SolverRandomized runs a seeded randomized range finder.
	SolverRandomized
)

// String implements fmt.Stringer.
func (s PCASolver) String() string {
	switch s {
	case SolverAuto:
		return "auto"
	case SolverFull:
		return "full"
	case SolverRandomized:
		return "randomized"
	default:
		return "unknown"
	}
}

// Option configures an aligner.
type Option func(*config)

// config is the resolved option set. components == 0 means
// "min(n_samples, n_features) of the combined fit input".
type config struct {
	components int
	seed       int64
	solver     PCASolver
	kernel     kernel.Kernel
	mu         float64
	tradeoff   float64
	maxIter    int
	tol        float64
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		solver:   SolverAuto,
		kernel:   kernel.RBF(),
		mu:       DefaultMu,
		tradeoff: DefaultTradeoff,
		maxIter:  DefaultMaxIter,
		tol:      DefaultTol,
		logger:   slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithComponents fixes n_components. Panics if k < 1.
func WithComponents(k int) Option {
	if k < 1 {
		panic("subspace: WithComponents(k<1)")
	}
	return func(c *config) { c.components = k }
}

// WithSeed seeds the randomized PCA solver. Seed 0 selects a fixed default,
// so fits are reproducible either way.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithPCASolver selects the PCA solver of the closed-form aligner.
func WithPCASolver(s PCASolver) Option {
	if s < SolverAuto || s > SolverRandomized {
		panic("subspace: WithPCASolver(unknown solver)")
	}
	return func(c *config) { c.solver = s }
}

// WithKernel sets the kernel of TCA and TJM. Panics on nil.
func WithKernel(k kernel.Kernel) Option {
	if k == nil {
		panic("subspace: WithKernel(nil)")
	}
	return func(c *config) { c.kernel = k }
}

// WithKernelName resolves a named kernel with its parameters.
// Panics on unknown names, like kernel.MustByName.
func WithKernelName(name string, opts ...kernel.Option) Option {
	k := kernel.MustByName(name, opts...)
	return func(c *config) { c.kernel = k }
}

// WithMu sets the TCA regularisation weight μ ≥ 0.
func WithMu(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) || mu < 0 {
		panic("subspace: WithMu(mu<0 or non-finite)")
	}
	return func(c *config) { c.mu = mu }
}

// WithTradeoff sets the TJM regulariser weight (≥ 0).
func WithTradeoff(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic("subspace: WithTradeoff(t<0 or non-finite)")
	}
	return func(c *config) { c.tradeoff = t }
}

// WithMaxIter bounds the TJM loop. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic("subspace: WithMaxIter(n<1)")
	}
	return func(c *config) { c.maxIter = n }
}

// WithTol sets TJM's relative convergence threshold (≥ 0).
func WithTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("subspace: WithTol(tol<0 or non-finite)")
	}
	return func(c *config) { c.tol = tol }
}

// WithLogger routes solver diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("subspace: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
