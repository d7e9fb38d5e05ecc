// SPDX-License-Identifier: MIT

package subspace

import "fmt"

// WarningKind classifies a non-fatal numerical diagnostic.
type WarningKind int

const (
	// WarnResidual: ‖B·A − C·A·diag(φ)‖ exceeded ResidualTolerance.
	WarnResidual WarningKind = iota
	// WarnWhitened: C was not Cholesky-factorizable; eigen-whitening with
	// eigenvalues clamped at Jitter was used instead.
	WarnWhitened
	// WarnIllConditioned: a linear solve reported a near-singular system.
	WarnIllConditioned
	// WarnEigenFailed: an eigendecomposition failed after the first
	// iteration; the previous projection was kept.
	WarnEigenFailed
)

func (k WarningKind) String() string {
	switch k {
	case WarnResidual:
		return "residual"
	case WarnWhitened:
		return "whitened"
	case WarnIllConditioned:
		return "ill-conditioned"
	case WarnEigenFailed:
		return "eigen-failed"
	default:
		return "unknown"
	}
}

// Warning is one non-fatal diagnostic raised during Fit.
type Warning struct {
	Iteration int // zero-based; 0 for one-shot solvers
	Kind      WarningKind
	Value     float64 // residual norm, or 0 when not applicable
}

func (w Warning) String() string {
	return fmt.Sprintf("iteration %d: %s (%.3g)", w.Iteration, w.Kind, w.Value)
}

// Report describes how a Fit went. Slices have one entry per iteration.
type Report struct {
	Iterations   int
	Converged    bool
	Losses       []float64 // total loss
	MMDLosses    []float64 // trace(AᵀKMKA)
	Regularizers []float64 // Σ‖A_src rows‖ + ‖A_tgt‖²_F, before the tradeoff weight
	Residuals    []float64 // generalized eigen residual
	Warnings     []Warning
}

// clone deep-copies r so callers cannot reach fitted state.
func (r Report) clone() Report {
	r.Losses = append([]float64(nil), r.Losses...)
	r.MMDLosses = append([]float64(nil), r.MMDLosses...)
	r.Regularizers = append([]float64(nil), r.Regularizers...)
	r.Residuals = append([]float64(nil), r.Residuals...)
	r.Warnings = append([]Warning(nil), r.Warnings...)

	return r
}

func (r *Report) warn(iter int, kind WarningKind, value float64) {
	r.Warnings = append(r.Warnings, Warning{Iteration: iter, Kind: kind, Value: value})
}
