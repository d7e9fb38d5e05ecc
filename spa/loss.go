// SPDX-License-Identifier: MIT
// Package: subalign/spa
//
// loss.go — weighting of the three SPA loss terms.
//
// total = RegAdv·adversarial + RegGSA·graph_alignment + RegNAP·pseudo_label
//
// The terms themselves are produced by the training framework (see Evaluator);
// this package only fixes how they are combined and how K is carried.

package spa

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Defaults.
const (
	DefaultRegAdv = 1.0
	DefaultRegGSA = 1.0
	DefaultRegNAP = 1.0
	// DefaultK is the neighbourhood size of the pseudo-label propagation.
	DefaultK = 5
)

// Terms are the unweighted per-batch loss components.
type Terms struct {
	Adversarial    float64 // domain-classifier loss
	GraphAlignment float64 // graph-spectral alignment loss
	PseudoLabel    float64 // nearest-neighbour pseudo-label consistency loss
}

// Loss holds the three independent regularisation coefficients.
type Loss struct {
	RegAdv float64
	RegGSA float64
	RegNAP float64
	K      int
}

// DefaultLoss returns unit weights and K = DefaultK.
func DefaultLoss() Loss {
	return Loss{RegAdv: DefaultRegAdv, RegGSA: DefaultRegGSA, RegNAP: DefaultRegNAP, K: DefaultK}
}

// Combine returns the weighted sum of t.
//
// Errors:
//   - ErrNonFinite if any weighted term is NaN or ±Inf.
func (l Loss) Combine(t Terms) (float64, error) {
	parts := [...]struct {
		name string
		v    float64
	}{
		{"adversarial", l.RegAdv * t.Adversarial},
		{"graph_alignment", l.RegGSA * t.GraphAlignment},
		{"pseudo_label", l.RegNAP * t.PseudoLabel},
	}
	var total float64
	for _, p := range parts {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return 0, fmt.Errorf("Combine: %s: %w", p.name, ErrNonFinite)
		}
		total += p.v
	}

	return total, nil
}

// Batch is the evaluation input of one training step.
type Batch struct {
	SourceLabels      []float64
	SourcePredictions *mat.Dense
	TargetPredictions *mat.Dense
	SourceDomain      []float64 // domain-classifier output on source rows
	TargetDomain      []float64 // domain-classifier output on target rows
	SourceFeatures    *mat.Dense
	TargetFeatures    *mat.Dense
}

// Evaluator computes the three loss terms. It is implemented by the training
// framework; the bank it reads must have been refreshed for the current epoch.
type Evaluator interface {
	Terms(b Batch, bank MemoryBank, k int) (Terms, error)
}

// Evaluate runs ev and combines its terms with l.
func (l Loss) Evaluate(ev Evaluator, b Batch, bank MemoryBank) (float64, error) {
	t, err := ev.Terms(b, bank, l.K)
	if err != nil {
		return 0, fmt.Errorf("Evaluate: %w", err)
	}

	return l.Combine(t)
}
