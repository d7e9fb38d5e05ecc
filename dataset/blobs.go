// SPDX-License-Identifier: MIT
// Package: subalign/dataset
//
// blobs.go — Gaussian class blobs observed in two domains.
//
// Model:
//   • Class centres c_k ~ N(0, spread²·I), shared by both domains.
//   • Source row of class k:  x = c_k + σ·z.
//   • Target row of class k:  x = R(θ)·(c_k + σ·z) + shift·1, where R(θ)
//     rotates features 0 and 1.
//   • Class of the i-th row within a domain is i mod classes.
//
// Determinism: one PCG stream per call, drawn in a fixed order (centres,
// then rows in output order).

package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Domain labels written into Sample.Domains.
const (
	SourceLabel = 1
	TargetLabel = -1
)

// Sample is a combined source/target matrix with per-row metadata.
type Sample struct {
	X       *mat.Dense
	Classes []float64 // class index per row
	Domains []int     // SourceLabel or TargetLabel per row
}

// ShiftedBlobs draws nSource source rows and nTarget target rows with the
// given feature count.
//
// Errors:
//   - ErrTooFewRows if nSource < 1 or nTarget < 1.
//   - ErrTooFewFeatures if features < 1.
//   - ErrRotationDims if a rotation is set and features < 2.
//
// Complexity: O((nSource+nTarget)·features).
func ShiftedBlobs(nSource, nTarget, features int, opts ...Option) (Sample, error) {
	const gen = "ShiftedBlobs"
	cfg := newConfig(opts...)
	if nSource < 1 || nTarget < 1 {
		return Sample{}, datasetErrorf(gen, ErrTooFewRows)
	}
	if features < 1 {
		return Sample{}, datasetErrorf(gen, ErrTooFewFeatures)
	}
	if cfg.rotation != 0 && features < 2 {
		return Sample{}, datasetErrorf(gen, ErrRotationDims)
	}

	gauss := distuv.Normal{Mu: 0, Sigma: 1, Src: cfg.source()}

	centres := make([][]float64, cfg.classes)
	for k := range centres {
		centres[k] = make([]float64, features)
		for j := range centres[k] {
			centres[k][j] = cfg.spread * gauss.Rand()
		}
	}

	n := nSource + nTarget
	out := Sample{
		X:       mat.NewDense(n, features, nil),
		Classes: make([]float64, n),
		Domains: rowOrder(nSource, nTarget, cfg.interleave),
	}
	sin, cos := math.Sincos(cfg.rotation)
	var seenSrc, seenTgt int
	for i := 0; i < n; i++ {
		var class int
		if out.Domains[i] == SourceLabel {
			class = seenSrc % cfg.classes
			seenSrc++
		} else {
			class = seenTgt % cfg.classes
			seenTgt++
		}
		out.Classes[i] = float64(class)

		row := out.X.RawRowView(i)
		for j := range row {
			row[j] = centres[class][j] + cfg.noiseSigma*gauss.Rand()
		}
		if out.Domains[i] == TargetLabel {
			if features >= 2 {
				x, y := row[0], row[1]
				row[0], row[1] = cos*x-sin*y, sin*x+cos*y
			}
			for j := range row {
				row[j] += cfg.shift
			}
		}
	}

	return out, nil
}

// rowOrder returns the domain label of every output row.
func rowOrder(ns, nt int, interleave bool) []int {
	labels := make([]int, 0, ns+nt)
	if !interleave {
		for i := 0; i < ns; i++ {
			labels = append(labels, SourceLabel)
		}
		for i := 0; i < nt; i++ {
			labels = append(labels, TargetLabel)
		}
		return labels
	}
	for s, t := 0, 0; s < ns || t < nt; {
		if s < ns {
			labels = append(labels, SourceLabel)
			s++
		}
		if t < nt {
			labels = append(labels, TargetLabel)
			t++
		}
	}

	return labels
}
