// SPDX-License-Identifier: MIT
// Package: subalign/dataset
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • seed        = 1     (seed 0 is remapped to it)
//   • classes     = 2
//   • shift       = 2.0   (added to every target feature)
//   • rotation    = 0.0   (radians, applied to features 0 and 1 of target rows)
//   • noiseSigma  = 0.5
//   • spread      = 3.0   (stdev of class centres)
//   • interleave  = false (source rows first)

package dataset

import "math/rand/v2"

type config struct {
	seed       uint64
	classes    int
	shift      float64
	rotation   float64
	noiseSigma float64
	spread     float64
	interleave bool
}

const (
	defaultSeed       uint64 = 1
	defaultClasses           = 2
	defaultShift             = 2.0
	defaultRotation          = 0.0
	defaultNoiseSigma        = 0.5
	defaultSpread            = 3.0
)

// newConfig applies options in order (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{
		seed:       defaultSeed,
		classes:    defaultClasses,
		shift:      defaultShift,
		rotation:   defaultRotation,
		noiseSigma: defaultNoiseSigma,
		spread:     defaultSpread,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// source returns the PCG stream for this config.
func (c config) source() rand.Source {
	return rand.NewPCG(c.seed, c.seed^0x9e3779b97f4a7c15)
}
