// Package subalign is a toolkit for kernel-based subspace alignment in
// unsupervised domain adaptation.
//
// Given labelled source samples and unlabelled target samples whose feature
// distributions differ, subalign learns a projection under which the two
// domains become statistically closer, so a model trained on projected
// source data transfers to the target.
//
// Packages:
//
//	matrix/   — gonum-backed block assembly, row selection, validators,
//	            symmetric and generalized eigen solvers, fingerprints
//	kernel/   — pairwise kernels (linear, rbf, poly, sigmoid, laplacian,
//	            cosine, chi2, additive_chi2), joint/cross blocks, Gram cache
//	domain/   — split a combined matrix by domain label and merge back
//	subspace/ — SubspaceAlignment, TCA and TJM behind one Aligner interface
//	dataset/  — deterministic shifted-blob fixtures
//	spa/      — loss contract of graph-spectral adversarial alignment
//
// Quick start:
//
//	s, _ := dataset.ShiftedBlobs(50, 50, 4, dataset.WithSeed(1))
//	tca := subspace.NewTCA(subspace.WithComponents(2))
//	_ = tca.Fit(s.X, nil, s.Domains)
//	Z, _ := tca.Adapt(s.X, nil, s.Domains) // 100×2, rows in input order
package subalign
