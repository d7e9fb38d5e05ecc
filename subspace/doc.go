// Package subspace learns domain-invariant projections for unsupervised
// domain adaptation. Three aligners share one fit/adapt contract (Aligner):
//
//   - SubspaceAlignment: independent PCA bases for source and target rows,
//     aligned by the closed-form map M = C_s·C_tᵀ.
//   - TCA: Transfer Component Analysis, a single kernelized eigenproblem
//     trading the MMD between domains against preserved variance.
//   - TJM: Transfer Joint Matching, alternating a regularised generalized
//     eigenproblem with ℓ2,1 reweighting of the source rows.
//
// Rows are tagged through a parallel label vector (see package domain):
// positive = source, negative = target, zero = unassigned. Fit needs at
// least one row of each group; Adapt accepts any mix and returns rows in
// input order.
//
// Fitted models are immutable and published atomically at the end of a
// successful Fit, so a failed Fit never leaves partial state and concurrent
// Adapt calls are safe. Numerical trouble is never an error: it is recorded
// as a Warning in the aligner's Report and logged through WithLogger.
//
//	tjm := subspace.NewTJM(subspace.WithComponents(2), subspace.WithMaxIter(20))
//	if err := tjm.Fit(X, nil, domains); err != nil { ... }
//	Z, err := tjm.Adapt(X, nil, domains)
package subspace
