// Package kernel builds pairwise similarity (kernel) matrices between sample
// blocks for the kernelized aligners.
//
// A Kernel maps two row blocks X (n×d) and Y (m×d) to the n×m matrix of
// similarities. Kernels come from three places:
//
//   - ByName: the built-in formulas (linear, rbf, poly/polynomial, sigmoid,
//     laplacian, cosine, chi2, additive_chi2) configured with WithGamma,
//     WithDegree and WithCoef0. An unset gamma resolves to 1/n_features.
//   - FromPointFunc: any row-level func(x, y []float64) float64.
//   - FromBlockFunc: any block-level func(X, Y mat.Matrix) (*mat.Dense, error).
//
// Joint assembles the source/target block matrix
//
//	K = [ Kss   Kst ]
//	    [ Kstᵀ  Ktt ]
//
// with the lower-left block written as the exact transpose of Kst, and Gram
// keeps that matrix together with fingerprints of the fit-time blocks so an
// aligner can reuse it when it is asked to adapt the very data it was fit on.
//
// Usage:
//
//	k, _ := kernel.ByName("rbf", kernel.WithGamma(0.5))
//	g, _ := kernel.NewGram(k, Xs, Xt)
//	K := g.Matrix()
package kernel
