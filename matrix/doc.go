// Package matrix offers the dense-matrix plumbing shared by the kernel,
// domain and subspace packages, on top of gonum's mat.
//
// The matrix package provides:
//
//   - Sentinel errors and validators (nil, shape, square, symmetry, finiteness).
//   - Block composition: SymBlock assembles [[A, B], [Bᵀ, D]] with an exact
//     structural transpose; HStack; row selection and scattering by index.
//   - Statistics: column centering, row L2 norms, Frobenius normalization.
//   - Spectral kernels: SymEigen (lower-triangle convention) and
//     GeneralizedSymEigen for B·a = φ·C·a, plus stable argsort helpers.
//   - Fingerprint: xxhash content hash used by fit-time caches.
//
// All helpers return fresh matrices and never mutate their inputs.
package matrix
