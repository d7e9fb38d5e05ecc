// SPDX-License-Identifier: MIT
// Package: subalign/subspace
//
// mmd.go — fixed weighting matrices and the kernel-space projection shared by
// TCA and TJM.
//
// Row order of every kernel-indexed object is source rows first, then target.

package subspace

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/domain"
	"github.com/katalvlaran/subalign/kernel"
)

// mmdMatrix returns the (ns+nt)² MMD weighting: 1/ns² on the source block,
// 1/nt² on the target block and −1/(ns·nt) across.
func mmdMatrix(ns, nt int) *mat.Dense {
	n := ns + nt
	ss := 1 / float64(ns*ns)
	tt := 1 / float64(nt*nt)
	st := -1 / float64(ns*nt)

	L := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row := L.RawRowView(i)
		for j := range row {
			switch {
			case i < ns && j < ns:
				row[j] = ss
			case i >= ns && j >= ns:
				row[j] = tt
			default:
				row[j] = st
			}
		}
	}

	return L
}

// centeringMatrix returns H = I − (1/n)·11ᵀ.
func centeringMatrix(n int) *mat.Dense {
	H := mat.NewDense(n, n, nil)
	c := -1 / float64(n)
	for i := 0; i < n; i++ {
		row := H.RawRowView(i)
		for j := range row {
			row[j] = c
		}
		row[i] += 1
	}

	return H
}

// identity returns the n×n identity as a Dense.
func identity(n int) *mat.Dense {
	I := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		I.Set(i, i, 1)
	}

	return I
}

// kernelProject maps X through K·proj. When the source and target blocks of
// X equal the fit-time blocks the stored joint kernel is reused and its
// kernel-ordered rows are scattered back to input positions; otherwise each
// row of X is kernel-mapped against the fit blocks.
func kernelProject(g *kernel.Gram, proj *mat.Dense, b domain.Blocks, X mat.Matrix) (*mat.Dense, error) {
	if K, ok := g.Lookup(b.Source, b.Target); ok {
		var emb mat.Dense
		emb.Mul(K, proj)
		ns, nt := len(b.Partition.Source), len(b.Partition.Target)
		_, k := emb.Dims()

		var un *mat.Dense
		if b.Unassigned != nil {
			Ku, err := g.Map(b.Unassigned)
			if err != nil {
				return nil, err
			}
			un = new(mat.Dense)
			un.Mul(Ku, proj)
		}

		return domain.Merge(b.Partition, emb.Slice(0, ns, 0, k), emb.Slice(ns, ns+nt, 0, k), un)
	}

	Kx, err := g.Map(X)
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Mul(Kx, proj)

	return &out, nil
}
