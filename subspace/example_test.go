// SPDX-License-Identifier: MIT
// Package subspace_test provides runnable examples with stable output.
package subspace_test

import (
	"fmt"

	"github.com/katalvlaran/subalign/dataset"
	"github.com/katalvlaran/subalign/subspace"
)

// ExampleNewSubspaceAlignment fits two PCA bases and prints the fitted shapes.
func ExampleNewSubspaceAlignment() {
	s, _ := dataset.ShiftedBlobs(10, 8, 5, dataset.WithSeed(1))

	sa := subspace.NewSubspaceAlignment(subspace.WithComponents(3))
	if err := sa.Fit(s.X, nil, s.Domains); err != nil {
		fmt.Println("fit:", err)
		return
	}
	M, _ := sa.Alignment()
	C, _ := sa.SourceComponents()
	Z, _ := sa.Adapt(s.X, nil, s.Domains)

	mr, mc := M.Dims()
	cr, cc := C.Dims()
	zr, zc := Z.Dims()
	fmt.Printf("M %dx%d, components %dx%d, adapted %dx%d\n", mr, mc, cr, cc, zr, zc)
	// Output:
	// M 3x3, components 3x5, adapted 18x3
}

// ExampleNewTJM runs a short TJM fit and inspects the report.
func ExampleNewTJM() {
	X, labels := twelvePoints()

	tjm := subspace.NewTJM(subspace.WithTradeoff(0.01), subspace.WithMaxIter(5), subspace.WithTol(0.01))
	if err := tjm.Fit(X, nil, labels); err != nil {
		fmt.Println("fit:", err)
		return
	}
	rep, _ := tjm.Report()
	A, _ := tjm.Projection()
	r, c := A.Dims()
	fmt.Println("within budget:", rep.Iterations <= 5)
	fmt.Printf("projection %dx%d\n", r, c)
	// Output:
	// within budget: true
	// projection 12x2
}
