// SPDX-License-Identifier: MIT
// Package: subalign/spa
//
// bank.go — the target memory bank read by the pseudo-label term.
//
// Concurrency: Bank is safe for concurrent use. Readers receive copies.

package spa

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/matrix"
)

// MemoryBank stores one feature row and one prediction row per target sample.
type MemoryBank interface {
	Features() *mat.Dense
	Outputs() *mat.Dense
	// Update overwrites the rows idx with the given blocks.
	Update(idx []int, features, outputs mat.Matrix) error
}

// Bank is an in-memory MemoryBank. Zero-initialised.
type Bank struct {
	mu       sync.RWMutex
	features *mat.Dense
	outputs  *mat.Dense
	epoch    int
}

var _ MemoryBank = (*Bank)(nil)

// NewBank allocates a bank for n samples.
func NewBank(n, featureDim, outputDim int) (*Bank, error) {
	if n < 1 || featureDim < 1 || outputDim < 1 {
		return nil, fmt.Errorf("NewBank(%d, %d, %d): %w", n, featureDim, outputDim, ErrBankShape)
	}

	return &Bank{
		features: mat.NewDense(n, featureDim, nil),
		outputs:  mat.NewDense(n, outputDim, nil),
	}, nil
}

// Features returns a copy of the stored features.
func (b *Bank) Features() *mat.Dense {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return mat.DenseCopyOf(b.features)
}

// Outputs returns a copy of the stored predictions.
func (b *Bank) Outputs() *mat.Dense {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return mat.DenseCopyOf(b.outputs)
}

// Update overwrites rows idx. Either all rows are written or none.
func (b *Bank) Update(idx []int, features, outputs mat.Matrix) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, pair := range [...]struct {
		dst *mat.Dense
		src mat.Matrix
	}{{b.features, features}, {b.outputs, outputs}} {
		if err := matrix.ValidateNotNil(pair.src); err != nil {
			return fmt.Errorf("Update: %w", err)
		}
		r, c := pair.src.Dims()
		_, dc := pair.dst.Dims()
		if r != len(idx) || c != dc {
			return fmt.Errorf("Update: block %dx%d for %d rows of width %d: %w", r, c, len(idx), dc, ErrBankShape)
		}
	}
	n, _ := b.features.Dims()
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("Update: row %d of %d: %w", i, n, matrix.ErrOutOfRange)
		}
	}

	if err := matrix.ScatterRows(b.features, features, idx); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if err := matrix.ScatterRows(b.outputs, outputs, idx); err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	return nil
}

// Refresh replaces the whole bank, marking the start of a new epoch.
func (b *Bank) Refresh(features, outputs mat.Matrix) error {
	n, _ := b.Features().Dims()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if err := b.Update(idx, features, outputs); err != nil {
		return fmt.Errorf("Refresh: %w", err)
	}
	b.mu.Lock()
	b.epoch++
	b.mu.Unlock()

	return nil
}

// Epoch counts completed Refresh calls.
func (b *Bank) Epoch() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.epoch
}
