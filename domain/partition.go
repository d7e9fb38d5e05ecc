// SPDX-License-Identifier: MIT
// Package: domain
//
// partition.go — split a combined matrix into source/target/unassigned row
// blocks and merge transformed blocks back in original row order.
//
// Determinism:
//   - Index sets are built in a single ascending pass over labels, so every
//     block keeps the relative order its rows had in X.

package domain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/subalign/matrix"
)

// Unassigned is the label of rows that belong to neither group.
const Unassigned = 0

// IsSource reports whether label l marks a source-domain row (l > 0).
func IsSource(l int) bool { return l > 0 }

// IsTarget reports whether label l marks a target-domain row (l < 0).
func IsTarget(l int) bool { return l < 0 }

// Partition records which rows of a combined matrix belong to each group.
type Partition struct {
	// Rows is the row count of the combined matrix.
	Rows int
	// Source, Target and Unassigned hold ascending row indices per group.
	Source     []int
	Target     []int
	Unassigned []int
}

// NewPartition groups row indices by label. Multiple source (or target)
// domains collapse into one group.
// Complexity: O(n).
func NewPartition(labels []int) Partition {
	p := Partition{Rows: len(labels)}
	for i, l := range labels {
		switch {
		case IsSource(l):
			p.Source = append(p.Source, i)
		case IsTarget(l):
			p.Target = append(p.Target, i)
		default:
			p.Unassigned = append(p.Unassigned, i)
		}
	}

	return p
}

// RequireBoth returns ErrMissingSource / ErrMissingTarget unless both groups
// are non-empty.
func (p Partition) RequireBoth() error {
	if len(p.Source) == 0 {
		return ErrMissingSource
	}
	if len(p.Target) == 0 {
		return ErrMissingTarget
	}

	return nil
}

// SourceMask returns mask[i] = IsSource(labels[i]).
func SourceMask(labels []int) []bool {
	mask := make([]bool, len(labels))
	for i, l := range labels {
		mask[i] = IsSource(l)
	}

	return mask
}

// Blocks are the row blocks of a split. A block is nil when its group is empty.
type Blocks struct {
	Partition
	Source     *mat.Dense
	Target     *mat.Dense
	Unassigned *mat.Dense
}

// Split partitions the rows of X by labels.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil X.
//   - ErrLabelLength when len(labels) != rows(X).
//
// Complexity: O(n*d).
func Split(X mat.Matrix, labels []int) (Blocks, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return Blocks{}, fmt.Errorf("Split: %w", err)
	}
	r, _ := X.Dims()
	if len(labels) != r {
		return Blocks{}, fmt.Errorf("Split: %d labels for %d rows: %w", len(labels), r, ErrLabelLength)
	}

	b := Blocks{Partition: NewPartition(labels)}
	var err error
	if b.Source, err = matrix.SelectRows(X, b.Partition.Source); err != nil {
		return Blocks{}, fmt.Errorf("Split: %w", err)
	}
	if b.Target, err = matrix.SelectRows(X, b.Partition.Target); err != nil {
		return Blocks{}, fmt.Errorf("Split: %w", err)
	}
	if b.Unassigned, err = matrix.SelectRows(X, b.Partition.Unassigned); err != nil {
		return Blocks{}, fmt.Errorf("Split: %w", err)
	}

	return b, nil
}

// Merge scatters the per-group blocks back into a rows×cols matrix in the
// original row order recorded by p. A block may be nil only when its group is
// empty; all non-nil blocks must share one column count.
//
// Errors:
//   - ErrRowCount on any shape disagreement.
//
// Complexity: O(n*c).
func Merge(p Partition, source, target, unassigned mat.Matrix) (*mat.Dense, error) {
	groups := []struct {
		idx   []int
		block mat.Matrix
	}{
		{p.Source, source},
		{p.Target, target},
		{p.Unassigned, unassigned},
	}

	cols := -1
	for _, g := range groups {
		present := matrix.ValidateNotNil(g.block) == nil
		if len(g.idx) == 0 {
			if present {
				if r, _ := g.block.Dims(); r != 0 {
					return nil, fmt.Errorf("Merge: block for empty group: %w", ErrRowCount)
				}
			}
			continue
		}
		if !present {
			return nil, fmt.Errorf("Merge: nil block for %d rows: %w", len(g.idx), ErrRowCount)
		}
		r, c := g.block.Dims()
		if r != len(g.idx) || (cols >= 0 && c != cols) {
			return nil, fmt.Errorf("Merge: block %dx%d for %d rows: %w", r, c, len(g.idx), ErrRowCount)
		}
		cols = c
	}
	if cols < 0 || p.Rows == 0 {
		return nil, fmt.Errorf("Merge: nothing to merge: %w", ErrRowCount)
	}

	out := mat.NewDense(p.Rows, cols, nil)
	for _, g := range groups {
		if len(g.idx) == 0 {
			continue
		}
		if err := matrix.ScatterRows(out, g.block, g.idx); err != nil {
			return nil, fmt.Errorf("Merge: %w", err)
		}
	}

	return out, nil
}
