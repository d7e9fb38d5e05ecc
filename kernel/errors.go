// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKernel is returned by ByName for an unregistered kernel name.
	ErrUnknownKernel = errors.New("kernel: unknown kernel")

	// ErrFeatureMismatch indicates the two blocks do not share a feature count.
	ErrFeatureMismatch = errors.New("kernel: feature count mismatch")

	// ErrBadBlock indicates a BlockFunc returned a block of the wrong shape.
	ErrBadBlock = errors.New("kernel: block function returned wrong shape")
)

// kernelErrorf tags err with the kernel name.
func kernelErrorf(name string, err error) error {
	return fmt.Errorf("kernel %q: %w", name, err)
}
