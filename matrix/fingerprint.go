// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/mat"
)

// Fingerprint returns a 64-bit content hash of m covering its shape and the
// IEEE-754 bits of every entry in row-major order. A nil matrix hashes to 0.
// Equal fingerprints are a fast pre-check only; confirm with EqualExact.
// Complexity: O(r*c).
func Fingerprint(m mat.Matrix) uint64 {
	if ValidateNotNil(m) != nil {
		return 0
	}
	r, c := m.Dims()
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(r))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(c))
	_, _ = h.Write(buf[:])

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(m.At(i, j)))
			_, _ = h.Write(buf[:])
		}
	}

	return h.Sum64()
}
