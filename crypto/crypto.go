// Package crypto contains a from-scratch MD4 and the seeded random source
// used to drive truncated-digest collision experiments.
package crypto

import (
	"fmt"
	"math/bits"
)

// HammingDistance returns the number of bits that differ between x and y.
func HammingDistance(x, y []byte) int {
	if len(x) != len(y) {
		panic(fmt.Sprintf("buffers have different length: len(x) = %d, len(y) = %d", len(x), len(y)))
	}
	n := 0
	for i := range x {
		b := x[i] ^ y[i]
		n += bits.OnesCount8(uint8(b))
	}
	return n
}
