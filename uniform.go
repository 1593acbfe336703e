// Copyright (c) 2026 The brst developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secrand

import (
	"fmt"
)

// maxRange is the largest value range rejection sampling can serve, one
// more than the largest 32-bit output word.
const maxRange = 1 << 32

// uniformDivisor returns the smallest power of two in [1, 2^32] that is no
// less than rang.
func uniformDivisor(rang uint64) uint64 {
	var divisor uint64
	for n := 0; n <= 32 && divisor < rang; n++ {
		divisor = 1 << n
	}
	return divisor
}

// rangedRandoms returns count independent uniform samples from [0, rang).
//
// Each sample reduces an output word modulo the divisor and rejects results
// at or above rang.  Because the divisor divides 2^32 evenly, every residue
// is equiprobable, and conditioning on the result being below rang
// preserves uniformity; no value is ever favored the way a bare modulo
// reduction would favor small residues.
func (g *Generator) rangedRandoms(rang uint64, count int) ([]uint32, error) {
	if rang > maxRange {
		str := fmt.Sprintf("range %d exceeds the 32-bit output space", rang)
		return nil, makeError(ErrRangeTooLarge, str)
	}
	mask := uint32(uniformDivisor(rang) - 1)

	out := make([]uint32, count)
	for i := range out {
		r := g.engine.Uint32() & mask
		for uint64(r) >= rang {
			r = g.engine.Uint32() & mask
		}
		out[i] = r
	}
	return out, nil
}
