// Copyright (c) 2026 The brst developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package isaac implements the ISAAC stream generator.
//
// ISAAC (Indirection, Shift, Accumulate, Add, Count) operates on a 256-word
// internal memory and produces uniformly distributed 32-bit words in blocks
// of 256 per round.  It was designed by R. J. Jenkins Jr. to be
// cryptographically secure with an expected cycle length of 2^8295.
//
// An Engine is deterministic given its seed.  Seeding with entropy and the
// higher-level byte and sampling operations are the concern of the parent
// secrand package.
package isaac

import (
	"fmt"
)

// References:
//   [ISAAC] ISAAC: a fast cryptographic random number generator
//     (R. J. Jenkins Jr.)
//     https://burtleburtle.net/bob/rand/isaacafa.html

const (
	// size is the number of 32-bit words in the generator memory and in
	// each block of output.
	size = 256

	// golden is the golden ratio constant used to initialize the seeding
	// registers.
	golden = 0x9E3779B9
)

// Engine is the ISAAC state machine.  It consumes a seed of up to 256
// 32-bit words at construction and produces an unbounded stream of 32-bit
// words, refilling its output buffer 256 words at a time.
//
// Engine methods are not safe for concurrent access.
type Engine struct {
	// mem is the internal memory and rsl the output buffer of the most
	// recent round.
	mem [size]uint32
	rsl [size]uint32

	// a, b, c are the accumulator registers carried across rounds.
	a uint32
	b uint32
	c uint32

	// cnt is the index of the most recently consumed word of rsl; words
	// are consumed counting down, and a draw that finds cnt at 0 refills
	// and returns rsl[255].  It starts at 256 so the first draw returns
	// rsl[255].
	cnt int
}

// New returns an engine seeded with the given words.  A seed shorter than
// 256 words is treated as if right-padded with zeros to 256 words.  Seeds
// longer than 256 words return ErrInvalidSeed.
func New(seed []uint32) (*Engine, error) {
	if len(seed) > size {
		str := fmt.Sprintf("seed of %d words exceeds the %d-word state "+
			"size", len(seed), size)
		return nil, makeError(ErrInvalidSeed, str)
	}

	e := new(Engine)
	copy(e.rsl[:], seed)
	e.randInit()
	return e, nil
}

// mix scrambles the eight seeding registers.  The right shifts rely on
// uint32 logical shift semantics to produce the 30-, 16-, 28-, and 23-bit
// intermediate values the algorithm calls for.
func mix(r *[8]uint32) {
	r[0] ^= r[1] << 11
	r[3] += r[0]
	r[1] += r[2]
	r[1] ^= r[2] >> 2
	r[4] += r[1]
	r[2] += r[3]
	r[2] ^= r[3] << 8
	r[5] += r[2]
	r[3] += r[4]
	r[3] ^= r[4] >> 16
	r[6] += r[3]
	r[4] += r[5]
	r[4] ^= r[5] << 10
	r[7] += r[4]
	r[5] += r[6]
	r[5] ^= r[6] >> 4
	r[0] += r[5]
	r[6] += r[7]
	r[6] ^= r[7] << 8
	r[1] += r[6]
	r[7] += r[0]
	r[7] ^= r[0] >> 9
	r[2] += r[7]
	r[0] += r[1]
}

// randInit expands the seed words sitting in rsl into the internal memory
// and produces the first block of output.
func (e *Engine) randInit() {
	var r [8]uint32
	for i := range r {
		r[i] = golden
	}
	for i := 0; i < 4; i++ {
		mix(&r)
	}

	// Two passes in strides of eight: the first folds the seed into the
	// memory, the second folds the memory into itself.
	for i := 0; i < size; i += 8 {
		for j := 0; j < 8; j++ {
			r[j] += e.rsl[i+j]
		}
		mix(&r)
		copy(e.mem[i:i+8], r[:])
	}
	for i := 0; i < size; i += 8 {
		for j := 0; j < 8; j++ {
			r[j] += e.mem[i+j]
		}
		mix(&r)
		copy(e.mem[i:i+8], r[:])
	}

	e.refill()
	e.cnt = size
}

// refill runs one ISAAC round, replacing all 256 words of rsl and leaving
// cnt at the top of the buffer.  The loop is unrolled four ways to match
// the barrel-shift schedule.
func (e *Engine) refill() {
	e.c++
	e.b += e.c
	a, b := e.a, e.b
	for i := 0; i < size; i += 4 {
		x := e.mem[i]
		a ^= a << 13
		a += e.mem[(i+128)&0xFF]
		y := e.mem[(x>>2)&0xFF] + a + b
		e.mem[i] = y
		b = e.mem[(y>>10)&0xFF] + x
		e.rsl[i] = b

		x = e.mem[i+1]
		a ^= a >> 6
		a += e.mem[(i+129)&0xFF]
		y = e.mem[(x>>2)&0xFF] + a + b
		e.mem[i+1] = y
		b = e.mem[(y>>10)&0xFF] + x
		e.rsl[i+1] = b

		x = e.mem[i+2]
		a ^= a << 2
		a += e.mem[(i+130)&0xFF]
		y = e.mem[(x>>2)&0xFF] + a + b
		e.mem[i+2] = y
		b = e.mem[(y>>10)&0xFF] + x
		e.rsl[i+2] = b

		x = e.mem[i+3]
		a ^= a >> 16
		a += e.mem[(i+131)&0xFF]
		y = e.mem[(x>>2)&0xFF] + a + b
		e.mem[i+3] = y
		b = e.mem[(y>>10)&0xFF] + x
		e.rsl[i+3] = b
	}
	e.a, e.b = a, b
	e.cnt = size - 1
}

// Uint32 returns the next output word.  It cannot fail once the engine is
// constructed.
func (e *Engine) Uint32() uint32 {
	if e.cnt == 0 {
		e.refill()
	} else {
		e.cnt--
	}
	return e.rsl[e.cnt]
}
