// Copyright (c) 2026 The brst developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secrand

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/brst/secrand/entropy"
	"github.com/brst/secrand/isaac"
)

const (
	// DefaultBits is the seed width used when the caller does not specify
	// one.
	DefaultBits = 256

	// minBits and maxBits bound the valid seed widths.  Together with the
	// power-of-two requirement they admit exactly eight values.
	minBits = 64
	maxBits = 8192
)

// Options are the configurable parameters of a Generator.
type Options struct {
	// Bits is the seed width in bits.  It must be a power of two between
	// 64 and 8192.  The zero value selects DefaultBits.
	Bits int

	// AllowBlocking permits seeding from entropy sources that may block
	// the caller while the host accumulates entropy.
	AllowBlocking bool
}

// Generator is a seeded cryptographically secure pseudorandom generator.
// Generator methods are not safe for concurrent access; see the package
// documentation for the sharing and fork contracts.
type Generator struct {
	bits   int
	engine *isaac.Engine
}

// New returns a Generator seeded with opts.Bits bits of entropy from the
// best available platform source.  A nil opts selects the defaults.  It
// returns ErrInvalidOption for an unusable seed width, and surfaces
// entropy.ErrNoSource or entropy.ErrRead when seeding fails.
func New(opts *Options) (*Generator, error) {
	bits := DefaultBits
	var allowBlocking bool
	if opts != nil {
		if opts.Bits != 0 {
			bits = opts.Bits
		}
		allowBlocking = opts.AllowBlocking
	}
	if bits < minBits || bits > maxBits || bits&(bits-1) != 0 {
		str := fmt.Sprintf("seed width must be a power of two between "+
			"%d and %d bits, got %d", minBits, maxBits, bits)
		return nil, makeError(ErrInvalidOption, str)
	}

	// The provider is only needed for this one read and is released as
	// soon as the seed words are in hand.
	prov, err := entropy.New(&entropy.Options{AllowBlocking: allowBlocking})
	if err != nil {
		return nil, err
	}
	log.Debugf("Seeding with %d bits from entropy source %s (strong=%v)",
		bits, prov.Name(), prov.Strong())
	seed, err := prov.RandomWords(bits / 32)
	if err != nil {
		return nil, err
	}

	engine, err := isaac.New(seed)
	if err != nil {
		return nil, err
	}
	return &Generator{bits: bits, engine: engine}, nil
}

// Bits returns the seed width the Generator was constructed with.
func (g *Generator) Bits() int {
	return g.bits
}

// Uint32 returns the next 32-bit word of the stream.
func (g *Generator) Uint32() uint32 {
	return g.engine.Uint32()
}

// Bytes returns |n| random bytes.  Full 32-bit words are packed little
// endian; a two-byte tail carries the middle 16 bits of one extra word and
// a one-byte tail the low 8 bits of another, preserving byte-sequence
// compatibility with other renditions of this library.
func (g *Generator) Bytes(n int) []byte {
	if n < 0 {
		n = -n
	}
	b := make([]byte, 0, n)
	for i := 0; i < n/4; i++ {
		b = binary.LittleEndian.AppendUint32(b, g.engine.Uint32())
	}
	if n&2 != 0 {
		b = binary.LittleEndian.AppendUint16(b, uint16(g.engine.Uint32()>>8))
	}
	if n&1 != 0 {
		b = append(b, byte(g.engine.Uint32()))
	}
	return b
}

// BytesHex returns Bytes(n) encoded as 2·|n| lowercase hex digits with no
// prefix.
func (g *Generator) BytesHex(n int) string {
	return hex.EncodeToString(g.Bytes(n))
}

// StringFrom returns a string of |n| characters, each an independent
// uniform sample from bag.  It returns ErrEmptyBag when bag is empty.
func (g *Generator) StringFrom(bag string, n int) (string, error) {
	if len(bag) == 0 {
		return "", makeError(ErrEmptyBag, "bag of characters to sample "+
			"from is empty")
	}
	if n < 0 {
		n = -n
	}
	idx, err := g.rangedRandoms(uint64(len(bag)), n)
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	for i, r := range idx {
		b[i] = bag[r]
	}
	return string(b), nil
}
