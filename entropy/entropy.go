// Copyright (c) 2026 The brst developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entropy selects a platform entropy source and reads uniformly
// distributed 32-bit words from it.
//
// Candidate sources are probed in priority order at construction: the
// operating system cryptographic API, an entropy gathering daemon reachable
// over a UNIX socket, /dev/urandom, and finally /dev/random.  Sources that
// may block the caller are skipped unless explicitly permitted.
//
// A Provider is intended to be short-lived: construct one, read the words
// needed to seed a generator, and discard it.
package entropy

import (
	"encoding/binary"
)

// Options are the configurable parameters of source selection.
type Options struct {
	// AllowBlocking permits selection of sources that may block the
	// caller while the host accumulates entropy.
	AllowBlocking bool
}

// source is a single candidate entropy source.  available reports whether
// the source can serve reads on this host and may remember state needed by
// later reads, so it is probed at most once, at selection time.
type source interface {
	name() string
	blocking() bool
	strong() bool
	available() bool
	read(nbytes int) ([]byte, error)
}

// Provider reads random words from the single backing source chosen when it
// was constructed.
type Provider struct {
	src source
}

// New probes the candidate sources in priority order and returns a provider
// backed by the first one that is usable under the requested blocking
// policy.  It returns ErrNoSource when every candidate fails its probe.
func New(opts *Options) (*Provider, error) {
	var allowBlocking bool
	if opts != nil {
		allowBlocking = opts.AllowBlocking
	}
	return selectSource(candidates(), allowBlocking)
}

// candidates returns the platform source candidates in priority order.
func candidates() []source {
	return []source{
		systemSource{},
		&egdSource{},
		newURandomSource(),
		newRandomSource(),
	}
}

// selectSource returns a provider backed by the first usable candidate.
func selectSource(cands []source, allowBlocking bool) (*Provider, error) {
	for _, src := range cands {
		if src.blocking() && !allowBlocking {
			log.Debugf("Skipping blocking entropy source %s", src.name())
			continue
		}
		if !src.available() {
			log.Debugf("Entropy source %s is not available", src.name())
			continue
		}
		log.Debugf("Selected entropy source %s", src.name())
		return &Provider{src: src}, nil
	}
	return nil, makeError(ErrNoSource, "no usable entropy source on this host")
}

// Name returns the name of the backing source.
func (p *Provider) Name() string {
	return p.src.name()
}

// Blocking reports whether reads from the backing source may block while
// the host accumulates entropy.
func (p *Provider) Blocking() bool {
	return p.src.blocking()
}

// Strong reports whether the backing source is considered strong enough for
// long-lived cryptographic keys.
func (p *Provider) Strong() bool {
	return p.src.strong()
}

// RandomWords reads from the backing source and returns n uniformly
// distributed 32-bit words.  The raw bytes are decoded little endian; the
// choice only needs to be consistent between seeding and consumption, and
// little endian matches the byte packing used throughout this module.  It
// returns ErrRead if the source fails mid-read or comes up short.
func (p *Provider) RandomWords(n int) ([]uint32, error) {
	b, err := p.src.read(4 * n)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return words, nil
}
