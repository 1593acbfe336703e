// Copyright (c) 2026 The brst developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secrand

import (
	"sync"
)

// lockingGenerator serializes access to a shared Generator so the
// package-level functions are safe for concurrent use.
type lockingGenerator struct {
	*Generator
	mu sync.Mutex
}

var globalRand *lockingGenerator

func init() {
	g, err := New(nil)
	if err != nil {
		panic(err)
	}
	globalRand = &lockingGenerator{Generator: g}
}

// Uint32 returns the next 32-bit word from the shared default Generator.
func Uint32() uint32 {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Uint32()
}

// Bytes returns |n| random bytes from the shared default Generator.
func Bytes(n int) []byte {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.Bytes(n)
}

// BytesHex returns 2·|n| lowercase hex digits from the shared default
// Generator.
func BytesHex(n int) string {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.BytesHex(n)
}

// StringFrom returns a string of |n| characters sampled uniformly from bag
// by the shared default Generator.
func StringFrom(bag string, n int) (string, error) {
	globalRand.mu.Lock()
	defer globalRand.mu.Unlock()

	return globalRand.StringFrom(bag, n)
}
