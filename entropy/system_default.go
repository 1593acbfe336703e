// Copyright (c) 2026 The brst developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package entropy

import (
	cryptorand "crypto/rand"
	"fmt"
)

const systemSourceName = "crypto/rand"

// systemAvailable reports whether the stdlib crypto/rand reader works on
// this host.  It is wired to the platform randomness API and effectively
// always succeeds.
func systemAvailable() bool {
	var buf [1]byte
	_, err := cryptorand.Read(buf[:])
	return err == nil
}

// systemRead reads nbytes from the stdlib crypto/rand reader.
func systemRead(nbytes int) ([]byte, error) {
	b := make([]byte, nbytes)
	if _, err := cryptorand.Read(b); err != nil {
		str := fmt.Sprintf("crypto/rand: %v", err)
		return nil, makeError(ErrRead, str)
	}
	return b, nil
}
