// Copyright (c) 2026 The brst developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package entropy

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const systemSourceName = "getrandom"

// systemAvailable probes getrandom(2) without blocking so that a host still
// accumulating boot-time entropy falls through to the next candidate
// instead of stalling a nonblocking caller.
func systemAvailable() bool {
	var buf [1]byte
	_, err := unix.Getrandom(buf[:], unix.GRND_NONBLOCK)
	return err == nil
}

// systemRead reads nbytes from getrandom(2).  Requests above 256 bytes may
// be served in multiple chunks by the kernel, so short returns are retried
// until the full count is collected.
func systemRead(nbytes int) ([]byte, error) {
	b := make([]byte, nbytes)
	for off := 0; off < nbytes; {
		n, err := unix.Getrandom(b[off:], 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			str := fmt.Sprintf("getrandom: %v", err)
			return nil, makeError(ErrRead, str)
		}
		off += n
	}
	return b, nil
}
