// Copyright (c) 2026 The brst developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"encoding/binary"
	"errors"
	"io"
	"net"
	"path/filepath"
	"testing"
)

// startFakeEGD serves the EGD protocol on a UNIX socket: entropy-available
// queries are answered with the given pool size and blocking reads with a
// deterministic byte pattern.  The listener shuts down with the test.
func startFakeEGD(t *testing.T, avail uint32) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "egd-pool")
	l, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("unexpected error listening: %v", err)
	}
	t.Cleanup(func() { l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				var next byte
				for {
					cmd := make([]byte, 1)
					if _, err := io.ReadFull(conn, cmd); err != nil {
						return
					}
					switch cmd[0] {
					case egdCmdQuery:
						var reply [4]byte
						binary.BigEndian.PutUint32(reply[:], avail)
						conn.Write(reply[:])

					case egdCmdBlockingRead:
						n := make([]byte, 1)
						if _, err := io.ReadFull(conn, n); err != nil {
							return
						}
						b := make([]byte, n[0])
						for i := range b {
							b[i] = next
							next++
						}
						conn.Write(b)

					default:
						return
					}
				}
			}(conn)
		}
	}()

	return path
}

// swapEGDPaths points the package at the given socket paths for the
// duration of a test.
func swapEGDPaths(t *testing.T, paths []string) {
	t.Helper()
	old := egdPaths
	egdPaths = paths
	t.Cleanup(func() { egdPaths = old })
}

// TestEGDSource exercises the probe handshake and chunked read protocol
// against a fake daemon.
func TestEGDSource(t *testing.T) {
	path := startFakeEGD(t, 4096)
	swapEGDPaths(t, []string{
		filepath.Join(t.TempDir(), "missing"), // skipped
		path,
	})

	src := &egdSource{}
	if !src.available() {
		t.Fatal("daemon not found by probe")
	}
	if src.path != path {
		t.Fatalf("probe selected %s, want %s", src.path, path)
	}

	// 600 bytes forces three read commands (255 + 255 + 90) and the fake
	// daemon's counter pattern makes reassembly mistakes visible.
	b, err := src.read(600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 600 {
		t.Fatalf("got %d bytes, want 600", len(b))
	}
	for i, v := range b {
		if v != byte(i) {
			t.Fatalf("byte %d: got %#x, want %#x", i, v, byte(i))
		}
	}
}

// TestEGDUnavailable ensures the probe fails cleanly when no daemon is
// listening anywhere.
func TestEGDUnavailable(t *testing.T) {
	swapEGDPaths(t, []string{filepath.Join(t.TempDir(), "missing")})

	src := &egdSource{}
	if src.available() {
		t.Fatal("probe succeeded with no daemon")
	}
}

// TestEGDProvider ensures a provider seeded from the daemon reports the
// documented source properties and decodes words.
func TestEGDProvider(t *testing.T) {
	path := startFakeEGD(t, 1024)
	swapEGDPaths(t, []string{path})

	p, err := selectSource([]source{&egdSource{}}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "egd" || !p.Blocking() || !p.Strong() {
		t.Fatalf("unexpected source properties: %s blocking=%v strong=%v",
			p.Name(), p.Blocking(), p.Strong())
	}
	words, err := p.RandomWords(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint32{0x03020100, 0x07060504}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("word %d: got %08x, want %08x", i, words[i], w)
		}
	}

	// The nonblocking policy must refuse the daemon.
	if _, err := selectSource([]source{&egdSource{}}, false); !errors.Is(err, ErrNoSource) {
		t.Fatalf("got error %v, want %v", err, ErrNoSource)
	}
}
