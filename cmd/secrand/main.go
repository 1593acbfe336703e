// Copyright (c) 2026 The brst developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/brst/secrand"
	"github.com/brst/secrand/entropy"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

type config struct {
	Bits     int    `short:"b" long:"bits" description:"seed width in bits; a power of two between 64 and 8192"`
	Count    int    `short:"n" long:"count" description:"number of bytes (or characters with -s) to emit"`
	Hex      bool   `short:"x" long:"hex" description:"emit lowercase hexadecimal instead of raw bytes"`
	Bag      string `short:"s" long:"sample-from" description:"emit characters sampled uniformly from this set"`
	Blocking bool   `long:"blocking" description:"permit entropy sources that block while the host gathers entropy"`
	Force    bool   `short:"f" long:"force" description:"write raw bytes even when stdout is a terminal"`
	Verbose  bool   `short:"v" long:"verbose" description:"log entropy selection and seeding to stderr"`
}

func main() {
	cfg := config{
		Bits:  secrand.DefaultBits,
		Count: 32,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS]"
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.Verbose {
		backend := slog.NewBackend(os.Stderr)
		logger := backend.Logger("SRND")
		logger.SetLevel(slog.LevelDebug)
		secrand.UseLogger(logger)
		entropy.UseLogger(logger)
	}

	g, err := secrand.New(&secrand.Options{
		Bits:          cfg.Bits,
		AllowBlocking: cfg.Blocking,
	})
	if err != nil {
		fatalf("secrand: %v\n", err)
	}

	switch {
	case cfg.Bag != "":
		s, err := g.StringFrom(cfg.Bag, cfg.Count)
		if err != nil {
			fatalf("secrand: %v\n", err)
		}
		fmt.Println(s)

	case cfg.Hex:
		fmt.Println(g.BytesHex(cfg.Count))

	default:
		if !cfg.Force && term.IsTerminal(int(os.Stdout.Fd())) {
			fatalf("secrand: refusing to write raw bytes to a terminal; " +
				"use -x for hex or -f to force\n")
		}
		os.Stdout.Write(g.Bytes(cfg.Count))
	}
}
