// Copyright 2017 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package util

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"

	"github.com/muratcankilic96/topos/config"
	"github.com/muratcankilic96/topos/types"
)

var cfg = config.DefaultConfig()

// ApplyConfig installs the resolved .toposconfig for output decisions.
func ApplyConfig(c *config.Config) {
	cfg = c
}

func useColor() bool {
	switch cfg.Color {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Emph highlights a result string when color is enabled.
func Emph(s string) string {
	if useColor() {
		return ansi.Color(s, "cyan+b")
	}
	return s
}

// summarizeAbove is the member count past which sets print as a summary
// line instead of full notation.
const summarizeAbove = 10000

// PrintSet writes a set in math notation, or a humanized member count when
// it is too large to be readable.
func PrintSet(s *types.Set) {
	if s.Len() > summarizeAbove {
		fmt.Printf("set of %s members\n", humanize.Comma(int64(s.Len())))
		return
	}
	fmt.Println(Emph(s.String()))
}

// PrintInt writes a single integer result.
func PrintInt(n int64) {
	fmt.Println(Emph(fmt.Sprintf("%d", n)))
}

// Fail reports err on stderr and returns the exit code for it.
func Fail(err error) int {
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
	return 1
}

// CheckBruteForce enforces the configured modulus cap for operations that
// may scan every residue class.
func CheckBruteForce(base int64) error {
	if cfg.MaxBruteForce > 0 && base > cfg.MaxBruteForce {
		return errors.Errorf("modulus %s exceeds configured max_brute_force %s",
			humanize.Comma(base), humanize.Comma(cfg.MaxBruteForce))
	}
	return nil
}
