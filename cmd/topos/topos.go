// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Topos is a command line front end for the finite-set algebra and integer
// congruence engines.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/attic-labs/kingpin"

	"github.com/muratcankilic96/topos/cmd/topos/util"
	"github.com/muratcankilic96/topos/config"
	"github.com/muratcankilic96/topos/util/profile"
	"github.com/muratcankilic96/topos/util/verbose"
)

var kingpinCommands = []util.KingpinCommand{
	toposPrimes,
	toposFactor,
	toposDivisors,
	toposPhi,
	toposMod,
	toposPow,
	toposOrder,
	toposInverse,
	toposSolve,
	toposRoots,
	toposDlog,
	toposLegendre,
	toposQr,
}

func main() {
	// allow short (-h) help
	kingpin.EnableFileExpansion = false
	kingpin.CommandLine.HelpFlag.Short('h')
	topos := kingpin.New("topos", "Topos is a tool for finite-set algebra and modular arithmetic.")

	// global flags
	cpuProfileVal := topos.Flag("cpuprofile", "write cpu profile to file").String()
	memProfileVal := topos.Flag("memprofile", "write memory profile to file").String()
	blockProfileVal := topos.Flag("blockprofile", "write block profile to file").String()
	verboseVal := topos.Flag("verbose", "show more").Short('v').Bool()

	handlers := map[string]util.KingpinHandler{}
	for _, cmdFunction := range kingpinCommands {
		command, handler := cmdFunction(topos)
		handlers[command.FullCommand()] = handler
	}

	input := kingpin.MustParse(topos.Parse(os.Args[1:]))

	// apply global flags
	profile.ApplyProfileFlags(cpuProfileVal, memProfileVal, blockProfileVal)
	verbose.SetVerbose(*verboseVal)

	cfg, err := config.FindToposConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	util.ApplyConfig(cfg)
	if cfg.File != "" {
		verbose.Log("using config %s", cfg.File)
	}

	prof := profile.MaybeStartProfile()
	code := 0
	if handler := handlers[strings.Split(input, " ")[0]]; handler != nil {
		code = handler(input)
	}
	prof.Stop()
	os.Exit(code)
}
