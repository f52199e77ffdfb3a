// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"github.com/attic-labs/kingpin"

	"github.com/muratcankilic96/topos/cmd/topos/util"
	"github.com/muratcankilic96/topos/congruence"
	"github.com/muratcankilic96/topos/util/verbose"
)

func toposRoots(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("roots", "list the primitive roots modulo base")
	base := cmd.Arg("base", "modulus").Required().Int64()

	return cmd, func(input string) int {
		if err := util.CheckBruteForce(*base); err != nil {
			return util.Fail(err)
		}
		ic, err := congruence.New(*base)
		if err != nil {
			return util.Fail(err)
		}
		if !ic.HasPrimitiveRoots() {
			verbose.Log("unit group mod %d is not cyclic", *base)
		}
		util.PrintSet(ic.PrimitiveRoots())
		return 0
	}
}

func toposDlog(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("dlog", "discrete logarithm of a to a primitive root r")
	base := cmd.Arg("base", "modulus").Required().Int64()
	r := cmd.Arg("r", "primitive root").Required().Int64()
	a := cmd.Arg("a", "argument").Required().Int64()

	return cmd, func(input string) int {
		ic, err := congruence.New(*base)
		if err != nil {
			return util.Fail(err)
		}
		x, err := ic.Index(*a, *r)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintInt(x)
		return 0
	}
}
