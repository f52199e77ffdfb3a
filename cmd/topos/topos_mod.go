// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"github.com/attic-labs/kingpin"

	"github.com/muratcankilic96/topos/cmd/topos/util"
	"github.com/muratcankilic96/topos/congruence"
)

func toposMod(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("mod", "reduce an integer modulo a base")
	base := cmd.Arg("base", "modulus").Required().Int64()
	a := cmd.Arg("a", "integer to reduce").Required().Int64()

	return cmd, func(input string) int {
		ic, err := congruence.New(*base)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintInt(ic.Mod(*a))
		return 0
	}
}

func toposPow(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("pow", "modular exponentiation a^k mod base")
	base := cmd.Arg("base", "modulus").Required().Int64()
	a := cmd.Arg("a", "base of the power").Required().Int64()
	k := cmd.Arg("k", "exponent, may be negative when a is invertible").Required().Int64()

	return cmd, func(input string) int {
		ic, err := congruence.New(*base)
		if err != nil {
			return util.Fail(err)
		}
		r, err := ic.ModExp(*a, *k)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintInt(r)
		return 0
	}
}

func toposOrder(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("order", "multiplicative order of a modulo base (0 when undefined)")
	base := cmd.Arg("base", "modulus").Required().Int64()
	a := cmd.Arg("a", "group element").Required().Int64()

	return cmd, func(input string) int {
		ic, err := congruence.New(*base)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintInt(ic.Order(*a))
		return 0
	}
}

func toposInverse(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("inverse", "multiplicative inverse of a modulo base (0 when undefined)")
	base := cmd.Arg("base", "modulus").Required().Int64()
	a := cmd.Arg("a", "element to invert").Required().Int64()

	return cmd, func(input string) int {
		ic, err := congruence.New(*base)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintInt(ic.MultiplicativeInverse(*a))
		return 0
	}
}

func toposSolve(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("solve", "solve the linear congruence ax ≡ b (mod base)")
	base := cmd.Arg("base", "modulus").Required().Int64()
	a := cmd.Arg("a", "coefficient").Required().Int64()
	b := cmd.Arg("b", "right-hand side").Required().Int64()

	return cmd, func(input string) int {
		ic, err := congruence.New(*base)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintSet(ic.SolveLinear(*a, *b))
		return 0
	}
}
