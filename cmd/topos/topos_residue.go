// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"fmt"

	"github.com/attic-labs/kingpin"

	"github.com/muratcankilic96/topos/cmd/topos/util"
	"github.com/muratcankilic96/topos/congruence"
)

func toposLegendre(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("legendre", "Legendre/Jacobi symbol (a / base) for an odd base")
	base := cmd.Arg("base", "odd modulus").Required().Int64()
	a := cmd.Arg("a", "symbol argument").Required().Int64()

	return cmd, func(input string) int {
		ic, err := congruence.New(*base)
		if err != nil {
			return util.Fail(err)
		}
		sym, err := ic.Legendre(*a)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintInt(int64(sym))
		return 0
	}
}

func toposQr(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("qr", "decide whether a is a quadratic residue modulo base")
	base := cmd.Arg("base", "modulus").Required().Int64()
	a := cmd.Arg("a", "candidate residue").Required().Int64()

	return cmd, func(input string) int {
		if err := util.CheckBruteForce(*base); err != nil {
			return util.Fail(err)
		}
		ic, err := congruence.New(*base)
		if err != nil {
			return util.Fail(err)
		}
		if ic.IsQuadraticResidue(*a) {
			fmt.Println(util.Emph(fmt.Sprintf("%d is a quadratic residue mod %d", ic.Mod(*a), *base)))
		} else {
			fmt.Println(util.Emph(fmt.Sprintf("%d is not a quadratic residue mod %d", ic.Mod(*a), *base)))
		}
		return 0
	}
}
