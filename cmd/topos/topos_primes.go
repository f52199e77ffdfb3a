// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"github.com/attic-labs/kingpin"

	"github.com/muratcankilic96/topos/cmd/topos/util"
	"github.com/muratcankilic96/topos/primes"
	"github.com/muratcankilic96/topos/util/verbose"
)

func toposPrimes(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("primes", "enumerate the primes up to a bound")
	n := cmd.Arg("n", "upper bound, inclusive").Required().Int64()

	return cmd, func(input string) int {
		s, err := primes.PrimesUpTo(*n)
		if err != nil {
			return util.Fail(err)
		}
		verbose.Log("sieved %d candidates", *n)
		util.PrintSet(s)
		return 0
	}
}

func toposFactor(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("factor", "factor an integer into prime powers")
	n := cmd.Arg("n", "integer to factor").Required().Int64()
	unique := cmd.Flag("unique", "print distinct prime factors without multiplicities").Bool()

	return cmd, func(input string) int {
		factorize := primes.Factorize
		if *unique {
			factorize = primes.FactorizeUnique
		}
		s, err := factorize(*n)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintSet(s)
		return 0
	}
}

func toposDivisors(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("divisors", "enumerate the positive divisors of an integer")
	n := cmd.Arg("n", "integer to divide").Required().Int64()

	return cmd, func(input string) int {
		s, err := primes.Divisors(*n)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintSet(s)
		return 0
	}
}

func toposPhi(topos *kingpin.Application) (*kingpin.CmdClause, util.KingpinHandler) {
	cmd := topos.Command("phi", "compute the Euler totient φ(n)")
	n := cmd.Arg("n", "totient argument").Required().Int64()

	return cmd, func(input string) int {
		phi, err := primes.EulerTotient(*n)
		if err != nil {
			return util.Fail(err)
		}
		util.PrintInt(phi)
		return 0
	}
}
