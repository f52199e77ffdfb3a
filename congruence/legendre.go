// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package congruence

import (
	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/primes"
	"github.com/muratcankilic96/topos/types"
)

// Legendre returns the Legendre symbol (a / Base) for an odd prime base,
// generalized to the Jacobi symbol when the base is an odd composite: 0
// when the base divides a, +1 when a is a quadratic residue, -1 otherwise.
// For composite bases +1 is necessary but not sufficient for residuosity;
// see IsQuadraticResidue. An even base is a DomainError, the symbol is not
// defined there.
func (ic *IntegerCongruence) Legendre(a int64) (int, error) {
	if ic.base < 3 || ic.base%2 == 0 {
		return 0, &d.DomainError{Op: "Legendre", Input: ic.base, Reason: "the symbol requires an odd base ≥ 3; use IsQuadraticResidue for even moduli"}
	}
	if primes.IsPrime(ic.base) {
		return legendreOddPrime(ic.Mod(a), ic.base), nil
	}
	return ic.Jacobi(a)
}

// Jacobi returns the Jacobi symbol (a / Base) for an odd base: the product
// of Legendre symbols over the base's prime factorization. Jacobi(a) for
// base 1 is 1 by convention. An even base is a DomainError.
func (ic *IntegerCongruence) Jacobi(a int64) (int, error) {
	if ic.base%2 == 0 {
		return 0, &d.DomainError{Op: "Jacobi", Input: ic.base, Reason: "the symbol requires an odd base"}
	}
	if ic.base == 1 {
		return 1, nil
	}
	factors, err := primes.Factorize(ic.base)
	d.PanicIfError(err)
	result := 1
	factors.Iter(func(v types.Value) (stop bool) {
		e := v.(*types.Exponential)
		p, _ := types.Int64Of(e.Base())
		k, _ := types.Int64Of(e.Index())
		sym := legendreOddPrime(a%p, p)
		if sym == 0 {
			result = 0
			return true
		}
		if k%2 == 1 {
			result *= sym
		}
		return
	})
	return result, nil
}

// legendreOddPrime computes (a / p) for an odd prime p by factor
// multiplicativity and quadratic reciprocity: reduce a mod p, factor it,
// and multiply the symbols of the prime factors with odd exponent. The
// factor 2 uses the p mod 8 residue rule; an odd prime factor q recurses
// through reciprocity as (q/p) = ±(p mod q / q), negated exactly when
// p ≡ q ≡ 3 (mod 4). Each recursion strictly shrinks the prime, so ground
// is reached at (0/q), (1/q) or (2/q).
func legendreOddPrime(a, p int64) int {
	a = ((a % p) + p) % p
	if a == 0 {
		return 0
	}
	if a == 1 {
		return 1
	}
	factors, err := primes.Factorize(a)
	d.PanicIfError(err)
	result := 1
	factors.Iter(func(v types.Value) (stop bool) {
		e := v.(*types.Exponential)
		q, _ := types.Int64Of(e.Base())
		k, _ := types.Int64Of(e.Index())
		if k%2 == 0 {
			return
		}
		result *= primeSymbol(q, p)
		return
	})
	return result
}

// primeSymbol computes (q / p) for primes q, p with p odd.
func primeSymbol(q, p int64) int {
	if q == 2 {
		if m := p % 8; m == 1 || m == 7 {
			return 1
		}
		return -1
	}
	sign := 1
	if p%4 == 3 && q%4 == 3 {
		sign = -1
	}
	return sign * legendreOddPrime(p%q, q)
}

// IsQuadraticResidue determines if some x satisfies x² ≡ a (mod Base).
// When the base is an odd prime and a is coprime to it, the Legendre
// symbol decides in closed form. Everywhere else (even or composite bases,
// or a sharing a factor with the base) the engine enumerates the squares
// directly, an O(Base) scan that is exact for every modulus.
func (ic *IntegerCongruence) IsQuadraticResidue(a int64) bool {
	am := ic.Mod(a)
	if ic.base >= 3 && ic.base%2 == 1 && gcd(am, ic.base) == 1 && primes.IsPrime(ic.base) {
		return legendreOddPrime(am, ic.base) == 1
	}
	for x := int64(0); x < ic.base; x++ {
		if mulMod(x, x, ic.base) == am {
			return true
		}
	}
	return false
}
