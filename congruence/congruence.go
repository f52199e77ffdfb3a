// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package congruence implements modular arithmetic over ℤ/nℤ for a fixed
// positive modulus: modular exponentiation, multiplicative order, primitive
// roots, discrete logarithm, linear congruences and quadratic residues.
package congruence

import (
	"math/bits"
	"sort"

	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/primes"
	"github.com/muratcankilic96/topos/types"
)

// IntegerCongruence is a pure computation scope over one modulus. It holds
// no mutable state; every method is a function of its arguments and the
// base, and every Mod result lies in [0, Base).
type IntegerCongruence struct {
	base    int64
	totient int64
}

// New creates an engine over the given modulus. A non-positive modulus is
// a DomainError.
func New(base int64) (*IntegerCongruence, error) {
	if base <= 0 {
		return nil, &d.DomainError{Op: "congruence.New", Input: base, Reason: "modulus must be positive"}
	}
	totient, err := primes.EulerTotient(base)
	d.PanicIfError(err)
	return &IntegerCongruence{base, totient}, nil
}

// Base returns the modulus.
func (ic *IntegerCongruence) Base() int64 {
	return ic.base
}

// Totient returns φ(Base), computed once at construction.
func (ic *IntegerCongruence) Totient() int64 {
	return ic.totient
}

// Mod returns the canonical representative of a in [0, Base), for negative
// a as well.
func (ic *IntegerCongruence) Mod(a int64) int64 {
	return ((a % ic.base) + ic.base) % ic.base
}

// Congruent determines if a ≡ b (mod Base).
func (ic *IntegerCongruence) Congruent(a, b int64) bool {
	return ic.Mod(a) == ic.Mod(b)
}

// ModExp returns a^k mod Base. When gcd(a, Base) = 1 the exponent is first
// reduced modulo φ(Base) by Euler's theorem. A negative exponent requires a
// to be invertible, else a DomainError.
func (ic *IntegerCongruence) ModExp(a, k int64) (int64, error) {
	am := ic.Mod(a)
	if k < 0 {
		inverse := ic.MultiplicativeInverse(am)
		if inverse == 0 && ic.base > 1 {
			return 0, &d.DomainError{Op: "ModExp", Input: a, Reason: "negative exponent requires an invertible base"}
		}
		return ic.modPow(inverse, -k), nil
	}
	if gcd(am, ic.base) == 1 {
		k = k % ic.totient
		if k == 0 && ic.base > 1 {
			// a^0 and Euler-reduced exponents land on the identity.
			return ic.Mod(1), nil
		}
	}
	return ic.modPow(am, k), nil
}

// modPow is square-and-multiply with reduction after every multiply. It
// produces the same results as the naive repeated-multiplication loop.
func (ic *IntegerCongruence) modPow(a, k int64) int64 {
	result := ic.Mod(1)
	a = ic.Mod(a)
	for k > 0 {
		if k&1 == 1 {
			result = mulMod(result, a, ic.base)
		}
		a = mulMod(a, a, ic.base)
		k >>= 1
	}
	return result
}

// mulMod returns a·b mod m through a 128-bit intermediate, so products of
// reduced operands never overflow. Operands must lie in [0, m).
func mulMod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, uint64(m))
	return int64(rem)
}

// ModExponential evaluates an unevaluated base^index pair under the
// modulus. Both parts must project to integers; anything else is an
// UnsupportedValueError.
func (ic *IntegerCongruence) ModExponential(e *types.Exponential) (int64, error) {
	base, ok := types.Int64Of(e.Base())
	if !ok {
		return 0, &d.UnsupportedValueError{Op: "ModExponential", Value: e.Base()}
	}
	index, ok := types.Int64Of(e.Index())
	if !ok {
		return 0, &d.UnsupportedValueError{Op: "ModExponential", Value: e.Index()}
	}
	return ic.ModExp(base, index)
}

// mustModExp is ModExp for callers that have already established a
// non-negative exponent or an invertible base.
func (ic *IntegerCongruence) mustModExp(a, k int64) int64 {
	r, err := ic.ModExp(a, k)
	d.PanicIfError(err)
	return r
}

// Order returns the multiplicative order of a: the least d with a^d ≡ 1.
// For a not coprime to the base the order is undefined and the sentinel 0
// is returned, not an error. By Lagrange's theorem the order divides
// φ(Base), so only divisors of the totient are probed, in ascending order.
//
// Beware the modulus-1 edge: there 0 is also a legitimate order result's
// complement since every value is ≡ 0; callers that care should check
// Base() == 1 first.
func (ic *IntegerCongruence) Order(a int64) int64 {
	if gcd(ic.Mod(a), ic.base) != 1 {
		return 0
	}
	for _, div := range ic.totientDivisors() {
		if ic.mustModExp(a, div) == ic.Mod(1) {
			return div
		}
	}
	return 0
}

func (ic *IntegerCongruence) totientDivisors() []int64 {
	divisors, err := primes.Divisors(ic.totient)
	d.PanicIfError(err)
	result := make([]int64, 0, divisors.Len())
	divisors.Iter(func(v types.Value) (stop bool) {
		n, ok := types.Int64Of(v)
		d.PanicIfFalse(ok)
		result = append(result, n)
		return
	})
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// HasPrimitiveRoots determines if the unit group mod Base is cyclic, which
// holds exactly for 1, 2, 4, p^k and 2·p^k with p an odd prime.
func (ic *IntegerCongruence) HasPrimitiveRoots() bool {
	switch ic.base {
	case 1, 2, 4:
		return true
	}
	n := ic.base
	if n%2 == 0 {
		n /= 2
		if n%2 == 0 {
			return false
		}
	}
	p, _, ok := primes.IsPrimePower(n)
	return ok && p != 2
}

// PrimitiveRoots returns the set of primitive roots mod Base, or Ø when
// none exist. The first root r is found by linear search on Order(r) ==
// φ(Base); the rest are generated as r^i for every i coprime to φ(Base).
func (ic *IntegerCongruence) PrimitiveRoots() *types.Set {
	result := types.NewSet()
	if !ic.HasPrimitiveRoots() {
		return result
	}
	first := int64(-1)
	for r := int64(0); r < ic.base; r++ {
		if gcd(ic.Mod(r), ic.base) == 1 && ic.Order(r) == ic.totient {
			first = r
			break
		}
	}
	if first < 0 {
		return result
	}
	for i := int64(1); i <= ic.totient; i++ {
		if gcd(i, ic.totient) == 1 {
			result.Add(types.Integer(ic.mustModExp(first, i)))
		}
	}
	return result
}

// MultiplicativeInverse returns a^-1 mod Base via Euler's theorem
// (a^(φ-1)), or the sentinel 0 when gcd(a, Base) ≠ 1 and no inverse
// exists. As with Order, modulus 1 collapses the sentinel and the result.
func (ic *IntegerCongruence) MultiplicativeInverse(a int64) int64 {
	am := ic.Mod(a)
	if gcd(am, ic.base) != 1 {
		return 0
	}
	return ic.mustModExp(am, ic.totient-1)
}

// SolveLinear returns the full solution set of ax ≡ b (mod Base). With
// d = gcd(a, Base) there are no solutions unless d | b, in which case the
// reduced congruence (a/d)x ≡ b/d (mod Base/d) has the unique solution x₀
// and the full set is {x₀ + i·(Base/d) : 0 ≤ i < d}. Ø means no solution.
func (ic *IntegerCongruence) SolveLinear(a, b int64) *types.Set {
	result := types.NewSet()
	am, bm := ic.Mod(a), ic.Mod(b)
	div := gcd(am, ic.base)
	if div == 0 {
		div = ic.base
	}
	if bm%div != 0 {
		return result
	}
	reduced, err := New(ic.base / div)
	d.PanicIfError(err)
	inverse := reduced.MultiplicativeInverse(am / div)
	x0 := mulMod(inverse, bm/div, reduced.base)
	for i := int64(0); i < div; i++ {
		result.Add(types.Integer(x0 + i*(ic.base/div)))
	}
	return result
}

// Index returns the discrete logarithm of a to the primitive root r: the
// exponent x with r^x ≡ a (mod Base). It is a DomainError when r is not a
// primitive root, or when a is zero or shares a factor with the base (no
// power of a unit can reach it). Baby-step/giant-step: a table of r^j for
// j < ⌈√Base⌉, then giant steps by r^(-⌈√Base⌉), O(√Base) time and space.
func (ic *IntegerCongruence) Index(a, r int64) (int64, error) {
	am := ic.Mod(a)
	if am == 0 {
		return 0, &d.DomainError{Op: "Index", Input: a, Reason: "argument must be nonzero modulo the base"}
	}
	if gcd(am, ic.base) != 1 {
		return 0, &d.DomainError{Op: "Index", Input: a, Reason: "argument must be coprime to the base"}
	}
	if ic.Order(r) != ic.totient {
		return 0, &d.DomainError{Op: "Index", Input: r, Reason: "logarithm base must be a primitive root"}
	}
	m := isqrtCeil(ic.base)
	rm := ic.Mod(r)
	baby := make(map[int64]int64, m)
	pow := ic.Mod(1)
	for j := int64(0); j < m; j++ {
		if _, seen := baby[pow]; !seen {
			baby[pow] = j
		}
		pow = mulMod(pow, rm, ic.base)
	}
	giant := ic.MultiplicativeInverse(ic.mustModExp(r, m))
	gamma := am
	for i := int64(0); i <= m; i++ {
		if j, ok := baby[gamma]; ok {
			return i*m + j, nil
		}
		gamma = mulMod(gamma, giant, ic.base)
	}
	return 0, &d.DomainError{Op: "Index", Input: a, Reason: "no discrete logarithm exists"}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func isqrtCeil(n int64) int64 {
	r := int64(1)
	for r*r < n {
		r++
	}
	return r
}
