// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package primes provides the number-theoretic primitives the congruence
// engine is built on: prime enumeration, factorization into prime powers,
// divisor enumeration and the Euler totient.
package primes

import (
	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/types"
)

// PrimesUpTo returns the set of primes ≤ n via a sieve of Eratosthenes
// over a mutable set: seed 2 and the odd candidates, then remove composite
// multiples of each surviving prime up to √n. Negative n is a DomainError;
// n < 2 yields Ø.
func PrimesUpTo(n int64) (*types.Set, error) {
	if n < 0 {
		return nil, &d.DomainError{Op: "PrimesUpTo", Input: n, Reason: "sieve bound must be non-negative"}
	}
	s := types.NewSet()
	if n < 2 {
		return s, nil
	}
	s.Add(types.Integer(2))
	for c := int64(3); c <= n; c += 2 {
		s.Add(types.Integer(c))
	}
	for p := int64(3); p*p <= n; p += 2 {
		if !s.Contains(types.Integer(p)) {
			continue
		}
		for m := p * p; m <= n; m += 2 * p {
			s.Remove(types.Integer(m))
		}
	}
	return s, nil
}

// Factorize returns the prime factorization of n as a set of p^k
// exponentials, e.g. Factorize(360) = {2^3, 3^2, 5^1}. Factorize(1) is Ø;
// n < 1 is a DomainError.
func Factorize(n int64) (*types.Set, error) {
	result := types.NewSet()
	if err := eachPrimePower(n, "Factorize", func(p, k int64) {
		result.Add(types.NewIntExponential(p, k))
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// FactorizeUnique returns the set of distinct prime factors of n, without
// multiplicities. n < 1 is a DomainError.
func FactorizeUnique(n int64) (*types.Set, error) {
	result := types.NewSet()
	if err := eachPrimePower(n, "FactorizeUnique", func(p, k int64) {
		result.Add(types.Integer(p))
	}); err != nil {
		return nil, err
	}
	return result, nil
}

func eachPrimePower(n int64, op string, cb func(p, k int64)) error {
	if n < 1 {
		return &d.DomainError{Op: op, Input: n, Reason: "factorization requires a positive integer"}
	}
	for p := int64(2); p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		k := int64(0)
		for n%p == 0 {
			n /= p
			k++
		}
		cb(p, k)
	}
	if n > 1 {
		cb(n, 1)
	}
	return nil
}

// Divisors returns the set of positive divisors of n, by trial division up
// to √n collecting each (d, n/d) pair. Divisors(0) would be the infinite
// set, so it is a DivisionByZero error; negative n divides as |n|.
func Divisors(n int64) (*types.Set, error) {
	if n == 0 {
		return nil, &d.DivisionByZero{Op: "Divisors"}
	}
	if n < 0 {
		n = -n
	}
	result := types.NewSet()
	for div := int64(1); div*div <= n; div++ {
		if n%div == 0 {
			result.Add(types.Integer(div))
			result.Add(types.Integer(n / div))
		}
	}
	return result, nil
}

// EulerTotient returns φ(n), the count of integers in [1, n] coprime to n.
// Sieve-free multiplicative reduction: for each factor found up to √n,
// divide it fully out and subtract its share of multiples from the running
// count, with a final correction for a residual factor above √n. Negative
// n is a DomainError; φ(0) = 0.
func EulerTotient(n int64) (int64, error) {
	if n < 0 {
		return 0, &d.DomainError{Op: "EulerTotient", Input: n, Reason: "totient requires a non-negative integer"}
	}
	if n == 0 {
		return 0, nil
	}
	remaining := n
	count := n
	for p := int64(2); p*p <= remaining; p++ {
		if remaining%p != 0 {
			continue
		}
		for remaining%p == 0 {
			remaining /= p
		}
		count -= count / p
	}
	if remaining > 1 {
		count -= count / remaining
	}
	return count, nil
}

// IsPrime determines if n is prime by trial division.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			return false
		}
	}
	return true
}

// IsPrimePower reports the (p, k) with n = p^k, k ≥ 1, when n is a power
// of a single prime.
func IsPrimePower(n int64) (p, k int64, ok bool) {
	if n < 2 {
		return 0, 0, false
	}
	p = smallestFactor(n)
	for n%p == 0 {
		n /= p
		k++
	}
	if n != 1 {
		return 0, 0, false
	}
	return p, k, true
}

func smallestFactor(n int64) int64 {
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			return p
		}
	}
	return n
}
