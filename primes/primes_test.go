// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package primes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/types"
)

func intSet(ns ...int64) *types.Set {
	vs := make([]types.Value, len(ns))
	for i, n := range ns {
		vs[i] = types.Integer(n)
	}
	return types.NewSet(vs...)
}

func TestPrimesUpTo(t *testing.T) {
	assert := assert.New(t)

	s, err := PrimesUpTo(30)
	assert.NoError(err)
	assert.True(s.Equals(intSet(2, 3, 5, 7, 11, 13, 17, 19, 23, 29)))

	s, err = PrimesUpTo(2)
	assert.NoError(err)
	assert.True(s.Equals(intSet(2)))

	for _, n := range []int64{0, 1} {
		s, err = PrimesUpTo(n)
		assert.NoError(err)
		assert.True(s.IsEmpty())
	}

	_, err = PrimesUpTo(-1)
	assert.True(d.IsDomainError(err))
}

func TestFactorize(t *testing.T) {
	assert := assert.New(t)

	s, err := Factorize(360)
	assert.NoError(err)
	assert.True(s.Equals(types.NewSet(
		types.NewIntExponential(2, 3),
		types.NewIntExponential(3, 2),
		types.NewIntExponential(5, 1),
	)))

	s, err = Factorize(13)
	assert.NoError(err)
	assert.True(s.Equals(types.NewSet(types.NewIntExponential(13, 1))))

	s, err = Factorize(1)
	assert.NoError(err)
	assert.True(s.IsEmpty())

	_, err = Factorize(0)
	assert.True(d.IsDomainError(err))
	_, err = Factorize(-6)
	assert.True(d.IsDomainError(err))
}

func TestFactorizeUnique(t *testing.T) {
	assert := assert.New(t)

	s, err := FactorizeUnique(360)
	assert.NoError(err)
	assert.True(s.Equals(intSet(2, 3, 5)))

	s, err = FactorizeUnique(1)
	assert.NoError(err)
	assert.True(s.IsEmpty())
}

func TestDivisors(t *testing.T) {
	assert := assert.New(t)

	s, err := Divisors(28)
	assert.NoError(err)
	assert.True(s.Equals(intSet(1, 2, 4, 7, 14, 28)))

	// Perfect square: √n counted once.
	s, err = Divisors(36)
	assert.NoError(err)
	assert.True(s.Equals(intSet(1, 2, 3, 4, 6, 9, 12, 18, 36)))

	s, err = Divisors(-28)
	assert.NoError(err)
	assert.True(s.Equals(intSet(1, 2, 4, 7, 14, 28)))

	s, err = Divisors(1)
	assert.NoError(err)
	assert.True(s.Equals(intSet(1)))

	_, err = Divisors(0)
	assert.True(d.IsDivisionByZero(err))
}

func TestEulerTotient(t *testing.T) {
	assert := assert.New(t)

	cases := map[int64]int64{0: 0, 1: 1, 2: 1, 7: 6, 10: 4, 360: 96, 104729: 104728}
	for n, want := range cases {
		got, err := EulerTotient(n)
		assert.NoError(err)
		assert.Equal(want, got, "φ(%d)", n)
	}

	_, err := EulerTotient(-1)
	assert.True(d.IsDomainError(err))
}

func TestIsPrime(t *testing.T) {
	assert := assert.New(t)
	for _, p := range []int64{2, 3, 5, 13, 104729} {
		assert.True(IsPrime(p), "%d", p)
	}
	for _, n := range []int64{-7, 0, 1, 4, 9, 104730} {
		assert.False(IsPrime(n), "%d", n)
	}
}

func TestIsPrimePower(t *testing.T) {
	assert := assert.New(t)

	p, k, ok := IsPrimePower(8)
	assert.True(ok)
	assert.Equal(int64(2), p)
	assert.Equal(int64(3), k)

	p, k, ok = IsPrimePower(7)
	assert.True(ok)
	assert.Equal(int64(7), p)
	assert.Equal(int64(1), k)

	for _, n := range []int64{0, 1, 6, 12, 100} {
		_, _, ok = IsPrimePower(n)
		assert.False(ok, "%d", n)
	}

	_, _, ok = IsPrimePower(49)
	assert.True(ok)
}
