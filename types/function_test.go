// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionFirstPairWins(t *testing.T) {
	assert := assert.New(t)
	domain := intSet(0, 1)
	codomain := intSet(10, 11)
	f := NewFunction(domain, codomain,
		NewPair(Integer(0), Integer(10)),
		NewPair(Integer(0), Integer(11)), // 0 already mapped, ignored
		NewPair(Integer(1), Integer(11)),
	)
	assert.Equal(2, f.Len())

	v, ok := f.Value(Integer(0))
	assert.True(ok)
	assert.True(Integer(10).Equals(v))
}

func TestFunctionValue(t *testing.T) {
	assert := assert.New(t)
	f := NewFunction(intSet(0, 1), intSet(10), NewPair(Integer(0), Integer(10)))

	v, ok := f.Value(Integer(0))
	assert.True(ok)
	assert.True(Integer(10).Equals(v))

	v, ok = f.Value(Integer(1)) // in the domain but unmapped
	assert.False(ok)
	assert.Nil(v)
}

func TestFunctionAddMapping(t *testing.T) {
	assert := assert.New(t)
	f := NewFunction(intSet(0, 1), intSet(10, 11))
	assert.True(f.AddMapping(Integer(0), Integer(10)))
	assert.False(f.AddMapping(Integer(0), Integer(11)))
	assert.False(f.AddMapping(Integer(9), Integer(10)))
	assert.Equal(1, f.Len())
}

func TestFunctionProperties(t *testing.T) {
	assert := assert.New(t)
	two := intSet(0, 1)
	three := intSet(10, 11, 12)

	inj := NewFunction(two, three,
		NewPair(Integer(0), Integer(10)), NewPair(Integer(1), Integer(11)))
	assert.True(inj.IsInjective())
	assert.False(inj.IsSurjective())
	assert.False(inj.IsBijective())

	sur := NewFunction(three, two,
		NewPair(Integer(10), Integer(0)),
		NewPair(Integer(11), Integer(1)),
		NewPair(Integer(12), Integer(1)))
	assert.False(sur.IsInjective())
	assert.True(sur.IsSurjective())
	assert.False(sur.IsBijective())

	bij := NewFunction(two, intSet(10, 11),
		NewPair(Integer(0), Integer(11)), NewPair(Integer(1), Integer(10)))
	assert.True(bij.IsBijective())
}

func TestFunctionPropertyCacheInvalidation(t *testing.T) {
	assert := assert.New(t)
	f := NewFunction(intSet(0, 1), intSet(10, 11), NewPair(Integer(0), Integer(10)))
	assert.False(f.IsSurjective())
	assert.True(f.AddMapping(Integer(1), Integer(11)))
	assert.True(f.IsSurjective())
}
