// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muratcankilic96/topos/d"
)

func intSet(ns ...int64) *Set {
	s := NewSet()
	for _, n := range ns {
		s.Add(Integer(n))
	}
	return s
}

func TestNewSetDedups(t *testing.T) {
	assert := assert.New(t)
	s := NewSet(Integer(1), Integer(2), Integer(1), Integer(1))
	assert.Equal(2, s.Len())
	assert.True(s.Contains(Integer(1)))
	assert.True(s.Contains(Integer(2)))
	assert.False(s.Contains(Integer(3)))
}

func TestAddRemoveIdempotent(t *testing.T) {
	assert := assert.New(t)
	s := NewSet()
	assert.True(s.Add(Integer(1)))
	assert.False(s.Add(Integer(1)))
	assert.Equal(1, s.Len())
	assert.True(s.Remove(Integer(1)))
	assert.False(s.Remove(Integer(1)))
	assert.True(s.IsEmpty())
}

func TestEqualityIgnoresInsertionOrder(t *testing.T) {
	assert := assert.New(t)
	s1 := intSet(1, 2, 3)
	s2 := intSet(3, 1, 2)
	assert.True(s1.Equals(s2))
	assert.Equal(s1.Hash(), s2.Hash())
	assert.False(s1.Equals(intSet(1, 2)))
	assert.False(intSet(1, 2).Equals(s1))
}

func TestHashTracksMutation(t *testing.T) {
	assert := assert.New(t)
	s := intSet(1, 2)
	h := s.Hash()
	s.Add(Integer(3))
	assert.NotEqual(h, s.Hash())
	s.Remove(Integer(3))
	assert.Equal(h, s.Hash())
	assert.NotEqual(NewSet().Hash(), intSet(0).Hash())
}

func TestNestedSets(t *testing.T) {
	assert := assert.New(t)
	inner := intSet(1, 2)
	s := NewSet(inner, Integer(3))
	assert.True(s.Contains(intSet(2, 1)))
	assert.True(s.Equals(NewSet(Integer(3), intSet(1, 2))))

	// Members are copied on insert; mutating the original does not reach
	// into the container.
	inner.Add(Integer(99))
	assert.True(s.Contains(intSet(1, 2)))
	assert.False(s.Contains(inner))
}

func TestSingletonAndAny(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(NewSet().Any())
	s := intSet(7)
	assert.True(s.IsSingleton())
	assert.True(s.Any().Equals(Integer(7)))
	assert.False(intSet(1, 2).IsSingleton())
}

func TestSubsetPredicates(t *testing.T) {
	assert := assert.New(t)
	a := intSet(1, 2)
	b := intSet(1, 2, 3)
	assert.True(a.IsSubsetOf(b))
	assert.True(a.IsProperSubsetOf(b))
	assert.True(a.IsSubsetOf(a))
	assert.False(a.IsProperSubsetOf(a))
	assert.True(b.IsSupersetOf(a))
	assert.True(b.IsProperSupersetOf(a))
	assert.False(a.IsSubsetOf(intSet(2, 3)))
	assert.True(NewSet().IsSubsetOf(a))
}

func TestUnionIntersectionExclusion(t *testing.T) {
	assert := assert.New(t)
	a := intSet(1, 2, 3)
	b := intSet(3, 4)

	assert.True(a.Union(b).Equals(b.Union(a)))
	assert.True(a.Union(b).Equals(intSet(1, 2, 3, 4)))
	assert.True(a.Intersection(b).Equals(b.Intersection(a)))
	assert.True(a.Intersection(b).Equals(intSet(3)))
	assert.True(a.Exclusion(b).Equals(intSet(1, 2)))
	assert.True(a.Exclusion(a).IsEmpty())
	assert.True(a.IsSubsetOf(a.Union(b)))
	assert.True(a.Intersection(b).IsSubsetOf(a))

	// Operands are never mutated.
	assert.True(a.Equals(intSet(1, 2, 3)))
	assert.True(b.Equals(intSet(3, 4)))
}

func TestNAryCombinators(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	u, err := UnionN(intSet(1), intSet(2), intSet(3))
	require.NoError(err)
	assert.True(u.Equals(intSet(1, 2, 3)))

	i, err := IntersectionN(intSet(1, 2, 3), intSet(2, 3), intSet(3))
	require.NoError(err)
	assert.True(i.Equals(intSet(3)))

	e, err := ExclusionN(intSet(1, 2, 3, 4), intSet(2), intSet(4))
	require.NoError(err)
	assert.True(e.Equals(intSet(1, 3)))

	for _, err := range []error{
		mustErr(UnionN(intSet(1))),
		mustErr(IntersectionN()),
		mustErr(ExclusionN(intSet(1))),
		mustErr(CartesianProductN(intSet(1))),
	} {
		assert.True(d.IsArityError(err))
	}
}

func mustErr(_ *Set, err error) error {
	return err
}

func TestPowerSet(t *testing.T) {
	assert := assert.New(t)
	a := intSet(1, 2, 3)
	p := a.PowerSet()
	assert.Equal(8, p.Len())
	assert.True(p.Contains(NewSet()))
	assert.True(p.Contains(a))
	assert.True(p.Contains(intSet(1, 3)))
	assert.False(p.Contains(intSet(4)))

	assert.Equal(1, NewSet().PowerSet().Len())
	assert.True(NewSet().PowerSet().Contains(NewSet()))
}

func TestPowerSetGuard(t *testing.T) {
	members := make([]Value, maxPowerSetLen+1)
	for i := range members {
		members[i] = Integer(i)
	}
	s := NewSet(members...)
	assert.Panics(t, func() { s.PowerSet() })
}

func TestCartesianProduct(t *testing.T) {
	assert := assert.New(t)
	a := intSet(1, 2)
	b := intSet(3, 4)
	p := a.CartesianProduct(b)
	assert.Equal(4, p.Len())
	assert.True(p.Contains(NewPair(Integer(1), Integer(3))))
	assert.True(p.Contains(NewPair(Integer(2), Integer(4))))
	assert.False(p.Contains(NewPair(Integer(3), Integer(1))))

	triples, err := CartesianProductN(a, b, intSet(5))
	assert.NoError(err)
	assert.Equal(4, triples.Len())
	assert.True(triples.Contains(NewTuple(Integer(1), Integer(3), Integer(5))))
}

func TestSetRendering(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Ø", NewSet().String())
	assert.Equal("{1, 2, 3}", intSet(3, 1, 2).String())
	// Numbers sort before sets in render order.
	assert.Equal("{3, {1, 2}}", NewSet(Integer(3), intSet(2, 1)).String())
}

func TestCopyIsIndependent(t *testing.T) {
	assert := assert.New(t)
	a := intSet(1, 2)
	b := a.Copy()
	b.Add(Integer(3))
	assert.Equal(2, a.Len())
	assert.Equal(3, b.Len())
}
