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

func TestIntegerBasics(t *testing.T) {
	assert := assert.New(t)
	a := NewInteger(42)
	assert.True(a.Equals(Integer(42)))
	assert.False(a.Equals(Integer(43)))
	assert.False(a.Equals(Real(42)))
	assert.True(Integer(1).Less(Integer(2)))
	assert.Equal("42", a.String())
	assert.Equal(int64(42), a.Int64())
	assert.Equal(a.Hash(), Integer(42).Hash())
}

func TestRationalCanonicalForm(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	half, err := NewRational(1, 2)
	require.NoError(err)
	alsoHalf, err := NewRational(-2, -4)
	require.NoError(err)
	assert.True(half.Equals(alsoHalf))
	assert.Equal(half.Hash(), alsoHalf.Hash())
	assert.Equal("1/2", half.String())

	negThird, err := NewRational(2, -6)
	require.NoError(err)
	assert.Equal("-1/3", negThird.String())

	// den==1 collapses to Integer so 4/2 and 2 are the same value.
	two, err := NewRational(4, 2)
	require.NoError(err)
	assert.Equal(IntegerKind, two.Kind())
	assert.True(two.Equals(Integer(2)))
}

func TestRationalDivisionByZero(t *testing.T) {
	assert := assert.New(t)
	_, err := NewRational(1, 0)
	assert.Error(err)
	assert.True(d.IsDivisionByZero(err))
}

func TestRationalOrdering(t *testing.T) {
	assert := assert.New(t)
	half, _ := NewRational(1, 2)
	third, _ := NewRational(1, 3)
	assert.True(third.Less(half))
	assert.False(half.Less(third))
}

func TestRealIsExact(t *testing.T) {
	assert := assert.New(t)
	assert.True(NewReal(1.5).Equals(Real(1.5)))
	assert.False(NewReal(1.5).Equals(Real(1.5000001)))
	// Real never equals Integer, even at integral values.
	assert.False(NewReal(2).Equals(Integer(2)))
}

func TestExponential(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	e, err := NewExponential(Integer(2), Integer(3))
	require.NoError(err)
	assert.Equal("2^3", e.String())
	assert.True(e.Equals(NewIntExponential(2, 3)))
	assert.False(e.Equals(NewIntExponential(3, 2)))
	assert.Equal(e.Hash(), NewIntExponential(2, 3).Hash())

	_, err = NewExponential(NewSet(), Integer(2))
	assert.True(d.IsUnsupportedValueError(err))
	_, err = NewExponential(Integer(2), NewTuple(Integer(1)))
	assert.True(d.IsUnsupportedValueError(err))
}

func TestNumericProjection(t *testing.T) {
	assert := assert.New(t)

	n, ok := Int64Of(Integer(7))
	assert.True(ok)
	assert.Equal(int64(7), n)
	_, ok = Int64Of(Real(7))
	assert.False(ok)

	f, ok := Float64Of(Real(2.5))
	assert.True(ok)
	assert.Equal(2.5, f)
	half, _ := NewRational(1, 2)
	f, ok = Float64Of(half)
	assert.True(ok)
	assert.Equal(0.5, f)
	_, ok = Float64Of(NewSet())
	assert.False(ok)
}

func TestCrossKindOrdering(t *testing.T) {
	assert := assert.New(t)
	half, _ := NewRational(1, 2)
	// Integer < Rational < Real < Exponential < Tuple < Set.
	assert.True(Integer(100).Less(half))
	assert.True(half.Less(Real(0)))
	assert.True(Real(9).Less(NewIntExponential(1, 1)))
	assert.True(NewIntExponential(1, 1).Less(NewTuple(Integer(0))))
	assert.True(NewTuple(Integer(0)).Less(NewSet()))
}
