// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

import (
	"strconv"

	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/hash"
)

// Integer is a Value wrapper around the primitive int64 type.
type Integer int64

// NewInteger returns n as a Value.
func NewInteger(n int64) Integer {
	return Integer(n)
}

func (v Integer) Equals(other Value) bool {
	return v == other
}

func (v Integer) Less(other Value) bool {
	if v2, ok := other.(Integer); ok {
		return v < v2
	}
	return valueLess(v, other)
}

func (v Integer) Hash() hash.Hash {
	return getHash(v)
}

func (v Integer) Kind() Kind {
	return IntegerKind
}

func (v Integer) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Int64 returns the wrapped integer.
func (v Integer) Int64() int64 {
	return int64(v)
}

// Rational is a Value wrapper around an exact num/den quotient. Rationals
// are canonical by construction: lowest terms, positive denominator, and
// den==1 collapses to Integer, so equality and hashing agree no matter how
// a quotient was built.
type Rational struct {
	num, den int64
}

// NewRational returns num/den in canonical form, or a DivisionByZero error
// for a zero denominator. The result is an Integer when the reduced
// denominator is 1.
func NewRational(num, den int64) (Value, error) {
	if den == 0 {
		return nil, &d.DivisionByZero{Op: "NewRational"}
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcdInt64(num, den); g > 1 {
		num, den = num/g, den/g
	}
	if den == 1 {
		return Integer(num), nil
	}
	return Rational{num, den}, nil
}

func (v Rational) Equals(other Value) bool {
	return v == other
}

func (v Rational) Less(other Value) bool {
	if v2, ok := other.(Rational); ok {
		// Denominators are positive by construction. The cross products
		// must fit in int64, so components are bounded by about 2^31.
		return v.num*v2.den < v2.num*v.den
	}
	return valueLess(v, other)
}

func (v Rational) Hash() hash.Hash {
	return getHash(v)
}

func (v Rational) Kind() Kind {
	return RationalKind
}

func (v Rational) String() string {
	return strconv.FormatInt(v.num, 10) + "/" + strconv.FormatInt(v.den, 10)
}

// Num returns the reduced numerator, which carries the sign.
func (v Rational) Num() int64 {
	return v.num
}

// Den returns the reduced denominator, always > 1.
func (v Rational) Den() int64 {
	return v.den
}

// Real is a Value wrapper around the primitive float64 type. Comparison is
// exact bit-for-bit float comparison; Real exists to carry measured
// quantities through sets, not to approximate other kinds.
type Real float64

// NewReal returns f as a Value.
func NewReal(f float64) Real {
	return Real(f)
}

func (v Real) Equals(other Value) bool {
	return v == other
}

func (v Real) Less(other Value) bool {
	if v2, ok := other.(Real); ok {
		return v < v2
	}
	return valueLess(v, other)
}

func (v Real) Hash() hash.Hash {
	return getHash(v)
}

func (v Real) Kind() Kind {
	return RealKind
}

func (v Real) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// Float64 returns the wrapped float.
func (v Real) Float64() float64 {
	return float64(v)
}
