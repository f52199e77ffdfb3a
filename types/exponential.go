// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

import (
	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/hash"
)

// Exponential is a base^index pair kept in unevaluated form. Factorization
// produces sets of them (prime^multiplicity) and the congruence engine
// evaluates them under a modulus.
type Exponential struct {
	base, index Value
}

// NewExponential returns base^index, or an UnsupportedValueError when
// either part is not a numeric kind.
func NewExponential(base, index Value) (*Exponential, error) {
	if !IsNumericKind(base.Kind()) {
		return nil, &d.UnsupportedValueError{Op: "NewExponential", Value: base}
	}
	if !IsNumericKind(index.Kind()) {
		return nil, &d.UnsupportedValueError{Op: "NewExponential", Value: index}
	}
	return &Exponential{base, index}, nil
}

// NewIntExponential returns base^index over integers. It cannot fail.
func NewIntExponential(base, index int64) *Exponential {
	return &Exponential{Integer(base), Integer(index)}
}

func (v *Exponential) Equals(other Value) bool {
	if v2, ok := other.(*Exponential); ok {
		return v.base.Equals(v2.base) && v.index.Equals(v2.index)
	}
	return false
}

func (v *Exponential) Less(other Value) bool {
	return valueLess(v, other)
}

func (v *Exponential) Hash() hash.Hash {
	return getHash(v)
}

func (v *Exponential) Kind() Kind {
	return ExponentialKind
}

func (v *Exponential) String() string {
	return v.base.String() + "^" + v.index.String()
}

// Base returns the base part.
func (v *Exponential) Base() Value {
	return v.base
}

// Index returns the index (exponent) part.
func (v *Exponential) Index() Value {
	return v.index
}
