// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package types implements the finite-set algebra: structurally comparable
// math values, sets of them (including sets of sets), ordered tuples with
// their Kuratowski set encoding, and relations and functions over sets.
package types

import (
	"github.com/muratcankilic96/topos/hash"
)

// Value is the interface all math values implement. Implementations must
// keep Equals and Hash consistent: if a.Equals(b) then a.Hash() == b.Hash(),
// recursively through nested sets and tuples.
type Value interface {
	// Equals determines if two values represent the same underlying
	// mathematical object. Equality is exact and structural; there is no
	// approximate comparison of any kind.
	Equals(other Value) bool

	// Less determines if this value sorts before another. Within a kind the
	// natural ordering is used where one exists (Integer, Rational, Real);
	// elsewhere the hash of the value is used. Across kinds the Kind order
	// applies. Less only exists to give renderings a canonical member order.
	Less(other Value) bool

	// Hash is the structural hash of the value. Two equal values always
	// have the same hash.
	Hash() hash.Hash

	// Kind returns the variant tag of the value.
	Kind() Kind

	// String renders the value in mathematical notation.
	String() string
}

// ValueSlice is a sortable slice of values, ordered by Less.
type ValueSlice []Value

func (vs ValueSlice) Len() int           { return len(vs) }
func (vs ValueSlice) Swap(i, j int)      { vs[i], vs[j] = vs[j], vs[i] }
func (vs ValueSlice) Less(i, j int) bool { return vs[i].Less(vs[j]) }

func (vs ValueSlice) Equals(other ValueSlice) bool {
	if vs.Len() != other.Len() {
		return false
	}
	for i, v := range vs {
		if !v.Equals(other[i]) {
			return false
		}
	}
	return true
}

// valueLess implements cross-kind Less for values with no natural order
// against other kinds.
func valueLess(v, other Value) bool {
	if v.Kind() != other.Kind() {
		return v.Kind() < other.Kind()
	}
	return v.Hash().Less(other.Hash())
}
