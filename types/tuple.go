// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

import (
	"strings"

	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/hash"
)

// Tuple is an ordered sequence of values. Its set identity is the recursive
// Kuratowski encoding (a,b) ≡ {{a},{a,b}}, so a tuple is a legal set
// member and compares equal to its own expansion. Tuples are immutable.
type Tuple struct {
	elems []Value
	k     *Set // lazily built Kuratowski expansion
	h     *hash.Hash
}

// NewTuple creates a tuple from elems, splicing any element that is itself
// a tuple into the sequence: (a, (b, c)) becomes (a, b, c). Use NewPair
// when a tuple-valued coordinate must be preserved.
func NewTuple(elems ...Value) *Tuple {
	flat := make([]Value, 0, len(elems))
	for _, e := range elems {
		d.PanicIfTrue(e == nil)
		if t, ok := e.(*Tuple); ok {
			flat = append(flat, t.elems...)
			continue
		}
		flat = append(flat, e)
	}
	return &Tuple{elems: flat}
}

// NewPair creates a strict 2-tuple without splicing tuple-valued
// coordinates. Relations are built from pairs.
func NewPair(a, b Value) *Tuple {
	d.PanicIfTrue(a == nil || b == nil)
	return &Tuple{elems: []Value{a, b}}
}

// Len returns the number of coordinates.
func (t *Tuple) Len() int {
	return len(t.elems)
}

// Get returns the i'th coordinate.
func (t *Tuple) Get(i int) Value {
	return t.elems[i]
}

// First returns the first coordinate of a non-empty tuple.
func (t *Tuple) First() Value {
	return t.elems[0]
}

// Second returns the second coordinate; the tuple must have at least two.
func (t *Tuple) Second() Value {
	return t.elems[1]
}

// Kuratowski returns the pure-set encoding of the tuple: Ø for (), {a} for
// (a), {{a},{a,b}} for (a,b), and left-nested pairs beyond that. The
// expansion is built once and cached.
func (t *Tuple) Kuratowski() *Set {
	if t.k == nil {
		t.k = expand(t.elems)
	}
	return t.k
}

func expand(elems []Value) *Set {
	switch len(elems) {
	case 0:
		return NewSet()
	case 1:
		return NewSet(elems[0])
	case 2:
		return kuratowskiPair(elems[0], elems[1])
	}
	// (e1, ..., en) ≡ ((e1, ..., en-1), en). The prefix tuple is usable as
	// the pair's first coordinate directly since it hashes and compares as
	// its own expansion.
	prefix := &Tuple{elems: elems[:len(elems)-1]}
	return kuratowskiPair(prefix, elems[len(elems)-1])
}

func kuratowskiPair(a, b Value) *Set {
	return NewSet(NewSet(a), NewSet(a, b))
}

// Value interface

// Equals compares tuples coordinate-wise and compares a tuple to a raw Set
// through the Kuratowski expansion.
func (t *Tuple) Equals(other Value) bool {
	switch other := other.(type) {
	case *Tuple:
		return ValueSlice(t.elems).Equals(ValueSlice(other.elems))
	case *Set:
		return t.Kuratowski().Equals(other)
	}
	return false
}

func (t *Tuple) Less(other Value) bool {
	return valueLess(t, other)
}

// Hash is the hash of the Kuratowski expansion, which keeps tuple/set
// equality consistent with hashing.
func (t *Tuple) Hash() hash.Hash {
	if t.h == nil {
		h := t.Kuratowski().Hash()
		t.h = &h
	}
	return *t.h
}

func (t *Tuple) Kind() Kind {
	return TupleKind
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.elems))
	for i, v := range t.elems {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
