// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

import (
	"sort"
	"strings"

	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/hash"
)

// emptySetHash seeds the XOR fold of member hashes. Without a seed the
// empty set would hash to zero and {a} would collide with a itself.
var emptySetHash = hash.Of([]byte("set"))

// setData is the member storage, sorted by member hash. Members with equal
// hashes but different structure (possible, since a set's hash folds its
// members) stay adjacent in first-insert order.
type setData []Value

// Set is an unordered, deduplicated, mutable collection of values. A Set is
// itself a Value, so sets nest freely; equality and hashing are structural
// and independent of insertion order.
//
// Sets are not safe for concurrent mutation, and members must be treated as
// immutable once inserted: Add stores a defensive copy of Set members, but
// holding a member reference and mutating it afterwards breaks the
// container's invariants.
type Set struct {
	m setData
	h hash.Hash // running XOR fold over member hashes, always current
}

// NewSet creates a Set from the given members, deduplicating on insert.
func NewSet(v ...Value) *Set {
	s := &Set{m: setData{}, h: emptySetHash}
	for _, value := range v {
		s.Add(value)
	}
	return s
}

// Copy returns an independent Set with the same members. Mutating the copy
// never affects the original.
func (s *Set) Copy() *Set {
	m := make(setData, len(s.m))
	copy(m, s.m)
	return &Set{m, s.h}
}

// Len returns the cardinality of the set.
func (s *Set) Len() int {
	return len(s.m)
}

// IsEmpty determines if the set has no members.
func (s *Set) IsEmpty() bool {
	return len(s.m) == 0
}

// IsSingleton determines if the set has exactly one member.
func (s *Set) IsSingleton() bool {
	return len(s.m) == 1
}

// Contains determines if v is a member of the set.
func (s *Set) Contains(v Value) bool {
	if v == nil {
		return false
	}
	r := v.Hash()
	for idx := indexSetData(s.m, r); idx < len(s.m) && s.m[idx].Hash() == r; idx++ {
		if s.m[idx].Equals(v) {
			return true
		}
	}
	return false
}

// Add inserts v, reporting whether the set changed. Adding an existing
// member is a no-op. Set members are stored as independent copies.
func (s *Set) Add(v Value) bool {
	d.PanicIfTrue(v == nil)
	r := v.Hash()
	idx := indexSetData(s.m, r)
	for ; idx < len(s.m) && s.m[idx].Hash() == r; idx++ {
		if s.m[idx].Equals(v) {
			return false
		}
	}
	if sv, ok := v.(*Set); ok {
		v = sv.Copy()
	}
	s.m = append(s.m, nil)
	copy(s.m[idx+1:], s.m[idx:])
	s.m[idx] = v
	s.h = s.h.Xor(r)
	return true
}

// Remove deletes v, reporting whether the set changed. Removing an absent
// member is a no-op.
func (s *Set) Remove(v Value) bool {
	if v == nil {
		return false
	}
	r := v.Hash()
	for idx := indexSetData(s.m, r); idx < len(s.m) && s.m[idx].Hash() == r; idx++ {
		if s.m[idx].Equals(v) {
			s.m = append(s.m[:idx], s.m[idx+1:]...)
			s.h = s.h.Xor(r)
			return true
		}
	}
	return false
}

type setIterCallback func(v Value) (stop bool)

// Iter calls cb for every member until cb returns true. Iteration order is
// hash order, which is arbitrary but stable for a given membership.
func (s *Set) Iter(cb setIterCallback) {
	for _, v := range s.m {
		if cb(v) {
			break
		}
	}
}

// Any returns an arbitrary member, or nil if the set is empty.
func (s *Set) Any() Value {
	if len(s.m) == 0 {
		return nil
	}
	return s.m[0]
}

// Members returns a fresh slice of the members in iteration order.
func (s *Set) Members() []Value {
	m := make([]Value, len(s.m))
	copy(m, s.m)
	return m
}

// IsSubsetOf determines if every member of s is a member of other.
func (s *Set) IsSubsetOf(other *Set) bool {
	if len(s.m) > len(other.m) {
		return false
	}
	for _, v := range s.m {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// IsProperSubsetOf determines if s ⊂ other in the strict sense.
func (s *Set) IsProperSubsetOf(other *Set) bool {
	return len(s.m) < len(other.m) && s.IsSubsetOf(other)
}

// IsSupersetOf determines if every member of other is a member of s.
func (s *Set) IsSupersetOf(other *Set) bool {
	return other.IsSubsetOf(s)
}

// IsProperSupersetOf determines if s ⊃ other in the strict sense.
func (s *Set) IsProperSupersetOf(other *Set) bool {
	return other.IsProperSubsetOf(s)
}

// Union returns s ∪ other as a new Set. Neither operand is modified.
func (s *Set) Union(other *Set) *Set {
	result := s.Copy()
	other.Iter(func(v Value) (stop bool) {
		result.Add(v)
		return
	})
	return result
}

// Intersection returns s ∩ other as a new Set. Neither operand is modified.
func (s *Set) Intersection(other *Set) *Set {
	result := NewSet()
	s.Iter(func(v Value) (stop bool) {
		if other.Contains(v) {
			result.Add(v)
		}
		return
	})
	return result
}

// Exclusion returns s ∖ other as a new Set. Neither operand is modified.
func (s *Set) Exclusion(other *Set) *Set {
	result := s.Copy()
	other.Iter(func(v Value) (stop bool) {
		result.Remove(v)
		return
	})
	return result
}

// UnionN folds Union over the operands. Fewer than 2 operands is an
// ArityError.
func UnionN(sets ...*Set) (*Set, error) {
	if len(sets) < 2 {
		return nil, &d.ArityError{Op: "UnionN", Got: len(sets)}
	}
	result := sets[0]
	for _, s := range sets[1:] {
		result = result.Union(s)
	}
	return result, nil
}

// IntersectionN folds Intersection over the operands. Fewer than 2 operands
// is an ArityError.
func IntersectionN(sets ...*Set) (*Set, error) {
	if len(sets) < 2 {
		return nil, &d.ArityError{Op: "IntersectionN", Got: len(sets)}
	}
	result := sets[0]
	for _, s := range sets[1:] {
		result = result.Intersection(s)
	}
	return result, nil
}

// ExclusionN left-folds Exclusion over the operands. Fewer than 2 operands
// is an ArityError.
func ExclusionN(sets ...*Set) (*Set, error) {
	if len(sets) < 2 {
		return nil, &d.ArityError{Op: "ExclusionN", Got: len(sets)}
	}
	result := sets[0]
	for _, s := range sets[1:] {
		result = result.Exclusion(s)
	}
	return result, nil
}

// maxPowerSetLen bounds the subset counter below the width of its uint64.
const maxPowerSetLen = 62

// PowerSet enumerates all 2^n subsets of an n-member set by treating each
// member as one bit of an n-bit counter. The cost is exponential in the
// cardinality; that is inherent to the operation, not an implementation
// shortcut.
func (s *Set) PowerSet() *Set {
	d.Chk.True(len(s.m) <= maxPowerSetLen, "power set of %d members is not enumerable", len(s.m))
	result := NewSet()
	for bits := uint64(0); bits < uint64(1)<<uint(len(s.m)); bits++ {
		subset := NewSet()
		for i, v := range s.m {
			if bits&(uint64(1)<<uint(i)) != 0 {
				subset.Add(v)
			}
		}
		result.Add(subset)
	}
	return result
}

// CartesianProduct returns the set of pairs (a, b) for a ∈ s, b ∈ other.
// Pairs are strict 2-tuples; members that are themselves tuples are not
// spliced.
func (s *Set) CartesianProduct(other *Set) *Set {
	result := NewSet()
	s.Iter(func(a Value) (stop bool) {
		other.Iter(func(b Value) (stop bool) {
			result.Add(NewPair(a, b))
			return
		})
		return
	})
	return result
}

// CartesianProductN left-folds the product over the operands, splicing the
// accumulated tuples so A×B×C contains flat 3-tuples rather than nested
// pairs. Fewer than 2 operands is an ArityError.
func CartesianProductN(sets ...*Set) (*Set, error) {
	if len(sets) < 2 {
		return nil, &d.ArityError{Op: "CartesianProductN", Got: len(sets)}
	}
	result := sets[0]
	for _, s := range sets[1:] {
		next := NewSet()
		result.Iter(func(a Value) (stop bool) {
			s.Iter(func(b Value) (stop bool) {
				next.Add(NewTuple(a, b))
				return
			})
			return
		})
		result = next
	}
	return result, nil
}

// Value interface

func (s *Set) Equals(other Value) bool {
	switch other := other.(type) {
	case *Set:
		if len(s.m) != len(other.m) || s.h != other.h {
			return false
		}
		for _, v := range s.m {
			if !other.Contains(v) {
				return false
			}
		}
		return true
	case *Tuple:
		return other.Equals(s)
	}
	return false
}

func (s *Set) Less(other Value) bool {
	return valueLess(s, other)
}

func (s *Set) Hash() hash.Hash {
	return s.h
}

func (s *Set) Kind() Kind {
	return SetKind
}

func (s *Set) String() string {
	if s.IsEmpty() {
		return "Ø"
	}
	sorted := ValueSlice(s.Members())
	sort.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func indexSetData(m setData, r hash.Hash) int {
	return sort.Search(len(m), func(i int) bool {
		return !m[i].Hash().Less(r)
	})
}
