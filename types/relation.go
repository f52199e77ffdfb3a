// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

import (
	"fmt"
)

// Relation is a binary relation: a set of pairs together with the domain
// and codomain it lives over. A Relation owns its sets: the constructor
// copies the domain and codomain, and accessors hand out copies, so a
// relation never aliases caller state.
//
// The five relation properties are expensive to decide and are cached on
// the instance after first computation. A relation is therefore treated as
// immutable once any property has been read; AddMapping, the only mutator,
// drops the cache.
type Relation struct {
	pairs    *Set
	domain   *Set
	codomain *Set

	props relationProps
}

// relationProps is the lazily-populated property cache. Each field is nil
// until first queried.
type relationProps struct {
	homogeneous   *bool
	reflexive     *bool
	symmetric     *bool
	antisymmetric *bool
	transitive    *bool
}

// NewRelation creates a relation over domain × codomain. Construction is
// best-effort: tuples that are not pairs, or whose coordinates fall outside
// the domain or codomain, are silently dropped rather than reported. Build
// pairs with NewPair when coordinates may themselves be tuples.
func NewRelation(domain, codomain *Set, pairs ...*Tuple) *Relation {
	r := &Relation{
		pairs:    NewSet(),
		domain:   domain.Copy(),
		codomain: codomain.Copy(),
	}
	for _, p := range pairs {
		if p == nil || p.Len() != 2 {
			continue
		}
		r.addValid(p.First(), p.Second())
	}
	return r
}

func (r *Relation) addValid(a, b Value) bool {
	if !r.domain.Contains(a) || !r.codomain.Contains(b) {
		return false
	}
	return r.pairs.Add(NewPair(a, b))
}

// AddMapping inserts the pair (a, b) after re-validating domain and
// codomain membership, reporting whether the relation changed. The property
// cache is invalidated.
func (r *Relation) AddMapping(a, b Value) bool {
	changed := r.addValid(a, b)
	if changed {
		r.props = relationProps{}
	}
	return changed
}

// Domain returns a copy of the domain.
func (r *Relation) Domain() *Set {
	return r.domain.Copy()
}

// Codomain returns a copy of the codomain.
func (r *Relation) Codomain() *Set {
	return r.codomain.Copy()
}

// Pairs returns a copy of the member pair set.
func (r *Relation) Pairs() *Set {
	return r.pairs.Copy()
}

// Len returns the number of member pairs.
func (r *Relation) Len() int {
	return r.pairs.Len()
}

// HasPair determines if (a, b) is a member pair.
func (r *Relation) HasPair(a, b Value) bool {
	return r.pairs.Contains(NewPair(a, b))
}

// Map returns {y : (x, y) ∈ R}.
func (r *Relation) Map(x Value) *Set {
	result := NewSet()
	r.pairs.Iter(func(v Value) (stop bool) {
		p := v.(*Tuple)
		if p.First().Equals(x) {
			result.Add(p.Second())
		}
		return
	})
	return result
}

// InverseMap returns {x : (x, y) ∈ R}.
func (r *Relation) InverseMap(y Value) *Set {
	result := NewSet()
	r.pairs.Iter(func(v Value) (stop bool) {
		p := v.(*Tuple)
		if p.Second().Equals(y) {
			result.Add(p.First())
		}
		return
	})
	return result
}

// ImageOf folds Map over the members of s with Union.
func (r *Relation) ImageOf(s *Set) *Set {
	result := NewSet()
	s.Iter(func(x Value) (stop bool) {
		result = result.Union(r.Map(x))
		return
	})
	return result
}

// PreImageOf folds InverseMap over the members of s with Union.
func (r *Relation) PreImageOf(s *Set) *Set {
	result := NewSet()
	s.Iter(func(y Value) (stop bool) {
		result = result.Union(r.InverseMap(y))
		return
	})
	return result
}

// Range returns the image of the domain.
func (r *Relation) Range() *Set {
	return r.ImageOf(r.domain)
}

// PreImage returns the pre-image of the codomain.
func (r *Relation) PreImage() *Set {
	return r.PreImageOf(r.codomain)
}

// IsHomogeneous determines if the domain and codomain are the same set.
func (r *Relation) IsHomogeneous() bool {
	if r.props.homogeneous == nil {
		h := r.domain.Equals(r.codomain)
		r.props.homogeneous = &h
	}
	return *r.props.homogeneous
}

// IsReflexive determines if (x, x) ∈ R for every domain member x.
// Heterogeneous relations are never reflexive.
func (r *Relation) IsReflexive() bool {
	if r.props.reflexive == nil {
		v := r.computeReflexive()
		r.props.reflexive = &v
	}
	return *r.props.reflexive
}

func (r *Relation) computeReflexive() bool {
	if !r.IsHomogeneous() {
		return false
	}
	ok := true
	r.domain.Iter(func(x Value) (stop bool) {
		if !r.HasPair(x, x) {
			ok = false
			return true
		}
		return
	})
	return ok
}

// IsSymmetric determines if (b, a) ∈ R whenever (a, b) ∈ R.
func (r *Relation) IsSymmetric() bool {
	if r.props.symmetric == nil {
		v := r.computeSymmetric()
		r.props.symmetric = &v
	}
	return *r.props.symmetric
}

func (r *Relation) computeSymmetric() bool {
	ok := true
	r.pairs.Iter(func(v Value) (stop bool) {
		p := v.(*Tuple)
		if !r.HasPair(p.Second(), p.First()) {
			ok = false
			return true
		}
		return
	})
	return ok
}

// IsAntiSymmetric determines if (a, b) ∈ R and (b, a) ∈ R imply a == b.
func (r *Relation) IsAntiSymmetric() bool {
	if r.props.antisymmetric == nil {
		v := r.computeAntiSymmetric()
		r.props.antisymmetric = &v
	}
	return *r.props.antisymmetric
}

func (r *Relation) computeAntiSymmetric() bool {
	ok := true
	r.pairs.Iter(func(v Value) (stop bool) {
		p := v.(*Tuple)
		if p.First().Equals(p.Second()) {
			return
		}
		if r.HasPair(p.Second(), p.First()) {
			ok = false
			return true
		}
		return
	})
	return ok
}

// IsTransitive determines if (a, b) ∈ R and (b, c) ∈ R imply (a, c) ∈ R,
// by brute-force pairwise scan. O(|R|²) member checks; for dense relations
// this dominates every closure computation built on it.
func (r *Relation) IsTransitive() bool {
	if r.props.transitive == nil {
		v := r.computeTransitive()
		r.props.transitive = &v
	}
	return *r.props.transitive
}

func (r *Relation) computeTransitive() bool {
	ok := true
	r.pairs.Iter(func(v1 Value) (stop bool) {
		p := v1.(*Tuple)
		r.pairs.Iter(func(v2 Value) (stop bool) {
			q := v2.(*Tuple)
			if p.Second().Equals(q.First()) && !r.HasPair(p.First(), q.Second()) {
				ok = false
				return true
			}
			return
		})
		return !ok
	})
	return ok
}

// IsEquivalence determines if R is homogeneous, reflexive, symmetric and
// transitive.
func (r *Relation) IsEquivalence() bool {
	return r.IsHomogeneous() && r.IsReflexive() && r.IsSymmetric() && r.IsTransitive()
}

// Compose returns s∘r = {(a, c) : ∃b, (a, b) ∈ r ∧ (b, c) ∈ s}, over
// r.Domain → s.Codomain.
func Compose(s, r *Relation) *Relation {
	result := NewRelation(r.domain, s.codomain)
	r.pairs.Iter(func(v1 Value) (stop bool) {
		p := v1.(*Tuple)
		s.pairs.Iter(func(v2 Value) (stop bool) {
			q := v2.(*Tuple)
			if p.Second().Equals(q.First()) {
				result.addValid(p.First(), q.Second())
			}
			return
		})
		return
	})
	return result
}

// Converse returns the relation with every pair swapped, over
// Codomain → Domain.
func (r *Relation) Converse() *Relation {
	result := NewRelation(r.codomain, r.domain)
	r.pairs.Iter(func(v Value) (stop bool) {
		p := v.(*Tuple)
		result.addValid(p.Second(), p.First())
		return
	})
	return result
}

// pairTuples converts a pair set back to constructor arguments.
func pairTuples(pairs *Set) []*Tuple {
	ts := make([]*Tuple, 0, pairs.Len())
	pairs.Iter(func(v Value) (stop bool) {
		ts = append(ts, v.(*Tuple))
		return
	})
	return ts
}

// diagonal returns {(a, a) : a ∈ s}.
func diagonal(s *Set) *Set {
	result := NewSet()
	s.Iter(func(a Value) (stop bool) {
		result.Add(NewPair(a, a))
		return
	})
	return result
}

// ReflexiveClosure returns the smallest reflexive relation containing R:
// R ∪ {(a, a) : a ∈ Domain}. Heterogeneous relations are returned
// unchanged; closures are only defined over a single set.
func (r *Relation) ReflexiveClosure() *Relation {
	if !r.IsHomogeneous() {
		return r
	}
	return NewRelation(r.domain, r.codomain, pairTuples(r.pairs.Union(diagonal(r.domain)))...)
}

// SymmetricClosure returns the smallest symmetric relation containing R:
// R ∪ converse(R). Heterogeneous relations are returned unchanged.
func (r *Relation) SymmetricClosure() *Relation {
	if !r.IsHomogeneous() {
		return r
	}
	return NewRelation(r.domain, r.codomain, pairTuples(r.pairs.Union(r.Converse().pairs))...)
}

// TransitiveClosure returns the smallest transitive relation containing R,
// by iterating r ← r ∪ r∘r to a fixed point. The universe Domain × Domain
// is finite so the union chain must stabilize; the worst case is O(|Domain|)
// rounds of an O(|R|²) composition. Heterogeneous relations are returned
// unchanged.
func (r *Relation) TransitiveClosure() *Relation {
	if !r.IsHomogeneous() {
		return r
	}
	cur := r
	for {
		grown := cur.pairs.Union(Compose(cur, cur).pairs)
		if grown.Equals(cur.pairs) {
			return cur
		}
		cur = NewRelation(r.domain, r.codomain, pairTuples(grown)...)
	}
}

// EquivalenceClosure returns the smallest equivalence relation containing
// R. The transitive closure must come last: adding reflexive or symmetric
// pairs afterwards could break transitivity, while the reflexive and
// symmetric steps cannot disturb each other. Heterogeneous relations are
// returned unchanged.
func (r *Relation) EquivalenceClosure() *Relation {
	if !r.IsHomogeneous() {
		return r
	}
	return r.ReflexiveClosure().SymmetricClosure().TransitiveClosure()
}

// EquivalenceClasses partitions the domain of an equivalence relation into
// its classes, returned as a set of sets. For a relation that is not an
// equivalence the empty set is returned as a sentinel, not an error.
//
// Distinct classes are pairwise disjoint, so each round computes one class
// and removes its members from the remaining pool: O(|Domain|) class
// computations rather than one per member.
func (r *Relation) EquivalenceClasses() *Set {
	result := NewSet()
	if !r.IsEquivalence() {
		return result
	}
	pool := r.domain.Copy()
	for !pool.IsEmpty() {
		m := pool.Any()
		class := r.Map(m)
		result.Add(class)
		class.Iter(func(v Value) (stop bool) {
			pool.Remove(v)
			return
		})
	}
	return result
}

// Equals determines if two relations have the same domain, codomain and
// member pairs.
func (r *Relation) Equals(other *Relation) bool {
	if other == nil {
		return false
	}
	return r.domain.Equals(other.domain) &&
		r.codomain.Equals(other.codomain) &&
		r.pairs.Equals(other.pairs)
}

func (r *Relation) String() string {
	return fmt.Sprintf("Domain: %s\nCodomain: %s\nMappings: %s", r.domain, r.codomain, r.pairs)
}
