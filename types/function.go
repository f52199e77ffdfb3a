// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

// Function is a relation constrained to be single-valued: at most one pair
// per domain element. The constructor enforces the constraint by keeping
// only the first pair seen for a repeated first coordinate, in keeping with
// the best-effort construction policy of NewRelation.
type Function struct {
	*Relation

	injective  *bool
	surjective *bool
}

// NewFunction creates a function over domain × codomain from the given
// pairs. Invalid pairs are dropped exactly as in NewRelation; additionally,
// any pair whose first coordinate is already mapped is ignored.
func NewFunction(domain, codomain *Set, pairs ...*Tuple) *Function {
	f := &Function{Relation: NewRelation(domain, codomain)}
	for _, p := range pairs {
		if p == nil || p.Len() != 2 {
			continue
		}
		f.AddMapping(p.First(), p.Second())
	}
	return f
}

// AddMapping inserts (a, b) if a is unmapped and the pair is valid,
// reporting whether the function changed. The cached injective/surjective
// flags are invalidated on change.
func (f *Function) AddMapping(a, b Value) bool {
	if !f.Map(a).IsEmpty() {
		return false
	}
	changed := f.Relation.AddMapping(a, b)
	if changed {
		f.injective = nil
		f.surjective = nil
	}
	return changed
}

// Value returns f(x) and true when x is mapped, nil and false otherwise.
func (f *Function) Value(x Value) (Value, bool) {
	image := f.Map(x)
	if image.IsEmpty() {
		return nil, false
	}
	return image.Any(), true
}

// IsInjective determines if no two domain elements map to the same
// codomain element. Computed once and cached.
func (f *Function) IsInjective() bool {
	if f.injective == nil {
		v := f.computeInjective()
		f.injective = &v
	}
	return *f.injective
}

func (f *Function) computeInjective() bool {
	ok := true
	f.Codomain().Iter(func(y Value) (stop bool) {
		if f.InverseMap(y).Len() > 1 {
			ok = false
			return true
		}
		return
	})
	return ok
}

// IsSurjective determines if the range covers the whole codomain. Computed
// once and cached.
func (f *Function) IsSurjective() bool {
	if f.surjective == nil {
		v := f.Range().Equals(f.Relation.codomain)
		f.surjective = &v
	}
	return *f.surjective
}

// IsBijective determines if the function is both injective and surjective.
func (f *Function) IsBijective() bool {
	return f.IsInjective() && f.IsSurjective()
}
