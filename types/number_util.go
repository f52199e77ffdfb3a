// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

// gcdInt64 returns the non-negative greatest common divisor of a and b.
func gcdInt64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Int64Of projects an exact integer out of v. Only Integer values project;
// all other kinds, including integral Reals, report false. Coercion in this
// codebase is always explicit.
func Int64Of(v Value) (int64, bool) {
	if i, ok := v.(Integer); ok {
		return int64(i), true
	}
	return 0, false
}

// Float64Of projects a numeric value onto float64. Integer, Rational and
// Real project; other kinds report false.
func Float64Of(v Value) (float64, bool) {
	switch v := v.(type) {
	case Integer:
		return float64(v), true
	case Rational:
		return float64(v.num) / float64(v.den), true
	case Real:
		return float64(v), true
	}
	return 0, false
}
