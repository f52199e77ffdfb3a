// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

// Kind tags the variant of a Value. The order of the constants defines the
// cross-kind sort order used by Value.Less: Integer < Rational < Real <
// Exponential < Tuple < Set.
type Kind uint8

const (
	IntegerKind Kind = iota
	RationalKind
	RealKind
	ExponentialKind
	TupleKind
	SetKind
)

var kindToString = map[Kind]string{
	IntegerKind:     "Integer",
	RationalKind:    "Rational",
	RealKind:        "Real",
	ExponentialKind: "Exponential",
	TupleKind:       "Tuple",
	SetKind:         "Set",
}

func (k Kind) String() string {
	return kindToString[k]
}

// IsNumericKind determines if values of kind k support numeric projection.
func IsNumericKind(k Kind) bool {
	return k <= RealKind
}
