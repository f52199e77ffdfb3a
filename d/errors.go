// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package d

import (
	"fmt"

	"github.com/pkg/errors"
)

// The error kinds below cover every fail-fast condition in the engine.
// They are raised synchronously at the point of violation and never
// recovered internally; sentinel returns (0, the empty set) are reserved
// for conditions that are mathematically well-defined non-errors.

// ArityError reports an n-ary combinator invoked with fewer than 2 operands.
type ArityError struct {
	Op  string
	Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: requires at least 2 operands, got %d", e.Op, e.Got)
}

// DomainError reports an input outside an operation's mathematically valid
// domain, e.g. a negative sieve bound or an even-base Legendre symbol.
type DomainError struct {
	Op     string
	Input  int64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %d is outside the valid domain: %s", e.Op, e.Input, e.Reason)
}

// DivisionByZero reports a zero denominator or divisor enumeration of zero.
type DivisionByZero struct {
	Op string
}

func (e *DivisionByZero) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Op)
}

// UnsupportedValueError reports a value of a kind an operation cannot
// consume, e.g. a non-numeric exponential base.
type UnsupportedValueError struct {
	Op    string
	Value fmt.Stringer
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("%s: unsupported value %s", e.Op, e.Value)
}

// IsArityError determines if err is an ArityError, unwrapping as needed.
func IsArityError(err error) bool {
	_, ok := errors.Cause(err).(*ArityError)
	return ok
}

// IsDomainError determines if err is a DomainError, unwrapping as needed.
func IsDomainError(err error) bool {
	_, ok := errors.Cause(err).(*DomainError)
	return ok
}

// IsDivisionByZero determines if err is a DivisionByZero, unwrapping as needed.
func IsDivisionByZero(err error) bool {
	_, ok := errors.Cause(err).(*DivisionByZero)
	return ok
}

// IsUnsupportedValueError determines if err is an UnsupportedValueError,
// unwrapping as needed.
func IsUnsupportedValueError(err error) bool {
	_, ok := errors.Cause(err).(*UnsupportedValueError)
	return ok
}
