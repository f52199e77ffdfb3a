// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package d

import (
	"fmt"

	"github.com/pkg/errors"
)

// wrappedError is the panic payload used by Exp and Panic so that Try can
// distinguish our own recoverable panics from runtime faults, which are
// re-panicked.
type wrappedError struct {
	msg   string
	cause error
}

func (we wrappedError) Error() string {
	return we.msg
}

func (we wrappedError) Cause() error {
	return we.cause
}

// Panic creates an error using the format and args given, wraps it and
// panics with it. The panic can be caught by Try.
func Panic(format string, args ...interface{}) {
	err := errors.Errorf(format, args...)
	panic(wrappedError{err.Error(), err})
}

// PanicIfError panics if the err given is not nil.
func PanicIfError(err error) {
	if err != nil {
		panic(wrappedError{err.Error(), err})
	}
}

// PanicIfTrue panics if the bool given is true.
func PanicIfTrue(b bool) {
	if b {
		panic(wrappedError{"Expected false", nil})
	}
}

// PanicIfFalse panics if the bool given is false.
func PanicIfFalse(b bool) {
	if !b {
		panic(wrappedError{"Expected true", nil})
	}
}

// Try runs the function given, recovering any panic raised through Panic,
// PanicIfError or Exp and returning it as an error. Panics with any other
// payload are not recovered.
func Try(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			we, ok := r.(wrappedError)
			if !ok {
				panic(r)
			}
			err = Unwrap(we)
		}
	}()
	f()
	return
}

// Unwrap returns the underlying error of a recovered wrapped error, or the
// error itself when there is nothing to unwrap.
func Unwrap(err error) error {
	if we, ok := err.(wrappedError); ok {
		if we.cause != nil {
			return we.cause
		}
		return fmt.Errorf(we.msg)
	}
	return err
}
