// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package hash provides the structural hash used for value identity.
//
// Every math value hashes to a fixed-width digest with the property that
// structurally equal values always produce equal digests. Sets fold their
// member digests with Xor, which makes a set's hash independent of member
// order and internal representation.
package hash

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/codahale/blake2"

	"github.com/muratcankilic96/topos/d"
)

const (
	// ByteLen is the number of bytes used to represent a Hash.
	ByteLen = 20

	// StringLen is the number of characters used to represent a Hash as a string.
	StringLen = 32 // 20 * 8 / base32 log2(32)
)

var pattern = regexp.MustCompile("^([0-9a-v]{" + fmt.Sprintf("%d", StringLen) + "})$")

// Hash is the digest of a value's canonical byte encoding.
type Hash [ByteLen]byte

// IsEmpty determines if this Hash is equal to the empty hash (all zeroes).
func (h Hash) IsEmpty() bool {
	return h == Hash{}
}

// DigestSlice returns the hash as a byte slice.
func (h Hash) DigestSlice() []byte {
	return h[:]
}

// String returns a string representation of the hash using the stock base32 alphabet.
func (h Hash) String() string {
	return encode(h[:])
}

// Equal compares two hashes for byte equality.
func (h Hash) Equal(other Hash) bool {
	return h == other
}

// Less determines if this Hash is less than another, lexicographically.
func (h Hash) Less(other Hash) bool {
	return bytes.Compare(h[:], other[:]) < 0
}

// Xor returns the byte-wise exclusive or of two hashes. It is the fold
// primitive for order-independent set hashing: commutative, associative,
// and self-inverse, so inserting then removing a member restores the
// original fold.
func (h Hash) Xor(other Hash) Hash {
	r := Hash{}
	for i := 0; i < ByteLen; i++ {
		r[i] = h[i] ^ other[i]
	}
	return r
}

// New creates a new Hash backed by data, which must be ByteLen long.
func New(data []byte) Hash {
	d.PanicIfFalse(len(data) == ByteLen)
	h := Hash{}
	copy(h[:], data)
	return h
}

// Of returns the Hash of the byte encoding data.
func Of(data []byte) Hash {
	b2 := blake2.NewBlake2B()
	b2.Write(data)
	return New(b2.Sum(nil)[:ByteLen])
}

// Parse parses a string representing a hash as a base32 encoded byte array.
// If the string is not well formed then this panics.
func Parse(s string) Hash {
	h, ok := MaybeParse(s)
	if !ok {
		panic(fmt.Errorf("cound not parse Hash: %s", s))
	}
	return h
}

// MaybeParse parses a string representing a hash as a base32 encoded byte
// array and returns (h, true) on success.
func MaybeParse(s string) (Hash, bool) {
	match := pattern.FindStringSubmatch(s)
	if match == nil {
		return Hash{}, false
	}
	return New(decode(s)), true
}
