// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package types

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/muratcankilic96/topos/d"
	"github.com/muratcankilic96/topos/hash"
)

// getHash digests the canonical byte encoding of a primitive value. Sets
// and tuples do not pass through here: a set folds its member hashes and a
// tuple adopts the hash of its Kuratowski expansion.
func getHash(v Value) hash.Hash {
	return hash.Of(encodeForHash(v))
}

func encodeForHash(v Value) []byte {
	switch v := v.(type) {
	case Integer:
		buff := make([]byte, 1+binary.MaxVarintLen64)
		buff[0] = byte(IntegerKind)
		n := binary.PutVarint(buff[1:], int64(v))
		return buff[:1+n]
	case Rational:
		buff := make([]byte, 1+2*binary.MaxVarintLen64)
		buff[0] = byte(RationalKind)
		n := binary.PutVarint(buff[1:], v.num)
		n += binary.PutVarint(buff[1+n:], v.den)
		return buff[:1+n]
	case Real:
		buff := make([]byte, 1+8)
		buff[0] = byte(RealKind)
		binary.BigEndian.PutUint64(buff[1:], math.Float64bits(float64(v)))
		return buff
	case *Exponential:
		buff := make([]byte, 1, 1+2*hash.ByteLen)
		buff[0] = byte(ExponentialKind)
		buff = append(buff, v.base.Hash().DigestSlice()...)
		buff = append(buff, v.index.Hash().DigestSlice()...)
		return buff
	}
	d.Chk.Fail(fmt.Sprintf("unencodable value kind %s", v.Kind()))
	return nil
}
