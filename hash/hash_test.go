// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfIsDeterministic(t *testing.T) {
	assert := assert.New(t)
	h1 := Of([]byte("abc"))
	h2 := Of([]byte("abc"))
	assert.True(h1.Equal(h2))
	assert.False(h1.Equal(Of([]byte("abd"))))
	assert.False(h1.IsEmpty())
}

func TestStringRoundTrip(t *testing.T) {
	assert := assert.New(t)
	h := Of([]byte("topos"))
	s := h.String()
	assert.Len(s, StringLen)
	assert.Equal(h, Parse(s))
}

func TestMaybeParse(t *testing.T) {
	assert := assert.New(t)
	_, ok := MaybeParse("not a hash")
	assert.False(ok)
	h, ok := MaybeParse(Of([]byte("x")).String())
	assert.True(ok)
	assert.Equal(Of([]byte("x")), h)
}

func TestXor(t *testing.T) {
	assert := assert.New(t)
	a := Of([]byte("a"))
	b := Of([]byte("b"))
	assert.True(a.Xor(a).IsEmpty())
	assert.Equal(a.Xor(b), b.Xor(a))
	// Self-inverse: folding a member in and out restores the original.
	assert.Equal(a, a.Xor(b).Xor(b))
}

func TestLess(t *testing.T) {
	assert := assert.New(t)
	a := Of([]byte("a"))
	b := Of([]byte("b"))
	assert.False(a.Less(a))
	assert.True(a.Less(b) != b.Less(a))
}
