// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))

	b, err := FromHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	b, err = FromHex("102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	_, err = FromHex("0xzz")
	assert.Error(t, err)
	assert.True(t, HasHexPrefix("0x01"))
	assert.True(t, HasHexPrefix("0X01"))
	assert.False(t, HasHexPrefix("01"))
	assert.False(t, HasHexPrefix("0"))

	b, err = FromHex("0X0102FF")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	src := []byte("abc")
	dst := CopyBytes(src)
	src[0] = 'x'
	assert.Equal(t, []byte("abc"), dst)
}

func TestHashes(t *testing.T) {
	assert.Len(t, Sha256([]byte("a")), 32)
	assert.Len(t, Blake2b256([]byte("a")), 32)
	assert.Equal(t, Blake2b256([]byte("a")), Blake2b256([]byte("a")))
	assert.NotEqual(t, Blake2b256([]byte("a")), Blake2b256([]byte("b")))
	d := Sha2Sum([]byte("a"))
	assert.Equal(t, Sha256(Sha256([]byte("a"))), d[:])
	r := Rimp160AfterSha256([]byte("a"))
	assert.NotEqual(t, [20]byte{}, r)
}
