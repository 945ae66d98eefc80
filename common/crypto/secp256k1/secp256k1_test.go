// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secp256k1

import (
	"testing"

	"github.com/33cn/betting/common"
	"github.com/33cn/betting/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	c, err := crypto.New(Name)
	require.NoError(t, err)
	assert.Equal(t, ID, crypto.GetType(Name))
	assert.Equal(t, Name, crypto.GetName(ID))

	priv, err := c.GenKey()
	require.NoError(t, err)
	pub := priv.PubKey()
	assert.Len(t, pub.Bytes(), 33)

	msg := []byte("place bet")
	sig := priv.Sign(msg)
	assert.False(t, sig.IsZero())
	assert.True(t, pub.VerifyBytes(msg, sig))
	assert.False(t, pub.VerifyBytes([]byte("place bet!"), sig))
	assert.True(t, crypto.Verify(ID, msg, pub.Bytes(), sig.Bytes()))
	assert.False(t, crypto.Verify(ID+100, msg, pub.Bytes(), sig.Bytes()))
	assert.False(t, crypto.Verify(ID, msg, pub.Bytes(), nil))

	other, err := c.GenKey()
	require.NoError(t, err)
	assert.False(t, other.PubKey().VerifyBytes(msg, sig))
	assert.False(t, priv.Equals(other))

	// 篡改签名
	bad := sig.Bytes()
	bad[len(bad)-1] ^= 0xff
	assert.False(t, crypto.Verify(ID, msg, pub.Bytes(), bad))
}

func TestKeyFromBytes(t *testing.T) {
	c, err := crypto.New(Name)
	require.NoError(t, err)
	seed := common.Sha256([]byte("alice"))
	p1, err := c.PrivKeyFromBytes(seed)
	require.NoError(t, err)
	p2, err := c.PrivKeyFromBytes(seed)
	require.NoError(t, err)
	assert.True(t, p1.Equals(p2))
	assert.True(t, p1.PubKey().Equals(p2.PubKey()))
	assert.Equal(t, seed, p1.Bytes())

	_, err = c.PrivKeyFromBytes(seed[:31])
	assert.Error(t, err)
	_, err = c.PrivKeyFromBytes(make([]byte, 32))
	assert.Error(t, err)
	_, err = c.PubKeyFromBytes(seed)
	assert.Error(t, err)
	pub, err := c.PubKeyFromBytes(p1.PubKey().Bytes())
	require.NoError(t, err)
	assert.True(t, pub.Equals(p1.PubKey()))
}
