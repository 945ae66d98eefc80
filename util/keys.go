// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"github.com/33cn/betting/common"
	"github.com/33cn/betting/common/address"
	"github.com/33cn/betting/common/crypto"
	"github.com/33cn/betting/types"
	"github.com/pkg/errors"
)

func secp256k1() crypto.Crypto {
	c, err := crypto.New(crypto.GetName(types.SECP256K1))
	if err != nil {
		panic(err)
	}
	return c
}

// Genaddress 随机生成一个私钥以及对应的地址
func Genaddress() (string, crypto.PrivKey) {
	priv, err := secp256k1().GenKey()
	if err != nil {
		panic(err)
	}
	return PrivkeyToAddress(priv), priv
}

// HexToPrivkey 十六进制私钥，可以带 0x 前缀
func HexToPrivkey(key string) (crypto.PrivKey, error) {
	data, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrap(err, "privkey hex")
	}
	priv, err := secp256k1().PrivKeyFromBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "privkey")
	}
	return priv, nil
}

// PrivkeyToAddress 私钥对应的地址
func PrivkeyToAddress(priv crypto.PrivKey) string {
	return address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

// CreateSignedTx 签名交易，返回交易的十六进制编码
func CreateSignedTx(tx *types.Transaction, priv crypto.PrivKey) string {
	tx.Sign(types.SECP256K1, priv)
	return common.ToHex(types.Encode(tx))
}

// DecodeTx 十六进制编码的交易
func DecodeTx(data string) (*types.Transaction, error) {
	raw, err := common.FromHex(data)
	if err != nil || len(raw) == 0 {
		return nil, types.ErrInvalidParam
	}
	var tx types.Transaction
	if err := types.Decode(raw, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
