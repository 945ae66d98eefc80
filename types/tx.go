// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/betting/common"
	"github.com/33cn/betting/common/address"
	"github.com/33cn/betting/common/crypto"
	"github.com/33cn/betting/common/crypto/secp256k1"
)

// SECP256K1 默认的签名类型
const SECP256K1 = secp256k1.ID

// Signature 交易签名，Ty 为签名算法
type Signature struct {
	Ty        int32  `msgpack:"ty" json:"ty"`
	Pubkey    []byte `msgpack:"pubkey" json:"pubkey"`
	Signature []byte `msgpack:"signature" json:"signature"`
}

// Transaction 交易，发送者由签名的公钥决定
type Transaction struct {
	Execer    string     `msgpack:"execer" json:"execer"`
	Payload   []byte     `msgpack:"payload" json:"payload"`
	Signature *Signature `msgpack:"signature" json:"signature"`
	Nonce     int64      `msgpack:"nonce" json:"nonce"`
}

// Hash 交易哈希，不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

// Size 编码后的长度
func (tx *Transaction) Size() int {
	return len(Encode(tx))
}

// Sign 签名，签名的内容是去掉签名之后的交易编码
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign 校验签名，没有签名返回 false
func (tx *Transaction) CheckSign() bool {
	if tx.Signature == nil {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	return crypto.Verify(tx.Signature.Ty, data, tx.Signature.Pubkey, tx.Signature.Signature)
}

// From 发送者地址，没有签名时为空
func (tx *Transaction) From() string {
	if tx.Signature == nil || len(tx.Signature.Pubkey) == 0 {
		return ""
	}
	return address.PubKeyToAddress(tx.Signature.Pubkey).String()
}

// NewTx 构造未签名的交易，action 会被编码到 payload
func NewTx(execer string, action interface{}, nonce int64) *Transaction {
	return &Transaction{
		Execer:  execer,
		Payload: Encode(action),
		Nonce:   nonce,
	}
}
