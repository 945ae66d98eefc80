// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/betting/types"
)

// 以下交易都没有签名，发送者由签名的私钥决定

// CreateRawCreateTx 构造创建 match 的交易
func CreateRawCreateTx(param *BettingCreate, nonce int64) *types.Transaction {
	action := &BettingAction{Ty: BettingActionCreate, Create: param}
	return types.NewTx(BettingX, action, nonce)
}

// CreateRawBetTx 构造下注交易
func CreateRawBetTx(param *BettingBet, nonce int64) *types.Transaction {
	action := &BettingAction{Ty: BettingActionBet, Bet: param}
	return types.NewTx(BettingX, action, nonce)
}

// CreateRawResultTx 构造设置结果的交易，必须由管理员签名
func CreateRawResultTx(param *BettingResult, nonce int64) *types.Transaction {
	action := &BettingAction{Ty: BettingActionResult, Result: param}
	return types.NewTx(BettingX, action, nonce)
}

// CreateRawDistributeTx 构造结算交易，结算签名者自己的 match
func CreateRawDistributeTx(nonce int64) *types.Transaction {
	action := &BettingAction{Ty: BettingActionDistribute, Distribute: &BettingDistribute{}}
	return types.NewTx(BettingX, action, nonce)
}
