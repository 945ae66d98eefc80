// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/betting/common"
	"github.com/33cn/betting/types"
	"github.com/shopspring/decimal"
)

// DecodeReceipt 按执行器注册的日志类型解码收据
func DecodeReceipt(execer string, receipt *types.Receipt) *ReceiptDataResult {
	rTy, ok := types.ExecTypeName[receipt.Ty]
	if !ok {
		rTy = "Unknown"
	}
	rd := &ReceiptDataResult{Ty: receipt.Ty, TyName: rTy}
	for _, l := range receipt.Logs {
		lTy, v, err := types.DecodeLog(execer, l.Ty, l.Log)
		var logIns json.RawMessage
		if err == nil {
			logIns, _ = json.Marshal(v)
		} else {
			lTy = "unkownType"
		}
		rd.Logs = append(rd.Logs, &ReceiptLogResult{Ty: l.Ty, TyName: lTy, Log: logIns, RawLog: common.ToHex(l.Log)})
	}
	return rd
}

// FormatAmount 按 Coin 精度格式化金额
func FormatAmount(amount int64) string {
	return decimal.New(amount, 0).Div(decimal.New(types.Coin, 0)).StringFixed(4)
}

// ConvertAccount 转换为 json 输出格式
func ConvertAccount(acc *types.Account) *Account {
	return &Account{
		Addr:      acc.Addr,
		Balance:   acc.Balance,
		Frozen:    acc.Frozen,
		BalanceFm: FormatAmount(acc.Balance),
		FrozenFm:  FormatAmount(acc.Frozen),
	}
}
