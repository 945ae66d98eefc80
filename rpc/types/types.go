// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "encoding/json"

// ReceiptLogResult 解码后的日志
type ReceiptLogResult struct {
	Ty     int32           `json:"ty"`
	TyName string          `json:"tyName"`
	Log    json.RawMessage `json:"log"`
	RawLog string          `json:"rawLog"`
}

// ReceiptDataResult 解码后的收据
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyName"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

// ReplyTxResult 交易执行结果
type ReplyTxResult struct {
	Hash    string             `json:"hash"`
	Height  int64              `json:"height"`
	Receipt *ReceiptDataResult `json:"receipt"`
	Error   string             `json:"error,omitempty"`
}

// ReqAddr 地址参数
type ReqAddr struct {
	Addr string `json:"addr"`
}

// ReqName 名字参数
type ReqName struct {
	Name string `json:"name"`
}

// RawParm 十六进制编码的已签名交易
type RawParm struct {
	Data string `json:"data"`
}

// ReqNil 空参数
type ReqNil struct{}

// Account 账户，金额同时给出可读格式
type Account struct {
	Addr      string `json:"addr"`
	Balance   int64  `json:"balance"`
	Frozen    int64  `json:"frozen"`
	BalanceFm string `json:"balanceFmt"`
	FrozenFm  string `json:"frozenFmt"`
}

// Header 当前高度
type Header struct {
	Height int64 `json:"height"`
}
