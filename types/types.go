// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 基础数据结构，配置以及编码
package types

// Message 可编码的消息
type Message interface{}

// Account 账户
type Account struct {
	Currency int32  `msgpack:"currency" json:"currency"`
	Balance  int64  `msgpack:"balance" json:"balance"`
	Frozen   int64  `msgpack:"frozen" json:"frozen"`
	Addr     string `msgpack:"addr" json:"addr"`
}

// Total 可用余额加冻结余额
func (acc *Account) Total() int64 {
	return acc.Balance + acc.Frozen
}

// KeyValue 状态数据
type KeyValue struct {
	Key   []byte `msgpack:"key" json:"key"`
	Value []byte `msgpack:"value" json:"value"`
}

// ReceiptLog 收据中的日志
type ReceiptLog struct {
	Ty  int32  `msgpack:"ty" json:"ty"`
	Log []byte `msgpack:"log" json:"log"`
}

// Receipt 交易执行的收据，KV 为需要写入状态数据库的数据
type Receipt struct {
	Ty   int32         `msgpack:"ty" json:"ty"`
	KV   []*KeyValue   `msgpack:"kv" json:"kv"`
	Logs []*ReceiptLog `msgpack:"logs" json:"logs"`
}

// ReceiptAccountTransfer 账户变动前后的状态
type ReceiptAccountTransfer struct {
	Prev    *Account `msgpack:"prev" json:"prev"`
	Current *Account `msgpack:"current" json:"current"`
}

// LocalDBSet 本地索引数据
type LocalDBSet struct {
	KV []*KeyValue `msgpack:"kv" json:"kv"`
}

// ReqAddr 地址查询
type ReqAddr struct {
	Addr string `msgpack:"addr" json:"addr"`
}

// Int64 int64 包装
type Int64 struct {
	Data int64 `msgpack:"data" json:"data"`
}

// ReqNil 空请求
type ReqNil struct{}

// MergeReceipt 合并两个收据，receipt2 追加在 receipt1 之后
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 != nil {
		receipt1.KV = append(receipt1.KV, receipt2.KV...)
		receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	}
	return receipt1
}
