// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17
)

// 系统执行器名
const (
	ExecerCoins = "coins"
	CoinSymbol  = "bty"
)

// key 前缀，状态数据以 mavl- 开头，本地索引以 LODB- 开头
const (
	StatePrefix = "mavl-"
	LocalPrefix = "LODB-"
)

// 系统日志类型
const (
	TyLogReserved = 0
	TyLogErr      = 1

	TyLogTransfer   = 3
	TyLogGenesis    = 4
	TyLogExecFrozen = 9
	TyLogExecActive = 10
)

// 交易执行结果
// ExecPack 表示交易执行失败，但已经执行的部分写操作需要保留
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// ExecTypeName 执行结果对应的名称
var ExecTypeName = map[int32]string{
	ExecErr:  "ExecErr",
	ExecPack: "ExecPack",
	ExecOk:   "ExecOk",
}

// Version 节点版本，编译时可以通过 -ldflags 覆盖
var Version = "1.0.0"
