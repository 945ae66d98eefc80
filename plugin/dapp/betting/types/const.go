// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// BettingX 执行器名
const BettingX = "betting"

//betting action ty
const (
	BettingActionCreate = iota + 1
	BettingActionBet
	BettingActionResult
	BettingActionDistribute
)

// log ty
const (
	TyLogMatchCreated        = 1001
	TyLogBetPlaced           = 1002
	TyLogMatchResult         = 1003
	TyLogWinningsDistributed = 1004
)

// match 的状态，settle 之后 match 被删除，所以没有对应的状态
const (
	MatchStatusOpen     = int32(1)
	MatchStatusResulted = int32(2)
)

// query func name
const (
	FuncNameGetMatch       = "GetMatch"
	FuncNameGetMatchByHash = "GetMatchByHash"
	FuncNameListMatches    = "ListMatches"
)

// 分页
const (
	ListDESC     = int32(0)
	ListASC      = int32(1)
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

// 子配置缺省值
const (
	DefaultMaxBetsPerMatch   = 64
	DefaultMaxTeamNameLength = 64
	DefaultMatchDeposit      = int64(0)
)

// ActionName action 的名称，cli 以及 rpc 使用
var ActionName = map[int32]string{
	BettingActionCreate:     "Create",
	BettingActionBet:        "Bet",
	BettingActionResult:     "Result",
	BettingActionDistribute: "Distribute",
}
