// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types betting 执行器的数据结构
package types

import (
	"strings"

	"github.com/33cn/betting/types"
)

// MatchResult 比赛结果
type MatchResult int32

// 比赛结果只有三种，0 是非法值
const (
	Team1Victory MatchResult = iota + 1
	Team2Victory
	Draw
)

var resultNames = map[MatchResult]string{
	Team1Victory: "team1",
	Team2Victory: "team2",
	Draw:         "draw",
}

// Valid 是否为合法的结果
func (r MatchResult) Valid() bool {
	_, ok := resultNames[r]
	return ok
}

func (r MatchResult) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseMatchResult 支持 team1/team2/draw 以及 1/2/3
func ParseMatchResult(s string) (MatchResult, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "team1", "1":
		return Team1Victory, nil
	case "team2", "2":
		return Team2Victory, nil
	case "draw", "3":
		return Draw, nil
	}
	return 0, ErrInvalidResult
}

// Bet 一次下注，同一个 match 中 (Bettor, Amount) 唯一
type Bet struct {
	Bettor string      `msgpack:"bettor" json:"bettor"`
	Amount int64       `msgpack:"amount" json:"amount"`
	Result MatchResult `msgpack:"result" json:"result"`
}

// Compare 按 (Bettor, Amount) 比较，不比较 Result
func (b *Bet) Compare(o *Bet) int {
	if c := strings.Compare(b.Bettor, o.Bettor); c != 0 {
		return c
	}
	switch {
	case b.Amount < o.Amount:
		return -1
	case b.Amount > o.Amount:
		return 1
	}
	return 0
}

// Match 比赛，以创建者的地址作为 id
type Match struct {
	Creator string       `msgpack:"creator" json:"creator"`
	Start   int64        `msgpack:"start" json:"start"`
	Length  int64        `msgpack:"length" json:"length"`
	Team1   []byte       `msgpack:"team1" json:"team1"`
	Team2   []byte       `msgpack:"team2" json:"team2"`
	Result  *MatchResult `msgpack:"result" json:"result,omitempty"`
	Bets    []*Bet       `msgpack:"bets" json:"bets"`
	Deposit int64        `msgpack:"deposit" json:"deposit"`
	Hash    []byte       `msgpack:"hash" json:"hash"`
}

// End 比赛结束的高度
func (m *Match) End() int64 {
	return m.Start + m.Length
}

// Status 没有结果时为 open
func (m *Match) Status() int32 {
	if m.Result == nil {
		return MatchStatusOpen
	}
	return MatchStatusResulted
}

// BettingAction 交易的 payload，Ty 决定哪个字段有效
type BettingAction struct {
	Ty         int32              `msgpack:"ty" json:"ty"`
	Create     *BettingCreate     `msgpack:"create,omitempty" json:"create,omitempty"`
	Bet        *BettingBet        `msgpack:"bet,omitempty" json:"bet,omitempty"`
	Result     *BettingResult     `msgpack:"result,omitempty" json:"result,omitempty"`
	Distribute *BettingDistribute `msgpack:"distribute,omitempty" json:"distribute,omitempty"`
}

// BettingCreate create_match_to_bet
type BettingCreate struct {
	Team1  []byte `msgpack:"team1" json:"team1"`
	Team2  []byte `msgpack:"team2" json:"team2"`
	Start  int64  `msgpack:"start" json:"start"`
	Length int64  `msgpack:"length" json:"length"`
}

// BettingBet bet，MatchID 是 match 创建者的地址
type BettingBet struct {
	MatchID string      `msgpack:"matchID" json:"matchID"`
	Amount  int64       `msgpack:"amount" json:"amount"`
	Result  MatchResult `msgpack:"result" json:"result"`
}

// BettingResult set_result
type BettingResult struct {
	MatchID string      `msgpack:"matchID" json:"matchID"`
	Result  MatchResult `msgpack:"result" json:"result"`
}

// BettingDistribute distribute_winnings，只能结算自己的 match
type BettingDistribute struct{}

// ReceiptMatchCreated LogMatchCreated
type ReceiptMatchCreated struct {
	Creator string `msgpack:"creator" json:"creator"`
	Team1   []byte `msgpack:"team1" json:"team1"`
	Team2   []byte `msgpack:"team2" json:"team2"`
	Start   int64  `msgpack:"start" json:"start"`
	Length  int64  `msgpack:"length" json:"length"`
	Hash    []byte `msgpack:"hash" json:"hash"`
}

// ReceiptBetPlaced LogBetPlaced
type ReceiptBetPlaced struct {
	MatchID string      `msgpack:"matchID" json:"matchID"`
	Bettor  string      `msgpack:"bettor" json:"bettor"`
	Amount  int64       `msgpack:"amount" json:"amount"`
	Result  MatchResult `msgpack:"result" json:"result"`
}

// ReceiptMatchResult LogMatchResult
type ReceiptMatchResult struct {
	MatchID string      `msgpack:"matchID" json:"matchID"`
	Result  MatchResult `msgpack:"result" json:"result"`
}

// Payout 一笔派奖
type Payout struct {
	Bettor string `msgpack:"bettor" json:"bettor"`
	Amount int64  `msgpack:"amount" json:"amount"`
}

// ReceiptWinningsDistributed LogWinningsDistributed，Residual 是留在奖池中的零头
type ReceiptWinningsDistributed struct {
	MatchID      string      `msgpack:"matchID" json:"matchID"`
	Result       MatchResult `msgpack:"result" json:"result"`
	TotalBet     int64       `msgpack:"totalBet" json:"totalBet"`
	TotalWinners int64       `msgpack:"totalWinners" json:"totalWinners"`
	Paid         int64       `msgpack:"paid" json:"paid"`
	Residual     int64       `msgpack:"residual" json:"residual"`
	Payouts      []*Payout   `msgpack:"payouts" json:"payouts"`
	Hash         []byte      `msgpack:"hash" json:"hash"`
}

// ReqMatch 按创建者查询
type ReqMatch struct {
	MatchID string `msgpack:"matchID" json:"matchID"`
}

// ReqMatchHash 按 hash 查询，hash 为 hex 字符串
type ReqMatchHash struct {
	Hash string `msgpack:"hash" json:"hash"`
}

// ReqMatchList 按状态分页查询，MatchID 为上一页最后一个 match，为空时从头开始
type ReqMatchList struct {
	Status    int32  `msgpack:"status" json:"status"`
	MatchID   string `msgpack:"matchID" json:"matchID"`
	Count     int32  `msgpack:"count" json:"count"`
	Direction int32  `msgpack:"direction" json:"direction"`
}

// ReplyMatchList 分页查询结果
type ReplyMatchList struct {
	Matches []*Match `msgpack:"matches" json:"matches"`
}

// Config [exec.sub.betting]
type Config struct {
	MaxBetsPerMatch   int   `json:"maxBetsPerMatch"`
	MaxTeamNameLength int   `json:"maxTeamNameLength"`
	MatchDeposit      int64 `json:"matchDeposit"`
}

// DefaultConfig 缺省配置
func DefaultConfig() *Config {
	return &Config{
		MaxBetsPerMatch:   DefaultMaxBetsPerMatch,
		MaxTeamNameLength: DefaultMaxTeamNameLength,
		MatchDeposit:      DefaultMatchDeposit,
	}
}

func init() {
	types.RegisterLog(BettingX, map[int32]*types.LogInfo{
		TyLogMatchCreated:        {Name: "LogMatchCreated", New: func() interface{} { return &ReceiptMatchCreated{} }},
		TyLogBetPlaced:           {Name: "LogBetPlaced", New: func() interface{} { return &ReceiptBetPlaced{} }},
		TyLogMatchResult:         {Name: "LogMatchResult", New: func() interface{} { return &ReceiptMatchResult{} }},
		TyLogWinningsDistributed: {Name: "LogWinningsDistributed", New: func() interface{} { return &ReceiptWinningsDistributed{} }},
	})
}
