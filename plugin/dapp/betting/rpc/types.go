// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/33cn/betting/common"
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
)

// CreateMatchTx 创建 match，签名者的地址即 match id
type CreateMatchTx struct {
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Start  int64  `json:"start"`
	Length int64  `json:"length"`
}

// PlaceBetTx 下注，Result 为 team1/team2/draw
type PlaceBetTx struct {
	MatchID string `json:"matchID"`
	Amount  int64  `json:"amount"`
	Result  string `json:"result"`
}

// SetResultTx 设置结果，签名者必须是管理员
type SetResultTx struct {
	MatchID string `json:"matchID"`
	Result  string `json:"result"`
}

// DistributeTx 结算签名者创建的 match
type DistributeTx struct{}

// ReqMatchList 按状态分页，Status 为 open 或 resulted
type ReqMatchList struct {
	Status    string `json:"status"`
	MatchID   string `json:"matchID"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
}

// BetInfo 下注
type BetInfo struct {
	Bettor string `json:"bettor"`
	Amount int64  `json:"amount"`
	Result string `json:"result"`
}

// MatchInfo match 的可读格式
type MatchInfo struct {
	MatchID  string     `json:"matchID"`
	Team1    string     `json:"team1"`
	Team2    string     `json:"team2"`
	Start    int64      `json:"start"`
	Length   int64      `json:"length"`
	End      int64      `json:"end"`
	Status   string     `json:"status"`
	Result   string     `json:"result,omitempty"`
	Bets     []*BetInfo `json:"bets"`
	TotalBet int64      `json:"totalBet"`
	Deposit  int64      `json:"deposit"`
	Hash     string     `json:"hash"`
}

// MatchList 分页结果
type MatchList struct {
	Matches []*MatchInfo `json:"matches"`
}

var statusNames = map[int32]string{
	bt.MatchStatusOpen:     "open",
	bt.MatchStatusResulted: "resulted",
}

func parseStatus(s string) (int32, bool) {
	for k, v := range statusNames {
		if v == s {
			return k, true
		}
	}
	return 0, false
}

func convertMatch(m *bt.Match) *MatchInfo {
	info := &MatchInfo{
		MatchID: m.Creator,
		Team1:   string(m.Team1),
		Team2:   string(m.Team2),
		Start:   m.Start,
		Length:  m.Length,
		End:     m.End(),
		Status:  statusNames[m.Status()],
		Deposit: m.Deposit,
		Hash:    common.ToHex(m.Hash),
		Bets:    make([]*BetInfo, 0, len(m.Bets)),
	}
	if m.Result != nil {
		info.Result = m.Result.String()
	}
	for _, b := range m.Bets {
		info.Bets = append(info.Bets, &BetInfo{Bettor: b.Bettor, Amount: b.Amount, Result: b.Result.String()})
		info.TotalBet += b.Amount
	}
	return info
}
