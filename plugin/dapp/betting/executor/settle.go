// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/shopspring/decimal"
)

// settlement 结算结果，所有金额都是整数，Residual 是截断后留在奖池中的零头
type settlement struct {
	TotalBet     int64
	TotalWinners int64
	Payouts      []*bt.Payout
	Residual     int64
}

// computePayouts 每个猜中的下注获得 floor(amount * totalBet / totalWinners)
// 中间结果用 decimal 计算，不会溢出也不会丢失精度
func computePayouts(bets []*bt.Bet, result bt.MatchResult) (*settlement, error) {
	totalBet := decimal.Zero
	totalWinners := decimal.Zero
	var winners []*bt.Bet
	for _, bet := range bets {
		amount := decimal.NewFromInt(bet.Amount)
		totalBet = totalBet.Add(amount)
		if bet.Result == result {
			totalWinners = totalWinners.Add(amount)
			winners = append(winners, bet)
		}
	}
	s := &settlement{
		TotalBet:     totalBet.IntPart(),
		TotalWinners: totalWinners.IntPart(),
	}
	// 奖池为空时没有需要分配的资金
	if totalBet.IsZero() {
		return s, nil
	}
	if totalWinners.IsZero() {
		return nil, bt.ErrNoWinners
	}
	paid := decimal.Zero
	for _, bet := range winners {
		won, _ := decimal.NewFromInt(bet.Amount).Mul(totalBet).QuoRem(totalWinners, 0)
		if won.IsZero() {
			continue
		}
		paid = paid.Add(won)
		s.Payouts = append(s.Payouts, &bt.Payout{Bettor: bet.Bettor, Amount: won.IntPart()})
	}
	s.Residual = totalBet.Sub(paid).IntPart()
	return s, nil
}
