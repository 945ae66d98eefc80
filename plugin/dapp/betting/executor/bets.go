// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	bt "github.com/33cn/betting/plugin/dapp/betting/types"
)

// insertBet 按 (Bettor, Amount) 有序插入，失败时 bets 不变
func insertBet(bets []*bt.Bet, bet *bt.Bet, capacity int) ([]*bt.Bet, int, error) {
	pos := sort.Search(len(bets), func(i int) bool {
		return bets[i].Compare(bet) >= 0
	})
	if pos < len(bets) && bets[pos].Compare(bet) == 0 {
		return bets, pos, bt.ErrAlreadyBet
	}
	if len(bets) >= capacity {
		return bets, pos, bt.ErrMaxBets
	}
	bets = append(bets, nil)
	copy(bets[pos+1:], bets[pos:])
	bets[pos] = bet
	return bets, pos, nil
}
