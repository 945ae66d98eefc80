// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePayoutsTruncation(t *testing.T) {
	bets := []*bt.Bet{
		{Bettor: "b", Amount: 10, Result: bt.Team1Victory},
		{Bettor: "c", Amount: 10, Result: bt.Team2Victory},
		{Bettor: "d", Amount: 30, Result: bt.Team1Victory},
	}
	s, err := computePayouts(bets, bt.Team1Victory)
	require.NoError(t, err)
	assert.Equal(t, int64(50), s.TotalBet)
	assert.Equal(t, int64(40), s.TotalWinners)
	require.Len(t, s.Payouts, 2)
	assert.Equal(t, &bt.Payout{Bettor: "b", Amount: 12}, s.Payouts[0])
	assert.Equal(t, &bt.Payout{Bettor: "d", Amount: 37}, s.Payouts[1])
	assert.Equal(t, int64(1), s.Residual)
}

func TestComputePayoutsConservation(t *testing.T) {
	cases := []struct {
		amounts []int64
		results []bt.MatchResult
	}{
		{[]int64{1, 1, 1}, []bt.MatchResult{bt.Draw, bt.Draw, bt.Team1Victory}},
		{[]int64{7, 13, 29, 3}, []bt.MatchResult{bt.Draw, bt.Team2Victory, bt.Draw, bt.Draw}},
		{[]int64{100}, []bt.MatchResult{bt.Draw}},
		{[]int64{1e17, 1e17, 3}, []bt.MatchResult{bt.Draw, bt.Team1Victory, bt.Draw}},
	}
	for i, c := range cases {
		var bets []*bt.Bet
		var total int64
		for j, a := range c.amounts {
			bets = append(bets, &bt.Bet{Bettor: string(rune('a' + j)), Amount: a, Result: c.results[j]})
			total += a
		}
		s, err := computePayouts(bets, bt.Draw)
		require.NoError(t, err, "case %d", i)
		var paid int64
		for _, p := range s.Payouts {
			paid += p.Amount
		}
		assert.Equal(t, total, s.TotalBet, "case %d", i)
		assert.True(t, paid <= total, "case %d", i)
		assert.Equal(t, total-paid, s.Residual, "case %d", i)
		assert.True(t, s.Residual < int64(len(c.amounts)), "case %d", i)
	}
}

func TestComputePayoutsNoWinners(t *testing.T) {
	bets := []*bt.Bet{{Bettor: "b", Amount: 10, Result: bt.Team1Victory}}
	_, err := computePayouts(bets, bt.Draw)
	assert.Equal(t, bt.ErrNoWinners, err)
	_, err = computePayouts([]*bt.Bet{
		{Bettor: "b", Amount: 10, Result: bt.Team1Victory},
		{Bettor: "c", Amount: 0, Result: bt.Draw},
	}, bt.Draw)
	assert.Equal(t, bt.ErrNoWinners, err)
}

func TestComputePayoutsEmptyPool(t *testing.T) {
	s, err := computePayouts(nil, bt.Draw)
	require.NoError(t, err)
	assert.Empty(t, s.Payouts)
	assert.Equal(t, int64(0), s.Residual)
	s, err = computePayouts([]*bt.Bet{{Bettor: "b", Amount: 0, Result: bt.Team1Victory}}, bt.Draw)
	require.NoError(t, err)
	assert.Empty(t, s.Payouts)
}

func TestComputePayoutsSkipZero(t *testing.T) {
	bets := []*bt.Bet{
		{Bettor: "b", Amount: 0, Result: bt.Draw},
		{Bettor: "c", Amount: 5, Result: bt.Draw},
	}
	s, err := computePayouts(bets, bt.Draw)
	require.NoError(t, err)
	require.Len(t, s.Payouts, 1)
	assert.Equal(t, "c", s.Payouts[0].Bettor)
	assert.Equal(t, int64(5), s.Payouts[0].Amount)
	assert.Equal(t, int64(0), s.Residual)
}
