// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/33cn/betting/types"
)

// CreateRawMatchTx create_match_to_bet，返回未签名的交易
func (c *Jrpc) CreateRawMatchTx(parm *CreateMatchTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &bt.BettingCreate{
		Team1:  []byte(parm.Team1),
		Team2:  []byte(parm.Team2),
		Start:  parm.Start,
		Length: parm.Length,
	}
	*result = c.cli.createMatch(head)
	return nil
}

// CreateRawBetTx bet
func (c *Jrpc) CreateRawBetTx(parm *PlaceBetTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	r, err := bt.ParseMatchResult(parm.Result)
	if err != nil {
		return err
	}
	head := &bt.BettingBet{
		MatchID: parm.MatchID,
		Amount:  parm.Amount,
		Result:  r,
	}
	*result = c.cli.placeBet(head)
	return nil
}

// CreateRawResultTx set_result
func (c *Jrpc) CreateRawResultTx(parm *SetResultTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	r, err := bt.ParseMatchResult(parm.Result)
	if err != nil {
		return err
	}
	*result = c.cli.setResult(&bt.BettingResult{MatchID: parm.MatchID, Result: r})
	return nil
}

// CreateRawDistributeTx distribute_winnings
func (c *Jrpc) CreateRawDistributeTx(parm *DistributeTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	*result = c.cli.distribute()
	return nil
}

// GetMatch 按 match id 查询
func (c *Jrpc) GetMatch(parm *bt.ReqMatch, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	match, err := c.cli.getMatch(parm)
	if err != nil {
		return err
	}
	*result = convertMatch(match)
	return nil
}

// GetMatchByHash 按 match hash 查询
func (c *Jrpc) GetMatchByHash(parm *bt.ReqMatchHash, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	match, err := c.cli.getMatchByHash(parm)
	if err != nil {
		return err
	}
	*result = convertMatch(match)
	return nil
}

// ListMatches 按状态分页查询
func (c *Jrpc) ListMatches(parm *ReqMatchList, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	status, ok := parseStatus(parm.Status)
	if !ok {
		return types.ErrInvalidParam
	}
	list, err := c.cli.listMatches(&bt.ReqMatchList{
		Status:    status,
		MatchID:   parm.MatchID,
		Count:     parm.Count,
		Direction: parm.Direction,
	})
	if err != nil {
		return err
	}
	reply := &MatchList{Matches: make([]*MatchInfo, 0, len(list.Matches))}
	for _, m := range list.Matches {
		reply.Matches = append(reply.Matches, convertMatch(m))
	}
	*result = reply
	return nil
}
