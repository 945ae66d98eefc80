// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc betting 的 json rpc 接口，服务名为执行器名
package rpc

import (
	"github.com/33cn/betting/common"
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	rpctypes "github.com/33cn/betting/rpc/types"
	"github.com/33cn/betting/types"
)

type channelClient struct {
	rpctypes.ChannelClient
}

// Jrpc json rpc 服务
type Jrpc struct {
	cli *channelClient
}

// Init 由 pluginmgr 调用
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	cli.Init(name, s, &Jrpc{cli: cli})
}

// 交易由客户端签名后通过 Chain.SendTransaction 发送
func rawTx(tx *types.Transaction) string {
	return common.ToHex(types.Encode(tx))
}

func (c *channelClient) createMatch(head *bt.BettingCreate) string {
	return rawTx(bt.CreateRawCreateTx(head, rpctypes.Nonce()))
}

func (c *channelClient) placeBet(head *bt.BettingBet) string {
	return rawTx(bt.CreateRawBetTx(head, rpctypes.Nonce()))
}

func (c *channelClient) setResult(head *bt.BettingResult) string {
	return rawTx(bt.CreateRawResultTx(head, rpctypes.Nonce()))
}

func (c *channelClient) distribute() string {
	return rawTx(bt.CreateRawDistributeTx(rpctypes.Nonce()))
}

func (c *channelClient) getMatch(req *bt.ReqMatch) (*bt.Match, error) {
	return c.queryMatch(bt.FuncNameGetMatch, req)
}

func (c *channelClient) getMatchByHash(req *bt.ReqMatchHash) (*bt.Match, error) {
	return c.queryMatch(bt.FuncNameGetMatchByHash, req)
}

func (c *channelClient) queryMatch(funcName string, req types.Message) (*bt.Match, error) {
	reply, err := c.Query(bt.BettingX, funcName, req)
	if err != nil {
		return nil, err
	}
	match, ok := reply.(*bt.Match)
	if !ok {
		return nil, types.ErrDecode
	}
	return match, nil
}

func (c *channelClient) listMatches(req *bt.ReqMatchList) (*bt.ReplyMatchList, error) {
	reply, err := c.Query(bt.BettingX, bt.FuncNameListMatches, req)
	if err != nil {
		return nil, err
	}
	list, ok := reply.(*bt.ReplyMatchList)
	if !ok {
		return nil, types.ErrDecode
	}
	return list, nil
}
