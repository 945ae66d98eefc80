// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rpc 服务以及插件共用的接口和数据结构
package types

import (
	"math/rand"
	"net/rpc"
	"time"

	"github.com/33cn/betting/common"
	"github.com/33cn/betting/types"
)

// API 节点对 rpc 提供的接口
type API interface {
	CheckTx(tx *types.Transaction) error
	Exec(tx *types.Transaction) (*types.Receipt, error)
	Query(driver string, funcName string, param types.Message) (types.Message, error)
	GetAccount(addr string) (*types.Account, error)
	Height() int64
}

// RPCServer 插件注册 rpc 时使用
type RPCServer interface {
	JRPC() *rpc.Server
	API() API
}

// ChannelClient 插件 rpc 的公共部分
type ChannelClient struct {
	API
}

// Init 注册 jrpc 服务，name 为服务名
func (c *ChannelClient) Init(name string, s RPCServer, jrpc interface{}) {
	if c.API == nil {
		c.API = s.API()
	}
	if jrpc != nil {
		err := s.JRPC().RegisterName(name, jrpc)
		if err != nil {
			panic(err)
		}
	}
}

// SendTx 执行交易并返回可读的收据
// 部分提交(ExecPack)时不返回错误，错误信息放在 Error 中
func (c *ChannelClient) SendTx(tx *types.Transaction) (*ReplyTxResult, error) {
	receipt, err := c.Exec(tx)
	if receipt == nil {
		return nil, err
	}
	reply := &ReplyTxResult{
		Hash:    common.ToHex(tx.Hash()),
		Height:  c.Height(),
		Receipt: DecodeReceipt(tx.Execer, receipt),
	}
	if err != nil {
		reply.Error = err.Error()
	}
	return reply, nil
}

// Nonce 随机 nonce，保证相同内容的交易 hash 不同
func Nonce() int64 {
	return rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
}
