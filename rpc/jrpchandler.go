// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	rpctypes "github.com/33cn/betting/rpc/types"
	"github.com/33cn/betting/system/dapp"
	"github.com/33cn/betting/types"
	"github.com/33cn/betting/util"
)

// Chain 系统 rpc 接口
type Chain struct {
	cli rpctypes.ChannelClient
}

// GetAccount 查询 coins 账户
func (c *Chain) GetAccount(in *rpctypes.ReqAddr, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	acc, err := c.cli.GetAccount(in.Addr)
	if err != nil {
		return err
	}
	*result = rpctypes.ConvertAccount(acc)
	return nil
}

// GetHeight 当前高度
func (c *Chain) GetHeight(in *rpctypes.ReqNil, result *interface{}) error {
	*result = &rpctypes.Header{Height: c.cli.Height()}
	return nil
}

// GetExecAddr 执行器地址，奖池等资金保存在执行器地址中
func (c *Chain) GetExecAddr(in *rpctypes.ReqName, result *interface{}) error {
	if in == nil || in.Name == "" {
		return types.ErrInvalidParam
	}
	*result = dapp.ExecAddress(in.Name)
	return nil
}

// SendTransaction 发送已签名的交易，交易由 CreateRaw 系列接口生成
func (c *Chain) SendTransaction(in *rpctypes.RawParm, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	tx, err := util.DecodeTx(in.Data)
	if err != nil {
		return err
	}
	reply, err := c.cli.SendTx(tx)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}
