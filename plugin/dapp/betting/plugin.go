// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package betting 点对点竞猜插件
package betting

import (
	"github.com/33cn/betting/plugin/dapp/betting/commands"
	"github.com/33cn/betting/plugin/dapp/betting/executor"
	"github.com/33cn/betting/plugin/dapp/betting/rpc"
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/33cn/betting/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     bt.BettingX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.BettingCmd,
		RPC:      rpc.Init,
	})
}
