// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/betting/rpc/jsonclient"
	rpctypes "github.com/33cn/betting/rpc/types"
	"github.com/spf13/cobra"
)

// ChainCmd chain command
func ChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Get chain status",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GetHeightCmd(),
		GetExecAddrCmd(),
	)

	return cmd
}

// GetHeightCmd 当前高度
func GetHeightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "height",
		Short: "Get current block height",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			var res rpctypes.Header
			ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetHeight", &rpctypes.ReqNil{}, &res)
			ctx.Run()
		},
	}
	return cmd
}

// GetExecAddrCmd 执行器地址
func GetExecAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Get address of an executor",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			name, _ := cmd.Flags().GetString("exec")
			var res string
			ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetExecAddr", &rpctypes.ReqName{Name: name}, &res)
			ctx.Run()
		},
	}
	cmd.Flags().StringP("exec", "e", "betting", "executor name")
	return cmd
}
