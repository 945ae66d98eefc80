// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统命令行
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/33cn/betting/common"
	"github.com/33cn/betting/common/address"
	"github.com/33cn/betting/rpc/jsonclient"
	rpctypes "github.com/33cn/betting/rpc/types"
	"github.com/33cn/betting/util"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GetBalanceCmd(),
		GenKeyCmd(),
		KeyAddrCmd(),
	)
	return cmd
}

// GetBalanceCmd 查询地址余额，-e 查询执行器托管的资金，比如奖池
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of an account address or an executor",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account addr")
	cmd.Flags().StringP("exec", "e", "", "executor name, query the executor address instead")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	execer, _ := cmd.Flags().GetString("exec")
	if execer != "" {
		addr = address.ExecAddress(execer)
	}
	if addr == "" {
		fmt.Fprintln(os.Stderr, "one of --addr and --exec is required")
		return
	}
	var res rpctypes.Account
	jsonclient.NewRPCCtx(rpcLaddr, "Chain.GetAccount", &rpctypes.ReqAddr{Addr: addr}, &res).Run()
}

// GenKeyCmd 本地生成私钥
func GenKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genkey",
		Short: "Generate a private key and its address locally",
		Run: func(cmd *cobra.Command, args []string) {
			addr, priv := util.Genaddress()
			printKey(os.Stdout, addr, priv.Bytes(), priv.PubKey().Bytes())
		},
	}
}

// KeyAddrCmd 私钥对应的地址
func KeyAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyaddr",
		Short: "Show the address of a private key",
		Run: func(cmd *cobra.Command, args []string) {
			key, _ := cmd.Flags().GetString("key")
			priv, err := util.HexToPrivkey(key)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			printKey(os.Stdout, util.PrivkeyToAddress(priv), priv.Bytes(), priv.PubKey().Bytes())
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
	return cmd
}

func printKey(out io.Writer, addr string, priv, pub []byte) {
	fmt.Fprintln(out, "privkey:", common.ToHex(priv))
	fmt.Fprintln(out, "pubkey: ", common.ToHex(pub))
	fmt.Fprintln(out, "addr:   ", addr)
}
