// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	clog "github.com/33cn/betting/common/log"
	"github.com/33cn/betting/pluginmgr"
	"github.com/33cn/betting/system/dapp/commands"
	"github.com/33cn/betting/types"
	"github.com/spf13/cobra"
)

// NewRootCmd 命令行根命令，包含系统命令以及所有插件的命令
func NewRootCmd(rpcAddr string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "betting-cli",
		Short: "betting client tools",
	}
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.ChainCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Get client version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(types.Version)
			},
		},
	)
	pluginmgr.AddCmd(rootCmd)
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr, "http url")
	return rootCmd
}

//Run :
func Run(rpcAddr string) {
	clog.SetLogLevel("error")
	if err := NewRootCmd(rpcAddr).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
