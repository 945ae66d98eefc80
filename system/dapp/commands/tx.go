// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/33cn/betting/rpc/jsonclient"
	rpctypes "github.com/33cn/betting/rpc/types"
	"github.com/33cn/betting/util"
	"github.com/spf13/cobra"
)

// AddKeyFlag 交易命令都需要私钥签名
func AddKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key in hex, the signer is the sender")
	cmd.MarkFlagRequired("key")
}

// SendSignedTx 调用 createMethod 生成交易，用 --key 签名后发送
func SendSignedTx(cmd *cobra.Command, createMethod string, params interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	key, _ := cmd.Flags().GetString("key")
	signAndSend(rpcLaddr, key, createMethod, params, os.Stdout, os.Stderr)
}

func signAndSend(rpcLaddr, key, createMethod string, params interface{}, out, errOut io.Writer) {
	priv, err := util.HexToPrivkey(key)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return
	}
	client, err := jsonclient.NewJSONClient(rpcLaddr)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return
	}
	var raw string
	if err := client.Call(createMethod, params, &raw); err != nil {
		fmt.Fprintln(errOut, err)
		return
	}
	tx, err := util.DecodeTx(raw)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return
	}
	var res rpctypes.ReplyTxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain.SendTransaction", &rpctypes.RawParm{Data: util.CreateSignedTx(tx, priv)}, &res)
	ctx.RunTo(out, errOut)
}
