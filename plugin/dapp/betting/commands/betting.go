// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands betting 命令行
package commands

import (
	"github.com/33cn/betting/plugin/dapp/betting/rpc"
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/33cn/betting/rpc/jsonclient"
	"github.com/33cn/betting/system/dapp/commands"
	"github.com/spf13/cobra"
)

// BettingCmd betting 命令
func BettingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "betting",
		Short: "Peer to peer betting management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		CreateMatchCmd(),
		PlaceBetCmd(),
		SetResultCmd(),
		DistributeCmd(),
		GetMatchCmd(),
		GetMatchByHashCmd(),
		ListMatchesCmd(),
	)

	return cmd
}

// CreateMatchCmd 创建 match
func CreateMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a match to bet on, the signer address is the match id",
		Run:   createMatch,
	}
	addCreateMatchFlags(cmd)
	return cmd
}

func addCreateMatchFlags(cmd *cobra.Command) {
	commands.AddKeyFlag(cmd)
	cmd.Flags().String("team1", "", "name of team 1")
	cmd.MarkFlagRequired("team1")
	cmd.Flags().String("team2", "", "name of team 2")
	cmd.MarkFlagRequired("team2")
	cmd.Flags().Int64P("start", "s", 0, "start height, bets are accepted before it")
	cmd.MarkFlagRequired("start")
	cmd.Flags().Int64P("length", "l", 0, "match length in blocks")
	cmd.MarkFlagRequired("length")
}

func createMatch(cmd *cobra.Command, args []string) {
	team1, _ := cmd.Flags().GetString("team1")
	team2, _ := cmd.Flags().GetString("team2")
	start, _ := cmd.Flags().GetInt64("start")
	length, _ := cmd.Flags().GetInt64("length")

	params := &rpc.CreateMatchTx{
		Team1:  team1,
		Team2:  team2,
		Start:  start,
		Length: length,
	}
	commands.SendSignedTx(cmd, bt.BettingX+".CreateRawMatchTx", params)
}

// PlaceBetCmd 下注
func PlaceBetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Bet on the result of an open match",
		Run:   placeBet,
	}
	addPlaceBetFlags(cmd)
	return cmd
}

func addPlaceBetFlags(cmd *cobra.Command) {
	commands.AddKeyFlag(cmd)
	cmd.Flags().StringP("match", "m", "", "match id (creator address)")
	cmd.MarkFlagRequired("match")
	cmd.Flags().Int64P("amount", "a", 0, "bet amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("result", "r", "", "team1/team2/draw")
	cmd.MarkFlagRequired("result")
}

func placeBet(cmd *cobra.Command, args []string) {
	matchID, _ := cmd.Flags().GetString("match")
	amount, _ := cmd.Flags().GetInt64("amount")
	result, _ := cmd.Flags().GetString("result")

	params := &rpc.PlaceBetTx{
		MatchID: matchID,
		Amount:  amount,
		Result:  result,
	}
	commands.SendSignedTx(cmd, bt.BettingX+".CreateRawBetTx", params)
}

// SetResultCmd 管理员设置结果
func SetResultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result",
		Short: "Record the result of a finished match (super manager only)",
		Run:   setResult,
	}
	addSetResultFlags(cmd)
	return cmd
}

func addSetResultFlags(cmd *cobra.Command) {
	commands.AddKeyFlag(cmd)
	cmd.Flags().StringP("match", "m", "", "match id (creator address)")
	cmd.MarkFlagRequired("match")
	cmd.Flags().StringP("result", "r", "", "team1/team2/draw")
	cmd.MarkFlagRequired("result")
}

func setResult(cmd *cobra.Command, args []string) {
	matchID, _ := cmd.Flags().GetString("match")
	result, _ := cmd.Flags().GetString("result")

	params := &rpc.SetResultTx{
		MatchID: matchID,
		Result:  result,
	}
	commands.SendSignedTx(cmd, bt.BettingX+".CreateRawResultTx", params)
}

// DistributeCmd 结算
func DistributeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Pay out the winnings of the signer's resulted match",
		Run:   distribute,
	}
	commands.AddKeyFlag(cmd)
	return cmd
}

func distribute(cmd *cobra.Command, args []string) {
	commands.SendSignedTx(cmd, bt.BettingX+".CreateRawDistributeTx", &rpc.DistributeTx{})
}

// GetMatchCmd 查询 match
func GetMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a match by id",
		Run:   getMatch,
	}
	cmd.Flags().StringP("match", "m", "", "match id (creator address)")
	cmd.MarkFlagRequired("match")
	return cmd
}

func getMatch(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	matchID, _ := cmd.Flags().GetString("match")

	var res rpc.MatchInfo
	ctx := jsonclient.NewRPCCtx(rpcLaddr, bt.BettingX+".GetMatch", &bt.ReqMatch{MatchID: matchID}, &res)
	ctx.Run()
}

// GetMatchByHashCmd 按 hash 查询 match
func GetMatchByHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gethash",
		Short: "Show a match by its hash",
		Run:   getMatchByHash,
	}
	cmd.Flags().StringP("hash", "x", "", "match hash in hex")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func getMatchByHash(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	hash, _ := cmd.Flags().GetString("hash")

	var res rpc.MatchInfo
	ctx := jsonclient.NewRPCCtx(rpcLaddr, bt.BettingX+".GetMatchByHash", &bt.ReqMatchHash{Hash: hash}, &res)
	ctx.Run()
}

// ListMatchesCmd 分页查询
func ListMatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matches by status",
		Run:   listMatches,
	}
	addListMatchesFlags(cmd)
	return cmd
}

func addListMatchesFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("status", "s", "open", "open/resulted")
	cmd.Flags().StringP("match", "m", "", "start after this match id")
	cmd.Flags().Int32P("count", "c", bt.DefaultCount, "page size")
	cmd.Flags().Int32P("direction", "d", bt.ListDESC, "0: desc, 1: asc")
}

func listMatches(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	status, _ := cmd.Flags().GetString("status")
	matchID, _ := cmd.Flags().GetString("match")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")

	params := &rpc.ReqMatchList{
		Status:    status,
		MatchID:   matchID,
		Count:     count,
		Direction: direction,
	}
	var res rpc.MatchList
	ctx := jsonclient.NewRPCCtx(rpcLaddr, bt.BettingX+".ListMatches", params, &res)
	ctx.Run()
}
