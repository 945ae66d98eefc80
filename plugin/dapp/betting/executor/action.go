// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/betting/account"
	dbm "github.com/33cn/betting/common/db"
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/33cn/betting/system/dapp"
	"github.com/33cn/betting/types"
	"github.com/pkg/errors"
)

/*
 match 的生命周期：
  1. create 之后处于 open 状态，高度小于 start 时可以下注
  2. 高度大于 start+length 之后管理员可以设置结果，进入 resulted 状态
  3. 创建者 distribute 之后按比例派奖，match 以及 hash 索引一起删除

 状态数据：
  mavl-betting-match-<creator> -> Match
  mavl-betting-hash-<hash>     -> creator
*/

// Action 一笔交易的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	height       int64
	execaddr     string
	api          dapp.API
	index        int
	cfg          *bt.Config
}

// NewAction new action
func NewAction(b *Betting, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: b.GetCoinsAccount(),
		db:           b.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		height:       b.GetHeight(),
		execaddr:     dapp.ExecAddress(tx.Execer),
		api:          b.GetAPI(),
		index:        index,
		cfg:          getConfig(),
	}
}

// CreateMatch 创建 match，每个地址同时只能有一个 match
func (action *Action) CreateMatch(create *bt.BettingCreate) (*types.Receipt, error) {
	_, err := readMatch(action.db, action.fromaddr)
	if err == nil {
		return nil, bt.ErrOriginHasAlreadyOpenMatch
	}
	if err != bt.ErrMatchDoesNotExist {
		return nil, err
	}
	if action.height >= create.Start+create.Length {
		blog.Debug("CreateMatch", "height", action.height, "start", create.Start, "length", create.Length)
		return nil, bt.ErrTimeMatchOver
	}
	if len(create.Team1) > action.cfg.MaxTeamNameLength || len(create.Team2) > action.cfg.MaxTeamNameLength {
		return nil, bt.ErrTeamNameTooLong
	}
	hash := MatchHash(create.Team1, create.Team2, create.Start, create.Length)
	_, err = action.db.Get(hashKey(hash))
	if err == nil {
		return nil, bt.ErrMatchAlreadyExists
	}
	if err != types.ErrNotFound {
		return nil, err
	}

	receipt := &types.Receipt{Ty: types.ExecOk}
	if action.cfg.MatchDeposit > 0 {
		r, err := action.coinsAccount.Reserve(action.fromaddr, action.cfg.MatchDeposit)
		if err != nil {
			blog.Error("CreateMatch.Reserve", "addr", action.fromaddr, "amount", action.cfg.MatchDeposit, "err", err)
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	match := &bt.Match{
		Creator: action.fromaddr,
		Start:   create.Start,
		Length:  create.Length,
		Team1:   create.Team1,
		Team2:   create.Team2,
		Deposit: action.cfg.MatchDeposit,
		Hash:    hash,
	}
	receipt.KV = append(receipt.KV, action.registerHash(hash, match.Creator))
	receipt.KV = append(receipt.KV, action.saveMatch(match))
	receipt.Logs = append(receipt.Logs, &types.ReceiptLog{
		Ty: bt.TyLogMatchCreated,
		Log: types.Encode(&bt.ReceiptMatchCreated{
			Creator: match.Creator,
			Team1:   match.Team1,
			Team2:   match.Team2,
			Start:   match.Start,
			Length:  match.Length,
			Hash:    hash,
		}),
	})
	blog.Info("match created", "creator", match.Creator, "team1", string(match.Team1), "team2", string(match.Team2),
		"start", match.Start, "length", match.Length)
	return receipt, nil
}

// PlaceBet 下注，下注的金额转入执行器地址
func (action *Action) PlaceBet(bet *bt.BettingBet) (*types.Receipt, error) {
	match, err := readMatch(action.db, bet.MatchID)
	if err != nil {
		return nil, err
	}
	if action.height >= match.Start {
		return nil, bt.ErrMatchHasStarted
	}
	b := &bt.Bet{Bettor: action.fromaddr, Amount: bet.Amount, Result: bet.Result}
	match.Bets, _, err = insertBet(match.Bets, b, action.cfg.MaxBetsPerMatch)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.KV = append(receipt.KV, action.saveMatch(match))
	r, err := action.coinsAccount.Transfer(action.fromaddr, action.execaddr, bet.Amount)
	if err != nil {
		blog.Debug("PlaceBet.Transfer", "addr", action.fromaddr, "amount", bet.Amount, "err", err)
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	receipt.Logs = append(receipt.Logs, &types.ReceiptLog{
		Ty: bt.TyLogBetPlaced,
		Log: types.Encode(&bt.ReceiptBetPlaced{
			MatchID: bet.MatchID,
			Bettor:  action.fromaddr,
			Amount:  bet.Amount,
			Result:  bet.Result,
		}),
	})
	return receipt, nil
}

// SetResult 设置比赛结果，只有管理员可以操作，重复设置会覆盖之前的结果
func (action *Action) SetResult(result *bt.BettingResult) (*types.Receipt, error) {
	if action.api == nil || !action.api.IsSuperManager(action.fromaddr) {
		return nil, types.ErrNoPrivilege
	}
	match, err := readMatch(action.db, result.MatchID)
	if err != nil {
		return nil, err
	}
	if action.height <= match.End() {
		return nil, bt.ErrTimeMatchNotOver
	}
	r := result.Result
	match.Result = &r
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.KV = append(receipt.KV, action.saveMatch(match))
	receipt.Logs = append(receipt.Logs, &types.ReceiptLog{
		Ty:  bt.TyLogMatchResult,
		Log: types.Encode(&bt.ReceiptMatchResult{MatchID: result.MatchID, Result: r}),
	})
	blog.Info("match result", "match", result.MatchID, "result", r)
	return receipt, nil
}

// DistributeWinnings 结算自己的 match
// match 先被删除再检查结果，检查失败时整个交易回滚，match 保留
// 派奖中途失败时已经完成的派奖以及删除都会保留，收据类型为 ExecPack
func (action *Action) DistributeWinnings() (*types.Receipt, error) {
	match, err := readMatch(action.db, action.fromaddr)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.KV = append(receipt.KV, action.removeMatch(match)...)
	if match.Result == nil {
		return nil, bt.ErrMatchNotResult
	}
	s, err := computePayouts(match.Bets, *match.Result)
	if err != nil {
		blog.Error("DistributeWinnings", "match", match.Creator, "err", err)
		return nil, err
	}
	if match.Deposit > 0 {
		r, err := action.coinsAccount.Unreserve(match.Creator, match.Deposit)
		if err != nil {
			blog.Error("DistributeWinnings.Unreserve", "addr", match.Creator, "amount", match.Deposit, "err", err)
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}

	dist := &bt.ReceiptWinningsDistributed{
		MatchID:      match.Creator,
		Result:       *match.Result,
		TotalBet:     s.TotalBet,
		TotalWinners: s.TotalWinners,
		Hash:         match.Hash,
	}
	for _, p := range s.Payouts {
		r, err := action.coinsAccount.Transfer(action.execaddr, p.Bettor, p.Amount)
		if err != nil {
			blog.Error("DistributeWinnings.Transfer", "to", p.Bettor, "amount", p.Amount, "paid", dist.Paid, "err", err)
			dist.Residual = s.TotalBet - dist.Paid
			receipt.Ty = types.ExecPack
			receipt.Logs = append(receipt.Logs, distributedLog(dist))
			return receipt, errors.Wrapf(err, "payout %d to %s", p.Amount, p.Bettor)
		}
		receipt = types.MergeReceipt(receipt, r)
		dist.Paid += p.Amount
		dist.Payouts = append(dist.Payouts, p)
	}
	dist.Residual = s.Residual
	receipt.Logs = append(receipt.Logs, distributedLog(dist))
	blog.Info("winnings distributed", "match", match.Creator, "totalBet", s.TotalBet, "paid", dist.Paid, "residual", dist.Residual)
	return receipt, nil
}

func distributedLog(dist *bt.ReceiptWinningsDistributed) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: bt.TyLogWinningsDistributed, Log: types.Encode(dist)}
}

func (action *Action) registerHash(hash []byte, creator string) *types.KeyValue {
	kv := &types.KeyValue{Key: hashKey(hash), Value: []byte(creator)}
	action.set(kv)
	return kv
}

func (action *Action) saveMatch(match *bt.Match) *types.KeyValue {
	kv := &types.KeyValue{Key: matchKey(match.Creator), Value: types.Encode(match)}
	action.set(kv)
	return kv
}

// match 和 hash 索引一起删除
func (action *Action) removeMatch(match *bt.Match) []*types.KeyValue {
	kvs := []*types.KeyValue{
		{Key: matchKey(match.Creator), Value: nil},
		{Key: hashKey(match.Hash), Value: nil},
	}
	for _, kv := range kvs {
		action.set(kv)
	}
	return kvs
}

func (action *Action) set(kv *types.KeyValue) {
	if err := action.db.Set(kv.Key, kv.Value); err != nil {
		panic(err)
	}
}

func readMatch(db dbm.KV, matchID string) (*bt.Match, error) {
	data, err := db.Get(matchKey(matchID))
	if err == types.ErrNotFound {
		return nil, bt.ErrMatchDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	var match bt.Match
	if err := types.Decode(data, &match); err != nil {
		blog.Error("decode match", "match", matchID, "err", err)
		return nil, err
	}
	return &match, nil
}
