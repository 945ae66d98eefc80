// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor betting 执行器：创建比赛、下注、设置结果以及按比例派奖
package executor

import (
	"math"
	"sync"

	"github.com/33cn/betting/account"
	"github.com/33cn/betting/common/address"
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/33cn/betting/system/dapp"
	"github.com/33cn/betting/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.betting")

var driverName = bt.BettingX

var (
	confMu       sync.RWMutex
	conf         = bt.DefaultConfig()
	registerOnce sync.Once
)

// Init 注册执行器，sub 是 [exec.sub.betting] 的配置
func Init(name string, sub []byte) {
	cfg := bt.DefaultConfig()
	types.MustDecode(sub, cfg)
	setConfig(cfg)
	registerOnce.Do(func() {
		dapp.Register(driverName, newBetting, 0)
	})
	blog.Info("init", "name", name, "maxBets", cfg.MaxBetsPerMatch, "maxTeamName", cfg.MaxTeamNameLength,
		"deposit", cfg.MatchDeposit)
}

func setConfig(cfg *bt.Config) {
	def := bt.DefaultConfig()
	if cfg.MaxBetsPerMatch <= 0 {
		cfg.MaxBetsPerMatch = def.MaxBetsPerMatch
	}
	if cfg.MaxTeamNameLength <= 0 {
		cfg.MaxTeamNameLength = def.MaxTeamNameLength
	}
	if cfg.MatchDeposit < 0 {
		cfg.MatchDeposit = def.MatchDeposit
	}
	confMu.Lock()
	conf = cfg
	confMu.Unlock()
}

func getConfig() *bt.Config {
	confMu.RLock()
	defer confMu.RUnlock()
	c := *conf
	return &c
}

// GetName 执行器名
func GetName() string {
	return driverName
}

// Betting 执行器
type Betting struct {
	dapp.DriverBase
}

func newBetting() dapp.Driver {
	return &Betting{}
}

// GetDriverName 驱动名
func (b *Betting) GetDriverName() string {
	return driverName
}

func decodeAction(tx *types.Transaction) (*bt.BettingAction, error) {
	var action bt.BettingAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	return &action, nil
}

// CheckTx 只检查参数，和状态有关的检查在执行时进行
// 设置结果时先检查权限，非管理员看不到参数错误
func (b *Betting) CheckTx(tx *types.Transaction, index int) error {
	action, err := decodeAction(tx)
	if err != nil {
		return err
	}
	switch action.Ty {
	case bt.BettingActionCreate:
		c := action.Create
		if c == nil || c.Start < 0 || c.Length < 0 || c.Start > math.MaxInt64-c.Length {
			return types.ErrInvalidParam
		}
	case bt.BettingActionBet:
		if action.Bet == nil {
			return types.ErrInvalidParam
		}
		if !action.Bet.Result.Valid() {
			return bt.ErrInvalidResult
		}
		if !account.CheckAmount(action.Bet.Amount) {
			return types.ErrAmount
		}
		if err := address.CheckAddress(action.Bet.MatchID); err != nil {
			return types.ErrInvalidAddress
		}
	case bt.BettingActionResult:
		if !b.isSuperManager(tx.From()) {
			return types.ErrNoPrivilege
		}
		if action.Result == nil {
			return types.ErrInvalidParam
		}
		if !action.Result.Result.Valid() {
			return bt.ErrInvalidResult
		}
		if err := address.CheckAddress(action.Result.MatchID); err != nil {
			return types.ErrInvalidAddress
		}
	case bt.BettingActionDistribute:
	default:
		return types.ErrActionNotSupport
	}
	return nil
}

func (b *Betting) isSuperManager(addr string) bool {
	api := b.GetAPI()
	return api != nil && api.IsSuperManager(addr)
}

// Exec 执行交易
func (b *Betting) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := decodeAction(tx)
	if err != nil {
		return nil, err
	}
	blog.Debug("exec betting tx", "ty", bt.ActionName[action.Ty], "from", tx.From())
	actiondb := NewAction(b, tx, index)
	switch {
	case action.Ty == bt.BettingActionCreate && action.Create != nil:
		return actiondb.CreateMatch(action.Create)
	case action.Ty == bt.BettingActionBet && action.Bet != nil:
		return actiondb.PlaceBet(action.Bet)
	case action.Ty == bt.BettingActionResult && action.Result != nil:
		return actiondb.SetResult(action.Result)
	case action.Ty == bt.BettingActionDistribute:
		return actiondb.DistributeWinnings()
	}
	return nil, types.ErrActionNotSupport
}
