// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行：按顺序执行交易，维护状态数据、本地索引以及区块高度
package executor

import (
	"bytes"
	"sync"
	"time"

	"github.com/33cn/betting/account"
	"github.com/33cn/betting/common/address"
	dbm "github.com/33cn/betting/common/db"
	"github.com/33cn/betting/system/dapp"
	"github.com/33cn/betting/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

var (
	heightKey  = []byte("Height")
	genesisKey = []byte("GenesisDone")
)

// ErrNotAllowKey 收据中出现了执行器无权修改的 key
var ErrNotAllowKey = errors.New("ErrNotAllowKey")

// Executor 交易执行器，同一时间只执行一个操作
type Executor struct {
	mu        sync.Mutex
	cfg       *types.Exec
	db        dbm.DB
	stateDB   *StateDB
	localDB   *dbm.LocalDB
	coins     *account.DB
	managers  map[string]bool
	height    int64
	blocktime int64
	index     int
	stat      *statistics
}

// New 新建执行器，高度从 db 中恢复
func New(cfg *types.Exec, db dbm.DB) *Executor {
	if cfg == nil {
		cfg = &types.Exec{}
	}
	exec := &Executor{
		cfg:       cfg,
		db:        db,
		stateDB:   NewStateDB(db),
		localDB:   dbm.NewLocalDB(db),
		managers:  make(map[string]bool),
		blocktime: time.Now().Unix(),
		stat:      newStatistics(),
	}
	for _, m := range cfg.SuperManager {
		exec.managers[m] = true
	}
	exec.coins = account.NewCoinsAccount()
	exec.coins.SetDB(exec.stateDB)
	exec.coins.SetExistentialDeposit(cfg.ExistentialDeposit)
	if value, err := db.Get(heightKey); err == nil {
		var h types.Int64
		if err := types.Decode(value, &h); err != nil {
			panic(err) //数据库已经损坏
		}
		exec.height = h.Data
	}
	elog.Info("executor init", "height", exec.height, "managers", len(exec.managers))
	return exec
}

// IsSuperManager 是否为管理员
func (exec *Executor) IsSuperManager(addr string) bool {
	return exec.managers[addr]
}

// Height 当前高度
func (exec *Executor) Height() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

// NextBlock 进入下一个区块，返回新的高度
func (exec *Executor) NextBlock() (int64, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.setHeight(exec.height+1, time.Now().Unix())
}

// SetHeight 直接设置高度，高度只能增加
func (exec *Executor) SetHeight(height int64) error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if height < exec.height {
		return errors.Wrapf(types.ErrHeightNotIncrease, "current %d, set %d", exec.height, height)
	}
	_, err := exec.setHeight(height, time.Now().Unix())
	return err
}

func (exec *Executor) setHeight(height, blocktime int64) (int64, error) {
	err := exec.db.SetSync(heightKey, types.Encode(&types.Int64{Data: height}))
	if err != nil {
		return exec.height, err
	}
	exec.height = height
	exec.blocktime = blocktime
	exec.index = 0
	exec.stat.height.Update(height)
	elog.Debug("new block", "height", height)
	return height, nil
}

// Genesis 创世分配，只能执行一次
func (exec *Executor) Genesis(allocs []*types.GenesisAlloc) (*types.Receipt, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if _, err := exec.db.Get(genesisKey); err == nil {
		return nil, types.ErrGenesisDone
	}
	exec.stateDB.Begin()
	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, alloc := range allocs {
		addr := alloc.Addr
		if alloc.Exec != "" {
			addr = dapp.ExecAddress(alloc.Exec)
		}
		if err := address.CheckAddress(addr); err != nil {
			exec.stateDB.Rollback()
			return nil, errors.Wrapf(types.ErrInvalidAddress, "genesis %s", addr)
		}
		r, err := exec.coins.GenesisInit(addr, alloc.Amount)
		if err != nil {
			exec.stateDB.Rollback()
			return nil, errors.Wrapf(err, "genesis %s", addr)
		}
		receipt = types.MergeReceipt(receipt, r)
		elog.Info("genesis", "addr", addr, "amount", alloc.Amount)
	}
	if err := exec.stateDB.Commit(); err != nil {
		return nil, err
	}
	if err := exec.stateDB.Flush(); err != nil {
		return nil, err
	}
	if err := exec.db.SetSync(genesisKey, []byte{1}); err != nil {
		return nil, err
	}
	return receipt, nil
}

// CheckTx 只做检查，不执行
func (exec *Executor) CheckTx(tx *types.Transaction) error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	d, err := exec.loadDriver(tx)
	if err != nil {
		return err
	}
	return d.CheckTx(tx, exec.index)
}

// Exec 执行一笔交易
// 执行失败时状态不变；收据类型为 ExecPack 时，已经执行的部分会被保留，同时返回错误
func (exec *Executor) Exec(tx *types.Transaction) (*types.Receipt, error) {
	if tx == nil {
		return nil, types.ErrEmptyTx
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()
	start := time.Now()
	defer exec.stat.execTimer.UpdateSince(start)

	d, err := exec.loadDriver(tx)
	if err != nil {
		exec.stat.fail(tx.Execer)
		return nil, err
	}
	if err := d.CheckTx(tx, exec.index); err != nil {
		exec.stat.fail(tx.Execer)
		return nil, err
	}
	exec.stateDB.Begin()
	receipt, err := d.Exec(tx, exec.index)
	if err != nil && (receipt == nil || receipt.Ty != types.ExecPack) {
		exec.stateDB.Rollback()
		exec.stat.fail(tx.Execer)
		elog.Debug("exec tx failed", "execer", tx.Execer, "from", tx.From(), "err", err)
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	if kerr := exec.checkPrefix(tx.Execer, receipt); kerr != nil {
		exec.stateDB.Rollback()
		exec.stat.fail(tx.Execer)
		elog.Error("exec tx receipt key", "execer", tx.Execer, "err", kerr)
		return nil, kerr
	}
	if err != nil {
		receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: types.TyLogErr, Log: []byte(err.Error())})
		elog.Error("exec tx partially committed", "execer", tx.Execer, "from", tx.From(), "err", err)
	}
	if cerr := exec.commit(d, tx, receipt); cerr != nil {
		return nil, cerr
	}
	exec.stat.done(tx.Execer, receipt.Ty)
	return receipt, err
}

func (exec *Executor) commit(d dapp.Driver, tx *types.Transaction, receipt *types.Receipt) error {
	if err := exec.stateDB.Commit(); err != nil {
		return err
	}
	if err := exec.stateDB.Flush(); err != nil {
		elog.Error("flush state", "err", err)
		return err
	}
	index := exec.index
	exec.index++

	set, err := d.ExecLocal(tx, receipt, index)
	if err != nil {
		// 状态已经写入，本地索引出错只记录日志
		elog.Error("exec local", "execer", tx.Execer, "err", err)
		return nil
	}
	exec.localDB.Begin()
	for _, kv := range set.KV {
		if err := exec.localDB.Set(kv.Key, kv.Value); err != nil {
			exec.localDB.Rollback()
			elog.Error("exec local set", "err", err)
			return nil
		}
	}
	if err := exec.localDB.Commit(); err != nil {
		elog.Error("exec local commit", "err", err)
	}
	return nil
}

// Query 只读查询，param 编码后交给执行器
func (exec *Executor) Query(driver string, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	d, err := dapp.LoadDriver(driver, exec.height)
	if err != nil {
		return nil, err
	}
	exec.setEnv(d)
	return d.Query(funcName, types.Encode(param))
}

// GetAccount 查询 coins 账户
func (exec *Executor) GetAccount(addr string) (*types.Account, error) {
	if err := address.CheckAddress(addr); err != nil {
		return nil, errors.Wrap(types.ErrInvalidAddress, err.Error())
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.coins.LoadAccount(addr), nil
}

// Close 关闭
func (exec *Executor) Close() {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if err := exec.stateDB.Flush(); err != nil {
		elog.Error("close flush", "err", err)
	}
	elog.Info("executor closed", "height", exec.height)
}

func (exec *Executor) loadDriver(tx *types.Transaction) (dapp.Driver, error) {
	if tx == nil || tx.Execer == "" {
		return nil, types.ErrEmptyTx
	}
	if !tx.CheckSign() {
		return nil, types.ErrSign
	}
	d, err := dapp.LoadDriver(tx.Execer, exec.height)
	if err != nil {
		return nil, errors.Wrapf(err, "execer %s", tx.Execer)
	}
	exec.setEnv(d)
	return d, nil
}

func (exec *Executor) setEnv(d dapp.Driver) {
	d.SetStateDB(exec.stateDB)
	d.SetLocalDB(exec.localDB)
	d.SetCoinsAccount(exec.coins)
	d.SetAPI(exec)
	d.SetEnv(exec.height, exec.blocktime)
}

var coinsPrefix = []byte(account.SymbolPrefix(types.ExecerCoins, types.CoinSymbol))

// 执行器只能修改自己的数据以及 coins 账户
func (exec *Executor) checkPrefix(execer string, receipt *types.Receipt) error {
	if receipt == nil {
		return nil
	}
	own := []byte(types.StatePrefix + execer + "-")
	for _, kv := range receipt.KV {
		if !bytes.HasPrefix(kv.Key, own) && !bytes.HasPrefix(kv.Key, coinsPrefix) {
			return errors.Wrapf(ErrNotAllowKey, "key %s", string(kv.Key))
		}
	}
	return nil
}
