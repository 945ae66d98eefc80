// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现链上资产的账户操作

账户分为可用余额(Balance)和冻结余额(Frozen)。转账遵守存活规则：
配置了 existentialDeposit 时，转出方剩余的可用余额不能低于它，
接收方转入后的总余额也不能低于它。
*/
package account

import (
	"fmt"
	"strings"

	dbm "github.com/33cn/betting/common/db"
	"github.com/33cn/betting/types"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB 账户数据库
type DB struct {
	db                 dbm.KV
	accountKeyPerfix   []byte
	execer             string
	symbol             string
	existentialDeposit int64
}

// NewCoinsAccount 新建 coins 账户数据库
func NewCoinsAccount() *DB {
	return newAccountDB(SymbolPrefix(types.ExecerCoins, types.CoinSymbol))
}

// NewAccountDB 新建指定执行器、符号的账户数据库
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') {
		return nil, types.ErrInvalidParam
	}
	accDB := newAccountDB(SymbolPrefix(execer, symbol))
	accDB.execer = execer
	accDB.symbol = symbol
	accDB.SetDB(db)
	return accDB, nil
}

func newAccountDB(prefix string) *DB {
	acc := &DB{}
	acc.accountKeyPerfix = []byte(prefix)
	return acc
}

// SetDB set db
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// SetExistentialDeposit 设置账户存活的最小余额
func (acc *DB) SetExistentialDeposit(ed int64) *DB {
	acc.existentialDeposit = ed
	return acc
}

// ExistentialDeposit 账户存活的最小余额
func (acc *DB) ExistentialDeposit() int64 {
	return acc.existentialDeposit
}

// LoadAccount 根据地址载入账户，不存在时返回空账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// LoadAccounts 载入多个账户
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for _, addr := range addrs {
		accs = append(accs, acc.LoadAccount(addr))
	}
	return accs
}

// CheckAmount 金额必须在 [0, MaxCoin] 之间
func CheckAmount(amount int64) bool {
	return amount >= 0 && amount <= types.MaxCoin
}

// CheckTransfer 检查转账是否可以执行，不修改状态
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	if amount == 0 {
		return nil
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Balance < amount {
		return types.ErrNoBalance
	}
	if acc.existentialDeposit > 0 {
		if accFrom.Balance-amount < acc.existentialDeposit {
			return types.ErrKeepAlive
		}
		if accTo.Total()+amount < acc.existentialDeposit {
			return types.ErrBelowExistential
		}
	}
	return nil
}

// Transfer 转账，失败时不修改任何账户
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		alog.Debug("Transfer check", "from", from, "to", to, "amount", amount, "err", err)
		return nil, err
	}
	if amount == 0 {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance -= amount
	accTo.Balance += amount

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

// Reserve 把可用余额冻结，冻结后的可用余额同样要满足存活规则
func (acc *DB) Reserve(addr string, amount int64) (*types.Receipt, error) {
	if !CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	if acc1.Balance < amount {
		return nil, types.ErrNoBalance
	}
	if acc.existentialDeposit > 0 && acc1.Balance-amount < acc.existentialDeposit {
		return nil, types.ErrKeepAlive
	}
	copyacc := *acc1
	acc1.Balance -= amount
	acc1.Frozen += amount
	return acc.execReceipt(types.TyLogExecFrozen, acc1, &copyacc), nil
}

// Unreserve 解冻
func (acc *DB) Unreserve(addr string, amount int64) (*types.Receipt, error) {
	if !CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	if acc1.Frozen < amount {
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance += amount
	acc1.Frozen -= amount
	return acc.execReceipt(types.TyLogExecActive, acc1, &copyacc), nil
}

// GenesisInit 创世时直接增加账户余额
func (acc *DB) GenesisInit(addr string, amount int64) (*types.Receipt, error) {
	if !CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	copyacc := *acc1
	acc1.Balance += amount
	if acc1.Balance > types.MaxCoin {
		return nil, types.ErrAmount
	}
	return acc.execReceipt(types.TyLogGenesis, acc1, &copyacc), nil
}

func (acc *DB) execReceipt(ty int32, acc1 *types.Account, prev *types.Account) *types.Receipt {
	acc.SaveAccount(acc1)
	receiptBalance := &types.ReceiptAccountTransfer{
		Prev:    prev,
		Current: acc1,
	}
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptBalance),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{log1},
	}
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo *types.ReceiptAccountTransfer) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount 保存账户到 db
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet 账户对应的状态数据
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey 账户的 key
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix 账户 key 前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}
