// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的接口以及注册
package dapp

import (
	"github.com/33cn/betting/account"
	dbm "github.com/33cn/betting/common/db"
	"github.com/33cn/betting/types"
)

// LocalDB 执行器可以读取的本地索引
type LocalDB interface {
	dbm.KVDB
	dbm.Lister
}

// API 执行器可以调用的节点接口
type API interface {
	// IsSuperManager 交易发起方是否拥有管理员权限
	IsSuperManager(addr string) bool
}

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(LocalDB)
	GetLocalDB() LocalDB
	SetCoinsAccount(*account.DB)
	GetCoinsAccount() *account.DB
	SetAPI(API)
	GetAPI() API
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	SetEnv(height, blocktime int64)
	GetHeight() int64
	GetBlockTime() int64
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase 执行器的公共部分，具体执行器嵌入它并覆盖 Exec 等方法
type DriverBase struct {
	statedb      dbm.KV
	localdb      LocalDB
	coinsaccount *account.DB
	api          API
	height       int64
	blocktime    int64
}

// SetStateDB set state db
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount != nil {
		d.coinsaccount.SetDB(db)
	}
}

// GetStateDB get state db
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB set local db
func (d *DriverBase) SetLocalDB(db LocalDB) {
	d.localdb = db
}

// GetLocalDB get local db
func (d *DriverBase) GetLocalDB() LocalDB {
	return d.localdb
}

// SetCoinsAccount 设置 coins 账户，账户的 db 与执行器的状态 db 保持一致
func (d *DriverBase) SetCoinsAccount(acc *account.DB) {
	d.coinsaccount = acc
	if acc != nil && d.statedb != nil {
		acc.SetDB(d.statedb)
	}
}

// GetCoinsAccount get coins account
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

// SetAPI set api
func (d *DriverBase) SetAPI(api API) {
	d.api = api
}

// GetAPI get api
func (d *DriverBase) GetAPI() API {
	return d.api
}

// SetEnv set env
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// GetHeight 当前高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// CheckTx 默认不做检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// Exec 默认不支持任何操作
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, types.ErrActionNotSupport
}

// ExecLocal 默认不建立索引
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// Query 默认不支持查询
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	return nil, types.ErrQueryNotSupport
}
