// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"sync"
)

// LocalDB 本地索引数据库，事务内的写入先放在内存，Commit 时写入 maindb
type LocalDB struct {
	txcache map[string][]byte
	maindb  DB
	intx    bool
	mu      sync.RWMutex
}

// NewLocalDB new local db
func NewLocalDB(maindb DB) *LocalDB {
	return &LocalDB{maindb: maindb}
}

// Get get value from local db
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.intx && l.txcache != nil {
		if value, ok := l.txcache[string(key)]; ok {
			//value == nil 代表key已经删除了
			if value == nil {
				return nil, ErrNotFoundInDb
			}
			return value, nil
		}
	}
	return l.maindb.Get(key)
}

// Set value 为 nil 表示删除
func (l *LocalDB) Set(key []byte, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.intx {
		if l.txcache == nil {
			l.txcache = make(map[string][]byte)
		}
		l.txcache[string(key)] = cloneByte(value)
		return nil
	}
	if value == nil {
		return l.maindb.Delete(key)
	}
	return l.maindb.Set(key, value)
}

// List 从数据库中查询数据列表，事务中未提交的数据不会出现在结果中
func (l *LocalDB) List(prefix, key []byte, count, direction int32) [][]byte {
	return NewListHelper(l.maindb).List(prefix, key, count, direction)
}

// PrefixCount 从数据库中查询指定前缀的key的数量
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	return NewListHelper(l.maindb).PrefixCount(prefix)
}

//Begin 开启内存事务处理
func (l *LocalDB) Begin() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intx = true
	l.txcache = nil
}

// Rollback reset tx
func (l *LocalDB) Rollback() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetTx()
}

// Commit 按 key 的顺序批量写入 maindb
func (l *LocalDB) Commit() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.txcache == nil {
		l.resetTx()
		return nil
	}
	keys := make([]string, 0, len(l.txcache))
	for k := range l.txcache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	batch := l.maindb.NewBatch(true)
	for _, k := range keys {
		if v := l.txcache[k]; v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	l.resetTx()
	return batch.Write()
}

func (l *LocalDB) resetTx() {
	l.intx = false
	l.txcache = nil
}
