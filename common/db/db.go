// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 存储后端以及键值读写接口
package db

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrNotFoundInDb 数据库中不存在该键
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KVDB 最基本的键值读写
type KVDB interface {
	Get(key []byte) (value []byte, err error)
	// Set value 为 nil 时表示删除
	Set(key []byte, value []byte) error
}

// KV 带内存事务的状态读写接口，执行器的 action 使用它
type KV interface {
	KVDB
	Begin()
	Rollback()
	Commit() error
}

// Lister 按前缀分页遍历
type Lister interface {
	List(prefix, key []byte, count, direction int32) [][]byte
	PrefixCount(prefix []byte) int64
}

// IteratorDB 可以创建迭代器的数据库
type IteratorDB interface {
	// Iterator end 为 nil 时遍历 start 作为前缀的所有键
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

// DB 存储后端
type DB interface {
	KVDB
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator 迭代器，Rewind 之前处于无效位置
type Iterator interface {
	Rewind() bool
	Next() bool
	// Seek 正向时定位到第一个 >= key 的位置，反向时定位到最后一个 <= key 的位置
	Seek(key []byte) bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

// 后端名称
const (
	LevelDBBackendStr   = "leveldb"
	GoLevelDBBackendStr = "goleveldb"
	MemDBBackendStr     = "memdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 按后端名称打开数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	dbCreator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %s", backend)
	}
	return dbCreator(name, dir, int(cache))
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

// bytesPrefix 返回前缀对应的上界(不包含)，前缀全部为 0xff 时返回 nil
func bytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

func inRange(key, start, limit []byte) bool {
	if bytes.Compare(key, start) < 0 {
		return false
	}
	return limit == nil || bytes.Compare(key, limit) < 0
}
