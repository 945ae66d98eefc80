// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
)

// ListHelper 在 IteratorDB 之上提供分页查询
type ListHelper struct {
	db IteratorDB
}

// 遍历方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db: db}
}

// PrefixScan 返回前缀下的所有值
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		values = append(values, it.ValueCopy())
	}
	if err := it.Error(); err != nil {
		llog.Error("PrefixScan iterator has error", "err", err)
		return nil
	}
	return values
}

// List 从 key 之后(不包含 key)开始按方向取 count 条，key 为空时从头开始，count <= 0 不限制条数
func (db *ListHelper) List(prefix, key []byte, count, direction int32) [][]byte {
	if len(key) == 0 {
		if direction == ListASC {
			return db.IteratorScanFromFirst(prefix, count)
		}
		return db.IteratorScanFromLast(prefix, count)
	}
	return db.IteratorScan(prefix, key, count, direction)
}

// IteratorScan 从 key 之后开始遍历
func (db *ListHelper) IteratorScan(prefix []byte, key []byte, count int32, direction int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, direction == ListDESC)
	defer it.Close()
	ok := it.Seek(key)
	if ok && bytes.Equal(it.Key(), key) {
		ok = it.Next()
	}
	return collect(it, ok, count)
}

// IteratorScanFromFirst 从第一个元素正向遍历
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	return collect(it, it.Rewind(), count)
}

// IteratorScanFromLast 从最后一个元素反向遍历
func (db *ListHelper) IteratorScanFromLast(prefix []byte, count int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, true)
	defer it.Close()
	return collect(it, it.Rewind(), count)
}

// PrefixCount 前缀下的元素个数
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		count++
	}
	return count
}

func collect(it Iterator, ok bool, count int32) (values [][]byte) {
	for i := int32(0); ok; ok = it.Next() {
		values = append(values, it.ValueCopy())
		i++
		if count > 0 && i >= count {
			break
		}
	}
	if err := it.Error(); err != nil {
		llog.Error("list iterator has error", "err", err)
		return nil
	}
	return values
}
