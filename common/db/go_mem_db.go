// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"strconv"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB 内存数据库，测试和临时节点使用
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

// NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	mlog.Debug("open memdb", "name", name)
	return &GoMemDB{db: make(map[string][]byte)}, nil
}

// Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFoundInDb
}

// Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.db[string(key)] = cloneByte(value)
	return nil
}

// SetSync 内存数据库与 Set 相同
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete delete
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	delete(db.db, string(key))
	return nil
}

// DeleteSync 内存数据库与 Delete 相同
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close 内存数据库无需关闭
func (db *GoMemDB) Close() {
}

// Stats 状态
func (db *GoMemDB) Stats() map[string]string {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return map[string]string{"database.type": "memDB", "database.keys": strconv.Itoa(len(db.db))}
}

// Iterator 迭代器在创建时对范围内的数据做快照
func (db *GoMemDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	limit := end
	if end == nil {
		limit = bytesPrefix(start)
	}
	db.lock.RLock()
	keys := make([]string, 0, len(db.db))
	for k := range db.db {
		if inRange([]byte(k), start, limit) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = db.db[k]
	}
	db.lock.RUnlock()
	return &memIterator{keys: keys, values: values, index: -1, reverse: reverse}
}

type memIterator struct {
	keys    []string
	values  [][]byte
	index   int
	reverse bool
}

func (it *memIterator) Rewind() bool {
	if it.reverse {
		it.index = len(it.keys) - 1
	} else {
		it.index = 0
	}
	return it.Valid()
}

func (it *memIterator) Next() bool {
	if it.reverse {
		it.index--
	} else {
		it.index++
	}
	return it.Valid()
}

func (it *memIterator) Seek(key []byte) bool {
	i := sort.SearchStrings(it.keys, string(key))
	if it.reverse && (i == len(it.keys) || it.keys[i] != string(key)) {
		i--
	}
	it.index = i
	return it.Valid()
}

func (it *memIterator) Valid() bool {
	return it.index >= 0 && it.index < len(it.keys)
}

func (it *memIterator) Key() []byte {
	return []byte(it.keys[it.index])
}

func (it *memIterator) Value() []byte {
	return it.values[it.index]
}

func (it *memIterator) ValueCopy() []byte {
	return cloneByte(it.values[it.index])
}

func (it *memIterator) Error() error {
	return nil
}

func (it *memIterator) Close() {
	it.keys = nil
	it.values = nil
}

type kv struct {
	k []byte
	v []byte
}

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

// NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	v := cloneByte(value)
	if v == nil {
		v = []byte{}
	}
	b.writes = append(b.writes, kv{cloneByte(key), v})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, w := range b.writes {
		if w.v == nil {
			delete(b.db.db, string(w.k))
		} else {
			b.db.db[string(w.k)] = w.v
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
