// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDBs(t *testing.T) map[string]DB {
	dir := t.TempDir()
	ldb, err := NewDB("level", GoLevelDBBackendStr, dir, 16)
	require.NoError(t, err)
	t.Cleanup(ldb.Close)
	mdb, err := NewDB("mem", MemDBBackendStr, "", 0)
	require.NoError(t, err)
	return map[string]DB{"goleveldb": ldb, "memdb": mdb}
}

func TestNewDBUnknownBackend(t *testing.T) {
	_, err := NewDB("x", "nosuchdb", "", 0)
	assert.Error(t, err)
}

func TestGetSetDelete(t *testing.T) {
	for name, db := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			_, err := db.Get([]byte("a"))
			assert.Equal(t, ErrNotFoundInDb, err)

			require.NoError(t, db.Set([]byte("a"), []byte("1")))
			require.NoError(t, db.SetSync([]byte("b"), []byte("2")))
			v, err := db.Get([]byte("a"))
			require.NoError(t, err)
			assert.Equal(t, []byte("1"), v)

			require.NoError(t, db.Delete([]byte("a")))
			require.NoError(t, db.DeleteSync([]byte("b")))
			_, err = db.Get([]byte("a"))
			assert.Equal(t, ErrNotFoundInDb, err)
			_, err = db.Get([]byte("b"))
			assert.Equal(t, ErrNotFoundInDb, err)
			assert.NotNil(t, db.Stats())
		})
	}
}

func TestBatch(t *testing.T) {
	for name, db := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, db.Set([]byte("old"), []byte("x")))
			batch := db.NewBatch(true)
			batch.Set([]byte("k1"), []byte("v1"))
			batch.Set([]byte("k2"), []byte("v2"))
			batch.Delete([]byte("old"))
			assert.True(t, batch.ValueSize() > 0)

			_, err := db.Get([]byte("k1"))
			assert.Equal(t, ErrNotFoundInDb, err)
			require.NoError(t, batch.Write())

			v, err := db.Get([]byte("k2"))
			require.NoError(t, err)
			assert.Equal(t, []byte("v2"), v)
			_, err = db.Get([]byte("old"))
			assert.Equal(t, ErrNotFoundInDb, err)

			batch.Reset()
			assert.Equal(t, 0, batch.ValueSize())
		})
	}
}

func TestIterator(t *testing.T) {
	for name, db := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"aa", "key1", "key2", "key3", "kez"} {
				require.NoError(t, db.Set([]byte(k), []byte("v"+k)))
			}
			var keys []string
			it := db.Iterator([]byte("key"), nil, false)
			for it.Rewind(); it.Valid(); it.Next() {
				keys = append(keys, string(it.Key()))
			}
			require.NoError(t, it.Error())
			it.Close()
			assert.Equal(t, []string{"key1", "key2", "key3"}, keys)

			keys = keys[:0]
			it = db.Iterator([]byte("key"), nil, true)
			for it.Rewind(); it.Valid(); it.Next() {
				keys = append(keys, string(it.Key()))
			}
			it.Close()
			assert.Equal(t, []string{"key3", "key2", "key1"}, keys)

			it = db.Iterator([]byte("key"), nil, true)
			require.True(t, it.Seek([]byte("key25")))
			assert.Equal(t, []byte("key2"), it.Key())
			assert.Equal(t, []byte("vkey2"), it.ValueCopy())
			it.Close()

			it = db.Iterator([]byte("key"), nil, false)
			require.True(t, it.Seek([]byte("key25")))
			assert.Equal(t, []byte("key3"), it.Key())
			assert.False(t, it.Seek([]byte("key4")))
			it.Close()

			it = db.Iterator([]byte("aa"), []byte("key3"), false)
			keys = keys[:0]
			for it.Rewind(); it.Valid(); it.Next() {
				keys = append(keys, string(it.Key()))
			}
			it.Close()
			assert.Equal(t, []string{"aa", "key1", "key2"}, keys)
		})
	}
}

func TestBytesPrefix(t *testing.T) {
	assert.Equal(t, []byte("kez"), bytesPrefix([]byte("key")))
	assert.Equal(t, []byte{1}, bytesPrefix([]byte{0, 0xff}))
	assert.Nil(t, bytesPrefix([]byte{0xff, 0xff}))
	assert.Nil(t, bytesPrefix(nil))
}
