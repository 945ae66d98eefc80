// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/33cn/betting/common/db"
	"github.com/33cn/betting/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemDB(t *testing.T) dbm.DB {
	db, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	return db
}

func TestStateDBTx(t *testing.T) {
	db := newMemDB(t)
	require.NoError(t, db.Set([]byte("k0"), []byte("v0")))
	s := NewStateDB(db)

	v, err := s.Get([]byte("k0"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v0"), v)
	_, err = s.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)

	s.Begin()
	require.NoError(t, s.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, s.Set([]byte("k0"), nil))
	assert.Equal(t, []string{"k1", "k0"}, s.GetSetKeys())
	_, err = s.Get([]byte("k0"))
	assert.Equal(t, types.ErrNotFound, err)
	s.Rollback()

	v, err = s.Get([]byte("k0"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v0"), v)
	_, err = s.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)

	s.Begin()
	require.NoError(t, s.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, s.Set([]byte("k0"), nil))
	require.NoError(t, s.Commit())
	assert.Nil(t, s.GetSetKeys())

	// 提交之后还没有写入后端
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	_, err = s.Get([]byte("k0"))
	assert.Equal(t, types.ErrNotFound, err)

	require.NoError(t, s.Flush())
	v, err = db.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
	_, err = db.Get([]byte("k0"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	require.NoError(t, s.Flush())
}

func TestStateDBSetOutsideTx(t *testing.T) {
	db := newMemDB(t)
	s := NewStateDB(db)
	require.NoError(t, s.Set([]byte("a"), []byte("1")))
	v, err := s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	require.NoError(t, s.Flush())
	v, err = db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
}
