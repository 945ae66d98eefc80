// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListHelper_List(t *testing.T) {
	for name, db := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			testListDB(t, db)
		})
	}
}

func testListDB(t *testing.T, db DB) {
	ldb := NewListHelper(db)
	require.NoError(t, db.Set([]byte("key1"), []byte("value1")))
	require.NoError(t, db.Set([]byte("key4"), []byte("value2")))
	require.NoError(t, db.Set([]byte("key7"), []byte("value3")))
	require.NoError(t, db.Set([]byte("other"), []byte("value4")))

	data := ldb.List([]byte("key"), []byte("key0"), 0, ListASC)
	require.Equal(t, 3, len(data))
	data = ldb.List([]byte("key"), []byte("key1"), 0, ListASC)
	require.Equal(t, 2, len(data))
	data = ldb.List([]byte("key"), []byte("key3"), 0, ListASC)
	require.Equal(t, 2, len(data))
	data = ldb.List([]byte("key"), []byte("key4"), 0, ListASC)
	require.Equal(t, 1, len(data))
	data = ldb.List([]byte("key"), []byte("key7"), 0, ListASC)
	require.Equal(t, 0, len(data))
	data = ldb.List([]byte("key"), []byte("key8"), 0, ListDESC)
	require.Equal(t, 3, len(data))
	data = ldb.List([]byte("key"), []byte("key7"), 0, ListDESC)
	require.Equal(t, 2, len(data))
	data = ldb.List([]byte("key"), []byte("key5"), 0, ListDESC)
	require.Equal(t, 2, len(data))
	data = ldb.List([]byte("key"), []byte("key4"), 0, ListDESC)
	require.Equal(t, 1, len(data))
	data = ldb.List([]byte("key"), []byte("key1"), 0, ListDESC)
	require.Equal(t, 0, len(data))

	data = ldb.List([]byte("key"), nil, 2, ListASC)
	require.Equal(t, [][]byte{[]byte("value1"), []byte("value2")}, data)
	data = ldb.List([]byte("key"), nil, 1, ListDESC)
	require.Equal(t, [][]byte{[]byte("value3")}, data)

	require.Equal(t, int64(3), ldb.PrefixCount([]byte("key")))
	require.Equal(t, 3, len(ldb.PrefixScan([]byte("key"))))
}
