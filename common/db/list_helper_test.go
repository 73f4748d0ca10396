// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListHelper_List(t *testing.T) {
	dir := t.TempDir()
	mdb, err := NewGoMemDB("mem", "", 0)
	require.Nil(t, err)
	testListDB(t, mdb)
	ldb, err := NewGoLevelDB("level", dir, 128)
	require.Nil(t, err)
	defer ldb.Close()
	testListDB(t, ldb)
	bdb, err := NewGoBadgerDB("badger", dir, 128)
	require.Nil(t, err)
	defer bdb.Close()
	testListDB(t, bdb)
}

func testListDB(t *testing.T, db DB) {
	ldb := NewListHelper(db)
	db.Set([]byte("key1"), []byte("value1"))
	db.Set([]byte("key4"), []byte("value2"))
	db.Set([]byte("key7"), []byte("value3"))
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
	//count 限制条数
	data = ldb.List([]byte("key"), nil, 2, ListDESC)
	require.Equal(t, []string{"value3", "value2"}, strs(data))
	data = ldb.List([]byte("key"), nil, 0, ListASC)
	require.Equal(t, []string{"value1", "value2", "value3"}, strs(data))
	require.Equal(t, int64(3), ldb.PrefixCount([]byte("key")))
	//seek 返回 key 处或之前最近的一条
	data = ldb.List([]byte("key"), []byte("key5"), 1, ListSeek)
	require.Equal(t, []string{"key4", "value2"}, strs(data))
	data = ldb.List([]byte("key"), []byte("key7"), 1, ListSeek)
	require.Equal(t, []string{"key7", "value3"}, strs(data))
	data = ldb.List([]byte("key"), []byte("key0"), 1, ListSeek)
	require.Equal(t, 0, len(data))
}
