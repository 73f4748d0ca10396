// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(list [][]byte) []string {
	var out []string
	for _, v := range list {
		out = append(out, string(v))
	}
	return out
}

// 迭代测试
func testDBIterator(t *testing.T, db DB) {
	for _, k := range []string{"aaaaaa/1", "my_key/1", "my_key/2", "my_key/3", "my_key/4", "my", "my_", "zzzzzz/1"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}
	b, err := hex.DecodeString("ff")
	require.NoError(t, err)
	require.NoError(t, db.Set(b, []byte("0xff")))

	v, err := db.Get([]byte("aaaaaa/1"))
	require.NoError(t, err)
	require.Equal(t, "aaaaaa/1", string(v))

	_, err = db.Get([]byte("not exist"))
	require.Equal(t, ErrNotFoundInDb, err)

	it := NewListHelper(db)
	list := it.PrefixScan(nil)
	require.Equal(t, []string{"aaaaaa/1", "my", "my_", "my_key/1", "my_key/2", "my_key/3", "my_key/4", "zzzzzz/1", "0xff"}, strs(list))

	list = it.IteratorScanFromFirst([]byte("my"), 2)
	require.Equal(t, []string{"my", "my_"}, strs(list))

	list = it.IteratorScanFromLast([]byte("my"), 100)
	require.Equal(t, []string{"my_key/4", "my_key/3", "my_key/2", "my_key/1", "my_", "my"}, strs(list))

	list = it.IteratorScan([]byte("my"), []byte("my_key/3"), 100, ListASC)
	require.Equal(t, []string{"my_key/4"}, strs(list))

	list = it.IteratorScan([]byte("my"), []byte("my_key/3"), 100, ListDESC)
	require.Equal(t, []string{"my_key/2", "my_key/1", "my_", "my"}, strs(list))

	//key 不存在时从相邻位置开始
	list = it.List([]byte("my_key/"), []byte("my_key/25"), 1, ListDESC)
	require.Equal(t, []string{"my_key/2"}, strs(list))
	list = it.List([]byte("my_key/"), []byte("my_key/25"), 1, ListASC)
	require.Equal(t, []string{"my_key/3"}, strs(list))

	list = it.List([]byte("my_key/"), nil, 2, ListDESC)
	require.Equal(t, []string{"my_key/4", "my_key/3"}, strs(list))

	assert.Equal(t, int64(4), it.PrefixCount([]byte("my_key/")))
	assert.Equal(t, int64(1), it.PrefixCount(b))
}

// 边界测试, 前缀全是 0xff 时没有上界
func testDBBoundary(t *testing.T, db DB) {
	a, _ := hex.DecodeString("ff")
	b, _ := hex.DecodeString("ffff")
	c, _ := hex.DecodeString("ffffff")
	db.Set(a, []byte("0xff"))
	db.Set(b, []byte("0xffff"))
	db.Set(c, []byte("0xffffff"))

	it := NewListHelper(db)
	require.Equal(t, []string{"0xff", "0xffff", "0xffffff"}, strs(it.IteratorScanFromFirst(a, 0)))
	require.Equal(t, []string{"0xffffff", "0xffff", "0xff"}, strs(it.IteratorScanFromLast(a, 0)))
	require.Equal(t, []string{"0xffffff", "0xffff"}, strs(it.IteratorScanFromLast(b, 0)))
}

func testDBBatch(t *testing.T, db DB) {
	require.NoError(t, db.Set([]byte("k0"), []byte("v0")))
	batch := db.NewBatch(true)
	batch.Set([]byte("k1"), []byte("v1"))
	batch.Set([]byte("k2"), []byte("v2"))
	batch.Delete([]byte("k0"))
	assert.True(t, batch.ValueSize() > 0)

	//write 之前不可见
	_, err := db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, batch.Write())
	v, err := db.Get([]byte("k2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
	_, err = db.Get([]byte("k0"))
	assert.Equal(t, ErrNotFoundInDb, err)

	batch.Reset()
	assert.Equal(t, 0, batch.ValueSize())
	require.NoError(t, batch.Write())

	require.NoError(t, db.Delete([]byte("k1")))
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestGoMemDB(t *testing.T) {
	db, err := NewGoMemDB("gomemdb", "", 128)
	require.NoError(t, err)
	testDBIterator(t, db)

	db, _ = NewGoMemDB("gomemdb", "", 128)
	testDBBoundary(t, db)

	db, _ = NewGoMemDB("gomemdb", "", 128)
	testDBBatch(t, db)
	assert.Equal(t, "1", db.Stats()["keys"])
}

func TestGoLevelDB(t *testing.T) {
	dir := t.TempDir()
	db, err := NewGoLevelDB("goleveldb", dir, 16)
	require.NoError(t, err)
	defer db.Close()
	testDBIterator(t, db)

	db2, err := NewGoLevelDB("goleveldb2", dir, 16)
	require.NoError(t, err)
	defer db2.Close()
	testDBBoundary(t, db2)

	db3, err := NewGoLevelDB("goleveldb3", dir, 16)
	require.NoError(t, err)
	defer db3.Close()
	testDBBatch(t, db3)
}

func TestGoBadgerDB(t *testing.T) {
	dir := t.TempDir()
	db, err := NewGoBadgerDB("gobadgerdb", dir, 16)
	require.NoError(t, err)
	defer db.Close()
	testDBIterator(t, db)

	db2, err := NewGoBadgerDB("gobadgerdb2", dir, 16)
	require.NoError(t, err)
	defer db2.Close()
	testDBBoundary(t, db2)

	db3, err := NewGoBadgerDB("gobadgerdb3", dir, 16)
	require.NoError(t, err)
	defer db3.Close()
	testDBBatch(t, db3)
}

func TestNewDB(t *testing.T) {
	db, err := NewDB("test", MemDBBackendStr, "", 0)
	require.NoError(t, err)
	_, ok := db.(*GoMemDB)
	assert.True(t, ok)

	_, err = NewDB("test", "cleveldb", "", 0)
	assert.Error(t, err)
}
