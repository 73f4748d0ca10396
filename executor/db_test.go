// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/types"
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
	require.NoError(t, db.Set([]byte("mavl-demo-a"), []byte("1")))
	state := NewStateDB(db)

	v, err := state.Get([]byte("mavl-demo-a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = state.Get([]byte("mavl-demo-b"))
	assert.Equal(t, types.ErrNotFound, err)

	state.Begin()
	assert.NoError(t, state.Set([]byte("mavl-demo-a"), []byte("2")))
	assert.NoError(t, state.Set([]byte("mavl-demo-b"), []byte("3")))
	assert.Equal(t, []string{"mavl-demo-a", "mavl-demo-b"}, state.GetSetKeys())
	v, err = state.Get([]byte("mavl-demo-a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
	state.Rollback()

	v, err = state.Get([]byte("mavl-demo-a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = state.Get([]byte("mavl-demo-b"))
	assert.Equal(t, types.ErrNotFound, err)
	assert.Nil(t, state.GetSetKeys())

	state.Begin()
	assert.NoError(t, state.Set([]byte("mavl-demo-b"), []byte("3")))
	state.Commit()
	v, err = state.Get([]byte("mavl-demo-b"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("3"), v)

	//区块没有落盘之前，db 不变
	_, err = db.Get([]byte("mavl-demo-b"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	kvs := state.KVList()
	require.Len(t, kvs, 1)
	assert.Equal(t, []byte("mavl-demo-b"), kvs[0].Key)
}

func TestStateDBDelete(t *testing.T) {
	db := newMemDB(t)
	require.NoError(t, db.Set([]byte("mavl-demo-a"), []byte("1")))
	state := NewStateDB(db)
	assert.NoError(t, state.Set([]byte("mavl-demo-a"), nil))
	_, err := state.Get([]byte("mavl-demo-a"))
	assert.Equal(t, types.ErrNotFound, err)
	kvs := state.KVList()
	require.Len(t, kvs, 1)
	assert.Nil(t, kvs[0].Value)
}

func TestLocalDB(t *testing.T) {
	db := newMemDB(t)
	require.NoError(t, db.Set([]byte("LODB-demo-1"), []byte("a")))
	require.NoError(t, db.Set([]byte("LODB-demo-2"), []byte("b")))
	local := NewLocalDB(db)

	local.Begin()
	assert.NoError(t, local.Set([]byte("LODB-demo-3"), []byte("c")))
	v, err := local.Get([]byte("LODB-demo-3"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("c"), v)
	local.Rollback()
	_, err = local.Get([]byte("LODB-demo-3"))
	assert.Equal(t, types.ErrNotFound, err)

	values, err := local.List([]byte("LODB-demo-"), nil, 0, dbm.ListASC)
	assert.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, values)

	values, err = local.List([]byte("LODB-demo-"), nil, 1, dbm.ListDESC)
	assert.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("b")}, values)

	_, err = local.List([]byte("LODB-none-"), nil, 0, dbm.ListASC)
	assert.Equal(t, types.ErrNotFound, err)
}
