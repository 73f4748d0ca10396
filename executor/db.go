// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/types"
)

// StateDB is the state view of one block. Reads fall through to the backing
// db, writes stay in memory until the block is persisted. Begin/Commit/Rollback
// scope the writes of a single transaction.
type StateDB struct {
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
	db      dbm.DB
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		cache: make(map[string][]byte),
		db:    db,
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 把交易的修改合并进区块缓存
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return notDeleted(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return notDeleted(value)
	}
	return getFromDB(s.db, key)
}

// GetSetKeys  get state db set keys
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// Set set key value to state db, nil value 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// KVList 已经提交的修改，按 key 排序
func (s *StateDB) KVList() []*types.KeyValue {
	return sortedKV(s.cache)
}

// LocalDB local db for store key value in local
type LocalDB struct {
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
	db      dbm.DB
}

// NewLocalDB new local db
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{
		cache: make(map[string][]byte),
		db:    db,
	}
}

// Begin 开始一个事务
func (l *LocalDB) Begin() {
	l.intx = true
	l.keys = nil
	l.txcache = nil
}

// Commit 提交一个事务
func (l *LocalDB) Commit() {
	for k, v := range l.txcache {
		l.cache[k] = v
	}
	l.resetTx()
}

// Rollback 回滚修改
func (l *LocalDB) Rollback() {
	l.resetTx()
}

func (l *LocalDB) resetTx() {
	l.intx = false
	l.txcache = nil
	l.keys = nil
}

// GetSetKeys get local db set keys
func (l *LocalDB) GetSetKeys() (keys []string) {
	return l.keys
}

// Get get value from local db
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if l.intx && l.txcache != nil {
		if value, ok := l.txcache[skey]; ok {
			return notDeleted(value)
		}
	}
	if value, ok := l.cache[skey]; ok {
		return notDeleted(value)
	}
	return getFromDB(l.db, key)
}

// Set set key value to local db, nil value 表示删除
func (l *LocalDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if l.intx {
		if l.txcache == nil {
			l.txcache = make(map[string][]byte)
		}
		l.keys = append(l.keys, skey)
		l.txcache[skey] = value
	} else {
		l.cache[skey] = value
	}
	return nil
}

// List 只查询已经落盘的数据，本区块内未写入的修改不可见
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	if l.db == nil {
		return nil, types.ErrNotFound
	}
	values := dbm.NewListHelper(l.db).List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

// KVList 已经提交的修改，按 key 排序
func (l *LocalDB) KVList() []*types.KeyValue {
	return sortedKV(l.cache)
}

func notDeleted(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

func getFromDB(db dbm.DB, key []byte) ([]byte, error) {
	if db == nil {
		return nil, types.ErrNotFound
	}
	value, err := db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func sortedKV(data map[string][]byte) []*types.KeyValue {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]*types.KeyValue, 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, &types.KeyValue{Key: []byte(k), Value: data[k]})
	}
	return kvs
}
