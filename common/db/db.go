// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db key/value storage backends and the read/write views the
// executors work against.
package db

import (
	"github.com/pkg/errors"
)

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV is the state view handed to an executor. Writes between Begin and
// Commit can be dropped as a whole with Rollback.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Rollback()
	Commit()
}

// KVDB is the local (index) view handed to an executor
type KVDB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// IteratorDB 可以按前缀迭代的数据库
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

// DB 数据库后端
type DB interface {
	IteratorDB
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch 批量写，Write 之前不可见
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator walks the keys under one prefix. Seek positions on the first key
// >= key going forward, or the last key <= key going in reverse.
type Iterator interface {
	Rewind() bool
	Next() bool
	Seek(key []byte) bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//-----------------------------------------------------------------------------

// backend names
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
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

// NewDB 按后端名称创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, errors.Errorf("unknown db backend %s", backend)
	}
	db, err := creator(name, dir, int(cache))
	if err != nil {
		return nil, errors.Wrapf(err, "init db %s %s", backend, dir)
	}
	return db, nil
}

// bytesPrefixLimit returns the exclusive upper bound of all keys starting with prefix
func bytesPrefixLimit(prefix []byte) []byte {
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

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
