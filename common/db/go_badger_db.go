// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

// GoBadgerDB badger 后端
type GoBadgerDB struct {
	db *badger.DB
}

// badger 自己的日志转到 log15
type badgerLog struct{}

func (badgerLog) Errorf(format string, v ...interface{}) {
	blog.Error(fmt.Sprintf(format, v...))
}

func (badgerLog) Warningf(format string, v ...interface{}) {
	blog.Warn(fmt.Sprintf(format, v...))
}

func (badgerLog) Infof(format string, v ...interface{}) {
	blog.Debug(fmt.Sprintf(format, v...))
}

func (badgerLog) Debugf(format string, v ...interface{}) {
	blog.Debug(fmt.Sprintf(format, v...))
}

// NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	path := dir + "/" + name + ".db"
	opts := badger.DefaultOptions(path)
	opts.Logger = badgerLog{}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", path)
	}
	return &GoBadgerDB{db: db}, nil
}

// Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	if val == nil {
		val = []byte{}
	}
	return val, nil
}

// Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

// SetSync badger 的写入本身已经落盘
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete delete
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

// DeleteSync same as Delete
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// DB underlying badger
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

// Close close
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

// Stats lsm and value log size
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm":  strconv.FormatInt(lsm, 10),
		"badger.vlog": strconv.FormatInt(vlog, 10),
	}
}

// Iterator 前缀迭代，迭代器持有一个只读事务，用完必须 Close
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := &goBadgerDBIt{
		txn:     txn,
		it:      txn.NewIterator(opts),
		prefix:  cloneByte(prefix),
		reverse: reverse,
	}
	it.Rewind()
	return it
}

type goBadgerDBIt struct {
	txn     *badger.Txn
	it      *badger.Iterator
	prefix  []byte
	reverse bool
	err     error
}

func (dbit *goBadgerDBIt) Rewind() bool {
	if !dbit.reverse {
		if len(dbit.prefix) == 0 {
			dbit.it.Rewind()
		} else {
			dbit.it.Seek(dbit.prefix)
		}
		return dbit.Valid()
	}
	limit := bytesPrefixLimit(dbit.prefix)
	if limit == nil {
		dbit.it.Rewind()
		return dbit.Valid()
	}
	dbit.it.Seek(limit)
	if dbit.it.Valid() && bytes.Equal(dbit.it.Item().Key(), limit) {
		dbit.it.Next()
	}
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Next() bool {
	dbit.it.Next()
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Seek(key []byte) bool {
	dbit.it.Seek(key)
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Valid() bool {
	if len(dbit.prefix) == 0 {
		return dbit.it.Valid()
	}
	return dbit.it.ValidForPrefix(dbit.prefix)
}

func (dbit *goBadgerDBIt) Key() []byte {
	return dbit.it.Item().KeyCopy(nil)
}

func (dbit *goBadgerDBIt) Value() []byte {
	value, err := dbit.it.Item().ValueCopy(nil)
	if err != nil {
		dbit.err = err
		return nil
	}
	return value
}

func (dbit *goBadgerDBIt) ValueCopy() []byte {
	return dbit.Value()
}

func (dbit *goBadgerDBIt) Error() error {
	return dbit.err
}

func (dbit *goBadgerDBIt) Close() {
	dbit.it.Close()
	dbit.txn.Discard()
}

//--------------------------------------------------------------------------------

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

// NewBatch badger 的 batch 在 Write 时用一个事务提交
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kv{k: cloneByte(key), v: cloneByte(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{k: cloneByte(key), del: true})
	mBatch.size++
}

func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range mBatch.writes {
			var err error
			if kv.del {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return errors.Wrap(err, "badger batch write")
	}
	return nil
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
	mBatch.size = 0
}
