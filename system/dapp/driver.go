// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp defines the executor driver contract. A driver turns one
// transaction plus a state view into a receipt, and derives local index
// writes from committed receipts.
package dapp

import (
	"github.com/33cn/dice/account"
	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetCoinsAccount() *account.DB
	SetLocalDB(dbm.KVDB)
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	SetEnv(height, blocktime int64, parentHash []byte)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase 驱动的公共部分，具体执行器嵌入它
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	parentHash   []byte
}

// SetEnv 区块环境，执行前设置
func (d *DriverBase) SetEnv(height, blocktime int64, parentHash []byte) {
	d.height = height
	d.blocktime = blocktime
	d.parentHash = parentHash
}

// SetStateDB 设置 state db，同时让主币账户使用它
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

// GetCoinsAccount 主币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}

// GetStateDB state db
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB local db
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB local db
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetHeight 当前区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetParentHash 上一个区块的哈希
func (d *DriverBase) GetParentHash() []byte {
	return d.parentHash
}

// CheckTx 基本检查，执行器地址没有私钥，不能作为交易发起方
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if err := tx.Check(); err != nil {
		return err
	}
	if IsDriverAddress(tx.From, d.height) {
		blog.Error("CheckTx", "from", tx.From, "err", types.ErrFromAddr)
		return types.ErrFromAddr
	}
	return nil
}

// ExecLocal 默认不建索引
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal 默认没有需要回滚的索引
func (d *DriverBase) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// Query 默认不支持查询
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	blog.Debug("Query", "funcName", funcName, "err", types.ErrQueryNotSupport)
	return nil, types.ErrQueryNotSupport
}
