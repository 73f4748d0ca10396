// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor runs blocks of transactions through the registered
// drivers. Each transaction is applied to the state as a whole or not at
// all; failed transactions keep an ExecErr receipt and change nothing.
package executor

import (
	"time"

	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/pluginmgr"
	drivers "github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
	log "github.com/inconshreveable/log15"
	metrics "github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

var (
	blockTimer = metrics.GetOrRegisterTimer("execs.block.time", nil)
	txTimer    = metrics.GetOrRegisterTimer("execs.tx.time", nil)
	txOkMeter  = metrics.GetOrRegisterMeter("execs.tx.ok", nil)
	txErrMeter = metrics.GetOrRegisterMeter("execs.tx.err", nil)
)

// Executor 执行器
type Executor struct {
}

// New 初始化所有插件的执行器
func New(cfg *types.Exec) *Executor {
	if cfg == nil {
		cfg = &types.Exec{}
	}
	pluginmgr.InitExec(cfg.SubConfig())
	return &Executor{}
}

// ExecBlock 执行区块中的交易，结果只保存在返回值中，由调用者一次性写入 db
func (exec *Executor) ExecBlock(db dbm.DB, block *types.Block) (*types.BlockDetail, error) {
	defer blockTimer.UpdateSince(time.Now())
	if block == nil {
		return nil, types.ErrInvalidParam
	}
	if len(block.Txs) > types.MaxTxsPerBlock {
		return nil, types.ErrTxSize
	}
	e := newExecutor(db, block)
	detail := &types.BlockDetail{Block: block}
	for i, tx := range block.Txs {
		receipt := e.execTx(tx, i)
		detail.Receipts = append(detail.Receipts, receipt)
		elog.Debug("exec tx = ", "index", i, "execer", string(tx.Execer), "ty", receipt.Ty)
	}
	detail.KV = e.stateDB.KVList()
	detail.LocalKV = e.localDB.KVList()
	return detail, nil
}

// DelBlockLocal 按倒序撤销区块建立的本地索引
func (exec *Executor) DelBlockLocal(db dbm.DB, detail *types.BlockDetail) ([]*types.KeyValue, error) {
	b := detail.Block
	e := newExecutor(db, b)
	for i := len(b.Txs) - 1; i >= 0; i-- {
		tx := b.Txs[i]
		if detail.Receipts[i].GetTy() == types.ExecErr {
			continue
		}
		d, err := e.loadDriver(tx)
		if err != nil {
			return nil, err
		}
		kv, err := d.ExecDelLocal(tx, detail.Receipts[i], i)
		if err == types.ErrActionNotSupport {
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := e.setLocal(tx, kv); err != nil {
			return nil, err
		}
	}
	return e.localDB.KVList(), nil
}

// Query 执行器的只读查询，读取 db 中已经保存的数据
func (exec *Executor) Query(db dbm.DB, driver, funcName string, params []byte) (types.Message, error) {
	d, err := drivers.LoadDriver(driver, -1)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(NewStateDB(db))
	d.SetLocalDB(NewLocalDB(db))
	return d.Query(funcName, params)
}

//执行器 -> db 环境
type executor struct {
	stateDB    *StateDB
	localDB    *LocalDB
	height     int64
	blocktime  int64
	parentHash []byte
}

func newExecutor(db dbm.DB, b *types.Block) *executor {
	return &executor{
		stateDB:    NewStateDB(db),
		localDB:    NewLocalDB(db),
		height:     b.Height,
		blocktime:  b.BlockTime,
		parentHash: b.ParentHash,
	}
}

func (e *executor) loadDriver(tx *types.Transaction) (drivers.Driver, error) {
	d, err := drivers.LoadDriver(string(tx.Execer), e.height)
	if err != nil {
		return nil, err
	}
	d.SetEnv(e.height, e.blocktime, e.parentHash)
	d.SetStateDB(e.stateDB)
	d.SetLocalDB(e.localDB)
	return d, nil
}

func (e *executor) execTx(tx *types.Transaction, index int) *types.ReceiptData {
	defer txTimer.UpdateSince(time.Now())
	receipt, err := e.execTxOne(tx, index)
	if err != nil {
		txErrMeter.Mark(1)
		elog.Error("exec tx error = ", "err", err, "exec", string(tx.Execer), "index", index)
		return types.NewErrReceipt(err)
	}
	txOkMeter.Mark(1)
	data := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	if err := e.execLocalTx(tx, data, index); err != nil {
		//本地索引失败不影响交易本身
		elog.Error("execLocal", "err", err, "exec", string(tx.Execer), "index", index)
	}
	return data
}

func (e *executor) execTxOne(tx *types.Transaction, index int) (*types.Receipt, error) {
	d, err := e.loadDriver(tx)
	if err != nil {
		return nil, err
	}
	if err := d.CheckTx(tx, index); err != nil {
		return nil, err
	}
	e.stateDB.Begin()
	receipt, err := d.Exec(tx, index)
	if err != nil {
		e.stateDB.Rollback()
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	//需要检查两个东西:
	//1. statedb 中 Set的 key 必须是 在 receipt.GetKV() 这个集合中
	//2. receipt.GetKV() 中的 key, 必须符合权限控制要求
	if err := e.checkKV(e.stateDB.GetSetKeys(), receipt.KV); err != nil {
		e.stateDB.Rollback()
		return nil, err
	}
	if err := e.checkKeyAllow(tx, receipt.KV); err != nil {
		e.stateDB.Rollback()
		return nil, err
	}
	e.stateDB.Commit()
	return receipt, nil
}

func (e *executor) checkKV(memset []string, kvs []*types.KeyValue) error {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.GetKey())] = true
	}
	for _, key := range memset {
		if _, ok := keys[key]; !ok {
			elog.Error("err memset key", "key", key)
			return types.ErrNotAllowMemSetKey
		}
	}
	return nil
}

func (e *executor) checkKeyAllow(tx *types.Transaction, kvs []*types.KeyValue) error {
	for _, kv := range kvs {
		if !isAllowKeyWrite(kv.GetKey(), tx.Execer, e.height) {
			elog.Error("err receipt key", "key", string(kv.GetKey()), "tx.exec", string(tx.Execer))
			return types.ErrNotAllowKey
		}
	}
	return nil
}

func (e *executor) execLocalTx(tx *types.Transaction, r *types.ReceiptData, index int) error {
	d, err := e.loadDriver(tx)
	if err != nil {
		return err
	}
	e.localDB.Begin()
	kv, err := d.ExecLocal(tx, r, index)
	if err == types.ErrActionNotSupport {
		e.localDB.Rollback()
		return nil
	}
	if err != nil {
		e.localDB.Rollback()
		return err
	}
	if err := e.checkKV(e.localDB.GetSetKeys(), kvList(kv)); err != nil {
		e.localDB.Rollback()
		return err
	}
	if err := e.setLocal(tx, kv); err != nil {
		e.localDB.Rollback()
		return err
	}
	e.localDB.Commit()
	return nil
}

func (e *executor) setLocal(tx *types.Transaction, kv *types.LocalDBSet) error {
	for _, item := range kvList(kv) {
		if err := isAllowLocalKey(tx.Execer, item.Key); err != nil {
			return err
		}
		if err := e.localDB.Set(item.Key, item.Value); err != nil {
			return err
		}
	}
	return nil
}

func kvList(kv *types.LocalDBSet) []*types.KeyValue {
	if kv == nil {
		return nil
	}
	return kv.KV
}
