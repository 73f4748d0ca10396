// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package localnode runs transactions through the executor without a network:
// every SendTx packs one block on top of the persisted header and writes the
// state, the local index and the block itself in a single batch.
package localnode

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/executor"
	"github.com/33cn/dice/types"
	"github.com/google/uuid"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var nlog = log.New("module", "localnode")

var headerKey = []byte("LocalNode-header")

func calcBlockKey(height int64) []byte {
	return []byte(fmt.Sprintf("LocalNode-block:%018d", height))
}

func calcReceiptKey(height int64, index int) []byte {
	return []byte(fmt.Sprintf("LocalNode-receipt:%018d:%06d", height, index))
}

// Node 本地节点，一次只打包一个区块
type Node struct {
	mu     sync.Mutex
	db     dbm.DB
	exec   *executor.Executor
	header *types.Header
	clock  func() int64
}

// Open 按配置打开数据库和执行器
func Open(cfg *types.Config) (*Node, error) {
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, err
	}
	node, err := New(db, executor.New(cfg.Exec))
	if err != nil {
		db.Close()
		return nil, err
	}
	return node, nil
}

// New 使用已经打开的数据库
func New(db dbm.DB, exec *executor.Executor) (*Node, error) {
	node := &Node{
		db:     db,
		exec:   exec,
		header: &types.Header{BlockTime: types.GenesisBlockTime},
		clock:  func() int64 { return time.Now().Unix() },
	}
	value, err := db.Get(headerKey)
	if err == nil && value != nil {
		if err := types.Decode(value, node.header); err != nil {
			return nil, errors.Wrap(err, "load header")
		}
	} else if err != nil && err != dbm.ErrNotFoundInDb {
		return nil, errors.Wrap(err, "load header")
	}
	nlog.Info("local node", "height", node.header.Height)
	return node, nil
}

// SetClock 修改区块时间的来源
func (n *Node) SetClock(clock func() int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.clock = clock
}

// Header 最新区块
func (n *Node) Header() types.Header {
	n.mu.Lock()
	defer n.mu.Unlock()
	return *n.header
}

// SendTx 把交易打包成一个区块执行，失败的交易也会写入区块，错误在 receipt 中
func (n *Node) SendTx(txs ...*types.Transaction) (*types.BlockDetail, error) {
	if len(txs) == 0 {
		return nil, types.ErrEmptyTx
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	blocktime := n.clock()
	if blocktime < n.header.BlockTime {
		blocktime = n.header.BlockTime
	}
	block := &types.Block{
		ParentHash: n.header.Hash,
		Height:     n.header.Height + 1,
		BlockTime:  blocktime,
		Txs:        txs,
	}
	detail, err := n.exec.ExecBlock(n.db, block)
	if err != nil {
		return nil, err
	}
	header := &types.Header{
		Height:    block.Height,
		BlockTime: block.BlockTime,
		Hash:      block.Hash(),
		TxCount:   n.header.TxCount + int64(len(txs)),
	}
	batch := n.db.NewBatch(true)
	writeKV(batch, detail.KV)
	writeKV(batch, detail.LocalKV)
	batch.Set(calcBlockKey(block.Height), types.Encode(block))
	for i, r := range detail.Receipts {
		batch.Set(calcReceiptKey(block.Height, i), types.Encode(r))
	}
	batch.Set(headerKey, types.Encode(header))
	if err := batch.Write(); err != nil {
		return nil, errors.Wrapf(err, "write block %d", block.Height)
	}
	n.header = header
	nlog.Debug("SendTx", "height", header.Height, "txs", len(txs))
	return detail, nil
}

func writeKV(batch dbm.Batch, kvs []*types.KeyValue) {
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
			continue
		}
		batch.Set(kv.Key, kv.Value)
	}
}

// GetBlock 读取已经保存的区块和每笔交易的 receipt
func (n *Node) GetBlock(height int64) (*types.BlockDetail, error) {
	value, err := n.db.Get(calcBlockKey(height))
	if err != nil || value == nil {
		return nil, types.ErrBlockNotFound
	}
	block := &types.Block{}
	if err := types.Decode(value, block); err != nil {
		return nil, err
	}
	detail := &types.BlockDetail{Block: block}
	for i := range block.Txs {
		value, err := n.db.Get(calcReceiptKey(height, i))
		if err != nil {
			return nil, errors.Wrapf(err, "receipt %d:%d", height, i)
		}
		r := &types.ReceiptData{}
		if err := types.Decode(value, r); err != nil {
			return nil, err
		}
		detail.Receipts = append(detail.Receipts, r)
	}
	return detail, nil
}

// Query 查询执行器的状态数据和本地索引
func (n *Node) Query(driver, funcName string, params types.Message) (types.Message, error) {
	var data []byte
	if params != nil {
		data = types.Encode(params)
	}
	return n.exec.Query(n.db, driver, funcName, data)
}

// Close 关闭数据库
func (n *Node) Close() {
	n.db.Close()
}

// NewNonce 随机 nonce, 让内容相同的交易哈希不同
func NewNonce() int64 {
	id := uuid.New()
	return int64(binary.BigEndian.Uint64(id[:8]) & math.MaxInt64)
}
