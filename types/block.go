// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "github.com/33cn/dice/common"

// Block 区块，交易按顺序执行
type Block struct {
	ParentHash []byte
	Height     int64
	BlockTime  int64
	Txs        []*Transaction
}

// Marshal protobuf encoding
func (b *Block) Marshal() []byte {
	var data []byte
	data = AppendBytes(data, 1, b.ParentHash)
	data = AppendInt64(data, 2, b.Height)
	data = AppendInt64(data, 3, b.BlockTime)
	for _, tx := range b.Txs {
		data = AppendMessage(data, 4, tx)
	}
	return data
}

// Unmarshal protobuf decoding
func (b *Block) Unmarshal(data []byte) error {
	*b = Block{}
	return UnmarshalFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			b.ParentHash = f.Bytes()
		case 2:
			b.Height = f.Int64()
		case 3:
			b.BlockTime = f.Int64()
		case 4:
			tx := &Transaction{}
			if err := f.Message(tx); err != nil {
				return err
			}
			b.Txs = append(b.Txs, tx)
		}
		return nil
	})
}

// Hash 区块哈希
func (b *Block) Hash() []byte {
	return common.Sha256(b.Marshal())
}

// Header 本地节点保存的最新区块信息
type Header struct {
	Height    int64
	BlockTime int64
	Hash      []byte
	TxCount   int64
}

// Marshal protobuf encoding
func (h *Header) Marshal() []byte {
	var data []byte
	data = AppendInt64(data, 1, h.Height)
	data = AppendInt64(data, 2, h.BlockTime)
	data = AppendBytes(data, 3, h.Hash)
	data = AppendInt64(data, 4, h.TxCount)
	return data
}

// Unmarshal protobuf decoding
func (h *Header) Unmarshal(data []byte) error {
	*h = Header{}
	return UnmarshalFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			h.Height = f.Int64()
		case 2:
			h.BlockTime = f.Int64()
		case 3:
			h.Hash = f.Bytes()
		case 4:
			h.TxCount = f.Int64()
		}
		return nil
	})
}

// BlockDetail 区块执行的结果: 每笔交易的 receipt 以及要写入数据库的 kv
type BlockDetail struct {
	Block    *Block
	Receipts []*ReceiptData
	// KV 状态数据的修改
	KV []*KeyValue
	// LocalKV 本地索引的修改
	LocalKV []*KeyValue
}
