// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/dice/common"
	dbm "github.com/33cn/dice/common/db"
	cty "github.com/33cn/dice/system/dapp/coins/types"
	"github.com/33cn/dice/types"
)

// ExecLocal 统计每个地址累计收到的金额
func (c *Coins) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(tx, receipt, true)
}

// ExecDelLocal 回滚 ExecLocal 的统计
func (c *Coins) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocal(tx, receipt, false)
}

func (c *Coins) execLocal(tx *types.Transaction, receipt *types.ReceiptData, isadd bool) (*types.LocalDBSet, error) {
	if receipt.GetTy() != types.ExecOk {
		return &types.LocalDBSet{}, nil
	}
	action := &cty.CoinsAction{}
	err := types.Decode(tx.Payload, action)
	if err != nil {
		clog.Error("execLocal", "txHash", common.ToHex(tx.Hash()), "decode action err", err)
		return nil, err
	}
	var amount int64
	switch action.GetTy() {
	case cty.CoinsActionTransfer:
		amount = action.Transfer.Amount
	case cty.CoinsActionGenesis:
		amount = action.Genesis.Amount
	default:
		return nil, types.ErrActionNotSupport
	}
	kv, err := updateAddrReciver(c.GetLocalDB(), tx.To, amount, isadd)
	if err != nil {
		return nil, err
	}
	return &types.LocalDBSet{KV: []*types.KeyValue{kv}}, nil
}

//存储地址上收币的信息
func calcAddrKey(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-coins-Addr:%s", addr))
}

func getAddrReciverKV(addr string, reciverAmount int64) *types.KeyValue {
	reciver := &types.Int64{Data: reciverAmount}
	return &types.KeyValue{Key: calcAddrKey(addr), Value: types.Encode(reciver)}
}

func getAddrReciver(db dbm.KVDB, addr string) (int64, error) {
	reciver := types.Int64{}
	addrReciver, err := db.Get(calcAddrKey(addr))
	if err != nil && err != types.ErrNotFound {
		return 0, err
	}
	if len(addrReciver) == 0 {
		return 0, nil
	}
	err = types.Decode(addrReciver, &reciver)
	if err != nil {
		return 0, err
	}
	return reciver.Data, nil
}

func updateAddrReciver(cachedb dbm.KVDB, addr string, amount int64, isadd bool) (*types.KeyValue, error) {
	recv, err := getAddrReciver(cachedb, addr)
	if err != nil {
		return nil, err
	}
	if isadd {
		recv += amount
	} else {
		recv -= amount
	}
	kv := getAddrReciverKV(addr, recv)
	if err := cachedb.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return kv, nil
}
