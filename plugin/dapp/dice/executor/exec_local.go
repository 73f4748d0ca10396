// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/dice/common/db"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
	metrics "github.com/rcrowley/go-metrics"
)

// 只统计已经提交的下注, 区块回滚时减掉
var (
	betCounter    = metrics.GetOrRegisterCounter("dice.bet.count", nil)
	winCounter    = metrics.GetOrRegisterCounter("dice.bet.win", nil)
	stakeCounter  = metrics.GetOrRegisterCounter("dice.bet.staked", nil)
	payoutCounter = metrics.GetOrRegisterCounter("dice.bet.payout", nil)
)

// ExecLocal 从下注结果建立本地索引和统计
func (d *Dice) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.execLocal(receipt, false)
}

// ExecDelLocal 删除 ExecLocal 建立的索引，统计减去对应的下注
func (d *Dice) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.execLocal(receipt, true)
}

func (d *Dice) execLocal(receipt *types.ReceiptData, remove bool) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != dty.TyLogDiceBet {
			continue
		}
		var result dty.BetResult
		if err := types.Decode(item.Log, &result); err != nil {
			panic(err) //数据错误了，已经被修改了
		}
		kvs, err := d.updateIndex(&result, remove)
		if err != nil {
			return nil, err
		}
		set.KV = append(set.KV, kvs...)
		countBet(&result, remove)
	}
	return set, nil
}

func countBet(result *dty.BetResult, remove bool) {
	n := int64(1)
	if remove {
		n = -1
	}
	betCounter.Inc(n)
	stakeCounter.Inc(n * result.Amount)
	if result.Won {
		winCounter.Inc(n)
		payoutCounter.Inc(n * result.Payout)
	}
}

func (d *Dice) updateIndex(result *dty.BetResult, remove bool) (kvs []*types.KeyValue, err error) {
	var value []byte
	if !remove {
		value = types.Encode(result)
	}
	//value置nil,提交时，会自动执行删除操作
	kvs = append(kvs, &types.KeyValue{Key: calcBetKey(result.Index), Value: value})
	kvs = append(kvs, &types.KeyValue{Key: calcBetAddrKey(result.Player, result.Index), Value: value})
	for _, addr := range []string{"", result.Player} {
		stats, err := getStats(d.GetLocalDB(), addr)
		if err != nil {
			return nil, err
		}
		stats.Add(result, remove)
		kvs = append(kvs, &types.KeyValue{Key: calcStatsKey(addr), Value: types.Encode(stats)})
	}
	return kvs, nil
}

func getStats(db dbm.KVDB, addr string) (*dty.DiceStats, error) {
	stats := &dty.DiceStats{}
	value, err := db.Get(calcStatsKey(addr))
	if err == types.ErrNotFound {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	if err := types.Decode(value, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
