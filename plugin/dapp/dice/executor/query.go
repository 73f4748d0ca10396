// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
)

// Query GetConfig, GetVault, GetBetResults, GetStats
func (d *Dice) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case "GetConfig":
		config, err := getConfig(d.GetStateDB())
		if err != nil {
			return nil, err
		}
		return config, nil
	case "GetVault":
		acc := d.GetCoinsAccount().ExecAccount(dty.DiceX)
		return &dty.ReplyVault{Addr: address.ExecAddress(dty.DiceX), Balance: acc.Balance}, nil
	case "GetBetResults":
		var req dty.ReqBetResults
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return d.getBetResults(&req)
	case "GetStats":
		var req types.ReqAddr
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		stats, err := getStats(d.GetLocalDB(), req.Addr)
		if err != nil {
			return nil, err
		}
		return stats, nil
	}
	return nil, types.ErrQueryNotSupport
}

func (d *Dice) getBetResults(req *dty.ReqBetResults) (types.Message, error) {
	switch req.Direction {
	case dbm.ListDESC, dbm.ListASC:
	case dbm.ListSeek:
		if req.Cursor == "" {
			return nil, types.ErrInvalidParam
		}
	default:
		return nil, types.ErrInvalidParam
	}
	count := req.Count
	if count <= 0 || count > cfg.MaxListCount {
		count = cfg.MaxListCount
	}
	prefix := calcBetPrefix()
	if req.Player != "" {
		if err := address.CheckAddress(req.Player); err != nil {
			return nil, types.ErrInvalidAddress
		}
		prefix = calcBetAddrPrefix(req.Player)
	}
	var key []byte
	if req.Cursor != "" {
		key = append(append(key, prefix...), req.Cursor...)
	}
	reply := &dty.ReplyBetResults{}
	if req.Direction == dbm.ListSeek {
		//定位到 cursor 或它之前最近的一条记录, 返回 key 和 value
		count = 1
	}
	values, err := d.GetLocalDB().List(prefix, key, count, req.Direction)
	if err == types.ErrNotFound {
		return reply, nil
	}
	if err != nil {
		return nil, err
	}
	if req.Direction == dbm.ListSeek {
		values = values[1:]
	}
	for _, value := range values {
		var r dty.BetResult
		if err := types.Decode(value, &r); err != nil {
			return nil, err
		}
		reply.Results = append(reply.Results, &r)
	}
	if req.Direction != dbm.ListSeek && int32(len(reply.Results)) == count {
		reply.NextCursor = calcIndexSuffix(reply.Results[len(reply.Results)-1].Index)
	}
	return reply, nil
}
