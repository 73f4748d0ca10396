// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供两种操作：
Transfer -> 转移资产
Genesis  -> 发行资产，只有配置的发币地址可以调用
*/

import (
	drivers "github.com/33cn/dice/system/dapp"
	cty "github.com/33cn/dice/system/dapp/coins/types"
	"github.com/33cn/dice/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")
var driverName = cty.CoinsX

var cfg = cty.CoinsConfig{Genesis: types.GenesisAddr}

// Init 注册 coins 执行器
func Init(name string, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	cfg = cty.DecodeConfig(sub)
	drivers.Register(driverName, newCoins, 0)
}

// Coins 主币执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	return &Coins{}
}

// GetDriverName 驱动名
func (c *Coins) GetDriverName() string {
	return driverName
}

// Exec 执行 coins 交易
func (c *Coins) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	action := &cty.CoinsAction{}
	if err := types.Decode(tx.Payload, action); err != nil {
		return nil, err
	}
	switch action.GetTy() {
	case cty.CoinsActionTransfer:
		if action.Transfer == nil {
			return nil, types.ErrInvalidParam
		}
		return c.execTransfer(action.Transfer, tx, index)
	case cty.CoinsActionGenesis:
		if action.Genesis == nil {
			return nil, types.ErrInvalidParam
		}
		return c.execGenesis(action.Genesis, tx, index)
	}
	return nil, types.ErrActionNotSupport
}
