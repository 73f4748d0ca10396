// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cty "github.com/33cn/dice/system/dapp/coins/types"
	"github.com/33cn/dice/types"
)

func (c *Coins) execTransfer(transfer *cty.AssetsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if tx.To == "" {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().Transfer(tx.From, tx.To, transfer.Amount)
}

// 创世区块可以任意发币，之后只有配置的发币地址可以
func (c *Coins) execGenesis(genesis *cty.AssetsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if c.GetHeight() != 0 && tx.From != cfg.Genesis {
		clog.Error("execGenesis", "from", tx.From, "height", c.GetHeight(), "err", types.ErrNoPrivilege)
		return nil, types.ErrNoPrivilege
	}
	if tx.To == "" {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().GenesisInit(tx.To, genesis.Amount)
}
