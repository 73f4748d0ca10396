// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的交易格式
package types

import (
	"github.com/33cn/dice/types"
)

// action type
const (
	CoinsActionTransfer = 1
	CoinsActionGenesis  = 2
)

var (
	// CoinsX 执行器名
	CoinsX = "coins"
	// ExecerCoins coins 执行器
	ExecerCoins = []byte(CoinsX)
)

// CoinsConfig [exec.sub.coins]
type CoinsConfig struct {
	// 创世之后唯一可以发币的地址
	Genesis string `json:"genesis"`
}

// DecodeConfig 解析子配置, 未配置发币地址时使用 types.GenesisAddr
func DecodeConfig(sub []byte) CoinsConfig {
	cfg := CoinsConfig{}
	types.MustDecode(sub, &cfg)
	if cfg.Genesis == "" {
		cfg.Genesis = types.GenesisAddr
	}
	return cfg
}

// CoinsAction coins 交易的 payload
type CoinsAction struct {
	Ty       int32
	Transfer *AssetsTransfer
	Genesis  *AssetsGenesis
}

// GetTy action type
func (m *CoinsAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// Marshal protobuf encoding
func (m *CoinsAction) Marshal() []byte {
	var data []byte
	data = types.AppendInt64(data, 1, int64(m.Ty))
	if m.Transfer != nil {
		data = types.AppendMessage(data, 2, m.Transfer)
	}
	if m.Genesis != nil {
		data = types.AppendMessage(data, 3, m.Genesis)
	}
	return data
}

// Unmarshal protobuf decoding
func (m *CoinsAction) Unmarshal(data []byte) error {
	*m = CoinsAction{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Ty = f.Int32()
		case 2:
			m.Transfer = &AssetsTransfer{}
			return f.Message(m.Transfer)
		case 3:
			m.Genesis = &AssetsGenesis{}
			return f.Message(m.Genesis)
		}
		return nil
	})
}

// AssetsTransfer 转账，收款人是 tx.To
type AssetsTransfer struct {
	Amount int64
	Note   string
}

// Marshal protobuf encoding
func (m *AssetsTransfer) Marshal() []byte {
	var data []byte
	data = types.AppendInt64(data, 1, m.Amount)
	data = types.AppendString(data, 2, m.Note)
	return data
}

// Unmarshal protobuf decoding
func (m *AssetsTransfer) Unmarshal(data []byte) error {
	*m = AssetsTransfer{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Amount = f.Int64()
		case 2:
			m.Note = f.String()
		}
		return nil
	})
}

// AssetsGenesis 发币，收款人是 tx.To
type AssetsGenesis struct {
	Amount int64
}

// Marshal protobuf encoding
func (m *AssetsGenesis) Marshal() []byte {
	return types.AppendInt64(nil, 1, m.Amount)
}

// Unmarshal protobuf decoding
func (m *AssetsGenesis) Unmarshal(data []byte) error {
	*m = AssetsGenesis{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		if f.Num == 1 {
			m.Amount = f.Int64()
		}
		return nil
	})
}

// CreateTransferTx 创建转账交易
func CreateTransferTx(from, to string, amount int64, note string, nonce int64) *types.Transaction {
	action := &CoinsAction{Ty: CoinsActionTransfer, Transfer: &AssetsTransfer{Amount: amount, Note: note}}
	tx := types.CreateTx(CoinsX, action, from, nonce)
	tx.To = to
	return tx
}

// CreateGenesisTx 创建发币交易，from 必须是配置的发币地址
func CreateGenesisTx(from, to string, amount int64, nonce int64) *types.Transaction {
	action := &CoinsAction{Ty: CoinsActionGenesis, Genesis: &AssetsGenesis{Amount: amount}}
	tx := types.CreateTx(CoinsX, action, from, nonce)
	tx.To = to
	return tx
}
