// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/dice/types"
)

// DiceConfig 游戏配置，每个部署只有一份，保存在 state db
type DiceConfig struct {
	Admin        string `json:"admin"`
	RewardFactor int64  `json:"rewardFactor"`
	IsPaused     bool   `json:"isPaused"`
	Mode         int32  `json:"mode"`
	MinBet       int64  `json:"minBet"`
	MaxBet       int64  `json:"maxBet"`
}

// Marshal protobuf encoding
func (m *DiceConfig) Marshal() []byte {
	var data []byte
	data = types.AppendString(data, 1, m.Admin)
	data = types.AppendInt64(data, 2, m.RewardFactor)
	data = types.AppendBool(data, 3, m.IsPaused)
	data = types.AppendInt64(data, 4, int64(m.Mode))
	data = types.AppendInt64(data, 5, m.MinBet)
	data = types.AppendInt64(data, 6, m.MaxBet)
	return data
}

// Unmarshal protobuf decoding
func (m *DiceConfig) Unmarshal(data []byte) error {
	*m = DiceConfig{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Admin = f.String()
		case 2:
			m.RewardFactor = f.Int64()
		case 3:
			m.IsPaused = f.Bool()
		case 4:
			m.Mode = f.Int32()
		case 5:
			m.MinBet = f.Int64()
		case 6:
			m.MaxBet = f.Int64()
		}
		return nil
	})
}

// BetResult 一次下注的结果，写入 receipt 之后不再修改
type BetResult struct {
	Player       string `json:"player"`
	Amount       int64  `json:"amount"`
	ChosenNumber int32  `json:"chosenNumber"`
	DrawnNumber  int32  `json:"drawnNumber"`
	Payout       int64  `json:"payout"`
	Won          bool   `json:"won"`
	Timestamp    int64  `json:"timestamp"`
	TxHash       string `json:"txHash"`
	Height       int64  `json:"height"`
	Index        int64  `json:"index"`
}

// Marshal protobuf encoding
func (m *BetResult) Marshal() []byte {
	var data []byte
	data = types.AppendString(data, 1, m.Player)
	data = types.AppendInt64(data, 2, m.Amount)
	data = types.AppendInt64(data, 3, int64(m.ChosenNumber))
	data = types.AppendInt64(data, 4, int64(m.DrawnNumber))
	data = types.AppendInt64(data, 5, m.Payout)
	data = types.AppendBool(data, 6, m.Won)
	data = types.AppendInt64(data, 7, m.Timestamp)
	data = types.AppendString(data, 8, m.TxHash)
	data = types.AppendInt64(data, 9, m.Height)
	data = types.AppendInt64(data, 10, m.Index)
	return data
}

// Unmarshal protobuf decoding
func (m *BetResult) Unmarshal(data []byte) error {
	*m = BetResult{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Player = f.String()
		case 2:
			m.Amount = f.Int64()
		case 3:
			m.ChosenNumber = f.Int32()
		case 4:
			m.DrawnNumber = f.Int32()
		case 5:
			m.Payout = f.Int64()
		case 6:
			m.Won = f.Bool()
		case 7:
			m.Timestamp = f.Int64()
		case 8:
			m.TxHash = f.String()
		case 9:
			m.Height = f.Int64()
		case 10:
			m.Index = f.Int64()
		}
		return nil
	})
}

// ReceiptDiceConfig 配置修改的 log
type ReceiptDiceConfig struct {
	Prev    *DiceConfig `json:"prev,omitempty"`
	Current *DiceConfig `json:"current"`
}

// Marshal protobuf encoding
func (m *ReceiptDiceConfig) Marshal() []byte {
	var data []byte
	if m.Prev != nil {
		data = types.AppendMessage(data, 1, m.Prev)
	}
	if m.Current != nil {
		data = types.AppendMessage(data, 2, m.Current)
	}
	return data
}

// Unmarshal protobuf decoding
func (m *ReceiptDiceConfig) Unmarshal(data []byte) error {
	*m = ReceiptDiceConfig{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Prev = &DiceConfig{}
			return f.Message(m.Prev)
		case 2:
			m.Current = &DiceConfig{}
			return f.Message(m.Current)
		}
		return nil
	})
}

// ReceiptDiceWithdraw 管理员提取金库的 log
type ReceiptDiceWithdraw struct {
	Admin       string `json:"admin"`
	Amount      int64  `json:"amount"`
	VaultBefore int64  `json:"vaultBefore"`
	VaultAfter  int64  `json:"vaultAfter"`
}

// Marshal protobuf encoding
func (m *ReceiptDiceWithdraw) Marshal() []byte {
	var data []byte
	data = types.AppendString(data, 1, m.Admin)
	data = types.AppendInt64(data, 2, m.Amount)
	data = types.AppendInt64(data, 3, m.VaultBefore)
	data = types.AppendInt64(data, 4, m.VaultAfter)
	return data
}

// Unmarshal protobuf decoding
func (m *ReceiptDiceWithdraw) Unmarshal(data []byte) error {
	*m = ReceiptDiceWithdraw{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Admin = f.String()
		case 2:
			m.Amount = f.Int64()
		case 3:
			m.VaultBefore = f.Int64()
		case 4:
			m.VaultAfter = f.Int64()
		}
		return nil
	})
}

// DiceStats 下注统计，只保存在本地数据库
type DiceStats struct {
	TotalBets    int64 `json:"totalBets"`
	TotalWins    int64 `json:"totalWins"`
	TotalStaked  int64 `json:"totalStaked"`
	TotalPaidOut int64 `json:"totalPaidOut"`
}

// Marshal protobuf encoding
func (m *DiceStats) Marshal() []byte {
	var data []byte
	data = types.AppendInt64(data, 1, m.TotalBets)
	data = types.AppendInt64(data, 2, m.TotalWins)
	data = types.AppendInt64(data, 3, m.TotalStaked)
	data = types.AppendInt64(data, 4, m.TotalPaidOut)
	return data
}

// Unmarshal protobuf decoding
func (m *DiceStats) Unmarshal(data []byte) error {
	*m = DiceStats{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.TotalBets = f.Int64()
		case 2:
			m.TotalWins = f.Int64()
		case 3:
			m.TotalStaked = f.Int64()
		case 4:
			m.TotalPaidOut = f.Int64()
		}
		return nil
	})
}

// Add 累加一次下注，remove 为 true 时撤销
func (m *DiceStats) Add(r *BetResult, remove bool) {
	sign := int64(1)
	if remove {
		sign = -1
	}
	m.TotalBets += sign
	m.TotalStaked += sign * r.Amount
	if r.Won {
		m.TotalWins += sign
		m.TotalPaidOut += sign * r.Payout
	}
}
