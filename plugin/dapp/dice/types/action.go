// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/dice/types"
)

// DiceAction dice 交易的 payload, Ty 决定使用哪个字段
type DiceAction struct {
	Ty        int32                `json:"ty"`
	Init      *DiceInitialize      `json:"init,omitempty"`
	Bet       *DicePlaceBet        `json:"bet,omitempty"`
	Reward    *DiceSetRewardFactor `json:"reward,omitempty"`
	Pause     *DiceSetPaused       `json:"pause,omitempty"`
	Withdraw  *DiceWithdraw        `json:"withdraw,omitempty"`
	BetLimits *DiceSetBetLimits    `json:"betLimits,omitempty"`
}

// GetTy action type
func (m *DiceAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// Marshal protobuf encoding
func (m *DiceAction) Marshal() []byte {
	var data []byte
	data = types.AppendInt64(data, 1, int64(m.Ty))
	if m.Init != nil {
		data = types.AppendMessage(data, 2, m.Init)
	}
	if m.Bet != nil {
		data = types.AppendMessage(data, 3, m.Bet)
	}
	if m.Reward != nil {
		data = types.AppendMessage(data, 4, m.Reward)
	}
	if m.Pause != nil {
		data = types.AppendMessage(data, 5, m.Pause)
	}
	if m.Withdraw != nil {
		data = types.AppendMessage(data, 6, m.Withdraw)
	}
	if m.BetLimits != nil {
		data = types.AppendMessage(data, 7, m.BetLimits)
	}
	return data
}

// Unmarshal protobuf decoding
func (m *DiceAction) Unmarshal(data []byte) error {
	*m = DiceAction{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Ty = f.Int32()
		case 2:
			m.Init = &DiceInitialize{}
			return f.Message(m.Init)
		case 3:
			m.Bet = &DicePlaceBet{}
			return f.Message(m.Bet)
		case 4:
			m.Reward = &DiceSetRewardFactor{}
			return f.Message(m.Reward)
		case 5:
			m.Pause = &DiceSetPaused{}
			return f.Message(m.Pause)
		case 6:
			m.Withdraw = &DiceWithdraw{}
			return f.Message(m.Withdraw)
		case 7:
			m.BetLimits = &DiceSetBetLimits{}
			return f.Message(m.BetLimits)
		}
		return nil
	})
}

// DiceInitialize 创建配置，发送者成为管理员
type DiceInitialize struct {
	RewardFactor int64 `json:"rewardFactor"`
	Mode         int32 `json:"mode"`
	MinBet       int64 `json:"minBet"`
	MaxBet       int64 `json:"maxBet"`
}

// Marshal protobuf encoding
func (m *DiceInitialize) Marshal() []byte {
	var data []byte
	data = types.AppendInt64(data, 1, m.RewardFactor)
	data = types.AppendInt64(data, 2, int64(m.Mode))
	data = types.AppendInt64(data, 3, m.MinBet)
	data = types.AppendInt64(data, 4, m.MaxBet)
	return data
}

// Unmarshal protobuf decoding
func (m *DiceInitialize) Unmarshal(data []byte) error {
	*m = DiceInitialize{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.RewardFactor = f.Int64()
		case 2:
			m.Mode = f.Int32()
		case 3:
			m.MinBet = f.Int64()
		case 4:
			m.MaxBet = f.Int64()
		}
		return nil
	})
}

// DicePlaceBet 下注
type DicePlaceBet struct {
	Number int32 `json:"number"`
	Amount int64 `json:"amount"`
}

// Marshal protobuf encoding
func (m *DicePlaceBet) Marshal() []byte {
	var data []byte
	data = types.AppendInt64(data, 1, int64(m.Number))
	data = types.AppendInt64(data, 2, m.Amount)
	return data
}

// Unmarshal protobuf decoding
func (m *DicePlaceBet) Unmarshal(data []byte) error {
	*m = DicePlaceBet{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Number = f.Int32()
		case 2:
			m.Amount = f.Int64()
		}
		return nil
	})
}

// DiceSetRewardFactor 修改赔率
type DiceSetRewardFactor struct {
	RewardFactor int64 `json:"rewardFactor"`
}

// Marshal protobuf encoding
func (m *DiceSetRewardFactor) Marshal() []byte {
	return types.AppendInt64(nil, 1, m.RewardFactor)
}

// Unmarshal protobuf decoding
func (m *DiceSetRewardFactor) Unmarshal(data []byte) error {
	*m = DiceSetRewardFactor{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		if f.Num == 1 {
			m.RewardFactor = f.Int64()
		}
		return nil
	})
}

// DiceSetPaused 暂停或者恢复下注
type DiceSetPaused struct {
	Paused bool `json:"paused"`
}

// Marshal protobuf encoding
func (m *DiceSetPaused) Marshal() []byte {
	return types.AppendBool(nil, 1, m.Paused)
}

// Unmarshal protobuf decoding
func (m *DiceSetPaused) Unmarshal(data []byte) error {
	*m = DiceSetPaused{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		if f.Num == 1 {
			m.Paused = f.Bool()
		}
		return nil
	})
}

// DiceWithdraw 管理员从金库提取
type DiceWithdraw struct {
	Amount int64 `json:"amount"`
}

// Marshal protobuf encoding
func (m *DiceWithdraw) Marshal() []byte {
	return types.AppendInt64(nil, 1, m.Amount)
}

// Unmarshal protobuf decoding
func (m *DiceWithdraw) Unmarshal(data []byte) error {
	*m = DiceWithdraw{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		if f.Num == 1 {
			m.Amount = f.Int64()
		}
		return nil
	})
}

// DiceSetBetLimits 修改下注范围，只在 ModeBoundsEnforced 下有效
type DiceSetBetLimits struct {
	MinBet int64 `json:"minBet"`
	MaxBet int64 `json:"maxBet"`
}

// Marshal protobuf encoding
func (m *DiceSetBetLimits) Marshal() []byte {
	var data []byte
	data = types.AppendInt64(data, 1, m.MinBet)
	data = types.AppendInt64(data, 2, m.MaxBet)
	return data
}

// Unmarshal protobuf decoding
func (m *DiceSetBetLimits) Unmarshal(data []byte) error {
	*m = DiceSetBetLimits{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.MinBet = f.Int64()
		case 2:
			m.MaxBet = f.Int64()
		}
		return nil
	})
}

// CreateDiceTx 创建 dice 交易
func CreateDiceTx(from string, action *DiceAction, nonce int64) *types.Transaction {
	return types.CreateTx(DiceX, action, from, nonce)
}
