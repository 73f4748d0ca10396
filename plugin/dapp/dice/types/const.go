// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//dice action ty
const (
	DiceActionInitialize = iota + 1
	DiceActionPlaceBet
	DiceActionSetRewardFactor
	DiceActionSetPaused
	DiceActionWithdraw
	DiceActionSetBetLimits
)

// log ty
const (
	TyLogDiceConfig   = 1501
	TyLogDiceBet      = 1502
	TyLogDiceWithdraw = 1503
)

// 下注金额的检查方式
const (
	// ModeBoundsEnforced 金额必须在 [MinBet, MaxBet] 之内
	ModeBoundsEnforced = int32(1)
	// ModeUnbounded 金额只需要大于 0
	ModeUnbounded = int32(2)
)

// 骰子点数
const (
	MinNumber = int32(1)
	MaxNumber = int32(6)
)

// 默认下注范围，单位和账户余额相同
const (
	DefaultMinBet = int64(1000000)
	DefaultMaxBet = int64(100000000)
)

const (
	// DiceX 执行器名
	DiceX = "dice"
)

var (
	// ExecerDice dice
	ExecerDice = []byte(DiceX)
)
