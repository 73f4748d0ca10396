// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types dice 执行器的交易、状态和 log 格式
package types

import (
	"github.com/33cn/dice/types"
)

func init() {
	types.RegisterLogType(TyLogDiceConfig, "LogDiceConfig")
	types.RegisterLogType(TyLogDiceBet, "LogDiceBet")
	types.RegisterLogType(TyLogDiceWithdraw, "LogDiceWithdraw")
}

// DecodeLog 解析 dice 的 receipt log, 不认识的类型返回 nil
func DecodeLog(ty int32, data []byte) (types.Message, error) {
	var msg types.Message
	switch ty {
	case TyLogDiceConfig:
		msg = &ReceiptDiceConfig{}
	case TyLogDiceBet:
		msg = &BetResult{}
	case TyLogDiceWithdraw:
		msg = &ReceiptDiceWithdraw{}
	default:
		return nil, nil
	}
	if err := types.Decode(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// CheckNumber 点数是否在 1..6
func CheckNumber(n int32) bool {
	return n >= MinNumber && n <= MaxNumber
}
