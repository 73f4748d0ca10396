// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	dty "github.com/33cn/dice/plugin/dapp/dice/types"
)

/*
state db:
  mavl-dice-config                     -> DiceConfig

local db (index = height*MaxTxsPerBlock + txindex):
  LODB-dice-bet:{index}                -> BetResult
  LODB-dice-bet-addr:{addr}:{index}    -> BetResult
  LODB-dice-stats                      -> DiceStats
  LODB-dice-stats-addr:{addr}          -> DiceStats
*/

// ConfigKey 配置在 state db 中的 key
func ConfigKey() []byte {
	return []byte("mavl-" + dty.DiceX + "-config")
}

func calcIndexSuffix(index int64) string {
	return fmt.Sprintf("%018d", index)
}

func calcBetPrefix() []byte {
	return []byte("LODB-dice-bet:")
}

func calcBetKey(index int64) []byte {
	return []byte(fmt.Sprintf("LODB-dice-bet:%s", calcIndexSuffix(index)))
}

func calcBetAddrPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-dice-bet-addr:%s:", addr))
}

func calcBetAddrKey(addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-dice-bet-addr:%s:%s", addr, calcIndexSuffix(index)))
}

func calcStatsKey(addr string) []byte {
	if addr == "" {
		return []byte("LODB-dice-stats")
	}
	return []byte(fmt.Sprintf("LODB-dice-stats-addr:%s", addr))
}
