// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dice 骰子游戏插件: 玩家押 1..6 中的一个点数，猜中按赔率从金库派奖
package dice

import (
	"github.com/33cn/dice/plugin/dapp/dice/commands"
	"github.com/33cn/dice/plugin/dapp/dice/executor"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "dice",
		ExecName: dty.DiceX,
		Exec:     executor.Init,
		Cmd:      commands.DiceCmd,
	})
}
