// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 主币插件
package coins

import (
	"github.com/33cn/dice/pluginmgr"
	"github.com/33cn/dice/system/dapp/coins/executor"
	cty "github.com/33cn/dice/system/dapp/coins/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "coins",
		ExecName: cty.CoinsX,
		Exec:     executor.Init,
	})
}
