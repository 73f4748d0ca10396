// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	drivers "github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
)

var execerCoins = []byte("coins")

/*
写权限规则:
1. coins 可以修改所有账户
2. 执行器可以修改自己名下的 key
3. 注册过的执行器可以通过主币账户转账，也就是修改 mavl-coins- 下面的账户
*/
func isAllowKeyWrite(key, execer []byte, height int64) bool {
	keyExecer, err := types.FindExecer(key)
	if err != nil {
		elog.Error("find execer ", "err", err, "key", string(key))
		return false
	}
	if bytes.Equal(execer, execerCoins) {
		return true
	}
	if bytes.Equal(keyExecer, execer) {
		return true
	}
	if bytes.Equal(keyExecer, execerCoins) {
		_, err := drivers.LoadDriver(string(execer), height)
		return err == nil
	}
	return false
}

func isAllowLocalKey(execer []byte, key []byte) error {
	prefix := types.CalcLocalPrefix(execer)
	if len(key) <= len(prefix) {
		elog.Error("isAllowLocalKey too short", "key", string(key), "exec", string(execer))
		return types.ErrLocalKeyLen
	}
	if !bytes.HasPrefix(key, prefix) {
		elog.Error("isAllowLocalKey prefix not match", "key", string(key), "exec", string(execer))
		return types.ErrLocalPrefix
	}
	return nil
}
