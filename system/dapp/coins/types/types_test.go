// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/dice/common/address"
	"github.com/33cn/dice/types"
	"github.com/stretchr/testify/assert"
)

func TestDecodeConfig(t *testing.T) {
	assert.Equal(t, types.GenesisAddr, DecodeConfig(nil).Genesis)
	assert.Equal(t, types.GenesisAddr, DecodeConfig([]byte(`{}`)).Genesis)

	addr := address.LabelAddress("genesis")
	cfg, err := types.InitCfgString(`
[exec.sub.coins]
genesis = "` + addr + `"
`)
	assert.NoError(t, err)
	assert.Equal(t, addr, DecodeConfig(cfg.Exec.SubConfig()[CoinsX]).Genesis)
}
