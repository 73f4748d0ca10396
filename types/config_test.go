// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = `
Title = "local"

[log]
loglevel = "debug"
logFile = "logs/dice.log"
maxBackups = 10

[store]
driver = "memdb"

[exec.sub.dice]
entropy = "hmac"
serverSeed = "seed"
defaultMinBet = 100

[exec.sub.coins]
genesis = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"

[metrics]
enableMetrics = true
`

func TestInitCfgString(t *testing.T) {
	cfg, err := InitCfgString(testConfig)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, "logs/dice.log", cfg.Log.LogFile)
	assert.Equal(t, uint32(10), cfg.Log.MaxBackups)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	//没有配置的使用默认值
	assert.Equal(t, "dice", cfg.Store.Name)
	assert.Equal(t, "datadir", cfg.Store.DbPath)
	assert.Equal(t, int32(128), cfg.Store.DbCache)
	assert.True(t, cfg.Metrics.EnableMetrics)
	assert.Equal(t, "log", cfg.Metrics.DataEmitMode)
	assert.Equal(t, int64(60), cfg.Metrics.Duration)

	sub := cfg.Exec.SubConfig()
	require.Len(t, sub, 2)
	var dice struct {
		Entropy       string `json:"entropy"`
		ServerSeed    string `json:"serverSeed"`
		DefaultMinBet int64  `json:"defaultMinBet"`
	}
	MustDecode(sub["dice"], &dice)
	assert.Equal(t, "hmac", dice.Entropy)
	assert.Equal(t, "seed", dice.ServerSeed)
	assert.Equal(t, int64(100), dice.DefaultMinBet)

	//没有子配置时不修改
	dice.Entropy = "hash"
	MustDecode(sub["none"], &dice)
	assert.Equal(t, "hash", dice.Entropy)
	assert.Panics(t, func() { MustDecode([]byte("{"), &dice) })
}

func TestInitCfg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dice.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(testConfig), 0600))
	cfg, err := InitCfg(path)
	require.NoError(t, err)
	assert.Equal(t, "memdb", cfg.Store.Driver)

	_, err = InitCfg(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
	_, err = InitCfgString("[store")
	assert.Error(t, err)
}

func TestLoadCfg(t *testing.T) {
	cfg, err := LoadCfg("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "dice.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(testConfig), 0600))
	cfg, err = LoadCfg(path)
	require.NoError(t, err)
	assert.Equal(t, "memdb", cfg.Store.Driver)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.NotNil(t, cfg.Log)
	assert.False(t, cfg.Metrics.EnableMetrics)
	assert.Empty(t, cfg.Exec.SubConfig())
}
