// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/33cn/dice/common/address"
	_ "github.com/33cn/dice/plugin/dapp/dice"
	"github.com/33cn/dice/plugin/dapp/dice/commands"
	_ "github.com/33cn/dice/system/dapp/coins"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin   = address.LabelAddress("cli-admin")
	player  = address.LabelAddress("cli-player")
	genesis = address.LabelAddress("cli-genesis")
)

type cli struct {
	t    *testing.T
	conf string
}

func newCli(t *testing.T) *cli {
	dir := t.TempDir()
	conf := filepath.Join(dir, "dice.toml")
	data := fmt.Sprintf(`
Title = "local"
[log]
loglevel = "crit"
[store]
driver = "goleveldb"
dbPath = %q
[exec.sub.coins]
genesis = %q
[exec.sub.dice]
entropy = "hash"
`, filepath.Join(dir, "datadir"), genesis)
	require.NoError(t, ioutil.WriteFile(conf, []byte(data), 0600))
	return &cli{t: t, conf: conf}
}

func (c *cli) run(args ...string) (string, string) {
	root := &cobra.Command{Use: "dice-cli"}
	root.PersistentFlags().String("conf", c.conf, "config file")
	root.AddCommand(commands.DiceCmd())
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"dice"}, args...))
	require.NoError(c.t, root.Execute())
	return out.String(), errOut.String()
}

type txOutput struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
	Logs  []struct {
		TyName string          `json:"tyName"`
		Log    json.RawMessage `json:"log"`
	} `json:"logs"`
}

func (c *cli) send(args ...string) *txOutput {
	out, errOut := c.run(args...)
	require.Empty(c.t, errOut)
	var tx txOutput
	require.NoError(c.t, json.Unmarshal([]byte(out), &tx), out)
	return &tx
}

func (c *cli) balance(addr string) int64 {
	args := []string{"balance"}
	if addr != "" {
		args = append(args, "-a", addr)
	}
	out, _ := c.run(args...)
	var acc struct {
		Balance string `json:"balance"`
	}
	require.NoError(c.t, json.Unmarshal([]byte(out), &acc), out)
	v, err := commands.ParseAmount(acc.Balance)
	require.NoError(c.t, err)
	return v
}

func TestDiceCommands(t *testing.T) {
	c := newCli(t)
	require.True(t, c.send("faucet", "-a", admin, "-m", "100").Ok)
	require.True(t, c.send("faucet", "-a", player, "-m", "50").Ok)
	require.True(t, c.send("init", "-a", admin, "-r", "200", "--min", "1", "--max", "10").Ok)
	require.True(t, c.send("deposit", "-a", admin, "-m", "50").Ok)
	assert.Equal(t, int64(50e8), c.balance(""))

	tx := c.send("bet", "-a", player, "-n", "3", "-m", "5")
	require.True(t, tx.Ok, tx.Error)
	last := tx.Logs[len(tx.Logs)-1]
	assert.Equal(t, "LogDiceBet", last.TyName)
	var result struct {
		Won    bool  `json:"won"`
		Payout int64 `json:"payout"`
	}
	require.NoError(t, json.Unmarshal(last.Log, &result))
	expect := int64(45e8)
	if result.Won {
		assert.Equal(t, int64(10e8), result.Payout)
		expect = 55e8
	}
	assert.Equal(t, expect, c.balance(player))
	assert.Equal(t, int64(100e8), c.balance(player)+c.balance(""))

	tx = c.send("bet", "-a", player, "-n", "3", "-m", "11")
	assert.False(t, tx.Ok)
	assert.Equal(t, "ErrInvalidBetAmount", tx.Error)
	tx = c.send("pause", "-a", player)
	assert.Equal(t, "ErrUnauthorized", tx.Error)
	require.True(t, c.send("pause", "-a", admin).Ok)
	assert.Equal(t, "ErrGamePaused", c.send("bet", "-a", player, "-n", "3", "-m", "5").Error)
	require.True(t, c.send("unpause", "-a", admin).Ok)
	require.True(t, c.send("set-reward", "-a", admin, "-r", "300").Ok)
	require.True(t, c.send("set-limits", "-a", admin, "--min", "2", "--max", "20").Ok)

	out, _ := c.run("config")
	var config struct {
		Admin        string `json:"admin"`
		RewardFactor int64  `json:"rewardFactor"`
		MinBet       int64  `json:"minBet"`
		MaxBet       int64  `json:"maxBet"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &config))
	assert.Equal(t, admin, config.Admin)
	assert.Equal(t, int64(300), config.RewardFactor)
	assert.Equal(t, int64(2e8), config.MinBet)
	assert.Equal(t, int64(20e8), config.MaxBet)

	out, _ = c.run("results", "-p", player)
	var results struct {
		Results []json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results.Results, 1)

	out, _ = c.run("stats")
	var stats struct {
		TotalBets   int64 `json:"totalBets"`
		TotalStaked int64 `json:"totalStaked"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, int64(1), stats.TotalBets)
	assert.Equal(t, int64(5e8), stats.TotalStaked)

	vault := c.balance("")
	require.True(t, c.send("withdraw", "-a", admin, "-m", "1").Ok)
	assert.Equal(t, vault-1e8, c.balance(""))
	assert.Equal(t, int64(51e8), c.balance(admin))
}

func TestDiceCommandsBadInput(t *testing.T) {
	c := newCli(t)
	_, errOut := c.run("bet", "-a", player, "-n", "3", "-m", "x")
	assert.Contains(t, errOut, "ErrAmount")
	_, errOut = c.run("init", "-a", admin, "-r", "200", "-m", "other")
	assert.Contains(t, errOut, "ErrInvalidMode")
	_, errOut = c.run("bet", "-a", "not-an-address", "-n", "3", "-m", "1")
	assert.Contains(t, errOut, "ErrInvalidAddress")
	_, errOut = c.run("config")
	assert.Contains(t, errOut, "ErrNotInitialized")
}
