// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	drivers "github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
	log "github.com/inconshreveable/log15"
)

var dlog = log.New("module", "execs.dice")

// subConfig [exec.sub.dice]
type subConfig struct {
	// blocktime, hash, hmac
	Entropy    string `json:"entropy"`
	ServerSeed string `json:"serverSeed"`
	// initialize 时没有给出下注范围则使用默认值
	DefaultMinBet int64 `json:"defaultMinBet"`
	DefaultMaxBet int64 `json:"defaultMaxBet"`
	MaxListCount  int32 `json:"maxListCount"`
}

var (
	cfg     = defaultConfig()
	entropy EntropySource = hashEntropy{}
)

func defaultConfig() subConfig {
	return subConfig{
		Entropy:       EntropyHash,
		DefaultMinBet: dty.DefaultMinBet,
		DefaultMaxBet: dty.DefaultMaxBet,
		MaxListCount:  types.MaxListCount,
	}
}

// Init 注册 dice 执行器
func Init(name string, sub []byte) {
	c := defaultConfig()
	types.MustDecode(sub, &c)
	if err := setConfig(c); err != nil {
		panic(err)
	}
	drivers.Register(name, newDice, 0)
}

func setConfig(c subConfig) error {
	if c.DefaultMinBet <= 0 || c.DefaultMinBet > c.DefaultMaxBet {
		return dty.ErrInvalidBetBounds
	}
	if c.MaxListCount <= 0 {
		c.MaxListCount = types.MaxListCount
	}
	src, err := NewEntropySource(c.Entropy, c.ServerSeed)
	if err != nil {
		return err
	}
	cfg = c
	entropy = src
	dlog.Info("dice config", "entropy", src.Name(), "defaultMinBet", c.DefaultMinBet, "defaultMaxBet", c.DefaultMaxBet)
	return nil
}

// Dice 骰子游戏执行器
type Dice struct {
	drivers.DriverBase
}

func newDice() drivers.Driver {
	return &Dice{}
}

// GetDriverName 驱动名
func (d *Dice) GetDriverName() string {
	return dty.DiceX
}

// Exec 执行 dice 交易，任何错误都会让整个交易失败
func (d *Dice) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action dty.DiceAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	dlog.Debug("exec dice tx", "ty", action.Ty, "from", tx.From)
	actiondb := NewAction(d, tx, index)
	switch {
	case action.Ty == dty.DiceActionInitialize && action.Init != nil:
		return actiondb.Initialize(action.Init)
	case action.Ty == dty.DiceActionPlaceBet && action.Bet != nil:
		return actiondb.PlaceBet(action.Bet)
	case action.Ty == dty.DiceActionSetRewardFactor && action.Reward != nil:
		return actiondb.SetRewardFactor(action.Reward)
	case action.Ty == dty.DiceActionSetPaused && action.Pause != nil:
		return actiondb.SetPaused(action.Pause)
	case action.Ty == dty.DiceActionWithdraw && action.Withdraw != nil:
		return actiondb.Withdraw(action.Withdraw)
	case action.Ty == dty.DiceActionSetBetLimits && action.BetLimits != nil:
		return actiondb.SetBetLimits(action.BetLimits)
	}
	return nil, types.ErrActionNotSupport
}
