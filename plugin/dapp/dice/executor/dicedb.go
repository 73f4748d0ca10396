// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor dice
import (
	"math"
	"math/bits"

	"github.com/33cn/dice/account"
	"github.com/33cn/dice/common"
	dbm "github.com/33cn/dice/common/db"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
	metrics "github.com/rcrowley/go-metrics"
)

var betErrMeter = metrics.GetOrRegisterMeter("dice.bet.err", nil)

// Action 一笔 dice 交易的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	parentHash   []byte
	execaddr     string
	index        int
}

// NewAction new action
func NewAction(d *Dice, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: d.GetCoinsAccount(),
		db:           d.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From,
		blocktime:    d.GetBlockTime(),
		height:       d.GetHeight(),
		parentHash:   d.GetParentHash(),
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		index:        index,
	}
}

// GetIndex 全局唯一的交易序号
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func getConfig(db dbm.KV) (*dty.DiceConfig, error) {
	value, err := db.Get(ConfigKey())
	if err == types.ErrNotFound {
		return nil, dty.ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	var config dty.DiceConfig
	if err := types.Decode(value, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// 只有管理员可以修改配置
func (action *Action) loadAdminConfig() (*dty.DiceConfig, error) {
	config, err := getConfig(action.db)
	if err != nil {
		return nil, err
	}
	if config.Admin != action.fromaddr {
		dlog.Error("dice admin", "from", action.fromaddr, "admin", config.Admin, "err", dty.ErrUnauthorized)
		return nil, dty.ErrUnauthorized
	}
	return config, nil
}

func (action *Action) saveConfig(prev, current *dty.DiceConfig) *types.Receipt {
	value := types.Encode(current)
	if err := action.db.Set(ConfigKey(), value); err != nil {
		panic(err)
	}
	log := &types.ReceiptLog{
		Ty:  dty.TyLogDiceConfig,
		Log: types.Encode(&dty.ReceiptDiceConfig{Prev: prev, Current: current}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{{Key: ConfigKey(), Value: value}},
		Logs: []*types.ReceiptLog{log},
	}
}

func checkBounds(minBet, maxBet int64) error {
	if minBet <= 0 || minBet > maxBet {
		return dty.ErrInvalidBetBounds
	}
	return nil
}

// Initialize 创建配置，发送者成为管理员，之后不能修改
func (action *Action) Initialize(init *dty.DiceInitialize) (*types.Receipt, error) {
	_, err := getConfig(action.db)
	if err == nil {
		return nil, dty.ErrAlreadyInitialized
	}
	if err != dty.ErrNotInitialized {
		return nil, err
	}
	if init.RewardFactor < 0 {
		return nil, dty.ErrInvalidRewardFactor
	}
	config := &dty.DiceConfig{
		Admin:        action.fromaddr,
		RewardFactor: init.RewardFactor,
		Mode:         init.Mode,
	}
	switch init.Mode {
	case 0, dty.ModeBoundsEnforced:
		config.Mode = dty.ModeBoundsEnforced
		config.MinBet, config.MaxBet = init.MinBet, init.MaxBet
		if config.MinBet == 0 && config.MaxBet == 0 {
			config.MinBet, config.MaxBet = cfg.DefaultMinBet, cfg.DefaultMaxBet
		}
		if err := checkBounds(config.MinBet, config.MaxBet); err != nil {
			return nil, err
		}
	case dty.ModeUnbounded:
	default:
		return nil, dty.ErrInvalidMode
	}
	dlog.Info("dice initialize", "admin", config.Admin, "rewardFactor", config.RewardFactor, "mode", config.Mode)
	return action.saveConfig(nil, config), nil
}

// SetRewardFactor 修改赔率，只影响之后的下注
func (action *Action) SetRewardFactor(reward *dty.DiceSetRewardFactor) (*types.Receipt, error) {
	config, err := action.loadAdminConfig()
	if err != nil {
		return nil, err
	}
	if reward.RewardFactor < 0 {
		return nil, dty.ErrInvalidRewardFactor
	}
	prev := *config
	config.RewardFactor = reward.RewardFactor
	return action.saveConfig(&prev, config), nil
}

// SetPaused 暂停或者恢复下注，两个状态可以互相切换
func (action *Action) SetPaused(pause *dty.DiceSetPaused) (*types.Receipt, error) {
	config, err := action.loadAdminConfig()
	if err != nil {
		return nil, err
	}
	prev := *config
	config.IsPaused = pause.Paused
	return action.saveConfig(&prev, config), nil
}

// SetBetLimits 修改下注范围
func (action *Action) SetBetLimits(limits *dty.DiceSetBetLimits) (*types.Receipt, error) {
	config, err := action.loadAdminConfig()
	if err != nil {
		return nil, err
	}
	if config.Mode != dty.ModeBoundsEnforced {
		return nil, dty.ErrInvalidMode
	}
	if err := checkBounds(limits.MinBet, limits.MaxBet); err != nil {
		return nil, err
	}
	prev := *config
	config.MinBet, config.MaxBet = limits.MinBet, limits.MaxBet
	return action.saveConfig(&prev, config), nil
}

// Withdraw 管理员从金库提取到自己的账户
func (action *Action) Withdraw(withdraw *dty.DiceWithdraw) (*types.Receipt, error) {
	config, err := action.loadAdminConfig()
	if err != nil {
		return nil, err
	}
	if withdraw.Amount <= 0 {
		return nil, types.ErrAmount
	}
	vault := action.coinsAccount.LoadAccount(action.execaddr)
	if withdraw.Amount > vault.Balance {
		dlog.Error("dice withdraw", "amount", withdraw.Amount, "vault", vault.Balance, "err", dty.ErrInsufficientFunds)
		return nil, dty.ErrInsufficientFunds
	}
	receipt, err := action.coinsAccount.Transfer(action.execaddr, config.Admin, withdraw.Amount)
	if err != nil {
		return nil, err
	}
	r := &dty.ReceiptDiceWithdraw{
		Admin:       config.Admin,
		Amount:      withdraw.Amount,
		VaultBefore: vault.Balance,
		VaultAfter:  vault.Balance - withdraw.Amount,
	}
	receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: dty.TyLogDiceWithdraw, Log: types.Encode(r)})
	return receipt, nil
}

func checkBetAmount(config *dty.DiceConfig, amount int64) error {
	if config.Mode == dty.ModeBoundsEnforced {
		if amount < config.MinBet || amount > config.MaxBet {
			return dty.ErrInvalidBetAmount
		}
		return nil
	}
	if amount <= 0 {
		return dty.ErrInvalidBetAmount
	}
	return nil
}

// CalcPayout floor(amount * rewardFactor / 100), 乘积超出 int64 时返回 ErrMathOverflow
func CalcPayout(amount, rewardFactor int64) (int64, error) {
	if amount < 0 || rewardFactor < 0 {
		return 0, dty.ErrMathOverflow
	}
	hi, lo := bits.Mul64(uint64(amount), uint64(rewardFactor))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, dty.ErrMathOverflow
	}
	return int64(lo) / 100, nil
}

// PlaceBet 检查 -> 收取本金 -> 开奖 -> 派奖, 任何一步出错整个交易都不生效
func (action *Action) PlaceBet(bet *dty.DicePlaceBet) (*types.Receipt, error) {
	receipt, err := action.placeBet(bet)
	if err != nil {
		betErrMeter.Mark(1)
		dlog.Error("PlaceBet", "player", action.fromaddr, "number", bet.Number, "amount", bet.Amount, "err", err)
		return nil, err
	}
	return receipt, nil
}

func (action *Action) placeBet(bet *dty.DicePlaceBet) (*types.Receipt, error) {
	config, err := getConfig(action.db)
	if err != nil {
		return nil, err
	}
	if config.IsPaused {
		return nil, dty.ErrGamePaused
	}
	if !dty.CheckNumber(bet.Number) {
		return nil, dty.ErrInvalidNumber
	}
	if err := checkBetAmount(config, bet.Amount); err != nil {
		return nil, err
	}
	payout, err := CalcPayout(bet.Amount, config.RewardFactor)
	if err != nil {
		return nil, err
	}
	//本金进入金库
	receipt, err := action.coinsAccount.Transfer(action.fromaddr, action.execaddr, bet.Amount)
	if err != nil {
		return nil, err
	}
	drawn := entropy.Roll(&EntropyInput{
		TxHash:     action.txhash,
		Player:     action.fromaddr,
		BlockTime:  action.blocktime,
		Height:     action.height,
		ParentHash: action.parentHash,
	})
	won := drawn == bet.Number
	if !won {
		payout = 0
	}
	if payout > 0 {
		vault := action.coinsAccount.LoadAccount(action.execaddr)
		if vault.Balance < payout {
			dlog.Error("dice payout", "payout", payout, "vault", vault.Balance, "err", dty.ErrInsufficientFunds)
			return nil, dty.ErrInsufficientFunds
		}
		r, err := action.coinsAccount.Transfer(action.execaddr, action.fromaddr, payout)
		if err != nil {
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	result := &dty.BetResult{
		Player:       action.fromaddr,
		Amount:       bet.Amount,
		ChosenNumber: bet.Number,
		DrawnNumber:  drawn,
		Payout:       payout,
		Won:          won,
		Timestamp:    action.blocktime,
		TxHash:       common.ToHex(action.txhash),
		Height:       action.height,
		Index:        action.GetIndex(),
	}
	receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: dty.TyLogDiceBet, Log: types.Encode(result)})
	return receipt, nil
}
