// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands dice 的命令行: 构造交易并在本地节点上执行，或者查询状态
package commands

import (
	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	cty "github.com/33cn/dice/system/dapp/coins/types"
	"github.com/33cn/dice/types"
	"github.com/33cn/dice/util/localnode"
	"github.com/spf13/cobra"
)

// DiceCmd dice command
func DiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dice",
		Short: "Dice game: bet on a number from 1 to 6",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.PersistentFlags().StringP("addr", "a", "", "sender address (identity of the caller)")
	cmd.AddCommand(
		InitCmd(),
		BetCmd(),
		SetRewardCmd(),
		SetLimitsCmd(),
		PauseCmd(true),
		PauseCmd(false),
		WithdrawCmd(),
		DepositCmd(),
		FaucetCmd(),
		BalanceCmd(),
		ConfigCmd(),
		ResultsCmd(),
		StatsCmd(),
	)
	return cmd
}

// InitCmd 初始化游戏，发送者成为管理员
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the game config, the sender becomes admin",
		Run:   initialize,
	}
	cmd.Flags().Int64P("reward", "r", 0, "reward factor in percent, 200 pays twice the bet")
	cmd.MarkFlagRequired("reward")
	cmd.Flags().StringP("mode", "m", "bounds", "bounds or unbounded")
	cmd.Flags().String("min", "", "min bet in coins, empty for default")
	cmd.Flags().String("max", "", "max bet in coins, empty for default")
	return cmd
}

func initialize(cmd *cobra.Command, args []string) {
	reward, _ := cmd.Flags().GetInt64("reward")
	mode, _ := cmd.Flags().GetString("mode")
	req := &dty.DiceInitialize{RewardFactor: reward}
	switch mode {
	case "bounds":
		req.Mode = dty.ModeBoundsEnforced
	case "unbounded":
		req.Mode = dty.ModeUnbounded
	default:
		printErr(cmd, dty.ErrInvalidMode)
		return
	}
	var err error
	if req.MinBet, err = optionalAmount(cmd, "min"); err != nil {
		printErr(cmd, err)
		return
	}
	if req.MaxBet, err = optionalAmount(cmd, "max"); err != nil {
		printErr(cmd, err)
		return
	}
	sendAction(cmd, &dty.DiceAction{Ty: dty.DiceActionInitialize, Init: req})
}

// BetCmd 下注
func BetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Place a bet on a number",
		Run:   placeBet,
	}
	cmd.Flags().Int32P("number", "n", 0, "chosen number, 1 to 6")
	cmd.MarkFlagRequired("number")
	addAmountFlag(cmd)
	return cmd
}

func placeBet(cmd *cobra.Command, args []string) {
	number, _ := cmd.Flags().GetInt32("number")
	amount, err := requiredAmount(cmd, "amount")
	if err != nil {
		printErr(cmd, err)
		return
	}
	sendAction(cmd, &dty.DiceAction{Ty: dty.DiceActionPlaceBet, Bet: &dty.DicePlaceBet{Number: number, Amount: amount}})
}

// SetRewardCmd 修改赔率
func SetRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-reward",
		Short: "Change the reward factor (admin)",
		Run: func(cmd *cobra.Command, args []string) {
			reward, _ := cmd.Flags().GetInt64("reward")
			sendAction(cmd, &dty.DiceAction{
				Ty:     dty.DiceActionSetRewardFactor,
				Reward: &dty.DiceSetRewardFactor{RewardFactor: reward},
			})
		},
	}
	cmd.Flags().Int64P("reward", "r", 0, "reward factor in percent")
	cmd.MarkFlagRequired("reward")
	return cmd
}

// SetLimitsCmd 修改下注范围
func SetLimitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-limits",
		Short: "Change the bet bounds (admin)",
		Run:   setLimits,
	}
	cmd.Flags().String("min", "", "min bet in coins")
	cmd.MarkFlagRequired("min")
	cmd.Flags().String("max", "", "max bet in coins")
	cmd.MarkFlagRequired("max")
	return cmd
}

func setLimits(cmd *cobra.Command, args []string) {
	minBet, err := requiredAmount(cmd, "min")
	if err != nil {
		printErr(cmd, err)
		return
	}
	maxBet, err := requiredAmount(cmd, "max")
	if err != nil {
		printErr(cmd, err)
		return
	}
	sendAction(cmd, &dty.DiceAction{
		Ty:        dty.DiceActionSetBetLimits,
		BetLimits: &dty.DiceSetBetLimits{MinBet: minBet, MaxBet: maxBet},
	})
}

// PauseCmd pause / unpause
func PauseCmd(paused bool) *cobra.Command {
	use, short := "pause", "Stop accepting bets (admin)"
	if !paused {
		use, short = "unpause", "Accept bets again (admin)"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			sendAction(cmd, &dty.DiceAction{Ty: dty.DiceActionSetPaused, Pause: &dty.DiceSetPaused{Paused: paused}})
		},
	}
}

// WithdrawCmd 管理员从金库取款
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw from the vault to the admin (admin)",
		Run: func(cmd *cobra.Command, args []string) {
			amount, err := requiredAmount(cmd, "amount")
			if err != nil {
				printErr(cmd, err)
				return
			}
			sendAction(cmd, &dty.DiceAction{Ty: dty.DiceActionWithdraw, Withdraw: &dty.DiceWithdraw{Amount: amount}})
		},
	}
	addAmountFlag(cmd)
	return cmd
}

// DepositCmd 向金库转账
func DepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Transfer coins from the sender to the vault",
		Run: func(cmd *cobra.Command, args []string) {
			amount, err := requiredAmount(cmd, "amount")
			if err != nil {
				printErr(cmd, err)
				return
			}
			from, _ := cmd.Flags().GetString("addr")
			sendTx(cmd, cty.CreateTransferTx(from, address.ExecAddress(dty.DiceX), amount, "dice deposit", localnode.NewNonce()))
		},
	}
	addAmountFlag(cmd)
	return cmd
}

// FaucetCmd 本地测试发币
func FaucetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faucet",
		Short: "Credit coins to the sender (local testing only)",
		Run: func(cmd *cobra.Command, args []string) {
			amount, err := requiredAmount(cmd, "amount")
			if err != nil {
				printErr(cmd, err)
				return
			}
			cfg, err := cmdConfig(cmd)
			if err != nil {
				printErr(cmd, err)
				return
			}
			//只有配置的发币地址可以在创世之后发币
			genesis := cty.DecodeConfig(cfg.Exec.SubConfig()[cty.CoinsX]).Genesis
			to, _ := cmd.Flags().GetString("addr")
			sendTx(cmd, cty.CreateGenesisTx(genesis, to, amount, localnode.NewNonce()))
		},
	}
	addAmountFlag(cmd)
	return cmd
}

// BalanceCmd 查询余额，不指定地址时查询金库
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the coins balance of an address or of the vault",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = address.ExecAddress(dty.DiceX)
			}
			msg, err := query(cmd, cty.CoinsX, "GetBalance", &types.ReqAddr{Addr: addr})
			if err != nil {
				printErr(cmd, err)
				return
			}
			acc := msg.(*types.Account)
			printJSON(cmd, &accountResult{Addr: addr, Balance: FormatAmount(acc.Balance)})
		},
	}
	return cmd
}

// ConfigCmd 查询游戏配置
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the game config",
		Run: func(cmd *cobra.Command, args []string) {
			msg, err := query(cmd, dty.DiceX, "GetConfig", nil)
			if err != nil {
				printErr(cmd, err)
				return
			}
			printJSON(cmd, msg)
		},
	}
}

// ResultsCmd 分页查询下注记录
func ResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "List bet results, newest first",
		Run:   listResults,
	}
	cmd.Flags().StringP("player", "p", "", "only bets of this player")
	cmd.Flags().StringP("cursor", "c", "", "next cursor from the previous page")
	cmd.Flags().Int32P("count", "n", 20, "page size")
	cmd.Flags().Bool("asc", false, "oldest first")
	return cmd
}

func listResults(cmd *cobra.Command, args []string) {
	player, _ := cmd.Flags().GetString("player")
	cursor, _ := cmd.Flags().GetString("cursor")
	count, _ := cmd.Flags().GetInt32("count")
	asc, _ := cmd.Flags().GetBool("asc")
	req := &dty.ReqBetResults{Player: player, Cursor: cursor, Count: count, Direction: dbm.ListDESC}
	if asc {
		req.Direction = dbm.ListASC
	}
	msg, err := query(cmd, dty.DiceX, "GetBetResults", req)
	if err != nil {
		printErr(cmd, err)
		return
	}
	printJSON(cmd, msg)
}

// StatsCmd 统计
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show bet statistics, of all players or of one",
		Run: func(cmd *cobra.Command, args []string) {
			player, _ := cmd.Flags().GetString("player")
			msg, err := query(cmd, dty.DiceX, "GetStats", &types.ReqAddr{Addr: player})
			if err != nil {
				printErr(cmd, err)
				return
			}
			printJSON(cmd, msg)
		},
	}
	cmd.Flags().StringP("player", "p", "", "player address")
	return cmd
}

func addAmountFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("amount", "m", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
}

func sendAction(cmd *cobra.Command, action *dty.DiceAction) {
	from, _ := cmd.Flags().GetString("addr")
	sendTx(cmd, dty.CreateDiceTx(from, action, localnode.NewNonce()))
}
