// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	ex "github.com/33cn/dice/executor"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amounts(results []*dty.BetResult) (list []int64) {
	for _, r := range results {
		list = append(list, r.Amount)
	}
	return list
}

func (env *testEnv) betResults(req *dty.ReqBetResults) *dty.ReplyBetResults {
	msg, err := env.query("GetBetResults", req)
	require.NoError(env.t, err)
	return msg.(*dty.ReplyBetResults)
}

func (env *testEnv) stats(addr string) *dty.DiceStats {
	msg, err := env.query("GetStats", &types.ReqAddr{Addr: addr})
	require.NoError(env.t, err)
	return msg.(*dty.DiceStats)
}

// player 猜中三次 100 200 300, other 猜中一次 400, player 没有猜中一次 500
func newBetsEnv(t *testing.T) *testEnv {
	env := newFundedEnv(t)
	setEntropy(t, fixedEntropy(3))
	betResult(t, env.bet(playerAddr, 3, 100))
	betResult(t, env.bet(playerAddr, 3, 200))
	betResult(t, env.bet(playerAddr, 3, 300))
	betResult(t, env.bet(otherAddr, 3, 400))
	//失败的下注不会被索引
	assertExecErr(t, dty.ErrInvalidNumber, env.bet(playerAddr, 7, 500))
	betResult(t, env.bet(playerAddr, 4, 500))
	return env
}

func TestGetBetResults(t *testing.T) {
	env := newBetsEnv(t)

	reply := env.betResults(&dty.ReqBetResults{Count: 2, Direction: dbm.ListDESC})
	assert.Equal(t, []int64{500, 400}, amounts(reply.Results))
	require.NotEmpty(t, reply.NextCursor)
	assert.Equal(t, calcIndexSuffix(reply.Results[1].Index), reply.NextCursor)

	reply = env.betResults(&dty.ReqBetResults{Cursor: reply.NextCursor, Count: 2, Direction: dbm.ListDESC})
	assert.Equal(t, []int64{300, 200}, amounts(reply.Results))

	reply = env.betResults(&dty.ReqBetResults{Cursor: reply.NextCursor, Count: 2, Direction: dbm.ListDESC})
	assert.Equal(t, []int64{100}, amounts(reply.Results))
	assert.Empty(t, reply.NextCursor)

	reply = env.betResults(&dty.ReqBetResults{Player: playerAddr, Direction: dbm.ListASC})
	assert.Equal(t, []int64{100, 200, 300, 500}, amounts(reply.Results))
	for _, r := range reply.Results {
		assert.Equal(t, playerAddr, r.Player)
	}
	assert.False(t, reply.Results[3].Won)

	reply = env.betResults(&dty.ReqBetResults{Player: otherAddr, Direction: dbm.ListDESC})
	require.Len(t, reply.Results, 1)
	assert.Equal(t, int64(800), reply.Results[0].Payout)

	reply = env.betResults(&dty.ReqBetResults{Player: address.LabelAddress("nobody"), Direction: dbm.ListDESC})
	assert.Empty(t, reply.Results)

	_, err := env.query("GetBetResults", &dty.ReqBetResults{Direction: 5})
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = env.query("GetBetResults", &dty.ReqBetResults{Player: "xxx", Direction: dbm.ListASC})
	assert.Equal(t, types.ErrInvalidAddress, err)
}

func TestGetBetResultsSeek(t *testing.T) {
	env := newBetsEnv(t)
	all := env.betResults(&dty.ReqBetResults{Direction: dbm.ListASC}).Results
	require.Len(t, all, 5)

	reply := env.betResults(&dty.ReqBetResults{Cursor: calcIndexSuffix(all[2].Index), Direction: dbm.ListSeek})
	assert.Equal(t, []int64{300}, amounts(reply.Results))
	assert.Empty(t, reply.NextCursor)

	//两条记录之间定位到前一条
	reply = env.betResults(&dty.ReqBetResults{Cursor: calcIndexSuffix(all[3].Index + 1), Direction: dbm.ListSeek})
	assert.Equal(t, []int64{400}, amounts(reply.Results))

	reply = env.betResults(&dty.ReqBetResults{Player: playerAddr, Cursor: calcIndexSuffix(all[3].Index), Count: 10, Direction: dbm.ListSeek})
	assert.Equal(t, []int64{300}, amounts(reply.Results))

	reply = env.betResults(&dty.ReqBetResults{Cursor: calcIndexSuffix(0), Direction: dbm.ListSeek})
	assert.Empty(t, reply.Results)

	_, err := env.query("GetBetResults", &dty.ReqBetResults{Direction: dbm.ListSeek})
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestGetStats(t *testing.T) {
	env := newBetsEnv(t)
	assert.Equal(t, &dty.DiceStats{TotalBets: 5, TotalWins: 4, TotalStaked: 1500, TotalPaidOut: 2000}, env.stats(""))
	assert.Equal(t, &dty.DiceStats{TotalBets: 4, TotalWins: 3, TotalStaked: 1100, TotalPaidOut: 1200}, env.stats(playerAddr))
	assert.Equal(t, &dty.DiceStats{TotalBets: 1, TotalWins: 1, TotalStaked: 400, TotalPaidOut: 800}, env.stats(otherAddr))
	assert.Equal(t, &dty.DiceStats{}, env.stats(adminAddr))
}

func TestGetVault(t *testing.T) {
	env := newBetsEnv(t)
	msg, err := env.query("GetVault", nil)
	require.NoError(t, err)
	vault := msg.(*dty.ReplyVault)
	assert.Equal(t, vaultAddr, vault.Addr)
	assert.Equal(t, env.balance(vaultAddr), vault.Balance)
	assert.Equal(t, int64(10000+1500-2000), vault.Balance)

	_, err = env.query("GetNothing", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestExecDelLocal(t *testing.T) {
	env := newBetsEnv(t)
	kvs, err := env.exec.DelBlockLocal(env.db, env.last)
	require.NoError(t, err)
	env.write(kvs)

	assert.Equal(t, &dty.DiceStats{TotalBets: 3, TotalWins: 3, TotalStaked: 600, TotalPaidOut: 1200}, env.stats(playerAddr))
	assert.Equal(t, &dty.DiceStats{TotalBets: 4, TotalWins: 4, TotalStaked: 1000, TotalPaidOut: 2000}, env.stats(""))
	reply := env.betResults(&dty.ReqBetResults{Count: 1, Direction: dbm.ListDESC})
	assert.Equal(t, []int64{400}, amounts(reply.Results))
	reply = env.betResults(&dty.ReqBetResults{Player: playerAddr, Direction: dbm.ListDESC})
	assert.Equal(t, []int64{300, 200, 100}, amounts(reply.Results))
}

type counts struct {
	bets, wins, staked, paid int64
}

func readCounts() counts {
	return counts{betCounter.Count(), winCounter.Count(), stakeCounter.Count(), payoutCounter.Count()}
}

func TestBetCounters(t *testing.T) {
	env := newFundedEnv(t)
	setEntropy(t, fixedEntropy(3))
	before := readCounts()

	//只执行不提交, 不计数
	d := newDice()
	d.SetEnv(env.height+1, 1539918074, nil)
	d.SetStateDB(ex.NewStateDB(env.db))
	d.SetLocalDB(ex.NewLocalDB(env.db))
	tx := dty.CreateDiceTx(playerAddr, &dty.DiceAction{Ty: dty.DiceActionPlaceBet, Bet: &dty.DicePlaceBet{Number: 3, Amount: 100}}, env.nextNonce())
	receipt, err := d.Exec(tx, 0)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, before, readCounts())

	betResult(t, env.bet(playerAddr, 3, 100))
	won := env.last
	assertExecErr(t, dty.ErrInvalidNumber, env.bet(playerAddr, 0, 100))
	assert.Equal(t, counts{before.bets + 1, before.wins + 1, before.staked + 100, before.paid + 200}, readCounts())

	kvs, err := env.exec.DelBlockLocal(env.db, won)
	require.NoError(t, err)
	env.write(kvs)
	assert.Equal(t, before, readCounts())
}

func TestExecLocalIgnoreFailedReceipt(t *testing.T) {
	d := newDice().(*Dice)
	set, err := d.ExecLocal(nil, &types.ReceiptData{Ty: types.ExecErr}, 0)
	require.NoError(t, err)
	assert.Empty(t, set.KV)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "mavl-dice-config", string(ConfigKey()))
	assert.Equal(t, "LODB-dice-bet:000000000000100001", string(calcBetKey(100001)))
	assert.Equal(t, "LODB-dice-bet-addr:"+playerAddr+":000000000000000002", string(calcBetAddrKey(playerAddr, 2)))
	assert.Equal(t, "LODB-dice-stats", string(calcStatsKey("")))
	assert.Equal(t, "LODB-dice-stats-addr:"+playerAddr, string(calcStatsKey(playerAddr)))
}
