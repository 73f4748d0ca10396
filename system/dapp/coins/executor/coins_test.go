// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/executor"
	drivers "github.com/33cn/dice/system/dapp"
	cty "github.com/33cn/dice/system/dapp/coins/types"
	"github.com/33cn/dice/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = address.LabelAddress("coins-test-1")
	addr2 = address.LabelAddress("coins-test-2")
)

func newTestCoins(t *testing.T, height int64) *Coins {
	db, err := dbm.NewGoMemDB("coins", "", 0)
	require.NoError(t, err)
	c := newCoins().(*Coins)
	c.SetEnv(height, 1539918074, nil)
	c.SetStateDB(executor.NewStateDB(db))
	c.SetLocalDB(executor.NewLocalDB(db))
	return c
}

func TestGenesis(t *testing.T) {
	c := newTestCoins(t, 1)
	tx := cty.CreateGenesisTx(types.GenesisAddr, addr1, 100*types.Coin, 1)
	receipt, err := c.Exec(tx, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, 100*types.Coin, c.GetCoinsAccount().LoadAccount(addr1).Balance)

	//其他地址不能发币
	tx = cty.CreateGenesisTx(addr2, addr2, 100*types.Coin, 1)
	_, err = c.Exec(tx, 0)
	assert.Equal(t, types.ErrNoPrivilege, err)

	//创世区块不检查
	c0 := newTestCoins(t, 0)
	_, err = c0.Exec(tx, 0)
	assert.NoError(t, err)
	assert.Equal(t, 100*types.Coin, c0.GetCoinsAccount().LoadAccount(addr2).Balance)

	tx = cty.CreateGenesisTx(types.GenesisAddr, addr1, types.MaxCoin, 1)
	_, err = c.Exec(tx, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestTransfer(t *testing.T) {
	c := newTestCoins(t, 1)
	_, err := c.Exec(cty.CreateGenesisTx(types.GenesisAddr, addr1, 100*types.Coin, 1), 0)
	require.NoError(t, err)

	receipt, err := c.Exec(cty.CreateTransferTx(addr1, addr2, 30*types.Coin, "hi", 2), 1)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, 70*types.Coin, c.GetCoinsAccount().LoadAccount(addr1).Balance)
	assert.Equal(t, 30*types.Coin, c.GetCoinsAccount().LoadAccount(addr2).Balance)

	_, err = c.Exec(cty.CreateTransferTx(addr1, addr2, 71*types.Coin, "", 3), 2)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = c.Exec(cty.CreateTransferTx(addr1, addr2, 0, "", 3), 2)
	assert.Equal(t, types.ErrAmount, err)
	_, err = c.Exec(cty.CreateTransferTx(addr1, addr1, 1, "", 3), 2)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = c.Exec(cty.CreateTransferTx(addr1, "", 1, "", 3), 2)
	assert.Equal(t, types.ErrInvalidAddress, err)

	//转入执行器地址，也就是给执行器的金库充值
	execAddr := address.ExecAddress("dice")
	_, err = c.Exec(cty.CreateTransferTx(addr1, execAddr, 10*types.Coin, "", 4), 3)
	require.NoError(t, err)
	assert.Equal(t, 10*types.Coin, c.GetCoinsAccount().ExecAccount("dice").Balance)
}

func TestExecActionNotSupport(t *testing.T) {
	c := newTestCoins(t, 1)
	tx := types.CreateTx(cty.CoinsX, &cty.CoinsAction{Ty: 100}, addr1, 1)
	_, err := c.Exec(tx, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)

	tx = types.CreateTx(cty.CoinsX, &cty.CoinsAction{Ty: cty.CoinsActionTransfer}, addr1, 1)
	_, err = c.Exec(tx, 0)
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestExecLocalAndQuery(t *testing.T) {
	c := newTestCoins(t, 1)
	tx := cty.CreateTransferTx(addr1, addr2, 5*types.Coin, "", 1)
	ok := &types.ReceiptData{Ty: types.ExecOk}

	set, err := c.ExecLocal(tx, ok, 0)
	require.NoError(t, err)
	require.Len(t, set.KV, 1)
	set, err = c.ExecLocal(tx, ok, 0)
	require.NoError(t, err)

	msg, err := c.Query("GetAddrReciver", types.Encode(&types.ReqAddr{Addr: addr2}))
	require.NoError(t, err)
	assert.Equal(t, 10*types.Coin, msg.(*types.Int64).Data)

	set, err = c.ExecDelLocal(tx, ok, 0)
	require.NoError(t, err)
	var recv types.Int64
	require.NoError(t, types.Decode(set.KV[0].Value, &recv))
	assert.Equal(t, 5*types.Coin, recv.Data)

	//失败的交易不统计
	set, err = c.ExecLocal(tx, types.NewErrReceipt(types.ErrNoBalance), 0)
	require.NoError(t, err)
	assert.Len(t, set.KV, 0)

	msg, err = c.Query("GetBalance", types.Encode(&types.ReqAddr{Addr: addr2}))
	require.NoError(t, err)
	assert.Equal(t, addr2, msg.(*types.Account).Addr)
	assert.Equal(t, int64(0), msg.(*types.Account).Balance)

	_, err = c.Query("GetBalance", types.Encode(&types.ReqAddr{Addr: "bad"}))
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = c.Query("NoSuchFunc", types.Encode(&types.ReqAddr{Addr: addr2}))
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestInit(t *testing.T) {
	assert.Panics(t, func() { Init("coins2", nil) })
	Init(driverName, []byte(`{"genesis":"`+addr1+`"}`))
	defer func() { cfg.Genesis = types.GenesisAddr }()
	assert.Equal(t, addr1, cfg.Genesis)
	d, err := drivers.LoadDriver(driverName, 1)
	require.NoError(t, err)
	assert.Equal(t, driverName, d.GetDriverName())

	c := newTestCoins(t, 1)
	_, err = c.Exec(cty.CreateGenesisTx(addr1, addr2, types.Coin, 1), 0)
	assert.NoError(t, err)
	_, err = c.Exec(cty.CreateGenesisTx(types.GenesisAddr, addr2, types.Coin, 1), 0)
	assert.Equal(t, types.ErrNoPrivilege, err)

	//执行器地址不能转出
	tx := cty.CreateTransferTx(drivers.ExecAddress(driverName), addr2, types.Coin, "", 2)
	assert.Equal(t, types.ErrFromAddr, c.CheckTx(tx, 1))
	assert.NoError(t, c.CheckTx(cty.CreateTransferTx(addr1, addr2, types.Coin, "", 2), 1))
}
