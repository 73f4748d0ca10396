// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/33cn/dice/common"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
	"github.com/33cn/dice/util/localnode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type accountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
}

type logResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName"`
	Log    interface{} `json:"log"`
}

type txResult struct {
	Hash   string       `json:"hash"`
	Height int64        `json:"height"`
	Ok     bool         `json:"ok"`
	Error  string       `json:"error,omitempty"`
	Logs   []*logResult `json:"logs,omitempty"`
}

// 配置文件由根命令的 --conf 指定
func cmdConfig(cmd *cobra.Command) (*types.Config, error) {
	path, _ := cmd.Flags().GetString("conf")
	return types.LoadCfg(path)
}

func openNode(cmd *cobra.Command) (*localnode.Node, error) {
	cfg, err := cmdConfig(cmd)
	if err != nil {
		return nil, err
	}
	return localnode.Open(cfg)
}

func sendTx(cmd *cobra.Command, tx *types.Transaction) {
	if err := tx.Check(); err != nil {
		printErr(cmd, err)
		return
	}
	node, err := openNode(cmd)
	if err != nil {
		printErr(cmd, err)
		return
	}
	defer node.Close()
	detail, err := node.SendTx(tx)
	if err != nil {
		printErr(cmd, err)
		return
	}
	receipt := detail.Receipts[0]
	result := &txResult{
		Hash:   common.ToHex(tx.Hash()),
		Height: detail.Block.Height,
		Ok:     receipt.Ty == types.ExecOk,
	}
	if err := receipt.ExecError(); err != nil {
		result.Error = err.Error()
	}
	for _, l := range receipt.Logs {
		result.Logs = append(result.Logs, decodeLog(l))
	}
	printJSON(cmd, result)
}

func decodeLog(l *types.ReceiptLog) *logResult {
	r := &logResult{Ty: l.Ty, TyName: types.GetLogName(l.Ty)}
	switch l.Ty {
	case types.TyLogErr:
		r.Log = string(l.Log)
		return r
	case types.TyLogTransfer, types.TyLogGenesis:
		var transfer types.ReceiptAccountTransfer
		if err := types.Decode(l.Log, &transfer); err == nil {
			r.Log = &transfer
			return r
		}
	}
	msg, err := dty.DecodeLog(l.Ty, l.Log)
	if err == nil && msg != nil {
		r.Log = msg
		return r
	}
	r.Log = common.ToHex(l.Log)
	return r
}

func query(cmd *cobra.Command, driver, funcName string, params types.Message) (types.Message, error) {
	node, err := openNode(cmd)
	if err != nil {
		return nil, err
	}
	defer node.Close()
	return node.Query(driver, funcName, params)
}

func optionalAmount(cmd *cobra.Command, name string) (int64, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return 0, nil
	}
	return ParseAmount(s)
}

func requiredAmount(cmd *cobra.Command, name string) (int64, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return 0, errors.Wrapf(types.ErrAmount, "--%s is required", name)
	}
	return ParseAmount(s)
}

func printJSON(cmd *cobra.Command, v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		printErr(cmd, err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}

func printErr(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
}
