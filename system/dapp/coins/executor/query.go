// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/dice/common/address"
	"github.com/33cn/dice/types"
)

// Query 支持 GetBalance 和 GetAddrReciver
func (c *Coins) Query(funcName string, params []byte) (types.Message, error) {
	var req types.ReqAddr
	if err := types.Decode(params, &req); err != nil {
		return nil, err
	}
	if err := address.CheckAddress(req.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	switch funcName {
	case "GetBalance":
		return c.GetCoinsAccount().LoadAccount(req.Addr), nil
	case "GetAddrReciver":
		amount, err := getAddrReciver(c.GetLocalDB(), req.Addr)
		if err != nil {
			return nil, err
		}
		return &types.Int64{Data: amount}, nil
	}
	return nil, types.ErrQueryNotSupport
}
