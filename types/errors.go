// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// errors
var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrEmpty                   = errors.New("ErrEmpty")
	ErrAmount                  = errors.New("ErrAmount")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrInvalidAddress          = errors.New("ErrInvalidAddress")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrUnRegistedDriver        = errors.New("ErrUnRegistedDriver")
	ErrUnknowDriver            = errors.New("ErrUnknowDriver")
	ErrExecNameNotAllow        = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow      = errors.New("ErrSymbolNameNotAllow")
	ErrNotAllowKey             = errors.New("ErrNotAllowKey")
	ErrDecode                  = errors.New("ErrDecode")
	ErrTxSize                  = errors.New("ErrTxSize")
	ErrEmptyTx                 = errors.New("ErrEmptyTx")
	ErrNoPrivilege             = errors.New("ErrNoPrivilege")
	ErrReRunGenesis            = errors.New("ErrReRunGenesis")
	ErrBlockHeight             = errors.New("ErrBlockHeight")
	ErrNotAllowMemSetKey       = errors.New("ErrNotAllowMemSetKey")
	ErrLocalKeyLen             = errors.New("ErrLocalKeyLen")
	ErrLocalPrefix             = errors.New("ErrLocalPrefix")
	ErrMavlKeyNotStartWithMavl = errors.New("ErrMavlKeyNotStartWithMavl")
	ErrNoExecerInMavlKey       = errors.New("ErrNoExecerInMavlKey")
	ErrUnknowExecErr           = errors.New("ErrUnknowExecErr")
	ErrBlockNotFound           = errors.New("ErrBlockNotFound")
	ErrFromAddr                = errors.New("ErrFromAddr")
)
