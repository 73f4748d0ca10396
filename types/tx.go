// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/dice/common"
	"github.com/33cn/dice/common/address"
	"github.com/pkg/errors"
)

// Transaction is a call to one executor. From is the identity the host has
// already authenticated; executors trust it as is.
type Transaction struct {
	Execer  []byte
	Payload []byte
	Nonce   int64
	To      string
	From    string
}

// Marshal protobuf encoding
func (tx *Transaction) Marshal() []byte {
	var b []byte
	b = AppendBytes(b, 1, tx.Execer)
	b = AppendBytes(b, 2, tx.Payload)
	b = AppendInt64(b, 5, tx.Nonce)
	b = AppendString(b, 7, tx.To)
	b = AppendString(b, 8, tx.From)
	return b
}

// Unmarshal protobuf decoding
func (tx *Transaction) Unmarshal(data []byte) error {
	*tx = Transaction{}
	return UnmarshalFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			tx.Execer = f.Bytes()
		case 2:
			tx.Payload = f.Bytes()
		case 5:
			tx.Nonce = f.Int64()
		case 7:
			tx.To = f.String()
		case 8:
			tx.From = f.String()
		}
		return nil
	})
}

// Hash 交易哈希，同时作为每笔交易唯一的熵输入
func (tx *Transaction) Hash() []byte {
	return common.Sha256(tx.Marshal())
}

// Size 交易编码后的大小
func (tx *Transaction) Size() int {
	return len(tx.Marshal())
}

// Check 交易基本格式检查
func (tx *Transaction) Check() error {
	if len(tx.Execer) == 0 {
		return errors.Wrap(ErrEmptyTx, "execer")
	}
	if tx.Size() > MaxTxSize {
		return ErrTxSize
	}
	if err := address.CheckAddress(tx.From); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "from %s: %v", tx.From, err)
	}
	if tx.To != "" {
		if err := address.CheckAddress(tx.To); err != nil {
			return errors.Wrapf(ErrInvalidAddress, "to %s: %v", tx.To, err)
		}
	}
	return nil
}

// CreateTx build a transaction whose payload is the encoded action
func CreateTx(execer string, action Message, from string, nonce int64) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(action),
		Nonce:   nonce,
		To:      address.ExecAddress(execer),
		From:    from,
	}
}
