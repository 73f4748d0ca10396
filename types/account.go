// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Account 账户余额
type Account struct {
	Currency int32
	Balance  int64
	Frozen   int64
	Addr     string
}

// GetBalance get balance
func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

// GetAddr get addr
func (m *Account) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// Marshal protobuf encoding
func (m *Account) Marshal() []byte {
	var b []byte
	b = AppendInt64(b, 1, int64(m.Currency))
	b = AppendInt64(b, 2, m.Balance)
	b = AppendInt64(b, 3, m.Frozen)
	b = AppendString(b, 4, m.Addr)
	return b
}

// Unmarshal protobuf decoding
func (m *Account) Unmarshal(data []byte) error {
	*m = Account{}
	return UnmarshalFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			m.Currency = f.Int32()
		case 2:
			m.Balance = f.Int64()
		case 3:
			m.Frozen = f.Int64()
		case 4:
			m.Addr = f.String()
		}
		return nil
	})
}

// ReceiptAccountTransfer 账户余额变化前后的快照
type ReceiptAccountTransfer struct {
	Prev    *Account
	Current *Account
}

// Marshal protobuf encoding
func (m *ReceiptAccountTransfer) Marshal() []byte {
	var b []byte
	if m.Prev != nil {
		b = AppendMessage(b, 1, m.Prev)
	}
	if m.Current != nil {
		b = AppendMessage(b, 2, m.Current)
	}
	return b
}

// Unmarshal protobuf decoding
func (m *ReceiptAccountTransfer) Unmarshal(data []byte) error {
	*m = ReceiptAccountTransfer{}
	return UnmarshalFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			m.Prev = &Account{}
			return f.Message(m.Prev)
		case 2:
			m.Current = &Account{}
			return f.Message(m.Current)
		}
		return nil
	})
}

// CheckAmount 检查金额是否在合法范围内
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
