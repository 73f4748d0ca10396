// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// KeyValue kv pair
type KeyValue struct {
	Key   []byte
	Value []byte
}

// GetKey get key
func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

// GetValue get value
func (m *KeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

// Marshal protobuf encoding
func (m *KeyValue) Marshal() []byte {
	var b []byte
	b = AppendBytes(b, 1, m.Key)
	b = AppendBytes(b, 2, m.Value)
	return b
}

// Unmarshal protobuf decoding
func (m *KeyValue) Unmarshal(data []byte) error {
	*m = KeyValue{}
	return UnmarshalFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			m.Key = f.Bytes()
		case 2:
			m.Value = f.Bytes()
		}
		return nil
	})
}

// ReceiptLog 执行产生的日志
type ReceiptLog struct {
	Ty  int32
	Log []byte
}

// Marshal protobuf encoding
func (m *ReceiptLog) Marshal() []byte {
	var b []byte
	b = AppendInt64(b, 1, int64(m.Ty))
	b = AppendBytes(b, 2, m.Log)
	return b
}

// Unmarshal protobuf decoding
func (m *ReceiptLog) Unmarshal(data []byte) error {
	*m = ReceiptLog{}
	return UnmarshalFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			m.Ty = f.Int32()
		case 2:
			m.Log = f.Bytes()
		}
		return nil
	})
}

// Receipt is what an executor returns for one transaction: the state writes
// and the typed logs. It is applied as a whole or not at all.
type Receipt struct {
	Ty   int32
	KV   []*KeyValue
	Logs []*ReceiptLog
}

// Marshal protobuf encoding
func (m *Receipt) Marshal() []byte {
	var b []byte
	b = AppendInt64(b, 1, int64(m.Ty))
	for _, kv := range m.KV {
		b = AppendMessage(b, 2, kv)
	}
	for _, l := range m.Logs {
		b = AppendMessage(b, 3, l)
	}
	return b
}

// Unmarshal protobuf decoding
func (m *Receipt) Unmarshal(data []byte) error {
	*m = Receipt{}
	return UnmarshalFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			m.Ty = f.Int32()
		case 2:
			kv := &KeyValue{}
			if err := f.Message(kv); err != nil {
				return err
			}
			m.KV = append(m.KV, kv)
		case 3:
			l := &ReceiptLog{}
			if err := f.Message(l); err != nil {
				return err
			}
			m.Logs = append(m.Logs, l)
		}
		return nil
	})
}

// ReceiptData 写入区块的执行结果，不含状态数据
type ReceiptData struct {
	Ty   int32
	Logs []*ReceiptLog
}

// GetTy get ty
func (m *ReceiptData) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// Marshal protobuf encoding
func (m *ReceiptData) Marshal() []byte {
	var b []byte
	b = AppendInt64(b, 1, int64(m.Ty))
	for _, l := range m.Logs {
		b = AppendMessage(b, 3, l)
	}
	return b
}

// Unmarshal protobuf decoding
func (m *ReceiptData) Unmarshal(data []byte) error {
	*m = ReceiptData{}
	return UnmarshalFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			m.Ty = f.Int32()
		case 3:
			l := &ReceiptLog{}
			if err := f.Message(l); err != nil {
				return err
			}
			m.Logs = append(m.Logs, l)
		}
		return nil
	})
}

// LocalDBSet 本地数据库的写入集合
type LocalDBSet struct {
	KV []*KeyValue
}

// MergeReceipt merge receipt2 into receipt1
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 != nil {
		receipt1.KV = append(receipt1.KV, receipt2.KV...)
		receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	}
	return receipt1
}

// NewErrReceipt 执行失败时写入区块的 receipt
func NewErrReceipt(err error) *ReceiptData {
	return &ReceiptData{
		Ty:   ExecErr,
		Logs: []*ReceiptLog{{Ty: TyLogErr, Log: []byte(err.Error())}},
	}
}

// ExecError 执行失败的交易返回记录在 receipt 中的错误，成功时返回 nil
func (m *ReceiptData) ExecError() error {
	if m == nil || m.Ty != ExecErr {
		return nil
	}
	for _, l := range m.Logs {
		if l.Ty == TyLogErr {
			return errors.New(string(l.Log))
		}
	}
	return ErrUnknowExecErr
}
