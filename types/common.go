// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Int64 通用的 int64 包装
type Int64 struct {
	Data int64
}

// Marshal protobuf encoding
func (m *Int64) Marshal() []byte {
	return AppendInt64(nil, 1, m.Data)
}

// Unmarshal protobuf decoding
func (m *Int64) Unmarshal(data []byte) error {
	*m = Int64{}
	return UnmarshalFields(data, func(f Field) error {
		if f.Num == 1 {
			m.Data = f.Int64()
		}
		return nil
	})
}

// ReqAddr 按地址查询
type ReqAddr struct {
	Addr string
}

// Marshal protobuf encoding
func (m *ReqAddr) Marshal() []byte {
	return AppendString(nil, 1, m.Addr)
}

// Unmarshal protobuf decoding
func (m *ReqAddr) Unmarshal(data []byte) error {
	*m = ReqAddr{}
	return UnmarshalFields(data, func(f Field) error {
		if f.Num == 1 {
			m.Addr = f.String()
		}
		return nil
	})
}

// ReqNil 空的请求
type ReqNil struct{}

// Marshal protobuf encoding
func (m *ReqNil) Marshal() []byte { return nil }

// Unmarshal protobuf decoding
func (m *ReqNil) Unmarshal(data []byte) error { return nil }
