// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/dice/types"
)

// ReqBetResults 分页查询下注记录
// Player 为空时查询全部记录; Cursor 为上一页返回的 NextCursor, 空表示从头开始
// Direction 为 ListSeek 时只返回 Cursor 处或之前最近的一条
type ReqBetResults struct {
	Player    string `json:"player"`
	Cursor    string `json:"cursor"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
}

// Marshal protobuf encoding
func (m *ReqBetResults) Marshal() []byte {
	var data []byte
	data = types.AppendString(data, 1, m.Player)
	data = types.AppendString(data, 2, m.Cursor)
	data = types.AppendInt64(data, 3, int64(m.Count))
	data = types.AppendInt64(data, 4, int64(m.Direction))
	return data
}

// Unmarshal protobuf decoding
func (m *ReqBetResults) Unmarshal(data []byte) error {
	*m = ReqBetResults{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Player = f.String()
		case 2:
			m.Cursor = f.String()
		case 3:
			m.Count = f.Int32()
		case 4:
			m.Direction = f.Int32()
		}
		return nil
	})
}

// ReplyBetResults 下注记录
type ReplyBetResults struct {
	Results    []*BetResult `json:"results"`
	NextCursor string       `json:"nextCursor"`
}

// Marshal protobuf encoding
func (m *ReplyBetResults) Marshal() []byte {
	var data []byte
	for _, r := range m.Results {
		data = types.AppendMessage(data, 1, r)
	}
	data = types.AppendString(data, 2, m.NextCursor)
	return data
}

// Unmarshal protobuf decoding
func (m *ReplyBetResults) Unmarshal(data []byte) error {
	*m = ReplyBetResults{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			r := &BetResult{}
			if err := f.Message(r); err != nil {
				return err
			}
			m.Results = append(m.Results, r)
		case 2:
			m.NextCursor = f.String()
		}
		return nil
	})
}

// ReplyVault 金库地址和余额
type ReplyVault struct {
	Addr    string `json:"addr"`
	Balance int64  `json:"balance"`
}

// Marshal protobuf encoding
func (m *ReplyVault) Marshal() []byte {
	var data []byte
	data = types.AppendString(data, 1, m.Addr)
	data = types.AppendInt64(data, 2, m.Balance)
	return data
}

// Unmarshal protobuf decoding
func (m *ReplyVault) Unmarshal(data []byte) error {
	*m = ReplyVault{}
	return types.UnmarshalFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			m.Addr = f.String()
		case 2:
			m.Balance = f.Int64()
		}
		return nil
	})
}
