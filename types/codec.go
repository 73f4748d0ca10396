// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every value that is stored in the state db,
// carried in a receipt log or sent as a transaction payload. The encoding
// is the protobuf wire format, so the data stays readable by proto tooling.
type Message interface {
	Marshal() []byte
	Unmarshal(data []byte) error
}

// Encode 编码
func Encode(data Message) []byte {
	return data.Marshal()
}

// Decode 解码
func Decode(data []byte, msg Message) error {
	if err := msg.Unmarshal(data); err != nil {
		return errors.Wrapf(err, "decode %T", msg)
	}
	return nil
}

// Field is one decoded wire field.
type Field struct {
	Num   protowire.Number
	Type  protowire.Type
	Value uint64
	Raw   []byte
}

// Int64 value of a varint field
func (f Field) Int64() int64 { return int64(f.Value) }

// Int32 value of a varint field
func (f Field) Int32() int32 { return int32(f.Value) }

// Bool value of a varint field
func (f Field) Bool() bool { return f.Value != 0 }

// String value of a bytes field
func (f Field) String() string { return string(f.Raw) }

// Bytes returns a copy of a bytes field
func (f Field) Bytes() []byte {
	if f.Raw == nil {
		return nil
	}
	return append([]byte{}, f.Raw...)
}

// Message decodes an embedded message field into msg
func (f Field) Message(msg Message) error {
	return msg.Unmarshal(f.Raw)
}

// UnmarshalFields walks data and calls fn for every varint and bytes field.
// Fields of other wire types are skipped.
func UnmarshalFields(data []byte, fn func(f Field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
		}
		data = data[n:]
		f := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(m).Error())
			}
			f.Value = v
			data = data[m:]
		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(data)
			if m < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(m).Error())
			}
			f.Raw = v
			data = data[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, data)
			if m < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(m).Error())
			}
			data = data[m:]
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// AppendVarint appends a non zero varint field
func AppendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// AppendInt64 appends a non zero int64 field
func AppendInt64(b []byte, num protowire.Number, v int64) []byte {
	return AppendVarint(b, num, uint64(v))
}

// AppendBool appends a true bool field
func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	return AppendVarint(b, num, 1)
}

// AppendBytes appends a non empty bytes field
func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// AppendString appends a non empty string field
func AppendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// AppendMessage appends an embedded message. Embedded messages are always
// written, even when empty, so that a present sub message survives a round trip.
func AppendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.Marshal())
}
