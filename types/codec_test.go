// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestCodecSkipUnknownFields(t *testing.T) {
	acc := &Account{Balance: 100, Frozen: 5, Addr: "addr"}
	data := acc.Marshal()
	//新版本增加的字段旧版本可以跳过
	data = protowire.AppendTag(data, 20, protowire.Fixed64Type)
	data = protowire.AppendFixed64(data, 7)
	data = AppendString(data, 21, "extra")

	var got Account
	require.NoError(t, Decode(data, &got))
	assert.Equal(t, *acc, got)
}

func TestCodecDecodeError(t *testing.T) {
	var acc Account
	err := Decode([]byte{0x12, 0x05, 'a'}, &acc)
	assert.Equal(t, ErrDecode, errors.Cause(err))
	err = Decode([]byte{0xff}, &acc)
	assert.Equal(t, ErrDecode, errors.Cause(err))
}

func TestCodecZeroValues(t *testing.T) {
	assert.Empty(t, (&Account{}).Marshal())
	//空的子消息也要保留
	r := &ReceiptAccountTransfer{Prev: &Account{}, Current: &Account{Balance: 1}}
	var got ReceiptAccountTransfer
	require.NoError(t, Decode(Encode(r), &got))
	require.NotNil(t, got.Prev)
	assert.Equal(t, int64(1), got.Current.Balance)
}

func TestBlockCodec(t *testing.T) {
	block := &Block{
		ParentHash: []byte("parent"),
		Height:     10,
		BlockTime:  GenesisBlockTime,
		Txs: []*Transaction{
			CreateTx("coins", &Int64{Data: 1}, GenesisAddr, 1),
			CreateTx("dice", &Int64{Data: 2}, GenesisAddr, 2),
		},
	}
	var got Block
	require.NoError(t, Decode(Encode(block), &got))
	assert.Equal(t, block, &got)
	assert.Equal(t, block.Hash(), got.Hash())

	header := &Header{Height: 10, BlockTime: 1, Hash: block.Hash(), TxCount: 2}
	var h Header
	require.NoError(t, Decode(Encode(header), &h))
	assert.Equal(t, header, &h)
}
