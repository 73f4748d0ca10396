// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/33cn/dice/common"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/pkg/errors"
)

// entropy source names
const (
	EntropyBlockTime = "blocktime"
	EntropyHash      = "hash"
	EntropyHMAC      = "hmac"
)

// ErrUnknownEntropy 配置了不存在的随机数来源
var ErrUnknownEntropy = errors.New("ErrUnknownEntropy")

// EntropyInput 开奖使用的输入，全部在交易执行之前就已经确定
type EntropyInput struct {
	TxHash     []byte
	Player     string
	BlockTime  int64
	Height     int64
	ParentHash []byte
}

// EntropySource 把输入映射到 1..6, 相同的输入总是得到相同的点数
type EntropySource interface {
	Name() string
	Roll(in *EntropyInput) int32
}

// NewEntropySource 按名字创建随机数来源, hmac 需要 serverSeed
func NewEntropySource(name, serverSeed string) (EntropySource, error) {
	switch name {
	case EntropyBlockTime:
		return blockTimeEntropy{}, nil
	case EntropyHash, "":
		return hashEntropy{}, nil
	case EntropyHMAC:
		if serverSeed == "" {
			return nil, errors.Wrap(ErrUnknownEntropy, "hmac entropy needs serverSeed")
		}
		return &hmacEntropy{seed: []byte(serverSeed)}, nil
	}
	return nil, errors.Wrapf(ErrUnknownEntropy, "entropy %s", name)
}

func toNumber(v uint64) int32 {
	return int32(v%uint64(dty.MaxNumber)) + dty.MinNumber
}

// 只用区块时间，出块的人可以控制结果
type blockTimeEntropy struct{}

func (blockTimeEntropy) Name() string { return EntropyBlockTime }

func (blockTimeEntropy) Roll(in *EntropyInput) int32 {
	n := in.BlockTime % int64(dty.MaxNumber)
	if n < 0 {
		n += int64(dty.MaxNumber)
	}
	return int32(n) + dty.MinNumber
}

// sha256(player || blocktime(le) || txhash) 的第一个字节
type hashEntropy struct{}

func (hashEntropy) Name() string { return EntropyHash }

func (hashEntropy) Roll(in *EntropyInput) int32 {
	var t [8]byte
	binary.LittleEndian.PutUint64(t[:], uint64(in.BlockTime))
	data := make([]byte, 0, len(in.Player)+len(t)+len(in.TxHash))
	data = append(data, in.Player...)
	data = append(data, t[:]...)
	data = append(data, in.TxHash...)
	sum := common.Sha256(data)
	return toNumber(uint64(sum[0]))
}

// HMAC-SHA256(serverSeed, "player:txhash:height"), 公布 serverSeed 之后任何人都可以验证
type hmacEntropy struct {
	seed []byte
}

func (h *hmacEntropy) Name() string { return EntropyHMAC }

func (h *hmacEntropy) Roll(in *EntropyInput) int32 {
	message := fmt.Sprintf("%s:%s:%d", in.Player, common.ToHex(in.TxHash), in.Height)
	mac := hmac.New(sha256.New, h.seed)
	mac.Write([]byte(message))
	sum := mac.Sum(nil)
	return toNumber(binary.BigEndian.Uint64(sum[:8]))
}
