// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address derives and validates base58check account addresses.
// Executor addresses are derived from the executor name, user addresses
// from an arbitrary seed label, so the ledger never needs key material.
package address

import (
	"bytes"
	"encoding/hex"

	"github.com/33cn/dice/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

var (
	execSeed = []byte("address seed bytes for public key")
	userSeed = []byte("address seed bytes for user label")

	addressCache      *lru.Cache
	checkAddressCache *lru.Cache
)

// errors
var (
	ErrDecodeBase58 = errors.New("ErrDecodeBase58")
	ErrAddrTooShort = errors.New("ErrAddrTooShort")
	ErrAddrChecksum = errors.New("ErrAddrChecksum")
)

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

func init() {
	var err error
	addressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
	checkAddressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
}

func seedPubKey(seed []byte, name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], seed...)
	buf = append(buf, []byte(name)...)
	hash := common.Sha2Sum(buf)
	return hash[:]
}

//ExecAddress 执行器地址，计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addrstr := PubKeyToAddress(seedPubKey(execSeed, name)).String()
	addressCache.Add(name, addrstr)
	return addrstr
}

//LabelAddress 由名字生成的用户地址，本地节点和测试使用
func LabelAddress(label string) string {
	return PubKeyToAddress(seedPubKey(userSeed, label)).String()
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = common.CopyBytes(in)
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

//CheckAddress 检查地址, 结果会被缓存
func CheckAddress(addr string) error {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, err := NewAddrFromString(addr)
	if err != nil {
		checkAddressCache.Add(addr, err)
		return err
	}
	checkAddressCache.Add(addr, nil)
	return nil
}

//NewAddrFromString 解析 base58 地址
func NewAddrFromString(hs string) (*Address, error) {
	dec := base58.Decode(hs)
	if len(dec) == 0 {
		return nil, errors.Wrapf(ErrDecodeBase58, "addr %q", hs)
	}
	if len(dec) != 25 {
		return nil, errors.Wrapf(ErrAddrTooShort, "addr %s", hex.EncodeToString(dec))
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		return nil, errors.Wrapf(ErrAddrChecksum, "addr %s", hs)
	}
	a := new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = common.CopyBytes(dec[21:25])
	a.Enc58str = hs
	return a, nil
}

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum)
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}
