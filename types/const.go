// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var (
	// GenesisAddr 默认的发币地址，本地节点的 faucet 交易只接受该地址
	GenesisAddr = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	// GenesisBlockTime 创世区块时间
	GenesisBlockTime int64 = 1514533394
	// EmptyValue 数据库中的空值
	EmptyValue = []byte("FFFFFFFFemptyBVBiCj5jvE15pEiwro8TQRGnJSNsJF")
)

// coin conversation
const (
	Coin           int64 = 1e8
	MaxCoin        int64 = 1e17
	MaxTxSize            = 100000 //100K
	MaxTxsPerBlock       = 100000
	// 金额的小数位数
	CoinPrecision = 8
)

// exec result
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// log type
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogFee      = 2
	TyLogTransfer = 3
	TyLogGenesis  = 4
	TyLogDeposit  = 5
)

// MaxListCount 单次查询最多返回的记录数
const MaxListCount = 100

var logTyName = map[int32]string{
	TyLogReserved: "LogReserved",
	TyLogErr:      "LogErr",
	TyLogFee:      "LogFee",
	TyLogTransfer: "LogTransfer",
	TyLogGenesis:  "LogGenesis",
	TyLogDeposit:  "LogDeposit",
}

// RegisterLogType 注册 dapp 的 log 名称，用于查询时显示
func RegisterLogType(ty int32, name string) {
	if _, ok := logTyName[ty]; ok {
		panic("log type registered twice: " + name)
	}
	logTyName[ty] = name
}

// GetLogName 通过 log 类型获取名称
func GetLogName(ty int32) string {
	if name, ok := logTyName[ty]; ok {
		return name
	}
	return "LogReserved"
}

// key prefix
var (
	// StatePrefix 状态数据(共识数据)的前缀
	StatePrefix = []byte("mavl-")
	// LocalPrefix 本地索引的前缀
	LocalPrefix = []byte("LODB")
)

// FindExecer 从 state key 中取出执行器名: mavl-{execer}-...
func FindExecer(key []byte) (execer []byte, err error) {
	if len(key) <= len(StatePrefix) || string(key[:len(StatePrefix)]) != string(StatePrefix) {
		return nil, ErrMavlKeyNotStartWithMavl
	}
	for i := len(StatePrefix); i < len(key); i++ {
		if key[i] == '-' {
			return key[len(StatePrefix):i], nil
		}
	}
	return nil, ErrNoExecerInMavlKey
}

// CalcLocalPrefix 执行器的本地索引前缀: LODB-{execer}-
func CalcLocalPrefix(execer []byte) []byte {
	var prefix []byte
	prefix = append(prefix, LocalPrefix...)
	prefix = append(prefix, '-')
	prefix = append(prefix, execer...)
	prefix = append(prefix, '-')
	return prefix
}
