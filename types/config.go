// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 配置文件结构
type Config struct {
	Title   string   `json:"title,omitempty"`
	Log     *Log     `json:"log,omitempty"`
	Store   *Store   `json:"store,omitempty"`
	Exec    *Exec    `json:"exec,omitempty"`
	Metrics *Metrics `json:"metrics,omitempty"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，为空时只输出到控制台
	LogFile string `json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `json:"maxAge,omitempty"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `json:"callerFunction,omitempty"`
}

// Store 数据库配置
type Store struct {
	Name string `json:"name,omitempty"`
	// 数据库类型 memdb, leveldb/goleveldb, gobadgerdb
	Driver  string `json:"driver,omitempty"`
	DbPath  string `json:"dbPath,omitempty"`
	DbCache int32  `json:"dbCache,omitempty"`
}

// Exec 执行器配置，Sub 保存每个执行器自己的配置
type Exec struct {
	Sub map[string]interface{} `json:"sub,omitempty"`
}

// Metrics 统计配置
type Metrics struct {
	EnableMetrics bool `json:"enableMetrics,omitempty"`
	// log: 定时打印到日志
	DataEmitMode string `json:"dataEmitMode,omitempty"`
	// 打印间隔，单位秒
	Duration int64 `json:"duration,omitempty"`
}

// InitCfg 读取配置文件
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "InitCfg %s", path)
	}
	fillDefault(&cfg)
	return &cfg, nil
}

// LoadCfg path 为空时使用默认配置, 否则读取配置文件
func LoadCfg(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return InitCfg(path)
}

// InitCfgString 从字符串读取配置
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "InitCfgString")
	}
	fillDefault(&cfg)
	return &cfg, nil
}

// DefaultConfig 全部使用默认值的配置
func DefaultConfig() *Config {
	cfg := &Config{}
	fillDefault(cfg)
	return cfg
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "dice"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "leveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Store.DbCache == 0 {
		cfg.Store.DbCache = 128
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.Sub == nil {
		cfg.Exec.Sub = make(map[string]interface{})
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.DataEmitMode == "" {
		cfg.Metrics.DataEmitMode = "log"
	}
	if cfg.Metrics.Duration == 0 {
		cfg.Metrics.Duration = 60
	}
}

// SubConfig 每个执行器的子配置，以 json 编码交给执行器自行解析
func (e *Exec) SubConfig() map[string][]byte {
	sub := make(map[string][]byte)
	for name, v := range e.Sub {
		data, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		sub[name] = data
	}
	return sub
}

// MustDecode 解析 json 格式的子配置，数据为空时不做任何事
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		panic(err)
	}
}
