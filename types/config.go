// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 节点配置
type Config struct {
	Title     string          `json:"title,omitempty"`
	Log       *Log            `json:"log,omitempty"`
	Store     *Store          `json:"store,omitempty"`
	RPC       *RPC            `toml:"rpc" json:"rpc,omitempty"`
	Consensus *Consensus      `json:"consensus,omitempty"`
	Exec      *Exec           `json:"exec,omitempty"`
	Genesis   []*GenesisAlloc `json:"genesis,omitempty"`
	Metrics   *Metrics        `json:"metrics,omitempty"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
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

// Store 存储配置
type Store struct {
	Name    string `json:"name,omitempty"`
	Driver  string `json:"driver,omitempty"`
	DbPath  string `json:"dbPath,omitempty"`
	DbCache int32  `json:"dbCache,omitempty"`
}

// RPC rpc 配置
type RPC struct {
	JrpcBindAddr string   `json:"jrpcBindAddr,omitempty"`
	Whitelist    []string `json:"whitelist,omitempty"`
	JrpcUserName string   `json:"jrpcUserName,omitempty"`
	JrpcPasswd   string   `json:"jrpcPasswd,omitempty"`
	// 每个ip每秒的请求数，0 表示不限流
	RateLimit float64 `json:"rateLimit,omitempty"`
	RateBurst int64   `json:"rateBurst,omitempty"`
	// 允许跨域访问的来源，为空时不开启 cors
	CorsAllowedOrigins []string `json:"corsAllowedOrigins,omitempty"`
}

// Consensus 出块配置
type Consensus struct {
	// 出块间隔，单位毫秒
	BlockInterval int64 `json:"blockInterval,omitempty"`
}

// Exec 执行器配置
type Exec struct {
	// 可以执行特权操作的地址
	SuperManager []string `json:"superManager,omitempty"`
	// 账户存活的最小余额
	ExistentialDeposit int64 `json:"existentialDeposit,omitempty"`
}

// GenesisAlloc 创世分配，Exec 不为空时分配给该执行器地址
type GenesisAlloc struct {
	Addr   string `json:"addr,omitempty"`
	Exec   string `json:"exec,omitempty"`
	Amount int64  `json:"amount,omitempty"`
}

// Metrics 统计配置
type Metrics struct {
	Enable bool `json:"enable,omitempty"`
	// 输出间隔，单位秒
	Duration int64 `json:"duration,omitempty"`
}

// ConfigSubModule 子模块配置，执行器名 -> json
type ConfigSubModule struct {
	Exec map[string][]byte
}

type subModule struct {
	Exec map[string]interface{}
}

// InitCfg 从文件初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read config %s", path)
	}
	return InitCfgString(string(data))
}

// InitCfgString 解析配置字符串并填充默认值
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode config")
	}
	fillDefault(&cfg)
	var sub subModule
	if _, err := tml.Decode(cfgstring, &sub); err != nil {
		return nil, nil, errors.Wrap(err, "decode sub config")
	}
	subcfg, err := parseSubModule(&sub)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, subcfg, nil
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
		cfg.Store.Name = "betting"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "leveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	if cfg.Consensus == nil {
		cfg.Consensus = &Consensus{}
	}
	if cfg.Consensus.BlockInterval <= 0 {
		cfg.Consensus.BlockInterval = 1000
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.Duration <= 0 {
		cfg.Metrics.Duration = 60
	}
}

func parseSubModule(cfg *subModule) (*ConfigSubModule, error) {
	var subcfg ConfigSubModule
	subcfg.Exec = make(map[string][]byte)
	sub, ok := cfg.Exec["sub"]
	if !ok {
		return &subcfg, nil
	}
	items, ok := sub.(map[string]interface{})
	if !ok {
		return nil, errors.Wrap(ErrInvalidParam, "exec.sub must be a table")
	}
	for k, v := range items {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "exec.sub.%s", k)
		}
		subcfg.Exec[k] = data
	}
	return &subcfg, nil
}
