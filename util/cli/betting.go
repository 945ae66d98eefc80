// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli RunBetting 加载各个模块组成节点，Run 为命令行客户端入口
package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	clog "github.com/33cn/betting/common/log"
	"github.com/33cn/betting/types"
	"github.com/33cn/betting/util"
	log15 "github.com/inconshreveable/log15"
)

var log = log15.New("module", "main")

var (
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of betting, include logs and datas")
	versionCmd = flag.Bool("v", false, "version")
)

//RunBetting : run betting node
func RunBetting(name string) {
	flag.Parse()
	if *versionCmd {
		fmt.Println(types.Version)
		return
	}
	cfg, sub, err := loadConfig(name, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *datadir != "" {
		util.ResetDatadir(cfg, *datadir)
	}
	clog.SetFileLog(cfg.Log)
	log.Info(cfg.Title + "-betting:" + types.Version)

	node, err := NewNode(cfg, sub)
	if err != nil {
		log.Crit("load node", "err", err)
		os.Exit(1)
	}
	port, err := node.Start()
	if err != nil {
		log.Crit("start node", "err", err)
		node.Close()
		os.Exit(1)
	}
	log.Info("node started", "rpc port", port, "height", node.Executor().Height())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	log.Info("shutting down")
	node.Close()
}

// 没有指定配置文件时使用 <name>.toml，文件不存在时使用默认配置
func loadConfig(name, path string) (*types.Config, *types.ConfigSubModule, error) {
	if path == "" {
		if name == "" {
			name = "betting"
		}
		path = name + ".toml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Info("config file not found, use default config", "path", path)
			return types.InitCfgString(types.GetDefaultCfgstring())
		}
	}
	return types.InitCfg(path)
}
