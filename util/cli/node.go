// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"sync"
	"time"

	dbm "github.com/33cn/betting/common/db"
	"github.com/33cn/betting/executor"
	"github.com/33cn/betting/metrics"
	"github.com/33cn/betting/pluginmgr"
	"github.com/33cn/betting/rpc"
	"github.com/33cn/betting/types"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Node 单节点：数据库、执行器、定时出块以及 rpc
type Node struct {
	cfg    *types.Config
	db     dbm.DB
	exec   *executor.Executor
	rpc    *rpc.RPC
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNode 按配置加载各个模块，sub 为插件的子配置
func NewNode(cfg *types.Config, sub *types.ConfigSubModule) (*Node, error) {
	log.Info("loading plugins")
	pluginmgr.InitExec(sub.Exec)

	log.Info("loading store module", "driver", cfg.Store.Driver, "path", cfg.Store.DbPath)
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}

	log.Info("loading execs module")
	exec := executor.New(cfg.Exec, db)
	if _, err := exec.Genesis(cfg.Genesis); err != nil && err != types.ErrGenesisDone {
		db.Close()
		return nil, errors.Wrap(err, "genesis")
	}

	log.Info("loading rpc module")
	r := rpc.New(cfg.RPC, exec)
	if cfg.Metrics.Enable {
		ms := metrics.NewService(types.Version)
		ms.MustRegisterMetrics(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: metrics.Namespace,
			Name:      "block_height",
			Help:      "Current block height.",
		}, func() float64 {
			return float64(exec.Height())
		}))
		r.SetMetrics(ms)
		metrics.StartMetrics(cfg.Metrics)
	}

	n := &Node{cfg: cfg, db: db, exec: exec, rpc: r}
	n.ctx, n.cancel = context.WithCancel(context.Background())
	return n, nil
}

// Start 开始监听 rpc 并定时出块，返回 rpc 端口
func (n *Node) Start() (int, error) {
	port, err := n.rpc.Listen()
	if err != nil {
		return 0, err
	}
	n.wg.Add(1)
	go n.produceBlocks()
	return port, nil
}

// 每个区块间隔高度加一，区块内的交易按到达顺序执行
func (n *Node) produceBlocks() {
	defer n.wg.Done()
	ticker := time.NewTicker(time.Duration(n.cfg.Consensus.BlockInterval) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-n.ctx.Done():
			return
		case <-ticker.C:
			if _, err := n.exec.NextBlock(); err != nil {
				log.Error("next block", "err", err)
			}
		}
	}
}

// Executor 执行器
func (n *Node) Executor() *executor.Executor {
	return n.exec
}

// Close 按加载的逆序关闭
func (n *Node) Close() {
	n.cancel()
	n.wg.Wait()
	log.Info("begin close rpc module")
	n.rpc.Close()
	log.Info("begin close execs module")
	n.exec.Close()
	log.Info("begin close store module")
	n.db.Close()
}
