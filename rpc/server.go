// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc json rpc 服务，系统接口注册为 Chain，插件接口由 pluginmgr 注册
package rpc

import (
	"math"
	"net"
	"net/http"
	"net/rpc"
	"time"

	"github.com/33cn/betting/metrics"
	"github.com/33cn/betting/pluginmgr"
	rpctypes "github.com/33cn/betting/rpc/types"
	"github.com/33cn/betting/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/kevinms/leakybucket-go"
)

var (
	remoteIPWhitelist = make(map[string]bool)
	rpcCfg            = &types.RPC{}
	log               = log15.New("module", "rpc")
)

// JSONRPCServer  a json rpcserver object
type JSONRPCServer struct {
	jrpc    *Chain
	s       *rpc.Server
	mux     *http.ServeMux
	srv     *http.Server
	limiter *leakybucket.Collector
	metrics *rpcMetrics
}

// NewJSONRPCServer new json rpcserver object
func NewJSONRPCServer(api rpctypes.API) *JSONRPCServer {
	j := &JSONRPCServer{
		jrpc:    &Chain{},
		s:       rpc.NewServer(),
		mux:     http.NewServeMux(),
		metrics: newRPCMetrics(),
	}
	j.jrpc.cli.API = api
	err := j.s.RegisterName("Chain", j.jrpc)
	if err != nil {
		panic(err)
	}
	if rpcCfg.RateLimit > 0 {
		burst := rpcCfg.RateBurst
		if burst <= 0 {
			burst = int64(math.Ceil(rpcCfg.RateLimit))
		}
		j.limiter = leakybucket.NewCollector(rpcCfg.RateLimit, burst, true)
	}
	j.mux.HandleFunc("/", j.serveJSONRPC)
	return j
}

// Listen 监听 jrpcBindAddr，返回实际的端口
func (j *JSONRPCServer) Listen() (int, error) {
	listener, err := net.Listen("tcp", rpcCfg.JrpcBindAddr)
	if err != nil {
		return 0, err
	}
	j.srv = &http.Server{Handler: j.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		err := j.srv.Serve(listener)
		if err != nil && err != http.ErrServerClosed {
			log.Error("jrpc serve", "err", err)
		}
	}()
	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Close json rpcserver close
func (j *JSONRPCServer) Close() {
	if j.srv != nil {
		err := j.srv.Close()
		if err != nil {
			log.Error("JSONRPCServer close", "err", err)
		}
	}
}

// InitCfg  interfaces
func InitCfg(cfg *types.RPC) {
	if cfg == nil {
		cfg = &types.RPC{}
	}
	rpcCfg = cfg
	InitIPWhitelist(cfg)
}

// InitIPWhitelist init ip whitelist，"*" 表示允许所有地址
func InitIPWhitelist(cfg *types.RPC) {
	remoteIPWhitelist = make(map[string]bool)
	if len(cfg.Whitelist) == 1 && cfg.Whitelist[0] == "*" {
		remoteIPWhitelist["0.0.0.0"] = true
		return
	}
	for _, addr := range cfg.Whitelist {
		remoteIPWhitelist[addr] = true
	}
}

// RPC a type object
type RPC struct {
	cfg  *types.RPC
	japi *JSONRPCServer
	api  rpctypes.API
}

// New produce a rpc by cfg，同时注册所有插件的 rpc
func New(cfg *types.RPC, api rpctypes.API) *RPC {
	InitCfg(cfg)
	r := &RPC{cfg: rpcCfg, api: api}
	r.japi = NewJSONRPCServer(api)
	pluginmgr.AddRPC(r)
	return r
}

// SetMetrics 注册 rpc 的统计指标并开启 /metrics
func (r *RPC) SetMetrics(s *metrics.Service) {
	s.Register(r.japi.metrics)
	r.japi.mux.Handle("/metrics", s.Handler())
}

// JRPC return jrpc
func (r *RPC) JRPC() *rpc.Server {
	return r.japi.s
}

// API 节点接口
func (r *RPC) API() rpctypes.API {
	return r.api
}

// Handler http 入口，测试时不监听端口直接使用
func (r *RPC) Handler() http.Handler {
	return r.japi.Handler()
}

// Listen rpc listen
func (r *RPC) Listen() (port int, err error) {
	for i := 0; i < 10; i++ {
		port, err = r.japi.Listen()
		if err != nil {
			log.Error("Jrpc Listen", "err", err)
			time.Sleep(time.Second)
			continue
		}
		break
	}
	if err != nil {
		return 0, err
	}
	log.Info("rpc Listen port", "jrpc", port)
	return port, nil
}

// Close rpc close
func (r *RPC) Close() {
	r.japi.Close()
}
