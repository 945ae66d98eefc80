// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/rs/cors"
)

// 单个请求 body 的最大长度
const maxBodySize = 1 << 20

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

func (c *HTTPConn) Read(p []byte) (n int, err error)  { return c.in.Read(p) }
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }
func (c *HTTPConn) Close() error                      { return nil }

type serverResponse struct {
	ID     interface{} `json:"id"`
	Result interface{} `json:"result"`
	Error  interface{} `json:"error"`
}

func writeError(w http.ResponseWriter, status int, errstr string) {
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(status)
	resp, err := json.Marshal(&serverResponse{nil, nil, errstr})
	if err != nil {
		log.Debug("json marshal error, nerver happen")
		return
	}
	_, err = w.Write(resp)
	if err != nil {
		log.Debug("Write", "err", err)
	}
}

// Handler jsonrpc 以及 /metrics 的 http 入口
func (j *JSONRPCServer) Handler() http.Handler {
	var h http.Handler = j.guard(j.mux)
	if len(rpcCfg.CorsAllowedOrigins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins:   rpcCfg.CorsAllowedOrigins,
			AllowedMethods:   []string{http.MethodPost, http.MethodGet, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}).Handler(h)
	}
	return h
}

// 白名单、basic auth 以及按 ip 限流
func (j *JSONRPCServer) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			j.reject(w, "addr", http.StatusBadRequest, err.Error())
			return
		}
		if !checkIPWhitelist(ip) {
			j.reject(w, "whitelist", http.StatusUnauthorized, fmt.Sprintf("The %s Address is not authorized!", ip))
			return
		}
		if !checkBasicAuth(r) {
			w.Header().Set("WWW-Authenticate", `Basic realm="betting"`)
			j.reject(w, "auth", http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !j.allow(ip) {
			j.reject(w, "ratelimit", http.StatusTooManyRequests, "Too Many Requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (j *JSONRPCServer) reject(w http.ResponseWriter, reason string, status int, errstr string) {
	j.metrics.Rejected.WithLabelValues(reason).Inc()
	writeError(w, status, errstr)
}

func (j *JSONRPCServer) allow(ip string) bool {
	if j.limiter == nil {
		return true
	}
	if j.limiter.Remaining(ip) <= 0 {
		return false
	}
	j.limiter.Add(ip, 1)
	return true
}

func (j *JSONRPCServer) serveJSONRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST is supported")
		return
	}
	start := time.Now()
	defer func() {
		j.metrics.Duration.Observe(time.Since(start).Seconds())
	}()
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	codec := &meteredCodec{
		ServerCodec: jsonrpc.NewServerCodec(&HTTPConn{in: body, out: w}),
		m:           j.metrics,
	}
	w.Header().Set("Content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := j.s.ServeRequest(codec)
	if err != nil {
		log.Debug("Error while serving JSON request", "err", err)
	}
}

func checkBasicAuth(r *http.Request) bool {
	if rpcCfg.JrpcUserName == "" && rpcCfg.JrpcPasswd == "" {
		return true
	}

	s := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(s) != 2 {
		return false
	}

	b, err := base64.StdEncoding.DecodeString(s[1])
	if err != nil {
		return false
	}

	pair := strings.SplitN(string(b), ":", 2)
	if len(pair) != 2 {
		return false
	}
	return pair[0] == rpcCfg.JrpcUserName && pair[1] == rpcCfg.JrpcPasswd
}

func checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip.IsLoopback() {
		return true
	}
	ipv4 := ip.To4()
	if ipv4 != nil {
		addr = ipv4.String()
	}
	if _, ok := remoteIPWhitelist["0.0.0.0"]; ok {
		return true
	}
	if _, ok := remoteIPWhitelist[addr]; ok {
		return true
	}
	return false
}
