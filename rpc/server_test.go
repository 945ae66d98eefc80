// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/33cn/betting/common/address"
	"github.com/33cn/betting/metrics"
	"github.com/33cn/betting/rpc/jsonclient"
	rpctypes "github.com/33cn/betting/rpc/types"
	"github.com/33cn/betting/system/dapp"
	"github.com/33cn/betting/types"
	"github.com/33cn/betting/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAPI struct{}

func (m *mockAPI) CheckTx(tx *types.Transaction) error { return nil }
func (m *mockAPI) Exec(tx *types.Transaction) (*types.Receipt, error) {
	return &types.Receipt{Ty: types.ExecOk}, nil
}
func (m *mockAPI) Query(driver string, funcName string, param types.Message) (types.Message, error) {
	return nil, types.ErrQueryNotSupport
}
func (m *mockAPI) GetAccount(addr string) (*types.Account, error) {
	if err := address.CheckAddress(addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return &types.Account{Addr: addr, Balance: 2 * types.Coin}, nil
}
func (m *mockAPI) Height() int64 { return 12 }

func TestCheckIPWhitelist(t *testing.T) {
	InitCfg(&types.RPC{Whitelist: []string{"192.168.0.1"}})
	assert.True(t, checkIPWhitelist("127.0.0.1"))
	assert.True(t, checkIPWhitelist("::1"))
	assert.True(t, checkIPWhitelist("192.168.0.1"))
	assert.True(t, checkIPWhitelist("::ffff:192.168.0.1"))
	assert.False(t, checkIPWhitelist("192.168.0.2"))

	InitCfg(&types.RPC{Whitelist: []string{"*"}})
	assert.True(t, checkIPWhitelist("192.168.0.2"))
}

func TestCheckBasicAuth(t *testing.T) {
	InitCfg(&types.RPC{})
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.True(t, checkBasicAuth(r))

	InitCfg(&types.RPC{JrpcUserName: "user", JrpcPasswd: "pass"})
	assert.False(t, checkBasicAuth(r))
	r.SetBasicAuth("user", "wrong")
	assert.False(t, checkBasicAuth(r))
	r.SetBasicAuth("user", "pass")
	assert.True(t, checkBasicAuth(r))
}

func TestChainService(t *testing.T) {
	r := New(&types.RPC{}, &mockAPI{})
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()
	client, err := jsonclient.NewJSONClient(srv.URL)
	require.NoError(t, err)

	var header rpctypes.Header
	require.NoError(t, client.Call("Chain.GetHeight", &rpctypes.ReqNil{}, &header))
	assert.Equal(t, int64(12), header.Height)

	addr := address.NameToAddress("alice")
	var acc rpctypes.Account
	require.NoError(t, client.Call("Chain.GetAccount", &rpctypes.ReqAddr{Addr: addr}, &acc))
	assert.Equal(t, addr, acc.Addr)
	assert.Equal(t, "2.0000", acc.BalanceFm)

	err = client.Call("Chain.GetAccount", &rpctypes.ReqAddr{Addr: "bad"}, &acc)
	require.Error(t, err)
	assert.Equal(t, types.ErrInvalidAddress.Error(), err.Error())

	var execAddr string
	require.NoError(t, client.Call("Chain.GetExecAddr", &rpctypes.ReqName{Name: "betting"}, &execAddr))
	assert.Equal(t, dapp.ExecAddress("betting"), execAddr)

	_, priv := util.Genaddress()
	data := util.CreateSignedTx(types.NewTx("coins", &types.ReqNil{}, 1), priv)
	var reply rpctypes.ReplyTxResult
	require.NoError(t, client.Call("Chain.SendTransaction", &rpctypes.RawParm{Data: data}, &reply))
	assert.Equal(t, "ExecOk", reply.Receipt.TyName)
	assert.Equal(t, int64(12), reply.Height)

	err = client.Call("Chain.SendTransaction", &rpctypes.RawParm{Data: "0xzz"}, &reply)
	require.Error(t, err)
	assert.Equal(t, types.ErrInvalidParam.Error(), err.Error())
	err = client.Call("Chain.SendTransaction", &rpctypes.RawParm{}, &reply)
	require.Error(t, err)
}

func TestBasicAuthOverHTTP(t *testing.T) {
	r := New(&types.RPC{JrpcUserName: "user", JrpcPasswd: "pass"}, &mockAPI{})
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	client, err := jsonclient.NewJSONClient(srv.URL)
	require.NoError(t, err)
	var header rpctypes.Header
	err = client.Call("Chain.GetHeight", &rpctypes.ReqNil{}, &header)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	client, err = jsonclient.NewJSONClient(strings.Replace(srv.URL, "http://", "http://user:pass@", 1))
	require.NoError(t, err)
	require.NoError(t, client.Call("Chain.GetHeight", &rpctypes.ReqNil{}, &header))
}

func TestWhitelistAndRateLimit(t *testing.T) {
	r := New(&types.RPC{Whitelist: []string{"192.0.2.1"}, RateLimit: 0.001, RateBurst: 2}, &mockAPI{})
	h := r.Handler()
	body := `{"method":"Chain.GetHeight","params":[{}],"id":"1"}`
	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}
	assert.Equal(t, http.StatusUnauthorized, do("192.0.2.9:1000").Code)

	w := do("192.0.2.1:1000")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"height":12`)
	assert.Equal(t, http.StatusOK, do("192.0.2.1:1001").Code)
	assert.Equal(t, http.StatusTooManyRequests, do("192.0.2.1:1002").Code)
}

func TestMethodNotAllowed(t *testing.T) {
	r := New(&types.RPC{}, &mockAPI{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:1000"
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCors(t *testing.T) {
	r := New(&types.RPC{CorsAllowedOrigins: []string{"http://example.com"}}, &mockAPI{})
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.RemoteAddr = "127.0.0.1:1000"
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	assert.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := New(&types.RPC{}, &mockAPI{})
	r.SetMetrics(metrics.NewService("test"))
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	client, err := jsonclient.NewJSONClient(srv.URL)
	require.NoError(t, err)
	var header rpctypes.Header
	require.NoError(t, client.Call("Chain.GetHeight", &rpctypes.ReqNil{}, &header))
	var acc rpctypes.Account
	require.Error(t, client.Call("Chain.GetAccount", &rpctypes.ReqAddr{Addr: "bad"}, &acc))

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `betting_jrpc_requests_total{method="Chain.GetHeight"} 1`)
	assert.Contains(t, text, `betting_jrpc_errors_total{method="Chain.GetAccount"} 1`)
}

func TestListen(t *testing.T) {
	r := New(&types.RPC{JrpcBindAddr: "localhost:0"}, &mockAPI{})
	port, err := r.Listen()
	require.NoError(t, err)
	assert.True(t, port > 0)
	r.Close()
}
