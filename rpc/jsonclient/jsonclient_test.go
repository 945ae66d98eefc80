// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonclient

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Echo struct{}

type EchoReq struct {
	Msg string `json:"msg"`
}

func (e *Echo) Say(in *EchoReq, result *interface{}) error {
	if in.Msg == "" {
		return errors.New("ErrEmpty")
	}
	*result = map[string]string{"msg": in.Msg}
	return nil
}

type conn struct {
	io.Reader
	io.Writer
}

func (c *conn) Close() error { return nil }

func newServer(t *testing.T) *httptest.Server {
	server := rpc.NewServer()
	require.NoError(t, server.Register(&Echo{}))
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-type", "application/json")
		_ = server.ServeRequest(jsonrpc.NewServerCodec(&conn{Reader: r.Body, Writer: w}))
	}))
}

func TestJSONClientCall(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	client, err := NewJSONClient(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	var res map[string]string
	require.NoError(t, client.Call("Echo.Say", &EchoReq{Msg: "hi"}, &res))
	assert.Equal(t, "hi", res["msg"])

	err = client.Call("Echo.Say", &EchoReq{}, &res)
	require.Error(t, err)
	assert.Equal(t, "ErrEmpty", err.Error())

	err = client.Call("Echo.Nothing", &EchoReq{}, &res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't find method")
}

func TestJSONClientBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusUnauthorized)
	}))
	defer srv.Close()
	client, err := NewJSONClient(srv.URL)
	require.NoError(t, err)
	err = client.Call("Echo.Say", &EchoReq{Msg: "hi"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")

	_, err = NewJSONClient("")
	assert.Error(t, err)
}

func TestRPCCtx(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	var res map[string]string
	ctx := NewRPCCtx(srv.URL, "Echo.Say", &EchoReq{Msg: "hi"}, &res)
	ctx.SetResultCb(func(r interface{}) (interface{}, error) {
		return (*r.(*map[string]string))["msg"] + "!", nil
	})
	result, err := ctx.RunResult()
	require.NoError(t, err)
	assert.Equal(t, "hi!", result)

	var out, errOut bytes.Buffer
	NewRPCCtx(srv.URL, "Echo.Say", &EchoReq{}, &res).RunTo(&out, &errOut)
	assert.Empty(t, out.String())
	assert.Equal(t, "ErrEmpty\n", errOut.String())

	out.Reset()
	NewRPCCtx(srv.URL, "Echo.Say", &EchoReq{Msg: "x"}, &res).RunTo(&out, &errOut)
	assert.Contains(t, out.String(), `"msg": "x"`)
}
