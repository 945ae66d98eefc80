// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"net/rpc"
	"testing"

	"github.com/33cn/betting/rpc/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

type testServer struct {
	s *rpc.Server
}

func (t *testServer) JRPC() *rpc.Server { return t.s }
func (t *testServer) API() types.API    { return nil }

func TestRegister(t *testing.T) {
	var gotSub []byte
	var gotName string
	var rpcName string
	Register(&PluginBase{
		Name:     "plugin-test",
		ExecName: "exectest",
		Exec: func(name string, sub []byte) {
			gotName = name
			gotSub = sub
		},
		Cmd: func() *cobra.Command {
			return &cobra.Command{Use: "exectest"}
		},
		RPC: func(name string, s types.RPCServer) {
			rpcName = name
		},
	})
	assert.True(t, HasExec("exectest"))
	assert.False(t, HasExec("nothing"))

	InitExec(map[string][]byte{"exectest": []byte(`{"a":1}`)})
	assert.Equal(t, "exectest", gotName)
	assert.Equal(t, `{"a":1}`, string(gotSub))
	InitExec(nil)
	assert.Nil(t, gotSub)

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	found := false
	for _, c := range root.Commands() {
		if c.Use == "exectest" {
			found = true
		}
	}
	assert.True(t, found)

	AddRPC(&testServer{s: rpc.NewServer()})
	assert.Equal(t, "exectest", rpcName)

	assert.Panics(t, func() {
		Register(&PluginBase{Name: "plugin-test"})
	})
	assert.Panics(t, func() {
		Register(&PluginBase{})
	})
}
