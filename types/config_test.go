// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCfgStringDefault(t *testing.T) {
	cfg, sub, err := InitCfgString(GetDefaultCfgstring())
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "localhost:8801", cfg.RPC.JrpcBindAddr)
	assert.Equal(t, []string{"127.0.0.1"}, cfg.RPC.Whitelist)
	assert.Equal(t, int64(1000), cfg.Consensus.BlockInterval)
	assert.Equal(t, int64(2), cfg.Exec.ExistentialDeposit)
	assert.Len(t, cfg.Exec.SuperManager, 1)
	require.Len(t, cfg.Genesis, 2)
	assert.Equal(t, "betting", cfg.Genesis[0].Exec)
	assert.Equal(t, int64(2), cfg.Genesis[0].Amount)

	var betting struct {
		MaxBetsPerMatch int32 `json:"maxBetsPerMatch"`
		MatchDeposit    int64 `json:"matchDeposit"`
	}
	MustDecode(sub.Exec["betting"], &betting)
	assert.Equal(t, int32(64), betting.MaxBetsPerMatch)
	assert.Equal(t, int64(10), betting.MatchDeposit)
}

func TestInitCfgFillDefault(t *testing.T) {
	cfg, sub, err := InitCfgString(`Title="x"`)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Title)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, "betting", cfg.Store.Name)
	assert.Equal(t, int64(1000), cfg.Consensus.BlockInterval)
	assert.Equal(t, int64(60), cfg.Metrics.Duration)
	assert.NotNil(t, cfg.Exec)
	assert.Empty(t, sub.Exec)
}

func TestInitCfgErrors(t *testing.T) {
	_, _, err := InitCfgString("Title=")
	assert.Error(t, err)
	_, _, err = InitCfgString("[exec]\nsub = 1\n")
	assert.Error(t, err)
	_, _, err = InitCfg(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestInitCfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "betting.toml")
	require.NoError(t, os.WriteFile(path, []byte(GetDefaultCfgstring()), 0600))
	cfg, _, err := InitCfg(path)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
}
