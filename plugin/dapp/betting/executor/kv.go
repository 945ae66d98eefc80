// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	"github.com/33cn/betting/common"
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/33cn/betting/types"
)

var (
	matchPrefix       = types.StatePrefix + bt.BettingX + "-match-"
	hashPrefix        = types.StatePrefix + bt.BettingX + "-hash-"
	statusIndexPrefix = types.LocalPrefix + bt.BettingX + "-status:"
)

// matchID to save key
func matchKey(matchID string) []byte {
	return []byte(matchPrefix + matchID)
}

func hashKey(hash []byte) []byte {
	return []byte(hashPrefix + common.Bytes2Hex(hash))
}

func calcStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("%s%d:", statusIndexPrefix, status))
}

func calcStatusIndexKey(status int32, matchID string) []byte {
	return []byte(fmt.Sprintf("%s%d:%s", statusIndexPrefix, status, matchID))
}

func addStatusIndex(status int32, matchID string) *types.KeyValue {
	return &types.KeyValue{Key: calcStatusIndexKey(status, matchID), Value: []byte(matchID)}
}

//value置nil,提交时，会自动执行删除操作
func delStatusIndex(status int32, matchID string) *types.KeyValue {
	return &types.KeyValue{Key: calcStatusIndexKey(status, matchID), Value: nil}
}
