// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/betting/common"
	"github.com/33cn/betting/types"
)

// MatchHash match 的唯一标识，只由队伍以及时间决定，不包含结果和下注
// 队伍名按字符串编码，nil 和空名字的 hash 相同
func MatchHash(team1, team2 []byte, start, length int64) []byte {
	data := types.Encode([]interface{}{string(team1), string(team2), start, length})
	return common.Blake2b256(data)
}
