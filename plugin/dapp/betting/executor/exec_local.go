// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/33cn/betting/types"
)

// ExecLocal 根据收据日志维护按状态的索引
// ExecPack 的收据中 match 已经被删除，索引同样需要删除
func (b *Betting) ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error) {
	set, err := b.DriverBase.ExecLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.Ty != types.ExecOk && receipt.Ty != types.ExecPack {
		return set, nil
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case bt.TyLogMatchCreated:
			var l bt.ReceiptMatchCreated
			decodeLog(item, &l)
			set.KV = append(set.KV, addStatusIndex(bt.MatchStatusOpen, l.Creator))
		case bt.TyLogMatchResult:
			var l bt.ReceiptMatchResult
			decodeLog(item, &l)
			set.KV = append(set.KV, delStatusIndex(bt.MatchStatusOpen, l.MatchID))
			set.KV = append(set.KV, addStatusIndex(bt.MatchStatusResulted, l.MatchID))
		case bt.TyLogWinningsDistributed:
			var l bt.ReceiptWinningsDistributed
			decodeLog(item, &l)
			set.KV = append(set.KV, delStatusIndex(bt.MatchStatusOpen, l.MatchID))
			set.KV = append(set.KV, delStatusIndex(bt.MatchStatusResulted, l.MatchID))
		}
	}
	return set, nil
}

func decodeLog(item *types.ReceiptLog, v interface{}) {
	if err := types.Decode(item.Log, v); err != nil {
		panic(err) //数据错误了，已经被修改了
	}
}
