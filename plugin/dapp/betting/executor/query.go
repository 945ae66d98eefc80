// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/betting/common"
	dbm "github.com/33cn/betting/common/db"
	bt "github.com/33cn/betting/plugin/dapp/betting/types"
	"github.com/33cn/betting/types"
)

// Query 只读查询
func (b *Betting) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case bt.FuncNameGetMatch:
		var req bt.ReqMatch
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return readMatch(b.GetStateDB(), req.MatchID)
	case bt.FuncNameGetMatchByHash:
		var req bt.ReqMatchHash
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return getMatchByHash(b.GetStateDB(), req.Hash)
	case bt.FuncNameListMatches:
		var req bt.ReqMatchList
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return listMatches(b.GetLocalDB(), b.GetStateDB(), &req)
	}
	return nil, types.ErrQueryNotSupport
}

func getMatchByHash(db dbm.KV, hexHash string) (*bt.Match, error) {
	hash, err := common.FromHex(hexHash)
	if err != nil || len(hash) == 0 {
		return nil, types.ErrInvalidParam
	}
	creator, err := db.Get(hashKey(hash))
	if err == types.ErrNotFound {
		return nil, bt.ErrMatchDoesNotExist
	}
	if err != nil {
		return nil, err
	}
	return readMatch(db, string(creator))
}

//分页查询
func listMatches(db dbm.Lister, stateDB dbm.KV, req *bt.ReqMatchList) (*bt.ReplyMatchList, error) {
	if req.Status != bt.MatchStatusOpen && req.Status != bt.MatchStatusResulted {
		return nil, types.ErrInvalidParam
	}
	direction := bt.ListDESC
	if req.Direction == bt.ListASC {
		direction = bt.ListASC
	}
	count := bt.DefaultCount
	if 0 < req.Count && req.Count <= bt.MaxCount {
		count = req.Count
	}
	var key []byte
	if req.MatchID != "" {
		key = calcStatusIndexKey(req.Status, req.MatchID)
	}
	values := db.List(calcStatusIndexPrefix(req.Status), key, count, direction)
	reply := &bt.ReplyMatchList{}
	//安全批量查询方式,防止因为脏数据导致查询接口奔溃
	for _, value := range values {
		match, err := readMatch(stateDB, string(value))
		if err != nil {
			continue
		}
		reply.Matches = append(reply.Matches, match)
	}
	return reply, nil
}
