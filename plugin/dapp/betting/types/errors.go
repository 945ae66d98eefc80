// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrMatchAlreadyExists 相同队伍、相同时间的 match 已经存在
	ErrMatchAlreadyExists = errors.New("ErrMatchAlreadyExists")
	// ErrOriginHasAlreadyOpenMatch 每个地址只能有一个 match
	ErrOriginHasAlreadyOpenMatch = errors.New("ErrOriginHasAlreadyOpenMatch")
	// ErrTimeMatchOver 创建时 match 已经结束
	ErrTimeMatchOver = errors.New("ErrTimeMatchOver")
	// ErrMatchDoesNotExist match 不存在
	ErrMatchDoesNotExist = errors.New("ErrMatchDoesNotExist")
	// ErrMatchHasStarted match 开始之后不能下注
	ErrMatchHasStarted = errors.New("ErrMatchHasStarted")
	// ErrMaxBets 下注数量达到上限
	ErrMaxBets = errors.New("ErrMaxBets")
	// ErrAlreadyBet 同一个地址同样的金额已经下注
	ErrAlreadyBet = errors.New("ErrAlreadyBet")
	// ErrTimeMatchNotOver match 没有结束，不能设置结果
	ErrTimeMatchNotOver = errors.New("ErrTimeMatchNotOver")
	// ErrMatchNotResult match 还没有结果
	ErrMatchNotResult = errors.New("ErrMatchNotResult")
	ErrTeamNameTooLong  = errors.New("ErrTeamNameTooLong")
	ErrInvalidResult    = errors.New("ErrInvalidResult")
	// ErrNoWinners 没有人猜中结果，无法按比例分配
	ErrNoWinners = errors.New("ErrNoWinners")
)
