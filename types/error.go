// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound          = errors.New("ErrNotFound")
	ErrInvalidParam      = errors.New("ErrInvalidParam")
	ErrInvalidAddress    = errors.New("ErrInvalidAddress")
	ErrEmptyTx           = errors.New("ErrEmptyTx")
	ErrActionNotSupport  = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport   = errors.New("ErrQueryNotSupport")
	ErrExecNameNotAllow  = errors.New("ErrExecNameNotAllow")
	ErrExecNotFound      = errors.New("ErrExecNotFound")
	ErrNoPrivilege       = errors.New("ErrNoPrivilege")
	ErrDecode            = errors.New("ErrDecode")
	ErrHeightNotIncrease = errors.New("ErrHeightNotIncrease")
	ErrGenesisDone       = errors.New("ErrGenesisDone")
	ErrSign              = errors.New("ErrSign")

	// 资产相关
	ErrAmount           = errors.New("ErrAmount")
	ErrNoBalance        = errors.New("ErrNoBalance")
	ErrSendSameToRecv   = errors.New("ErrSendSameToRecv")
	ErrKeepAlive        = errors.New("ErrKeepAlive")
	ErrBelowExistential = errors.New("ErrBelowExistential")
)
