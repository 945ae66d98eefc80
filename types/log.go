// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"sync"
)

// LogInfo 日志类型的名称以及对应的结构
type LogInfo struct {
	Name string
	New  func() interface{}
}

var (
	logMu     sync.RWMutex
	systemLog = map[int32]*LogInfo{
		TyLogErr:        {Name: "LogErr", New: nil},
		TyLogTransfer:   {Name: "LogTransfer", New: func() interface{} { return &ReceiptAccountTransfer{} }},
		TyLogGenesis:    {Name: "LogGenesis", New: func() interface{} { return &ReceiptAccountTransfer{} }},
		TyLogExecFrozen: {Name: "LogExecFrozen", New: func() interface{} { return &ReceiptAccountTransfer{} }},
		TyLogExecActive: {Name: "LogExecActive", New: func() interface{} { return &ReceiptAccountTransfer{} }},
	}
	execLog = map[string]map[int32]*LogInfo{}
)

// RegisterLog 执行器注册自己的日志类型
func RegisterLog(execer string, logs map[int32]*LogInfo) {
	logMu.Lock()
	defer logMu.Unlock()
	execLog[execer] = logs
}

// DecodeLog 解码收据日志，先查系统日志再查执行器日志
func DecodeLog(execer string, ty int32, data []byte) (string, interface{}, error) {
	logMu.RLock()
	info, ok := systemLog[ty]
	if !ok {
		info, ok = execLog[execer][ty]
	}
	logMu.RUnlock()
	if !ok {
		return "LogReserved", nil, ErrNotFound
	}
	if info.New == nil {
		return info.Name, string(data), nil
	}
	v := info.New()
	if err := Decode(data, v); err != nil {
		return info.Name, nil, err
	}
	return info.Name, v, nil
}
