// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Encode 编码状态数据，编码失败说明是程序错误
func Encode(data interface{}) []byte {
	b, err := msgpack.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode 解码状态数据
func Decode(data []byte, msg interface{}) error {
	if err := msgpack.Unmarshal(data, msg); err != nil {
		return errors.Wrap(ErrDecode, err.Error())
	}
	return nil
}

// MustDecode 子配置是 json 格式
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

// ToJSON 转换成便于阅读的 json
func ToJSON(r interface{}) ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}
