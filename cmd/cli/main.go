// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build go1.20
// +build go1.20

// 这是betting的命令行客户端
package main

import (
	_ "github.com/33cn/betting/plugin"
	"github.com/33cn/betting/util/cli"
)

func main() {
	cli.Run("http://localhost:8801")
}
