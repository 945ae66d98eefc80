// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// GetDefaultCfgstring 默认配置，测试以及没有配置文件时使用
func GetDefaultCfgstring() string {
	return defaultCfgString
}

var defaultCfgString = `
Title="local"

[log]
loglevel = "info"
logConsoleLevel = "info"
logFile = ""
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true
callerFile = false
callerFunction = false

[store]
name = "betting"
driver = "memdb"
dbPath = "datadir"
dbCache = 64

[rpc]
jrpcBindAddr = "localhost:8801"
whitelist = ["127.0.0.1"]
rateLimit = 0
rateBurst = 0

[consensus]
blockInterval = 1000

[exec]
# 开发用账户，私钥 0xCC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944
superManager = ["14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"]
existentialDeposit = 2

[exec.sub.betting]
maxBetsPerMatch = 64
maxTeamNameLength = 64
matchDeposit = 10

[[genesis]]
exec = "betting"
amount = 2

[[genesis]]
addr = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
amount = 10000000000

[metrics]
enable = false
duration = 60
`
