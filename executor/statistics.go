// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/betting/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

// 执行统计，注册在 go-metrics 的默认 registry 中，由 metrics 模块定期输出
type statistics struct {
	execTimer go_metrics.Timer
	height    go_metrics.Gauge
}

func newStatistics() *statistics {
	return &statistics{
		execTimer: go_metrics.GetOrRegisterTimer("executor.exec.time", nil),
		height:    go_metrics.GetOrRegisterGauge("executor.height", nil),
	}
}

func (s *statistics) fail(execer string) {
	go_metrics.GetOrRegisterCounter("executor.exec."+execer+".err", nil).Inc(1)
}

func (s *statistics) done(execer string, ty int32) {
	name := types.ExecTypeName[ty]
	go_metrics.GetOrRegisterCounter("executor.exec."+execer+"."+name, nil).Inc(1)
}
