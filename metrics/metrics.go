// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 统计数据输出：go-metrics 定期写日志，prometheus 通过 http 拉取
package metrics

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/33cn/betting/types"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// Namespace prometheus 指标的命名空间
var Namespace = "betting"

// logger 把 go-metrics 的输出转到 log15
type logger struct {
	l log.Logger
}

func (l *logger) Printf(format string, v ...interface{}) {
	l.l.Info(fmt.Sprintf(format, v...))
}

func (l *logger) Println(v ...interface{}) {
	l.l.Error(fmt.Sprint(v...))
}

//StartMetrics 根据配置定期把 go-metrics 默认 registry 中的数据写到日志
func StartMetrics(cfg *types.Metrics) {
	if cfg == nil || !cfg.Enable {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	duration := time.Duration(cfg.Duration) * time.Second
	if duration <= 0 {
		duration = time.Minute
	}
	mlog.Info("StartMetrics", "duration", duration)
	go go_metrics.Log(go_metrics.DefaultRegistry, duration, &logger{l: mlog})
}

// Collector 提供 prometheus 指标的模块
type Collector interface {
	Metrics() []prometheus.Collector
}

// PrometheusCollectorsFromFields 取出结构体中所有实现了 prometheus.Collector 的导出字段
func PrometheusCollectorsFromFields(i interface{}) (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}

// Service prometheus 指标服务
type Service struct {
	registry *prometheus.Registry
}

// NewService 新建指标服务，默认注册进程以及 go runtime 指标
func NewService(version string) *Service {
	r := prometheus.NewRegistry()
	r.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			Namespace: Namespace,
		}),
		collectors.NewGoCollector(),
		prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "info",
			Help:      "betting node information.",
			ConstLabels: prometheus.Labels{
				"version": version,
			},
		}),
	)
	return &Service{registry: r}
}

// MustRegisterMetrics 注册指标，重复注册会 panic
func (s *Service) MustRegisterMetrics(cs ...prometheus.Collector) {
	s.registry.MustRegister(cs...)
}

// Register 注册模块提供的全部指标
func (s *Service) Register(c Collector) {
	s.MustRegisterMetrics(c.Metrics()...)
}

// Gatherer 用于测试读取当前指标
func (s *Service) Gatherer() prometheus.Gatherer {
	return s.registry
}

// Handler /metrics 的 http 处理函数
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		ErrorLog: &logger{l: mlog},
	})
}
