// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"

	"github.com/33cn/betting/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type rpcMetrics struct {
	Requests *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	Rejected *prometheus.CounterVec
	Duration prometheus.Histogram
}

func newRPCMetrics() *rpcMetrics {
	subsystem := "jrpc"
	return &rpcMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Number of json rpc requests by method.",
		}, []string{"method"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: subsystem,
			Name:      "errors_total",
			Help:      "Number of json rpc requests that returned an error.",
		}, []string{"method"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: subsystem,
			Name:      "rejected_total",
			Help:      "Number of http requests rejected before reaching the rpc server.",
		}, []string{"reason"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Json rpc request duration.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Metrics 实现 metrics.Collector
func (m *rpcMetrics) Metrics() []prometheus.Collector {
	return metrics.PrometheusCollectorsFromFields(m)
}

// meteredCodec 按方法统计请求数以及错误数
type meteredCodec struct {
	rpc.ServerCodec
	m *rpcMetrics
}

func (c *meteredCodec) ReadRequestHeader(r *rpc.Request) error {
	err := c.ServerCodec.ReadRequestHeader(r)
	if err == nil {
		c.m.Requests.WithLabelValues(r.ServiceMethod).Inc()
	}
	return err
}

func (c *meteredCodec) WriteResponse(r *rpc.Response, body interface{}) error {
	if r.Error != "" {
		c.m.Errors.WithLabelValues(r.ServiceMethod).Inc()
	}
	return c.ServerCodec.WriteResponse(r, body)
}
