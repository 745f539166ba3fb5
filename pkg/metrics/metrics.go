// Package metrics 定义推荐链路与 HTTP 层的 Prometheus 指标。
//
//	fairrec_pipeline_node_duration_seconds{node, kind}  节点耗时
//	fairrec_pipeline_node_errors_total{node}             节点错误
//	fairrec_recommendations_total{source}                推荐请求数（cli / http / batch）
//	fairrec_recommended_items_total{category}            输出条目，按类别
//	fairrec_backfilled_items_total                       放宽多样性上限补齐的条目
//	fairrec_http_requests_total{route, status}
//	fairrec_http_request_duration_seconds{route}
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NodeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fairrec_pipeline_node_duration_seconds",
			Help:    "Duration of pipeline node execution in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"node", "kind"},
	)

	NodeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairrec_pipeline_node_errors_total",
			Help: "Total number of pipeline node errors",
		},
		[]string{"node"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairrec_recommendations_total",
			Help: "Total number of recommendation requests served",
		},
		[]string{"source"},
	)

	RecommendedItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairrec_recommended_items_total",
			Help: "Total number of recommended items by category",
		},
		[]string{"category"},
	)

	BackfilledItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fairrec_backfilled_items_total",
			Help: "Total number of items admitted above the per-category cap to reach the requested count",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairrec_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fairrec_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// ObserveNode 记录一次节点执行。
func ObserveNode(node, kind string, d time.Duration, err error) {
	NodeDuration.WithLabelValues(node, kind).Observe(d.Seconds())
	if err != nil {
		NodeErrorsTotal.WithLabelValues(node).Inc()
	}
}

// ObserveRecommendation 记录一次推荐结果的类别分布与补齐条数。
func ObserveRecommendation(source string, categories []string, backfilled int) {
	RecommendationsTotal.WithLabelValues(source).Inc()
	for _, c := range categories {
		RecommendedItemsTotal.WithLabelValues(c).Inc()
	}
	if backfilled > 0 {
		BackfilledItemsTotal.Add(float64(backfilled))
	}
}

// ObserveHTTP 记录一次 HTTP 请求。
func ObserveHTTP(route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(d.Seconds())
}
