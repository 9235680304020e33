// Package metrics 定义服务的 Prometheus 指标
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shelf"

// 外部服务名称，用作 service 标签
const (
	ServiceTagRecommender = "tag_recommender"
	ServiceBookCatalog    = "book_catalog"
)

// 调用结果，用作 outcome 标签
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// HTTPRequestsTotal 按路由和状态码统计的请求数
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration 请求耗时
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ExternalCallsTotal 外部服务调用次数
	ExternalCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "external_calls_total",
			Help:      "Total number of calls to external services",
		},
		[]string{"service", "outcome"},
	)

	// ExternalCallDuration 外部服务调用耗时
	ExternalCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "external_call_duration_seconds",
			Help:      "Duration of calls to external services in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"service"},
	)

	// TagsCreatedTotal 新建的标签数量
	TagsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tags_created_total",
			Help:      "Total number of tags created on first use",
		},
	)

	// CatalogEntries 最近一次获取到的图书目录条目数
	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_entries",
			Help:      "Number of entries in the most recently fetched book catalog",
		},
	)
)

// RecordHTTPRequest 记录一次 HTTP 请求
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordExternalCall 记录一次外部服务调用，err 非空时 outcome 为 error
func RecordExternalCall(service string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	ExternalCallsTotal.WithLabelValues(service, outcome).Inc()
	ExternalCallDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
}

// RecordTagCreated 记录一个新建的标签
func RecordTagCreated() {
	TagsCreatedTotal.Inc()
}

// SetCatalogEntries 更新目录条目数
func SetCatalogEntries(n int) {
	CatalogEntries.Set(float64(n))
}
