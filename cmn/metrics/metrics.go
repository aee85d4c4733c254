// Package metrics 提供 Prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "vitame"
)

var (
	// LLMAttempts 每次 HTTP 尝试的结果：ok, auth, http_error, transport, bad_content, schema
	LLMAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "attempts_total",
			Help:      "Total number of LLM call attempts by outcome",
		},
		[]string{"outcome"},
	)

	LLMRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "Duration of a whole LLM chat call including retries",
			Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	// ReadingTotal 按内容来源统计：template, ai, default
	ReadingTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reading",
			Name:      "total",
			Help:      "Total number of readings served by content source",
		},
		[]string{"source"},
	)

	FilterHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "filter_hits_total",
			Help:      "Total number of texts rewritten by the bias filter",
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Reading cache lookups by result",
		},
		[]string{"result"},
	)
)
