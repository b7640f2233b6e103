package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	parsesTotal      *prometheus.CounterVec
	parseConfidence  *prometheus.HistogramVec
	answerDuration   prometheus.Histogram
	storeErrorsTotal prometheus.Counter
	generatedTotal   prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		parsesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nlquery_parses_total",
				Help: "Total number of natural-language queries parsed, by intent",
			},
			[]string{"intent"},
		),
		parseConfidence: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nlquery_parse_confidence",
				Help:    "Parse confidence scores, by intent",
				Buckets: prometheus.LinearBuckets(0, 0.25, 5),
			},
			[]string{"intent"},
		),
		answerDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nlquery_answer_duration_milliseconds",
				Help:    "End-to-end question answering duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		storeErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "nlquery_store_errors_total",
				Help: "Total number of transaction store failures during answering",
			},
		),
		generatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sample_transactions_generated_total",
				Help: "Total number of sample transactions generated",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "nlquery_parses_total":
		if intent := tags["intent"]; intent != "" {
			m.parsesTotal.WithLabelValues(intent).Inc()
		}
	case "nlquery_store_errors_total":
		m.storeErrorsTotal.Inc()
	case "sample_transactions_generated":
		m.generatedTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "nlquery_answer" {
		m.answerDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "nlquery_parse_confidence" {
		intent := tags["intent"]
		if intent == "" {
			intent = "unknown"
		}
		m.parseConfidence.WithLabelValues(intent).Observe(value)
	}
}
