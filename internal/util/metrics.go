package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reports_generated_total",
		Help: "Total number of successful report runs",
	}, []string{"report"})

	ReportFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_failures_total",
		Help: "Total number of failed report runs",
	}, []string{"report"})

	ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_duration_seconds",
		Help:    "Latency of report generation",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})

	ReportCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_cache_hits_total",
		Help: "Total number of reports served from cache",
	}, []string{"report"})

	ReportCacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_cache_misses_total",
		Help: "Total number of report cache misses",
	}, []string{"report"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
