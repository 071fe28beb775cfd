// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path pattern and status code.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration observes HTTP request latency by method and path pattern.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// DistributionCalculations counts allocation recomputations.
	DistributionCalculations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shu_distribution_calculations_total",
			Help: "Total number of SHU member allocation calculations.",
		},
	)

	// FeeInvoicesGenerated counts estate fee invoices created by the generator.
	FeeInvoicesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fee_invoices_generated_total",
			Help: "Total number of estate fee invoices generated.",
		},
	)
)
