package streams

import (
	"usage-analytics/internal/shared/metrics"
)

// Cancelled parses carry no service error code; they get their own bucket.
const valueCanceled = "canceled"

var (
	metricParseOutcomesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "parse_outcomes_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricFileParseSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "file_parse_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)
