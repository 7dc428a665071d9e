package aggregators

import (
	"usage-analytics/internal/shared/metrics"
)

// Label values for outcomes that never reach the merger: outcomes arriving
// after the run has latched a failure are discarded, and outcomes carrying
// a plain context error were cancelled by the caller.
const (
	valueDiscarded = "discarded"
	valueCanceled  = "canceled"
)

// metricOutcomesMergedTotal counts every outcome the coordinator takes off
// the stream, labeled by what happened to it.
//
// The error_code label is "" for outcomes merged into the run total, the
// service error code (PARSE_*, AGG_2000, SYS_*) for the outcome that
// latched the run failure, "discarded" for outcomes drained after the
// latch, and "canceled" for outcomes of parses the caller aborted.
// Summing the metric over all labels gives the number of files the pool
// actually reported back.
var (
	metricOutcomesMergedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "outcomes_merged_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRunSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "run_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)
