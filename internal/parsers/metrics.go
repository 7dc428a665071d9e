package parsers

import (
	"usage-analytics/internal/shared/metrics"
)

var (
	metricFilesParsedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParse,
			Name:      "files_parsed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricLinesParsedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParse,
			Name:      "lines_parsed_total",
		},
	)

	metricUsageEventsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParse,
			Name:      "usage_events_total",
		},
		[]string{metrics.FieldEventType},
	)
)
