package events

import (
	"usage-analytics/internal/models"
)

// FileUsageOutcome is the result of parsing one log file. Outcomes are
// produced by the parse worker pool and consumed by the aggregation
// service, which merges the per-file aggregates into the run total.
//
// Exactly one of Usage and Err is meaningful: a successfully parsed file
// carries its per-file usage aggregate and a nil Err, a failed file
// carries a nil Usage and the first error encountered in it. A single
// failed outcome aborts the whole run, so consumers never need to merge
// around an error.
//
// Example outcome for a file holding these two lines:
//
//	/betslip_pre?o=123&v=111
//	/somepage?o=123&i=99
//
// File:  "/logs/access-2026-08-01.log"
// Usage: {123: {videoPlays: 1, adImpressions: 1}}
// Err:   nil
type FileUsageOutcome struct {
	File  string
	Usage models.UsageAggregate
	Err   error
}
