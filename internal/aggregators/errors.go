package aggregators

import (
	"fmt"

	"usage-analytics/internal/shared/svcerrors"
)

// AggregationService errors
const (
	codeMergeOverflow = "AGG_2000"
)

// errMergeOverflow returns an error when merging per-file counters would wrap a run total.
func errMergeOverflow(ownerID uint32, counter string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewOverflowError(codeMergeOverflow, "usage counter overflow while merging",
		fmt.Errorf("owner %d: %s: %w", ownerID, counter, cause))
}
