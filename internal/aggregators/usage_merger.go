package aggregators

import (
	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/svcerrors"
)

//go:generate mockgen -source=usage_merger.go -destination=./mocks/usage_merger_mock.go -package=mocks
type UsageMerger interface {
	// Merge mutates total by accumulating the counters from partial.
	// Additions are checked: an overflow fails the merge and the totals
	// must then be discarded by the caller.
	Merge(total, partial models.UsageAggregate) *svcerrors.ServiceError
}

type usageMerger struct{}

func NewUsageMerger() UsageMerger {
	return &usageMerger{}
}

func (m *usageMerger) Merge(total, partial models.UsageAggregate) *svcerrors.ServiceError {
	// Sorted owner order keeps the failing owner deterministic when more
	// than one addition could overflow.
	for _, ownerID := range partial.OwnerIDs() {
		partialCounters := partial[ownerID]
		totalCounters := total.Owner(ownerID)

		if _, err := totalCounters.AddVideoPlays(partialCounters.VideoPlays()); err != nil {
			return errMergeOverflow(ownerID, "video_plays", err)
		}
		if _, err := totalCounters.AddAdImpressions(partialCounters.AdImpressions()); err != nil {
			return errMergeOverflow(ownerID, "ad_impressions", err)
		}
	}

	return nil
}
