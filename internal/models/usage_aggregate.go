package models

import "sort"

// UsageAggregate maps owner ids to their accumulated usage counters.
// One aggregate is produced per parsed file and the per-file aggregates
// are then merged into the run total.
type UsageAggregate map[uint32]*UsageCounters

func NewUsageAggregate() UsageAggregate {
	return make(UsageAggregate)
}

// Owner returns the counters for ownerID, creating an empty entry on first use.
func (a UsageAggregate) Owner(ownerID uint32) *UsageCounters {
	counters, ok := a[ownerID]
	if !ok {
		counters = &UsageCounters{}
		a[ownerID] = counters
	}
	return counters
}

// OwnerIDs returns every owner id in the aggregate in ascending order.
func (a UsageAggregate) OwnerIDs() []uint32 {
	ids := make([]uint32, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
