package models

import (
	"errors"
	"math"
)

// ErrCounterOverflow is returned when an addition would push a usage
// counter past the uint32 range.
var ErrCounterOverflow = errors.New("usage counter overflow")

// UsageCounters holds the usage totals accumulated for a single owner.
// All mutation goes through the checked Add methods so a counter can
// never wrap around.
type UsageCounters struct {
	videoPlays    uint32
	adImpressions uint32
}

func NewUsageCounters(videoPlays, adImpressions uint32) *UsageCounters {
	return &UsageCounters{
		videoPlays:    videoPlays,
		adImpressions: adImpressions,
	}
}

func (c *UsageCounters) VideoPlays() uint32 {
	return c.videoPlays
}

func (c *UsageCounters) AdImpressions() uint32 {
	return c.adImpressions
}

// AddVideoPlays adds n to the video play counter and returns the new total.
// On overflow it returns ErrCounterOverflow and leaves the counter unchanged.
func (c *UsageCounters) AddVideoPlays(n uint32) (uint32, error) {
	next, ok := checkedAdd(c.videoPlays, n)
	if !ok {
		return c.videoPlays, ErrCounterOverflow
	}
	c.videoPlays = next
	return next, nil
}

// AddAdImpressions adds n to the ad impression counter and returns the new total.
// On overflow it returns ErrCounterOverflow and leaves the counter unchanged.
func (c *UsageCounters) AddAdImpressions(n uint32) (uint32, error) {
	next, ok := checkedAdd(c.adImpressions, n)
	if !ok {
		return c.adImpressions, ErrCounterOverflow
	}
	c.adImpressions = next
	return next, nil
}

func checkedAdd(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}
