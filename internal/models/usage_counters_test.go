package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageCounters_AddVideoPlays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    uint32
		add      uint32
		expected uint32
		wantErr  error
	}{
		{
			name:     "increment from zero",
			start:    0,
			add:      1,
			expected: 1,
		},
		{
			name:     "increment existing total",
			start:    41,
			add:      1,
			expected: 42,
		},
		{
			name:     "add larger batch",
			start:    100,
			add:      900,
			expected: 1000,
		},
		{
			name:     "reach the maximum exactly",
			start:    math.MaxUint32 - 1,
			add:      1,
			expected: math.MaxUint32,
		},
		{
			name:     "overflow past the maximum",
			start:    math.MaxUint32,
			add:      1,
			expected: math.MaxUint32,
			wantErr:  ErrCounterOverflow,
		},
		{
			name:     "overflow by large addend",
			start:    2,
			add:      math.MaxUint32 - 1,
			expected: 2,
			wantErr:  ErrCounterOverflow,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			counters := NewUsageCounters(tt.start, 0)
			total, err := counters.AddVideoPlays(tt.add)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, total)
			}
			// The stored value never wraps, even on a failed addition
			assert.Equal(t, tt.expected, counters.VideoPlays())
		})
	}
}

func TestUsageCounters_AddAdImpressions_Overflow(t *testing.T) {
	t.Parallel()

	counters := NewUsageCounters(0, math.MaxUint32)

	_, err := counters.AddAdImpressions(1)
	require.ErrorIs(t, err, ErrCounterOverflow)
	assert.Equal(t, uint32(math.MaxUint32), counters.AdImpressions())

	// The sibling counter is unaffected
	total, err := counters.AddVideoPlays(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), total)
}

func TestUsageCounters_AddZero(t *testing.T) {
	t.Parallel()

	counters := NewUsageCounters(7, math.MaxUint32)

	total, err := counters.AddVideoPlays(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), total)

	// Adding zero to a saturated counter is still within range
	total, err = counters.AddAdImpressions(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), total)
}
