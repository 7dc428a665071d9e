package formatters

import (
	"testing"

	"usage-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Format(t *testing.T) {
	t.Parallel()

	formatter := &jsonFormatter{}

	usage := models.UsageAggregate{
		444: models.NewUsageCounters(1, 1),
		123: models.NewUsageCounters(3, 1),
	}

	report, err := formatter.Format(usage)
	require.NoError(t, err, "unexpected error")

	// Key order and owner order are part of the output contract.
	expected := `[{"owner_id":123,"usage":{"video_plays":3,"ad_impressions":1}},` +
		`{"owner_id":444,"usage":{"video_plays":1,"ad_impressions":1}}]`
	assert.Equal(t, expected, report)
}

func TestJSONFormatter_Format_EmptyAggregate(t *testing.T) {
	t.Parallel()

	formatter := &jsonFormatter{}

	report, err := formatter.Format(models.NewUsageAggregate())
	require.NoError(t, err, "unexpected error")

	assert.Equal(t, "[]", report)
}
