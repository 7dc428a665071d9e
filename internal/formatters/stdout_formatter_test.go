package formatters

import (
	"testing"

	"usage-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdoutFormatter_Format(t *testing.T) {
	t.Parallel()

	formatter := &stdoutFormatter{}

	usage := models.UsageAggregate{
		444: models.NewUsageCounters(1, 1),
		123: models.NewUsageCounters(3, 1),
	}

	report, err := formatter.Format(usage)
	require.NoError(t, err, "unexpected error")

	expected := "---------------------------------------\n" +
		"Owner with id: 123\n" +
		"\n" +
		"Usage\n" +
		"\n" +
		"  Video plays: 3\n" +
		"  Ad Impressions: 1\n" +
		"---------------------------------------\n" +
		"Owner with id: 444\n" +
		"\n" +
		"Usage\n" +
		"\n" +
		"  Video plays: 1\n" +
		"  Ad Impressions: 1\n" +
		"---------------------------------------\n"
	assert.Equal(t, expected, report)
}

func TestStdoutFormatter_Format_EmptyAggregate(t *testing.T) {
	t.Parallel()

	formatter := &stdoutFormatter{}

	report, err := formatter.Format(models.NewUsageAggregate())
	require.NoError(t, err, "unexpected error")

	// An empty aggregate still renders the leading separator line.
	assert.Equal(t, "---------------------------------------\n", report)
}
