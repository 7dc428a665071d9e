package formatters

import (
	"fmt"
	"strings"

	"usage-analytics/internal/models"
)

const blockSeparator = "---------------------------------------\n"

// stdoutFormatter renders one dashed text block per owner. Meant for
// terminals and logs rather than machine consumption.
type stdoutFormatter struct{}

func (f *stdoutFormatter) Format(usage models.UsageAggregate) (string, error) {
	var report strings.Builder

	report.WriteString(blockSeparator)

	// Ascending owner order keeps the report stable across runs.
	for _, ownerID := range usage.OwnerIDs() {
		counters := usage[ownerID]

		fmt.Fprintf(&report, "Owner with id: %d\n\n", ownerID)
		report.WriteString("Usage\n\n")
		fmt.Fprintf(&report, "  Video plays: %d\n", counters.VideoPlays())
		fmt.Fprintf(&report, "  Ad Impressions: %d\n", counters.AdImpressions())
		report.WriteString(blockSeparator)
	}

	return report.String(), nil
}

func (f *stdoutFormatter) Name() string {
	return NameStdout
}
