package formatters

import (
	"encoding/json"

	"usage-analytics/internal/models"
)

// jsonFormatter renders the aggregate as a JSON array with one element per
// owner, ascending by owner id. Suitable for piping into other tools.
type jsonFormatter struct{}

type ownerUsageReport struct {
	OwnerID uint32      `json:"owner_id"`
	Usage   usageReport `json:"usage"`
}

type usageReport struct {
	VideoPlays    uint32 `json:"video_plays"`
	AdImpressions uint32 `json:"ad_impressions"`
}

func (f *jsonFormatter) Format(usage models.UsageAggregate) (string, error) {
	reports := make([]ownerUsageReport, 0, len(usage))
	for _, ownerID := range usage.OwnerIDs() {
		counters := usage[ownerID]
		reports = append(reports, ownerUsageReport{
			OwnerID: ownerID,
			Usage: usageReport{
				VideoPlays:    counters.VideoPlays(),
				AdImpressions: counters.AdImpressions(),
			},
		})
	}

	encoded, err := json.Marshal(reports)
	if err != nil {
		return "", errReportEncodeFailed(err)
	}

	return string(encoded), nil
}

func (f *jsonFormatter) Name() string {
	return NameJSON
}
