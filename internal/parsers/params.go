package parsers

// ParamKey identifies a single-character query-string key carrying a
// usage signal. Keys are single bytes by contract of the log format;
// multi-character keys never occur.
type ParamKey byte

const (
	// ParamOwner is the account that owns the requested page.
	// Required on every line.
	ParamOwner ParamKey = 'o'

	// ParamVideoID marks a video play. The id value is validated but the
	// signal counts plays only, so the id itself is not collected.
	ParamVideoID ParamKey = 'v'

	// ParamAdImpressionID marks an ad impression, counted like ParamVideoID.
	ParamAdImpressionID ParamKey = 'i'
)
