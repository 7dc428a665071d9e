package formatters

import (
	"usage-analytics/internal/models"
)

// Formatter names accepted on the command line.
const (
	NameStdout = "stdout"
	NameJSON   = "json"
)

//go:generate mockgen -source=formatter.go -destination=./mocks/formatter_mock.go -package=mocks
type Formatter interface {
	// Format renders the aggregated usage as a string. The caller decides
	// where the report goes: stdout, a file, or a remote sink.
	Format(usage models.UsageAggregate) (string, error)

	// Name returns the identifier the formatter resolves under.
	Name() string
}

// Resolve returns the formatter registered under name. Every available
// formatter must be listed here.
func Resolve(name string) (Formatter, error) {
	switch name {
	case NameJSON:
		return &jsonFormatter{}, nil
	case NameStdout:
		return &stdoutFormatter{}, nil
	default:
		return nil, errUnknownFormatter(name)
	}
}
