package parsers

import (
	"fmt"

	"usage-analytics/internal/shared/svcerrors"
)

// FileParser errors
const (
	codeMissingQueryString = "PARSE_1000"
	codeMissingOwner       = "PARSE_1001"

	codeOwnerNotNumeric      = "PARSE_1100"
	codeEventValueNotNumeric = "PARSE_1101"

	codeCounterOverflow = "PARSE_2000"

	codeFileIOFailed = "PARSE_9000"
)

// errMissingQueryString returns an error for a log line without a query string.
func errMissingQueryString(file string, line int, content string) *svcerrors.ServiceError {
	return svcerrors.NewMalformedInputError(codeMissingQueryString, "no query string found in log line",
		fmt.Errorf("%s:%d: %q", file, line, snippet(content)))
}

// errMissingOwner returns an error for a query string without the owner key.
func errMissingOwner(file string, line int, content string) *svcerrors.ServiceError {
	return svcerrors.NewMalformedInputError(codeMissingOwner, "no owner id found in query string",
		fmt.Errorf("%s:%d: %q", file, line, snippet(content)))
}

// errOwnerNotNumeric returns an error for an owner id outside the uint32 range.
func errOwnerNotNumeric(file string, line int, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNumericParseError(codeOwnerNotNumeric, "owner id is not a valid integer",
		fmt.Errorf("%s:%d: owner id %q: %w", file, line, snippet(value), cause))
}

// errEventValueNotNumeric returns an error for an event value outside the uint32 range.
func errEventValueNotNumeric(file string, line int, key ParamKey, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNumericParseError(codeEventValueNotNumeric, "event value is not a valid integer",
		fmt.Errorf("%s:%d: %c=%q: %w", file, line, key, snippet(value), cause))
}

// errCounterOverflow returns an error when an increment would wrap a usage counter.
func errCounterOverflow(file string, line int, eventType string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewOverflowError(codeCounterOverflow, "usage counter overflow",
		fmt.Errorf("%s:%d: %s: %w", file, line, eventType, cause))
}

// errFileIOFailed returns an error when a log file cannot be opened or read.
func errFileIOFailed(file string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOFailureError(codeFileIOFailed, "cannot read log file",
		fmt.Errorf("%s: %w", file, cause))
}

// snippet shortens long line content for error causes.
func snippet(s string) string {
	const max = 120
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
