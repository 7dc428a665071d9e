package formatters

import (
	"fmt"

	"usage-analytics/internal/shared/svcerrors"
)

// Formatter errors
const (
	codeUnknownFormatter = "FMT_1000"

	codeInternalReportEncodeFailed = "FMT_9000"
)

// errUnknownFormatter returns an error when no formatter is registered under the requested name.
func errUnknownFormatter(name string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownFormatter,
		fmt.Sprintf("unknown formatter: %s", name), nil)
}

// errReportEncodeFailed returns an error when the aggregate cannot be encoded.
func errReportEncodeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportEncodeFailed, fmt.Errorf("reportEncodeFailed: %w", cause))
}
