package app

import (
	"fmt"

	"usage-analytics/internal/shared/svcerrors"
)

// App errors
const (
	codeNoLogFiles = "APP_1000"

	codeLogDirUnreadable = "APP_9000"
)

// errNoLogFiles returns an error for a log directory with no files to aggregate.
func errNoLogFiles(dir string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoLogFiles, "no log files found",
		fmt.Errorf("directory %q contains no log files", dir))
}

// errLogDirUnreadable returns an error when the log directory cannot be listed.
func errLogDirUnreadable(dir string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOFailureError(codeLogDirUnreadable, "cannot list log directory",
		fmt.Errorf("%s: %w", dir, cause))
}
