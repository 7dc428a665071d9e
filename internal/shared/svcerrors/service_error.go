package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryIOFailure       = "io_failure"
	categoryMalformedInput  = "malformed_input"
	categoryNumericParse    = "numeric_parse"
	categoryOverflow        = "overflow"
	categoryInvalidArgument = "invalid_argument"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewIOFailureError creates a new ServiceError with category io_failure.
func NewIOFailureError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryIOFailure,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewMalformedInputError creates a new ServiceError with category malformed_input.
func NewMalformedInputError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryMalformedInput,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewNumericParseError creates a new ServiceError with category numeric_parse.
func NewNumericParseError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryNumericParse,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewOverflowError creates a new ServiceError with category overflow.
func NewOverflowError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryOverflow,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // e.g. malformed_input, overflow, internal
	Code     string // service-owned stable code (e.g. PARSE_1000)
	Message  string // client-safe, human-readable
	Cause    error  // wrapped underlying error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
