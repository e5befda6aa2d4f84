// Package errors provides the structured, coded errors returned by the
// query engine. The taxonomy is closed: every failure an operation can
// produce maps to one of the codes below, is returned as a value, and is
// never retried internally — query outcomes are deterministic functions
// of the tree and the query.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Query cardinality errors
	ErrNoElementsFound       ErrorCode = "NO_ELEMENTS_FOUND"
	ErrMultipleElementsFound ErrorCode = "MULTIPLE_ELEMENTS_FOUND"
	ErrElementShouldNotExist ErrorCode = "ELEMENT_SHOULD_NOT_EXIST"
	ErrElementCountMismatch  ErrorCode = "ELEMENT_COUNT_MISMATCH"

	// Query construction errors
	ErrInvalidQuery ErrorCode = "INVALID_QUERY"

	// Snapshot errors
	ErrSnapshotParse  ErrorCode = "SNAPSHOT_PARSE"
	ErrSnapshotFormat ErrorCode = "SNAPSHOT_FORMAT"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// AxError represents a structured error with code and details
type AxError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AxError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AxError) Unwrap() error {
	return e.Wrapped
}

// Is matches two AxErrors by code
func (e *AxError) Is(target error) bool {
	var targetErr *AxError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AxError with the given code and message
func New(code ErrorCode, message string) *AxError {
	return &AxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AxError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AxError {
	return &AxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AxError
func Wrap(err error, code ErrorCode, message string) *AxError {
	if err == nil {
		return nil
	}
	return &AxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AxError {
	if err == nil {
		return nil
	}
	return &AxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AxError) WithDetail(key string, value interface{}) *AxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var axErr *AxError
	if errors.As(err, &axErr) {
		return axErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AxError
func GetErrorCode(err error) ErrorCode {
	var axErr *AxError
	if errors.As(err, &axErr) {
		return axErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AxError
func GetErrorDetails(err error) map[string]interface{} {
	var axErr *AxError
	if errors.As(err, &axErr) {
		return axErr.Details
	}
	return nil
}
