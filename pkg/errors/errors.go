package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Operator interaction
	ErrUsage       ErrorCode = "USAGE"
	ErrNoSelection ErrorCode = "NO_SELECTION"

	// Preconditions checked before any mutation
	ErrPrecondition       ErrorCode = "PRECONDITION"
	ErrDestinationMissing ErrorCode = "DESTINATION_MISSING"
	ErrSourceMissing      ErrorCode = "SOURCE_MISSING"
	ErrNotAPartition      ErrorCode = "NOT_A_PARTITION"
	ErrNoMountpoint       ErrorCode = "NO_MOUNTPOINT"

	// Execution errors
	ErrStepFailed   ErrorCode = "STEP_FAILED"
	ErrExternalTool ErrorCode = "EXTERNAL_TOOL"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// Process exit statuses
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitPrecondition = 255
)

// MovexError represents a structured error with code and details
type MovexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MovexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MovexError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MovexError) Is(target error) bool {
	var targetErr *MovexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MovexError with the given code and message
func New(code ErrorCode, message string) *MovexError {
	return &MovexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MovexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MovexError {
	return &MovexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MovexError
func Wrap(err error, code ErrorCode, message string) *MovexError {
	if err == nil {
		return nil
	}
	return &MovexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MovexError {
	if err == nil {
		return nil
	}
	return &MovexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MovexError) WithDetail(key string, value interface{}) *MovexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var movexErr *MovexError
		if !errors.As(err, &movexErr) {
			return false
		}
		if movexErr.Code == code {
			return true
		}
		err = movexErr.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost error code, or ErrUnknown if not a MovexError
func GetErrorCode(err error) ErrorCode {
	var movexErr *MovexError
	if errors.As(err, &movexErr) {
		return movexErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MovexError
func GetErrorDetails(err error) map[string]interface{} {
	var movexErr *MovexError
	if errors.As(err, &movexErr) {
		return movexErr.Details
	}
	return nil
}

// usageCodes and preconditionCodes decide the exit status of a failed run.
var (
	usageCodes = []ErrorCode{ErrUsage, ErrInvalidInput}

	preconditionCodes = []ErrorCode{
		ErrPrecondition,
		ErrDestinationMissing,
		ErrSourceMissing,
		ErrNotAPartition,
		ErrNoMountpoint,
	}
)

// ExitCode maps an error to the process exit status.
// Usage errors win over preconditions when both appear in a chain.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, code := range usageCodes {
		if IsErrorCode(err, code) {
			return ExitUsage
		}
	}
	for _, code := range preconditionCodes {
		if IsErrorCode(err, code) {
			return ExitPrecondition
		}
	}
	return ExitFailure
}
