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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Metadata errors
	ErrMetadataUnavailable ErrorCode = "METADATA_UNAVAILABLE"
	ErrDurationUnavailable ErrorCode = "DURATION_UNAVAILABLE"

	// Interaction errors
	ErrPromptRead ErrorCode = "PROMPT_READ"

	// FileSystem errors
	ErrDestinationExists ErrorCode = "DESTINATION_EXISTS"
	ErrFileAccess        ErrorCode = "FILE_ACCESS"
	ErrFileMove          ErrorCode = "FILE_MOVE"
	ErrFileCopy          ErrorCode = "FILE_COPY"
	ErrFileRemove        ErrorCode = "FILE_REMOVE"
	ErrFileHash          ErrorCode = "FILE_HASH"
	ErrDirCreate         ErrorCode = "DIR_CREATE"
	ErrDirRemove         ErrorCode = "DIR_REMOVE"
)

// MediaError represents a structured error with code and details
type MediaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MediaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MediaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MediaError) Is(target error) bool {
	var targetErr *MediaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MediaError with the given code and message
func New(code ErrorCode, message string) *MediaError {
	return &MediaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MediaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MediaError {
	return &MediaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MediaError
func Wrap(err error, code ErrorCode, message string) *MediaError {
	if err == nil {
		return nil
	}
	return &MediaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MediaError {
	if err == nil {
		return nil
	}
	return &MediaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MediaError) WithDetail(key string, value interface{}) *MediaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MediaError) WithDetails(details map[string]interface{}) *MediaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mediaErr *MediaError
	if errors.As(err, &mediaErr) {
		return mediaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MediaError
func GetErrorCode(err error) ErrorCode {
	var mediaErr *MediaError
	if errors.As(err, &mediaErr) {
		return mediaErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MediaError
func GetErrorDetails(err error) map[string]interface{} {
	var mediaErr *MediaError
	if errors.As(err, &mediaErr) {
		return mediaErr.Details
	}
	return nil
}
