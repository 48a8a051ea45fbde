package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// User input errors, recovered at the CLI boundary with guidance
	ErrUnknownCandidate    ErrorCode = "UNKNOWN_CANDIDATE"
	ErrUnresolvableVersion ErrorCode = "UNRESOLVABLE_VERSION"
	ErrVersionRequired     ErrorCode = "VERSION_REQUIRED"
	ErrNotInstalled        ErrorCode = "NOT_INSTALLED"
	ErrAlreadyInstalled    ErrorCode = "ALREADY_INSTALLED"

	// Environmental errors
	ErrMissingManifest    ErrorCode = "MISSING_MANIFEST"
	ErrMissingEnv         ErrorCode = "MISSING_ENV"
	ErrCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	ErrConfigLoad         ErrorCode = "CONFIG_LOAD"

	// State conflicts
	ErrRefusedCurrentRemoval ErrorCode = "REFUSED_CURRENT_REMOVAL"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrDirRemove     ErrorCode = "DIR_REMOVE"
)

// Detail keys shared by the constructors in this package and the CLI.
const (
	DetailCandidate = "candidate"
	DetailVersion   = "version"
	DetailPath      = "path"
	DetailURL       = "url"
	DetailVariable  = "variable"
	DetailOffline   = "offline"
)

// SdkError represents a structured error with code and details
type SdkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SdkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SdkError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SdkError carrying the same code.
func (e *SdkError) Is(target error) bool {
	var targetErr *SdkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SdkError with the given code and message
func New(code ErrorCode, message string) *SdkError {
	return &SdkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SdkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SdkError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an SdkError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *SdkError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SdkError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SdkError) WithDetail(key string, value interface{}) *SdkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an SdkError
func GetErrorCode(err error) ErrorCode {
	var sdkErr *SdkError
	if errors.As(err, &sdkErr) {
		return sdkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an SdkError
func GetErrorDetails(err error) map[string]interface{} {
	var sdkErr *SdkError
	if errors.As(err, &sdkErr) {
		return sdkErr.Details
	}
	return nil
}

// DetailString returns a string detail, or "" when absent.
func DetailString(err error, key string) string {
	if v, ok := GetErrorDetails(err)[key].(string); ok {
		return v
	}
	return ""
}
