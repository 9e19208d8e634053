package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// Configuration errors - unreadable or invalid configuration
	ErrorTypeConfig ErrorType = iota
	// Validation errors - invalid flag or config values
	ErrorTypeValidation
	// Repository errors - repository or branch not found
	ErrorTypeRepository
	// ShallowClone errors - history is truncated and cannot be analysed
	ErrorTypeShallowClone
	// History errors - commit objects could not be read
	ErrorTypeHistory
	// Internal errors - unexpected internal state
	ErrorTypeInternal
)

// Severity represents how critical an error is
type Severity int

const (
	// SeverityLow - can continue with degraded functionality
	SeverityLow Severity = iota
	// SeverityMedium - should be addressed but not fatal
	SeverityMedium
	// SeverityHigh - significant issue, may impact functionality
	SeverityHigh
	// SeverityCritical - must be addressed, stops execution
	SeverityCritical
)

// Error represents a structured error with context
type Error struct {
	Type     ErrorType
	Severity Severity
	Message  string
	Cause    error
	Context  map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Is checks if this error matches the target error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// DetailedString returns a detailed error message with context
func (e *Error) DetailedString() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] [%s] %s\n",
		severityString(e.Severity),
		typeString(e.Type),
		e.Message))

	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf("Caused by: %v\n", e.Cause))
	}

	if len(e.Context) > 0 {
		sb.WriteString("Context:\n")
		for k, v := range e.Context {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", k, v))
		}
	}

	return sb.String()
}

func typeString(t ErrorType) string {
	switch t {
	case ErrorTypeConfig:
		return "CONFIG"
	case ErrorTypeValidation:
		return "VALIDATION"
	case ErrorTypeRepository:
		return "REPOSITORY"
	case ErrorTypeShallowClone:
		return "SHALLOW_CLONE"
	case ErrorTypeHistory:
		return "HISTORY"
	case ErrorTypeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

func severityString(s Severity) string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// New creates a new error with the given type, severity, and message
func New(errType ErrorType, severity Severity, message string) *Error {
	return &Error{
		Type:     errType,
		Severity: severity,
		Message:  message,
		Context:  make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, severity Severity, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Type:     errType,
		Severity: severity,
		Message:  message,
		Cause:    err,
		Context:  make(map[string]interface{}),
	}
}

// Convenience constructors for common error types

// ConfigError wraps a configuration error
func ConfigError(err error, message string) *Error {
	if err == nil {
		return New(ErrorTypeConfig, SeverityCritical, message)
	}
	return Wrap(err, ErrorTypeConfig, SeverityCritical, message)
}

// ValidationError creates a validation error
func ValidationError(message string) *Error {
	return New(ErrorTypeValidation, SeverityHigh, message)
}

// ValidationErrorf creates a validation error with formatting
func ValidationErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeValidation, SeverityHigh, fmt.Sprintf(format, args...))
}

// RepositoryError wraps a repository lookup error
func RepositoryError(err error, message string) *Error {
	if err == nil {
		return New(ErrorTypeRepository, SeverityCritical, message)
	}
	return Wrap(err, ErrorTypeRepository, SeverityCritical, message)
}

// RepositoryErrorf wraps a repository lookup error with formatting
func RepositoryErrorf(err error, format string, args ...interface{}) *Error {
	return RepositoryError(err, fmt.Sprintf(format, args...))
}

// ShallowCloneError creates a shallow clone error
func ShallowCloneError(message string) *Error {
	return New(ErrorTypeShallowClone, SeverityCritical, message)
}

// HistoryError wraps a commit history read error
func HistoryError(err error, message string) *Error {
	return Wrap(err, ErrorTypeHistory, SeverityCritical, message)
}

// HistoryErrorf wraps a commit history read error with formatting
func HistoryErrorf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, ErrorTypeHistory, SeverityCritical, fmt.Sprintf(format, args...))
}

// InternalErrorf creates an internal error with formatting
func InternalErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeInternal, SeverityCritical, fmt.Sprintf(format, args...))
}

// GetType returns the type of an error
func GetType(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeInternal
}

// IsType reports whether err, or any error it wraps, has the given type
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == errType
	}
	return false
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch GetType(err) {
	case ErrorTypeConfig, ErrorTypeValidation:
		return 2
	case ErrorTypeRepository:
		return 3
	case ErrorTypeShallowClone:
		return 4
	case ErrorTypeHistory:
		return 5
	default:
		return 1
	}
}
