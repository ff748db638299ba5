package errors

import (
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return pkgerrors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationForbidden = NewBaseError(
		http.StatusForbidden,
		"NOTIFICATION_FORBIDDEN",
		"Notification belongs to another recipient",
		"",
	)

	// Dispatch-related errors
	ErrUnknownNotificationKind = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_NOTIFICATION_KIND",
		"Unknown notification kind",
		"",
	)

	ErrMissingEventContext = NewBaseError(
		http.StatusBadRequest,
		"MISSING_EVENT_CONTEXT",
		"Event context is missing required fields",
		"",
	)

	ErrDispatchFailed = NewBaseError(
		http.StatusBadGateway,
		"DISPATCH_FAILED",
		"Failed to persist the notification",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User profile not found",
		"",
	)
)

// DatabaseError represents a database operation failure carrying the cause.
type DatabaseError struct {
	*BaseError
	cause error
}

// NewDatabaseExecuteError creates a database error wrapping the underlying cause.
func NewDatabaseExecuteError(cause error, message string) *DatabaseError {
	return &DatabaseError{
		BaseError: NewBaseError(
			http.StatusInternalServerError,
			"DATABASE_ERROR",
			message,
			"",
		),
		cause: cause,
	}
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *DatabaseError) Unwrap() error {
	return e.cause
}
