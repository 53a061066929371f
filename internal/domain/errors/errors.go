// Package errors defines the application-level error taxonomy: validation
// failures, custody conflicts and persistence errors, each carrying the HTTP
// status and the user-facing message for the delivery layer.
package errors

import (
	"net/http"

	"custodia/internal/errors"
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
	return errors.Wrap(e, message)
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
	// Validation errors: rejected before any write, surfaced verbatim.
	ErrAssetRequired = NewBaseError(
		http.StatusBadRequest,
		"ASSET_REQUIRED",
		"Asset is required",
		"",
	)

	ErrReturnDateRequired = NewBaseError(
		http.StatusBadRequest,
		"RETURN_DATE_REQUIRED",
		"Return date is required",
		"",
	)

	ErrCheckinStatusInUse = NewBaseError(
		http.StatusBadRequest,
		"CHECKIN_STATUS_IN_USE",
		"New status cannot be IN USE",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Not-found errors
	ErrAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_FOUND",
		"Asset not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Custody conflicts: the derived state forbids the transition. One
	// distinct message per conflict type.
	ErrAssetAlreadyCheckedOut = NewBaseError(
		http.StatusConflict,
		"ASSET_ALREADY_CHECKED_OUT",
		"Asset is already checked out",
		"",
	)

	ErrAssetInMaintenance = NewBaseError(
		http.StatusConflict,
		"ASSET_IN_MAINTENANCE",
		"Asset is under maintenance",
		"",
	)

	ErrAssetRetired = NewBaseError(
		http.StatusConflict,
		"ASSET_RETIRED",
		"Asset is retired",
		"",
	)

	ErrAssetNotCheckedOut = NewBaseError(
		http.StatusConflict,
		"ASSET_NOT_CHECKED_OUT",
		"Asset is not checked out",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the
// AppError interface. The underlying detail is logged server-side only; the
// caller sees a generic failure message.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying database error for errors.Is/As checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// ConflictForStatus maps a non-AVAILABLE asset status to the matching checkout
// conflict error.
func ConflictForStatus(status string) *BaseError {
	switch status {
	case "MAINTENANCE":
		return ErrAssetInMaintenance
	case "RETIRED":
		return ErrAssetRetired
	default:
		return ErrAssetAlreadyCheckedOut
	}
}
