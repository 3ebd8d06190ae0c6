package errors

import (
	"net/http"

	"vgb/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code used by the presentation bridge
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails and WithMessage still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
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

// WithMessage replaces the user-facing message while keeping the error code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// ErrNetwork covers failed requests and malformed responses. Never fatal.
	ErrNetwork = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_ERROR",
		"Could not reach the catalog service",
		"",
	)

	// ErrValidationFailed is reported before any network call is attempted.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// ErrAuthRequired triggers the login flow.
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Please log in to continue",
		"",
	)

	// ErrRoleNotAllowed is raised when a role bypasses a disabled affordance.
	ErrRoleNotAllowed = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_ALLOWED",
		"This action is not available for your account",
		"",
	)

	// ErrConflict marks duplicate favorites and duplicate reviews.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Already exists",
		"",
	)

	// ErrActionInFlight rejects a second action on an entity while the first is outstanding.
	ErrActionInFlight = NewBaseError(
		http.StatusTooManyRequests,
		"ACTION_IN_FLIGHT",
		"Another action on this item is still in progress",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// RemoteError is an error response from the Catalog API. It carries the
// server's human-readable message and classifies into one of the predefined
// kinds so callers can use errors.Is.
type RemoteError struct {
	status  int
	message string
	kind    *BaseError
}

// NewRemoteError classifies an API error response.
func NewRemoteError(status int, message string, kind *BaseError) *RemoteError {
	return &RemoteError{status: status, message: message, kind: kind}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return e.message
}

// Unwrap exposes the classification.
func (e *RemoteError) Unwrap() error {
	return e.kind
}

// Status returns the HTTP status the API answered with.
func (e *RemoteError) Status() int {
	return e.status
}

// HTTPCode returns the HTTP status code of the classification
func (e *RemoteError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code of the classification
func (e *RemoteError) ErrorCode() string {
	return e.kind.ErrorCode()
}

// Message returns the server's message verbatim
func (e *RemoteError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *RemoteError) Details() string {
	return http.StatusText(e.status)
}

// NetworkError wraps a transport failure, implementing the AppError interface
type NetworkError struct {
	err     error
	details string
}

// NewNetworkError creates a transport-related error
func NewNetworkError(err error, details string) AppError {
	return &NetworkError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.err == nil {
		return ErrNetwork.Message()
	}

	return errors.Wrap(e.err, "catalog request failed").Error()
}

// Unwrap returns the underlying cause.
func (e *NetworkError) Unwrap() []error {
	return []error{e.err, ErrNetwork}
}

// HTTPCode returns the HTTP status code
func (e *NetworkError) HTTPCode() int {
	return ErrNetwork.HTTPCode()
}

// ErrorCode returns the business error code
func (e *NetworkError) ErrorCode() string {
	return ErrNetwork.ErrorCode()
}

// Message returns the user-friendly error message
func (e *NetworkError) Message() string {
	return ErrNetwork.Message()
}

// Details returns detailed error information
func (e *NetworkError) Details() string {
	return e.details
}

// Validation builds a validation error with the given user-facing message.
func Validation(message string) error {
	return errors.WithStack(ErrValidationFailed.WithMessage(message))
}

// AsAppError extracts the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	return errors.AsType[AppError](err)
}
