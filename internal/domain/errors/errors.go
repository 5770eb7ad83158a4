package errors

import (
	"net/http"

	"tasker/internal/errors"
)

// Kind classifies every failure an auth operation can report.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindInvalidCredentials
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError sharing the same error code, so WithDetails copies
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying internal detail. Details never reach the caller.
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

const (
	MessageInvalidCredentials = "Invalid username or password"
	MessageInternal           = "Something went wrong on our end!"
)

// Predefined error types
var (
	ErrInvalidInput = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Email, username and password are required",
	)

	ErrMissingLoginFields = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Username and password are required",
	)

	ErrMalformedRequest = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Malformed request body",
	)

	ErrInvalidCredentials = NewBaseError(
		KindInvalidCredentials,
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		MessageInvalidCredentials,
	)

	ErrAccountConflict = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"ACCOUNT_CONFLICT",
		"An account with this username or email already exists",
	)

	ErrInternal = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		MessageInternal,
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		MessageInternal,
	)

	ErrEncryptionFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"ENCRYPTION_FAILED",
		MessageInternal,
	)

	ErrStoreUnavailable = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"STORE_UNAVAILABLE",
		MessageInternal,
	)
)

// AsAppError extracts the AppError from err's chain. Anything unclassified is internal.
func AsAppError(err error) AppError {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return ErrInternal
}

// KindOf reports the taxonomy kind of err.
func KindOf(err error) Kind {
	return AsAppError(err).Kind()
}
