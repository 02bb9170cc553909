package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of the
// resource (e.g. recording a transaction against a completed project, or removing
// an accounting account that still has transactions).
var ErrConflict = errors.New("resource state conflict")

// ErrForbidden indicates that the authenticated user lacks the required
// relationship to the resource (e.g. not the project coordinator).
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrIntegrity indicates that a stored hash or signature no longer matches the
// record it protects. Security-relevant: callers must log it and never swallow it.
var ErrIntegrity = errors.New("integrity verification failed")

// ErrInternal indicates an infrastructure or persistence failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with a message and a suggested status code.
// Repositories use it to attach context to pgx failures without losing the
// underlying sentinel (errors.Is still works through Unwrap).
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
