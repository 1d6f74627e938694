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

// ErrTransient indicates a transient persistence failure; the enclosing
// atomic unit rolled back fully and the operation is safe to retry.
var ErrTransient = errors.New("transient store error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
// Repositories use it for failures that are neither validation nor
// not-found conditions.
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
	if e.Err != nil {
		return e.Err
	}
	return nil
}

// Is lets 5xx repository failures match ErrTransient so the job layer can
// classify them as retryable.
func (e *AppError) Is(target error) bool {
	return target == ErrTransient && e.Code >= 500
}

// NewAppError creates an AppError wrapping the underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an error that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewValidationError creates an error that matches errors.Is(err, ErrValidation).
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
