package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("authentication failed")
	ErrStorage    = errors.New("storage error")
)

type AppError struct {
	Err     error  // actual error
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// AuthFailed returns an AppError for a credential mismatch at login.
// HTTP handlers map this to 401 Unauthorized. The message is deliberately
// the same whether the email or the password was wrong.
func AuthFailed() *AppError {
	return &AppError{
		Err:     ErrAuth,
		Message: "email or password is incorrect",
	}
}

// StorageCorrupt returns an AppError for a persisted snapshot that fails to
// parse. A missing snapshot is NOT an error (it reads as an empty collection);
// this is only for data that exists but cannot be decoded.
func StorageCorrupt(key string, err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %v", ErrStorage, err),
		Message: fmt.Sprintf("stored data under %q is corrupted", key),
	}
}
