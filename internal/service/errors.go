package service

import (
	"errors"
)

// Failure kinds. The handler layer maps each one to an HTTP status.
var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication failed")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
)

// Error is a failure with a message that is safe to show to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func validationError(err error) error {
	return newError(ErrValidation, err.Error())
}
