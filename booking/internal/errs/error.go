package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// BusinessError is a rule violation by the caller. Forbidden marks ownership failures.
type BusinessError struct {
	Message   string
	Forbidden bool
}

func (e *BusinessError) Error() string { return e.Message }

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string { return e.Message }

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func Business(msg string) error {
	return &BusinessError{Message: msg}
}

func Forbidden(msg string) error {
	return &BusinessError{Message: msg, Forbidden: true}
}

func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func Conflict(msg string) error {
	return &ConflictError{Message: msg}
}

func Validation(msg string, fields ...string) error {
	return &ValidationError{Message: msg, Fields: fields}
}

func Unauthorized(msg string) error {
	return &AuthError{Message: msg}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
