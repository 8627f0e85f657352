// Package errors defines structured error types for the member store.
package errors

import (
	"fmt"
	"maps"
)

// ErrorCode defines specific error types for the store.
type ErrorCode string

const (
	// ErrCodeInvalidArgument is returned when a required argument or its identifier is missing
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeAlreadyExists is returned when inserting an identifier that is already stored
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	// ErrCodeNotFound is returned when updating an identifier that is not stored
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Sentinels for errors.Is. They match any StoreError with the same code.
var (
	ErrInvalidArgument = &StoreError{code: ErrCodeInvalidArgument, message: "invalid argument"}
	ErrAlreadyExists   = &StoreError{code: ErrCodeAlreadyExists, message: "already exists"}
	ErrNotFound        = &StoreError{code: ErrCodeNotFound, message: "not found"}
)

// ErrorWithCode is an error that carries a store error code.
type ErrorWithCode interface {
	Error() string
	Code() ErrorCode
	Details() map[string]any
}

// StoreError is a concrete error type with code, message and optional details.
type StoreError struct {
	code       ErrorCode
	message    string
	details    map[string]any
	wrappedErr error
}

// New creates a new StoreError with the given code and message.
func New(code ErrorCode, message string) *StoreError {
	return &StoreError{
		code:    code,
		message: message,
		details: make(map[string]any),
	}
}

// WithDetail returns a copy of the error with one more detail.
//
// The receiver is left untouched, so it is safe to call on the sentinels.
func (e *StoreError) WithDetail(key string, value any) *StoreError {
	c := e.clone()
	c.details[key] = value
	return c
}

// Wrap returns a copy of the error wrapping err.
func (e *StoreError) Wrap(err error) *StoreError {
	c := e.clone()
	c.wrappedErr = err
	return c
}

func (e *StoreError) clone() *StoreError {
	c := *e
	c.details = make(map[string]any, len(e.details)+1)
	maps.Copy(c.details, e.details)
	return &c
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.wrappedErr != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrappedErr)
	}
	return e.message
}

// Code returns the error code.
func (e *StoreError) Code() ErrorCode {
	return e.code
}

// Details returns additional error details.
func (e *StoreError) Details() map[string]any {
	return e.details
}

// Unwrap returns the wrapped error if any.
func (e *StoreError) Unwrap() error {
	return e.wrappedErr
}

// Is reports whether target is a StoreError with the same code.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return t.code == e.code
}

// CodeOf returns the code of the first ErrorWithCode in err's chain, or "".
func CodeOf(err error) ErrorCode {
	for err != nil {
		if c, ok := err.(ErrorWithCode); ok {
			return c.Code()
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// Predefined error constructors for common cases

// MissingArgument is returned when the argument itself is absent.
func MissingArgument() *StoreError {
	return New(ErrCodeInvalidArgument, "undefined passed as argument to store")
}

// MissingID is returned when the argument is present but has no identifier.
func MissingID() *StoreError {
	return New(ErrCodeInvalidArgument, "undefined id on member passed as argument to store")
}

// InvalidArgument creates an invalid argument error with a custom message.
func InvalidArgument(message string) *StoreError {
	return New(ErrCodeInvalidArgument, message)
}

// AlreadyExists creates an error for an identifier that is already stored.
func AlreadyExists(id any) *StoreError {
	return New(ErrCodeAlreadyExists, fmt.Sprintf("%v already exists", id)).WithDetail("id", id)
}

// NotFound creates an error for an identifier that is not stored.
func NotFound(id any) *StoreError {
	return New(ErrCodeNotFound, fmt.Sprintf("%v does not exist", id)).WithDetail("id", id)
}
