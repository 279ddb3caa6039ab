// Package apperr provides coded domain errors and their HTTP mapping.
//
// Services return these errors; handlers translate them with Status and
// Detail. Anything that is not an *Error is an infrastructure failure and
// maps to 500 without leaking its text.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error category.
type Code string

const (
	CodeValidation          Code = "VALIDATION"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeNotFound            Code = "NOT_FOUND"
	CodeConflict            Code = "CONFLICT"
	CodeUnresolvedReference Code = "UNRESOLVED_REFERENCE"
)

// HTTPStatus returns the default status for the code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnresolvedReference:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error.
type Error struct {
	Code    Code
	Message string
	status  int
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the override status if set, otherwise the code's default.
func (e *Error) HTTPStatus() int {
	if e.status != 0 {
		return e.status
	}
	return e.Code.HTTPStatus()
}

// WithStatus returns a copy of e answering with status instead of the default.
func (e *Error) WithStatus(status int) *Error {
	return &Error{Code: e.Code, Message: e.Message, status: status, cause: e.cause}
}

// Sentinels for errors.Is checks.
var (
	ErrValidation          = &Error{Code: CodeValidation}
	ErrUnauthorized        = &Error{Code: CodeUnauthorized}
	ErrNotFound            = &Error{Code: CodeNotFound}
	ErrConflict            = &Error{Code: CodeConflict}
	ErrUnresolvedReference = &Error{Code: CodeUnresolvedReference}
)

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

// NotFound reports "<resource> not found", e.g. NotFound("Item").
func NotFound(resource string) *Error {
	return &Error{Code: CodeNotFound, Message: resource + " not found"}
}

func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

// UnresolvedReference reports that ids of the given kind do not exist.
func UnresolvedReference(kind string) *Error {
	return &Error{Code: CodeUnresolvedReference, Message: fmt.Sprintf("one or more %s ids do not exist", kind)}
}

// Wrap attaches cause to a domain error without changing its message.
func Wrap(e *Error, cause error) *Error {
	return &Error{Code: e.Code, Message: e.Message, status: e.status, cause: cause}
}

// Status returns the HTTP status for any error.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Detail returns the client-facing message for any error.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}
