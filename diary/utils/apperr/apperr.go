package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an Error.
type Code string

const (
	CodeValidation Code = "VALIDATION" // 400
	CodeNotFound   Code = "NOT_FOUND"  // 404
	CodeStorage    Code = "STORAGE"    // 500
)

// Error is returned by controllers. Message is safe to show to clients;
// Cause is for logs only.
type Error struct {
	Code    Code
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func NewValidation(msg string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: msg}
}

func NewNotFound(date string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("no mood record for %s", date),
	}
}

// NewStorage hides the database error behind a generic message.
func NewStorage(err error) *Error {
	return &Error{
		Code:    CodeStorage,
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
		Cause:   err,
	}
}

// Is reports whether err is an *Error with the given code.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Status maps any error to an HTTP status and a client-facing message.
// Errors that are not *Error are treated as storage failures.
func Status(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, "internal server error"
}
