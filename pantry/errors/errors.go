// errors/errors.go
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a coded helper error. Code is machine-readable, Message is safe to
// show to users, and Status is the HTTP status a handler should answer with.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Status  int            `json:"-"`
	Details map[string]any `json:"details,omitempty"`
	Err     error          `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(InvalidInput("..."), ErrInvalidInput) holds.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithDetail adds a single detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// HTTPStatus returns the HTTP status code for the error.
func (e *Error) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	type alias Error
	return json.Marshal(&struct {
		*alias
	}{
		alias: (*alias)(e),
	})
}

// New creates a new Error with code, message, and HTTP status.
func New(code, message string, status int) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(err error, code, message string, status int) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// From extracts an *Error from err if possible, or wraps it as an internal error.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{
		Code:    CodeInternalError,
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

const (
	CodeBadRequest       = "bad_request"
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeInternalError    = "internal_error"
	CodePayloadTooLarge  = "payload_too_large"

	// CodeInvalidInput marks malformed helper input: a duration that is not
	// HH:MM, or money text with no digits in it.
	CodeInvalidInput = "invalid_input"

	// CodeNoMatch is reported when text matches none of the known date shapes.
	// The date resolver itself returns ok=false for this; only the HTTP layer
	// turns it into an error.
	CodeNoMatch = "no_match"

	// CodeCalendarInvalid marks text with a valid shape but impossible
	// calendar fields (month 13, February 30).
	CodeCalendarInvalid = "calendar_invalid"
)

// Sentinels for errors.Is. Compare by code; never mutate them.
var (
	ErrInvalidInput    = New(CodeInvalidInput, "invalid input", http.StatusBadRequest)
	ErrNoMatch         = New(CodeNoMatch, "no known format matched", http.StatusUnprocessableEntity)
	ErrCalendarInvalid = New(CodeCalendarInvalid, "invalid calendar date", http.StatusUnprocessableEntity)
)

// BadRequest creates a 400 Bad Request error.
func BadRequest(message string) *Error {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

// NotFound creates a 404 Not Found error.
func NotFound(message string) *Error {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// PayloadTooLarge creates a 413 error for bodies over the configured cap.
func PayloadTooLarge(limit int64) *Error {
	return New(CodePayloadTooLarge, "request body too large", http.StatusRequestEntityTooLarge).
		WithDetail("limit_bytes", limit)
}

// MethodNotAllowed creates a 405 Method Not Allowed error.
func MethodNotAllowed(message string) *Error {
	return New(CodeMethodNotAllowed, message, http.StatusMethodNotAllowed)
}

// Internal creates a 500 Internal Server Error.
func Internal(message string) *Error {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}

// InvalidInput creates a 400 error with the invalid_input code.
func InvalidInput(message string) *Error {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

// NoMatch creates a 422 error with the no_match code.
func NoMatch(message string) *Error {
	return New(CodeNoMatch, message, http.StatusUnprocessableEntity)
}

// CalendarInvalid wraps a date construction failure with the calendar_invalid code.
func CalendarInvalid(err error) *Error {
	return Wrap(err, CodeCalendarInvalid, "invalid calendar date", http.StatusUnprocessableEntity)
}
