package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so the handler layer can map it to an HTTP status
// without inspecting message text.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindInvalidState
)

// Error is the application error type carried across usecase boundaries.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new application error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new application error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new application error wrapping an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation reports a malformed or missing input field.
func Validation(message string) *Error { return New(KindValidation, message) }

// Conflict reports a uniqueness violation, e.g. a duplicate username.
func Conflict(message string) *Error { return New(KindConflict, message) }

// Authentication reports missing/invalid credentials or tokens.
func Authentication(message string) *Error { return New(KindAuthentication, message) }

// Authorization reports a role or ownership mismatch.
func Authorization(message string) *Error { return New(KindAuthorization, message) }

// NotFound reports a missing record.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// InvalidState reports an operation attempted from a status that does not
// permit it.
func InvalidState(message string) *Error { return New(KindInvalidState, message) }

// KindOf extracts the kind of an error, or KindUnexpected for plain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the HTTP status code of its kind.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict, KindInvalidState:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
