// Package errs defines the error taxonomy shared by the workflows and the HTTP layer.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error.
type Kind string

// Error kinds surfaced to callers
const (
	KindValidation           Kind = "ValidationError"
	KindNotFound             Kind = "NotFound"
	KindDuplicateApplication Kind = "DuplicateApplication"
	KindConflict             Kind = "Conflict"
	KindInvalidTransition    Kind = "InvalidTransition"
	KindInvalidCredentials   Kind = "InvalidCredentials"
	KindUnauthorized         Kind = "Unauthorized"
)

// Error carries a Kind, a caller-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match when target is an *Error of the same Kind with no message,
// which lets the sentinels below be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

// Sentinels for errors.Is
var (
	ErrValidation           = &Error{Kind: KindValidation}
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrDuplicateApplication = &Error{Kind: KindDuplicateApplication}
	ErrConflict             = &Error{Kind: KindConflict}
	ErrInvalidTransition    = &Error{Kind: KindInvalidTransition}
	ErrInvalidCredentials   = &Error{Kind: KindInvalidCredentials}
	ErrUnauthorized         = &Error{Kind: KindUnauthorized}
)

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation reports a violated schema constraint.
func Validation(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

// NotFound reports a missing referenced record.
func NotFound(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

// DuplicateApplication reports a second live application for the same job and employee.
func DuplicateApplication(format string, args ...any) *Error {
	return newf(KindDuplicateApplication, format, args...)
}

// Conflict reports a violated uniqueness rule.
func Conflict(format string, args ...any) *Error {
	return newf(KindConflict, format, args...)
}

// InvalidTransition reports an illegal application status change.
func InvalidTransition(format string, args ...any) *Error {
	return newf(KindInvalidTransition, format, args...)
}

// InvalidCredentials is returned for any failed login.
func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Invalid email or password"}
}

// Unauthorized reports an ownership mismatch.
func Unauthorized(format string, args ...any) *Error {
	return newf(KindUnauthorized, format, args...)
}

// Wrap attaches a cause to a new Error of the given kind.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Message returns the caller-facing message of err.
// Errors outside the taxonomy are reported as a generic server error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}

// HTTPStatus maps err to the status code returned by the handlers.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusForbidden
	case KindValidation, KindDuplicateApplication, KindConflict, KindInvalidTransition, KindInvalidCredentials:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
