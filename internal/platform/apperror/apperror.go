// Package apperror defines the error taxonomy shared by every feature and its HTTP mapping.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error by how the caller should observe it.
type Kind int

const (
	// KindInternal is the zero value: anything unclassified is treated as a server failure.
	KindInternal Kind = iota
	KindInvalidRequest
	KindUnauthenticated
	KindNotFound
	KindConflict
	KindRateLimited
)

// String returns the stable error code sent to clients.
func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "INVALID_REQUEST"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindRateLimited:
		return "RATE_LIMITED"
	default:
		return "INTERNAL_ERROR"
	}
}

// HTTPStatus maps a Kind to its response status.
// Conflict is reported as 400 to stay compatible with existing clients of /auth/register.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidRequest, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified application error.
// Sentinels are declared as package-level *Error values so errors.Is works by identity.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// New creates a classified error. An empty code defaults to the Kind's code.
func New(kind Kind, code, message string) *Error {
	if code == "" {
		code = kind.String()
	}
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error with the same Kind and Code, so wrapped copies
// created by Wrap still compare equal to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// Wrap attaches a cause to a sentinel without mutating it.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Code: sentinel.Code, Message: sentinel.Message, Err: cause}
}

// KindOf extracts the Kind of err, or KindInternal when err is not classified.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
