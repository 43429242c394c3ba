// Package apperror defines the error taxonomy shared by all usecases.
// Handlers translate these into HTTP status codes with HTTPStatus.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated marks a failed credential check (bad/missing/expired token).
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrServiceUnavailable marks "we could not check": the identity provider was
	// unreachable and no usable key cache existed. Distinct from ErrUnauthenticated
	// so clients know a retry may succeed.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrInvalidArgument marks a contract violation by the caller.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrRateLimited     = errors.New("rate limited")
)

// Error wraps a sentinel with a human-readable message.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Unauthenticated(message string) *Error {
	return &Error{Err: ErrUnauthenticated, Message: message}
}

func ServiceUnavailable(message string) *Error {
	return &Error{Err: ErrServiceUnavailable, Message: message}
}

func InvalidArgument(message string) *Error {
	return &Error{Err: ErrInvalidArgument, Message: message}
}

func NotFound(resource string) *Error {
	return &Error{Err: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Forbidden(message string) *Error {
	return &Error{Err: ErrForbidden, Message: message}
}

func RateLimited(message string) *Error {
	return &Error{Err: ErrRateLimited, Message: message}
}

// HTTPStatus maps an error to its HTTP status code. Unclassified errors
// (storage failures and the like) map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
