package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrTimeout         = errors.New("request timed out")
	ErrServerRejected  = errors.New("server rejected request")
	ErrTransientServer = errors.New("transient server error")
	ErrUnreachable     = errors.New("server unreachable")
)

// APIError describes a failed backend call. It unwraps to one of the sentinel
// errors above so callers can branch with errors.Is.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Kind       error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v: %s", e.Method, e.Path, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s %s: %v (status %d): %s", e.Method, e.Path, e.Kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// IsRetryable reports whether a failed call may succeed when repeated.
// Client errors (4xx) and missing credentials never are.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrTransientServer) || errors.Is(err, ErrUnreachable)
}

func kindForStatus(status int) error {
	switch {
	case status == 401 || status == 403:
		return ErrUnauthenticated
	case status == 408 || status == 504:
		return ErrTimeout
	case status >= 500:
		return ErrTransientServer
	default:
		return ErrServerRejected
	}
}
