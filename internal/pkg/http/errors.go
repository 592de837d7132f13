package http

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/piresc/chatsync/internal/pkg/circuitbreaker"
)

// ErrorResponse is the body the API sends with non-2xx responses
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ClientError is a non-2xx API response surfaced to callers
type ClientError struct {
	Code    int
	Message string
	Cause   string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("%d (%s)", e.Code, e.Message)
}

// IsUnauthorized reports whether err is an expired or missing session.
// The caller decides whether to send the user back to login.
func IsUnauthorized(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Code == nethttp.StatusUnauthorized
}

// IsServerError reports whether err is a 5xx API response
func IsServerError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Code >= nethttp.StatusInternalServerError
}

// isTransient reports whether a failed request may succeed when repeated
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return false
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code >= nethttp.StatusInternalServerError
	}
	return true
}
