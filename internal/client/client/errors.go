package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenMissing = errors.New("token not found in login response")
)

// DefaultAuthErrorText is used when a rejected login carries no error_text.
const DefaultAuthErrorText = "authorization failed"

// AuthError is a login rejected by the service with a non-zero error_code.
type AuthError struct {
	Code int
	Text string
}

func (e *AuthError) Error() string {
	return e.Text
}

// HTTPError is a non-2xx response other than 401/403.
type HTTPError struct {
	StatusCode int
	Code       int
	Text       string
}

func (e *HTTPError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Text)
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}
