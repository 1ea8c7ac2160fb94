package common

import "errors"

var (
	// ErrNotLoggedIn is returned by document commands while there is no session.
	ErrNotLoggedIn = errors.New("please log in first")

	// ErrInvalidToken is returned when a bearer token cannot be validated.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)
