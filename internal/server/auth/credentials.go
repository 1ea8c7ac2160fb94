package auth

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned for an unknown user or a wrong password.
var ErrBadCredentials = errors.New("access denied")

var usernamePattern = regexp.MustCompile(`^user\d+$`)

// Authenticator accepts every user named user<N> with one shared password.
// Only the bcrypt hash of the password is kept.
type Authenticator struct {
	hash []byte
}

func NewAuthenticator(password string) (*Authenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Authenticator{hash: hash}, nil
}

// Check returns the trimmed user name on success.
func (a *Authenticator) Check(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
		return "", ErrBadCredentials
	}
	return username, nil
}
