package forms

import (
	"regexp"
	"strings"
)

const (
	// UsernamePattern is the accepted login shape: user1, user2, ...
	UsernamePattern = `^user\d+$`

	// FixedPassword is the only password the service accepts.
	FixedPassword = "password"
)

const (
	MsgBadUsername = "Login must look like user1, user2, user3..."
	MsgBadPassword = "Invalid password"
)

var usernameRe = regexp.MustCompile(UsernamePattern)

// ValidateCredentials checks the login form. It returns the trimmed username.
func ValidateCredentials(username, password string) (string, error) {
	username = strings.TrimSpace(username)

	if !usernameRe.MatchString(username) {
		return username, &ValidationError{Field: "username", Message: MsgBadUsername}
	}
	if password != FixedPassword {
		return username, &ValidationError{Field: "password", Message: MsgBadPassword}
	}
	return username, nil
}
