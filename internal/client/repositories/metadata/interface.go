// Package metadata persists the client session in the local database: the API
// token and the name of the user it was issued to.
package metadata

import (
	"context"
)

// Session is a saved login. The zero Session means nothing is saved.
type Session struct {
	Username string
	Token    string
}

// Empty reports whether s carries no token.
func (s Session) Empty() bool {
	return s.Token == ""
}

// Repository loads and stores the Session.
//
// Load returns the zero Session when nothing is saved. Clear removes every
// stored pair, so a later Load returns the zero Session.
type Repository interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
