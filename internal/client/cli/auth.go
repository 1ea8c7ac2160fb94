package cli

import (
	"context"

	"github.com/dmitrijs2005/gophdocs/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials and starts a session. On success the
// document list is loaded and printed. The password buffer is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username (user1, user2, ...)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Login(ctx, username, string(password)); err != nil {
		return err
	}

	a.printf("Logged in as %s\n", a.authService.Username())
	a.loaded = false
	return a.List(ctx)
}

// Logout drops the session and the loaded documents.
func (a *App) Logout(ctx context.Context) error {
	a.loaded = false
	a.view = a.view.WithPageSize(a.view.PageSize)
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}
