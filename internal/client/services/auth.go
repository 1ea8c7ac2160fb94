// Package services contains the application services of the gophdocs client.
// This file defines the session service: login, logout and restoring a saved
// session at start-up.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/dmitrijs2005/gophdocs/internal/client/forms"
	"github.com/dmitrijs2005/gophdocs/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophdocs/internal/client/store"
	"github.com/dmitrijs2005/gophdocs/internal/dbx"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
)

// AuthService manages the session.
//
// Contract:
//   - Login: validate credentials locally, authenticate against the server,
//     persist the token and the username, mark the store authenticated.
//   - Logout: clear the session and the loaded documents, then remove the
//     persisted token.
//   - Restore: load a persisted token into the store.
//   - Username: the user of the current session, "" when logged out.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)
	Username() string
}

// sessionRepo binds a metadata.Repository to a database handle or transaction.
type sessionRepo func(db dbx.DBTX) metadata.Repository

func sqliteSessions(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

type authService struct {
	client   client.Client
	db       *sql.DB
	sessions sessionRepo
	store    *store.Store
	logger   logging.Logger

	mu       sync.RWMutex
	username string
}

// NewAuthService constructs an AuthService bound to the API client, the local
// database and the shared store.
func NewAuthService(c client.Client, db *sql.DB, st *store.Store, logger logging.Logger) AuthService {
	return &authService{client: c, db: db, sessions: sqliteSessions, store: st, logger: logger}
}

// Login returns a *forms.ValidationError without any request or store change
// when the credentials are malformed. Request failures are recorded in the
// store and returned as they are.
func (a *authService) Login(ctx context.Context, username, password string) (string, error) {
	username, err := forms.ValidateCredentials(username, password)
	if err != nil {
		return "", err
	}

	a.store.UpdateAuth(store.LoginPending)

	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.logger.Warn(ctx, "login rejected", "username", username, "error", err)
		a.store.UpdateAuth(store.LoginRejected(err.Error()))
		return "", err
	}

	if err := a.saveSession(ctx, username, token); err != nil {
		a.store.UpdateAuth(store.LoginRejected(err.Error()))
		return "", fmt.Errorf("session saving error: %w", err)
	}

	a.setUsername(username)
	a.store.UpdateAuth(store.LoginFulfilled(token))
	a.logger.Info(ctx, "logged in", "username", username)

	return token, nil
}

// saveSession persists token and username in a single transaction.
func (a *authService) saveSession(ctx context.Context, username, token string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return a.sessions(tx).Save(ctx, metadata.Session{Username: username, Token: token})
	})
}

func (a *authService) Logout(ctx context.Context) error {
	a.store.UpdateAuth(store.LoggedOut)
	a.store.UpdateDocuments(store.DocumentsCleared)
	a.setUsername("")

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return a.sessions(tx).Clear(ctx)
	})
	if err != nil {
		return fmt.Errorf("session removal error: %w", err)
	}

	a.logger.Info(ctx, "logged out")
	return nil
}

// Restore reports whether a saved session was found.
func (a *authService) Restore(ctx context.Context) (bool, error) {
	s, err := a.sessions(a.db).Load(ctx)
	if err != nil {
		return false, err
	}
	if s.Empty() {
		return false, nil
	}

	a.setUsername(s.Username)
	a.store.UpdateAuth(store.LoginFulfilled(s.Token))
	a.logger.Debug(ctx, "session restored", "username", s.Username)

	return true, nil
}

func (a *authService) Username() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.username
}

func (a *authService) setUsername(u string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.username = u
}
