// Package server wires and runs the development backend: an HTTP server
// speaking the documents API with in-memory or PostgreSQL storage.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/dmitrijs2005/gophdocs/internal/server/auth"
	"github.com/dmitrijs2005/gophdocs/internal/server/config"
	"github.com/dmitrijs2005/gophdocs/internal/server/documents"
	"github.com/dmitrijs2005/gophdocs/internal/server/rest"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *rest.Server
}

// NewApp wires the backend. With a DatabaseDSN the documents live in
// PostgreSQL and the schema is migrated here; otherwise they stay in memory.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	authenticator, err := auth.NewAuthenticator(c.Password)
	if err != nil {
		return nil, fmt.Errorf("authenticator init error: %w", err)
	}

	var (
		db   *sql.DB
		docs documents.Repository = documents.NewMemoryRepository()
	)
	if c.DatabaseDSN != "" {
		db, err = documents.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("storage init error: %w", err)
		}
		docs = documents.NewPostgresRepository(db)
	}

	secret := []byte(c.SecretKey)
	h := rest.NewHandler(authenticator, docs, secret, c.TokenTTL, logger)
	router := rest.NewRouter(h, c.BasePath, secret, logger)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		server: rest.NewServer(c.Address, router, logger),
	}, nil
}

func (app *App) storage() string {
	if app.db != nil {
		return "postgres"
	}
	return "memory"
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	if app.db != nil {
		defer app.db.Close()
	}

	app.logger.Info(ctx, "Starting app...", "base_path", app.config.BasePath,
		"token_ttl", app.config.TokenTTL.String(), "storage", app.storage())

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped with error", "error", err)
		return err
	}
	return nil
}
