package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophdocs/internal/client/client"
	"github.com/dmitrijs2005/gophdocs/internal/client/config"
	"github.com/dmitrijs2005/gophdocs/internal/client/listview"
	"github.com/dmitrijs2005/gophdocs/internal/client/services"
	"github.com/dmitrijs2005/gophdocs/internal/client/store"
	"github.com/dmitrijs2005/gophdocs/internal/client/tui"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
)

// runBrowser is a test seam for tui.Run.
var runBrowser = tui.Run

type App struct {
	config      *config.Config
	db          *sql.DB
	authService services.AuthService
	docService  services.DocumentService
	store       *store.Store
	view        listview.State
	loaded      bool
	reader      *bufio.Reader
	out         io.Writer
	styles      tui.Styles
	logger      logging.Logger
}

// NewApp opens the local database and wires the services to the API at
// c.ServerBaseURL.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, fmt.Errorf("init database: %w", err)
	}

	st := store.New()
	apiClient := client.NewHTTPClient(c.ServerBaseURL,
		client.WithTokenSource(st.Token),
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger.With("component", "http")),
	)

	return newApp(c, db, apiClient, st, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, db *sql.DB, apiClient client.Client, st *store.Store, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:      c,
		db:          db,
		authService: services.NewAuthService(apiClient, db, st, logger),
		docService:  services.NewDocumentService(apiClient, st, logger),
		store:       st,
		view:        listview.New(c.PageSize),
		reader:      bufio.NewReader(in),
		out:         out,
		styles:      tui.DefaultStyles(),
		logger:      logger,
	}
}

// Run restores a saved session, then serves the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()
	a.Root(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.store.State().Auth.LoggedIn()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
