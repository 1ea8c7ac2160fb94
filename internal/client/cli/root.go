package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if u := a.authService.Username(); u != "" {
		return fmt.Sprintf("(%s)", u)
	}
	return ""
}

// Root restores a saved session if there is one and runs the REPL.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to gophdocs (type 'help' for commands)")

	ok, err := a.authService.Restore(ctx)
	switch {
	case err != nil:
		a.logger.Warn(ctx, "session restore failed", "error", err)
	case ok:
		a.printf("Logged in as %s\n", a.authService.Username())
		if err := a.List(ctx); err != nil {
			a.println("Error:", err)
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
