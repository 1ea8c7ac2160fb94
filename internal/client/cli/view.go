package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/client/listview"
	"github.com/dmitrijs2005/gophdocs/internal/client/tui"
)

func (a *App) total() int {
	return len(a.store.State().Documents.Items)
}

// Sort selects the sort column. Without a direction the active column
// toggles and a new column sorts ascending.
func (a *App) Sort(_ context.Context, args []string) error {
	if len(args) == 0 {
		keys := make([]string, 0)
		for _, k := range listview.SortKeys() {
			keys = append(keys, string(k))
		}
		return fmt.Errorf("usage: sort <field> [asc|desc], fields: %s", strings.Join(keys, ", "))
	}

	key, err := listview.ParseSortKey(args[0])
	if err != nil {
		return err
	}

	if len(args) > 1 {
		dir, err := listview.ParseDirection(args[1])
		if err != nil {
			return err
		}
		a.view = a.view.SortWith(key, dir)
	} else {
		a.view = a.view.SortBy(key)
	}

	a.printList()
	return nil
}

func (a *App) Next(context.Context) error {
	a.view = a.view.NextPage(a.total())
	a.printList()
	return nil
}

func (a *App) Prev(context.Context) error {
	a.view = a.view.PrevPage()
	a.printList()
	return nil
}

// Page jumps to a 1-based page number.
func (a *App) Page(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: page <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid page %q", args[0])
	}
	a.view = a.view.SetPage(n-1, a.total())
	a.printList()
	return nil
}

func (a *App) Size(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: size <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid page size %q", args[0])
	}
	a.view = a.view.WithPageSize(n)
	a.printList()
	return nil
}

// Browse opens the full-screen browser and keeps its sort and page on exit.
func (a *App) Browse(ctx context.Context) error {
	view, err := runBrowser(ctx, tui.Options{
		Documents: a.docService,
		Store:     a.store,
		Username:  a.authService.Username(),
		View:      a.view,
		NoticeTTL: a.config.NoticeTTL,
	})
	a.view = view
	a.loaded = true
	return err
}
