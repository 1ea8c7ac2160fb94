package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophdocs/internal/client/listview"
)

// Run shows the browser until the user quits and returns the final list view
// state.
func Run(ctx context.Context, opts Options) (listview.State, error) {
	p := tea.NewProgram(NewModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return opts.View, err
	}
	if m, ok := final.(Model); ok {
		return m.ListView(), nil
	}
	return opts.View, nil
}
