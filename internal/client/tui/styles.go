// Package tui is the full-screen document browser of the gophdocs client,
// built on bubbletea. It also renders the plain tables printed by the REPL.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6b7280")
	colorDanger  = lipgloss.Color("#e53935")
	colorInfo    = lipgloss.Color("#2196F3")
	colorBorder  = lipgloss.Color("#2a3850")
	colorForeFg  = lipgloss.Color("#f2f2f2")
	colorWarning = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles used by the browser and the tables.
type Styles struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Notice  lipgloss.Style
	Busy    lipgloss.Style
	Invalid lipgloss.Style
	Dialog  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Bold:    lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(colorForeFg).Background(colorDanger).Padding(0, 1),
		Notice:  lipgloss.NewStyle().Foreground(colorInfo),
		Busy:    lipgloss.NewStyle().Foreground(colorWarning),
		Invalid: lipgloss.NewStyle().Foreground(colorDanger),
		Dialog:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
	}
}
