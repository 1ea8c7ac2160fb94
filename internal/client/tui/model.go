package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/client/forms"
	"github.com/dmitrijs2005/gophdocs/internal/client/listview"
	"github.com/dmitrijs2005/gophdocs/internal/client/services"
	"github.com/dmitrijs2005/gophdocs/internal/client/store"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirm
)

// opDoneMsg reports the end of a service call started by the browser.
type opDoneMsg struct {
	op  store.Operation
	err error
}

// noticeExpiredMsg dismisses the notice with the given id.
type noticeExpiredMsg struct {
	id int
}

// Options configures the browser.
type Options struct {
	Documents services.DocumentService
	Store     *store.Store
	Username  string
	View      listview.State
	NoticeTTL time.Duration
}

// Model is the document browser.
type Model struct {
	ctx    context.Context
	docs   services.DocumentService
	store  *store.Store
	user   string
	styles Styles

	view   listview.State
	table  table.Model
	window []api.Document
	total  int

	mode    mode
	form    formModel
	confirm api.Document
	pending bool

	notice    string
	noticeID  int
	noticeTTL time.Duration
}

func NewModel(ctx context.Context, opts Options) Model {
	view := opts.View
	if view.PageSize <= 0 {
		view = view.WithPageSize(listview.DefaultPageSize)
	}
	ttl := opts.NoticeTTL
	if ttl <= 0 {
		ttl = 3 * time.Second
	}

	t := table.New(
		table.WithColumns(columns(view)),
		table.WithFocused(true),
		table.WithHeight(view.PageSize),
	)

	m := Model{
		ctx:       ctx,
		docs:      opts.Documents,
		store:     opts.Store,
		user:      opts.Username,
		styles:    DefaultStyles(),
		view:      view,
		table:     t,
		noticeTTL: ttl,
	}
	m.refresh()
	return m
}

// ListView returns the current list view state, so the REPL can keep it after the
// browser exits.
func (m Model) ListView() listview.State {
	return m.view
}

func (m Model) Init() tea.Cmd {
	return m.run(store.OpFetch, m.docs.Fetch)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		return m, nil

	case opDoneMsg:
		return m.handleDone(msg)

	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		m.view = m.view.NextSortKey()
	case "r":
		m.view = m.view.Reverse()
	case "left", "h":
		m.view = m.view.PrevPage()
	case "right", "l":
		m.view = m.view.NextPage(m.total)
	case "+", "=":
		m.view = m.view.Grow()
		m.table.SetHeight(m.view.PageSize)
	case "-":
		m.view = m.view.Shrink()
		m.table.SetHeight(m.view.PageSize)
	case "R":
		return m, m.run(store.OpFetch, m.docs.Fetch)
	case "esc":
		m.store.UpdateDocuments(store.ErrorDismissed)
		return m, nil
	case "c":
		m.form = newForm("", api.DocumentFields{})
		m.mode = modeForm
		return m, nil
	case "e":
		if d, ok := m.selected(); ok {
			m.form = newForm(d.ID, d.Fields())
			m.mode = modeForm
		}
		return m, nil
	case "d":
		if d, ok := m.selected(); ok {
			m.confirm = d
			m.mode = modeConfirm
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	m.table.SetCursor(0)
	m.refresh()
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.pending {
			m.mode = modeList
		}
		return m, nil
	case "tab", "down":
		m.form = m.form.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.form = m.form.moveFocus(-1)
		return m, nil
	case "enter":
		if m.pending {
			return m, nil
		}
		fields := m.form.fields()
		if err := forms.ValidateDocument(fields); err != nil {
			var verr *forms.ValidationError
			if errors.As(err, &verr) {
				m.form.invalid = verr
			}
			return m, nil
		}
		m.pending = true
		m.form.failure = ""
		if m.form.editing() {
			id := m.form.id
			return m, m.run(store.OpUpdate, func(ctx context.Context) error {
				_, err := m.docs.Update(ctx, id, fields)
				return err
			})
		}
		return m, m.run(store.OpCreate, func(ctx context.Context) error {
			_, err := m.docs.Create(ctx, fields)
			return err
		})
	}

	if m.pending {
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.pending {
			return m, nil
		}
		m.pending = true
		id := m.confirm.ID
		return m, m.run(store.OpDelete, func(ctx context.Context) error {
			return m.docs.Delete(ctx, id)
		})
	case "n", "esc":
		if !m.pending {
			m.mode = modeList
		}
	}
	return m, nil
}

func (m Model) handleDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	if msg.op != store.OpFetch {
		m.pending = false
	}

	var refreshErr *services.RefreshError
	var verr *forms.ValidationError

	switch {
	case msg.op == store.OpFetch:
		m.refresh()
		return m, nil
	case msg.err == nil || errors.As(msg.err, &refreshErr):
		m.mode = modeList
		m.refresh()
		return m.showNotice(successText(msg.op))
	case errors.As(msg.err, &verr):
		m.form.invalid = verr
	case m.mode == modeForm:
		m.form.failure = msg.err.Error()
	default:
		m.mode = modeList
	}

	m.refresh()
	return m, nil
}

func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.noticeID++
	m.notice = text
	id := m.noticeID
	return m, tea.Tick(m.noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func successText(op store.Operation) string {
	switch op {
	case store.OpCreate:
		return "Document created"
	case store.OpUpdate:
		return "Document updated"
	case store.OpDelete:
		return "Document deleted"
	}
	return ""
}

// run wraps a service call in a command reporting opDoneMsg.
func (m Model) run(op store.Operation, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m Model) selected() (api.Document, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.window) {
		return api.Document{}, false
	}
	return m.window[i], true
}

// refresh recomputes the visible window from the store.
func (m *Model) refresh() {
	items := m.store.State().Documents.Items
	m.total = len(items)
	m.view = m.view.Clamp(m.total)
	m.window = m.view.Window(items)

	rows := make([]table.Row, len(m.window))
	first := m.view.Page*m.view.PageSize + 1
	for i, d := range m.window {
		rows[i] = Row(first+i, d)
	}
	m.table.SetColumns(columns(m.view))
	m.table.SetRows(rows)
	if n := len(rows); n > 0 {
		if c := m.table.Cursor(); c < 0 || c >= n {
			m.table.SetCursor(min(max(c, 0), n-1))
		}
	}
}

func columns(view listview.State) []table.Column {
	headers := Headers(view)
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		w := 14
		if i == 0 {
			w = 4
		}
		cols[i] = table.Column{Title: h, Width: max(w, len(h))}
	}
	return cols
}

func (m Model) View() string {
	var sb strings.Builder
	st := m.store.State().Documents

	title := "Documents"
	if m.user != "" {
		title += " · " + m.user
	}
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("   %d total · page %d/%d · %d per page",
		m.total, m.view.Page+1, listview.PageCount(m.total, m.view.PageSize), m.view.PageSize)))
	sb.WriteString("\n")

	if st.Loading {
		sb.WriteString(m.styles.Busy.Render(loadingText(st.CurrentOperation)))
		sb.WriteString("\n")
	}
	if st.Error != "" {
		sb.WriteString(m.styles.Error.Render("Error: " + st.Error))
		sb.WriteString(m.styles.Muted.Render("  R retry • esc dismiss"))
		sb.WriteString("\n")
	}
	if m.notice != "" {
		sb.WriteString(m.styles.Notice.Render(m.notice))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	switch m.mode {
	case modeForm:
		sb.WriteString(m.form.view(m.styles, m.pending))
	case modeConfirm:
		sb.WriteString(m.confirmView())
	default:
		if m.total == 0 && !st.Loading {
			sb.WriteString(m.styles.Muted.Render("No documents."))
			sb.WriteString("\n")
		} else {
			sb.WriteString(m.table.View())
		}
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(
			"↑/↓ select • ←/→ page • +/- page size • s sort • r reverse • c create • e edit • d delete • R reload • q quit"))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) confirmView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Confirm deletion"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Delete document %q?", m.confirm.DocumentName))
	sb.WriteString("\n\n")
	if m.pending {
		sb.WriteString(m.styles.Busy.Render("Deleting..."))
	} else {
		sb.WriteString(m.styles.Muted.Render("y delete • n cancel"))
	}
	return m.styles.Dialog.Render(sb.String())
}

func loadingText(op store.Operation) string {
	switch op {
	case store.OpCreate:
		return "Creating..."
	case store.OpUpdate:
		return "Saving..."
	case store.OpDelete:
		return "Deleting..."
	}
	return "Loading..."
}
