package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/client/forms"
)

// formModel is the create/edit dialog: one text input per document field.
type formModel struct {
	id      string // empty when creating
	inputs  []textinput.Model
	focus   int
	invalid *forms.ValidationError
	failure string
}

func newForm(id string, fields api.DocumentFields) formModel {
	if id != "" {
		fields = forms.ForEdit(fields)
	}

	inputs := make([]textinput.Model, len(forms.DocumentForm))
	for i, f := range forms.DocumentForm {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 200
		ti.Width = 40
		if f.Date {
			ti.Placeholder = "YYYY-MM-DD"
		}
		ti.SetValue(fields.Value(f.Name))
		inputs[i] = ti
	}

	m := formModel{id: id, inputs: inputs}
	m.inputs[0].Focus()
	return m
}

func (m formModel) editing() bool {
	return m.id != ""
}

func (m formModel) fields() api.DocumentFields {
	var out api.DocumentFields
	for i, f := range forms.DocumentForm {
		out.Set(f.Name, m.inputs[i].Value())
	}
	return out
}

func (m formModel) moveFocus(delta int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// update forwards msg to the focused input. Editing clears the inline
// validation message.
func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if m.inputs[m.focus].Value() != before {
		m.invalid = nil
	}
	return m, cmd
}

func (m formModel) view(styles Styles, loading bool) string {
	var sb strings.Builder

	title := "Create document"
	if m.editing() {
		title = "Edit document"
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n\n")

	if m.invalid != nil {
		sb.WriteString(styles.Invalid.Render(m.invalid.Error()))
		sb.WriteString("\n\n")
	} else if m.failure != "" {
		sb.WriteString(styles.Invalid.Render(m.failure))
		sb.WriteString("\n\n")
	}

	for i, f := range forms.DocumentForm {
		label := f.Label
		if f.Required {
			label += " *"
		}
		label = padRight(label, 26)

		switch {
		case m.invalid != nil && m.invalid.Mentions(f.Label):
			label = styles.Invalid.Render(label)
		case i == m.focus:
			label = styles.Bold.Render(label)
		default:
			label = styles.Muted.Render(label)
		}

		sb.WriteString(label)
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if loading {
		sb.WriteString(styles.Busy.Render("Saving..."))
	} else {
		sb.WriteString(styles.Muted.Render("tab/shift+tab move • enter save • esc cancel"))
	}

	return styles.Dialog.Render(sb.String())
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
