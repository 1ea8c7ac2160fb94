package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/client/forms"
	"github.com/dmitrijs2005/gophdocs/internal/client/listview"
)

// columnTitles are the short table headers, keyed by attribute name.
var columnTitles = map[string]string{
	api.FieldDocumentName:          "Name",
	api.FieldDocumentStatus:        "Status",
	api.FieldDocumentType:          "Type",
	api.FieldEmployeeNumber:        "Empl. #",
	api.FieldEmployeeSigDate:       "Empl. signed",
	api.FieldEmployeeSignatureName: "Empl. signer",
	api.FieldCompanySigDate:        "Co. signed",
	api.FieldCompanySignatureName:  "Co. signer",
}

// Headers returns the column headers. The active sort column carries an
// arrow for its direction.
func Headers(view listview.State) []string {
	out := make([]string, 0, len(api.FieldNames)+1)
	out = append(out, "#")
	for _, name := range api.FieldNames {
		h := columnTitles[name]
		if listview.SortKey(name) == view.SortKey {
			if view.Direction == listview.Desc {
				h += " ▼"
			} else {
				h += " ▲"
			}
		}
		out = append(out, h)
	}
	return out
}

// Row renders d as table cells. Dates are shown as YYYY-MM-DD. n is the
// 1-based position in the whole sorted list.
func Row(n int, d api.Document) []string {
	out := make([]string, 0, len(api.FieldNames)+1)
	out = append(out, strconv.Itoa(n))
	for _, f := range forms.DocumentForm {
		v := d.Value(f.Name)
		if f.Date {
			v = forms.DateInput(v)
		}
		out = append(out, v)
	}
	return out
}

// SimpleTable renders static rows with aligned columns.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{Title: title, Headers: headers, Rows: make([][]string, 0)}
}

func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table. An empty table renders the title and the headers
// only.
func (t *SimpleTable) View(styles Styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// room for the horizontal padding
	for i := range widths {
		widths[i] += 2
	}

	header := styles.Bold.Padding(0, 1)
	cell := styles.Body.Padding(0, 1)
	sep := styles.Muted.Render("|")

	for i, h := range t.Headers {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(header.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", max(total, 0))))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i := range widths {
			if i > 0 {
				sb.WriteString(sep)
			}
			v := ""
			if i < len(row) {
				v = row[i]
			}
			sb.WriteString(cell.Width(widths[i]).Render(v))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderDocuments renders one page of documents for the REPL.
func RenderDocuments(styles Styles, title string, view listview.State, page []api.Document) string {
	t := NewSimpleTable(title, Headers(view))
	first := view.Page*view.PageSize + 1
	for i, d := range page {
		t.AddRow(Row(first+i, d)...)
	}
	return t.View(styles)
}
