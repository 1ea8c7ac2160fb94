package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/client/forms"
	"github.com/dmitrijs2005/gophdocs/internal/client/listview"
	"github.com/dmitrijs2005/gophdocs/internal/client/services"
	"github.com/dmitrijs2005/gophdocs/internal/client/tui"
	"github.com/dmitrijs2005/gophdocs/internal/common"
)

// List prints the current page. The documents are fetched on first use
// only; Reload fetches them again.
func (a *App) List(ctx context.Context) error {
	if !a.loaded {
		return a.Reload(ctx)
	}
	a.printList()
	return nil
}

// Reload fetches the documents and prints the current page. A failed fetch
// keeps the previous list and prints the error above it.
func (a *App) Reload(ctx context.Context) error {
	err := a.docService.Fetch(ctx)
	if errors.Is(err, common.ErrNotLoggedIn) {
		return err
	}
	if err == nil {
		a.loaded = true
	}
	a.printList()
	return nil
}

func (a *App) printList() {
	st := a.store.State().Documents

	if st.Error != "" {
		a.println(a.styles.Error.Render("Error: " + st.Error))
		a.println("Type 'reload' to retry.")
	}

	items := st.Items
	a.view = a.view.Clamp(len(items))
	if len(items) == 0 {
		a.println("No documents.")
		return
	}

	a.printf("%s", tui.RenderDocuments(a.styles, "Documents", a.view, a.view.Window(items)))
	a.printf("page %d/%d · %d documents · %s\n",
		a.view.Page+1, listview.PageCount(len(items), a.view.PageSize), len(items), sortDescription(a.view))
}

func sortDescription(v listview.State) string {
	if v.SortKey == "" {
		return "server order"
	}
	return fmt.Sprintf("sorted by %s %s", v.SortKey, v.Direction)
}

// resolve finds the document named by args[0]: either its position in the
// sorted list (the # column) or its id.
func (a *App) resolve(cmd string, args []string) (api.Document, error) {
	if len(args) == 0 {
		return api.Document{}, fmt.Errorf("usage: %s <#|id>", cmd)
	}

	items := listview.Sort(a.store.State().Documents.Items, a.view.SortKey, a.view.Direction)

	// An exact id wins over a list position.
	for _, d := range items {
		if d.ID == args[0] {
			return d, nil
		}
	}
	if n, err := strconv.Atoi(args[0]); err == nil && n >= 1 && n <= len(items) {
		return items[n-1], nil
	}
	return api.Document{}, fmt.Errorf("document %q not found", args[0])
}

func (a *App) Show(_ context.Context, args []string) error {
	d, err := a.resolve("show", args)
	if err != nil {
		return err
	}

	a.printf("%-26s%s\n", "ID", d.ID)
	for _, f := range forms.DocumentForm {
		a.printf("%-26s%s\n", f.Label, d.Value(f.Name))
	}
	return nil
}

func (a *App) Create(ctx context.Context) error {
	fields, err := a.promptFields(api.DocumentFields{}, false)
	if err != nil {
		return err
	}

	doc, err := a.docService.Create(ctx, fields)
	if err != nil && !isRefreshError(err) {
		return err
	}

	a.printf("Document created: %s\n", doc.ID)
	a.printList()
	return err
}

func (a *App) Edit(ctx context.Context, args []string) error {
	d, err := a.resolve("edit", args)
	if err != nil {
		return err
	}

	fields, err := a.promptFields(forms.ForEdit(d.Fields()), true)
	if err != nil {
		return err
	}

	_, err = a.docService.Update(ctx, d.ID, fields)
	if err != nil && !isRefreshError(err) {
		return err
	}

	a.println("Document updated")
	a.printList()
	return err
}

func (a *App) Delete(ctx context.Context, args []string) error {
	d, err := a.resolve("delete", args)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete document %q?", d.DocumentName), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled")
		return nil
	}

	err = a.docService.Delete(ctx, d.ID)
	if err != nil && !isRefreshError(err) {
		return err
	}

	a.println("Document deleted")
	a.printList()
	return err
}

// promptFields asks for every form field. When editing, an empty answer
// keeps the current value shown in brackets.
// clearAnswer erases a field while editing; an empty answer keeps it.
const clearAnswer = "-"

func (a *App) promptFields(current api.DocumentFields, editing bool) (api.DocumentFields, error) {
	if editing {
		a.println("Press Enter to keep a value, " + clearAnswer + " to clear it.")
	}

	out := current
	for _, f := range forms.DocumentForm {
		prompt := f.Label
		if f.Date {
			prompt += " (YYYY-MM-DD)"
		}
		if f.Required {
			prompt += " *"
		}
		if editing {
			prompt += fmt.Sprintf(" [%s]", current.Value(f.Name))
		}

		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return api.DocumentFields{}, err
		}
		if editing {
			switch v {
			case "":
				continue
			case clearAnswer:
				v = ""
			}
		}
		out.Set(f.Name, v)
	}
	return out, nil
}

func isRefreshError(err error) bool {
	var re *services.RefreshError
	return errors.As(err, &re)
}
