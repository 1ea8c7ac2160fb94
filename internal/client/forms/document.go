package forms

import (
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/api"
)

// Field describes one input of the document form.
type Field struct {
	Name     string
	Label    string
	Required bool
	Date     bool
}

// DocumentForm lists the document inputs in display order.
var DocumentForm = []Field{
	{Name: api.FieldDocumentName, Label: "Document name", Required: true},
	{Name: api.FieldDocumentStatus, Label: "Document status", Required: true},
	{Name: api.FieldDocumentType, Label: "Document type", Required: true},
	{Name: api.FieldEmployeeNumber, Label: "Employee number"},
	{Name: api.FieldEmployeeSigDate, Label: "Employee signature date", Required: true, Date: true},
	{Name: api.FieldEmployeeSignatureName, Label: "Employee signature name"},
	{Name: api.FieldCompanySigDate, Label: "Company signature date", Required: true, Date: true},
	{Name: api.FieldCompanySignatureName, Label: "Company signature name"},
}

// LookupField returns the form field for a JSON name.
func LookupField(name string) (Field, bool) {
	for _, f := range DocumentForm {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ValidateDocument returns the first violation in form order, or nil.
func ValidateDocument(fields api.DocumentFields) error {
	for _, f := range DocumentForm {
		v := strings.TrimSpace(fields.Value(f.Name))
		if f.Required && v == "" {
			return &ValidationError{Field: f.Name, Message: f.Label + " is required"}
		}
		if f.Date && v != "" {
			if _, err := NormalizeDate(v); err != nil {
				return &ValidationError{Field: f.Name, Message: f.Label + " must be a date like 2024-12-31"}
			}
		}
	}
	return nil
}

// Prepare validates fields and converts the dates to timestamps, producing
// the body of a create or update call.
func Prepare(fields api.DocumentFields) (api.DocumentFields, error) {
	if err := ValidateDocument(fields); err != nil {
		return api.DocumentFields{}, err
	}

	for _, f := range DocumentForm {
		if !f.Date {
			continue
		}
		ts, err := NormalizeDate(fields.Value(f.Name))
		if err != nil {
			return api.DocumentFields{}, err
		}
		fields.Set(f.Name, ts)
	}
	return fields, nil
}

// ForEdit returns fields with the dates shortened for the edit form.
func ForEdit(fields api.DocumentFields) api.DocumentFields {
	for _, f := range DocumentForm {
		if f.Date {
			fields.Set(f.Name, DateInput(fields.Value(f.Name)))
		}
	}
	return fields
}
