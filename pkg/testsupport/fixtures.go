// Package testsupport provides shared schema and submission fixtures for
// contract tests across the module.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-formview/pkg/schema"
	"github.com/goliatone/go-formview/pkg/submission"
)

// ContactForm returns a representative component tree exercising every
// special component kind: options, datetime, composite nesting, repeating
// rows, and protected fields.
func ContactForm() schema.Form {
	return schema.Form{
		Name:  "contact",
		Title: "Contact Request",
		Components: []schema.Component{
			{Key: "firstName", Type: "textfield", Label: "First Name"},
			{Key: "lastName", Type: "textfield", Label: "Last Name"},
			{Key: "secret", Type: "password", Label: "Secret"},
			{Key: "apiKey", Type: "textfield", Label: "API Key", Protected: true},
			{
				Key: "color", Type: "select", Label: "Favorite Color",
				Values: []schema.Option{
					{Value: "r", Label: "Red"},
					{Value: "b", Label: "Blue"},
				},
			},
			{
				Key: "requestedAt", Type: "datetime", Label: "Requested At",
				EnableDate: true, Format: "yyyy-MM-dd",
			},
			{
				Key: "address", Type: "container", Label: "Address",
				Components: []schema.Component{
					{Key: "street", Type: "textfield", Label: "Street"},
					{Key: "city", Type: "textfield", Label: "City"},
				},
			},
			{
				Key: "contacts", Type: "datagrid", Label: "Contacts",
				Components: []schema.Component{
					{Key: "name", Type: "textfield", Label: "Name"},
					{Key: "phone", Type: "textfield", Label: "Phone"},
				},
			},
			{Key: "consent", Type: "signature", Label: "Consent"},
			{Key: "submit", Type: "button", Label: "Submit"},
		},
	}
}

// ContactSubmission returns data matching ContactForm.
func ContactSubmission() *submission.Submission {
	return &submission.Submission{
		ID:     "sub-1",
		FormID: "contact",
		Data: map[string]any{
			"firstName":   "Jane",
			"lastName":    "Doe",
			"secret":      "hunter2",
			"apiKey":      "sk-live-deadbeef",
			"color":       "r",
			"requestedAt": "2024-03-01T09:30:00Z",
			"address": map[string]any{
				"street": "1 Main St",
				"city":   "Springfield",
			},
			"contacts": []any{
				map[string]any{"name": "Ann", "phone": "555-0101"},
				map[string]any{"name": "Bob", "phone": "555-0102"},
			},
			"consent": "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg",
		},
	}
}

// LoadForm reads a form fixture from disk, failing the test on error.
func LoadForm(t *testing.T, path string) schema.Form {
	t.Helper()

	form, err := schema.LoadFile(path)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return form
}
