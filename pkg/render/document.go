package render

import (
	"strings"

	"github.com/goliatone/go-formview/pkg/schema"
	"github.com/goliatone/go-formview/pkg/submission"
)

// Row is one ordered label/value entry of a rendered document. Values of
// composite fields (containers, datagrids) embed their nested structure as
// table markup; renderers decide how to present or strip it.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Document is the renderer-agnostic output of rendering one submission
// against one form: an ordered list of label/value rows.
type Document struct {
	Title string `json:"title,omitempty"`
	Rows  []Row  `json:"rows"`
}

// BuildDocument renders every top-level field of the form against the
// submission's data. Layout groupings are excluded by flattening, control
// components (buttons, hidden inputs) are skipped, and nested container or
// datagrid content renders inside its parent's row rather than as additional
// top-level rows. The submission is read-only here.
func BuildDocument(sub *submission.Submission, form schema.Form, options Options) Document {
	doc := Document{Title: formTitle(form)}

	var data map[string]any
	if sub != nil {
		data = sub.Data
	}

	flat := schema.Flatten(form.Components, false)
	for _, path := range flat.Paths() {
		if strings.Contains(path, ".") {
			continue
		}
		component, _ := flat.Lookup(path)
		if component.IsControl() {
			continue
		}
		field := renderValue(data, path, flat, options, false)
		doc.Rows = append(doc.Rows, Row{Label: field.Label, Value: field.Value})
	}
	return doc
}

func formTitle(form schema.Form) string {
	if strings.TrimSpace(form.Title) != "" {
		return form.Title
	}
	return form.Name
}
