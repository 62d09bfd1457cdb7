package render_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formview/pkg/render"
	"github.com/goliatone/go-formview/pkg/schema"
	"github.com/goliatone/go-formview/pkg/submission"
)

func TestBuildDocumentBasicRow(t *testing.T) {
	form := schema.Form{
		Title: "Contact",
		Components: []schema.Component{
			{Key: "firstName", Type: "textfield", Label: "First Name"},
		},
	}
	sub := &submission.Submission{Data: map[string]any{"firstName": "Jane"}}

	doc := render.BuildDocument(sub, form, render.Options{})

	want := render.Document{
		Title: "Contact",
		Rows:  []render.Row{{Label: "First Name", Value: "Jane"}},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDocumentSkipsControls(t *testing.T) {
	form := schema.Form{
		Components: []schema.Component{
			{Key: "firstName", Type: "textfield", Label: "First Name"},
			{Key: "submit", Type: "button", Label: "Submit"},
			{Key: "csrf", Type: "hidden"},
		},
	}
	sub := &submission.Submission{Data: map[string]any{"firstName": "Jane"}}

	doc := render.BuildDocument(sub, form, render.Options{})
	if len(doc.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %v", len(doc.Rows), doc.Rows)
	}
	if doc.Rows[0].Label != "First Name" {
		t.Fatalf("unexpected row: %+v", doc.Rows[0])
	}
}

func TestBuildDocumentNestedFieldsStayInsideParentRow(t *testing.T) {
	form := schema.Form{
		Components: []schema.Component{
			{
				Key: "address", Type: "container", Label: "Address",
				Components: []schema.Component{
					{Key: "city", Type: "textfield", Label: "City"},
				},
			},
		},
	}
	sub := &submission.Submission{Data: map[string]any{
		"address": map[string]any{"city": "Springfield"},
	}}

	doc := render.BuildDocument(sub, form, render.Options{})
	if len(doc.Rows) != 1 {
		t.Fatalf("expected a single top-level row, got %d: %v", len(doc.Rows), doc.Rows)
	}
	if !strings.Contains(doc.Rows[0].Value, "Springfield") {
		t.Fatalf("nested content missing from parent row: %q", doc.Rows[0].Value)
	}
}

func TestBuildDocumentLayoutChildrenRender(t *testing.T) {
	form := schema.Form{
		Components: []schema.Component{
			{
				Key: "info", Type: "panel", Label: "Info",
				Components: []schema.Component{
					{Key: "bio", Type: "textarea", Label: "Bio"},
				},
			},
		},
	}
	sub := &submission.Submission{Data: map[string]any{"bio": "hello"}}

	doc := render.BuildDocument(sub, form, render.Options{})
	want := []render.Row{{Label: "Bio", Value: "hello"}}
	if diff := cmp.Diff(want, doc.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDocumentNilSubmission(t *testing.T) {
	form := schema.Form{
		Components: []schema.Component{
			{Key: "firstName", Type: "textfield", Label: "First Name"},
		},
	}

	doc := render.BuildDocument(nil, form, render.Options{})
	want := []render.Row{{Label: "First Name", Value: ""}}
	if diff := cmp.Diff(want, doc.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDocumentTitleFallsBackToName(t *testing.T) {
	form := schema.Form{Name: "contact"}
	doc := render.BuildDocument(nil, form, render.Options{})
	if doc.Title != "contact" {
		t.Fatalf("title: want contact, got %q", doc.Title)
	}
}
