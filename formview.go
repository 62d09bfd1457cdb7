// Package formview renders structured form submissions into human-readable
// documents and enforces field-level visibility policy consistently across
// display/export and search/index contexts. The root package is a thin facade
// over pkg/orchestrator for callers that want a single entry point.
package formview

import (
	"context"

	"github.com/goliatone/go-formview/pkg/orchestrator"
	"github.com/goliatone/go-formview/pkg/redact"
	"github.com/goliatone/go-formview/pkg/render"
	"github.com/goliatone/go-formview/pkg/renderers/html"
	"github.com/goliatone/go-formview/pkg/renderers/text"
	"github.com/goliatone/go-formview/pkg/schema"
	"github.com/goliatone/go-formview/pkg/submission"
)

// Re-exported types so simple integrations only import the root package.
type (
	// Form is the authored component tree.
	Form = schema.Form
	// Component is one schema node.
	Component = schema.Component
	// Submission is one stored submission envelope.
	Submission = submission.Submission
	// Document is the renderer-agnostic label/value output.
	Document = render.Document
	// Options tune value rendering and renderer behaviour.
	Options = render.Options
	// Request describes one render operation.
	Request = orchestrator.Request
)

// Redaction contexts.
const (
	ContextDisplay = redact.ContextDisplay
	ContextIndex   = redact.ContextIndex
)

// New constructs an orchestrator; see pkg/orchestrator for options.
func New(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderHTML renders one submission as a sanitised HTML table.
func RenderHTML(ctx context.Context, form Form, sub *Submission, options ...orchestrator.Option) ([]byte, error) {
	return New(options...).Render(ctx, Request{
		Form:       form,
		Submission: sub,
		Renderer:   html.Name,
	})
}

// RenderText renders one submission as plain text lines.
func RenderText(ctx context.Context, form Form, sub *Submission, options ...orchestrator.Option) ([]byte, error) {
	return New(options...).Render(ctx, Request{
		Form:       form,
		Submission: sub,
		Renderer:   text.Name,
	})
}

// Redact applies the form's visibility rules for the given context to every
// submission, mutating them in place.
func Redact(form Form, rctx redact.Context, subs ...*Submission) {
	rules := redact.Compute(form.Components, rctx)
	redact.Apply(rules, subs...)
}
