// Package export renders submission documents through a template engine so
// downstream pipelines (notifications, exports, PDF generation) can control
// the final markup. The template receives `title` and `rows` in its context.
package export

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formview/pkg/render"
	"github.com/goliatone/go-formview/pkg/render/template"
	"github.com/goliatone/go-formview/pkg/render/template/pongo"
)

// Name identifies this renderer in the registry.
const Name = "export"

// DefaultTemplate is used when render options name no template.
const DefaultTemplate = `{% if title %}{{ title }}
{% endif %}{% for row in rows %}{{ row.label }}: {{ row.value }}
{% endfor %}`

// Option customises the renderer.
type Option func(*Renderer)

// WithEngine swaps the template engine; the default is an inline-only pongo
// engine.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithContentType overrides the reported content type, letting callers emit
// CSV, markdown, or any other text format from their templates.
func WithContentType(contentType string) Option {
	return func(r *Renderer) {
		if contentType != "" {
			r.contentType = contentType
		}
	}
}

// Renderer executes the configured template against the rendered document.
type Renderer struct {
	engine      template.TemplateRenderer
	contentType string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer. The error surfaces template engine
// construction failures when no engine is injected.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{contentType: "text/plain; charset=utf-8"}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.engine == nil {
		engine, err := pongo.New()
		if err != nil {
			return nil, fmt.Errorf("export: create template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return Name }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return r.contentType }

// Render implements render.Renderer. Options.Template selects the template by
// name or inline source, falling back to DefaultTemplate.
func (r *Renderer) Render(_ context.Context, doc render.Document, options render.Options) ([]byte, error) {
	target := options.Template
	if target == "" {
		target = DefaultTemplate
	}

	rows := make([]map[string]any, 0, len(doc.Rows))
	for _, row := range doc.Rows {
		rows = append(rows, map[string]any{
			"label": row.Label,
			"value": row.Value,
		})
	}

	out, err := r.engine.Render(target, map[string]any{
		"title": doc.Title,
		"rows":  rows,
	})
	if err != nil {
		return nil, fmt.Errorf("export: render document: %w", err)
	}
	return []byte(out), nil
}
