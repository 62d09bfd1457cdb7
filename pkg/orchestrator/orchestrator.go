// Package orchestrator wires the schema flattener, value renderer, redaction
// engine, and renderer registry behind a single dependency-injection friendly
// entry point.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formview/pkg/redact"
	"github.com/goliatone/go-formview/pkg/render"
	"github.com/goliatone/go-formview/pkg/renderers/html"
	"github.com/goliatone/go-formview/pkg/renderers/text"
	"github.com/goliatone/go-formview/pkg/schema"
	"github.com/goliatone/go-formview/pkg/submission"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry. The default registry carries the
// built-in html and text renderers.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// WithRenderer registers an additional renderer on the active registry.
func WithRenderer(renderer render.Renderer) Option {
	return func(o *Orchestrator) {
		if renderer != nil {
			o.extra = append(o.extra, renderer)
		}
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		if name != "" {
			o.defaultRenderer = name
		}
	}
}

// WithLogHandler injects the logging capability. The default handler
// discards everything, keeping the library silent unless a caller opts in.
func WithLogHandler(handler slog.Handler) Option {
	return func(o *Orchestrator) {
		if handler != nil {
			o.log = slog.New(handler)
		}
	}
}

// WithThemeSelector passes a go-theme selector through so theme/variant
// choices resolve into tokens renderers can consume.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes = selector
	}
}

// WithDateFormat sets the date pattern applied to datetime components
// without a format of their own.
func WithDateFormat(pattern string) Option {
	return func(o *Orchestrator) {
		if pattern != "" {
			o.dateFormat = pattern
		}
	}
}

// Request describes one render operation.
type Request struct {
	// Form is the component tree to render against.
	Form schema.Form
	// Submission holds the data; read-only for rendering.
	Submission *submission.Submission
	// Renderer names a registered renderer; empty picks the default.
	Renderer string
	// ThemeName/ThemeVariant resolve through the configured theme selector.
	ThemeName    string
	ThemeVariant string
	// Options tune value rendering and renderer behaviour.
	Options render.Options
}

// Orchestrator drives rendering and redaction for one or many submissions.
type Orchestrator struct {
	registry        *render.Registry
	extra           []render.Renderer
	defaultRenderer string
	themes          theme.ThemeSelector
	dateFormat      string
	log             *slog.Logger
}

// New constructs an orchestrator with the built-in html and text renderers
// registered.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: html.Name,
		log:             slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(html.New())
		o.registry.MustRegister(text.New())
	}
	for _, renderer := range o.extra {
		o.registry.MustRegister(renderer)
	}
	return o
}

// Renderers lists the names of every registered renderer.
func (o *Orchestrator) Renderers() []string {
	return o.registry.List()
}

// Document renders the request's submission into the renderer-agnostic
// label/value document without serialising it.
func (o *Orchestrator) Document(req Request) render.Document {
	options := req.Options
	if options.DateFormat == "" {
		options.DateFormat = o.dateFormat
	}
	return render.BuildDocument(req.Submission, req.Form, options)
}

// Render builds the document and serialises it with the requested renderer.
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	name := req.Renderer
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve renderer: %w", err)
	}

	options := req.Options
	if options.DateFormat == "" {
		options.DateFormat = o.dateFormat
	}
	if options.Theme == nil {
		themeConfig, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = themeConfig
	}

	doc := render.BuildDocument(req.Submission, req.Form, options)
	o.log.DebugContext(ctx, "render submission",
		slog.String("renderer", name),
		slog.Int("rows", len(doc.Rows)),
	)

	out, err := renderer.Render(ctx, doc, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render with %q: %w", name, err)
	}
	return out, nil
}

// Redact computes the rule list for the form and context, then applies it in
// place to every submission. The rule list is derived once per call, so batch
// callers pay the tree walk a single time.
func (o *Orchestrator) Redact(ctx context.Context, form schema.Form, rctx redact.Context, subs ...*submission.Submission) {
	rules := redact.Compute(form.Components, rctx)
	o.log.DebugContext(ctx, "redact submissions",
		slog.String("context", string(rctx)),
		slog.Int("rules", len(rules)),
		slog.Int("submissions", len(subs)),
	)
	redact.Apply(rules, subs...)
}

func (o *Orchestrator) resolveTheme(name, variant string) (*render.ThemeConfig, error) {
	if o.themes == nil || name == "" {
		return nil, nil
	}

	selection, err := o.themes.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}

	config := &render.ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	if selection.Manifest != nil && len(selection.Manifest.Tokens) > 0 {
		config.Tokens = selection.Manifest.Tokens
		config.CSSVars = make(map[string]string, len(selection.Manifest.Tokens))
		for token, value := range selection.Manifest.Tokens {
			config.CSSVars["--"+token] = value
		}
	}
	return config, nil
}
