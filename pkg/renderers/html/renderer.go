// Package html renders submission documents as a sanitised HTML table
// suitable for embedding into notification emails, exports, and PDFs.
package html

import (
	"context"
	gohtml "html"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formview/pkg/render"
)

// Name identifies this renderer in the registry.
const Name = "html"

// Option customises the renderer.
type Option func(*Renderer)

// WithPolicy overrides the sanitation policy applied to row values.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// Renderer emits an HTML table per document. Row labels are escaped; row
// values may carry nested table or image markup produced by the value
// renderer, so they pass through a bluemonday policy instead.
type Renderer struct {
	policy *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer with the default sanitation policy.
func New(options ...Option) *Renderer {
	r := &Renderer{policy: defaultPolicy()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return Name }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render implements render.Renderer.
func (r *Renderer) Render(_ context.Context, doc render.Document, options render.Options) ([]byte, error) {
	var builder strings.Builder
	builder.Grow(len(doc.Rows) * 64)

	builder.WriteString(`<div class="formview"`)
	if style := themeStyle(options.Theme); style != "" {
		builder.WriteString(` style="`)
		builder.WriteString(gohtml.EscapeString(style))
		builder.WriteString(`"`)
	}
	builder.WriteString(">\n")

	if doc.Title != "" {
		builder.WriteString(`  <h2 class="formview-title">`)
		builder.WriteString(gohtml.EscapeString(doc.Title))
		builder.WriteString("</h2>\n")
	}

	builder.WriteString("  <table class=\"formview-table\">\n")
	for _, row := range doc.Rows {
		builder.WriteString("    <tr><th>")
		builder.WriteString(gohtml.EscapeString(row.Label))
		builder.WriteString("</th><td>")
		builder.WriteString(r.policy.Sanitize(row.Value))
		builder.WriteString("</td></tr>\n")
	}
	builder.WriteString("  </table>\n</div>\n")

	return []byte(builder.String()), nil
}

// themeStyle flattens theme tokens into CSS custom properties, sorted for
// deterministic output. Explicit CSSVars win over derived token names.
func themeStyle(theme *render.ThemeConfig) string {
	if theme == nil {
		return ""
	}

	vars := make(map[string]string, len(theme.Tokens)+len(theme.CSSVars))
	for token, value := range theme.Tokens {
		vars["--"+token] = value
	}
	for name, value := range theme.CSSVars {
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		vars[name] = value
	}
	if len(vars) == 0 {
		return ""
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+vars[name])
	}
	return strings.Join(parts, "; ")
}

// defaultPolicy allows exactly the markup the value renderer produces: nested
// tables for containers and datagrids, and data-URI images for signatures.
func defaultPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("table", "thead", "tbody", "tr", "th", "td")
	policy.AllowStandardURLs()
	policy.AllowImages()
	policy.AllowDataURIImages()
	return policy
}
