// Package text renders submission documents as plain text lines for
// notification bodies and logs. Embedded markup from composite fields is
// stripped, not escaped.
package text

import (
	"context"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formview/pkg/render"
)

// Name identifies this renderer in the registry.
const Name = "text"

// Renderer emits one "Label: Value" line per row.
type Renderer struct {
	strip *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New() *Renderer {
	return &Renderer{strip: bluemonday.StrictPolicy()}
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return Name }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render implements render.Renderer.
func (r *Renderer) Render(_ context.Context, doc render.Document, _ render.Options) ([]byte, error) {
	var builder strings.Builder

	if doc.Title != "" {
		builder.WriteString(doc.Title)
		builder.WriteString("\n")
		builder.WriteString(strings.Repeat("=", len(doc.Title)))
		builder.WriteString("\n")
	}

	for _, row := range doc.Rows {
		builder.WriteString(row.Label)
		builder.WriteString(": ")
		builder.WriteString(r.plain(row.Value))
		builder.WriteString("\n")
	}
	return []byte(builder.String()), nil
}

// plain strips markup and undoes the entity escaping the sanitiser applies to
// the surviving text content.
func (r *Renderer) plain(value string) string {
	stripped := r.strip.Sanitize(value)
	return strings.TrimSpace(html.UnescapeString(stripped))
}
