package render

import "context"

// Renderer converts a rendered submission Document into a byte representation
// (HTML table, plain text, templated export, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, options Options) ([]byte, error)
}
