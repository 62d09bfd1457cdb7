// Package template defines the engine seam template-driven renderers rely on,
// so the concrete template implementation stays swappable.
package template

import "io"

// TemplateRenderer is the engine contract. Render resolves its argument as a
// template name unless it contains template syntax, in which case it is
// treated as inline source.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
