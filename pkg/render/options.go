package render

// DefaultDateFormat is the date pattern applied to datetime components that do
// not configure their own. Patterns use the authoring system's token syntax
// (yyyy, MM, dd, hh, mm, a) and are converted to Go layouts internally.
const DefaultDateFormat = "yyyy-MM-dd"

// ThemeConfig carries resolved theme data into renderers. Tokens become CSS
// custom properties in HTML output; other renderers may ignore it.
type ThemeConfig struct {
	Theme   string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string
}

// Options describe per-request rendering configuration shared by the value
// renderer and the document renderers. The zero value is usable.
type Options struct {
	// DateFormat overrides DefaultDateFormat for datetime components without
	// an explicit format of their own.
	DateFormat string
	// Theme carries resolved theme tokens for renderers that support theming.
	Theme *ThemeConfig
	// Template names a template (or holds inline template source) for
	// template-driven renderers; ignored by the built-in html/text renderers.
	Template string
}

func (o Options) dateFormat() string {
	if o.DateFormat != "" {
		return o.DateFormat
	}
	return DefaultDateFormat
}
