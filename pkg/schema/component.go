package schema

import "strings"

// Component types with renderer- or redaction-specific behaviour. The type tag
// is open ended; anything not listed here renders as a raw passthrough.
const (
	TypePassword    = "password"
	TypeAddress     = "address"
	TypeSignature   = "signature"
	TypeContainer   = "container"
	TypeDatagrid    = "datagrid"
	TypeDatetime    = "datetime"
	TypeRadio       = "radio"
	TypeSelect      = "select"
	TypeSelectboxes = "selectboxes"
	TypeButton      = "button"
	TypeHidden      = "hidden"
)

// Option is one selectable entry of a radio/select/selectboxes component.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// DataSource carries option lists for components that nest them under a
// `data` object instead of a top-level `values` array.
type DataSource struct {
	Values []Option `json:"values,omitempty" yaml:"values,omitempty"`
}

// Component is a single schema node: either a data-bearing field, a structural
// grouping, or a composite (container/datagrid) that nests further components.
// Schemas are authored externally and assumed well-formed and acyclic; this
// package performs no validation.
type Component struct {
	Key         string `json:"key" yaml:"key"`
	Type        string `json:"type" yaml:"type"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Multiple    bool   `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Protected   bool   `json:"protected,omitempty" yaml:"protected,omitempty"`

	// Option lists: `values` on the component itself, or nested under `data`.
	Values []Option    `json:"values,omitempty" yaml:"values,omitempty"`
	Data   *DataSource `json:"data,omitempty" yaml:"data,omitempty"`

	// Datetime configuration.
	Format     string `json:"format,omitempty" yaml:"format,omitempty"`
	EnableDate bool   `json:"enableDate,omitempty" yaml:"enableDate,omitempty"`
	EnableTime bool   `json:"enableTime,omitempty" yaml:"enableTime,omitempty"`

	// Nested components for containers, datagrid rows, and layout groupings.
	Components []Component `json:"components,omitempty" yaml:"components,omitempty"`
}

// Form is the authored schema envelope: a named component tree.
type Form struct {
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Title      string      `json:"title,omitempty" yaml:"title,omitempty"`
	Path       string      `json:"path,omitempty" yaml:"path,omitempty"`
	Components []Component `json:"components" yaml:"components"`
}

// DisplayLabel resolves the human-facing label for the component: label,
// falling back to placeholder, falling back to the key.
func (c Component) DisplayLabel() string {
	if strings.TrimSpace(c.Label) != "" {
		return c.Label
	}
	if strings.TrimSpace(c.Placeholder) != "" {
		return c.Placeholder
	}
	return c.Key
}

// OptionValues returns the component's option list, preferring `values` and
// falling back to `data.values`.
func (c Component) OptionValues() []Option {
	if len(c.Values) > 0 {
		return c.Values
	}
	if c.Data != nil {
		return c.Data.Values
	}
	return nil
}

// layoutTypes are purely structural groupings that carry no submission data of
// their own. Containers and datagrids are NOT layout: their keys namespace
// nested values.
var layoutTypes = map[string]struct{}{
	"panel":       {},
	"columns":     {},
	"column":      {},
	"fieldset":    {},
	"well":        {},
	"table":       {},
	"tabs":        {},
	"tab":         {},
	"content":     {},
	"htmlelement": {},
}

// IsLayout reports whether the component is a pure visual grouping.
func (c Component) IsLayout() bool {
	_, ok := layoutTypes[c.Type]
	return ok
}

// IsControl reports whether the component is a non-data control (submit
// buttons, hidden inputs) that should not appear as a document row.
func (c Component) IsControl() bool {
	return c.Type == TypeButton || c.Type == TypeHidden
}
