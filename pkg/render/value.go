package render

import (
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formview/pkg/schema"
	"github.com/goliatone/go-formview/pkg/submission"
)

// ProtectedValue replaces the content of password and protected fields in
// every rendered output.
const ProtectedValue = "--- PROTECTED ---"

const multiValueSeparator = ", "

// Field is the terminal rendering unit for one schema field.
type Field struct {
	Label string
	Value string
}

// Value renders the field at the dotted path of data against the flattened
// schema. Missing values, paths absent from the schema, and unrecognised
// component types all degrade to raw passthrough; no error conditions exist.
func Value(data map[string]any, path string, flat *schema.Flattened, options Options) Field {
	return renderValue(data, path, flat, options, false)
}

// renderValue carries the singular override used to unwrap multi-valued
// fields: a recursive call with singular set renders one element of a
// `multiple` component without re-entering the multiplicity branch. The
// override travels as a parameter so the shared schema stays immutable and
// safe for concurrent reuse.
func renderValue(data map[string]any, path string, flat *schema.Flattened, options Options, singular bool) Field {
	raw, _ := submission.ValueAt(data, path)
	out := Field{Label: path}

	component, known := flat.Lookup(path)
	if !known {
		out.Value = coerce(raw)
		return out
	}
	out.Label = component.DisplayLabel()

	if component.Multiple && !singular {
		items := elementsOf(raw)
		rendered := make([]string, 0, len(items))
		for _, item := range items {
			scoped := scopeValue(path, item)
			rendered = append(rendered, renderValue(scoped, path, flat, options, true).Value)
		}
		out.Value = strings.Join(rendered, multiValueSeparator)
	} else {
		switch component.Type {
		case schema.TypePassword:
			out.Value = ProtectedValue
		case schema.TypeAddress:
			out.Value = formattedAddress(raw)
		case schema.TypeSignature:
			out.Value = `<img src="` + html.EscapeString(coerce(raw)) + `" />`
		case schema.TypeContainer:
			out.Value = renderContainer(raw, path, component, flat, options)
		case schema.TypeDatagrid:
			out.Value = renderDatagrid(raw, path, component, flat, options)
		case schema.TypeDatetime:
			out.Value = formatDatetime(component, raw, options)
		case schema.TypeRadio, schema.TypeSelect, schema.TypeSelectboxes:
			out.Value = optionLabel(component, raw)
		default:
			out.Value = coerce(raw)
		}
	}

	// Protected overrides whatever the type dispatch produced.
	if component.Protected {
		out.Value = ProtectedValue
	}
	return out
}

// renderContainer treats the value as a nested data scope and renders every
// key present in it as label/value rows of a nested table. Keys the schema
// declares render in declaration order; stale keys without a schema entry
// follow sorted, as raw passthrough rows.
func renderContainer(raw any, path string, component schema.Component, flat *schema.Flattened, options Options) string {
	scope, ok := raw.(map[string]any)
	if !ok || len(scope) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(scope))
	var builder strings.Builder
	builder.WriteString("<table>")

	writeRow := func(key string) {
		field := renderValue(scopeValue(path, scope), path+"."+key, flat, options, false)
		builder.WriteString("<tr><th>")
		builder.WriteString(field.Label)
		builder.WriteString("</th><td>")
		builder.WriteString(field.Value)
		builder.WriteString("</td></tr>")
	}

	for _, child := range component.Components {
		if child.Key == "" {
			continue
		}
		if _, present := scope[child.Key]; !present {
			continue
		}
		seen[child.Key] = struct{}{}
		writeRow(child.Key)
	}

	var stale []string
	for key := range scope {
		if _, handled := seen[key]; !handled {
			stale = append(stale, key)
		}
	}
	sort.Strings(stale)
	for _, key := range stale {
		writeRow(key)
	}

	builder.WriteString("</table>")
	return builder.String()
}

// renderDatagrid renders a list of repeated row scopes as a column-per-field
// table. Columns are determined by the shape of the first row: only keys that
// also exist in the flattened schema become columns, ordered by the datagrid's
// declared components. An empty row list yields an empty header and no rows.
func renderDatagrid(raw any, path string, component schema.Component, flat *schema.Flattened, options Options) string {
	rows := elementsOf(raw)

	var columns []schema.Component
	if len(rows) > 0 {
		first, _ := rows[0].(map[string]any)
		for _, child := range component.Components {
			if child.Key == "" {
				continue
			}
			if _, present := first[child.Key]; !present {
				continue
			}
			if _, known := flat.Lookup(path + "." + child.Key); !known {
				continue
			}
			columns = append(columns, child)
		}
	}

	var builder strings.Builder
	builder.WriteString("<table><tr>")
	for _, column := range columns {
		builder.WriteString("<th>")
		builder.WriteString(column.DisplayLabel())
		builder.WriteString("</th>")
	}
	builder.WriteString("</tr>")

	for _, row := range rows {
		scope, ok := row.(map[string]any)
		if !ok {
			continue
		}
		builder.WriteString("<tr>")
		for _, column := range columns {
			cell := renderValue(scopeValue(path, scope), path+"."+column.Key, flat, options, false)
			builder.WriteString("<td>")
			builder.WriteString(cell.Value)
			builder.WriteString("</td>")
		}
		builder.WriteString("</tr>")
	}

	builder.WriteString("</table>")
	return builder.String()
}

// optionLabel resolves the stored value against the component's option list.
// Unmatched values pass through unchanged; removed options keep rendering
// their stored value rather than going blank.
func optionLabel(component schema.Component, raw any) string {
	value := coerce(raw)
	for _, option := range component.OptionValues() {
		if option.Value == value {
			return option.Label
		}
	}
	return value
}

func formattedAddress(raw any) string {
	address, ok := raw.(map[string]any)
	if !ok {
		return ""
	}
	formatted, _ := address["formatted_address"].(string)
	return formatted
}

// elementsOf normalises a multi-valued raw value to a slice. Scalars become a
// single-element slice so a value stored before the field was marked multiple
// still renders.
func elementsOf(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

// scopeValue nests value under the segments of path so dotted navigation of
// the result resolves path back to value. Used to rescope container children,
// datagrid rows, and individual elements of multi-valued fields.
func scopeValue(path string, value any) map[string]any {
	segments := submission.Segments(path)
	out := make(map[string]any, 1)
	current := out
	for i, segment := range segments {
		if i == len(segments)-1 {
			current[segment] = value
			break
		}
		child := make(map[string]any, 1)
		current[segment] = child
		current = child
	}
	return out
}

// coerce produces the final string form of a raw value: falsy values (nil,
// false, zero, empty string) become empty, strings pass through, numbers and
// true stringify, and composite values that reached final coercion without a
// type-specific branch render empty rather than leaking Go syntax.
func coerce(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	case int64:
		if v == 0 {
			return ""
		}
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
