package render

import (
	"strings"
	"time"

	"github.com/goliatone/go-formview/pkg/schema"
)

// timeSuffix is appended to the date pattern when a datetime component
// enables its time portion.
const timeSuffix = " hh:mm a"

// invalidDateValue is emitted when a datetime value cannot be parsed,
// mirroring the degenerate marker downstream templates already expect.
const invalidDateValue = "Invalid date"

// formatDatetime composes the component's display pattern from its
// enableDate/enableTime flags and applies it to the raw value. With neither
// flag enabled the composed pattern is empty and so is the output.
func formatDatetime(component schema.Component, raw any, options Options) string {
	pattern := ""
	if component.EnableDate {
		pattern = component.Format
		if pattern == "" {
			pattern = options.dateFormat()
		}
	}
	if component.EnableTime {
		pattern += timeSuffix
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return ""
	}

	parsed, ok := parseTime(raw)
	if !ok {
		return invalidDateValue
	}
	return parsed.Format(goLayout(pattern))
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// layoutTokens map authoring-system date tokens onto Go reference layout
// fragments. Longest tokens first so scanning is greedy.
var layoutTokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"dd", "02"},
	{"d", "2"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"A", "PM"},
	{"a", "pm"},
}

// goLayout converts an authoring-system date pattern into a Go time layout.
// Unrecognised runes pass through as literals.
func goLayout(pattern string) string {
	var builder strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, candidate := range layoutTokens {
			if strings.HasPrefix(pattern[i:], candidate.token) {
				builder.WriteString(candidate.layout)
				i += len(candidate.token)
				matched = true
				break
			}
		}
		if !matched {
			builder.WriteByte(pattern[i])
			i++
		}
	}
	return builder.String()
}
