// Package submission models stored form submissions: a nested data tree under
// the platform's `data` root namespace, plus the dotted-path navigation the
// renderer and redaction engine share. Submissions are externally owned; the
// render path reads them, the redaction path mutates them in place.
package submission

import (
	"encoding/json"
	"fmt"
)

// Submission is one stored form submission. Data mirrors the schema's field
// paths but may be missing schema keys (never filled in) or carry keys the
// schema no longer declares (stale data); both degrade gracefully downstream.
type Submission struct {
	ID        string         `json:"_id,omitempty" yaml:"_id,omitempty"`
	FormID    string         `json:"formId,omitempty" yaml:"formId,omitempty"`
	Data      map[string]any `json:"data" yaml:"data"`
	CreatedBy string         `json:"createdBy,omitempty" yaml:"createdBy,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt string         `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Parse decodes a submission from JSON.
func Parse(data []byte) (*Submission, error) {
	var sub Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("submission: parse: %w", err)
	}
	return &sub, nil
}

// ValueAt navigates a dotted path through nested maps. The second return is
// false when any segment is absent or a non-map value is hit mid-path.
func ValueAt(data map[string]any, path string) (any, bool) {
	segments := Segments(path)
	if len(segments) == 0 {
		return nil, false
	}

	current := data
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		next, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// Set writes value at the dotted path, creating intermediate maps as needed.
// It reports false without writing when an existing non-map value blocks the
// path.
func Set(data map[string]any, path string, value any) bool {
	segments := Segments(path)
	if len(segments) == 0 || data == nil {
		return false
	}

	current := data
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment]
		if !ok {
			child := make(map[string]any)
			current[segment] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return false
		}
		current = child
	}
	current[segments[len(segments)-1]] = value
	return true
}

// Delete removes the value at the dotted path. Missing paths are a no-op.
func Delete(data map[string]any, path string) {
	segments := Segments(path)
	if len(segments) == 0 {
		return
	}

	current := data
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			return
		}
		current = next
	}
	delete(current, segments[len(segments)-1])
}
