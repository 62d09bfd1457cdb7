// Package redact derives and applies field-level visibility rules for form
// submissions. Rules are computed once per (schema, context) pair from the
// full component tree, then replayed in order against every submission in a
// batch, mutating each in place. A rule whose path is absent from a given
// submission is a no-op.
package redact

import (
	"github.com/goliatone/go-formview/pkg/schema"
	"github.com/goliatone/go-formview/pkg/submission"
)

// Context selects which context-specific masking rules apply.
type Context string

const (
	// ContextDisplay renders full fidelity except protected fields.
	ContextDisplay Context = "display"
	// ContextIndex additionally masks signature payloads so listings and
	// search indexes record presence without the raw image data.
	ContextIndex Context = "index"
)

// Action identifies the transform a rule performs.
type Action string

const (
	// ActionDelete removes the field from the submission entirely.
	ActionDelete Action = "delete"
	// ActionMaskSignature replaces a signature payload with a presence
	// indicator: empty when the stored value is too short to be a real
	// signature, the marker otherwise.
	ActionMaskSignature Action = "mask-signature"
)

// A signature payload shorter than this is an empty scribble; anything
// longer is recorded as present.
const signaturePayloadMin = 25

// signaturePresentMarker keeps signatures searchable after masking.
const signaturePresentMarker = "YES"

// Rule binds one action to one submission-relative storage path.
type Rule struct {
	Path   string
	Action Action
}

// Compute walks the full component tree, including components nested inside
// layout groupings, containers, and datagrids, and returns the ordered rule
// list for the given context. Protected fields delete in every context;
// signature masking applies only when indexing.
func Compute(components []schema.Component, ctx Context) []Rule {
	var rules []Rule
	schema.Each(components, func(component schema.Component, path string) {
		if component.Key == "" {
			return
		}
		switch {
		case component.Protected:
			rules = append(rules, Rule{
				Path:   submission.StoragePath(path),
				Action: ActionDelete,
			})
		case component.Type == schema.TypeSignature && ctx == ContextIndex:
			rules = append(rules, Rule{
				Path:   submission.StoragePath(path),
				Action: ActionMaskSignature,
			})
		}
	})
	return rules
}

// Apply replays every rule, in computed order, against every submission.
// Mutation is in place; nil submissions are skipped. Rules and submissions
// are independent, so callers may fan out across submissions as long as the
// rule list itself is not mutated.
func Apply(rules []Rule, subs ...*submission.Submission) {
	for _, sub := range subs {
		if sub == nil || sub.Data == nil {
			continue
		}
		// Storage paths are rooted at the envelope's data namespace.
		root := map[string]any{submission.DataRoot: sub.Data}
		for _, rule := range rules {
			apply(rule, root)
		}
	}
}

func apply(rule Rule, root map[string]any) {
	switch rule.Action {
	case ActionDelete:
		submission.Delete(root, rule.Path)
	case ActionMaskSignature:
		raw, ok := submission.ValueAt(root, rule.Path)
		if !ok {
			return
		}
		payload, _ := raw.(string)
		masked := ""
		if len(payload) >= signaturePayloadMin {
			masked = signaturePresentMarker
		}
		submission.Set(root, rule.Path, masked)
	}
}
