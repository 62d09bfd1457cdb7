package submission_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formview/pkg/submission"
)

func nested() map[string]any {
	return map[string]any{
		"name": "Jane",
		"address": map[string]any{
			"city": "Springfield",
		},
		"age": float64(30),
	}
}

func TestValueAt(t *testing.T) {
	data := nested()

	if got, ok := submission.ValueAt(data, "name"); !ok || got != "Jane" {
		t.Fatalf("name: want Jane, got %v (ok=%v)", got, ok)
	}
	if got, ok := submission.ValueAt(data, "address.city"); !ok || got != "Springfield" {
		t.Fatalf("address.city: want Springfield, got %v (ok=%v)", got, ok)
	}
	if _, ok := submission.ValueAt(data, "missing"); ok {
		t.Fatalf("expected missing key to report absent")
	}
	if _, ok := submission.ValueAt(data, "name.deeper"); ok {
		t.Fatalf("expected scalar mid-path to report absent")
	}
	if _, ok := submission.ValueAt(data, ""); ok {
		t.Fatalf("expected empty path to report absent")
	}
}

func TestSetCreatesIntermediateMaps(t *testing.T) {
	data := map[string]any{}

	if !submission.Set(data, "a.b.c", "deep") {
		t.Fatalf("expected set to succeed")
	}

	want := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": "deep",
			},
		},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestSetBlockedByScalar(t *testing.T) {
	data := map[string]any{"a": "scalar"}

	if submission.Set(data, "a.b", "x") {
		t.Fatalf("expected set to fail against scalar segment")
	}
	if data["a"] != "scalar" {
		t.Fatalf("data mutated despite blocked path: %v", data)
	}
}

func TestDelete(t *testing.T) {
	data := nested()

	submission.Delete(data, "address.city")
	if _, ok := submission.ValueAt(data, "address.city"); ok {
		t.Fatalf("expected nested key deleted")
	}

	// Missing paths are a no-op, not an error.
	submission.Delete(data, "nope.nothing")
	submission.Delete(data, "name.deeper")

	submission.Delete(data, "name")
	if _, ok := data["name"]; ok {
		t.Fatalf("expected top-level key deleted")
	}
}

func TestParse(t *testing.T) {
	sub, err := submission.Parse([]byte(`{"_id":"s1","formId":"contact","data":{"firstName":"Jane"}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub.ID != "s1" || sub.FormID != "contact" {
		t.Fatalf("unexpected envelope: %+v", sub)
	}
	if got := sub.Data["firstName"]; got != "Jane" {
		t.Fatalf("data: want Jane, got %v", got)
	}

	if _, err := submission.Parse([]byte("not json")); err == nil {
		t.Fatalf("expected parse error")
	}
}
