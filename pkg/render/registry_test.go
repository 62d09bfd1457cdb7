package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formview/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, render.Document, render.Options) ([]byte, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "b"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "a"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := registry.Register(stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
	renderer, err := registry.Get("a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "a" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}

	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}
