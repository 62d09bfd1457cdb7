package orchestrator_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formview/pkg/orchestrator"
	"github.com/goliatone/go-formview/pkg/redact"
	"github.com/goliatone/go-formview/pkg/render"
	"github.com/goliatone/go-formview/pkg/testsupport"
)

type captureRenderer struct {
	doc     render.Document
	options render.Options
}

func (c *captureRenderer) Name() string        { return "capture" }
func (c *captureRenderer) ContentType() string { return "text/plain" }
func (c *captureRenderer) Render(_ context.Context, doc render.Document, options render.Options) ([]byte, error) {
	c.doc = doc
	c.options = options
	return []byte("captured"), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, nil
}

func TestRenderWithDefaultRegistry(t *testing.T) {
	engine := orchestrator.New()

	out, err := engine.Render(context.Background(), orchestrator.Request{
		Form:       testsupport.ContactForm(),
		Submission: testsupport.ContactSubmission(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := string(out)

	if !strings.Contains(markup, "First Name") || !strings.Contains(markup, "Jane") {
		t.Fatalf("expected rendered rows:\n%s", markup)
	}
	if strings.Contains(markup, "hunter2") || strings.Contains(markup, "sk-live-deadbeef") {
		t.Fatalf("protected content leaked:\n%s", markup)
	}
}

func TestRenderUnknownRenderer(t *testing.T) {
	engine := orchestrator.New()
	_, err := engine.Render(context.Background(), orchestrator.Request{
		Form:     testsupport.ContactForm(),
		Renderer: "nope",
	})
	if err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

func TestRenderResolvesTheme(t *testing.T) {
	selector := &stubThemeSelector{
		selection: &theme.Selection{
			Theme:   "acme",
			Variant: "dark",
			Manifest: &theme.Manifest{
				Name:   "acme",
				Tokens: map[string]string{"brand": "#123456"},
			},
		},
	}
	renderer := &captureRenderer{}

	engine := orchestrator.New(
		orchestrator.WithRenderer(renderer),
		orchestrator.WithDefaultRenderer("capture"),
		orchestrator.WithThemeSelector(selector),
	)

	if _, err := engine.Render(context.Background(), orchestrator.Request{
		Form:         testsupport.ContactForm(),
		Submission:   testsupport.ContactSubmission(),
		ThemeName:    "acme",
		ThemeVariant: "dark",
	}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(selector.calls) != 1 || selector.calls[0].name != "acme" || selector.calls[0].variant != "dark" {
		t.Fatalf("unexpected selector calls: %+v", selector.calls)
	}
	if renderer.options.Theme == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if renderer.options.Theme.CSSVars["--brand"] != "#123456" {
		t.Fatalf("css vars not derived from tokens: %+v", renderer.options.Theme)
	}
}

func TestRenderAppliesDefaultDateFormat(t *testing.T) {
	renderer := &captureRenderer{}
	engine := orchestrator.New(
		orchestrator.WithRenderer(renderer),
		orchestrator.WithDefaultRenderer("capture"),
		orchestrator.WithDateFormat("dd/MM/yyyy"),
		orchestrator.WithLogHandler(slog.NewTextHandler(testWriter{t}, nil)),
	)

	if _, err := engine.Render(context.Background(), orchestrator.Request{
		Form:       testsupport.ContactForm(),
		Submission: testsupport.ContactSubmission(),
	}); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, row := range renderer.doc.Rows {
		if row.Label == "Requested At" {
			// The component declares its own format, so the engine default
			// applies only when the component leaves it empty.
			if row.Value != "2024-03-01" {
				t.Fatalf("requested at: want 2024-03-01, got %q", row.Value)
			}
			return
		}
	}
	t.Fatalf("requested at row missing: %+v", renderer.doc.Rows)
}

func TestRedactEndToEnd(t *testing.T) {
	engine := orchestrator.New()
	form := testsupport.ContactForm()
	sub := testsupport.ContactSubmission()

	engine.Redact(context.Background(), form, redact.ContextIndex, sub)

	if _, ok := sub.Data["apiKey"]; ok {
		t.Fatalf("protected field survived: %v", sub.Data)
	}
	if got := sub.Data["consent"]; got != "YES" {
		t.Fatalf("signature mask: want YES, got %v", got)
	}
	if sub.Data["firstName"] != "Jane" {
		t.Fatalf("unprotected field mutated: %v", sub.Data)
	}
}

func TestRenderersListsRegistered(t *testing.T) {
	engine := orchestrator.New()
	names := engine.Renderers()

	want := map[string]bool{"html": false, "text": false}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("renderer %q missing from %v", name, names)
		}
	}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}
