package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	formview "github.com/goliatone/go-formview"
	"github.com/goliatone/go-formview/pkg/orchestrator"
	"github.com/goliatone/go-formview/pkg/redact"
	"github.com/goliatone/go-formview/pkg/renderers/export"
	"github.com/goliatone/go-formview/pkg/schema"
	"github.com/goliatone/go-formview/pkg/submission"
)

func main() {
	formPath := flag.String("form", "form.json", "form definition path (JSON or YAML)")
	submissionPath := flag.String("submission", "submission.json", "submission data path (JSON)")
	rendererName := flag.String("renderer", "", "renderer to use (prompts when empty)")
	redactContext := flag.String("redact", "", "apply redaction before rendering: display or index")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	form, err := schema.LoadFile(*formPath)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	raw, err := os.ReadFile(*submissionPath)
	if err != nil {
		log.Fatalf("Failed to read submission: %v", err)
	}
	sub, err := submission.Parse(raw)
	if err != nil {
		log.Fatalf("Failed to parse submission: %v", err)
	}

	exportRenderer, err := export.New()
	if err != nil {
		log.Fatalf("Failed to create export renderer: %v", err)
	}
	engine := formview.New(orchestrator.WithRenderer(exportRenderer))

	name := *rendererName
	if name == "" {
		if name, err = pickRenderer(engine.Renderers()); err != nil {
			log.Fatalf("Failed to select renderer: %v", err)
		}
	}

	if *redactContext != "" {
		rctx, err := parseContext(*redactContext)
		if err != nil {
			log.Fatalf("Invalid redaction context: %v", err)
		}
		engine.Redact(ctx, form, rctx, sub)
	}

	rendered, err := engine.Render(ctx, orchestrator.Request{
		Form:       form,
		Submission: sub,
		Renderer:   name,
	})
	if err != nil {
		log.Fatalf("Failed to render submission: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Rendered submission written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func pickRenderer(names []string) (string, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Renderer:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

func parseContext(raw string) (redact.Context, error) {
	switch redact.Context(raw) {
	case redact.ContextDisplay:
		return redact.ContextDisplay, nil
	case redact.ContextIndex:
		return redact.ContextIndex, nil
	default:
		return "", fmt.Errorf("unknown context %q (want display or index)", raw)
	}
}
