package plain

import (
	"context"
	"testing"

	"github.com/goliatone/go-greet/pkg/render"
)

func TestRenderPassesMessageThrough(t *testing.T) {
	r := New()
	g := render.Greeting{Message: []byte("Hello Eleanor! How are you?\n")}

	got, err := r.Render(context.Background(), g, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(got) != string(g.Message) {
		t.Fatalf("Render = %q, want %q", got, g.Message)
	}

	// The returned slice must be independent of the model.
	got[0] = 'X'
	if string(g.Message) != "Hello Eleanor! How are you?\n" {
		t.Fatalf("renderer mutated the greeting model")
	}
}

func TestRenderEmptyMessage(t *testing.T) {
	r := New()
	got, err := r.Render(context.Background(), render.Greeting{}, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no output for empty message, got %q", got)
	}
}

func TestIdentity(t *testing.T) {
	r := New()
	if r.Name() != "plain" {
		t.Fatalf("Name = %q", r.Name())
	}
	if r.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("ContentType = %q", r.ContentType())
	}
}
