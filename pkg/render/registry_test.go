package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, Greeting, Options) ([]byte, error) {
	return nil, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "plain"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := registry.Get("plain")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "plain" {
		t.Fatalf("Name = %q, want plain", got.Name())
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected error for missing renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "plain"})
	if err := registry.Register(stubRenderer{name: "plain"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "plain"})
	registry.MustRegister(stubRenderer{name: "html"})

	if diff := cmp.Diff([]string{"html", "plain"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("html") || registry.Has("jsx") {
		t.Fatalf("Has reported wrong membership")
	}
}
