package tool

import (
	"context"
	"testing"

	"github.com/calcagent/calcagent/providers/ai"
)

type namedTool struct {
	name string
}

func (n *namedTool) ToolInfo() ai.ToolDescription {
	return ai.ToolDescription{Name: n.name}
}

func (n *namedTool) Call(context.Context, string) (string, error) {
	return "{}", nil
}

func TestCatalog_AddAndGet(t *testing.T) {
	catalog := NewCatalogWithTools(&namedTool{name: "add"}, &namedTool{name: "subtract"})

	if catalog.Size() != 2 {
		t.Fatalf("expected 2 tools, got %d", catalog.Size())
	}
	if _, ok := catalog.Get("add"); !ok {
		t.Error("expected to find add")
	}
	if !catalog.Has("subtract") {
		t.Error("expected to find subtract")
	}
	if catalog.Has("multiply") {
		t.Error("did not expect multiply")
	}
}

func TestCatalog_CaseInsensitiveLookup(t *testing.T) {
	catalog := NewCatalogWithTools(&namedTool{name: "Add"})

	for _, name := range []string{"add", "ADD", "Add"} {
		if !catalog.Has(name) {
			t.Errorf("expected lookup %q to succeed", name)
		}
	}
}

func TestCatalog_DescriptionsKeepRegistrationOrder(t *testing.T) {
	catalog := NewCatalog()
	catalog.AddTools(
		&namedTool{name: "add"},
		&namedTool{name: "subtract"},
		&namedTool{name: "multiply"},
		&namedTool{name: "divide"},
	)

	expected := []string{"add", "subtract", "multiply", "divide"}
	descriptions := catalog.Descriptions()
	if len(descriptions) != len(expected) {
		t.Fatalf("expected %d descriptions, got %d", len(expected), len(descriptions))
	}
	for i, want := range expected {
		if descriptions[i].Name != want {
			t.Errorf("description %d: expected %q, got %q", i, want, descriptions[i].Name)
		}
	}
}

func TestCatalog_ReplacementKeepsPosition(t *testing.T) {
	catalog := NewCatalog()
	first := &namedTool{name: "add"}
	catalog.AddTools(first, &namedTool{name: "subtract"})

	replacement := &namedTool{name: "ADD"}
	catalog.AddTools(replacement)

	if catalog.Size() != 2 {
		t.Fatalf("expected replacement, not growth; size is %d", catalog.Size())
	}

	got, ok := catalog.Get("add")
	if !ok {
		t.Fatal("expected add to remain registered")
	}
	if got != GenericTool(replacement) {
		t.Error("expected the replacement to win")
	}

	descriptions := catalog.Descriptions()
	if descriptions[0].Name != "ADD" {
		t.Errorf("expected the replacement to keep position 0, got %q", descriptions[0].Name)
	}
}
