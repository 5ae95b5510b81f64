package agent

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nchapman/convosage/internal/db"
	"github.com/nchapman/convosage/internal/rag"
	"github.com/nchapman/convosage/internal/tools"
)

func newTestAgent(t *testing.T) (*Agent, *MemoryStore) {
	t.Helper()

	store, err := rag.NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	database, err := db.Open(filepath.Join(t.TempDir(), "outlets.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	ctx := context.Background()
	if err := database.InitSchema(ctx); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}
	if _, err := database.IngestSeed(ctx); err != nil {
		t.Fatalf("IngestSeed failed: %v", err)
	}

	memory := NewMemoryStore()
	return New(memory, tools.NewProductSearch(store), tools.NewOutletSearch(database)), memory
}

func TestProcessDispatchesProducts(t *testing.T) {
	agent, memory := newTestAgent(t)
	id := memory.GetOrCreate("")

	got := agent.Process(context.Background(), id, "Show me tumblers")
	if !strings.Contains(got, "products that match your query") {
		t.Errorf("expected product search response:\n%s", got)
	}
}

func TestProcessDispatchesCalculator(t *testing.T) {
	agent, memory := newTestAgent(t)
	id := memory.GetOrCreate("")

	got := agent.Process(context.Background(), id, "Calculate 5 + 3")
	if got != "The result of 5+3 is 8" {
		t.Errorf("calculator response = %q", got)
	}
}

func TestProcessDispatchesOutlets(t *testing.T) {
	agent, memory := newTestAgent(t)
	id := memory.GetOrCreate("")

	got := agent.Process(context.Background(), id, "Find outlets in Petaling Jaya")
	if !strings.Contains(got, "in Petaling Jaya") || !strings.Contains(got, "Address: ") {
		t.Errorf("expected outlet listing:\n%s", got)
	}
}

func TestProcessFallsBackToResponder(t *testing.T) {
	agent, memory := newTestAgent(t)
	id := memory.GetOrCreate("")

	got := agent.Process(context.Background(), id, "hello")
	if got != "Hello! I'm a helpful AI assistant for ZUS Coffee. How can I help you today?" {
		t.Errorf("responder fallback = %q", got)
	}
}

func TestProcessRemembersNameAcrossTurns(t *testing.T) {
	agent, memory := newTestAgent(t)
	id := memory.GetOrCreate("")
	ctx := context.Background()

	reply := agent.Process(ctx, id, "my name is Sarah")
	memory.Save(id, "my name is Sarah", reply)

	got := agent.Process(ctx, id, "what is my name?")
	if got != "Your name is Sarah! I remember you mentioned that." {
		t.Errorf("name memory = %q", got)
	}
}

func TestLongestMathExpression(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Calculate 5 + 3", "5 + 3"},
		{"what is (10 + 5) * 2?", "(10 + 5) * 2"},
		{"no math here", ""},
		{"room 12 please", ""},
		{"2+2 or maybe 100 * 100", "100 * 100"},
	}

	for _, tt := range tests {
		if got := longestMathExpression(tt.message); got != tt.want {
			t.Errorf("longestMathExpression(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}
