package agent

import (
	"strings"
	"testing"
)

func TestGetOrCreateGeneratesSessionIDs(t *testing.T) {
	store := NewMemoryStore()

	id := store.GetOrCreate("")
	if !strings.HasPrefix(id, "session_") {
		t.Errorf("session ID %q missing session_ prefix", id)
	}
	if len(id) != len("session_")+16 {
		t.Errorf("session ID %q has wrong length", id)
	}

	other := store.GetOrCreate("")
	if other == id {
		t.Error("expected distinct session IDs")
	}

	if got := store.GetOrCreate(id); got != id {
		t.Errorf("GetOrCreate(%q) = %q, want same ID back", id, got)
	}
	if store.ActiveSessions() != 2 {
		t.Errorf("ActiveSessions = %d, want 2", store.ActiveSessions())
	}
}

func TestSaveAndHistory(t *testing.T) {
	store := NewMemoryStore()
	id := store.GetOrCreate("")

	store.Save(id, "hello", "Hello! How can I help?")
	store.Save(id, "what products do you have", "We have tumblers.")

	history := store.History(id)
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}
	if history[0].Role != "user" || history[0].Content != "hello" {
		t.Errorf("unexpected first message: %+v", history[0])
	}
	if history[1].Role != "assistant" {
		t.Errorf("unexpected second role: %s", history[1].Role)
	}

	info, ok := store.Info(id)
	if !ok {
		t.Fatal("expected session info")
	}
	if info.MessageCount != 2 {
		t.Errorf("MessageCount = %d, want 2", info.MessageCount)
	}
	if info.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set after Save")
	}
}

func TestSaveUnknownSessionIgnored(t *testing.T) {
	store := NewMemoryStore()
	store.Save("session_missing", "hello", "hi")

	if store.ActiveSessions() != 0 {
		t.Error("Save should not create sessions")
	}
}

func TestTranscriptFormat(t *testing.T) {
	store := NewMemoryStore()
	id := store.GetOrCreate("")
	store.Save(id, "my name is Sarah", "Hello Sarah!")

	transcript := store.Transcript(id)
	if !strings.Contains(transcript, "Human: my name is Sarah\n") {
		t.Errorf("missing human line in transcript:\n%s", transcript)
	}
	if !strings.Contains(transcript, "AI: Hello Sarah!\n") {
		t.Errorf("missing AI line in transcript:\n%s", transcript)
	}
}

func TestClearKeepsSession(t *testing.T) {
	store := NewMemoryStore()
	id := store.GetOrCreate("")
	store.Save(id, "hello", "hi")

	store.Clear(id)

	if len(store.History(id)) != 0 {
		t.Error("Clear should empty history")
	}
	info, ok := store.Info(id)
	if !ok {
		t.Fatal("Clear should keep the session")
	}
	if info.MessageCount != 0 {
		t.Errorf("MessageCount = %d after Clear, want 0", info.MessageCount)
	}
}

func TestDeleteRemovesSession(t *testing.T) {
	store := NewMemoryStore()
	id := store.GetOrCreate("")

	store.Delete(id)

	if _, ok := store.Info(id); ok {
		t.Error("Delete should remove metadata")
	}
	if store.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions = %d after Delete, want 0", store.ActiveSessions())
	}
}
