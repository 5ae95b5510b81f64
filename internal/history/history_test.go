package history

import (
	"os"
	"testing"
)

func setTestHome(t *testing.T) {
	t.Helper()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
}

func TestLoadMissingFile(t *testing.T) {
	setTestHome(t)

	session, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if session != nil {
		t.Errorf("expected nil session for missing file, got %+v", session)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	setTestHome(t)

	session := &Session{SessionID: "session_abc123"}
	if err := Append(session, "hello", "Hello! How can I help?"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := Append(session, "what is 2+2", "The result of 2+2 is 4"); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected saved session")
	}
	if loaded.SessionID != "session_abc123" {
		t.Errorf("session ID = %q", loaded.SessionID)
	}
	if len(loaded.Messages) != 4 {
		t.Fatalf("message count = %d, want 4", len(loaded.Messages))
	}
	if loaded.Messages[3].Content != "The result of 2+2 is 4" {
		t.Errorf("last message = %q", loaded.Messages[3].Content)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}
}

func TestClear(t *testing.T) {
	setTestHome(t)

	if err := Save(&Session{SessionID: "session_abc123"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	session, err := Load()
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if session != nil {
		t.Error("expected no session after Clear")
	}

	// Clearing twice is fine.
	if err := Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}
