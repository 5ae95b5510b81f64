package chat

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/nchapman/convosage/internal/chatapi"
	"github.com/nchapman/convosage/internal/command"
	"github.com/nchapman/convosage/internal/tui/components"
)

func setTestHome(t *testing.T) {
	t.Helper()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
}

func newTestModel(t *testing.T, baseURL string) *Model {
	t.Helper()
	setTestHome(t)
	m := New(chatapi.NewClientFromURL(baseURL), baseURL)
	m.width = 80
	m.height = 24
	m.updateLayout()
	return m
}

func TestHandleCommandHelp(t *testing.T) {
	m := newTestModel(t, "http://localhost:8000")

	cmd := m.handleCommand("/help")
	if cmd == nil {
		t.Fatal("expected a command for /help")
	}

	result, ok := cmd().(CommandResultMsg)
	if !ok {
		t.Fatalf("expected CommandResultMsg, got %T", cmd())
	}
	if !strings.Contains(result.Message, "Available commands:") {
		t.Errorf("unexpected help text: %q", result.Message)
	}
	if !strings.Contains(result.Message, "/calc") {
		t.Error("expected /calc in help text")
	}
	if result.Exit || result.IsError {
		t.Error("help should not exit or error")
	}
}

func TestHandleCommandExit(t *testing.T) {
	m := newTestModel(t, "http://localhost:8000")

	for _, input := range []string{"/bye", "/exit", "/quit"} {
		cmd := m.handleCommand(input)
		if cmd == nil {
			t.Fatalf("expected a command for %s", input)
		}
		result, ok := cmd().(CommandResultMsg)
		if !ok || !result.Exit {
			t.Errorf("%s: expected exit result, got %+v", input, cmd())
		}
	}
}

func TestHandleCommandUnknown(t *testing.T) {
	m := newTestModel(t, "http://localhost:8000")

	cmd := m.handleCommand("/frobnicate")
	if cmd == nil {
		t.Fatal("expected a command for unknown input")
	}

	result, ok := cmd().(CommandResultMsg)
	if !ok {
		t.Fatalf("expected CommandResultMsg, got %T", cmd())
	}
	if !result.IsError {
		t.Error("expected error result for unknown command")
	}
	if !strings.Contains(result.Message, "/frobnicate") {
		t.Errorf("expected command name in message, got %q", result.Message)
	}
}

func TestHandleCommandBareCalc(t *testing.T) {
	m := newTestModel(t, "http://localhost:8000")

	cmd := m.handleCommand("/calc")
	if cmd == nil {
		t.Fatal("expected a command for bare /calc")
	}

	result, ok := cmd().(CommandResultMsg)
	if !ok {
		t.Fatalf("expected CommandResultMsg, got %T", cmd())
	}
	if result.Message != command.CalcPrompt {
		t.Errorf("expected calc prompt, got %q", result.Message)
	}
}

func TestHandleCommandSendTranslates(t *testing.T) {
	m := newTestModel(t, "http://localhost:8000")

	cmd := m.handleCommand("/calc 5 + 3")
	if cmd == nil {
		t.Fatal("expected a command for /calc with args")
	}

	// sendMessage adds the translated message to the viewport immediately
	msgs := m.messages.MessagesList()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message in viewport, got %d", len(msgs))
	}
	if msgs[0].Content != "Calculate 5 + 3" {
		t.Errorf("expected translated message, got %q", msgs[0].Content)
	}
	if m.pending != "Calculate 5 + 3" {
		t.Errorf("expected pending message set, got %q", m.pending)
	}
	if !m.sending {
		t.Error("expected sending state after dispatch")
	}
}

func TestHandleCommandClear(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/chat/session/") {
			deleted = true
		}
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	m := newTestModel(t, srv.URL)
	m.sessionID = "session_abc123"
	m.messages.AddMessage(components.Message{Role: components.RoleUser, Content: "hello"})

	cmd := m.handleCommand("/clear")
	if cmd == nil {
		t.Fatal("expected a command for /clear")
	}

	// Viewport and session state clear synchronously
	if len(m.messages.MessagesList()) != 0 {
		t.Error("expected viewport cleared")
	}
	if m.sessionID != "" {
		t.Errorf("expected session ID reset, got %q", m.sessionID)
	}

	result, ok := cmd().(CommandResultMsg)
	if !ok {
		t.Fatalf("expected CommandResultMsg, got %T", cmd())
	}
	if result.Message != "Conversation cleared" {
		t.Errorf("unexpected result: %q", result.Message)
	}
	if !deleted {
		t.Error("expected server session delete")
	}
}

func TestReplyBadge(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"calculator", "The result of 5+3 is 8", "Calculator"},
		{"products", "I found 3 products matching your search", "Product Search"},
		{"outlets", "There are **5 outlets** in Petaling Jaya.", "Outlet Finder"},
		{"plain reply", "Hello! How can I help you today?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge := replyBadge(tt.reply)
			if tt.want == "" {
				if badge != "" {
					t.Errorf("expected no badge, got %q", badge)
				}
				return
			}
			if !strings.Contains(badge, tt.want) {
				t.Errorf("expected badge containing %q, got %q", tt.want, badge)
			}
		})
	}
}

func TestCommandCompletionsMatchSuggester(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"/", len(command.Registry)},
		{"/c", 3}, // calc, calculate, clear
		{"/help", 1},
		{"/nosuch", 0},
		{"hello", 0},
	}

	for _, tt := range tests {
		items := commandCompletions(tt.input)
		if len(items) != tt.want {
			t.Errorf("commandCompletions(%q) returned %d items, want %d", tt.input, len(items), tt.want)
		}
		suggestions := command.Suggest(tt.input)
		for i, s := range suggestions {
			if items[i].Text != s.Display || items[i].Value != s.Display {
				t.Errorf("item %d = %q/%q, want %q", i, items[i].Text, items[i].Value, s.Display)
			}
			if items[i].Description != s.Description {
				t.Errorf("item %d description = %q, want %q", i, items[i].Description, s.Description)
			}
		}
	}
}
