package chatapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "convosage/") {
			t.Errorf("User-Agent = %q", ua)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Message != "hello" {
			t.Errorf("message = %q", req.Message)
		}

		json.NewEncoder(w).Encode(ChatResponse{
			Response:  "Hello! How can I help?",
			SessionID: "session_abc123",
		})
	}))
	defer server.Close()

	client := NewClientFromURL(server.URL)
	resp, err := client.SendMessage(context.Background(), "hello", "")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if resp.Response != "Hello! How can I help?" {
		t.Errorf("response = %q", resp.Response)
	}
	if resp.SessionID != "session_abc123" {
		t.Errorf("session ID = %q", resp.SessionID)
	}
}

func TestSendMessageServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientFromURL(server.URL)
	_, err := client.SendMessage(context.Background(), "hello", "")
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}
	if !strings.Contains(err.Error(), "HTTP 500") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("error missing status and body: %v", err)
	}
}

func TestHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/history/session_abc123" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"session_id": "session_abc123",
			"history": []map[string]string{
				{"role": "user", "content": "hi"},
				{"role": "assistant", "content": "hello"},
			},
			"metadata": map[string]any{"message_count": 1},
		})
	}))
	defer server.Close()

	client := NewClientFromURL(server.URL)
	resp, err := client.History(context.Background(), "session_abc123")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(resp.History) != 2 {
		t.Fatalf("history length = %d", len(resp.History))
	}
	if resp.History[1].Role != "assistant" {
		t.Errorf("second role = %q", resp.History[1].Role)
	}
	if resp.Metadata.MessageCount != 1 {
		t.Errorf("message count = %d", resp.Metadata.MessageCount)
	}
}

func TestDeleteSession(t *testing.T) {
	deleted := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/chat/session/session_abc123" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		deleted = true
		json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
	}))
	defer server.Close()

	client := NewClientFromURL(server.URL)
	if err := client.DeleteSession(context.Background(), "session_abc123"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if !deleted {
		t.Error("server never saw the delete")
	}
}

func TestStatsAndHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/chat/stats":
			json.NewEncoder(w).Encode(StatsResponse{ActiveSessions: 3})
		case "/health":
			json.NewEncoder(w).Encode(HealthResponse{Status: "healthy", AppName: "ConvoSage"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClientFromURL(server.URL)

	stats, err := client.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.ActiveSessions != 3 {
		t.Errorf("active sessions = %d", stats.ActiveSessions)
	}

	health, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("status = %q", health.Status)
	}
}
