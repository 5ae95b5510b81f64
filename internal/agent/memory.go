// Package agent implements the conversational agent: per-session memory,
// keyword tool dispatch, and a scripted responder for everything that
// doesn't need a tool.
package agent

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message is one turn of a conversation.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionInfo is bookkeeping metadata for a session.
type SessionInfo struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
}

// MemoryStore keeps conversation history for every active session.
// Sessions live in memory only; restarting the server clears them.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]Message
	metadata map[string]*SessionInfo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]Message),
		metadata: make(map[string]*SessionInfo),
	}
}

// GetOrCreate returns sessionID if the session exists, creating it if
// needed. An empty sessionID allocates a fresh session.
func (m *MemoryStore) GetOrCreate(sessionID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sessionID == "" {
		sessionID = newSessionID()
	}
	if _, ok := m.sessions[sessionID]; !ok {
		m.sessions[sessionID] = nil
		m.metadata[sessionID] = &SessionInfo{CreatedAt: time.Now().UTC()}
	}
	return sessionID
}

// Save appends one user/assistant turn to the session's history.
// Unknown sessions are ignored.
func (m *MemoryStore) Save(sessionID, userMessage, aiResponse string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return
	}
	now := time.Now().UTC()
	m.sessions[sessionID] = append(m.sessions[sessionID],
		Message{Role: "user", Content: userMessage, Timestamp: now},
		Message{Role: "assistant", Content: aiResponse, Timestamp: now})

	info := m.metadata[sessionID]
	info.MessageCount++
	info.UpdatedAt = now
}

// History returns a copy of the session's messages, oldest first.
func (m *MemoryStore) History(sessionID string) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.sessions[sessionID]
	out := make([]Message, len(history))
	copy(out, history)
	return out
}

// Transcript renders the session history in "Human: / AI:" form for the
// responder's memory lookups.
func (m *MemoryStore) Transcript(sessionID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var b strings.Builder
	for _, msg := range m.sessions[sessionID] {
		if msg.Role == "user" {
			b.WriteString("Human: ")
		} else {
			b.WriteString("AI: ")
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	return b.String()
}

// Info returns session metadata, reporting whether the session exists.
func (m *MemoryStore) Info(sessionID string) (SessionInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, ok := m.metadata[sessionID]
	if !ok {
		return SessionInfo{}, false
	}
	return *info, true
}

// Clear empties a session's history but keeps the session alive.
func (m *MemoryStore) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return
	}
	m.sessions[sessionID] = nil
	m.metadata[sessionID].MessageCount = 0
}

// Delete removes a session entirely.
func (m *MemoryStore) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	delete(m.metadata, sessionID)
}

// ActiveSessions returns the number of live sessions.
func (m *MemoryStore) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

func newSessionID() string {
	id := uuid.New()
	return fmt.Sprintf("session_%x", id[:8])
}
