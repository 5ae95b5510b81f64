// Package history persists the client's chat session between runs.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/fileutil"
)

// StoredMessage is one chat turn kept on disk for the TUI to restore.
type StoredMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the client's view of a conversation.
type Session struct {
	SessionID string          `json:"session_id"`
	Messages  []StoredMessage `json:"messages"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Load reads the saved session. A missing file returns nil, nil.
func Load() (*Session, error) {
	data, err := os.ReadFile(config.SessionsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &session, nil
}

// Save writes the session atomically so a crash never leaves a truncated
// file behind.
func Save(session *Session) error {
	path := config.SessionsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	session.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return fileutil.AtomicWriteFile(path, data, 0644)
}

// Append records one user/assistant turn and saves.
func Append(session *Session, userMessage, aiResponse string) error {
	now := time.Now().UTC()
	session.Messages = append(session.Messages,
		StoredMessage{Role: "user", Content: userMessage, Timestamp: now},
		StoredMessage{Role: "assistant", Content: aiResponse, Timestamp: now})
	return Save(session)
}

// Clear removes the saved session.
func Clear() error {
	if err := os.Remove(config.SessionsPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
