package chat

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nchapman/convosage/internal/command"
	"github.com/nchapman/convosage/internal/history"
	"github.com/nchapman/convosage/internal/logs"
)

// handleCommand processes a slash command and returns a command
func (m *Model) handleCommand(input string) tea.Cmd {
	parsed := command.Parse(input)
	if parsed == nil {
		return nil
	}

	// Exit commands are a TUI concern, not part of the shared registry
	switch parsed.Command {
	case "bye", "exit", "quit":
		return func() tea.Msg {
			return CommandResultMsg{Message: "Goodbye!", Exit: true}
		}
	}

	switch command.ActionFor(parsed.Command) {
	case command.ActionLocal:
		return func() tea.Msg {
			return CommandResultMsg{Message: command.HelpText()}
		}

	case command.ActionClear:
		return m.clearConversation()

	case command.ActionSend:
		text, ok := command.Translate(parsed.Command, parsed.Args)
		if !ok {
			return nil
		}
		// A bare /calc gets a usage hint instead of a round trip
		if text == command.CalcPrompt {
			return func() tea.Msg {
				return CommandResultMsg{Message: text}
			}
		}
		return m.sendMessage(text)

	default:
		return func() tea.Msg {
			return CommandResultMsg{
				Message: fmt.Sprintf("Unknown command: /%s (type /help for commands)", parsed.Command),
				IsError: true,
			}
		}
	}
}

// clearConversation wipes the viewport, the saved session file, and the
// server-side session
func (m *Model) clearConversation() tea.Cmd {
	sessionID := m.sessionID

	m.messages.ClearMessages()
	m.sessionID = ""
	m.session = nil
	m.updateHeader()

	return func() tea.Msg {
		if err := history.Clear(); err != nil {
			return CommandResultMsg{
				Message: fmt.Sprintf("Failed to clear saved session: %v", err),
				IsError: true,
			}
		}

		if sessionID != "" {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := m.api.DeleteSession(ctx, sessionID); err != nil {
				// Local state is already gone; the server session will age out
				logs.Warn("Failed to delete server session", "session_id", sessionID, "error", err)
			}
		}

		return CommandResultMsg{Message: "Conversation cleared"}
	}
}
