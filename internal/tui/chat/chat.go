// Package chat implements the terminal chat interface.
package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nchapman/convosage/internal/chatapi"
	"github.com/nchapman/convosage/internal/command"
	"github.com/nchapman/convosage/internal/history"
	"github.com/nchapman/convosage/internal/logs"
	"github.com/nchapman/convosage/internal/tui/components"
)

// Message types for communication with the model
type (
	// ResponseMsg carries the backend's reply to a chat message
	ResponseMsg struct {
		Reply     string
		SessionID string
		Error     error
	}

	// SendCancelledMsg indicates an in-flight request was cancelled by the user
	SendCancelledMsg struct{}

	// CommandResultMsg is the result of a slash command
	CommandResultMsg struct {
		Message string
		IsError bool
		Exit    bool
	}
)

// FocusedPane represents which pane has focus
type FocusedPane int

const (
	PaneInput FocusedPane = iota
	PaneMessages
)

// Model is the main TUI chat model
type Model struct {
	// Components
	header   components.Header
	messages components.Messages
	input    components.Input
	status   components.StatusBar

	// API
	api       *chatapi.Client
	serverURL string

	// Session state
	sessionID string
	session   *history.Session
	pending   string // user message awaiting a reply

	// UI state
	width       int
	height      int
	sending     bool
	quitting    bool
	focusedPane FocusedPane
	cancelSend  context.CancelFunc

	// Key bindings
	keys KeyMap
}

// New creates a new chat TUI model. A previously saved session is restored
// into the viewport so the conversation picks up where it left off.
func New(api *chatapi.Client, serverURL string) *Model {
	m := &Model{
		header:   components.NewHeader(),
		messages: components.NewMessages(),
		input:    components.NewInputWithCompletions(commandCompletions),
		status:   components.NewStatusBar(),

		api:       api,
		serverURL: serverURL,
		keys:      DefaultKeyMap(),
	}

	m.restoreSession()
	m.updateHeader()

	return m
}

// restoreSession loads the saved session from disk and replays it
func (m *Model) restoreSession() {
	session, err := history.Load()
	if err != nil {
		logs.Warn("Failed to load saved session", "error", err)
		return
	}
	if session == nil {
		return
	}

	m.session = session
	m.sessionID = session.SessionID

	for _, msg := range session.Messages {
		switch msg.Role {
		case "user":
			m.messages.AddMessage(components.Message{
				Role:    components.RoleUser,
				Content: msg.Content,
			})
		case "assistant":
			m.messages.AddMessage(components.Message{
				Role:    components.RoleAssistant,
				Content: msg.Content,
				Badge:   replyBadge(msg.Content),
			})
		}
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.input.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		// Handle global keys first
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case msg.Type == tea.KeyEsc:
			if m.sending {
				// Cancel the in-flight HTTP request
				if m.cancelSend != nil {
					m.cancelSend()
				}
				m.messages.StopWaiting()
				m.stopSending()
				return m, nil
			}
			// Esc returns focus to input
			if m.focusedPane == PaneMessages {
				m.focusedPane = PaneInput
				return m, m.input.Focus()
			}

		case msg.Type == tea.KeyTab && !m.input.IsCompletionsOpen():
			// Toggle focus between input and messages (not when completions open)
			return m, m.toggleFocus()

		case msg.Type == tea.KeyEnter && m.focusedPane == PaneInput && !m.sending && !m.input.IsCompletionsOpen():
			// Send message (only when input is focused and completions not open)
			value := m.input.Value()
			if value != "" {
				m.input.Reset()

				if command.IsCommand(value) {
					return m, m.handleCommand(value)
				}

				return m, m.sendMessage(value)
			}
		}

		// Route key events to focused pane
		switch m.focusedPane {
		case PaneMessages:
			var cmd tea.Cmd
			m.messages, cmd = m.messages.Update(msg)
			cmds = append(cmds, cmd)
		case PaneInput:
			if !m.sending {
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case ResponseMsg:
		m.messages.StopWaiting()
		m.stopSending()
		if msg.Error != nil {
			m.messages.AddMessage(components.Message{
				Role:    components.RoleError,
				Content: msg.Error.Error(),
			})
		} else {
			m.messages.AddMessage(components.Message{
				Role:    components.RoleAssistant,
				Content: msg.Reply,
				Badge:   replyBadge(msg.Reply),
			})
			m.sessionID = msg.SessionID
			m.persistTurn(msg.Reply)
		}
		m.pending = ""
		m.updateHeader()
		cmds = append(cmds, m.input.Focus())

	case SendCancelledMsg:
		// Request was cancelled by user - just clean up, no error message
		m.stopSending()
		m.pending = ""
		cmds = append(cmds, m.input.Focus())

	case CommandResultMsg:
		if msg.Exit {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.Message != "" {
			role := components.RoleSystem
			if msg.IsError {
				role = components.RoleError
			}
			m.messages.AddMessage(components.Message{
				Role:    role,
				Content: msg.Message,
			})
		}
		m.updateHeader()

	case spinner.TickMsg:
		if m.sending {
			var cmd tea.Cmd
			m.messages, cmd = m.messages.Update(msg)
			cmds = append(cmds, cmd)
		}

	case components.InputHeightChangedMsg:
		// Input height changed, recalculate layout
		m.updateLayout()

	default:
		// Update input for other messages (like blink)
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Update scroll percentage for status bar
	m.status.SetScrollPercent(m.messages.ScrollPercent())

	var sections []string

	// Header
	sections = append(sections, m.header.View())

	// Messages viewport
	sections = append(sections, m.messages.View())

	// Input
	sections = append(sections, m.input.View())

	// Status bar
	sections = append(sections, m.status.View())

	baseView := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Overlay completions popup if open
	if m.input.IsCompletionsOpen() {
		completionsView := m.input.CompletionsView()
		baseView = overlayCompletions(baseView, completionsView, m.height, m.input.Height())
	}

	return baseView
}

// Layout constants
const (
	headerHeight  = 2 // content + divider
	statusHeight  = 2 // divider + content
	inputOverhead = 2 // blank line + divider
)

// updateLayout recalculates component sizes
func (m *Model) updateLayout() {
	// Input height is dynamic based on content
	inputHeight := m.input.Height()
	editorHeight := inputOverhead + inputHeight

	// Messages viewport gets remaining space
	messagesHeight := max(1, m.height-headerHeight-statusHeight-editorHeight)

	m.header.SetWidth(m.width)
	m.messages.SetSize(m.width, messagesHeight)
	m.input.SetWidth(m.width)
	m.status.SetWidth(m.width)
}

// updateHeader refreshes the session info shown in the header
func (m *Model) updateHeader() {
	m.header.SetStats(components.HeaderStats{
		AppName:   "ConvoSage",
		ServerURL: m.serverURL,
		SessionID: m.sessionID,
		Messages:  len(m.messages.MessagesList()),
	})
}

// toggleFocus switches focus between input and messages panes
func (m *Model) toggleFocus() tea.Cmd {
	switch m.focusedPane {
	case PaneInput:
		m.focusedPane = PaneMessages
		m.input.Blur()
		return nil
	case PaneMessages:
		m.focusedPane = PaneInput
		return m.input.Focus()
	}
	return nil
}

// sendMessage sends a user message to the backend
func (m *Model) sendMessage(content string) tea.Cmd {
	// Add to UI
	m.messages.AddMessage(components.Message{
		Role:    components.RoleUser,
		Content: content,
	})
	m.pending = content

	spinnerCmd := m.startSending()

	// Create cancellable context for this request
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelSend = cancel

	api := m.api
	sessionID := m.sessionID

	sendCmd := func() tea.Msg {
		resp, err := api.SendMessage(ctx, content, sessionID)

		// Handle cancellation distinctly - no error shown to user
		if errors.Is(err, context.Canceled) {
			return SendCancelledMsg{}
		}
		if err != nil {
			return ResponseMsg{Error: err}
		}
		return ResponseMsg{Reply: resp.Response, SessionID: resp.SessionID}
	}

	return tea.Batch(spinnerCmd, sendCmd)
}

// persistTurn saves the completed user/assistant turn to disk
func (m *Model) persistTurn(reply string) {
	if m.pending == "" {
		return
	}
	if m.session == nil {
		m.session = &history.Session{}
	}
	m.session.SessionID = m.sessionID
	if err := history.Append(m.session, m.pending, reply); err != nil {
		logs.Warn("Failed to save session", "error", err)
	}
}

// startSending sets sending state consistently and returns spinner tick command
func (m *Model) startSending() tea.Cmd {
	m.sending = true
	m.status.SetState(components.StatusWaiting)
	return m.messages.StartWaiting()
}

// stopSending clears sending state consistently
func (m *Model) stopSending() {
	m.sending = false
	m.status.SetState(components.StatusReady)
	m.cancelSend = nil
}

// replyBadge returns the tool badge text for a bot reply, or "" when no
// tool use was detected
func replyBadge(reply string) string {
	if b, ok := command.BadgeFor(command.DetectTool(reply)); ok {
		return b.Icon + " " + b.Label
	}
	return ""
}

// commandCompletions feeds the input popup from the command suggester, so
// the popup and /help agree on what completes
func commandCompletions(value string) []components.Completion {
	suggestions := command.Suggest(value)
	items := make([]components.Completion, 0, len(suggestions))
	for _, s := range suggestions {
		items = append(items, components.Completion{
			Text:        s.Display,
			Description: s.Description,
			Value:       s.Display,
		})
	}
	return items
}

// overlayCompletions renders the completions popup over the base view
func overlayCompletions(base, popup string, height, inputHeight int) string {
	if popup == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")

	// Position popup directly above the input divider line
	popupY := max(headerHeight, height-statusHeight-inputHeight-inputOverhead-len(popupLines)+1)

	// Left-align popup with some padding
	popupX := 1

	// Replace entire lines with popup content (padded to position)
	for i, pLine := range popupLines {
		lineIdx := popupY + i
		if lineIdx >= 0 && lineIdx < len(baseLines) {
			// Create padding, then popup line
			padding := strings.Repeat(" ", popupX)
			baseLines[lineIdx] = padding + pLine
		}
	}

	return strings.Join(baseLines, "\n")
}
