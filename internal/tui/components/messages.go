package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nchapman/convosage/internal/tui/styles"
)

// MessageRole represents who sent the message
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
	RoleError     MessageRole = "error"
)

// Message represents a chat message
type Message struct {
	Role     MessageRole
	Content  string
	Badge    string // Tool badge shown above assistant replies (e.g. "🧮 Calculator")
	rendered string // Cached rendered content
}

// Messages manages the scrollable message viewport
type Messages struct {
	viewport viewport.Model
	messages []Message
	width    int
	height   int

	// Waiting state while a request is in flight
	waiting bool
	spinner spinner.Model
}

// NewMessages creates a new messages viewport
func NewMessages() Messages {
	vp := viewport.New(0, 0) // Size set via SetSize()
	vp.Style = styles.ViewportStyle

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorAccent)

	return Messages{
		viewport: vp,
		messages: []Message{},
		spinner:  s,
	}
}

// Init returns the initial command
func (m Messages) Init() tea.Cmd {
	return nil
}

// Update handles viewport events
func (m Messages) Update(msg tea.Msg) (Messages, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle scroll keys explicitly
		switch {
		case key.Matches(msg, m.viewport.KeyMap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.viewport.KeyMap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.viewport.KeyMap.PageUp):
			m.viewport.PageUp()
			return m, nil
		case key.Matches(msg, m.viewport.KeyMap.PageDown):
			m.viewport.PageDown()
			return m, nil
		case key.Matches(msg, m.viewport.KeyMap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.viewport.KeyMap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		}
		// Handle home/end keys for go to top/bottom
		switch msg.String() {
		case "home", "g":
			m.viewport.GotoTop()
			return m, nil
		case "end", "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			m.refresh()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the messages viewport
func (m Messages) View() string {
	return m.viewport.View()
}

// SetSize sets the viewport dimensions
func (m *Messages) SetSize(width, height int) {
	// Clear render cache when width changes
	if m.width != width {
		for i := range m.messages {
			m.messages[i].rendered = ""
		}
	}
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.refresh()
}

// GetSize returns the current viewport dimensions (implements Sizeable interface)
func (m Messages) GetSize() (width, height int) {
	return m.width, m.height
}

// AddMessage adds a message to the list
func (m *Messages) AddMessage(msg Message) {
	m.messages = append(m.messages, msg)
	m.refresh()
	m.viewport.GotoBottom()
}

// ClearMessages removes all messages
func (m *Messages) ClearMessages() {
	m.messages = []Message{}
	m.refresh()
}

// StartWaiting shows the spinner while a request is in flight and returns
// a command to start spinner ticks
func (m *Messages) StartWaiting() tea.Cmd {
	m.waiting = true
	m.refresh()
	m.viewport.GotoBottom()
	return m.spinner.Tick
}

// StopWaiting hides the spinner
func (m *Messages) StopWaiting() {
	m.waiting = false
	m.refresh()
}

// IsWaiting returns whether a request is in flight
func (m Messages) IsWaiting() bool {
	return m.waiting
}

// MessagesList returns the message list
func (m Messages) MessagesList() []Message {
	return m.messages
}

// refresh rebuilds the viewport content
func (m *Messages) refresh() {
	contentWidth := m.width - 4 // Account for viewport padding

	var sb strings.Builder

	for i := range m.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		// Use cached render if available
		if m.messages[i].rendered == "" {
			m.messages[i].rendered = m.renderMessage(m.messages[i], contentWidth)
		}
		sb.WriteString(m.messages[i].rendered)
	}

	if m.waiting {
		if len(m.messages) > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(m.spinner.View()))
	}

	m.viewport.SetContent(sb.String())
}

func (m Messages) renderMessage(msg Message, width int) string {
	var sb strings.Builder

	switch msg.Role {
	case RoleUser:
		prefix := styles.UserPrefixStyle.String()
		content := styles.UserMessageStyle.Render(msg.Content)
		// Indent each line with the prefix
		lines := strings.Split(content, "\n")
		for i, line := range lines {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(prefix + line)
		}

	case RoleAssistant:
		// Show which tool produced the reply
		if msg.Badge != "" {
			sb.WriteString(styles.BadgeStyle.MarginLeft(2).Render(msg.Badge))
			sb.WriteString("\n")
		}

		// Render content with markdown (glamour handles margin)
		rendered, err := styles.RenderMarkdown(msg.Content, width)
		if err != nil {
			rendered = msg.Content
		}
		sb.WriteString(strings.TrimSpace(rendered))

	case RoleSystem:
		content := styles.SystemMessageStyle.Width(width).Render(msg.Content)
		sb.WriteString(content)

	case RoleError:
		content := styles.ErrorMessageStyle.Width(width).Render("Error: " + msg.Content)
		sb.WriteString(content)
	}

	return sb.String()
}

// ScrollPercent returns the scroll percentage
func (m Messages) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}
