package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nchapman/convosage/internal/tui/styles"
)

// HeaderStats holds the display values for the header
type HeaderStats struct {
	AppName   string
	ServerURL string
	SessionID string
	Messages  int
}

// Header renders the header bar
type Header struct {
	stats HeaderStats
	width int
}

// NewHeader creates a new header component
func NewHeader() Header {
	return Header{}
}

// SetStats updates the header statistics
func (h *Header) SetStats(stats HeaderStats) {
	h.stats = stats
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// formatSessionID renders the session ID with the prefix muted so the
// unique part stands out
func formatSessionID(id string) string {
	if id == "" {
		return styles.HeaderStatStyle.Render("new session")
	}

	if idx := strings.Index(id, "_"); idx != -1 {
		prefix := id[:idx+1] // include the underscore
		rest := id[idx+1:]
		return styles.HeaderStatStyle.Render(prefix) + styles.HeaderStatValueStyle.Render(rest)
	}
	return styles.HeaderStatValueStyle.Render(id)
}

// View renders the header
func (h Header) View() string {
	if h.width == 0 {
		return ""
	}

	// Build left side: AppName • server URL
	leftPart := styles.HeaderAppStyle.Render(h.stats.AppName)
	if h.stats.ServerURL != "" {
		leftPart += styles.HeaderStatStyle.Render(" • " + h.stats.ServerURL)
	}

	// Build right-side stats
	var rightParts []string
	divider := styles.HeaderDivider.String()

	rightParts = append(rightParts, formatSessionID(h.stats.SessionID))

	if h.stats.Messages > 0 {
		msgStr := fmt.Sprintf("%d msgs", h.stats.Messages)
		rightParts = append(rightParts, styles.HeaderStatValueStyle.Render(msgStr))
	}

	rightSide := strings.Join(rightParts, " "+divider+" ")

	// Calculate padding to right-align stats
	leftLen := lipgloss.Width(leftPart)
	rightLen := lipgloss.Width(rightSide)
	padding := h.width - leftLen - rightLen - 2 // -2 for left/right padding

	var headerContent string
	if padding > 0 && rightSide != "" {
		headerContent = leftPart + strings.Repeat(" ", padding) + rightSide
	} else {
		headerContent = leftPart
	}

	// Render with full width and divider line
	headerLine := styles.HeaderStyle.Width(h.width).Render(headerContent)
	dividerLine := styles.HorizontalDivider(h.width)

	return lipgloss.JoinVertical(lipgloss.Left, headerLine, dividerLine)
}
