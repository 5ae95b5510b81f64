package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nchapman/convosage/internal/tui/styles"
)

// Completion represents a single completion item
type Completion struct {
	Text        string // Display text (e.g., "/help")
	Description string // Description shown beside it
	Value       string // Value to insert
}

// Completions is a popup component for showing completion options
type Completions struct {
	items    []Completion // Visible items
	filtered []Completion // Items currently shown
	selected int          // Selected index in filtered list
	open     bool         // Whether popup is visible
	maxItems int          // Max items to show
}

// NewCompletions creates a new completions component
func NewCompletions() *Completions {
	return &Completions{
		maxItems: 10,
	}
}

// Open opens the completions popup with the given items
func (c *Completions) Open(items []Completion) {
	c.items = items
	c.filtered = items
	c.selected = 0
	c.open = true
}

// SetItems replaces the visible items while keeping the popup open,
// clamping the selection. An empty set closes the popup.
func (c *Completions) SetItems(items []Completion) {
	if len(items) == 0 {
		c.Close()
		return
	}
	if !c.open {
		c.Open(items)
		return
	}
	c.items = items
	c.filtered = items
	if c.selected >= len(items) {
		c.selected = len(items) - 1
	}
}

// Close closes the completions popup
func (c *Completions) Close() {
	c.open = false
	c.items = nil
	c.filtered = nil
	c.selected = 0
}

// IsOpen returns whether the popup is open
func (c *Completions) IsOpen() bool {
	return c.open
}

// MoveUp moves selection up
func (c *Completions) MoveUp() {
	if len(c.filtered) == 0 {
		return
	}
	c.selected--
	if c.selected < 0 {
		c.selected = len(c.filtered) - 1
	}
}

// MoveDown moves selection down
func (c *Completions) MoveDown() {
	if len(c.filtered) == 0 {
		return
	}
	c.selected++
	if c.selected >= len(c.filtered) {
		c.selected = 0
	}
}

// Selected returns the currently selected completion, or nil if none
func (c *Completions) Selected() *Completion {
	if len(c.filtered) == 0 || c.selected < 0 || c.selected >= len(c.filtered) {
		return nil
	}
	return &c.filtered[c.selected]
}

// Count returns the number of filtered items
func (c *Completions) Count() int {
	return len(c.filtered)
}

// View renders the completions popup
func (c *Completions) View() string {
	if !c.open || len(c.filtered) == 0 {
		return ""
	}

	// Determine visible items (handle scrolling)
	start := 0
	end := len(c.filtered)
	if end > c.maxItems {
		// Center selection in view when possible
		start = c.selected - c.maxItems/2
		if start < 0 {
			start = 0
		}
		end = start + c.maxItems
		if end > len(c.filtered) {
			end = len(c.filtered)
			start = end - c.maxItems
		}
	}

	// Build rows
	var rows []string
	for i := start; i < end; i++ {
		item := c.filtered[i]
		row := c.renderItem(item, i == c.selected)
		rows = append(rows, row)
	}

	content := strings.Join(rows, "\n")

	// Style the popup with a border
	popupStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorBorder).
		Padding(0, 1)

	return popupStyle.Render(content)
}

// renderItem renders a single completion item
func (c *Completions) renderItem(item Completion, selected bool) string {
	textStyle := lipgloss.NewStyle().Width(16)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.ColorMuted)

	if selected {
		textStyle = textStyle.
			Foreground(styles.ColorAccent).
			Bold(true)
		descStyle = descStyle.
			Foreground(styles.ColorSecondary)
	}

	text := textStyle.Render(item.Text)
	desc := descStyle.Render(item.Description)

	return text + " " + desc
}
