package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. Standard ANSI colors so the theme follows whatever
// scheme the user's terminal is configured with.
var (
	ColorPrimary   = lipgloss.Color("12") // bright blue
	ColorSecondary = lipgloss.Color("14") // bright cyan
	ColorMuted     = lipgloss.Color("8")  // bright black
	ColorSuccess   = lipgloss.Color("10") // bright green
	ColorError     = lipgloss.Color("9")  // bright red
	ColorWarning   = lipgloss.Color("11") // bright yellow
	ColorAccent    = lipgloss.Color("13") // bright magenta
	ColorBorder    = lipgloss.Color("8")
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	HeaderDivider = lipgloss.NewStyle().
			Foreground(ColorMuted).
			SetString("│")

	HeaderAppStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	HeaderStatStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HeaderStatValueStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)
)

// Message styles
var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	UserPrefixStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			SetString("┃ ")

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	SystemMessageStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Italic(true)
)

// Input styles
var (
	InputStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2).
			Foreground(ColorMuted)

	InputFocusedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	StatusDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusDivider = lipgloss.NewStyle().
			Foreground(ColorMuted).
			SetString(" │ ")

	StatusWaitingStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)
)

// Viewport styles
var (
	ViewportStyle = lipgloss.NewStyle().
		Padding(0, 1)
)

// Border styles
var (
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)
)

// HorizontalDivider creates a horizontal line of the given width
func HorizontalDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return DividerStyle.Render(strings.Repeat("─", width))
}
