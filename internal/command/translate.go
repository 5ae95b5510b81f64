package command

import "strings"

// Action tells the caller how a parsed command should be handled.
type Action int

const (
	// ActionUnknown means the command is not in the registry; the caller
	// decides whether to forward the input verbatim or show an error.
	ActionUnknown Action = iota
	// ActionSend means Translate produces a message for the backend.
	ActionSend
	// ActionLocal means the command is answered entirely client-side
	// (help) and must never reach the backend.
	ActionLocal
	// ActionClear means the caller should clear the conversation and
	// session state; there is no message to send.
	ActionClear
)

// CalcPrompt is returned for a bare /calc with no expression.
const CalcPrompt = "Please provide a calculation. Example: /calc 5 + 3"

// ActionFor classifies a command name into its handling category.
func ActionFor(cmd string) Action {
	switch strings.ToLower(cmd) {
	case "calc", "calculate", "products", "product", "outlets", "outlet", "locations":
		return ActionSend
	case "help":
		return ActionLocal
	case "reset", "clear":
		return ActionClear
	default:
		return ActionUnknown
	}
}

// Translate converts a recognized command into the natural-language message
// sent to the backend. The second return is false for commands that do not
// translate: unknown names and the locally handled reset/clear. For /help
// it returns the help text, which callers must render locally.
func Translate(cmd, args string) (string, bool) {
	switch strings.ToLower(cmd) {
	case "calc", "calculate":
		if args != "" {
			return "Calculate " + args, true
		}
		return CalcPrompt, true

	case "products", "product":
		if args != "" {
			return "Show me " + args, true
		}
		return "Show me all products", true

	case "outlets", "outlet", "locations":
		if args != "" {
			return "Find outlets in " + args, true
		}
		return "Show me all outlets", true

	case "help":
		return HelpText(), true

	default:
		return "", false
	}
}

// HelpText renders the command menu, one bulleted line per registry entry
// in registry order.
func HelpText() string {
	var sb strings.Builder
	sb.WriteString("Available commands:")
	for _, cmd := range Registry {
		if cmd.Description == "" {
			continue
		}
		sb.WriteString("\n• /" + cmd.Name + " - " + cmd.Description)
	}
	return sb.String()
}
