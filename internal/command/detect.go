package command

import "strings"

// Tool identifies which backend capability likely produced a reply.
type Tool int

const (
	ToolNone Tool = iota
	ToolCalculator
	ToolProducts
	ToolOutlets
)

// Badge is the display form of a detected tool.
type Badge struct {
	Icon  string
	Label string
}

// badges maps each tool to its UI badge. ToolNone has no entry; callers
// render nothing for it.
var badges = map[Tool]Badge{
	ToolCalculator: {Icon: "🧮", Label: "Calculator"},
	ToolProducts:   {Icon: "🛒", Label: "Product Search"},
	ToolOutlets:    {Icon: "📍", Label: "Outlet Finder"},
}

var (
	productWords = []string{"product", "tumbler", "bottle", "glass"}
	outletWords  = []string{"outlet", "location", "address", "drive-through"}
)

// DetectTool guesses which tool produced a bot reply from its text alone.
// Rules run in fixed priority order and the first match wins:
//
//  1. "result" plus any digit     -> calculator
//  2. product vocabulary          -> products
//  3. outlet vocabulary           -> outlets
//  4. otherwise                   -> none
//
// This is a display heuristic, not ground truth: the backend's actual tool
// invocation is not observed, and a numeric "result" phrase in unrelated
// prose will still light up the calculator badge. False positives only
// affect the badge, never message content.
func DetectTool(message string) Tool {
	text := strings.ToLower(message)

	if strings.Contains(text, "result") && containsDigit(text) {
		return ToolCalculator
	}
	for _, w := range productWords {
		if strings.Contains(text, w) {
			return ToolProducts
		}
	}
	for _, w := range outletWords {
		if strings.Contains(text, w) {
			return ToolOutlets
		}
	}
	return ToolNone
}

// BadgeFor returns the badge for a tool; ok is false for ToolNone.
func BadgeFor(t Tool) (Badge, bool) {
	b, ok := badges[t]
	return b, ok
}

// String returns the badge label, or "" for ToolNone.
func (t Tool) String() string {
	if b, ok := badges[t]; ok {
		return b.Label
	}
	return ""
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
