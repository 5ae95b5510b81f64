package agent

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Responder produces scripted conversational replies for messages no tool
// claims. It stands in for a hosted model so the whole stack runs offline.
type Responder struct {
	mu    sync.Mutex
	index int
}

var defaultReplies = []string{
	"Hello! I'm a helpful AI assistant for ZUS Coffee. How can I help you today?",
	"I'd be happy to help you with that!",
	"That's a great question. Let me assist you with information about ZUS Coffee.",
	"I can help you find ZUS Coffee outlets, learn about our products, or answer any questions you have.",
}

var nameRe = regexp.MustCompile(`(?i)\b(?:my name is|i'?m|i am)\s+(\w+)`)

func NewResponder() *Responder {
	return &Responder{}
}

// Reply answers message using transcript for conversation memory.
func (r *Responder) Reply(message, transcript string) string {
	lower := strings.ToLower(message)

	// Name recall looks at the history, not the current message.
	if strings.Contains(lower, "what") && strings.Contains(lower, "name") {
		if matches := nameRe.FindAllStringSubmatch(transcript, -1); len(matches) > 0 {
			name := capitalize(matches[len(matches)-1][1])
			return fmt.Sprintf("Your name is %s! I remember you mentioned that.", name)
		}
		return "I don't recall you mentioning your name. What is it?"
	}

	if containsAny(lower, "product", "drinkware", "tumbler") {
		return "ZUS Coffee offers a range of high-quality drinkware including insulated tumblers, bottles, and mugs. They're perfect for keeping your drinks hot or cold!"
	}

	if containsAny(lower, "outlet", "location", "store") {
		return "ZUS Coffee has outlets across Malaysia, particularly in Kuala Lumpur and Selangor. I can help you find specific locations!"
	}

	if containsAny(lower, "calculate", "+", "-", "*", "/") ||
		(strings.Contains(lower, "what") && strings.Contains(lower, "is") && containsDigit(message)) {
		return "I can help you with calculations. What would you like me to calculate?"
	}

	if m := nameRe.FindStringSubmatch(message); m != nil {
		return fmt.Sprintf("Hello %s! Nice to meet you. I'll remember your name. How can I help you today?", capitalize(m[1]))
	}

	if containsAny(lower, "hello", "hi", "hey") {
		return defaultReplies[0]
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	reply := defaultReplies[r.index%len(defaultReplies)]
	r.index++
	return reply
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
