package agent

import (
	"context"
	"regexp"
	"strings"

	"github.com/nchapman/convosage/internal/tools"
)

var productKeywords = []string{
	"product", "tumbler", "bottle", "cup", "mug", "drinkware",
	"buy", "purchase", "price", "available", "stock",
}

var outletKeywords = []string{
	"outlet", "location", "address", "drive-thru", "drive-through",
	"opening hours", "operating hours",
}

var (
	mathCandidateRe = regexp.MustCompile(`[\d\s+\-*/().]+`)
	digitRe         = regexp.MustCompile(`\d`)
	operatorRe      = regexp.MustCompile(`[+\-*/]`)
)

// Agent routes each message to the right tool by keyword, falling back to
// the scripted responder for plain conversation.
type Agent struct {
	memory    *MemoryStore
	calc      *tools.Calculator
	products  *tools.ProductSearch
	outlets   *tools.OutletSearch
	responder *Responder
}

func New(memory *MemoryStore, products *tools.ProductSearch, outlets *tools.OutletSearch) *Agent {
	return &Agent{
		memory:    memory,
		calc:      tools.NewCalculator(),
		products:  products,
		outlets:   outlets,
		responder: NewResponder(),
	}
}

// Process answers one user message for the given session. The caller is
// responsible for persisting the turn via the memory store.
func (a *Agent) Process(ctx context.Context, sessionID, message string) string {
	lower := strings.ToLower(message)

	if containsAny(lower, productKeywords...) {
		return a.products.Run(message)
	}

	if expr := longestMathExpression(message); expr != "" {
		return a.calc.Run(strings.ReplaceAll(expr, " ", ""))
	}

	if containsAny(lower, outletKeywords...) {
		return a.outlets.Run(ctx, message)
	}

	return a.responder.Reply(message, a.memory.Transcript(sessionID))
}

// longestMathExpression extracts the longest run of arithmetic characters
// that contains both a digit and an operator. Empty when the message has
// no evaluable expression.
func longestMathExpression(message string) string {
	longest := ""
	for _, candidate := range mathCandidateRe.FindAllString(message, -1) {
		cleaned := strings.TrimSpace(candidate)
		if digitRe.MatchString(cleaned) && operatorRe.MatchString(cleaned) && len(cleaned) > len(longest) {
			longest = cleaned
		}
	}
	return longest
}
