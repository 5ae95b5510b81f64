package command

import "strings"

// Suggestion is one autocomplete entry derived from the registry.
type Suggestion struct {
	Command     string // Registry name (e.g. "calc")
	Description string
	Display     string // Form shown to the user (e.g. "/calc")
}

// Suggest returns completions for a partially typed command, preserving
// registry order. Input "/" returns the full menu; anything not starting
// with "/" returns nothing. Matching is a case-folded prefix check, no
// fuzzy matching or ranking.
func Suggest(input string) []Suggestion {
	if !strings.HasPrefix(input, "/") {
		return nil
	}

	partial := strings.ToLower(input[1:])

	var out []Suggestion
	for _, cmd := range Registry {
		if partial != "" && !strings.HasPrefix(cmd.Name, partial) {
			continue
		}
		out = append(out, Suggestion{
			Command:     cmd.Name,
			Description: cmd.Description,
			Display:     "/" + cmd.Name,
		})
	}
	return out
}
