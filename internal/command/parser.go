package command

import "strings"

// Parsed is one tokenized slash command from user input.
type Parsed struct {
	Command string // First token, lowercased
	Args    string // Remaining tokens joined by single spaces
}

// IsCommand reports whether input should be treated as a slash command:
// after trimming surrounding whitespace the first character is '/'.
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "/")
}

// Parse tokenizes a slash command. It returns nil if input is not a command
// or is a bare "/" with no command token. Runs of whitespace between tokens
// collapse to single spaces in Args.
func Parse(input string) *Parsed {
	if !IsCommand(input) {
		return nil
	}

	trimmed := strings.TrimSpace(input)
	fields := strings.Fields(trimmed[1:])
	if len(fields) == 0 {
		return nil
	}

	return &Parsed{
		Command: strings.ToLower(fields[0]),
		Args:    strings.Join(fields[1:], " "),
	}
}
