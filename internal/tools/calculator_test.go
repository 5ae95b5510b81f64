package tools

import (
	"strings"
	"testing"
)

func TestCalculatorRun(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"addition", "5 + 3", "The result of 5 + 3 is 8"},
		{"multiplication", "10*2", "The result of 10*2 is 20"},
		{"precedence", "2 + 3 * 4", "The result of 2 + 3 * 4 is 14"},
		{"parentheses", "(2 + 3) * 4", "The result of (2 + 3) * 4 is 20"},
		{"division", "10 / 4", "The result of 10 / 4 is 2.5"},
		{"whole float snaps to int", "6 / 2", "The result of 6 / 2 is 3"},
		{"negative numbers", "-5 + 3", "The result of -5 + 3 is -2"},
		{"nested parens", "((1 + 2) * (3 + 4))", "The result of ((1 + 2) * (3 + 4)) is 21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Run(tt.query); got != tt.want {
				t.Errorf("Run(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestCalculatorErrors(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name    string
		query   string
		wantSub string
	}{
		{"empty", "", "provide a mathematical expression"},
		{"whitespace only", "   ", "provide a mathematical expression"},
		{"letters", "5 + x", "Invalid characters"},
		{"injection attempt", "__import__('os')", "Invalid characters"},
		{"mismatched parens", "(5 + 3", "Mismatched parentheses"},
		{"division by zero", "5 / 0", "Division by zero"},
		{"dangling operator", "5 +", "check your syntax"},
		{"double operator", "5 + * 3", "check your syntax"},
		{"bare paren pair", "()", "check your syntax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Run(tt.query)
			if !strings.HasPrefix(got, "Error:") {
				t.Fatalf("Run(%q) = %q, expected error text", tt.query, got)
			}
			if !strings.Contains(got, tt.wantSub) {
				t.Errorf("Run(%q) = %q, want substring %q", tt.query, got, tt.wantSub)
			}
		})
	}
}

func TestCalculatorResultPhrasing(t *testing.T) {
	// The tool badge heuristic keys off "result" plus a digit; the success
	// phrasing must keep both.
	got := NewCalculator().Run("1 + 1")
	if !strings.Contains(got, "result") {
		t.Errorf("success phrasing must contain \"result\": %q", got)
	}
	if !strings.ContainsAny(got, "0123456789") {
		t.Errorf("success phrasing must contain a digit: %q", got)
	}
}
