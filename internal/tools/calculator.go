// Package tools implements the backend chat tools: the calculator, the RAG
// product search, and the Text2SQL outlet search. Each tool takes the user's
// text and returns a reply string; failures surface as user-readable error
// text, never as Go errors, so the agent can always answer.
package tools

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Calculator evaluates basic arithmetic expressions: + - * /, decimals,
// and parentheses.
type Calculator struct{}

// NewCalculator returns a calculator tool.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Name implements the tool identifier used in logs.
func (c *Calculator) Name() string { return "calculator" }

var (
	errDivideByZero = errors.New("division by zero")
	errSyntax       = errors.New("invalid syntax")
)

// Run evaluates an expression and phrases the answer. The "result of ... is"
// phrasing is load-bearing: clients badge calculator replies by spotting it.
func (c *Calculator) Run(query string) string {
	query = strings.TrimSpace(query)

	if query == "" {
		return "Error: Please provide a mathematical expression to calculate. For example: 'Calculate 5 + 3'"
	}

	if !validCharset(query) {
		return "Error: Invalid characters in expression. Only numbers and operators (+, -, *, /) are allowed."
	}

	if strings.Count(query, "(") != strings.Count(query, ")") {
		return "Error: Mismatched parentheses in expression."
	}

	result, err := evalExpression(query)
	switch {
	case errors.Is(err, errDivideByZero):
		return "Error: Division by zero is not allowed."
	case err != nil:
		return "Error: Invalid mathematical expression. Please check your syntax."
	}

	if math.IsInf(result, 0) {
		return "Error: Result is infinity (number too large)."
	}
	if math.IsNaN(result) {
		return "Error: Result is not a number (invalid operation)."
	}

	return fmt.Sprintf("The result of %s is %s", query, formatNumber(result))
}

// validCharset allows digits, arithmetic operators, dots, parens and spaces.
func validCharset(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == '-' || r == '*' || r == '/':
		case r == '.' || r == '(' || r == ')' || r == ' ':
		default:
			return false
		}
	}
	return true
}

// formatNumber drops the fraction when the result is a whole number.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// evalExpression parses and evaluates with a small recursive-descent parser.
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = number | "(" expr ")" | ("+" | "-") factor
func evalExpression(input string) (float64, error) {
	p := &exprParser{input: input}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return 0, errSyntax
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return left, nil
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/') {
			return left, nil
		}
		p.pos++

		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, errDivideByZero
			}
			left /= right
		}
	}
}

func (p *exprParser) parseFactor() (float64, error) {
	ch, ok := p.peek()
	if !ok {
		return 0, errSyntax
	}

	switch {
	case ch == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		ch, ok = p.peek()
		if !ok || ch != ')' {
			return 0, errSyntax
		}
		p.pos++
		return v, nil

	case ch == '+':
		p.pos++
		return p.parseFactor()

	case ch == '-':
		p.pos++
		v, err := p.parseFactor()
		return -v, err

	default:
		return p.parseNumber()
	}
}

func (p *exprParser) parseNumber() (float64, error) {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if start == p.pos {
		return 0, errSyntax
	}

	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, errSyntax
	}
	return v, nil
}
