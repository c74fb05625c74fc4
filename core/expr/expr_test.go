package expr

import (
	"errors"
	"testing"

	"github.com/calcagent/calcagent/providers/tool/arithmetic"
)

func TestIsStrictExpression(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{"simple sum", "2 + 2", true},
		{"precedence expression", "2 + 2 * (10 - 3)", true},
		{"decimals", "1.5/0.5", true},
		{"unary minus", "-8 * 3", true},
		{"natural language", "What is 2 plus 2?", false},
		{"letters only", "two plus two", false},
		{"empty", "", false},
		{"digits without operator", "1234", false},
		{"operators without digit", "+-*/()", false},
		{"whitespace only", "   ", false},
		{"stray character", "2 + 2!", false},
		{"newlines allowed", "2 +\n2", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStrictExpression(tc.query); got != tc.expected {
				t.Errorf("IsStrictExpression(%q) = %v, expected %v", tc.query, got, tc.expected)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"addition", "2 + 3", 5},
		{"subtraction", "10 - 4", 6},
		{"multiplication", "6 * 7", 42},
		{"division", "9 / 2", 4.5},
		{"precedence", "2 + 2 * (10 - 3)", 16},
		{"parentheses override", "(2 + 2) * 10", 40},
		{"nested parentheses", "((1 + 2) * (3 + 4))", 21},
		{"left to right same precedence", "10 - 3 - 2", 5},
		{"division left to right", "100 / 5 / 4", 5},
		{"unary minus", "-8 * 3 + 2", -22},
		{"unary plus", "+5 + 1", 6},
		{"double sign", "2 + -3", -1},
		{"stacked signs", "--4", 4},
		{"decimals", "1.5 * 2", 3},
		{"leading dot", ".5 + .25", 0.75},
		{"no spaces", "12*3-4", 32},
		{"surrounding spaces", "  7 + 1  ", 8},
		{"mixed depth", "100 / (5 * 4) + 7", 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Evaluate(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("Evaluate(%q) = %v, expected %v", tc.input, result, tc.expected)
			}
		})
	}
}

func TestEvaluate_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"power operator", "2 ** 3"},
		{"trailing operator", "2 +"},
		{"leading operator", "* 2"},
		{"unbalanced open", "(2 + 3"},
		{"unbalanced close", "2 + 3)"},
		{"adjacent numbers", "2 3"},
		{"double dot", "1.2.3"},
		{"bare dot", "."},
		{"empty parens", "()"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.input)
			if !errors.Is(err, ErrUnsupportedExpression) {
				t.Fatalf("Evaluate(%q): expected ErrUnsupportedExpression, got %v", tc.input, err)
			}
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	tests := []string{
		"1 / 0",
		"10 / (5 - 5)",
		"1 + 2 / 0 * 3",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Evaluate(input)
			if !errors.Is(err, arithmetic.ErrDivisionByZero) {
				t.Fatalf("Evaluate(%q): expected ErrDivisionByZero, got %v", input, err)
			}
		})
	}
}

// TestParse_TreeShape pins the precedence structure of the tree itself for
// one representative input: 2 + 3 * 4 must parse as 2 + (3 * 4).
func TestParse_TreeShape(t *testing.T) {
	node, err := Parse("2 + 3 * 4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root, ok := node.(Binary)
	if !ok || root.Op != '+' {
		t.Fatalf("expected '+' at root, got %#v", node)
	}

	if _, ok := root.Left.(Literal); !ok {
		t.Errorf("expected literal on the left, got %#v", root.Left)
	}

	right, ok := root.Right.(Binary)
	if !ok || right.Op != '*' {
		t.Fatalf("expected '*' on the right, got %#v", root.Right)
	}
}
