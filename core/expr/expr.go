package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/calcagent/calcagent/providers/tool/arithmetic"
)

// ErrUnsupportedExpression is returned when an input string cannot be parsed
// or evaluated within the restricted arithmetic grammar. Malformed syntax and
// out-of-grammar constructs (e.g. "**") both map to this error; callers never
// distinguish them.
var ErrUnsupportedExpression = errors.New("calcagent: unsupported expression")

// Node is a single node of the expression tree built by [Parse]. The tree is
// a tagged union of exactly three variants: [Literal], [Unary], and [Binary].
// Nodes are immutable; a tree is built once per evaluation and discarded.
type Node interface {
	// Eval computes the numeric value of the subtree rooted at this node.
	Eval() (float64, error)
}

// Literal is a numeric constant.
type Literal struct {
	Value float64
}

// Eval returns the literal's value.
func (l Literal) Eval() (float64, error) {
	return l.Value, nil
}

// Unary applies a sign to its operand: '+' is identity, '-' negates.
type Unary struct {
	Op      byte
	Operand Node
}

// Eval evaluates the operand and applies the sign.
func (u Unary) Eval() (float64, error) {
	value, err := u.Operand.Eval()
	if err != nil {
		return 0, err
	}
	if u.Op == '-' {
		return -value, nil
	}
	return value, nil
}

// Binary applies one of the four arithmetic operators to its children.
// Evaluation dispatches to the shared arithmetic primitives so the fallback
// path and the LLM tool path compute with identical semantics, including the
// division-by-zero guard.
type Binary struct {
	Op    byte
	Left  Node
	Right Node
}

// Eval evaluates both children left to right and applies the operator.
func (b Binary) Eval() (float64, error) {
	left, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case '+':
		return arithmetic.Add(left, right)
	case '-':
		return arithmetic.Subtract(left, right)
	case '*':
		return arithmetic.Multiply(left, right)
	case '/':
		return arithmetic.Divide(left, right)
	default:
		return 0, fmt.Errorf("%w: operator %q", ErrUnsupportedExpression, string(b.Op))
	}
}

// IsStrictExpression reports whether query is composed exclusively of digits,
// whitespace, the four operator characters, parentheses, and decimal points,
// and contains at least one digit and one operator. This is a syntactic gate,
// not a parse attempt: it decides whether the deterministic fallback may even
// look at the input. Natural language never passes.
func IsStrictExpression(query string) bool {
	if query == "" {
		return false
	}

	hasDigit := false
	hasOperator := false
	for _, r := range query {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '+' || r == '-' || r == '*' || r == '/':
			hasOperator = true
		case r == '(' || r == ')' || r == '.' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			// allowed structural characters
		default:
			return false
		}
	}
	return hasDigit && hasOperator
}

// Parse builds the expression tree for input using standard operator
// precedence: multiplication and division bind tighter than addition and
// subtraction, unary sign binds tightest, parentheses group. The grammar is
// the entire language; there is no escape hatch into general evaluation.
func Parse(input string) (Node, error) {
	p := &parser{input: input}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrUnsupportedExpression, string(p.input[p.pos]), p.pos)
	}
	return node, nil
}

// Evaluate parses and evaluates input in one step.
func Evaluate(input string) (float64, error) {
	node, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return node.Eval()
}

// parser is a minimal recursive-descent parser over the restricted grammar:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | primary
//	primary := NUMBER | '(' expr ')'
type parser struct {
	input string
	pos   int
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.peekOperator('+', '-')
		if !ok {
			return left, nil
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.peekOperator('*', '/')
		if !ok {
			return left, nil
		}
		p.pos++

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	if op, ok := p.peekOperator('+', '-'); ok {
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Unary{Op: op, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrUnsupportedExpression)
	}

	if p.input[p.pos] == '(' {
		p.pos++
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrUnsupportedExpression)
		}
		p.pos++
		return node, nil
	}

	return p.parseNumber()
}

func (p *parser) parseNumber() (Node, error) {
	start := p.pos
	seenDot := false
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			p.pos++
			continue
		}
		break
	}

	literal := p.input[start:p.pos]
	if literal == "" || literal == "." {
		return nil, fmt.Errorf("%w: expected a number at position %d", ErrUnsupportedExpression, start)
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid number %q", ErrUnsupportedExpression, literal)
	}
	return Literal{Value: value}, nil
}

// peekOperator reports the next non-space character if it is one of the given
// operators, without consuming it.
func (p *parser) peekOperator(ops ...byte) (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}

	c := p.input[p.pos]
	for _, op := range ops {
		if c == op {
			return c, true
		}
	}
	return 0, false
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && strings.ContainsRune(" \t\n\r", rune(p.input[p.pos])) {
		p.pos++
	}
}
