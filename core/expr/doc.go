// Package expr safely evaluates a tiny arithmetic expression grammar: the
// four basic operators, unary sign, parentheses, and decimal literals.
// Input first passes a strict character whitelist ([IsStrictExpression]),
// then a recursive-descent parser builds an immutable expression tree
// ([Node]) which is evaluated with the shared arithmetic primitives.
// Nothing outside this grammar is ever parsed or executed.
package expr
