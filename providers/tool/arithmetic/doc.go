// Package arithmetic defines the four arithmetic primitives used by the
// calculator agent and exposes each of them as a typed LLM tool.
//
// The functions are intentionally small and strict because they are invoked
// by both the LLM tool-calling loop and the local deterministic fallback
// evaluator. All operations work on float64 with operand coercion via
// [ToFloat]; division guards against a zero divisor with [ErrDivisionByZero].
package arithmetic
