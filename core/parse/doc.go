// Package parse converts LLM-supplied strings into typed Go values.
// Tool-call arguments arrive as JSON text of varying quality; [ParseStringAs]
// handles primitives directly and repairs malformed JSON before giving up.
package parse
