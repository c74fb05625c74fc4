// Package agent implements the calculator orchestration policy: the LLM
// tool-calling runtime always runs first, its free-form output is normalized
// into the uniform answer contract, and an opt-in deterministic fallback
// evaluates strict arithmetic expressions locally when the runtime fails.
package agent
