package utils

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		if got := TruncateString("hello", 10); got != "hello" {
			t.Errorf("expected %q, got %q", "hello", got)
		}
	})

	t.Run("exact length passes through", func(t *testing.T) {
		if got := TruncateString("hello", 5); got != "hello" {
			t.Errorf("expected %q, got %q", "hello", got)
		}
	})

	t.Run("long strings are truncated with a suffix", func(t *testing.T) {
		got := TruncateString("hello world", 5)
		if !strings.HasPrefix(got, "hello...") {
			t.Errorf("expected a truncated prefix, got %q", got)
		}
		if !strings.Contains(got, "total: 11 chars") {
			t.Errorf("expected the total length in the suffix, got %q", got)
		}
	})

	t.Run("non-positive maxLen falls back to the default", func(t *testing.T) {
		long := strings.Repeat("x", DefaultMaxStringLength+10)
		got := TruncateString(long, 0)
		if len(got) >= len(long) {
			t.Errorf("expected truncation at the default length")
		}
	})
}
