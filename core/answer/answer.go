package answer

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches a signed decimal substring inside free-form text.
var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ExtractNumeric extracts a numeric value from model output when present.
// The trimmed text is first parsed as a single numeric literal; failing that,
// the last signed-decimal substring wins. The rightmost number is treated as
// authoritative because models tend to state intermediate values before the
// final answer. This is a heuristic, not a guaranteed-correct parse: a
// restated operand after the true result would be misread.
func ExtractNumeric(text string) (float64, bool) {
	candidate := strings.TrimSpace(text)
	if candidate == "" {
		return 0, false
	}

	if value, err := strconv.ParseFloat(candidate, 64); err == nil {
		return value, true
	}

	matches := numberPattern.FindAllString(candidate, -1)
	if len(matches) == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(matches[len(matches)-1], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// FormatNumeric renders a numeric answer in the uniform float-style output
// contract: integral values carry an explicit fractional digit (20 -> "20.0")
// so callers cannot tell whether the model or the fallback produced the value.
func FormatNumeric(value float64) string {
	formatted := strconv.FormatFloat(value, 'g', -1, 64)
	if !strings.ContainsAny(formatted, ".eE") && formatted != "+Inf" && formatted != "-Inf" && formatted != "NaN" {
		formatted += ".0"
	}
	return formatted
}
