// Package answer normalizes free-form model output into the agent's uniform
// answer contract: numeric answers are extracted ([ExtractNumeric]) and
// rendered in float style ([FormatNumeric]); non-numeric text passes through
// to the caller unchanged.
package answer
