// Package utils contains small internal helpers shared across packages:
// a generic JSON POST helper for provider calls and string truncation for
// log output.
package utils
