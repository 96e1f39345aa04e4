package jdon

import "fmt"

// SyntaxError reports malformed bracket pairing: an object or array
// opener without its matching closer. All other irregular input is
// handled permissively and never produces a SyntaxError.
type SyntaxError struct {
	Construct string // "object" or "array"
	Text      string // the offending span
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("jdon: malformed %s: %q", e.Construct, snippet(e.Text))
}

// ConversionError reports a failure translating to or from JSON,
// wrapping the underlying cause.
type ConversionError struct {
	Op  string
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("jdon: %s: %v", e.Op, e.Err)
}

// Unwrap supports errors.Is and errors.As on the cause.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// snippet truncates long spans for error messages.
func snippet(s string) string {
	const max = 40
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
