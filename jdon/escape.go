package jdon

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Characters that force a string into quoted form: every JDON delimiter
// plus whitespace that would be trimmed away on reparse.
const quotedChars = ":|, {}[]\"'\n\t"

// needsQuoting reports whether a string must be emitted quoted and
// escaped to survive a round trip.
func needsQuoting(s string) bool {
	return strings.ContainsAny(s, quotedChars)
}

// escapeString escapes a string for quoted output. Control characters
// outside the named escapes become \u sequences with 4 lowercase hex
// digits.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

var unicodeEscape = regexp.MustCompile(`\\u([0-9a-fA-F]{4})`)

// Sentinel for protected backslashes during unescaping. A literal NUL in
// the escaped input would have been escaped to a \u sequence, so the sentinel
// cannot collide with escaper output.
const backslashSentinel = "\x00"

var simpleUnescaper = strings.NewReplacer(
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
	`\"`, `"`,
	`\'`, `'`,
)

// unescapeString resolves escape sequences inside a quoted literal.
// Escaped backslashes are substituted out first so that the backslash
// they produce is never mistaken for the start of another escape.
func unescapeString(s string) string {
	s = strings.ReplaceAll(s, `\\`, backslashSentinel)
	s = unicodeEscape.ReplaceAllStringFunc(s, func(m string) string {
		n, _ := strconv.ParseUint(m[2:], 16, 32)
		return string(rune(n))
	})
	s = simpleUnescaper.Replace(s)
	return strings.ReplaceAll(s, backslashSentinel, `\`)
}
