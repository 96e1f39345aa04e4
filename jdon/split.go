package jdon

import "strings"

// ============================================================
// Top-Level Splitting
// ============================================================
//
// The parser never tokenizes JDON text; it carves spans at separators
// that sit outside every quoted string and every nested {...}/[...]
// region. Quote state is per quote character: the same character that
// opened a string closes it, and a backslash escapes the next character.
// An unterminated quote swallows the rest of the span, which keeps these
// functions total on malformed input.

// splitTopLevel splits s at every occurrence of sep that is at nesting
// depth zero and outside quoted strings. Segments are returned untrimmed;
// callers trim.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	inStr := false
	escaped := false
	var quote byte
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case quote:
				inStr = false
			}
			continue
		}
		switch c {
		case '"', '\'':
			inStr = true
			quote = c
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// splitPipes splits on top-level '|' for key:value pair separation.
// Interior empty segments are kept (pair parsing skips them); a final
// wholly-empty segment from a trailing pipe is dropped.
func splitPipes(s string) []string {
	parts := splitTopLevel(s, '|')
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}

// splitCommas splits on top-level ',' for list-item separation,
// discarding every segment that trims to empty.
func splitCommas(s string) []string {
	parts := splitTopLevel(s, ',')
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return kept
}

// findTopLevelColon returns the index of the first ':' at nesting depth
// zero outside quoted strings, or -1 if none exists.
func findTopLevelColon(s string) int {
	depth := 0
	inStr := false
	escaped := false
	var quote byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case quote:
				inStr = false
			}
			continue
		}
		switch c {
		case '"', '\'':
			inStr = true
			quote = c
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
