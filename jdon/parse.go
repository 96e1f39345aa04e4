package jdon

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Parse converts JDON text into a Value. Surrounding whitespace is
// ignored; empty input yields null.
//
// Parsing is permissive: stray delimiters, pairless segments and uneven
// columnar columns all degrade to best-effort values. The only fatal
// condition is a mismatched bracket pair, reported as *SyntaxError.
func Parse(text string) (*Value, error) {
	return parseText(strings.TrimSpace(text))
}

// parseText dispatches on the leading delimiter of an already-trimmed
// span.
func parseText(s string) (*Value, error) {
	if s == "" {
		return Null(), nil
	}

	switch s[0] {
	case '{':
		if s[len(s)-1] != '}' {
			return nil, &SyntaxError{Construct: "object", Text: s}
		}
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return Object(), nil
		}
		return parsePairs(inner)

	case '[':
		if s[len(s)-1] != ']' {
			return nil, &SyntaxError{Construct: "array", Text: s}
		}
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return Array(), nil
		}
		if strings.Contains(inner, "|") && strings.Contains(inner, ":") {
			return parseColumnar(inner)
		}
		return parseList(inner)
	}

	// Unbraced text with both separators is an implicit top-level object.
	if strings.Contains(s, "|") && strings.Contains(s, ":") {
		return parsePairs(s)
	}

	return parseValue(s)
}

// parsePairs assembles an object from pipe-delimited key:value segments.
// Blank segments and segments without a top-level colon are skipped;
// repeated keys follow last-write-wins.
func parsePairs(s string) (*Value, error) {
	obj := Object()
	for _, seg := range splitPipes(s) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		ci := findTopLevelColon(seg)
		if ci < 0 {
			continue
		}
		key := strings.TrimSpace(seg[:ci])
		val, err := parseValue(seg[ci+1:])
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	return obj, nil
}

// parseList parses a standard comma-separated element list. Elements
// that parse to undefined are dropped.
func parseList(s string) (*Value, error) {
	arr := Array()
	for _, seg := range splitCommas(s) {
		v, err := parseValue(seg)
		if err != nil {
			return nil, err
		}
		if v.kind == KindUndefined {
			continue
		}
		arr.Append(v)
	}
	return arr, nil
}

// parseColumnar inverts the columnar encoding: each pipe segment is one
// key:cells column, and the result is the transpose into row objects.
// The first column fixes the row count; shorter columns are backfilled
// with null.
func parseColumnar(s string) (*Value, error) {
	type column struct {
		key   string
		cells []*Value
	}
	var cols []column

	for _, seg := range splitPipes(s) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		ci := findTopLevelColon(seg)
		if ci < 0 {
			continue
		}
		col := column{key: strings.TrimSpace(seg[:ci])}
		for _, cell := range splitCommas(seg[ci+1:]) {
			v, err := parseValue(cell)
			if err != nil {
				return nil, err
			}
			col.cells = append(col.cells, v)
		}
		cols = append(cols, col)
	}

	arr := Array()
	if len(cols) == 0 {
		return arr, nil
	}

	rows := len(cols[0].cells)
	for i := 0; i < rows; i++ {
		row := Object()
		for _, col := range cols {
			if i < len(col.cells) {
				row.Set(col.key, col.cells[i])
			} else {
				row.Set(col.key, Null())
			}
		}
		arr.Append(row)
	}
	return arr, nil
}

var numberPattern = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?$`)

// parseValue parses a single scalar or recurses into a nested container.
func parseValue(s string) (*Value, error) {
	s = strings.TrimSpace(s)

	switch s {
	case "":
		return Null(), nil
	case "null":
		return Null(), nil
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "undefined":
		return Undefined(), nil
	case "NaN":
		return Number(math.NaN()), nil
	case "Infinity":
		return Number(math.Inf(1)), nil
	case "-Infinity":
		return Number(math.Inf(-1)), nil
	}

	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return String(unescapeString(s[1 : len(s)-1])), nil
		}
	}

	if s[0] == '{' || s[0] == '[' {
		return parseText(s)
	}

	if numberPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			// ParseFloat keeps the sign of a negative-zero literal.
			return Number(f), nil
		}
	}

	// Everything else, ISO-8601 timestamps included, is a bare string.
	return String(s), nil
}
