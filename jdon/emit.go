package jdon

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Options configures serialization.
type Options struct {
	// Pretty adds newline + two-space-per-depth layout for objects and
	// columnar arrays. A pretty top-level object drops its braces.
	Pretty bool

	// Columnar encodes arrays of objects that share one key set as one
	// segment per key instead of one object per element.
	Columnar bool
}

// DefaultOptions returns the default serialization options.
func DefaultOptions() Options {
	return Options{Columnar: true}
}

// Stringify converts a Value to JDON text with default options.
func Stringify(v *Value) string {
	return StringifyWithOptions(v, DefaultOptions())
}

// StringifyWithOptions converts a Value to JDON text. It is total: every
// Value has a rendering and no error paths exist.
func StringifyWithOptions(v *Value, opts Options) string {
	e := &emitter{opts: opts}
	return e.emit(v, 0)
}

type emitter struct {
	opts Options
}

func (e *emitter) emit(v *Value, depth int) string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.numVal)
	case KindString:
		if needsQuoting(v.strVal) {
			return `"` + escapeString(v.strVal) + `"`
		}
		return v.strVal
	case KindArray:
		return e.emitArray(v, depth)
	case KindObject:
		return e.emitObject(v, depth)
	default:
		return "null"
	}
}

// formatNumber renders the distinguished float variants by their literal
// tokens and everything else as the shortest round-trippable decimal.
// Negative zero keeps its sign.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0 && math.Signbit(f):
		return "-0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (e *emitter) emitArray(v *Value, depth int) string {
	elems := v.arrVal
	if len(elems) == 0 {
		return "[]"
	}

	if e.opts.Columnar {
		if keys := columnarKeys(elems); keys != nil {
			return e.emitColumnar(elems, keys, depth)
		}
	}

	parts := make([]string, 0, len(elems))
	for _, el := range elems {
		s := e.emit(el, depth+1)
		// A pipe inside an element's own rendering would corrupt the
		// enclosing separator on reparse; it is rewritten to a comma.
		// Lossy for multi-member object elements, kept for wire
		// compatibility.
		parts = append(parts, strings.ReplaceAll(s, "|", ","))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// columnarKeys returns the first element's keys in its own order when
// every element is an object over the same key set (order-insensitive),
// or nil when the array is not columnar-encodable.
func columnarKeys(elems []*Value) []string {
	first := elems[0]
	if first.Kind() != KindObject {
		return nil
	}
	keys := first.Keys()
	want := append([]string(nil), keys...)
	sort.Strings(want)

	for _, el := range elems[1:] {
		if el.Kind() != KindObject {
			return nil
		}
		got := el.Keys()
		if len(got) != len(want) {
			return nil
		}
		sort.Strings(got)
		for i := range got {
			if got[i] != want[i] {
				return nil
			}
		}
	}
	return keys
}

// emitColumnar renders one key:v1,v2,... segment per shared key. Cells
// are rendered compact and row-form; columnar and pretty formatting are
// suppressed below this level.
func (e *emitter) emitColumnar(elems []*Value, keys []string, depth int) string {
	cell := &emitter{}
	cols := make([]string, 0, len(keys))
	for _, key := range keys {
		cells := make([]string, 0, len(elems))
		for _, el := range elems {
			cells = append(cells, cell.emit(el.Get(key), 0))
		}
		cols = append(cols, key+":"+strings.Join(cells, ","))
	}

	if !e.opts.Pretty {
		return "[" + strings.Join(cols, "|") + "]"
	}

	var b strings.Builder
	b.WriteString("[")
	for i, col := range cols {
		if i > 0 {
			b.WriteString("|")
		}
		b.WriteString("\n")
		b.WriteString(indent(depth + 1))
		b.WriteString(col)
	}
	b.WriteString("\n")
	b.WriteString(indent(depth))
	b.WriteString("]")
	return b.String()
}

func (e *emitter) emitObject(v *Value, depth int) string {
	members := v.objVal
	if len(members) == 0 {
		return "{}"
	}

	pairs := make([]string, 0, len(members))
	for _, m := range members {
		pairs = append(pairs, m.Key+":"+e.emit(m.Value, depth+1))
	}

	if !e.opts.Pretty {
		return "{" + strings.Join(pairs, "|") + "}"
	}

	// A pretty top-level object drops the braces and stacks its pairs.
	if depth == 0 {
		return strings.Join(pairs, "|\n")
	}

	var b strings.Builder
	b.WriteString("{")
	b.WriteString(strings.Join(pairs, "|\n"+indent(depth)))
	b.WriteString("\n")
	b.WriteString(indent(depth - 1))
	b.WriteString("}")
	return b.String()
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
