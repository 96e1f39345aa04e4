package jdon

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	gojson "github.com/goccy/go-json"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON text and JDON text. Decoding walks the JSON
// token stream instead of unmarshalling into map[string]interface{} so
// that object member order survives into the Value model. Encoding walks
// the Value directly for the same reason.
//
// JSON has no undefined, NaN or Infinity. On the way out these follow
// JSON.stringify semantics: NaN and the infinities become null, an
// undefined array element becomes null, and an object member holding
// undefined is dropped.

// JSONOptions configures JSON rendering in ToJSONTextWithOptions.
type JSONOptions struct {
	// Pretty indents the JSON output.
	Pretty bool

	// Indent is the indent width for pretty output (default 2).
	Indent int
}

// FromJSONText parses JSON text and renders it as pretty, columnar JDON.
// Invalid JSON fails with *ConversionError wrapping the decoder error.
func FromJSONText(jsonText string) (string, error) {
	v, err := decodeJSON(jsonText)
	if err != nil {
		return "", &ConversionError{Op: "decode JSON", Err: err}
	}
	return StringifyWithOptions(v, Options{Pretty: true, Columnar: true}), nil
}

// ToJSONText parses JDON text and renders it as compact JSON.
func ToJSONText(text string) (string, error) {
	return ToJSONTextWithOptions(text, JSONOptions{})
}

// ToJSONTextWithOptions parses JDON text and renders it as JSON. Parse
// and encode failures are wrapped in *ConversionError.
func ToJSONTextWithOptions(text string, opts JSONOptions) (string, error) {
	v, err := Parse(text)
	if err != nil {
		return "", &ConversionError{Op: "parse", Err: err}
	}

	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return "", &ConversionError{Op: "encode JSON", Err: err}
	}
	if !opts.Pretty {
		return buf.String(), nil
	}

	width := opts.Indent
	if width <= 0 {
		width = 2
	}
	var out bytes.Buffer
	if err := gojson.Indent(&out, buf.Bytes(), "", strings.Repeat(" ", width)); err != nil {
		return "", &ConversionError{Op: "indent JSON", Err: err}
	}
	return out.String(), nil
}

// ============================================================
// JSON Decoding (order-preserving)
// ============================================================

func decodeJSON(text string) (*Value, error) {
	dec := gojson.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Reject trailing non-whitespace after the first document.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected %v after JSON value", tok)
	}
	return v, nil
}

func decodeValue(dec *gojson.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *gojson.Decoder, tok gojson.Token) (*Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			obj := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing }
				return nil, err
			}
			return obj, nil

		case '[':
			arr := Array()
			for dec.More() {
				el, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(el)
			}
			if _, err := dec.Token(); err != nil { // closing ]
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)

	case bool:
		return Bool(t), nil

	case gojson.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return Number(f), nil

	case string:
		return String(t), nil

	case nil:
		return Null(), nil

	default:
		return nil, fmt.Errorf("unexpected JSON token %T", tok)
	}
}

// ============================================================
// JSON Encoding (order-preserving)
// ============================================================

func writeJSON(buf *bytes.Buffer, v *Value) error {
	switch v.Kind() {
	case KindNull, KindUndefined:
		buf.WriteString("null")

	case KindBool:
		if v.boolVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}

	case KindNumber:
		f := v.numVal
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			return nil
		}
		b, err := gojson.Marshal(f)
		if err != nil {
			return err
		}
		buf.Write(b)

	case KindString:
		b, err := gojson.Marshal(v.strVal)
		if err != nil {
			return err
		}
		buf.Write(b)

	case KindArray:
		buf.WriteByte('[')
		for i, el := range v.arrVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, el); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case KindObject:
		buf.WriteByte('{')
		first := true
		for _, m := range v.objVal {
			if m.Value.IsUndefined() {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			key, err := gojson.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, m.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
