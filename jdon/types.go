package jdon

import (
	"fmt"
	"math"
)

// Kind represents JDON value kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindUndefined
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value represents a JDON value. Numbers are IEEE-754 doubles and may
// carry NaN, Infinity, -Infinity and a sign-preserved negative zero.
// Objects keep members in insertion order with unique keys.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal bool
	numVal  float64
	strVal  string

	// Container values
	arrVal []*Value
	objVal []Member
}

// Member represents a key-value pair in an object.
type Member struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Undefined creates an undefined value.
func Undefined() *Value {
	return &Value{kind: KindUndefined}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Number creates a number value.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, numVal: v}
}

// String creates a string value.
func String(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Array creates an array value.
func Array(elems ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: elems}
}

// Object creates an object value from members. Keys are expected to be
// unique; use Set for last-write-wins insertion.
func Object(members ...Member) *Value {
	return &Value{kind: KindObject, objVal: members}
}

// Field creates a Member for use in Object construction.
func Field(key string, value *Value) Member {
	return Member{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// IsUndefined returns true if this is an undefined value.
func (v *Value) IsUndefined() bool {
	return v != nil && v.kind == KindUndefined
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("jdon: nil value")
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("jdon: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsNumber returns the number value.
func (v *Value) AsNumber() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("jdon: nil value")
	}
	if v.kind != KindNumber {
		return 0, fmt.Errorf("jdon: expected number, got %s", v.kind)
	}
	return v.numVal, nil
}

// AsString returns the string value.
func (v *Value) AsString() (string, error) {
	if v == nil {
		return "", fmt.Errorf("jdon: nil value")
	}
	if v.kind != KindString {
		return "", fmt.Errorf("jdon: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// Elems returns the array elements.
func (v *Value) Elems() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("jdon: nil value")
	}
	if v.kind != KindArray {
		return nil, fmt.Errorf("jdon: expected array, got %s", v.kind)
	}
	return v.arrVal, nil
}

// Members returns the object members.
func (v *Value) Members() ([]Member, error) {
	if v == nil {
		return nil, fmt.Errorf("jdon: nil value")
	}
	if v.kind != KindObject {
		return nil, fmt.Errorf("jdon: expected object, got %s", v.kind)
	}
	return v.objVal, nil
}

// Len returns the length of an array or object.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	default:
		return 0
	}
}

// Get returns a member value by key from an object, or nil.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	for _, m := range v.objVal {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Keys returns the object's keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.objVal))
	for i, m := range v.objVal {
		keys[i] = m.Key
	}
	return keys
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindArray {
		return nil, fmt.Errorf("jdon: not an array")
	}
	if i < 0 || i >= len(v.arrVal) {
		return nil, fmt.Errorf("jdon: index %d out of bounds (len=%d)", i, len(v.arrVal))
	}
	return v.arrVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets a member on an object, replacing an existing key in place.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindObject {
		panic("jdon: cannot set on non-object")
	}
	for i := range v.objVal {
		if v.objVal[i].Key == key {
			v.objVal[i].Value = val
			return
		}
	}
	v.objVal = append(v.objVal, Member{Key: key, Value: val})
}

// Append adds a value to an array.
func (v *Value) Append(val *Value) {
	if v.kind != KindArray {
		panic("jdon: cannot append to non-array")
	}
	v.arrVal = append(v.arrVal, val)
}

// ============================================================
// Equality
// ============================================================

// Equal reports deep structural equality. NaN compares equal to NaN, and
// 0 and -0 are distinct (compared by sign bit). Objects compare by member
// order as well as content.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull, KindUndefined:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindNumber:
		if math.IsNaN(a.numVal) && math.IsNaN(b.numVal) {
			return true
		}
		return math.Float64bits(a.numVal) == math.Float64bits(b.numVal)
	case KindString:
		return a.strVal == b.strVal
	case KindArray:
		if len(a.arrVal) != len(b.arrVal) {
			return false
		}
		for i := range a.arrVal {
			if !Equal(a.arrVal[i], b.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.objVal) != len(b.objVal) {
			return false
		}
		for i := range a.objVal {
			if a.objVal[i].Key != b.objVal[i].Key {
				return false
			}
			if !Equal(a.objVal[i].Value, b.objVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
