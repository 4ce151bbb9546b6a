package frag

import (
	"fmt"
	"strconv"
)

// ValueType represents the declared type of a tuple slot.
type ValueType uint8

const (
	TypeStr ValueType = iota
	TypeInt
)

// String returns the type name.
func (t ValueType) String() string {
	switch t {
	case TypeStr:
		return "str"
	case TypeInt:
		return "int"
	default:
		return "unknown"
	}
}

// Value is one typed input value for encoding.
type Value struct {
	typ    ValueType
	strVal string
	intVal int64
}

// Str creates a string value.
func Str(v string) Value {
	return Value{typ: TypeStr, strVal: v}
}

// Int creates an integer value.
func Int(v int64) Value {
	return Value{typ: TypeInt, intVal: v}
}

// Type returns the value type.
func (v Value) Type() ValueType {
	return v.typ
}

// AsStr returns the string value.
func (v Value) AsStr() (string, error) {
	if v.typ != TypeStr {
		return "", fmt.Errorf("frag: expected str, got %s", v.typ)
	}
	return v.strVal, nil
}

// AsInt returns the integer value.
func (v Value) AsInt() (int64, error) {
	if v.typ != TypeInt {
		return 0, fmt.Errorf("frag: expected int, got %s", v.typ)
	}
	return v.intVal, nil
}

// text returns the wire rendering of the value.
func (v Value) text() string {
	if v.typ == TypeInt {
		return strconv.FormatInt(v.intVal, 10)
	}
	return v.strVal
}

// Field is one decoded tuple slot. A field for an optional slot may be
// absent; mandatory fields are always present.
type Field struct {
	typ     ValueType
	present bool
	strVal  string
	intVal  int64
}

// strField creates a present string field.
func strField(v string) Field {
	return Field{typ: TypeStr, present: true, strVal: v}
}

// intField creates a present integer field.
func intField(v int64) Field {
	return Field{typ: TypeInt, present: true, intVal: v}
}

// absentField creates an absent field of the given type.
func absentField(t ValueType) Field {
	return Field{typ: t}
}

// Type returns the declared type of the slot this field was decoded for.
func (f Field) Type() ValueType {
	return f.typ
}

// Present reports whether the field carried a value. Only fields decoded
// for optional slots can be absent.
func (f Field) Present() bool {
	return f.present
}

// AsStr returns the string value of a present str field.
func (f Field) AsStr() (string, error) {
	if !f.present {
		return "", fmt.Errorf("frag: field is absent")
	}
	if f.typ != TypeStr {
		return "", fmt.Errorf("frag: expected str, got %s", f.typ)
	}
	return f.strVal, nil
}

// AsInt returns the integer value of a present int field.
func (f Field) AsInt() (int64, error) {
	if !f.present {
		return 0, fmt.Errorf("frag: field is absent")
	}
	if f.typ != TypeInt {
		return 0, fmt.Errorf("frag: expected int, got %s", f.typ)
	}
	return f.intVal, nil
}

// Tuple is an ordered sequence of decoded fields, one per schema slot.
type Tuple []Field

// StrAt returns the string value at position i, or "" if the field is
// absent, out of range, or not a string.
func (t Tuple) StrAt(i int) string {
	if i < 0 || i >= len(t) {
		return ""
	}
	v, _ := t[i].AsStr()
	return v
}

// IntAt returns the integer value at position i, or 0 if the field is
// absent, out of range, or not an integer.
func (t Tuple) IntAt(i int) int64 {
	if i < 0 || i >= len(t) {
		return 0
	}
	v, _ := t[i].AsInt()
	return v
}
