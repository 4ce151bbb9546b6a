package frag

import (
	"fmt"
	"math"
)

// Format compiles the descriptor through the default registry, converts
// the native arguments to typed values, and encodes them.
//
// Str slots take a string or fmt.Stringer. Int slots take any Go integer
// kind; unsigned values above math.MaxInt64 are rejected rather than
// silently truncated.
func Format(descriptor string, args ...any) (string, error) {
	schema, err := DefaultRegistry.Compile(descriptor)
	if err != nil {
		return "", err
	}
	if len(args) != len(schema.items) {
		return "", &EncodeError{
			Code: ErrArgCountMismatch,
			Slot: -1,
			Msg:  fmt.Sprintf("schema has %d slots, got %d arguments", len(schema.items), len(args)),
		}
	}
	values := make([]Value, len(args))
	for i, arg := range args {
		v, err := coerce(schema.items[i].Type, arg, i)
		if err != nil {
			return "", err
		}
		values[i] = v
	}
	return Encode(schema, values)
}

// Parse compiles the descriptor through the default registry and decodes
// the text against it. A bad descriptor reports a non-match, like any
// other input that fails to decode.
func Parse(descriptor, text string) (Tuple, bool) {
	schema, err := DefaultRegistry.Compile(descriptor)
	if err != nil {
		return nil, false
	}
	return Decode(schema, text)
}

// coerce converts a native argument to the slot's value type.
func coerce(t ValueType, arg any, slot int) (Value, error) {
	mismatch := func(detail string) (Value, error) {
		return Value{}, &EncodeError{Code: ErrTypeMismatch, Slot: slot, Msg: detail}
	}

	switch t {
	case TypeStr:
		switch v := arg.(type) {
		case string:
			return Str(v), nil
		case fmt.Stringer:
			return Str(v.String()), nil
		}
		return mismatch(fmt.Sprintf("slot wants str, got %T", arg))

	case TypeInt:
		switch v := arg.(type) {
		case int64:
			return Int(v), nil
		case int:
			return Int(int64(v)), nil
		case int32:
			return Int(int64(v)), nil
		case int16:
			return Int(int64(v)), nil
		case int8:
			return Int(int64(v)), nil
		case uint64:
			if v > math.MaxInt64 {
				return mismatch(fmt.Sprintf("uint64 %d overflows int64", v))
			}
			return Int(int64(v)), nil
		case uint:
			if uint64(v) > math.MaxInt64 {
				return mismatch(fmt.Sprintf("uint %d overflows int64", v))
			}
			return Int(int64(v)), nil
		case uint32:
			return Int(int64(v)), nil
		case uint16:
			return Int(int64(v)), nil
		case uint8:
			return Int(int64(v)), nil
		}
		return mismatch(fmt.Sprintf("slot wants int, got %T", arg))
	}
	return mismatch(fmt.Sprintf("unknown slot type %d", t))
}
