package frag

import (
	"fmt"
	"strings"
)

// Delimiter separates the pattern fragment and the data fragments of an
// encoded string. Field values are written unescaped, so a value containing
// the delimiter corrupts the encoding; keeping it out of values is the
// caller's responsibility.
const Delimiter = "__"

// EncodeErrorCode classifies encoding failures.
type EncodeErrorCode uint8

const (
	// ErrArgCountMismatch: the value count differs from the schema's slot
	// count. Optional slots still require a value when encoding; absence
	// exists only on decode.
	ErrArgCountMismatch EncodeErrorCode = iota
	// ErrTypeMismatch: a value's type disagrees with its slot, or a native
	// argument could not be converted to the slot's type.
	ErrTypeMismatch
)

// String returns the code name.
func (c EncodeErrorCode) String() string {
	switch c {
	case ErrArgCountMismatch:
		return "argument count mismatch"
	case ErrTypeMismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// EncodeError reports why a tuple failed to encode.
type EncodeError struct {
	Code EncodeErrorCode
	Slot int    // slot index for ErrTypeMismatch, -1 otherwise
	Msg  string // human-readable detail
}

func (e *EncodeError) Error() string {
	if e.Slot >= 0 {
		return fmt.Sprintf("frag: %s at slot %d: %s", e.Code, e.Slot, e.Msg)
	}
	return fmt.Sprintf("frag: %s: %s", e.Code, e.Msg)
}

// Encode serializes one value per schema slot into a fragstring.
//
// Every slot needs a value, optional ones included: the optional marking
// and the wildcard only affect decoding. The output is the schema's
// mandatory-only prefix followed by each value's text rendering, joined
// with the "__" delimiter. Integers render as base-10 signed decimal.
func Encode(schema *Schema, values []Value) (string, error) {
	if len(values) != len(schema.items) {
		return "", &EncodeError{
			Code: ErrArgCountMismatch,
			Slot: -1,
			Msg:  fmt.Sprintf("schema has %d slots, got %d values", len(schema.items), len(values)),
		}
	}

	var sb strings.Builder
	sb.WriteString(schema.prefix)
	for i, v := range values {
		if v.typ != schema.items[i].Type {
			return "", &EncodeError{
				Code: ErrTypeMismatch,
				Slot: i,
				Msg:  fmt.Sprintf("slot wants %s, value is %s", schema.items[i].Type, v.typ),
			}
		}
		sb.WriteString(Delimiter)
		sb.WriteString(v.text())
	}
	return sb.String(), nil
}
