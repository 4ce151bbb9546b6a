package frag

import "fmt"

// DescriptorErrorCode classifies descriptor compilation failures.
type DescriptorErrorCode uint8

const (
	// ErrEmpty: the descriptor is the empty string.
	ErrEmpty DescriptorErrorCode = iota
	// ErrInvalidCharacter: a character outside the grammar, including a %
	// not followed by s or d.
	ErrInvalidCharacter
	// ErrMandatoryAfterOptional: a mandatory item after an optional one;
	// optional items must form a contiguous suffix.
	ErrMandatoryAfterOptional
	// ErrLeadingOptional: the first item is optional.
	ErrLeadingOptional
	// ErrMisplacedWildcard: * anywhere but the final character.
	ErrMisplacedWildcard
	// ErrWildcardWithNoItems: * with no item before it.
	ErrWildcardWithNoItems
)

// String returns the code name.
func (c DescriptorErrorCode) String() string {
	switch c {
	case ErrEmpty:
		return "empty descriptor"
	case ErrInvalidCharacter:
		return "invalid character"
	case ErrMandatoryAfterOptional:
		return "mandatory item after optional"
	case ErrLeadingOptional:
		return "first item is optional"
	case ErrMisplacedWildcard:
		return "misplaced wildcard"
	case ErrWildcardWithNoItems:
		return "wildcard with no items"
	default:
		return "unknown"
	}
}

// DescriptorError reports why a descriptor failed to compile.
type DescriptorError struct {
	Code       DescriptorErrorCode
	Descriptor string
	Pos        int // byte offset of the offending character
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("frag: %s in descriptor %q at offset %d", e.Code, e.Descriptor, e.Pos)
}

// Compile parses a descriptor into a Schema.
//
// The grammar is a single left-to-right pass:
//
//	descriptor := item+ ('*')?
//	item       := '%' ('s' | 'd') ('?')?
//
// At least one item is required, the first item must be mandatory, no
// mandatory item may follow an optional one, and * is only valid as the
// final character with at least one item before it. Any violation returns
// a *DescriptorError; on success the Schema is immutable and shareable.
func Compile(descriptor string) (*Schema, error) {
	if descriptor == "" {
		return nil, &DescriptorError{Code: ErrEmpty, Descriptor: descriptor}
	}

	fail := func(code DescriptorErrorCode, pos int) (*Schema, error) {
		return nil, &DescriptorError{Code: code, Descriptor: descriptor, Pos: pos}
	}

	var items []Item
	ending := EndClosed
	seenOptional := false

	n := len(descriptor)
	for i := 0; i < n; {
		switch descriptor[i] {
		case '%':
			if i+1 >= n {
				return fail(ErrInvalidCharacter, i)
			}
			var typ ValueType
			switch descriptor[i+1] {
			case 's':
				typ = TypeStr
			case 'd':
				typ = TypeInt
			default:
				return fail(ErrInvalidCharacter, i)
			}
			i += 2
			optional := false
			if i < n && descriptor[i] == '?' {
				optional = true
				i++
			}
			if optional {
				if len(items) == 0 {
					return fail(ErrLeadingOptional, 0)
				}
				seenOptional = true
			} else if seenOptional {
				return fail(ErrMandatoryAfterOptional, i-2)
			}
			items = append(items, Item{Type: typ, Optional: optional})

		case '*':
			if i != n-1 {
				return fail(ErrMisplacedWildcard, i)
			}
			if len(items) == 0 {
				return fail(ErrWildcardWithNoItems, i)
			}
			ending = EndOpen
			i++

		default:
			return fail(ErrInvalidCharacter, i)
		}
	}

	return &Schema{
		items:  items,
		ending: ending,
		prefix: renderPrefix(items),
		source: descriptor,
	}, nil
}
