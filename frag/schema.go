package frag

import "strings"

// Ending indicates whether a schema tolerates trailing fields beyond its
// declared slots.
type Ending uint8

const (
	// EndClosed rejects any data fragment beyond the declared slots.
	EndClosed Ending = iota
	// EndOpen (descriptor ends with *) permits and ignores extra trailing
	// fragments.
	EndOpen
)

// String returns the ending name.
func (e Ending) String() string {
	switch e {
	case EndClosed:
		return "closed"
	case EndOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Item is one positional slot of a schema.
type Item struct {
	Type     ValueType
	Optional bool
}

// Schema is the compiled, validated form of a descriptor. It is immutable
// after Compile and safe for concurrent use.
type Schema struct {
	items  []Item
	ending Ending
	prefix string // mandatory-only rendering, e.g. "%s%d"
	source string // descriptor text as compiled
}

// Items returns a copy of the schema's slots in declaration order.
func (s *Schema) Items() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of declared slots, mandatory and optional.
func (s *Schema) Len() int {
	return len(s.items)
}

// Ending returns the schema's ending kind.
func (s *Schema) Ending() Ending {
	return s.ending
}

// Prefix returns the mandatory-only rendering of the schema. It is the
// pattern fragment written by Encode and matched by Decode; optional slots
// and the wildcard never appear in it.
func (s *Schema) Prefix() string {
	return s.prefix
}

// Descriptor returns the descriptor text the schema was compiled from.
func (s *Schema) Descriptor() string {
	return s.source
}

// String returns the descriptor text.
func (s *Schema) String() string {
	return s.source
}

// HasOptional reports whether the schema declares any optional slot.
func (s *Schema) HasOptional() bool {
	for _, it := range s.items {
		if it.Optional {
			return true
		}
	}
	return false
}

// MandatoryCount returns the number of mandatory slots.
func (s *Schema) MandatoryCount() int {
	n := 0
	for _, it := range s.items {
		if !it.Optional {
			n++
		}
	}
	return n
}

// renderPrefix builds the mandatory-only rendering of a slot list.
func renderPrefix(items []Item) string {
	var sb strings.Builder
	for _, it := range items {
		if it.Optional {
			break
		}
		if it.Type == TypeInt {
			sb.WriteString("%d")
		} else {
			sb.WriteString("%s")
		}
	}
	return sb.String()
}
