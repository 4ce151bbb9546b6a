// Package frag implements fragstrings, a compact self-describing text
// encoding for tuples of strings and 64-bit integers.
//
// A fragstring packs a descriptor prefix plus delimited fields into a
// single string:
//
//	%s%d__foo__42
//
// which makes it useful anywhere one string must both describe and carry a
// small tuple of primitives: log lines, composite cache keys, tags.
//
// # Descriptors
//
// A descriptor declares the slots of a tuple, left to right:
//
//	%s    mandatory string
//	%d    mandatory int64
//	%s?   optional string (decode only; may be absent)
//	%d?   optional int64
//	*     final character only: extra trailing fields are permitted
//
// Mandatory slots must precede all optional ones, the first slot is always
// mandatory, and * requires at least one slot before it.
//
// # Wire format
//
// The encoded string is the mandatory-only rendering of the descriptor
// followed by one field per slot, all joined with the two-character
// delimiter "__". Fields are not escaped: a field value containing "__"
// corrupts the encoding, and keeping the delimiter out of values is the
// caller's responsibility.
//
// # Usage
//
//	schema, err := frag.Compile("%s%d")
//	s, err := frag.Encode(schema, []frag.Value{frag.Str("foo"), frag.Int(42)})
//	// s == "%s%d__foo__42"
//
//	tuple, ok := frag.Decode(schema, s)
//	// ok == true, tuple.StrAt(0) == "foo", tuple.IntAt(1) == 42
//
// Format and Parse are one-shot convenience wrappers that compile
// descriptors through a shared cache:
//
//	s, err := frag.Format("%s%d", "foo", 42)
//	tuple, ok := frag.Parse("%s%d", s)
//
// Decoding is a classification, not a fallible computation: Decode and
// Parse report a non-match with ok=false and never return an error.
package frag
