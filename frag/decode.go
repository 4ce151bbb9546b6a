package frag

import (
	"strconv"
	"strings"
)

// Decode matches a fragstring against a schema and extracts its tuple.
//
// The text is split on the "__" delimiter; the first fragment is the
// pattern, the rest are data fragments consumed one per slot in schema
// order. Decoding is a yes/no classification: any mismatch reports
// ok=false, never an error.
//
// The pattern check has a deliberate asymmetry, kept for compatibility
// with existing encoders: a closed all-mandatory schema requires the
// pattern to equal the schema prefix exactly, but as soon as the schema is
// open-ended or has optional slots the check degrades to a starts-with
// test. A pattern that is a strict textual prefix of the declared
// rendering (even one written by an unrelated schema) is then accepted, so
// full disambiguation is not guaranteed. Similarly, a str slot accepts any
// fragment, including one another schema would have declared numeric; only
// int slots reject non-numeric text.
func Decode(schema *Schema, text string) (Tuple, bool) {
	fragments := strings.Split(text, Delimiter)

	pattern := fragments[0]
	data := fragments[1:]

	if schema.ending == EndOpen || schema.HasOptional() {
		if !strings.HasPrefix(pattern, schema.prefix) {
			return nil, false
		}
	} else if pattern != schema.prefix {
		return nil, false
	}

	ok := true
	tuple := make(Tuple, 0, len(schema.items))
	next := 0
	for _, it := range schema.items {
		var fragment string
		have := next < len(data)
		if have {
			fragment = data[next]
			next++
		}

		if !have {
			if it.Optional {
				tuple = append(tuple, absentField(it.Type))
				continue
			}
			// Missing mandatory field: keep consuming with a zero
			// placeholder so field order stays well-defined.
			ok = false
			if it.Type == TypeInt {
				tuple = append(tuple, intField(0))
			} else {
				tuple = append(tuple, strField(""))
			}
			continue
		}

		switch it.Type {
		case TypeStr:
			tuple = append(tuple, strField(fragment))
		case TypeInt:
			v, err := strconv.ParseInt(fragment, 10, 64)
			if err != nil {
				ok = false
				v = 0
			}
			tuple = append(tuple, intField(v))
		}
	}

	if schema.ending == EndClosed && next < len(data) {
		ok = false
	}

	if !ok {
		return nil, false
	}
	return tuple, true
}
