package frag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, descriptor string) *Schema {
	t.Helper()
	schema, err := Compile(descriptor)
	require.NoError(t, err)
	return schema
}

func TestEncode(t *testing.T) {
	tests := []struct {
		descriptor string
		values     []Value
		want       string
	}{
		{"%s", []Value{Str("test")}, "%s__test"},
		{"%d", []Value{Int(42)}, "%d__42"},
		{"%d", []Value{Int(-7)}, "%d__-7"},
		{"%s%d", []Value{Str("test"), Int(42)}, "%s%d__test__42"},
		{"%d%s", []Value{Int(42), Str("test")}, "%d%s__42__test"},
		{"%s%s%d", []Value{Str("foo"), Str("bar"), Int(42)}, "%s%s%d__foo__bar__42"},
		{"%s", []Value{Str("")}, "%s__"},

		// Optional slots and the wildcard only affect decoding: every slot
		// still takes a value, and the prefix renders mandatory items only.
		{"%s%d?", []Value{Str("a"), Int(5)}, "%s__a__5"},
		{"%s%d?%s?", []Value{Str("a"), Int(5), Str("b")}, "%s__a__5__b"},
		{"%s%d*", []Value{Str("a"), Int(5)}, "%s%d__a__5"},
		{"%s%d?*", []Value{Str("a"), Int(5)}, "%s__a__5"},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			got, err := Encode(mustCompile(t, tt.descriptor), tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_ArgCountMismatch(t *testing.T) {
	schema := mustCompile(t, "%s%d")

	tests := [][]Value{
		nil,
		{Str("a")},
		{Str("a"), Int(1), Str("extra")},
	}
	for _, values := range tests {
		_, err := Encode(schema, values)
		var eerr *EncodeError
		require.True(t, errors.As(err, &eerr))
		assert.Equal(t, ErrArgCountMismatch, eerr.Code)
	}

	// Optional slots count toward the required length.
	_, err := Encode(mustCompile(t, "%s%d?"), []Value{Str("a")})
	var eerr *EncodeError
	require.True(t, errors.As(err, &eerr))
	assert.Equal(t, ErrArgCountMismatch, eerr.Code)
}

func TestEncode_TypeMismatch(t *testing.T) {
	tests := []struct {
		descriptor string
		values     []Value
		slot       int
	}{
		{"%d", []Value{Str("42")}, 0},
		{"%s", []Value{Int(42)}, 0},
		{"%s%d", []Value{Str("a"), Str("b")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			_, err := Encode(mustCompile(t, tt.descriptor), tt.values)
			var eerr *EncodeError
			require.True(t, errors.As(err, &eerr))
			assert.Equal(t, ErrTypeMismatch, eerr.Code)
			assert.Equal(t, tt.slot, eerr.Slot)
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	s := Str("foo")
	assert.Equal(t, TypeStr, s.Type())
	v, err := s.AsStr()
	require.NoError(t, err)
	assert.Equal(t, "foo", v)
	_, err = s.AsInt()
	assert.Error(t, err)

	i := Int(42)
	assert.Equal(t, TypeInt, i.Type())
	n, err := i.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	_, err = i.AsStr()
	assert.Error(t, err)
}

func BenchmarkEncode(b *testing.B) {
	schema, err := Compile("%s%d%s")
	if err != nil {
		b.Fatal(err)
	}
	values := []Value{Str("foo"), Int(42), Str("bar")}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(schema, values); err != nil {
			b.Fatal(err)
		}
	}
}
