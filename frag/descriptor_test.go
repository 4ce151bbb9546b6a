package frag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Valid(t *testing.T) {
	tests := []struct {
		descriptor string
		items      []Item
		ending     Ending
		prefix     string
	}{
		{"%s", []Item{{TypeStr, false}}, EndClosed, "%s"},
		{"%d", []Item{{TypeInt, false}}, EndClosed, "%d"},
		{"%s%d", []Item{{TypeStr, false}, {TypeInt, false}}, EndClosed, "%s%d"},
		{"%d%s", []Item{{TypeInt, false}, {TypeStr, false}}, EndClosed, "%d%s"},
		{"%s%s", []Item{{TypeStr, false}, {TypeStr, false}}, EndClosed, "%s%s"},
		{"%d%d", []Item{{TypeInt, false}, {TypeInt, false}}, EndClosed, "%d%d"},
		{"%s*", []Item{{TypeStr, false}}, EndOpen, "%s"},
		{"%d*", []Item{{TypeInt, false}}, EndOpen, "%d"},
		{"%s%d*", []Item{{TypeStr, false}, {TypeInt, false}}, EndOpen, "%s%d"},
		{"%s%d?", []Item{{TypeStr, false}, {TypeInt, true}}, EndClosed, "%s"},
		{"%s%d?%s?", []Item{{TypeStr, false}, {TypeInt, true}, {TypeStr, true}}, EndClosed, "%s"},
		{"%s%d?*", []Item{{TypeStr, false}, {TypeInt, true}}, EndOpen, "%s"},
		{"%d%d%s?", []Item{{TypeInt, false}, {TypeInt, false}, {TypeStr, true}}, EndClosed, "%d%d"},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			schema, err := Compile(tt.descriptor)
			require.NoError(t, err)
			assert.Equal(t, tt.items, schema.Items())
			assert.Equal(t, tt.ending, schema.Ending())
			assert.Equal(t, tt.prefix, schema.Prefix())
			assert.Equal(t, tt.descriptor, schema.Descriptor())
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	tests := []struct {
		descriptor string
		code       DescriptorErrorCode
	}{
		{"", ErrEmpty},
		{"%", ErrInvalidCharacter},
		{"%%", ErrInvalidCharacter},
		{"%f", ErrInvalidCharacter},
		{"%x", ErrInvalidCharacter},
		{"%s%x", ErrInvalidCharacter},
		{"%sx", ErrInvalidCharacter},
		{"%sxx", ErrInvalidCharacter},
		{"%s foo", ErrInvalidCharacter},
		{"%s ", ErrInvalidCharacter},
		{" %s", ErrInvalidCharacter},
		{"?", ErrInvalidCharacter},
		{"%s?", ErrLeadingOptional},
		{"%s?%d?", ErrLeadingOptional},
		{"%s?%d", ErrLeadingOptional},
		{"%s%d?%s", ErrMandatoryAfterOptional},
		{"%s%s?%d%d?", ErrMandatoryAfterOptional},
		{"*", ErrWildcardWithNoItems},
		{"*%s", ErrMisplacedWildcard},
		{"*%d", ErrMisplacedWildcard},
		{"%s*%d", ErrMisplacedWildcard},
		{"%s**", ErrMisplacedWildcard},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			schema, err := Compile(tt.descriptor)
			require.Nil(t, schema)
			require.Error(t, err)

			var derr *DescriptorError
			require.True(t, errors.As(err, &derr), "want *DescriptorError, got %T", err)
			assert.Equal(t, tt.code, derr.Code, "got %v", derr)
			assert.Equal(t, tt.descriptor, derr.Descriptor)
		})
	}
}

func TestCompile_ItemsIsACopy(t *testing.T) {
	schema, err := Compile("%s%d")
	require.NoError(t, err)

	items := schema.Items()
	items[0].Type = TypeInt

	assert.Equal(t, TypeStr, schema.Items()[0].Type)
}

func TestSchema_Accessors(t *testing.T) {
	schema, err := Compile("%s%d%s?*")
	require.NoError(t, err)

	assert.Equal(t, 3, schema.Len())
	assert.Equal(t, 2, schema.MandatoryCount())
	assert.True(t, schema.HasOptional())
	assert.Equal(t, EndOpen, schema.Ending())
	assert.Equal(t, "%s%d", schema.Prefix())
	assert.Equal(t, "%s%d%s?*", schema.String())

	closed, err := Compile("%d%d")
	require.NoError(t, err)
	assert.False(t, closed.HasOptional())
	assert.Equal(t, EndClosed, closed.Ending())
	assert.Equal(t, 2, closed.MandatoryCount())
}
