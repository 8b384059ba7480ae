package decode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONObject(t *testing.T) {
	obj, err := JSONObject([]byte(`{"name": "context7", "version": 2, "tags": ["a", "b"]}`))
	require.NoError(t, err)

	name, ok := obj.String("name")
	assert.True(t, ok)
	assert.Equal(t, "context7", name)

	// A number is not a string; the lookup fails without affecting others.
	_, ok = obj.String("version")
	assert.False(t, ok)

	tags, ok := obj.StringOrStrings("tags")
	assert.True(t, ok)
	assert.Equal(t, "a b", tags)
}

func TestJSONObjectMalformed(t *testing.T) {
	for _, input := range []string{`{ invalid json }`, `[1, 2]`, `null`, ``} {
		_, err := JSONObject([]byte(input))
		require.Error(t, err, "input %q", input)

		var perr *ParseError
		require.True(t, errors.As(err, &perr), "input %q", input)
		assert.Equal(t, FormatJSON, perr.Format)
	}
}

func TestObjectKeysSorted(t *testing.T) {
	obj, err := JSONObject([]byte(`{"zeta": 1, "alpha": 2, "mid": 3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, obj.Keys())
}

func TestObjectArrayAndNested(t *testing.T) {
	obj, err := JSONObject([]byte(`{"list": [{"a": 1}], "nested": {"b": "c"}, "str": "x"}`))
	require.NoError(t, err)

	items, ok := obj.Array("list")
	require.True(t, ok)
	assert.Len(t, items, 1)

	_, ok = obj.Array("str")
	assert.False(t, ok)

	nested, ok := obj.Object("nested")
	require.True(t, ok)
	b, _ := nested.String("b")
	assert.Equal(t, "c", b)

	_, ok = obj.Object("list")
	assert.False(t, ok)
}

func TestYAMLScalars(t *testing.T) {
	fields, err := YAMLScalars([]byte(`name: api-design
version: 1.10
description: |
  Multi-line: with a colon
  and a second line
tags: [a, b]
empty:
`))
	require.NoError(t, err)

	assert.Equal(t, "api-design", fields["name"])
	assert.Equal(t, "1.10", fields["version"])
	assert.Equal(t, "Multi-line: with a colon\nand a second line\n", fields["description"])
	assert.NotContains(t, fields, "tags")
	assert.NotContains(t, fields, "empty")
}

func TestYAMLScalarsEmptyDocument(t *testing.T) {
	for _, in := range []string{"", "\n", "# only a comment\n"} {
		fields, err := YAMLScalars([]byte(in))
		require.NoError(t, err, "input %q", in)
		assert.Empty(t, fields, "input %q", in)
	}
}

func TestYAMLScalarsMalformed(t *testing.T) {
	_, err := YAMLScalars([]byte("key: [unclosed\n  - : :"))
	require.Error(t, err)

	_, err = YAMLScalars([]byte("just a string"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, FormatYAML, perr.Format)
}

func TestYAMLLookup(t *testing.T) {
	doc, err := YAML([]byte("startCommand:\n  type: stdio\n  commandFunction: x\n"))
	require.NoError(t, err)

	v, ok := YAMLLookup(doc, "startCommand", "type")
	assert.True(t, ok)
	assert.Equal(t, "stdio", v)

	_, ok = YAMLLookup(doc, "startCommand", "missing")
	assert.False(t, ok)

	_, ok = YAMLLookup(doc, "startCommand")
	assert.False(t, ok, "mapping is not a scalar")
}
