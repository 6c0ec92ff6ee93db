package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonv/internal/errors"
	"github.com/mcncl/jsonv/internal/node"
)

func TestBuild_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    *node.Node
		expected Type
	}{
		{"number", node.Number("n", "12.5"), TypeNumber},
		{"string", node.String("s", "hi"), TypeString},
		{"boolean", node.Boolean("b", "true"), TypeBool},
		{"null", node.Null("nothing"), TypeNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Build(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.Type())
			assert.Equal(t, tt.input.Tag, v.Name(), "root name comes from the node's own tag")
		})
	}
}

func TestBuild_NumberTextIsNotParsed(t *testing.T) {
	// Construction must succeed even for numeric text no accessor could
	// parse; the failure is deferred to the access.
	v, err := Build(node.Number("n", "not-even-a-number"))
	require.NoError(t, err)

	_, err = v.AsFloat64()
	assert.True(t, errors.IsType(err, errors.ErrorTypeNumericParse))
}

func TestBuild_MalformedBooleanLiteral(t *testing.T) {
	tests := []string{"True", "FALSE", "1", "", "yes"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := Build(node.Boolean("flag", text))
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeMalformedLit), "got %v", err)
			assert.Contains(t, err.Error(), `"flag"`)
		})
	}
}

func TestBuild_UnknownNodeType(t *testing.T) {
	_, err := Build(&node.Node{Type: "datetime", Tag: "created_at", Text: "2023-05-20"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnknownNode))
	assert.Contains(t, err.Error(), `"created_at"`)
	assert.Contains(t, err.Error(), `"datetime"`)
}

func TestBuild_FailureInsideSubtreeAbortsWholeBuild(t *testing.T) {
	tree := node.Object("root",
		node.String("ok", "fine"),
		node.Array("items",
			node.Number("", "1"),
			node.Boolean("", "maybe"), // malformed
		),
	)

	v, err := Build(tree)
	assert.Nil(t, v, "no partial graph on failure")
	assert.True(t, errors.IsType(err, errors.ErrorTypeMalformedLit))
}

func TestBuild_ArrayElementNamesArePositional(t *testing.T) {
	// Children deliberately share the same structural tag, as tree formats
	// that flatten arrays produce them.
	tree := node.Array("entries",
		&node.Node{Type: node.TypeString, Tag: "entry", Text: "a"},
		&node.Node{Type: node.TypeString, Tag: "entry", Text: "b"},
		&node.Node{Type: node.TypeString, Tag: "entry", Text: "c"},
	)

	v, err := Build(tree)
	require.NoError(t, err)

	for i, expected := range []string{"0", "1", "2"} {
		element, err := v.Element(i)
		require.NoError(t, err)
		assert.Equal(t, expected, element.Name())
	}
}

func TestBuild_ExplicitNameOverridesTag(t *testing.T) {
	// A tree format may carry the true member key in an override attribute
	// while every node shares a generic tag.
	tree := node.Object("root",
		&node.Node{Type: node.TypeString, Tag: "item", Name: "title", Text: "The Title"},
		&node.Node{Type: node.TypeString, Tag: "item", Name: "author", Text: "The Author"},
	)

	v, err := Build(tree)
	require.NoError(t, err)

	title, err := v.Member("title")
	require.NoError(t, err)
	s, err := title.AsString()
	require.NoError(t, err)
	assert.Equal(t, "The Title", s)

	ok, err := v.HasMember("item")
	require.NoError(t, err)
	assert.False(t, ok, "the structural tag is not a key when an override is present")
}

func TestBuild_DuplicateKeysLastWriteWins(t *testing.T) {
	tree := node.Object("root",
		node.Number("a", "1"),
		node.String("b", "middle"),
		node.Number("a", "2"),
	)

	v, err := Build(tree)
	require.NoError(t, err)

	length, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, length)

	a, err := v.Member("a")
	require.NoError(t, err)
	n, err := a.AsInt()
	require.NoError(t, err)
	assert.Equal(t, 2, n, "later value overwrites the earlier one")

	// The overwritten key keeps its original position.
	var keys []string
	for k := range v.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestBuild_NestedDocument(t *testing.T) {
	tree := node.Object("root",
		node.Number("a", "1"),
		node.Array("b",
			node.Boolean("", "true"),
			node.Null(""),
			node.String("", "x"),
		),
	)

	v, err := Build(tree)
	require.NoError(t, err)

	length, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, length)

	b, err := v.Member("b")
	require.NoError(t, err)
	third, err := b.Element(2)
	require.NoError(t, err)
	s, err := third.AsString()
	require.NoError(t, err)
	assert.Equal(t, "x", s)
}
