package e2e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonv/internal/jsonvalue"
	"github.com/mcncl/jsonv/internal/parser"
)

// pipeline tokenizes, builds and returns the value graph for a document.
func pipeline(t *testing.T, doc string) *jsonvalue.Value {
	t.Helper()
	root, err := parser.ParseString(doc)
	require.NoError(t, err)
	value, err := jsonvalue.Build(root)
	require.NoError(t, err)
	return value
}

func TestEndToEnd_CanonicalOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already canonical",
			input:    `{"a":1,"b":[true,null,"x"]}`,
			expected: `{"a":1,"b":[true,null,"x"]}`,
		},
		{
			name:     "whitespace is stripped",
			input:    "{\n  \"a\": 1,\n  \"b\": [ true, null, \"x\" ]\n}",
			expected: `{"a":1,"b":[true,null,"x"]}`,
		},
		{
			name:     "number text preserved verbatim",
			input:    `[1.50, 1e3, -0.0]`,
			expected: `[1.50,1e3,-0.0]`,
		},
		{
			name:     "member order preserved",
			input:    `{"z": 1, "m": 2, "a": 3}`,
			expected: `{"z":1,"m":2,"a":3}`,
		},
		{
			name:     "strings re-escaped",
			input:    `{"note": "line\nbreak \"quoted\"", "path": "/etc"}`,
			expected: `{"note":"line\nbreak \"quoted\"","path":"\/etc"}`,
		},
		{
			name:     "empty and whitespace keys preserved",
			input:    `{"": 1, "  ": 2}`,
			expected: `{"":1,"  ":2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pipeline(t, tt.input).Serialize())
		})
	}
}

func TestEndToEnd_RoundTripStability(t *testing.T) {
	// Building, serializing, re-tokenizing and re-building must yield a
	// structurally equal graph.
	docs := []string{
		`{"id":12345,"config":{"enabled":true,"timeout_seconds":30,"features":["logging","metrics"],"rate_limits":{"per_second":100,"burst":150}},"users":[{"name":"Alice","roles":["admin","user"]},{"name":"Bob","roles":["user"]}],"deleted_at":null}`,
		`[[[1,2],[3,4]],[[5]],[]]`,
		`{"escapes":"\\ \" \n \r \t \f \b \/","unicode":"héllo"}`,
		`{"":1,"  ":2,"nested":{"":[{"":null}]}}`,
		`3.14159`,
		`"just a string"`,
		`true`,
		`null`,
	}

	for _, doc := range docs {
		first := pipeline(t, doc)
		second := pipeline(t, first.Serialize())

		assert.True(t, first.Equal(second), "round trip changed %s", doc)
		assert.Equal(t, first.Serialize(), second.Serialize(), "second pass must be a fixed point")
	}
}

func TestEndToEnd_DeepAccess(t *testing.T) {
	value := pipeline(t, `{"a":1,"b":[true,null,"x"]}`)

	length, err := value.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, length)

	b, err := value.Member("b")
	require.NoError(t, err)

	third, err := b.Element(2)
	require.NoError(t, err)
	s, err := third.AsString()
	require.NoError(t, err)
	assert.Equal(t, "x", s)
	assert.Equal(t, "2", third.Name())

	a, err := value.Member("a")
	require.NoError(t, err)
	n, err := a.AsInt()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEndToEnd_EmptyKeyIsAddressable(t *testing.T) {
	value := pipeline(t, `{"":1}`)

	ok, err := value.HasMember("")
	require.NoError(t, err)
	assert.True(t, ok)

	member, err := value.Member("")
	require.NoError(t, err)
	n, err := member.AsInt()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "", member.Name())
}

func TestEndToEnd_GraphIsSafeForConcurrentReads(t *testing.T) {
	value := pipeline(t, `{"numbers":[1,2,3,4,5],"label":"shared"}`)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = value.Serialize()
				numbers, err := value.Member("numbers")
				if err != nil {
					t.Error(err)
					return
				}
				for element := range numbers.Values() {
					if _, err := element.AsInt(); err != nil {
						t.Error(err)
						return
					}
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
