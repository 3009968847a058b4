package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowrun-io/flowrun/pkg/template"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	variables := map[string]any{
		"name":  "alice",
		"count": float64(5),
		"flag":  true,
		"resp": map[string]any{
			"status_code": 200,
			"body":        `{"token": "abc123", "user": {"id": 7}}`,
			"tags":        []any{"a", "b"},
		},
		"raw":  "not json",
		"none": nil,
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple replacement",
			input:    "hello {{name}}",
			expected: "hello alice",
		},
		{
			name:     "number stringified without exponent",
			input:    "count={{count}}",
			expected: "count=5",
		},
		{
			name:     "boolean stringified",
			input:    "{{flag}}",
			expected: "true",
		},
		{
			name:     "missing key left verbatim",
			input:    "hello {{missing}}",
			expected: "hello {{missing}}",
		},
		{
			name:     "nested map descent",
			input:    "{{resp.status_code}}",
			expected: "200",
		},
		{
			name:     "descent through JSON string body",
			input:    "token={{resp.body.token}}",
			expected: "token=abc123",
		},
		{
			name:     "deep descent through JSON string body",
			input:    "{{resp.body.user.id}}",
			expected: "7",
		},
		{
			name:     "missing nested segment left verbatim",
			input:    "{{resp.body.missing}}",
			expected: "{{resp.body.missing}}",
		},
		{
			name:     "non indexable value aborts resolution",
			input:    "{{resp.status_code.more}}",
			expected: "{{resp.status_code.more}}",
		},
		{
			name:     "unparsable string aborts descent",
			input:    "{{raw.field}}",
			expected: "{{raw.field}}",
		},
		{
			name:     "nil root with nested path left verbatim",
			input:    "{{none.field}}",
			expected: "{{none.field}}",
		},
		{
			name:     "object serializes to compact JSON",
			input:    "{{resp.tags}}",
			expected: `["a","b"]`,
		},
		{
			name:     "placeholders resolve independently",
			input:    "{{name}} and {{missing}} and {{count}}",
			expected: "alice and {{missing}} and 5",
		},
		{
			name:     "no placeholders passes through",
			input:    "plain text",
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, template.Resolve(tt.input, variables))
		})
	}
}

func TestResolveFullObjectSerialization(t *testing.T) {
	t.Parallel()

	variables := map[string]any{
		"obj": map[string]any{"a": float64(1)},
	}

	assert.Equal(t, `{"a":1}`, template.Resolve("{{obj}}", variables))
}

func TestResolveValue(t *testing.T) {
	t.Parallel()

	variables := map[string]any{"name": "alice"}

	assert.Equal(t, "alice", template.ResolveValue("{{name}}", variables))

	// Non-string input passes through unchanged.
	assert.Equal(t, 42, template.ResolveValue(42, variables))
	assert.Equal(t, map[string]any{"k": "v"}, template.ResolveValue(map[string]any{"k": "v"}, variables))
	assert.Nil(t, template.ResolveValue(nil, variables))
}
