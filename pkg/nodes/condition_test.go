package nodes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/flowrun-io/flowrun/pkg/nodes"
)

func evaluateConditionNode(t *testing.T, data map[string]any, variables map[string]any) bool {
	t.Helper()

	execCtx := models.NewExecutionContext("wf-test", variables, nil)
	node := &models.Node{ID: "cond-1", Type: models.NodeTypeCondition, Data: data}

	result := nodes.Evaluate(context.Background(), node, execCtx)
	require.True(t, result.Success, "condition nodes always succeed")

	outcome, ok := result.Output["condition_result"].(bool)
	require.True(t, ok, "condition output must carry a boolean condition_result")

	return outcome
}

func TestConditionNode(t *testing.T) {
	t.Parallel()

	variables := map[string]any{"count": "5", "empty": "   ", "greeting": "hello world"}

	tests := []struct {
		name     string
		data     map[string]any
		expected bool
	}{
		{
			name:     "equals true",
			data:     map[string]any{"condition_type": "equals", "left": "{{count}}", "right": "5"},
			expected: true,
		},
		{
			name:     "equals false",
			data:     map[string]any{"condition_type": "equals", "left": "{{count}}", "right": "6"},
			expected: false,
		},
		{
			name:     "not_equals",
			data:     map[string]any{"condition_type": "not_equals", "left": "{{count}}", "right": "6"},
			expected: true,
		},
		{
			name:     "contains right in left",
			data:     map[string]any{"condition_type": "contains", "left": "{{greeting}}", "right": "world"},
			expected: true,
		},
		{
			name:     "contains missing substring",
			data:     map[string]any{"condition_type": "contains", "left": "{{greeting}}", "right": "mars"},
			expected: false,
		},
		{
			name:     "greater_than numeric",
			data:     map[string]any{"condition_type": "greater_than", "left": "10", "right": "{{count}}"},
			expected: true,
		},
		{
			name:     "greater_than non numeric operand is false not an error",
			data:     map[string]any{"condition_type": "greater_than", "left": "abc", "right": "1"},
			expected: false,
		},
		{
			name:     "less_than",
			data:     map[string]any{"condition_type": "less_than", "left": "2", "right": "{{count}}"},
			expected: true,
		},
		{
			name:     "less_than non numeric is false",
			data:     map[string]any{"condition_type": "less_than", "left": "2", "right": "xyz"},
			expected: false,
		},
		{
			name:     "is_empty trims whitespace",
			data:     map[string]any{"condition_type": "is_empty", "left": "{{empty}}"},
			expected: true,
		},
		{
			name:     "is_not_empty",
			data:     map[string]any{"condition_type": "is_not_empty", "left": "{{greeting}}"},
			expected: true,
		},
		{
			name:     "default condition type is equals",
			data:     map[string]any{"left": "a", "right": "a"},
			expected: true,
		},
		{
			name:     "numeric operands compare as resolved strings",
			data:     map[string]any{"condition_type": "equals", "left": float64(5), "right": "5"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, evaluateConditionNode(t, tt.data, variables))
		})
	}
}
