package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowrun-io/flowrun/pkg/models"
)

func boolPtr(v bool) *bool { return &v }

func TestNavigatorStartNode(t *testing.T) {
	t.Parallel()

	nav := newNavigator(&models.Workflow{
		Nodes: []*models.Node{
			{ID: "a", Type: models.NodeTypeVariable},
			{ID: "b", Type: models.NodeTypeStart},
		},
	})

	start := nav.startNode()
	require.NotNil(t, start)
	assert.Equal(t, "b", start.ID)
}

func TestNavigatorStartNodeMissing(t *testing.T) {
	t.Parallel()

	nav := newNavigator(&models.Workflow{
		Nodes: []*models.Node{{ID: "a", Type: models.NodeTypeEnd}},
	})

	assert.Nil(t, nav.startNode())
}

func TestNavigatorNextNode(t *testing.T) {
	t.Parallel()

	wf := &models.Workflow{
		Nodes: []*models.Node{
			{ID: "start", Type: models.NodeTypeStart},
			{ID: "cond", Type: models.NodeTypeCondition},
			{ID: "yes", Type: models.NodeTypeVariable},
			{ID: "no", Type: models.NodeTypeVariable},
			{ID: "end", Type: models.NodeTypeEnd},
		},
		Edges: []*models.Edge{
			{Source: "start", Target: "cond"},
			{Source: "cond", Target: "yes", Branch: models.BranchTrue},
			{Source: "cond", Target: "no", Branch: models.BranchFalse},
			{Source: "yes", Target: "end"},
		},
	}
	nav := newNavigator(wf)

	tests := []struct {
		name     string
		nodeID   string
		outcome  *bool
		expected string
	}{
		{
			name:     "unconditional follows first edge",
			nodeID:   "start",
			expected: "cond",
		},
		{
			name:     "condition true picks true branch",
			nodeID:   "cond",
			outcome:  boolPtr(true),
			expected: "yes",
		},
		{
			name:     "condition false picks false branch",
			nodeID:   "cond",
			outcome:  boolPtr(false),
			expected: "no",
		},
		{
			name:     "outcome without branch edges falls back to first edge",
			nodeID:   "yes",
			outcome:  boolPtr(true),
			expected: "end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := nav.nextNode(tt.nodeID, tt.outcome)
			require.NotNil(t, next)
			assert.Equal(t, tt.expected, next.ID)
		})
	}
}

func TestNavigatorNoOutgoingEdges(t *testing.T) {
	t.Parallel()

	nav := newNavigator(&models.Workflow{
		Nodes: []*models.Node{{ID: "end", Type: models.NodeTypeEnd}},
	})

	assert.Nil(t, nav.nextNode("end", nil))
}
