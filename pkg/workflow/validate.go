package workflow

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/flowrun-io/flowrun/pkg/nodes"
)

var (
	ErrNoStartNode        = errors.New("workflow has no start node")
	ErrMultipleStartNodes = errors.New("workflow has more than one start node")
	ErrDuplicateNodeID    = errors.New("duplicate node id")
	ErrDanglingEdge       = errors.New("edge references unknown node")
)

var structValidator = validator.New()

// Validate checks a workflow definition before execution: struct-level
// constraints, exactly one start node, unique node ids, edge endpoints that
// resolve, and per-type node config schemas. The engine itself only checks
// for a start node at run entry; the rest of this is the pre-run surface
// callers are expected to apply before invoking Execute.
func Validate(wf *models.Workflow) error {
	if err := structValidator.Struct(wf); err != nil {
		return fmt.Errorf("invalid workflow definition: %w", err)
	}

	ids := make(map[string]bool, len(wf.Nodes))
	startCount := 0

	for _, node := range wf.Nodes {
		if ids[node.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, node.ID)
		}

		ids[node.ID] = true

		if node.Type == models.NodeTypeStart {
			startCount++
		}

		if err := nodes.ValidateConfig(node.Type, node.Data); err != nil {
			return fmt.Errorf("node %s: %w", node.ID, err)
		}
	}

	if startCount == 0 {
		return ErrNoStartNode
	}

	if startCount > 1 {
		return ErrMultipleStartNodes
	}

	for _, edge := range wf.Edges {
		if !ids[edge.Source] {
			return fmt.Errorf("%w: source %s", ErrDanglingEdge, edge.Source)
		}

		if !ids[edge.Target] {
			return fmt.Errorf("%w: target %s", ErrDanglingEdge, edge.Target)
		}
	}

	return nil
}
