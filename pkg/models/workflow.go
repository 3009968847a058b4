// Package models defines the core domain models for graph-based workflow execution.
package models

// NodeType identifies the behavior of a workflow node.
type NodeType string

const (
	NodeTypeStart     NodeType = "start"
	NodeTypeEnd       NodeType = "end"
	NodeTypeRequest   NodeType = "request"
	NodeTypeCondition NodeType = "condition"
	NodeTypeDelay     NodeType = "delay"
	NodeTypeVariable  NodeType = "variable"
	NodeTypeScript    NodeType = "script"
	NodeTypeLoop      NodeType = "loop"
)

// Branch discriminators for edges leaving a condition node.
const (
	BranchTrue  = "true"
	BranchFalse = "false"
)

// Node represents one step in a workflow graph. Data is a type-specific
// configuration bag; its shape per type is described by the node config
// schemas in pkg/nodes.
type Node struct {
	ID   string         `json:"id"   validate:"required"`
	Type NodeType       `json:"type" validate:"required,oneof=start end request condition delay variable script loop"`
	Data map[string]any `json:"data"`
}

// Edge is a directed connection between two nodes. Branch is consulted only
// when the source node is a condition node; an edge without a branch is the
// unconditional successor.
type Edge struct {
	Source string `json:"source"           validate:"required"`
	Target string `json:"target"           validate:"required"`
	Branch string `json:"branch,omitempty" validate:"omitempty,oneof=true false"`
}

// Workflow is an externally supplied workflow definition. It is treated as
// immutable for the duration of a run.
type Workflow struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"      validate:"required"`
	Nodes     []*Node        `json:"nodes"     validate:"required,min=1,dive"`
	Edges     []*Edge        `json:"edges"     validate:"dive"`
	Variables map[string]any `json:"variables"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
