package models

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// ExecutionContext is the mutable per-run state: the variable store and the
// accumulating trace. It is created fresh for each run, owned exclusively by
// that run's loop, and never shared across runs.
type ExecutionContext struct {
	ID            string         `json:"id"`
	WorkflowID    string         `json:"workflow_id"`
	Variables     map[string]any `json:"variables"`
	ExecutionLog  []StepRecord   `json:"execution_log"`
	CurrentNodeID string         `json:"current_node_id,omitempty"`
}

// NewExecutionContext seeds the variable store from the definition's
// variables merged with caller-supplied input variables; input values win on
// key collision.
func NewExecutionContext(workflowID string, initial, input map[string]any) *ExecutionContext {
	variables := make(map[string]any, len(initial)+len(input))
	maps.Copy(variables, initial)
	maps.Copy(variables, input)

	return &ExecutionContext{
		ID:           "exec-" + uuid.New().String()[:8],
		WorkflowID:   workflowID,
		Variables:    variables,
		ExecutionLog: make([]StepRecord, 0),
	}
}

// StepRecord is one entry in the append-only execution trace.
type StepRecord struct {
	NodeID     string    `json:"node_id"`
	NodeType   NodeType  `json:"node_type"`
	Success    bool      `json:"success"`
	Output     any       `json:"output,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

// NodeResult is the structured outcome of a single node evaluation.
// Evaluators always return a NodeResult; they never raise past the run loop.
type NodeResult struct {
	Success    bool
	Output     map[string]any
	Error      string
	DurationMS int64
}

// ExecutionResult is the outcome of a whole run, returned to the caller with
// the full trace and the variable snapshot at the point of termination.
type ExecutionResult struct {
	Success         bool           `json:"success"`
	Error           string         `json:"error,omitempty"`
	FailedNodeID    string         `json:"failed_node_id,omitempty"`
	ExecutionLog    []StepRecord   `json:"execution_log"`
	OutputVariables map[string]any `json:"output_variables"`
}
