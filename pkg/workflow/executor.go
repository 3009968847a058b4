// Package workflow drives the execution of a workflow definition: it walks
// the graph one node at a time, delegates each node to its evaluator and
// accumulates the execution trace.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/flowrun-io/flowrun/pkg/nodes"
	"github.com/flowrun-io/flowrun/pkg/otelhelper"
)

// maxIterations is the hard ceiling on steps per run, guarding against
// cycles with no terminating edge.
const maxIterations = 1000

// Executor runs a single workflow definition. The definition is treated as
// immutable; all mutable state lives in the per-run ExecutionContext.
type Executor struct {
	workflow *models.Workflow
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures an Executor.
type Option func(*Executor)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) { e.logger = logger }
}

// WithTracer enables one span per run and one per node.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Executor) { e.tracer = tracer }
}

func NewExecutor(wf *models.Workflow, opts ...Option) *Executor {
	executor := &Executor{
		workflow: wf,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(executor)
	}

	return executor
}

// Execute runs the workflow to completion and returns the outcome with the
// full trace and the variable snapshot at the point of termination. A run
// never returns a partial trace: every executed node has a record, success
// or failure.
func (e *Executor) Execute(ctx context.Context, inputVariables map[string]any) *models.ExecutionResult {
	execCtx := models.NewExecutionContext(e.workflow.ID, e.workflow.Variables, inputVariables)

	logger := e.logger.With("workflow_id", e.workflow.ID, "execution_id", execCtx.ID)
	logger.InfoContext(ctx, "Starting execution of workflow")

	if e.tracer != nil {
		var span trace.Span

		ctx, span = otelhelper.StartSpan(ctx, e.tracer, "workflow.execute",
			attribute.String(otelhelper.WorkflowIDKey, e.workflow.ID),
			attribute.String(otelhelper.ExecutionIDKey, execCtx.ID),
		)
		defer span.End()
	}

	nav := newNavigator(e.workflow)

	current := nav.startNode()
	if current == nil {
		logger.ErrorContext(ctx, "No start node found")

		return &models.ExecutionResult{
			Success:         false,
			Error:           "No start node found",
			ExecutionLog:    execCtx.ExecutionLog,
			OutputVariables: execCtx.Variables,
		}
	}

	for iteration := 0; current != nil; iteration++ {
		if iteration >= maxIterations {
			logger.ErrorContext(ctx, "Iteration limit exceeded", "limit", maxIterations, "node_id", current.ID)

			return failed(execCtx, current.ID, fmt.Sprintf("iteration limit exceeded after %d steps", maxIterations))
		}

		execCtx.CurrentNodeID = current.ID
		stepLogger := logger.With("node_id", current.ID, "node_type", current.Type)
		stepLogger.DebugContext(ctx, "Executing node")

		result := e.evaluateNode(ctx, current, execCtx)

		execCtx.ExecutionLog = append(execCtx.ExecutionLog, models.StepRecord{
			NodeID:     current.ID,
			NodeType:   current.Type,
			Success:    result.Success,
			Output:     result.Output,
			Error:      result.Error,
			DurationMS: result.DurationMS,
			Timestamp:  time.Now().UTC(),
		})

		if !result.Success {
			stepLogger.ErrorContext(ctx, "Node execution failed", "error", result.Error)

			return failed(execCtx, current.ID, result.Error)
		}

		// Reaching an end node terminates the run; its outgoing edges, if
		// any, are never followed.
		if current.Type == models.NodeTypeEnd {
			break
		}

		var outcome *bool

		if current.Type == models.NodeTypeCondition && result.Output != nil {
			if value, ok := result.Output["condition_result"].(bool); ok {
				outcome = &value
			}
		}

		current = nav.nextNode(current.ID, outcome)
	}

	logger.InfoContext(ctx, "Completed execution of workflow", "steps", len(execCtx.ExecutionLog))

	return &models.ExecutionResult{
		Success:         true,
		ExecutionLog:    execCtx.ExecutionLog,
		OutputVariables: execCtx.Variables,
	}
}

// evaluateNode wraps a single evaluator call with timing and, when enabled,
// a trace span.
func (e *Executor) evaluateNode(ctx context.Context, node *models.Node, execCtx *models.ExecutionContext) models.NodeResult {
	var span trace.Span

	if e.tracer != nil {
		ctx, span = otelhelper.StartSpan(ctx, e.tracer, "workflow.node",
			attribute.String(otelhelper.NodeIDKey, node.ID),
			attribute.String(otelhelper.NodeTypeKey, string(node.Type)),
		)
	}

	started := time.Now()
	result := nodes.Evaluate(ctx, node, execCtx)

	if result.DurationMS == 0 {
		result.DurationMS = time.Since(started).Milliseconds()
	}

	if span != nil {
		if !result.Success {
			otelhelper.SetError(span, fmt.Errorf("node %s failed: %s", node.ID, result.Error))
		}

		span.End()
	}

	return result
}

func failed(execCtx *models.ExecutionContext, nodeID, message string) *models.ExecutionResult {
	return &models.ExecutionResult{
		Success:         false,
		Error:           message,
		FailedNodeID:    nodeID,
		ExecutionLog:    execCtx.ExecutionLog,
		OutputVariables: execCtx.Variables,
	}
}
