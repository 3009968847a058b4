// Package nodes implements one evaluator per workflow node type. Evaluators
// receive the node's configuration bag and the run's execution context and
// always return a structured NodeResult; they never raise past the run loop.
package nodes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flowrun-io/flowrun/pkg/models"
)

// Evaluate dispatches a node to its evaluator. The node type set is closed;
// this switch is the single dispatch point for all of them.
func Evaluate(ctx context.Context, node *models.Node, execCtx *models.ExecutionContext) models.NodeResult {
	switch node.Type {
	case models.NodeTypeStart:
		return evaluateStart()
	case models.NodeTypeEnd:
		return evaluateEnd(node.Data, execCtx)
	case models.NodeTypeRequest:
		return evaluateRequest(ctx, node.Data, execCtx)
	case models.NodeTypeCondition:
		return evaluateCondition(node.Data, execCtx)
	case models.NodeTypeDelay:
		return evaluateDelay(ctx, node.Data)
	case models.NodeTypeVariable:
		return evaluateVariable(node.Data, execCtx)
	case models.NodeTypeScript:
		return evaluateScript(node.Data, execCtx)
	case models.NodeTypeLoop:
		return evaluateLoop()
	default:
		return failure(fmt.Sprintf("unknown node type: %s", node.Type))
	}
}

func success(output map[string]any) models.NodeResult {
	return models.NodeResult{Success: true, Output: output}
}

func failure(message string) models.NodeResult {
	return models.NodeResult{Success: false, Error: message}
}

// configString reads an optional string field from a node data bag.
func configString(data map[string]any, key string) string {
	value, _ := data[key].(string)

	return value
}

// asText stringifies a config value the way operand fields are compared:
// strings pass through, objects and arrays become compact JSON, nil is empty.
func asText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(encoded)
	default:
		return fmt.Sprint(v)
	}
}
