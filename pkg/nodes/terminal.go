package nodes

import (
	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/flowrun-io/flowrun/pkg/template"
)

func evaluateStart() models.NodeResult {
	return success(map[string]any{"message": "Workflow started"})
}

// evaluateEnd terminates a run. When a result_variable is configured its
// value is resolved with full dotted-path support, falling back to a direct
// key lookup when resolution leaves the placeholder untouched.
func evaluateEnd(data map[string]any, execCtx *models.ExecutionContext) models.NodeResult {
	resultLabel := configString(data, "result_label")
	if resultLabel == "" {
		resultLabel = "Result"
	}

	output := map[string]any{
		"message":      "Workflow completed",
		"result_label": resultLabel,
	}

	if resultVariable := configString(data, "result_variable"); resultVariable != "" {
		placeholder := "{{" + resultVariable + "}}"

		var result any = template.Resolve(placeholder, execCtx.Variables)
		if result == placeholder {
			result = execCtx.Variables[resultVariable]
		}

		output["result_variable"] = resultVariable
		output["result"] = result
	}

	return success(output)
}

// evaluateLoop is a placeholder: loop nodes report success without
// iterating. Repeated-subgraph execution is not implemented.
func evaluateLoop() models.NodeResult {
	return success(map[string]any{"loop_start": true})
}
