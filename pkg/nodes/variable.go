package nodes

import (
	"slices"

	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/flowrun-io/flowrun/pkg/template"
)

// evaluateVariable resolves the configured value expression and assigns it
// to the named variable. Both the original and the resolved value are
// reported for traceability.
func evaluateVariable(data map[string]any, execCtx *models.ExecutionContext) models.NodeResult {
	name := configString(data, "name")
	original := data["value"]

	resolved := template.ResolveValue(original, execCtx.Variables)
	execCtx.Variables[name] = resolved

	names := make([]string, 0, len(execCtx.Variables))
	for key := range execCtx.Variables {
		names = append(names, key)
	}

	slices.Sort(names)

	return success(map[string]any{
		"variable":       name,
		"original":       original,
		"resolved":       resolved,
		"available_vars": names,
	})
}
