package nodes

import (
	"strconv"
	"strings"

	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/flowrun-io/flowrun/pkg/template"
)

// evaluateCondition compares two resolved operands. The node itself always
// succeeds; the boolean outcome travels in the output under condition_result
// for the navigator to pick a branch. Numeric comparisons with operands that
// fail to parse are false, not errors.
func evaluateCondition(data map[string]any, execCtx *models.ExecutionContext) models.NodeResult {
	conditionType := configString(data, "condition_type")
	if conditionType == "" {
		conditionType = "equals"
	}

	left := template.Resolve(asText(data["left"]), execCtx.Variables)
	right := template.Resolve(asText(data["right"]), execCtx.Variables)

	result := false

	switch conditionType {
	case "equals":
		result = left == right
	case "not_equals":
		result = left != right
	case "contains":
		result = strings.Contains(left, right)
	case "greater_than":
		result = compareNumeric(left, right, func(l, r float64) bool { return l > r })
	case "less_than":
		result = compareNumeric(left, right, func(l, r float64) bool { return l < r })
	case "is_empty":
		result = strings.TrimSpace(left) == ""
	case "is_not_empty":
		result = strings.TrimSpace(left) != ""
	}

	return success(map[string]any{"condition_result": result})
}

func compareNumeric(left, right string, compare func(l, r float64) bool) bool {
	l, err := strconv.ParseFloat(strings.TrimSpace(left), 64)
	if err != nil {
		return false
	}

	r, err := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil {
		return false
	}

	return compare(l, r)
}
