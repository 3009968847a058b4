package nodes

import (
	"strings"

	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/flowrun-io/flowrun/pkg/template"
)

// evaluateScript runs a deliberately minimal, non-Turing-complete script:
// newline-separated "name = value" assignments. Lines starting with '#' or
// lacking '=' are ignored, and each right-hand side goes through the
// resolver before assignment. This is derived-variable computation, not a
// general scripting language.
func evaluateScript(data map[string]any, execCtx *models.ExecutionContext) models.NodeResult {
	script := configString(data, "script")
	assigned := make(map[string]any)

	for line := range strings.SplitSeq(strings.TrimSpace(script), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		resolved := template.Resolve(strings.TrimSpace(value), execCtx.Variables)
		execCtx.Variables[name] = resolved
		assigned[name] = resolved
	}

	return success(assigned)
}
