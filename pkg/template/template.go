// Package template resolves {{path}} placeholders in workflow configuration
// text against the run's variable store.
//
// Resolution is deliberately lenient: a placeholder that cannot be resolved
// is left verbatim in the output instead of raising an error, so partially
// resolvable configuration still produces a usable result.
package template

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// placeholderPattern matches {{path}} where path is one or more dot-separated
// identifiers, e.g. {{token}} or {{resp.body.token}}.
var placeholderPattern = regexp.MustCompile(`\{\{([\w.]+)\}\}`)

// Resolve replaces every {{path}} placeholder in text with the value found
// in variables. Single-segment paths are direct key lookups. Multi-segment
// paths descend into nested maps; a string encountered mid-descent is parsed
// as JSON so a raw response body can be addressed like {{resp.body.token}}.
// Unresolvable placeholders remain literal text.
func Resolve(text string, variables map[string]any) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := match[2 : len(match)-2]

		root, rest, nested := strings.Cut(path, ".")
		value, ok := variables[root]
		if !ok {
			return match
		}

		if nested {
			if value == nil {
				return match
			}

			value, ok = descend(value, rest)
			if !ok || value == nil {
				return match
			}
		}

		return Stringify(value)
	})
}

// ResolveValue applies Resolve to string values and passes every other type
// through unchanged.
func ResolveValue(value any, variables map[string]any) any {
	if text, ok := value.(string); ok {
		return Resolve(text, variables)
	}

	return value
}

// descend walks a dot-separated path through nested values. Maps are indexed
// by key; strings are parsed as JSON and, if that yields an object, the walk
// continues into the parsed result. Any other value ends the walk.
func descend(current any, path string) (any, bool) {
	for segment := range strings.SplitSeq(path, ".") {
		switch value := current.(type) {
		case map[string]any:
			next, ok := value[segment]
			if !ok {
				return nil, false
			}

			current = next
		case map[string]string:
			next, ok := value[segment]
			if !ok {
				return nil, false
			}

			current = next
		case string:
			var parsed map[string]any

			if err := json.Unmarshal([]byte(value), &parsed); err != nil {
				return nil, false
			}

			next, ok := parsed[segment]
			if !ok {
				return nil, false
			}

			current = next
		default:
			return nil, false
		}
	}

	return current, true
}

// Stringify renders a resolved value for substitution into text. Objects and
// arrays serialize to compact JSON; scalars are stringified directly.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any, map[string]string, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(encoded)
	default:
		return fmt.Sprint(v)
	}
}
