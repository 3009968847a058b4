package nodes

import (
	"fmt"
	"strings"

	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/xeipuuv/gojsonschema"
)

// headerEntrySchema describes one entry of the list-form header config.
var headerEntrySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"key":     map[string]any{"type": "string"},
		"value":   map[string]any{"type": "string"},
		"enabled": map[string]any{"type": "boolean"},
	},
}

// configSchemas holds a JSON schema per node type for its data bag. The run
// loop never consults these; they back the pre-run validation surface used
// by callers.
var configSchemas = map[models.NodeType]map[string]any{
	models.NodeTypeStart: {"type": "object"},
	models.NodeTypeEnd: {
		"type": "object",
		"properties": map[string]any{
			"result_variable": map[string]any{"type": "string"},
			"result_label":    map[string]any{"type": "string"},
		},
	},
	models.NodeTypeRequest: {
		"type":     "object",
		"required": []any{"url"},
		"properties": map[string]any{
			"url": map[string]any{"type": "string"},
			"method": map[string]any{
				"type": "string",
				"enum": []any{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS", "get", "post", "put", "patch", "delete", "head", "options"},
			},
			"headers": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "object"},
					map[string]any{"type": "array", "items": headerEntrySchema},
				},
			},
			"custom_headers":  map[string]any{"type": "array", "items": headerEntrySchema},
			"body":            map[string]any{"type": "string"},
			"custom_body":     map[string]any{"type": "string"},
			"output_variable": map[string]any{"type": "string"},
		},
	},
	models.NodeTypeCondition: {
		"type": "object",
		"properties": map[string]any{
			"condition_type": map[string]any{
				"type": "string",
				"enum": []any{"equals", "not_equals", "contains", "greater_than", "less_than", "is_empty", "is_not_empty"},
			},
			"left":  map[string]any{},
			"right": map[string]any{},
		},
	},
	models.NodeTypeDelay: {
		"type": "object",
		"properties": map[string]any{
			"delay_ms": map[string]any{"type": "number", "minimum": 0},
		},
	},
	models.NodeTypeVariable: {
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "minLength": 1},
			"value": map[string]any{},
		},
	},
	models.NodeTypeScript: {
		"type": "object",
		"properties": map[string]any{
			"script": map[string]any{"type": "string"},
		},
	},
	models.NodeTypeLoop: {"type": "object"},
}

// ValidateConfig checks a node's data bag against the schema for its type.
func ValidateConfig(nodeType models.NodeType, data map[string]any) error {
	schema, ok := configSchemas[nodeType]
	if !ok {
		return fmt.Errorf("unknown node type: %s", nodeType)
	}

	if data == nil {
		data = map[string]any{}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(data))
	if err != nil {
		return err
	}

	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}

		return fmt.Errorf("invalid %s node config: %s", nodeType, strings.Join(messages, "; "))
	}

	return nil
}
