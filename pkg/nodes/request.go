package nodes

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flowrun-io/flowrun/pkg/models"
	"github.com/flowrun-io/flowrun/pkg/template"
)

const requestTimeout = 30 * time.Second

// evaluateRequest issues an HTTP call with templated URL, headers and body.
// Transport failures are reported as a failed result, never as a raised
// error. Success is any response status below 400.
func evaluateRequest(ctx context.Context, data map[string]any, execCtx *models.ExecutionContext) models.NodeResult {
	started := time.Now()

	method := strings.ToUpper(configString(data, "method"))
	if method == "" {
		method = http.MethodGet
	}

	url := template.Resolve(configString(data, "url"), execCtx.Variables)
	headers := buildHeaders(data, execCtx.Variables)
	body := resolveBody(data, execCtx.Variables)

	if body != "" && !hasContentType(headers) {
		headers["Content-Type"] = "application/json"
	}

	// Only methods that conventionally carry a body get one attached.
	var requestBody io.Reader
	if body != "" && (method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch) {
		requestBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		return timedFailure("failed to create request: "+err.Error(), started)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{Timeout: requestTimeout}

	resp, err := client.Do(req)
	if err != nil {
		return timedFailure("request failed: "+err.Error(), started)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return timedFailure("failed to read response: "+err.Error(), started)
	}

	elapsed := time.Since(started).Milliseconds()

	responseData := map[string]any{
		"status_code": resp.StatusCode,
		"headers":     headerMap(resp.Header),
		"body":        string(respBody),
		"time_ms":     elapsed,
		// Recorded for diagnosability: exactly what was sent after resolution.
		"request_url":     url,
		"request_headers": headers,
	}

	// The full response object becomes available to all subsequent nodes.
	if outputVariable := configString(data, "output_variable"); outputVariable != "" {
		execCtx.Variables[outputVariable] = responseData
	}

	result := models.NodeResult{
		Success:    resp.StatusCode < 400,
		Output:     responseData,
		DurationMS: elapsed,
	}
	if !result.Success {
		result.Error = "HTTP " + resp.Status
	}

	return result
}

// buildHeaders accepts both the map form {"Key": "value"} and the list form
// [{"key": ..., "value": ..., "enabled": ...}], resolving each value, then
// merges in override headers from custom_headers (override wins).
func buildHeaders(data map[string]any, variables map[string]any) map[string]string {
	headers := make(map[string]string)

	switch raw := data["headers"].(type) {
	case map[string]any:
		for key, value := range raw {
			headers[key] = template.Resolve(asText(value), variables)
		}
	case []any:
		for _, entry := range raw {
			header, ok := entry.(map[string]any)
			if !ok {
				continue
			}

			key := strings.TrimSpace(configString(header, "key"))

			enabled := true
			if flag, ok := header["enabled"].(bool); ok {
				enabled = flag
			}

			if key == "" || !enabled {
				continue
			}

			headers[key] = template.Resolve(configString(header, "value"), variables)
		}
	}

	if custom, ok := data["custom_headers"].([]any); ok {
		for _, entry := range custom {
			header, ok := entry.(map[string]any)
			if !ok {
				continue
			}

			key := strings.TrimSpace(configString(header, "key"))
			if key == "" {
				continue
			}

			headers[key] = template.Resolve(configString(header, "value"), variables)
		}
	}

	return headers
}

// resolveBody prefers a non-blank custom_body override over the node's
// configured body; either is passed through the resolver.
func resolveBody(data map[string]any, variables map[string]any) string {
	if customBody := configString(data, "custom_body"); strings.TrimSpace(customBody) != "" {
		return template.Resolve(customBody, variables)
	}

	if body := configString(data, "body"); body != "" {
		return template.Resolve(body, variables)
	}

	return ""
}

func hasContentType(headers map[string]string) bool {
	for key := range headers {
		if strings.EqualFold(key, "Content-Type") {
			return true
		}
	}

	return false
}

func headerMap(header http.Header) map[string]any {
	result := make(map[string]any, len(header))
	for key := range header {
		result[key] = header.Get(key)
	}

	return result
}

func timedFailure(message string, started time.Time) models.NodeResult {
	return models.NodeResult{
		Success:    false,
		Error:      message,
		DurationMS: time.Since(started).Milliseconds(),
	}
}
