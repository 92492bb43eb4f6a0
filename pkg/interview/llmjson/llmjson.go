// Package llmjson extracts JSON payloads from LLM chat responses, which are
// frequently wrapped in markdown fences or surrounding prose.
package llmjson

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Clean strips markdown fences and surrounding text, returning the best-guess
// JSON payload. It keeps everything between the first '{' or '[' and the
// matching last '}' or ']'.
func Clean(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	// Prefer whichever opens first; the response might be an object or an array
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		if end := strings.LastIndex(response, "]"); end > arrStart {
			return response[arrStart : end+1]
		}
	}
	if objStart >= 0 {
		if end := strings.LastIndex(response, "}"); end > objStart {
			return response[objStart : end+1]
		}
	}
	return response
}

// Unmarshal cleans the response and decodes it into v.
func Unmarshal(response string, v interface{}) error {
	cleaned := Clean(response)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("parse llm json: %w", err)
	}
	return nil
}
