package formatter

import (
	"encoding/json"
)

type responseBuilder struct{}

// NewResponseBuilder creates a new response builder for formatting
// normalized responses
func NewResponseBuilder() *responseBuilder {
	return &responseBuilder{}
}

// BuildJSON serializes a normalized payload under its collection key.
func (rb *responseBuilder) BuildJSON(key string, payload any) []byte {
	b, _ := json.Marshal(map[string]any{key: payload})
	return b
}

// BuildErrorPayload serializes an error for a given call.
func (rb *responseBuilder) BuildErrorPayload(call, message string) []byte {
	b, _ := json.Marshal(map[string]any{
		"call":  call,
		"error": message,
	})
	return b
}
