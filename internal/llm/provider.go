// Package llm talks to the language model that generates the N3
// curriculum. Every call is single-turn: one prompt in, one JSON or
// free-text reply out. Providers for the supported backends implement
// Provider; the factory wraps the chosen one with retry and audit
// middleware.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one reply per request.
type Provider interface {
	// Generate sends the prompt and returns the reply. When the request
	// carries a Schema the reply content is JSON already validated
	// against it; otherwise the content is the raw text.
	Generate(ctx context.Context, req Request) (*Reply, error)

	// ModelID reports the resolved model identifier in use.
	ModelID() string
}

// Request is one generation call. The tutor never holds a conversation
// with the model, so there is a single user prompt rather than a
// message history.
type Request struct {
	// System sets the model's role. Empty means no system prompt.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema, when set, constrains the reply to JSON matching it.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0,1]. Zero value means deterministic.
	Temperature float64
}

// Schema names a JSON Schema the reply must satisfy. Name doubles as
// the structured-output identifier sent to the backend, kebab-case
// ("chapter-quiz").
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Reply is the model's output for one request.
type Reply struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage is the token count the backend reported.
	Usage Usage

	// Model is the model that actually served the request, which may be
	// more specific than the configured alias.
	Model string
}

// Usage is the token consumption of a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// resolveAlias maps a friendly model name ("gemini-flash") to the
// backend model ID. Unknown names pass through so exact IDs keep
// working.
func resolveAlias(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
