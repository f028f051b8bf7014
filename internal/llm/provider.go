package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider abstracts the text-completion oracle behind the interview
// coach. Implementations exist for Anthropic, OpenAI and Gemini; tests
// use MockProvider.
type Provider interface {
	// Generate sends one request to the model. When the request carries
	// a Schema, the provider uses its native structured-output mode and
	// the returned Content is schema-validated JSON. Without a Schema
	// the Content is the raw text of the completion.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation to complete. Most interview calls
	// send one user message containing the formatted history.
	Messages []Message

	// Schema, when set, constrains the response to a JSON structure.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one entry in the request conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case (used as the structured
	// output name where providers require one).
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw completion text.
	Content json.RawMessage

	// Usage reports token counts for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns the response content as plain text. JSON string content
// is unquoted; anything else is returned verbatim with surrounding
// whitespace trimmed.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(r.Content))
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
