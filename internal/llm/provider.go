package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the generation collaborator. The rest
// of the app talks to the model only through Generate.
type Provider interface {
	// Generate sends one request and returns the model's structured
	// response. When the request carries a Schema, Content is JSON that
	// has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request describes one call to the model.
type Request struct {
	// System sets the model's role and output rules.
	System string

	// Messages is the conversation. Quiz generation is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, selects the provider's native structured-output
	// mechanism and validates the response against the definition.
	Schema *Schema

	// Attachment is an optional binary part (the source file for
	// file-mode generation). Providers that cannot carry the media type
	// fail with *ErrUnsupportedAttachment rather than silently dropping it.
	Attachment *Attachment

	// MaxTokens caps the response size.
	MaxTokens int

	// Temperature in [0,1]; zero value means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
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

// Attachment is a binary request part with its declared media type.
type Attachment struct {
	MediaType string
	Data      []byte
}

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema to the provider (tool name for Anthropic,
	// schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON (validated when a Schema was set).
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose labels the context so the event log can attribute requests
// (e.g. "quiz-gen").
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
