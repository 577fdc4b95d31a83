package llm

import "context"

// Provider is the text-completion service the question generator talks to.
// One Generate call is one outbound request; providers never retry.
type Provider interface {
	// Generate sends the request and returns the completion text.
	// When req.Schema is set the provider asks for native JSON output and
	// validates the text against the schema before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single completion call.
type Request struct {
	// System is the fixed instruction that sets the assistant persona.
	System string

	// Messages is the conversation. Test generation sends one user message
	// carrying the prompt template.
	Messages []Message

	// Schema optionally requests structured JSON output.
	Schema *Schema

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls sampling randomness (0.0 - 1.0).
	Temperature float64
}

// Message represents a single message in the conversation.
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

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, e.g. "grammar-set". Used as the schema
	// name for OpenAI and as the compiled-schema cache key.
	Name string

	// Description is sent to providers that accept one.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Text is the raw completion text. It may still carry wrapper markers
	// such as <json> tags or code fences; callers normalize it.
	Text string

	Usage Usage

	// Model is the model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string, temperature float64) Request {
	return Request{
		System:      system,
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		Temperature: temperature,
	}
}
