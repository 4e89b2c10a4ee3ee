package llm

import "context"

// Provider defines the interface for LLM providers
// The generator only needs one operation: submit a structured request,
// receive plain prose back (or a typed failure)
type Provider interface {
	// Generate produces a single text completion for the request
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for generation
type GenerationRequest struct {
	Model        string
	SystemPrompt string
	InputArray   []map[string]any
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	// OutputText is the whitespace-trimmed prose returned by the model
	OutputText string

	// Usage carries token accounting when the provider reports it
	Usage *TokenUsage
}

// TokenUsage is the provider-neutral token accounting for one call
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}
