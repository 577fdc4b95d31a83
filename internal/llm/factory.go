package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/toeiz/internal/store"
)

// NewProvider creates a Provider from configuration.
// The base provider is wrapped as caller → timeout → logging → base, so
// a timed-out call is still recorded. eventRepo may be nil.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, &ErrConfiguration{Provider: cfg.Provider, Reason: "unknown LLM provider"}
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, eventRepo, logger)
	return WithTimeout(logged, cfg.Timeout), nil
}
