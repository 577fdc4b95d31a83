package questiongen

import (
	"log/slog"
	"time"
)

// Config controls the behavior of the Generator.
type Config struct {
	// Validators run in order on every parsed item; the first failure
	// drops the item. An empty chain accepts whatever parses.
	Validators []Validator

	// MaxAttempts bounds the model calls per generation cycle. New clamps
	// it to [1, MaxAttemptLimit].
	MaxAttempts int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxTokens is the token budget for one response. Zero leaves the
	// provider default.
	MaxTokens int

	// AttemptTimeout bounds a single model call. Zero disables it.
	AttemptTimeout time.Duration

	// CycleTimeout bounds the whole generation cycle. Zero disables it.
	CycleTimeout time.Duration

	// StructuredOutput asks providers for schema-constrained JSON instead
	// of relying on the prompt alone.
	StructuredOutput bool

	// Logger receives per-attempt diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators:     DefaultValidators(),
		MaxAttempts:    MaxAttemptLimit,
		Temperature:    0.5,
		MaxTokens:      8192,
		AttemptTimeout: 45 * time.Second,
		CycleTimeout:   2 * time.Minute,
	}
}
