package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrConfiguration indicates the provider cannot be used at all, usually
// because a credential is missing. It is never worth retrying.
type ErrConfiguration struct {
	Provider string
	Reason   string
}

func (e *ErrConfiguration) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("LLM configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("LLM configuration error (%s): %s", e.Provider, e.Reason)
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema, or no content at all.
type ErrInvalidResponse struct {
	Text string
	Err  error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the remote call failed: network, auth
// rejection or a server fault.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// IsConfigurationError reports whether err is a setup failure.
func IsConfigurationError(err error) bool {
	var cfgErr *ErrConfiguration
	return errors.As(err, &cfgErr)
}

// IsServiceError reports whether err means the remote call itself failed,
// including a timed-out call.
func IsServiceError(err error) bool {
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
