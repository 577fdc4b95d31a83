package questiongen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/toeiz/internal/llm"
)

// GenerationExhaustedError is returned when every attempt of a cycle
// produced zero usable items.
type GenerationExhaustedError struct {
	Kind     Kind
	Attempts int
	LastErr  error // last recoverable failure such as a *ParseError, nil if attempts only produced duplicates
}

func (e *GenerationExhaustedError) Error() string {
	msg := fmt.Sprintf("no usable %s items after %d attempts", e.Kind, e.Attempts)
	if e.LastErr != nil {
		msg += ": " + e.LastErr.Error()
	}
	return msg
}

func (e *GenerationExhaustedError) Unwrap() error { return e.LastErr }

// Result is the outcome of a generation cycle.
type Result[T any] struct {
	Items []T

	// Cached is true when the active test was served without a model call.
	Cached bool

	// Partial is true when fewer than the required items were obtained.
	// Warning then carries a message for the user.
	Partial bool
	Warning string

	// Attempts is the number of model calls made.
	Attempts int
}

// Generator produces question sets using an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
	logger   *slog.Logger
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	cfg.MaxAttempts = min(max(cfg.MaxAttempts, 1), MaxAttemptLimit)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{provider: provider, config: cfg, logger: logger}
}

// kindProfile carries what differs between the grammar and reading cycles.
type kindProfile[T any] struct {
	kind       Kind
	purpose    string
	prompt     string
	schema     *llm.Schema
	required   int
	historyCap int
	noun       string
	parse      func(string) ([]T, error)
	validate   func(Validator, T) *ValidationError
	key        func(T) string
}

var grammarProfile = kindProfile[GrammarItem]{
	kind:       KindGrammar,
	purpose:    llm.PurposeGrammarTest,
	prompt:     grammarPrompt,
	schema:     GrammarSetSchema,
	required:   RequiredGrammarItems,
	historyCap: MaxGrammarHistory,
	noun:       "questions",
	parse:      ParseGrammar,
	validate:   func(v Validator, q GrammarItem) *ValidationError { return v.ValidateGrammar(q) },
	key:        GrammarItem.Fingerprint,
}

var readingProfile = kindProfile[ReadingItem]{
	kind:       KindReading,
	purpose:    llm.PurposeReadingTest,
	prompt:     readingPrompt,
	schema:     ReadingSetSchema,
	required:   RequiredReadingItems,
	historyCap: MaxReadingHistory,
	noun:       "passages",
	parse:      ParseReading,
	validate:   func(v Validator, r ReadingItem) *ValidationError { return v.ValidateReading(r) },
	key:        ReadingItem.Fingerprint,
}

// GenerateGrammar returns the session's active grammar test, or generates a
// new one. On success the returned state holds the new test and updated
// history; on error it is the input state unchanged.
func (g *Generator) GenerateGrammar(ctx context.Context, state SessionState) (Result[GrammarItem], SessionState, error) {
	res, test, hist, err := generate(ctx, g, grammarProfile, state.Grammar, state.GrammarHistory)
	if err != nil {
		return res, state, err
	}
	state.Grammar, state.GrammarHistory = test, hist
	return res, state, nil
}

// GenerateReading is GenerateGrammar for reading passages.
func (g *Generator) GenerateReading(ctx context.Context, state SessionState) (Result[ReadingItem], SessionState, error) {
	res, test, hist, err := generate(ctx, g, readingProfile, state.Reading, state.ReadingHistory)
	if err != nil {
		return res, state, err
	}
	state.Reading, state.ReadingHistory = test, hist
	return res, state, nil
}

// outcomeKind classifies a single attempt.
type outcomeKind int

const (
	outcomeItems      outcomeKind = iota // at least one new unique item
	outcomeEmpty                         // nothing usable, try again
	outcomeFatal                         // abort the cycle
)

type attemptOutcome[T any] struct {
	kind  outcomeKind
	items []T
	err   error
}

func generate[T any](ctx context.Context, g *Generator, kp kindProfile[T], test TestState[T], history History) (Result[T], TestState[T], History, error) {
	if test.Active() {
		return Result[T]{Items: test.Items, Cached: true}, test, history, nil
	}

	if g.config.CycleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.CycleTimeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, kp.purpose)

	// working grows as items are accepted so later items, including ones
	// in the same response, are checked against earlier ones.
	working := history.Trim(-1)
	var accepted []T
	var lastErr error
	attempts := 0

	for attempts < g.config.MaxAttempts && len(accepted) < kp.required {
		attempts++
		out := runAttempt(ctx, g, kp, working)

		switch out.kind {
		case outcomeFatal:
			return Result[T]{Attempts: attempts}, test, history, fmt.Errorf("generate %s test: %w", kp.kind, out.err)
		case outcomeEmpty:
			lastErr = out.err
		case outcomeItems:
			accepted = append(accepted, out.items...)
			for _, it := range out.items {
				working = append(working, kp.key(it))
			}
		}

		g.logger.InfoContext(ctx, "generation attempt",
			"kind", kp.kind, "attempt", attempts,
			"new", len(out.items), "total", len(accepted), "required", kp.required)
	}

	if len(accepted) == 0 {
		return Result[T]{Attempts: attempts}, test, history, &GenerationExhaustedError{
			Kind: kp.kind, Attempts: attempts, LastErr: lastErr,
		}
	}

	if len(accepted) > kp.required {
		accepted = accepted[:kp.required]
	}

	// Only fingerprints of items actually served enter the history.
	next := history.Trim(-1)
	for _, it := range accepted {
		next = append(next, kp.key(it))
	}
	next = next.Trim(kp.historyCap)

	res := Result[T]{Items: accepted, Attempts: attempts}
	if len(accepted) < kp.required {
		res.Partial = true
		res.Warning = fmt.Sprintf("Only %d of %d %s could be generated.", len(accepted), kp.required, kp.noun)
		g.logger.WarnContext(ctx, "partial test generated",
			"kind", kp.kind, "items", len(accepted), "required", kp.required)
	}

	return res, TestState[T]{Items: accepted}, next, nil
}

// runAttempt makes one model call and turns the response into new unique
// items. Unusable output is recoverable; configuration, service and
// unexpected failures are fatal.
func runAttempt[T any](ctx context.Context, g *Generator, kp kindProfile[T], seen History) attemptOutcome[T] {
	if err := ctx.Err(); err != nil {
		return attemptOutcome[T]{kind: outcomeFatal, err: err}
	}

	callCtx := ctx
	if g.config.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.config.AttemptTimeout)
		defer cancel()
	}

	req := llm.UserPrompt(systemPrompt, kp.prompt, g.config.Temperature)
	req.MaxTokens = g.config.MaxTokens
	if g.config.StructuredOutput {
		req.Schema = kp.schema
	}

	resp, err := g.provider.Generate(callCtx, req)
	if err != nil {
		if isUnusableResponse(err) {
			g.logger.WarnContext(ctx, "unusable model response", "kind", kp.kind, "error", err)
			return attemptOutcome[T]{kind: outcomeEmpty, err: err}
		}
		return attemptOutcome[T]{kind: outcomeFatal, err: err}
	}

	parsed, err := kp.parse(Normalize(resp.Text))
	if err != nil {
		g.logger.WarnContext(ctx, "malformed model response", "kind", kp.kind, "error", err)
		return attemptOutcome[T]{kind: outcomeEmpty, err: err}
	}

	seen = seen.Trim(-1)
	var fresh []T
	for _, it := range parsed {
		if verr := firstFailure(g.config.Validators, kp, it); verr != nil {
			g.logger.WarnContext(ctx, "item rejected", "kind", kp.kind, "reason", verr.Error())
			continue
		}
		key := kp.key(it)
		if seen.Contains(key) {
			continue
		}
		seen = append(seen, key)
		fresh = append(fresh, it)
	}

	if len(fresh) == 0 {
		return attemptOutcome[T]{kind: outcomeEmpty}
	}
	return attemptOutcome[T]{kind: outcomeItems, items: fresh}
}

func firstFailure[T any](validators []Validator, kp kindProfile[T], it T) *ValidationError {
	for _, v := range validators {
		if verr := kp.validate(v, it); verr != nil {
			return verr
		}
	}
	return nil
}

// isUnusableResponse reports provider errors that mean the call worked
// but the text cannot be used.
func isUnusableResponse(err error) bool {
	var inv *llm.ErrInvalidResponse
	var mt *llm.ErrMaxTokensExceeded
	return errors.As(err, &inv) || errors.As(err, &mt)
}
