package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/toeiz/internal/store"
)

type recordingEventRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{
		Text:  "<json>{}</json>",
		Usage: Usage{InputTokens: 12, OutputTokens: 34},
	})
	p := WithLogging(mock, "mock", repo, discardLogger())

	ctx := WithPurpose(context.Background(), PurposeGrammarTest)
	if _, err := p.Generate(ctx, UserPrompt("be a teacher", "make a test", 0.5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != PurposeGrammarTest {
		t.Errorf("purpose = %q, want %q", ev.Purpose, PurposeGrammarTest)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.ResponseBody != "<json>{}</json>" {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
	if !strings.Contains(ev.RequestBody, "[system]\nbe a teacher") || !strings.Contains(ev.RequestBody, "[user]\nmake a test") {
		t.Errorf("request body missing prompt parts: %q", ev.RequestBody)
	}
}

func TestWithLogging_RecordsFailureAndKeepsError(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	p := WithLogging(mock, "mock", repo, discardLogger())

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Fatalf("expected one failed event, got %+v", repo.events)
	}
	if repo.events[0].Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", repo.events[0].Purpose)
	}
}

func TestWithLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingEventRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, "mock", repo, discardLogger())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("text = %q, want ok", resp.Text)
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout_CancelsSlowCall(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 20*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
	if !IsServiceError(err) {
		t.Fatal("a timed-out call should classify as a service error")
	}
	if p.ModelID() != "blocking" {
		t.Fatalf("ModelID = %q, want blocking", p.ModelID())
	}
}

func TestWithTimeout_ZeroIsPassThrough(t *testing.T) {
	mock := NewMockProvider()
	if got := WithTimeout(mock, 0); got != Provider(mock) {
		t.Fatal("expected the provider to be returned unwrapped")
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("mock", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = "mock"
		p, err := NewProvider(context.Background(), cfg, nil, discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "mock" {
			t.Fatalf("ModelID = %q, want mock", p.ModelID())
		}
	})

	t.Run("missing key", func(t *testing.T) {
		cfg := DefaultConfig()
		_, err := NewProvider(context.Background(), cfg, nil, discardLogger())
		if !IsConfigurationError(err) {
			t.Fatalf("expected configuration error, got: %v", err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = "llama"
		_, err := NewProvider(context.Background(), cfg, nil, discardLogger())
		if !IsConfigurationError(err) {
			t.Fatalf("expected configuration error, got: %v", err)
		}
	})

	t.Run("openai with key", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = "sk-test"
		p, err := NewProvider(context.Background(), cfg, &recordingEventRepo{}, discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "gpt-4o-mini" {
			t.Fatalf("ModelID = %q, want gpt-4o-mini", p.ModelID())
		}
	})
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("models/gemini-2.0-flash")
	if c == nil {
		t.Fatal("expected gemini-2.0-flash pricing")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("cost = %v, want 0.5", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
