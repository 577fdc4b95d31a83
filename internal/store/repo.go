package store

import (
	"context"
	"time"
)

// User is a registered account. Password holds the bcrypt hash.
type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Streak   int    `db:"streak"`

	// LastTestDate is the calendar day ("2006-01-02") of the most recent
	// submitted test, empty if none.
	LastTestDate string `db:"last_test_date"`
}

//go:generate mockgen -source=repo.go -destination=../mocks/store/mock_repo.go -package=mock_store

// UserRepo manages user accounts.
type UserRepo interface {
	// Create inserts a new user. Returns ErrDuplicate if the username is taken.
	Create(ctx context.Context, username, passwordHash string) (*User, error)

	// ByUsername returns the user or ErrNotFound.
	ByUsername(ctx context.Context, username string) (*User, error)

	// ByID returns the user or ErrNotFound.
	ByID(ctx context.Context, id int64) (*User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// UpdateStreak stores the streak and the day it was last extended.
	UpdateStreak(ctx context.Context, id int64, streak int, lastTestDate string) error
}

// Favorite is a question a user saved from a test result page.
type Favorite struct {
	ID            int64
	UserID        int64
	Question      string
	Choices       []string
	CorrectAnswer string
	Explanation   string
	CreatedAt     time.Time
}

// FavoriteRepo manages saved questions.
type FavoriteRepo interface {
	// Toggle saves fav for its user, or removes it when the same question is
	// already saved. Returns true when the question is now a favorite.
	Toggle(ctx context.Context, fav Favorite) (bool, error)

	// List returns a user's favorites, newest first.
	List(ctx context.Context, userID int64) ([]Favorite, error)

	// Questions returns the set of favorited question texts for a user.
	Questions(ctx context.Context, userID int64) (map[string]bool, error)
}

// SessionRepo persists opaque server-side session payloads.
type SessionRepo interface {
	// Load returns the payload of an unexpired session or ErrNotFound.
	Load(ctx context.Context, id string, now time.Time) ([]byte, error)

	// Save creates or replaces a session.
	Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Prune removes sessions that expired before now and returns how many.
	Prune(ctx context.Context, now time.Time) (int64, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// QueryOpts filters event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // exact purpose match, empty for all
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// LLMEventRepo adds read access used by the CLI.
type LLMEventRepo interface {
	EventRepo

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event or ErrNotFound.
	GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEvent, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
