// Package questiongen generates TOEIC grammar and reading tests with an
// LLM, deduplicating each new set against the questions a session has
// already seen.
package questiongen

import "strings"

// Kind names a test type.
type Kind string

const (
	KindGrammar Kind = "grammar"
	KindReading Kind = "reading"
)

// GrammarItem is one fill-in-the-blank multiple-choice question. Reading
// sub-questions share the same shape.
type GrammarItem struct {
	Question      string   `json:"question"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correct_answer"`

	// Explanation is written in Vietnamese.
	Explanation string `json:"explanation"`
}

// ReadingItem is a passage followed by its comprehension questions.
type ReadingItem struct {
	Passage   string        `json:"passage"`
	Questions []GrammarItem `json:"questions"`
}

// Fingerprint is the key used for duplicate detection: the lowercased
// question text.
func (g GrammarItem) Fingerprint() string {
	return fingerprint(g.Question)
}

// Fingerprint is the key used for duplicate detection: the lowercased
// passage text.
func (r ReadingItem) Fingerprint() string {
	return fingerprint(r.Passage)
}

func fingerprint(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Required item counts per test.
const (
	RequiredGrammarItems = 10
	RequiredReadingItems = 3
)

// MaxAttemptLimit is the most model calls one generation cycle may make.
const MaxAttemptLimit = 3

// History caps per test type.
const (
	MaxGrammarHistory = 50
	MaxReadingHistory = 20
)
