package questiongen

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/abhisek/toeiz/internal/llm"
)

func grammarItem(question string) GrammarItem {
	return GrammarItem{
		Question:      question,
		Choices:       []string{"submit", "to submit", "submitting", "submitted"},
		CorrectAnswer: "to submit",
		Explanation:   "Sau 'need' dùng 'to + động từ nguyên mẫu'.",
	}
}

func readingItem(passage string) ReadingItem {
	return ReadingItem{
		Passage: passage,
		Questions: []GrammarItem{{
			Question:      "What is the memo about?",
			Choices:       []string{"A closure", "A hiring", "A merger", "A party"},
			CorrectAnswer: "A closure",
			Explanation:   "Bản ghi nhớ nói về việc đóng cửa.",
		}},
	}
}

// grammarDoc renders items as a model would, wrapped in <json> tags.
func grammarDoc(t *testing.T, items ...GrammarItem) string {
	t.Helper()
	b, err := json.Marshal(map[string]any{GrammarDataKey: items})
	if err != nil {
		t.Fatalf("marshal grammar doc: %v", err)
	}
	return "<json>\n" + string(b) + "\n</json>"
}

func readingDoc(t *testing.T, items ...ReadingItem) string {
	t.Helper()
	b, err := json.Marshal(map[string]any{ReadingDataKey: items})
	if err != nil {
		t.Fatalf("marshal reading doc: %v", err)
	}
	return "```json\n" + string(b) + "\n```"
}

// numberedGrammar returns n items whose questions share no substrings.
func numberedGrammar(prefix string, n int) []GrammarItem {
	items := make([]GrammarItem, n)
	for i := range items {
		items[i] = grammarItem(fmt.Sprintf("[%s-%02d] The team needs __________ the report.", prefix, i))
	}
	return items
}

func numberedReading(prefix string, n int) []ReadingItem {
	items := make([]ReadingItem, n)
	for i := range items {
		items[i] = readingItem(fmt.Sprintf("[%s-%02d] The east wing elevators will close for maintenance.", prefix, i))
	}
	return items
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

func newTestGenerator(responses ...llm.MockResponse) (*Generator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, testConfig()), mock
}
