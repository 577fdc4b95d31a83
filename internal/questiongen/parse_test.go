package questiongen

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseGrammar(t *testing.T) {
	text := `{"GRAMMAR_DATA": [{
		"question": "The CEO decided __________ the plan.",
		"choices": ["to approve", "approving", "approve", "approved"],
		"correct_answer": "to approve",
		"explanation": "Sau 'decided' dùng to-infinitive."
	}]}`

	items, err := ParseGrammar(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].CorrectAnswer != "to approve" || len(items[0].Choices) != 4 {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestParseGrammar_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "Here are your questions!"},
		{"missing key", `{"READING_DATA": []}`},
		{"wrong shape", `{"GRAMMAR_DATA": {"question": "x"}}`},
		{"raw newline in string", "{\"GRAMMAR_DATA\": [{\"question\": \"line one\nline two\"}]}"},
		{"trailing text", `{"GRAMMAR_DATA": []} thanks`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrammar(tt.text)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T (%v)", err, err)
			}
			if perr.Kind != KindGrammar {
				t.Errorf("kind = %q, want grammar", perr.Kind)
			}
		})
	}
}

func TestParseGrammar_EmptyList(t *testing.T) {
	items, err := ParseGrammar(`{"GRAMMAR_DATA": []}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestParseReading_ToleratesControlCharacters(t *testing.T) {
	text := "{\"READING_DATA\": [{\n" +
		"\t\"passage\": \"Dear colleagues,\n\nThe retreat\tstarts Monday.\r\nSee you there.\",\n" +
		"\t\"questions\": [{\"question\": \"When?\", \"choices\": [\"Mon\", \"Tue\", \"Wed\", \"Thu\"], \"correct_answer\": \"Mon\", \"explanation\": \"Thứ Hai.\"}]\n" +
		"}]}"

	items, err := ParseReading(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	want := "Dear colleagues,\n\nThe retreat\tstarts Monday.\r\nSee you there."
	if items[0].Passage != want {
		t.Errorf("passage = %q, want %q", items[0].Passage, want)
	}
	if len(items[0].Questions) != 1 || items[0].Questions[0].CorrectAnswer != "Mon" {
		t.Errorf("unexpected questions: %+v", items[0].Questions)
	}
}

func TestParseReading_KeepsEscapedQuotes(t *testing.T) {
	text := `{"READING_DATA": [{"passage": "He said \"hello\"\\n", "questions": []}]}`
	items, err := ParseReading(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Passage != `He said "hello"\n` {
		t.Errorf("passage = %q", items[0].Passage)
	}
}

func TestParseReading_Errors(t *testing.T) {
	_, err := ParseReading(`{"GRAMMAR_DATA": []}`)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Kind != KindReading {
		t.Errorf("kind = %q, want reading", perr.Kind)
	}

	long := strings.Repeat("x", 500)
	_, err = ParseReading(long)
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if len(perr.Snippet) > snippetLen+3 {
		t.Errorf("snippet not truncated: %d chars", len(perr.Snippet))
	}
}

func TestParseError_SnippetKeepsRunesWhole(t *testing.T) {
	// 1 + 3n bytes never lands on a rune boundary at the cut.
	text := "x" + strings.Repeat("ệ", 100)
	_, err := ParseGrammar(text)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if !utf8.ValidString(perr.Snippet) {
		t.Fatalf("snippet split a rune: %q", perr.Snippet)
	}
	if !strings.HasSuffix(perr.Snippet, "...") || len(perr.Snippet) > snippetLen+3 {
		t.Errorf("snippet not truncated: %q", perr.Snippet)
	}
}
