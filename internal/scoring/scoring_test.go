package scoring

import (
	"errors"
	"testing"

	"github.com/abhisek/toeiz/internal/questiongen"
)

func grammarSet(n int) []questiongen.GrammarItem {
	items := make([]questiongen.GrammarItem, n)
	for i := range items {
		items[i] = questiongen.GrammarItem{
			Question:      "The report __________ yesterday.",
			Choices:       []string{"was sent", "sends", "sending", "send"},
			CorrectAnswer: "was sent",
		}
	}
	return items
}

func TestGrammar(t *testing.T) {
	items := grammarSet(4)
	answers := []string{"was sent", "sends", "was sent", "send"}

	s, err := Grammar(items, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Correct != 2 || s.Total != 4 {
		t.Fatalf("score = %v, want 2/4", s)
	}
	if s.Percent() != 50 {
		t.Errorf("percent = %v, want 50", s.Percent())
	}
}

func TestGrammar_Incomplete(t *testing.T) {
	tests := []struct {
		name     string
		answers  []string
		answered int
	}{
		{"eight of ten", []string{"a", "b", "c", "d", "e", "f", "g", "h"}, 8},
		{"blank entry", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", ""}, 9},
		{"too many", make11(), 11},
		{"none", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Grammar(grammarSet(10), tt.answers)
			var incomplete *IncompleteSubmissionError
			if !errors.As(err, &incomplete) {
				t.Fatalf("expected IncompleteSubmissionError, got %v", err)
			}
			if incomplete.Expected != 10 || incomplete.Answered != tt.answered {
				t.Errorf("got %+v", incomplete)
			}
			if s != (Score{}) {
				t.Errorf("nothing must be scored, got %v", s)
			}
		})
	}
}

func make11() []string {
	out := make([]string, 11)
	for i := range out {
		out[i] = "was sent"
	}
	return out
}

func TestReading(t *testing.T) {
	items := []questiongen.ReadingItem{
		{Passage: "p1", Questions: grammarSet(2)},
		{Passage: "p2", Questions: grammarSet(3)},
	}
	answers := [][]string{
		{"was sent", "send"},
		{"was sent", "was sent", "sending"},
	}

	s, err := Reading(items, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Correct != 3 || s.Total != 5 {
		t.Fatalf("score = %v, want 3/5", s)
	}
}

func TestReading_Incomplete(t *testing.T) {
	items := []questiongen.ReadingItem{
		{Passage: "p1", Questions: grammarSet(2)},
		{Passage: "p2", Questions: grammarSet(2)},
	}

	tests := []struct {
		name    string
		answers [][]string
	}{
		{"missing passage", [][]string{{"a", "b"}}},
		{"short passage", [][]string{{"a", "b"}, {"a"}}},
		{"answers shifted between passages", [][]string{{"a", "b", "c"}, {"d"}}},
		{"blank", [][]string{{"a", ""}, {"c", "d"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reading(items, tt.answers)
			var incomplete *IncompleteSubmissionError
			if !errors.As(err, &incomplete) {
				t.Fatalf("expected IncompleteSubmissionError, got %v", err)
			}
			if incomplete.Expected != 4 {
				t.Errorf("expected = %d, want 4", incomplete.Expected)
			}
		})
	}
}

func TestPercent_Empty(t *testing.T) {
	if p := (Score{}).Percent(); p != 0 {
		t.Fatalf("percent = %v, want 0", p)
	}
}
