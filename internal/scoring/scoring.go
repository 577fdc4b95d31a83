// Package scoring grades submitted answers against a generated test.
package scoring

import (
	"fmt"

	"github.com/abhisek/toeiz/internal/questiongen"
)

// Score is the number of correct answers out of the questions asked.
type Score struct {
	Correct int
	Total   int
}

// Percent returns the score as a percentage, 0 for an empty test.
func (s Score) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) * 100 / float64(s.Total)
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}

// IncompleteSubmissionError is returned when a submission does not
// answer every question. Nothing is scored in that case.
type IncompleteSubmissionError struct {
	Expected int
	Answered int
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("incomplete submission: %d of %d questions answered", e.Answered, e.Expected)
}

// Grammar scores one answer per item. answers must line up with items.
func Grammar(items []questiongen.GrammarItem, answers []string) (Score, error) {
	if n := answered(answers); len(answers) != len(items) || n != len(items) {
		return Score{}, &IncompleteSubmissionError{Expected: len(items), Answered: n}
	}

	s := Score{Total: len(items)}
	for i, it := range items {
		if answers[i] == it.CorrectAnswer {
			s.Correct++
		}
	}
	return s, nil
}

// Reading scores answers[i][j] against question j of passage i.
func Reading(items []questiongen.ReadingItem, answers [][]string) (Score, error) {
	total, got := 0, 0
	shapeOK := len(answers) == len(items)
	for i, it := range items {
		total += len(it.Questions)
		if i < len(answers) {
			got += answered(answers[i])
			if len(answers[i]) != len(it.Questions) {
				shapeOK = false
			}
		}
	}
	if !shapeOK || got != total {
		return Score{}, &IncompleteSubmissionError{Expected: total, Answered: got}
	}

	s := Score{Total: total}
	for i, it := range items {
		for j, q := range it.Questions {
			if answers[i][j] == q.CorrectAnswer {
				s.Correct++
			}
		}
	}
	return s, nil
}

func answered(answers []string) int {
	n := 0
	for _, a := range answers {
		if a != "" {
			n++
		}
	}
	return n
}
