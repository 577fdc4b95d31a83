package questiongen

import (
	"fmt"
	"slices"
	"strings"
)

// Validator checks a parsed item before it is accepted into a test.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for logging, e.g. "structural".
	Name() string

	// ValidateGrammar returns nil if the question passes.
	ValidateGrammar(q GrammarItem) *ValidationError

	// ValidateReading returns nil if the passage and all of its
	// questions pass.
	ValidateReading(r ReadingItem) *ValidationError
}

// ValidationError describes why an item was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// ChoiceCount is the number of options every question must offer.
const ChoiceCount = 4

// StructuralValidator checks that required fields are present and that
// every question offers exactly four distinct, non-empty choices.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) ValidateGrammar(q GrammarItem) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	if strings.TrimSpace(q.Question) == "" {
		return fail("question is empty")
	}
	if len(q.Choices) != ChoiceCount {
		return fail(fmt.Sprintf("expected %d choices, got %d", ChoiceCount, len(q.Choices)))
	}
	seen := make(map[string]bool, len(q.Choices))
	for _, c := range q.Choices {
		if strings.TrimSpace(c) == "" {
			return fail("choice is empty")
		}
		if seen[c] {
			return fail(fmt.Sprintf("duplicate choice %q", c))
		}
		seen[c] = true
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return fail("correct_answer is empty")
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fail("explanation is empty")
	}
	return nil
}

func (v *StructuralValidator) ValidateReading(r ReadingItem) *ValidationError {
	if strings.TrimSpace(r.Passage) == "" {
		return &ValidationError{Validator: v.Name(), Message: "passage is empty"}
	}
	if len(r.Questions) == 0 {
		return &ValidationError{Validator: v.Name(), Message: "passage has no questions"}
	}
	return eachQuestion(v, r)
}

// AnswerKeyValidator checks that correct_answer is one of the choices.
type AnswerKeyValidator struct{}

func (v *AnswerKeyValidator) Name() string { return "answer-key" }

func (v *AnswerKeyValidator) ValidateGrammar(q GrammarItem) *ValidationError {
	if !slices.Contains(q.Choices, q.CorrectAnswer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct_answer %q is not among the choices", q.CorrectAnswer),
		}
	}
	return nil
}

func (v *AnswerKeyValidator) ValidateReading(r ReadingItem) *ValidationError {
	return eachQuestion(v, r)
}

func eachQuestion(v Validator, r ReadingItem) *ValidationError {
	for i, q := range r.Questions {
		if verr := v.ValidateGrammar(q); verr != nil {
			verr.Message = fmt.Sprintf("question %d: %s", i+1, verr.Message)
			return verr
		}
	}
	return nil
}

// DefaultValidators returns the standard validator chain.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&AnswerKeyValidator{},
	}
}
