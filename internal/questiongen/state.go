package questiongen

// TestState is the active test of one type within a session.
type TestState[T any] struct {
	Items     []T  `json:"items"`
	Completed bool `json:"completed"`
}

// Active reports whether the test has been generated and not yet submitted.
func (s TestState[T]) Active() bool {
	return len(s.Items) > 0 && !s.Completed
}

// SessionState is everything the generator reads and writes for one
// session. It is passed in and returned by value; callers persist it.
type SessionState struct {
	Grammar TestState[GrammarItem] `json:"grammar"`
	Reading TestState[ReadingItem] `json:"reading"`

	GrammarHistory History `json:"grammar_history"`
	ReadingHistory History `json:"reading_history"`
}

// Complete marks the active test of kind as submitted.
func (s SessionState) Complete(kind Kind) SessionState {
	switch kind {
	case KindGrammar:
		s.Grammar.Completed = true
	case KindReading:
		s.Reading.Completed = true
	}
	return s
}

// Retake clears the first completed test, grammar before reading, so the
// next visit generates a fresh one. ok is false when no test is completed.
func (s SessionState) Retake() (next SessionState, kind Kind, ok bool) {
	for _, k := range []Kind{KindGrammar, KindReading} {
		if cleared, done := s.RetakeKind(k); done {
			return cleared, k, true
		}
	}
	return s, "", false
}

// RetakeKind clears the test of kind if it has been completed.
func (s SessionState) RetakeKind(kind Kind) (SessionState, bool) {
	switch {
	case kind == KindGrammar && s.Grammar.Completed:
		s.Grammar = TestState[GrammarItem]{}
		return s, true
	case kind == KindReading && s.Reading.Completed:
		s.Reading = TestState[ReadingItem]{}
		return s, true
	}
	return s, false
}
