package questiongen

import (
	"encoding/json"
	"testing"
)

func TestTestState_Active(t *testing.T) {
	var empty TestState[GrammarItem]
	if empty.Active() {
		t.Error("empty state must not be active")
	}

	s := TestState[GrammarItem]{Items: []GrammarItem{grammarItem("q")}}
	if !s.Active() {
		t.Error("generated, unsubmitted state must be active")
	}

	s.Completed = true
	if s.Active() {
		t.Error("completed state must not be active")
	}
}

func TestSessionState_Retake(t *testing.T) {
	state := SessionState{
		Grammar: TestState[GrammarItem]{Items: []GrammarItem{grammarItem("q")}, Completed: true},
		Reading: TestState[ReadingItem]{Items: []ReadingItem{readingItem("p")}, Completed: true},
	}

	next, kind, ok := state.Retake()
	if !ok || kind != KindGrammar {
		t.Fatalf("expected grammar retake first, got %q %v", kind, ok)
	}
	if len(next.Grammar.Items) != 0 || next.Grammar.Completed {
		t.Error("grammar test should be cleared")
	}
	if !next.Reading.Completed {
		t.Error("reading test should be untouched")
	}

	next, kind, ok = next.Retake()
	if !ok || kind != KindReading {
		t.Fatalf("expected reading retake second, got %q %v", kind, ok)
	}

	if _, _, ok = next.Retake(); ok {
		t.Fatal("expected nothing left to retake")
	}
}

func TestSessionState_CompleteKeepsHistory(t *testing.T) {
	state := SessionState{
		Reading:        TestState[ReadingItem]{Items: []ReadingItem{readingItem("p")}},
		ReadingHistory: History{"p"},
	}
	done := state.Complete(KindReading)
	if !done.Reading.Completed {
		t.Fatal("expected reading completed")
	}
	if state.Reading.Completed {
		t.Fatal("Complete must not mutate its receiver")
	}
	if len(done.ReadingHistory) != 1 {
		t.Fatal("history must be kept")
	}
}

func TestSessionState_JSONRoundTrip(t *testing.T) {
	state := SessionState{
		Grammar:        TestState[GrammarItem]{Items: []GrammarItem{grammarItem("q")}},
		GrammarHistory: History{"q"},
	}
	b, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got SessionState
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Grammar.Active() || got.Grammar.Items[0].Choices[1] != "to submit" || got.GrammarHistory[0] != "q" {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}

func TestSessionState_RetakeKind(t *testing.T) {
	state := SessionState{
		Grammar: TestState[GrammarItem]{Items: []GrammarItem{grammarItem("q")}, Completed: true},
		Reading: TestState[ReadingItem]{Items: []ReadingItem{readingItem("p")}},
	}

	if _, ok := state.RetakeKind(KindReading); ok {
		t.Fatal("an unsubmitted reading test cannot be retaken")
	}
	next, ok := state.RetakeKind(KindGrammar)
	if !ok || len(next.Grammar.Items) != 0 {
		t.Fatal("expected grammar test cleared")
	}
	if len(next.Reading.Items) != 1 {
		t.Fatal("reading test must be untouched")
	}
}
