package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/toeiz/internal/llm"
	"github.com/abhisek/toeiz/internal/questiongen"
)

func TestMatchChoice(t *testing.T) {
	choices := []string{"approve", "to approve", "approving", "approved"}
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"A", "approve", true},
		{"b", "to approve", true},
		{" d ", "approved", true},
		{"3", "approving", true},
		{"To Approve", "to approve", true},
		{"E", "", false},
		{"5", "", false},
		{"", "", false},
		{"approves", "", false},
	}
	for _, tt := range tests {
		got, ok := matchChoice(tt.input, choices)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func previewResponse(t *testing.T, key string, items any) llm.MockResponse {
	t.Helper()
	b, err := json.Marshal(map[string]any{key: items})
	require.NoError(t, err)
	return llm.MockResponse{Text: string(b)}
}

func previewGrammar(n int) []questiongen.GrammarItem {
	items := make([]questiongen.GrammarItem, n)
	for i := range items {
		items[i] = questiongen.GrammarItem{
			Question:      fmt.Sprintf("Item %d: the director wants __________ the contract.", i),
			Choices:       []string{"approve", "to approve", "approving", "approved"},
			CorrectAnswer: "to approve",
			Explanation:   "Sau 'want' dùng 'to V'.",
		}
	}
	return items
}

func TestRunPreviewTest_Grammar(t *testing.T) {
	provider := llm.NewMockProvider(previewResponse(t, questiongen.GrammarDataKey, previewGrammar(10)))
	gen := questiongen.New(provider, questiongen.DefaultConfig())

	// Five correct, one retry after an unknown letter, four wrong.
	input := strings.Repeat("b\n", 5) + "z\nto approve\n" + strings.Repeat("1\n", 4)
	var out bytes.Buffer

	score, err := runPreviewTest(context.Background(), gen, questiongen.KindGrammar, strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Equal(t, 6, score.Correct)
	assert.Equal(t, 10, score.Total)
	assert.Contains(t, out.String(), "Enter a letter A-D")
	assert.Contains(t, out.String(), "6/10")
	assert.Equal(t, 1, provider.CallCount())
}

func TestRunPreviewTest_Reading(t *testing.T) {
	passages := make([]questiongen.ReadingItem, 3)
	for i := range passages {
		passages[i] = questiongen.ReadingItem{
			Passage:   fmt.Sprintf("Notice %d: the parking garage is closed for repairs.", i),
			Questions: previewGrammar(2),
		}
		for j := range passages[i].Questions {
			passages[i].Questions[j].Question = fmt.Sprintf("Notice %d question %d?", i, j)
		}
	}
	provider := llm.NewMockProvider(previewResponse(t, questiongen.ReadingDataKey, passages))
	gen := questiongen.New(provider, questiongen.DefaultConfig())

	var out bytes.Buffer
	score, err := runPreviewTest(context.Background(), gen, questiongen.KindReading, strings.NewReader(strings.Repeat("B\n", 6)), &out)
	require.NoError(t, err)
	assert.Equal(t, 6, score.Correct)
	assert.Equal(t, 6, score.Total)
	assert.Contains(t, out.String(), "Passage 3/3")
	assert.Contains(t, out.String(), "parking garage")
}

func TestRunPreviewTest_InputClosed(t *testing.T) {
	provider := llm.NewMockProvider(previewResponse(t, questiongen.GrammarDataKey, previewGrammar(10)))
	gen := questiongen.New(provider, questiongen.DefaultConfig())

	var out bytes.Buffer
	_, err := runPreviewTest(context.Background(), gen, questiongen.KindGrammar, strings.NewReader("a\na\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input closed")
}

func TestRunPreviewTest_GenerationFailure(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := questiongen.New(provider, questiongen.DefaultConfig())

	var out bytes.Buffer
	_, err := runPreviewTest(context.Background(), gen, questiongen.KindGrammar, strings.NewReader(""), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate grammar test")
	assert.Empty(t, out.String())
}
