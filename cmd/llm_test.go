package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/toeiz/internal/store"
)

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf, []store.ModelUsage{
		{Model: "gpt-4o-mini", Calls: 4, InputTokens: 1_000_000, OutputTokens: 1_000_000},
		{Model: "local-llama", Calls: 1, InputTokens: 10, OutputTokens: 20},
	})

	out := buf.String()
	assert.Contains(t, out, "gpt-4o-mini")
	assert.Contains(t, out, "$0.75")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: local-llama")
}

func TestPrintUsage_Empty(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf, nil)
	assert.Equal(t, "No LLM usage recorded yet.\n", buf.String())
}

func TestPrintEvent(t *testing.T) {
	var buf bytes.Buffer
	printEvent(&buf, &store.LLMRequestEvent{
		ID:        7,
		Timestamp: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      "grammar-test",
			Success:      false,
			ErrorMessage: "rate limited",
			RequestBody:  `{"messages":[]}`,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "ID:        7")
	assert.Contains(t, out, "Error:     rate limited")
	assert.Contains(t, out, `{"messages":[]}`)
	assert.Contains(t, out, "(not captured)")
}
