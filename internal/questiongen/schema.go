package questiongen

import "github.com/abhisek/toeiz/internal/llm"

// questionDefinition is the JSON schema of one multiple-choice question.
var questionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question text; grammar questions contain a blank",
		},
		"choices": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    ChoiceCount,
			"maxItems":    ChoiceCount,
			"description": "Exactly 4 options, one of which is correct_answer",
		},
		"correct_answer": map[string]any{
			"type":        "string",
			"description": "The text of the correct option, copied exactly from choices",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the answer is correct and the others are not, in Vietnamese",
		},
	},
	"required":             []any{"question", "choices", "correct_answer", "explanation"},
	"additionalProperties": false,
}

// GrammarSetSchema requests a grammar set as native structured output.
var GrammarSetSchema = &llm.Schema{
	Name:        "toeic-grammar-set",
	Description: "A set of TOEIC grammar questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			GrammarDataKey: map[string]any{
				"type":  "array",
				"items": questionDefinition,
			},
		},
		"required":             []any{GrammarDataKey},
		"additionalProperties": false,
	},
}

// ReadingSetSchema requests a reading set as native structured output.
var ReadingSetSchema = &llm.Schema{
	Name:        "toeic-reading-set",
	Description: "A set of TOEIC reading passages with questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			ReadingDataKey: map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"passage": map[string]any{
							"type":        "string",
							"description": "A 100-200 word business text",
						},
						"questions": map[string]any{
							"type":  "array",
							"items": questionDefinition,
						},
					},
					"required":             []any{"passage", "questions"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{ReadingDataKey},
		"additionalProperties": false,
	},
}
