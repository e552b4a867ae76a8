package questiongen

import "github.com/artemsultanov-dotcom/colreg-quiz/internal/llm"

// QuestionSetSchema defines the JSON schema for question-generation responses.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A batch of scenario-based multiple-choice COLREG questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"minItems":    SetSize,
				"maxItems":    SetSize,
				"description": "Exactly 10 questions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "A self-contained collision-avoidance scenario ending in a question",
						},
						"options": map[string]any{
							"type":        "array",
							"minItems":    OptionCount,
							"maxItems":    OptionCount,
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer choices, one of which is correct",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     OptionCount - 1,
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct action is required, citing the governing rule",
						},
					},
					"required":             []any{"prompt", "options", "correct_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
