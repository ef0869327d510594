package quiz

import "github.com/abhisek/coursegen/internal/llm"

// QuizSchema defines the JSON schema for quiz set generation.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A set of multiple-choice questions checking comprehension of one lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"option_a": map[string]any{"type": "string"},
						"option_b": map[string]any{"type": "string"},
						"option_c": map[string]any{"type": "string"},
						"option_d": map[string]any{"type": "string"},
						"correct_answer": map[string]any{
							"type": "string",
							"enum": []any{"A", "B", "C", "D"},
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences on why the answer is correct",
						},
					},
					"required": []any{
						"question", "option_a", "option_b", "option_c", "option_d",
						"correct_answer", "explanation",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
