package lesson

import "github.com/abhisek/coursegen/internal/llm"

// LessonSchema defines the JSON schema for lesson generation.
var LessonSchema = &llm.Schema{
	Name:        "lesson",
	Description: "One self-contained lesson in Markdown",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": "The full lesson text in Markdown, with headings and examples",
			},
		},
		"required":             []any{"content"},
		"additionalProperties": false,
	},
}
