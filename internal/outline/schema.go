package outline

import "github.com/abhisek/coursegen/internal/llm"

// OutlineSchema defines the JSON schema for course outline generation.
var OutlineSchema = &llm.Schema{
	Name:        "course-outline",
	Description: "A course outline with modules and their subtopic titles",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"modules": map[string]any{
				"type":        "array",
				"description": "Course modules in teaching order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Module title (3-10 words)",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One-sentence summary of what the module covers",
						},
						"subtopics": map[string]any{
							"type":        "array",
							"description": "Subtopic titles in teaching order",
							"items":       map[string]any{"type": "string"},
						},
					},
					"required":             []any{"title", "description", "subtopics"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"modules"},
		"additionalProperties": false,
	},
}
