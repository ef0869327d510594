package video

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/llm"
)

// KeywordsSchema defines the JSON schema for search keyword generation.
var KeywordsSchema = &llm.Schema{
	Name:        "video-keywords",
	Description: "A search query for finding an instructional video",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"keywords": map[string]any{
				"type":        "string",
				"description": "A 3-8 word video search query, no quotes or operators",
			},
		},
		"required":             []any{"keywords"},
		"additionalProperties": false,
	},
}

const keywordsSystemPrompt = `You write video search queries. Given a course subtopic, produce one short query that would find a good instructional video covering exactly that subtopic.`

func buildKeywordsUserMessage(sc *content.SubtopicContext) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Course: %s\n", sc.CourseTitle))
	b.WriteString(fmt.Sprintf("Module: %s\n", sc.ModuleTitle))
	b.WriteString(fmt.Sprintf("Subtopic: %s\n", sc.Subtopic.Title))
	b.WriteString(`
Instructions:
Write one search query of 3 to 8 words. Include the subject so results are not ambiguous. Plain words only, no quotes, no boolean operators.`)
	return b.String()
}

// keywords produces the search query for a subtopic. Keyword generation is
// best-effort: on any provider or parse failure the subtopic and course
// titles are used directly instead.
func (s *Service) keywords(ctx context.Context, sc *content.SubtopicContext) string {
	ctx = llm.WithPurpose(ctx, "keywords")

	req := llm.Request{
		System: keywordsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildKeywordsUserMessage(sc)},
		},
		Schema:      KeywordsSchema,
		MaxTokens:   s.cfg.KeywordsMaxTokens,
		Temperature: s.cfg.KeywordsTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fallbackQuery(sc)
	}

	var out struct {
		Keywords string `json:"keywords"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallbackQuery(sc)
	}
	if q := strings.TrimSpace(out.Keywords); q != "" {
		return q
	}
	return fallbackQuery(sc)
}

func fallbackQuery(sc *content.SubtopicContext) string {
	return strings.TrimSpace(sc.CourseTitle + " " + sc.Subtopic.Title + " tutorial")
}
