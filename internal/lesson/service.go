package lesson

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/llm"
)

// Store is the persistence surface the lesson service needs.
type Store interface {
	SubtopicContext(ctx context.Context, id int) (*content.SubtopicContext, error)
	SaveLesson(ctx context.Context, id int, text string, readingMinutes int) error
	GetSubtopic(ctx context.Context, id int) (*content.Subtopic, error)
}

// Service generates and caches lesson text for subtopics.
type Service struct {
	provider llm.Provider
	store    Store
	cfg      Config
}

// NewService creates a lesson generation service.
func NewService(provider llm.Provider, store Store, cfg Config) *Service {
	return &Service{provider: provider, store: store, cfg: cfg}
}

// GetOrGenerate returns the subtopic's lesson, generating and persisting it
// on first request. A subtopic that already has a lesson is returned without
// touching the provider. Writes are first-one-wins: if a concurrent call
// stored a lesson in the meantime, the stored one is returned. The boolean
// reports whether generation ran.
func (s *Service) GetOrGenerate(ctx context.Context, subtopicID int) (*content.Subtopic, bool, error) {
	sc, err := s.store.SubtopicContext(ctx, subtopicID)
	if err != nil {
		return nil, false, err
	}
	if sc.Subtopic.HasLesson {
		return &sc.Subtopic, false, nil
	}

	text, err := s.generate(ctx, sc)
	if err != nil {
		return nil, false, err
	}

	minutes := ReadingMinutes(text, s.cfg.WordsPerMinute)
	if err := s.store.SaveLesson(ctx, subtopicID, text, minutes); err != nil {
		return nil, false, err
	}

	sub, err := s.store.GetSubtopic(ctx, subtopicID)
	if err != nil {
		return nil, false, err
	}
	return sub, true, nil
}

type lessonOutput struct {
	Content string `json:"content"`
}

// generate produces lesson text. A response below the word floor gets one
// regeneration attempt before the operation fails.
func (s *Service) generate(ctx context.Context, sc *content.SubtopicContext) (string, error) {
	ctx = llm.WithPurpose(ctx, "lesson")

	text, err := s.generateOnce(ctx, sc)
	if err != nil {
		return "", &content.GenerationFailedError{Stage: "lesson", Err: err}
	}
	if wordCount(text) >= s.cfg.MinWords {
		return text, nil
	}

	text, err = s.generateOnce(ctx, sc)
	if err != nil {
		return "", &content.GenerationFailedError{Stage: "lesson", Err: err}
	}
	if n := wordCount(text); n < s.cfg.MinWords {
		// Degenerate text is a failed generation, not a parse problem.
		return "", &content.GenerationFailedError{
			Stage: "lesson",
			Err:   fmt.Errorf("got %d words, need at least %d", n, s.cfg.MinWords),
		}
	}
	return text, nil
}

func (s *Service) generateOnce(ctx context.Context, sc *content.SubtopicContext) (string, error) {
	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(sc, s.cfg)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse lesson response: %w", err)
	}
	return strings.TrimSpace(out.Content), nil
}

// ReadingMinutes estimates reading time for a text, rounding up and never
// returning less than one minute.
func ReadingMinutes(text string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultConfig().WordsPerMinute
	}
	n := wordCount(text)
	minutes := (n + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
