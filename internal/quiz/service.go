package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/llm"
)

// Store is the persistence surface the quiz service needs.
type Store interface {
	SubtopicContext(ctx context.Context, id int) (*content.SubtopicContext, error)
	SubtopicQuizzes(ctx context.Context, subtopicID int) ([]content.QuizQuestion, error)
	SaveQuiz(ctx context.Context, subtopicID int, items []content.QuizQuestion) error
	RecordProgress(ctx context.Context, rec content.ProgressRecord) (*content.ProgressRow, error)
}

// Service generates quiz sets and grades attempts.
type Service struct {
	provider llm.Provider
	store    Store
	cfg      Config
}

// NewService creates a quiz service.
func NewService(provider llm.Provider, store Store, cfg Config) *Service {
	return &Service{provider: provider, store: store, cfg: cfg}
}

// GetOrGenerate returns the subtopic's quiz set, generating and persisting
// it on first request. The subtopic must have a lesson first. A set is
// stored atomically and exactly once; concurrent generations keep the first
// stored set. The boolean reports whether generation ran.
func (s *Service) GetOrGenerate(ctx context.Context, subtopicID int) ([]content.QuizQuestion, bool, error) {
	existing, err := s.store.SubtopicQuizzes(ctx, subtopicID)
	if err != nil {
		return nil, false, err
	}
	if len(existing) > 0 {
		return existing, false, nil
	}

	sc, err := s.store.SubtopicContext(ctx, subtopicID)
	if err != nil {
		return nil, false, err
	}
	if !sc.Subtopic.HasLesson {
		return nil, false, fmt.Errorf("subtopic %d has no lesson yet: %w", subtopicID, content.ErrPreconditionFailed)
	}

	items, err := s.generate(ctx, sc)
	if err != nil {
		return nil, false, err
	}

	if err := s.store.SaveQuiz(ctx, subtopicID, items); err != nil {
		return nil, false, err
	}

	// Re-read because a concurrent generation may have stored its set first.
	stored, err := s.store.SubtopicQuizzes(ctx, subtopicID)
	if err != nil {
		return nil, false, err
	}
	return stored, true, nil
}

type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

// generate produces a validated quiz set. A structurally bad set gets one
// regeneration attempt for the whole set before the operation fails.
func (s *Service) generate(ctx context.Context, sc *content.SubtopicContext) ([]content.QuizQuestion, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	out, err := s.generateOnce(ctx, sc)
	if err == nil {
		if verr := validateSet(out.Questions, s.cfg.NumQuestions); verr == nil {
			return s.toQuestions(out.Questions), nil
		}
		out, err = s.generateOnce(ctx, sc)
		if err == nil {
			if verr := validateSet(out.Questions, s.cfg.NumQuestions); verr == nil {
				return s.toQuestions(out.Questions), nil
			} else {
				return nil, &content.GenerationMalformedError{Stage: "quiz", Reason: verr.Error()}
			}
		}
	}
	return nil, &content.GenerationFailedError{Stage: "quiz", Err: err}
}

func (s *Service) generateOnce(ctx context.Context, sc *content.SubtopicContext) (*quizOutput, error) {
	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(sc, s.cfg)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	return &out, nil
}

func (s *Service) toQuestions(qs []questionOutput) []content.QuizQuestion {
	out := make([]content.QuizQuestion, len(qs))
	for i, q := range qs {
		out[i] = content.QuizQuestion{
			Question:      strings.TrimSpace(q.Question),
			OptionA:       strings.TrimSpace(q.OptionA),
			OptionB:       strings.TrimSpace(q.OptionB),
			OptionC:       strings.TrimSpace(q.OptionC),
			OptionD:       strings.TrimSpace(q.OptionD),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   strings.TrimSpace(q.Explanation),
			OrderIndex:    i,
		}
	}
	return out
}
