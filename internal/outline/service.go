package outline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/llm"
)

// Store is the persistence surface the outline service needs.
type Store interface {
	// CourseByTopic returns (nil, nil) on a cache miss.
	CourseByTopic(ctx context.Context, userID int, topic string) (*content.Course, error)
	CreateCourseTree(ctx context.Context, userID int, title string, outline content.Outline) (*content.Course, error)
}

// Service generates course outlines and persists them as full content trees.
type Service struct {
	provider llm.Provider
	store    Store
	cfg      Config
}

// NewService creates an outline generation service.
func NewService(provider llm.Provider, store Store, cfg Config) *Service {
	return &Service{provider: provider, store: store, cfg: cfg}
}

// GetOrCreate returns the user's existing course for a topic, or generates
// and persists a new one. Topic matching ignores case and extra whitespace,
// so "Linear  Algebra" and "linear algebra" resolve to the same course.
// The boolean reports whether generation ran.
func (s *Service) GetOrCreate(ctx context.Context, userID int, topic string) (*content.Course, bool, error) {
	topic = strings.Join(strings.Fields(topic), " ")
	if topic == "" {
		return nil, false, fmt.Errorf("%w: empty topic", content.ErrInvalidInput)
	}

	cached, err := s.store.CourseByTopic(ctx, userID, topic)
	if err != nil {
		return nil, false, err
	}
	if cached != nil {
		return cached, false, nil
	}

	ol, err := s.Generate(ctx, topic)
	if err != nil {
		return nil, false, err
	}

	c, err := s.store.CreateCourseTree(ctx, userID, topic, *ol)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

type outlineOutput struct {
	Modules []moduleOutput `json:"modules"`
}

type moduleOutput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subtopics   []string `json:"subtopics"`
}

// Generate produces a validated outline without persisting it. Oversized
// trees are clamped to the configured bounds; an undersized tree gets one
// regeneration attempt before the whole operation fails.
func (s *Service) Generate(ctx context.Context, topic string) (*content.Outline, error) {
	ctx = llm.WithPurpose(ctx, "outline")

	out, err := s.generateOnce(ctx, topic)
	if err == nil {
		ol, verr := s.clamp(out)
		if verr == nil {
			return ol, nil
		}
		// Structural failure: one more try.
		out, err = s.generateOnce(ctx, topic)
		if err == nil {
			ol, verr = s.clamp(out)
			if verr == nil {
				return ol, nil
			}
			return nil, &content.GenerationMalformedError{Stage: "outline", Reason: verr.Error()}
		}
	}
	return nil, &content.GenerationFailedError{Stage: "outline", Err: err}
}

func (s *Service) generateOnce(ctx context.Context, topic string) (*outlineOutput, error) {
	req := llm.Request{
		System: outlineSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildOutlineUserMessage(topic, s.cfg)},
		},
		Schema:      OutlineSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("outline generation: %w", err)
	}

	var out outlineOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse outline response: %w", err)
	}
	return &out, nil
}

// clamp normalizes a raw outline against the configured bounds. Too many
// modules or subtopics are truncated; too few is an error the caller may
// retry on.
func (s *Service) clamp(out *outlineOutput) (*content.Outline, error) {
	mods := out.Modules
	if len(mods) > s.cfg.MaxModules {
		mods = mods[:s.cfg.MaxModules]
	}
	if len(mods) < s.cfg.MinModules {
		return nil, fmt.Errorf("got %d modules, need at least %d", len(mods), s.cfg.MinModules)
	}

	ol := &content.Outline{Modules: make([]content.OutlineModule, 0, len(mods))}
	for i, m := range mods {
		title := strings.TrimSpace(m.Title)
		if title == "" {
			return nil, fmt.Errorf("module %d has an empty title", i)
		}

		subs := make([]string, 0, len(m.Subtopics))
		for _, st := range m.Subtopics {
			if st = strings.TrimSpace(st); st != "" {
				subs = append(subs, st)
			}
		}
		if len(subs) > s.cfg.MaxSubtopics {
			subs = subs[:s.cfg.MaxSubtopics]
		}
		if len(subs) < s.cfg.MinSubtopics {
			return nil, fmt.Errorf("module %q has %d subtopics, need at least %d", title, len(subs), s.cfg.MinSubtopics)
		}

		ol.Modules = append(ol.Modules, content.OutlineModule{
			Title:       title,
			Description: strings.TrimSpace(m.Description),
			Subtopics:   subs,
		})
	}
	return ol, nil
}
