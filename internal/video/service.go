package video

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/llm"
)

// Store is the persistence surface the video service needs.
type Store interface {
	SubtopicContext(ctx context.Context, id int) (*content.SubtopicContext, error)
	SaveVideo(ctx context.Context, id int, url, title, keywords string) error
	GetSubtopic(ctx context.Context, id int) (*content.Subtopic, error)
}

// Service resolves a companion video for subtopics that have a lesson.
type Service struct {
	provider llm.Provider
	searcher Searcher
	store    Store
	cfg      Config
}

// NewService creates a video resolution service.
func NewService(provider llm.Provider, searcher Searcher, store Store, cfg Config) *Service {
	return &Service{provider: provider, searcher: searcher, store: store, cfg: cfg}
}

// Resolve finds and persists a video for the subtopic, or records that none
// qualifies. A subtopic whose resolution already ran returns the stored
// outcome without searching again. The subtopic must have a lesson first.
//
// When no video qualifies the returned error is ErrNoVideoFound and the
// subtopic is still returned: the absence is a recorded outcome, not a
// failure, and lessons and quizzes remain available. A search that times
// out reports the same absence without recording it.
func (s *Service) Resolve(ctx context.Context, subtopicID int) (*content.Subtopic, error) {
	sc, err := s.store.SubtopicContext(ctx, subtopicID)
	if err != nil {
		return nil, err
	}
	sub := sc.Subtopic

	if !sub.HasLesson {
		return nil, fmt.Errorf("subtopic %d has no lesson yet: %w", subtopicID, content.ErrPreconditionFailed)
	}

	if sub.VideoChecked {
		if sub.VideoURL != "" {
			return &sub, nil
		}
		return &sub, content.ErrNoVideoFound
	}

	query := s.keywords(ctx, sc)

	candidates, err := s.search(ctx, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			// A timed-out search is soft: the caller sees no video, but
			// no outcome is recorded, so a later attempt searches again.
			return &sub, content.ErrNoVideoFound
		}
		// Other search failures persist nothing so a later attempt can
		// succeed.
		return nil, fmt.Errorf("video search for subtopic %d: %w", subtopicID, err)
	}

	best := pickBest(candidates, s.cfg)
	if best == nil {
		if err := s.store.SaveVideo(ctx, subtopicID, "", "", query); err != nil {
			return nil, err
		}
		sub, err := s.store.GetSubtopic(ctx, subtopicID)
		if err != nil {
			return nil, err
		}
		return sub, content.ErrNoVideoFound
	}

	if err := s.store.SaveVideo(ctx, subtopicID, best.URL, best.Title, query); err != nil {
		return nil, err
	}

	// Re-read because a concurrent resolution may have won the write.
	out, err := s.store.GetSubtopic(ctx, subtopicID)
	if err != nil {
		return nil, err
	}
	if out.VideoChecked && out.VideoURL == "" {
		return out, content.ErrNoVideoFound
	}
	return out, nil
}

// search runs one bounded search attempt and retries once after a short
// backoff on failure.
func (s *Service) search(ctx context.Context, query string) ([]Candidate, error) {
	candidates, err := s.searchOnce(ctx, query)
	if err == nil {
		return candidates, nil
	}

	select {
	case <-time.After(s.cfg.SearchRetryWait):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return s.searchOnce(ctx, query)
}

func (s *Service) searchOnce(ctx context.Context, query string) ([]Candidate, error) {
	if s.cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SearchTimeout)
		defer cancel()
	}
	return s.searcher.Search(ctx, query, s.cfg.MaxResults)
}
