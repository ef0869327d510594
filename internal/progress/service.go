// Package progress derives completion summaries from the append-only
// attempt history. Nothing here is stored; summaries are recomputed from
// the progress rows on every call.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/coursegen/internal/content"
)

// Store is the persistence surface the progress service needs.
type Store interface {
	CourseSubtopicIDs(ctx context.Context, courseID int) ([]int, error)
	CompletedSubtopicIDs(ctx context.Context, userID int, ids []int) (map[int]bool, error)
	RecordProgress(ctx context.Context, rec content.ProgressRecord) (*content.ProgressRow, error)
	ProgressFor(ctx context.Context, userID, subtopicID int) ([]content.ProgressRow, error)
	UserProgress(ctx context.Context, userID int) ([]content.ProgressRow, error)
}

// Summary is a user's derived completion state for one course.
type Summary struct {
	CourseID           int
	TotalSubtopics     int
	CompletedSubtopics int
	PercentComplete    float64
}

// Service answers progress queries and records non-quiz completion.
type Service struct {
	store Store
}

// NewService creates a progress service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CourseSummary computes how much of a course the user has completed. A
// subtopic counts as completed when any attempt row marks it completed.
func (s *Service) CourseSummary(ctx context.Context, userID, courseID int) (*Summary, error) {
	ids, err := s.store.CourseSubtopicIDs(ctx, courseID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{CourseID: courseID, TotalSubtopics: len(ids)}
	if len(ids) == 0 {
		return sum, nil
	}

	done, err := s.store.CompletedSubtopicIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if done[id] {
			sum.CompletedSubtopics++
		}
	}
	sum.PercentComplete = float64(sum.CompletedSubtopics) / float64(sum.TotalSubtopics) * 100
	return sum, nil
}

// MarkCompleted records that the user finished a subtopic outside of a quiz
// attempt, e.g. after reading the lesson. Each call appends a new row.
func (s *Service) MarkCompleted(ctx context.Context, userID, subtopicID int, timeSpent time.Duration) (*content.ProgressRow, error) {
	if userID <= 0 || subtopicID <= 0 {
		return nil, fmt.Errorf("%w: user and subtopic ids are required", content.ErrInvalidInput)
	}
	return s.store.RecordProgress(ctx, content.ProgressRecord{
		UserID:     userID,
		SubtopicID: subtopicID,
		Completed:  true,
		TimeSpent:  timeSpent,
	})
}

// SubtopicHistory returns the user's attempts on one subtopic, newest first.
func (s *Service) SubtopicHistory(ctx context.Context, userID, subtopicID int) ([]content.ProgressRow, error) {
	return s.store.ProgressFor(ctx, userID, subtopicID)
}

// SubtopicStats is the derived attempt summary for one subtopic.
type SubtopicStats struct {
	Attempts    int
	BestScore   *float64 // nil when no attempt carried a score
	LatestScore *float64
	Completed   bool
}

// SubtopicStats summarizes the user's attempts on one subtopic.
func (s *Service) SubtopicStats(ctx context.Context, userID, subtopicID int) (*SubtopicStats, error) {
	rows, err := s.store.ProgressFor(ctx, userID, subtopicID)
	if err != nil {
		return nil, err
	}

	stats := &SubtopicStats{Attempts: len(rows)}
	for _, r := range rows {
		if r.Completed {
			stats.Completed = true
		}
		if r.Score == nil {
			continue
		}
		if stats.LatestScore == nil {
			// Rows come newest first.
			stats.LatestScore = r.Score
		}
		if stats.BestScore == nil || *r.Score > *stats.BestScore {
			stats.BestScore = r.Score
		}
	}
	return stats, nil
}

// History returns all of the user's attempts, newest first. Rows whose
// subtopic was deleted are included with a nil subtopic reference.
func (s *Service) History(ctx context.Context, userID int) ([]content.ProgressRow, error) {
	return s.store.UserProgress(ctx, userID)
}
