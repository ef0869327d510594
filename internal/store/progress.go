package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/progress"
	"github.com/abhisek/coursegen/internal/content"
)

// RecordProgress appends one attempt row. Every call inserts; attempts are
// facts, never a mutable cumulative state.
func (s *Store) RecordProgress(ctx context.Context, rec content.ProgressRecord) (*content.ProgressRow, error) {
	if rec.UserID == 0 || rec.SubtopicID == 0 {
		return nil, fmt.Errorf("%w: user and subtopic are required", content.ErrInvalidInput)
	}

	create := s.client.Progress.Create().
		SetUserID(rec.UserID).
		SetSubtopicID(rec.SubtopicID).
		SetCompleted(rec.Completed).
		SetTimeSpent(int(rec.TimeSpent / time.Second))
	if rec.QuizID != 0 {
		create.SetQuizID(rec.QuizID)
	}
	if rec.Score != nil {
		create.SetScore(*rec.Score)
	}

	p, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("record progress: %w: unknown user, subtopic, or quiz", content.ErrNotFound)
		}
		return nil, fmt.Errorf("record progress: %w", err)
	}
	return progressFromEnt(p), nil
}

// ProgressFor returns all attempts of a user on a subtopic, newest first.
func (s *Store) ProgressFor(ctx context.Context, userID, subtopicID int) ([]content.ProgressRow, error) {
	rows, err := s.client.Progress.Query().
		Where(
			progress.UserID(userID),
			progress.SubtopicID(subtopicID),
		).
		Order(ent.Desc(progress.FieldCreatedAt), ent.Desc(progress.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return progressRowsFromEnt(rows), nil
}

// UserProgress returns every attempt a user has recorded, newest first.
func (s *Store) UserProgress(ctx context.Context, userID int) ([]content.ProgressRow, error) {
	rows, err := s.client.Progress.Query().
		Where(progress.UserID(userID)).
		Order(ent.Desc(progress.FieldCreatedAt), ent.Desc(progress.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query user progress: %w", err)
	}
	return progressRowsFromEnt(rows), nil
}

// CompletedSubtopicIDs returns the distinct subtopics among ids for which
// the user has at least one completed attempt.
func (s *Store) CompletedSubtopicIDs(ctx context.Context, userID int, ids []int) (map[int]bool, error) {
	if len(ids) == 0 {
		return map[int]bool{}, nil
	}
	rows, err := s.client.Progress.Query().
		Where(
			progress.UserID(userID),
			progress.SubtopicIDIn(ids...),
			progress.Completed(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed subtopics: %w", err)
	}
	done := make(map[int]bool, len(rows))
	for _, p := range rows {
		if p.SubtopicID != nil {
			done[*p.SubtopicID] = true
		}
	}
	return done, nil
}

func progressFromEnt(p *ent.Progress) *content.ProgressRow {
	row := &content.ProgressRow{
		ID:         p.ID,
		AttemptID:  p.AttemptID,
		UserID:     p.UserID,
		SubtopicID: p.SubtopicID,
		QuizID:     p.QuizID,
		Score:      p.Score,
		Completed:  p.Completed,
		TimeSpent:  time.Duration(p.TimeSpent) * time.Second,
		CreatedAt:  p.CreatedAt,
	}
	return row
}

func progressRowsFromEnt(rows []*ent.Progress) []content.ProgressRow {
	out := make([]content.ProgressRow, len(rows))
	for i, p := range rows {
		out[i] = *progressFromEnt(p)
	}
	return out
}
