package progress

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursegen/internal/content"
)

type fakeStore struct {
	courseSubs map[int][]int
	rows       []content.ProgressRow
}

func (f *fakeStore) CourseSubtopicIDs(_ context.Context, courseID int) ([]int, error) {
	ids, ok := f.courseSubs[courseID]
	if !ok {
		return nil, fmt.Errorf("course %d: %w", courseID, content.ErrNotFound)
	}
	return ids, nil
}

func (f *fakeStore) CompletedSubtopicIDs(_ context.Context, userID int, ids []int) (map[int]bool, error) {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	done := make(map[int]bool)
	for _, r := range f.rows {
		if r.UserID == userID && r.Completed && r.SubtopicID != nil && want[*r.SubtopicID] {
			done[*r.SubtopicID] = true
		}
	}
	return done, nil
}

func (f *fakeStore) RecordProgress(_ context.Context, rec content.ProgressRecord) (*content.ProgressRow, error) {
	sid := rec.SubtopicID
	row := content.ProgressRow{
		ID: len(f.rows) + 1, UserID: rec.UserID, SubtopicID: &sid,
		Score: rec.Score, Completed: rec.Completed, TimeSpent: rec.TimeSpent,
	}
	f.rows = append(f.rows, row)
	return &row, nil
}

func (f *fakeStore) ProgressFor(_ context.Context, userID, subtopicID int) ([]content.ProgressRow, error) {
	var out []content.ProgressRow
	for _, r := range f.rows {
		if r.UserID == userID && r.SubtopicID != nil && *r.SubtopicID == subtopicID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) UserProgress(_ context.Context, userID int) ([]content.ProgressRow, error) {
	var out []content.ProgressRow
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestCourseSummary(t *testing.T) {
	store := &fakeStore{courseSubs: map[int][]int{10: {1, 2, 3, 4}}}
	svc := NewService(store)

	_, err := svc.MarkCompleted(t.Context(), 1, 1, time.Minute)
	require.NoError(t, err)
	_, err = svc.MarkCompleted(t.Context(), 1, 3, time.Minute)
	require.NoError(t, err)

	// Another user's completion must not count.
	_, err = svc.MarkCompleted(t.Context(), 2, 2, time.Minute)
	require.NoError(t, err)

	sum, err := svc.CourseSummary(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.TotalSubtopics)
	assert.Equal(t, 2, sum.CompletedSubtopics)
	assert.Equal(t, 50.0, sum.PercentComplete)
}

func TestCourseSummary_RepeatAttemptsCountOnce(t *testing.T) {
	store := &fakeStore{courseSubs: map[int][]int{10: {1, 2}}}
	svc := NewService(store)

	for i := 0; i < 3; i++ {
		_, err := svc.MarkCompleted(t.Context(), 1, 1, time.Minute)
		require.NoError(t, err)
	}

	sum, err := svc.CourseSummary(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.CompletedSubtopics)
}

func TestCourseSummary_EmptyCourse(t *testing.T) {
	store := &fakeStore{courseSubs: map[int][]int{10: {}}}
	svc := NewService(store)

	sum, err := svc.CourseSummary(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.Zero(t, sum.TotalSubtopics)
	assert.Zero(t, sum.PercentComplete)
}

func TestCourseSummary_UnknownCourse(t *testing.T) {
	svc := NewService(&fakeStore{courseSubs: map[int][]int{}})

	_, err := svc.CourseSummary(t.Context(), 1, 99)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestMarkCompleted_Validation(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.MarkCompleted(t.Context(), 0, 1, 0)
	assert.ErrorIs(t, err, content.ErrInvalidInput)

	_, err = svc.MarkCompleted(t.Context(), 1, 0, 0)
	assert.ErrorIs(t, err, content.ErrInvalidInput)
}

func TestHistory_IncludesOrphanedRows(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	_, err := svc.MarkCompleted(t.Context(), 1, 5, time.Minute)
	require.NoError(t, err)

	// Simulate subtopic deletion nulling the reference.
	store.rows[0].SubtopicID = nil

	rows, err := svc.History(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].SubtopicID)
	assert.True(t, rows[0].Completed)
}

func TestSubtopicStats(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	scores := []float64{40, 80, 60}
	for i := range scores {
		sid := 5
		store.rows = append([]content.ProgressRow{{
			ID: i + 1, UserID: 1, SubtopicID: &sid, Score: &scores[i], Completed: true,
		}}, store.rows...) // newest first, like the real query
	}

	stats, err := svc.SubtopicStats(t.Context(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Attempts)
	require.NotNil(t, stats.BestScore)
	assert.Equal(t, 80.0, *stats.BestScore)
	require.NotNil(t, stats.LatestScore)
	assert.Equal(t, 60.0, *stats.LatestScore)
	assert.True(t, stats.Completed)
}

func TestSubtopicStats_NoAttempts(t *testing.T) {
	svc := NewService(&fakeStore{})

	stats, err := svc.SubtopicStats(t.Context(), 1, 5)
	require.NoError(t, err)
	assert.Zero(t, stats.Attempts)
	assert.Nil(t, stats.BestScore)
	assert.False(t, stats.Completed)
}
