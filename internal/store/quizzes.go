package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/module"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/subtopic"
	"github.com/abhisek/coursegen/internal/content"
)

// SaveQuiz persists a subtopic's full quiz set in one transaction: either
// all rows become visible together or none do. If a set already exists
// (another writer finished first), the call is a no-op and the stored set
// wins. A subtopic never ends up with a mix of two generations.
func (s *Store) SaveQuiz(ctx context.Context, subtopicID int, items []content.QuizQuestion) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: empty quiz set", content.ErrInvalidInput)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	exists, err := tx.Subtopic.Query().
		Where(subtopic.ID(subtopicID)).
		Exist(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("check subtopic: %w", err))
	}
	if !exists {
		return rollback(tx, fmt.Errorf("subtopic %d: %w", subtopicID, content.ErrNotFound))
	}

	n, err := tx.Quiz.Query().
		Where(quiz.SubtopicID(subtopicID)).
		Count(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("count existing quiz rows: %w", err))
	}
	if n > 0 {
		// Duplicate write from a concurrent generation; keep the first set.
		return tx.Rollback()
	}

	bulk := make([]*ent.QuizCreate, len(items))
	for i, q := range items {
		bulk[i] = tx.Quiz.Create().
			SetSubtopicID(subtopicID).
			SetQuestion(q.Question).
			SetOptionA(q.OptionA).
			SetOptionB(q.OptionB).
			SetOptionC(q.OptionC).
			SetOptionD(q.OptionD).
			SetCorrectAnswer(q.CorrectAnswer).
			SetExplanation(q.Explanation).
			SetOrderIndex(i)
	}
	if _, err := tx.Quiz.CreateBulk(bulk...).Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("create quiz rows: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit quiz set: %w", err)
	}
	return nil
}

// SubtopicQuizzes returns a subtopic's quiz set ordered by order_index.
// An empty slice means the quiz has not been generated.
func (s *Store) SubtopicQuizzes(ctx context.Context, subtopicID int) ([]content.QuizQuestion, error) {
	rows, err := s.client.Quiz.Query().
		Where(quiz.SubtopicID(subtopicID)).
		Order(ent.Asc(quiz.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	out := make([]content.QuizQuestion, len(rows))
	for i, q := range rows {
		out[i] = content.QuizQuestion{
			ID:            q.ID,
			SubtopicID:    q.SubtopicID,
			Question:      q.Question,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			OrderIndex:    q.OrderIndex,
		}
	}
	return out, nil
}

// QuizSubtopicIDs returns the set of subtopic ids in a course that have a
// stored quiz set.
func (s *Store) QuizSubtopicIDs(ctx context.Context, courseID int) (map[int]bool, error) {
	ids, err := s.client.Quiz.Query().
		Where(quiz.HasSubtopicWith(subtopic.HasModuleWith(module.CourseID(courseID)))).
		Select(quiz.FieldSubtopicID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz subtopics: %w", err)
	}
	out := make(map[int]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
