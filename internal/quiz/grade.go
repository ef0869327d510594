package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/coursegen/internal/content"
)

// QuestionResult is the graded outcome of one answered question.
type QuestionResult struct {
	Question content.QuizQuestion
	Given    string // "A".."D", or "" for unanswered
	Correct  bool
}

// Result is a graded quiz attempt.
type Result struct {
	Total   int
	Correct int
	Percent float64
	Review  []QuestionResult
}

// Grade scores one attempt against a quiz set. answers is positional and
// must have one entry per question; an empty entry counts as unanswered and
// wrong. Letters are accepted in any case.
func Grade(qs []content.QuizQuestion, answers []string) (*Result, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w: empty quiz set", content.ErrInvalidInput)
	}
	if len(answers) != len(qs) {
		return nil, fmt.Errorf("%w: got %d answers for %d questions", content.ErrInvalidInput, len(answers), len(qs))
	}

	res := &Result{Total: len(qs), Review: make([]QuestionResult, len(qs))}
	for i, q := range qs {
		given := strings.ToUpper(strings.TrimSpace(answers[i]))
		switch given {
		case "", "A", "B", "C", "D":
		default:
			return nil, fmt.Errorf("%w: answer %d is %q, want A-D", content.ErrInvalidInput, i+1, answers[i])
		}
		correct := given != "" && given == q.CorrectAnswer
		if correct {
			res.Correct++
		}
		res.Review[i] = QuestionResult{Question: q, Given: given, Correct: correct}
	}
	res.Percent = float64(res.Correct) / float64(res.Total) * 100
	return res, nil
}

// SubmitAttempt grades an attempt and records it as progress. The quiz set
// must already exist. Every submission appends a new attempt row; history
// is never overwritten.
func (s *Service) SubmitAttempt(ctx context.Context, userID, subtopicID int, answers []string, timeSpent time.Duration) (*Result, *content.ProgressRow, error) {
	qs, err := s.store.SubtopicQuizzes(ctx, subtopicID)
	if err != nil {
		return nil, nil, err
	}
	if len(qs) == 0 {
		return nil, nil, fmt.Errorf("subtopic %d has no quiz yet: %w", subtopicID, content.ErrPreconditionFailed)
	}

	res, err := Grade(qs, answers)
	if err != nil {
		return nil, nil, err
	}

	score := res.Percent
	row, err := s.store.RecordProgress(ctx, content.ProgressRecord{
		UserID:     userID,
		SubtopicID: subtopicID,
		// The attempt covers the whole set; the row references it
		// through the set's first question.
		QuizID:    qs[0].ID,
		Score:     &score,
		Completed: true,
		TimeSpent: timeSpent,
	})
	if err != nil {
		return nil, nil, err
	}
	return res, row, nil
}

// Feedback returns a short encouragement band for a score percentage.
func Feedback(percent float64) string {
	switch {
	case percent >= 90:
		return "Excellent! You have mastered this subtopic."
	case percent >= 70:
		return "Good work. Review the questions you missed and move on."
	case percent >= 50:
		return "Getting there. Reread the lesson before retrying."
	default:
		return "Keep practicing. Go through the lesson again and retake the quiz."
	}
}

// Shuffle returns a randomly reordered copy of a quiz set for presentation.
// The stored order and per-question option letters are untouched.
func Shuffle(qs []content.QuizQuestion) []content.QuizQuestion {
	out := make([]content.QuizQuestion, len(qs))
	copy(out, qs)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

var letters = [4]string{"A", "B", "C", "D"}

// ShuffleOptions returns a copy of one question with its options randomly
// permuted and the correct answer letter remapped to follow its option. The
// stored question is untouched; grading against the returned copy stays
// consistent.
func ShuffleOptions(q content.QuizQuestion) content.QuizQuestion {
	perm := rand.Perm(4)

	opts := [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
	out := q
	for dst, src := range perm {
		switch letters[dst] {
		case "A":
			out.OptionA = opts[src]
		case "B":
			out.OptionB = opts[src]
		case "C":
			out.OptionC = opts[src]
		case "D":
			out.OptionD = opts[src]
		}
		if letters[src] == q.CorrectAnswer {
			out.CorrectAnswer = letters[dst]
		}
	}
	return out
}
