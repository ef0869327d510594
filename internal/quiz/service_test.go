package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/llm"
)

type fakeStore struct {
	subs     map[int]*content.Subtopic
	quizzes  map[int][]content.QuizQuestion
	progress []content.ProgressRecord
}

func newFakeStore(subs ...*content.Subtopic) *fakeStore {
	f := &fakeStore{
		subs:    make(map[int]*content.Subtopic),
		quizzes: make(map[int][]content.QuizQuestion),
	}
	for _, s := range subs {
		f.subs[s.ID] = s
	}
	return f
}

func (f *fakeStore) SubtopicContext(_ context.Context, id int) (*content.SubtopicContext, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
	}
	return &content.SubtopicContext{
		Subtopic:    *sub,
		ModuleTitle: "Module One",
		CourseTitle: "Test Course",
	}, nil
}

func (f *fakeStore) SubtopicQuizzes(_ context.Context, id int) ([]content.QuizQuestion, error) {
	return f.quizzes[id], nil
}

func (f *fakeStore) SaveQuiz(_ context.Context, id int, items []content.QuizQuestion) error {
	if _, ok := f.subs[id]; !ok {
		return fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
	}
	if len(f.quizzes[id]) > 0 {
		return nil // first set wins
	}
	stored := make([]content.QuizQuestion, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].ID = i + 1
		stored[i].SubtopicID = id
	}
	f.quizzes[id] = stored
	return nil
}

func (f *fakeStore) RecordProgress(_ context.Context, rec content.ProgressRecord) (*content.ProgressRow, error) {
	f.progress = append(f.progress, rec)
	sid := rec.SubtopicID
	return &content.ProgressRow{
		ID: len(f.progress), UserID: rec.UserID, SubtopicID: &sid,
		Score: rec.Score, Completed: rec.Completed, TimeSpent: rec.TimeSpent,
	}, nil
}

func quizJSON(n int) json.RawMessage {
	var qs []string
	for i := 0; i < n; i++ {
		qs = append(qs, fmt.Sprintf(
			`{"question":"Question %d?","option_a":"a","option_b":"b","option_c":"c","option_d":"d","correct_answer":"B","explanation":"Because."}`,
			i+1,
		))
	}
	return json.RawMessage(fmt.Sprintf(`{"questions":[%s]}`, strings.Join(qs, ",")))
}

func lessonSubtopic(id int) *content.Subtopic {
	return &content.Subtopic{ID: id, Title: "Vectors", Content: "lesson text", HasLesson: true}
}

func TestGetOrGenerate_GeneratesFullSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(5)})
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, store, DefaultConfig())

	qs, created, err := svc.GetOrGenerate(t.Context(), 7)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if !created {
		t.Fatal("expected generation to run")
	}
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.OrderIndex != i {
			t.Errorf("question %d order index = %d", i, q.OrderIndex)
		}
	}
}

func TestGetOrGenerate_ExistingSetSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(5)})
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, store, DefaultConfig())

	if _, _, err := svc.GetOrGenerate(t.Context(), 7); err != nil {
		t.Fatalf("first GetOrGenerate: %v", err)
	}
	qs, created, err := svc.GetOrGenerate(t.Context(), 7)
	if err != nil {
		t.Fatalf("second GetOrGenerate: %v", err)
	}
	if created {
		t.Fatal("expected the stored set")
	}
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call total, got %d", mock.CallCount())
	}
}

func TestGetOrGenerate_RequiresLesson(t *testing.T) {
	store := newFakeStore(&content.Subtopic{ID: 7, Title: "Vectors"})
	svc := NewService(llm.NewMockProvider(), store, DefaultConfig())

	_, _, err := svc.GetOrGenerate(t.Context(), 7)
	if !errors.Is(err, content.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
}

func TestGetOrGenerate_RetriesWholeSetOnce(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON(3)},
		llm.MockResponse{Content: quizJSON(5)},
	)
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, store, DefaultConfig())

	qs, _, err := svc.GetOrGenerate(t.Context(), 7)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestGetOrGenerate_MalformedAfterRetry(t *testing.T) {
	bad := json.RawMessage(`{"questions":[{"question":"Q?","option_a":"a","option_b":"b","option_c":"c","option_d":"d","correct_answer":"E","explanation":"x"}]}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: bad},
	)
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, store, DefaultConfig())

	_, _, err := svc.GetOrGenerate(t.Context(), 7)
	var malformed *content.GenerationMalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected GenerationMalformedError, got %v", err)
	}
	if len(store.quizzes[7]) != 0 {
		t.Error("nothing should have been persisted")
	}
}

func TestValidateSet(t *testing.T) {
	good := questionOutput{
		Question: "Q?", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectAnswer: "A", Explanation: "x",
	}

	five := make([]questionOutput, 5)
	for i := range five {
		five[i] = good
	}
	if err := validateSet(five, 5); err != nil {
		t.Errorf("valid set rejected: %v", err)
	}

	if err := validateSet(five[:4], 5); err == nil {
		t.Error("short set accepted")
	}

	badAnswer := five
	badAnswer[2].CorrectAnswer = "e"
	if err := validateSet(badAnswer, 5); err == nil {
		t.Error("lowercase answer letter accepted")
	}
}

func TestGrade(t *testing.T) {
	qs := []content.QuizQuestion{
		{Question: "1", CorrectAnswer: "A"},
		{Question: "2", CorrectAnswer: "B"},
		{Question: "3", CorrectAnswer: "C"},
		{Question: "4", CorrectAnswer: "D"},
	}

	res, err := Grade(qs, []string{"a", "B", "", "A"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Correct != 2 || res.Total != 4 {
		t.Errorf("correct/total = %d/%d", res.Correct, res.Total)
	}
	if res.Percent != 50 {
		t.Errorf("percent = %v", res.Percent)
	}
	if res.Review[2].Correct || res.Review[2].Given != "" {
		t.Errorf("unanswered question graded wrong: %+v", res.Review[2])
	}

	if _, err := Grade(qs, []string{"A"}); !errors.Is(err, content.ErrInvalidInput) {
		t.Errorf("answer count mismatch: %v", err)
	}
	if _, err := Grade(qs, []string{"A", "B", "C", "X"}); !errors.Is(err, content.ErrInvalidInput) {
		t.Errorf("bad letter: %v", err)
	}
}

func TestSubmitAttempt_RecordsProgress(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(5)})
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, store, DefaultConfig())

	if _, _, err := svc.GetOrGenerate(t.Context(), 7); err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}

	res, row, err := svc.SubmitAttempt(t.Context(), 1, 7, []string{"B", "B", "B", "A", "C"}, 90*time.Second)
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if res.Correct != 3 {
		t.Errorf("correct = %d", res.Correct)
	}
	if row.Score == nil || *row.Score != 60 {
		t.Errorf("score = %v", row.Score)
	}
	if len(store.progress) != 1 || !store.progress[0].Completed {
		t.Errorf("progress = %+v", store.progress)
	}
	if got := store.progress[0].QuizID; got != 1 {
		t.Errorf("attempt must reference the set's first question, got quiz id %d", got)
	}

	// A second attempt appends, never overwrites.
	if _, _, err := svc.SubmitAttempt(t.Context(), 1, 7, []string{"B", "B", "B", "B", "B"}, time.Minute); err != nil {
		t.Fatalf("second SubmitAttempt: %v", err)
	}
	if len(store.progress) != 2 {
		t.Errorf("expected 2 progress rows, got %d", len(store.progress))
	}
}

func TestSubmitAttempt_RequiresQuiz(t *testing.T) {
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(llm.NewMockProvider(), store, DefaultConfig())

	_, _, err := svc.SubmitAttempt(t.Context(), 1, 7, []string{"A"}, 0)
	if !errors.Is(err, content.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
}

func TestFeedbackBands(t *testing.T) {
	cases := []struct {
		percent float64
		want    string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{75, "Good work"},
		{50, "Getting there"},
		{20, "Keep practicing"},
	}
	for _, tc := range cases {
		if got := Feedback(tc.percent); !strings.HasPrefix(got, tc.want) {
			t.Errorf("Feedback(%v) = %q, want prefix %q", tc.percent, got, tc.want)
		}
	}
}

func TestShuffleOptionsKeepsCorrectAnswer(t *testing.T) {
	q := content.QuizQuestion{
		Question: "Q?", OptionA: "alpha", OptionB: "beta", OptionC: "gamma", OptionD: "delta",
		CorrectAnswer: "C",
	}
	for i := 0; i < 20; i++ {
		got := ShuffleOptions(q)
		if got.Option(got.CorrectAnswer) != "gamma" {
			t.Fatalf("correct answer text changed: %+v", got)
		}
		opts := map[string]bool{
			got.OptionA: true, got.OptionB: true, got.OptionC: true, got.OptionD: true,
		}
		for _, want := range []string{"alpha", "beta", "gamma", "delta"} {
			if !opts[want] {
				t.Fatalf("option %q lost in shuffle: %+v", want, got)
			}
		}
	}
}
