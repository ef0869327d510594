package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/coursegen/internal/content"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testOutline() content.Outline {
	return content.Outline{
		Modules: []content.OutlineModule{
			{
				Title:     "Getting Started",
				Subtopics: []string{"What is Python?", "Installing Python", "Your First Program"},
			},
			{
				Title:     "Variables and Data Types",
				Subtopics: []string{"Understanding Variables", "Basic Data Types", "Type Conversion"},
			},
		},
	}
}

func seedCourse(t *testing.T, s *Store, topic string) (*content.User, *content.Course) {
	t.Helper()
	ctx := context.Background()
	u, err := s.GetOrCreateUser(ctx, "u1", "")
	if err != nil {
		t.Fatalf("get or create user: %v", err)
	}
	c, err := s.CreateCourseTree(ctx, u.ID, topic, testOutline())
	if err != nil {
		t.Fatalf("create course tree: %v", err)
	}
	return u, c
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestGetOrCreateUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u1, err := s.GetOrCreateUser(ctx, "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if u1.Username != "alice" || u1.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", u1)
	}

	u2, err := s.GetOrCreateUser(ctx, "alice", "")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if u2.ID != u1.ID {
		t.Errorf("expected same user id, got %d and %d", u1.ID, u2.ID)
	}

	// Identity is case-sensitive.
	u3, err := s.GetOrCreateUser(ctx, "Alice", "")
	if err != nil {
		t.Fatalf("case variant: %v", err)
	}
	if u3.ID == u1.ID {
		t.Error("expected 'Alice' to be a distinct user from 'alice'")
	}

	if _, err := s.GetOrCreateUser(ctx, "", ""); !errors.Is(err, content.ErrInvalidInput) {
		t.Errorf("empty username: got %v, want ErrInvalidInput", err)
	}
}

func TestCreateCourseTreeDenseIndices(t *testing.T) {
	s := openTestStore(t)
	_, c := seedCourse(t, s, "Python Basics")

	if len(c.Modules) != 2 {
		t.Fatalf("modules = %d, want 2", len(c.Modules))
	}
	for i, m := range c.Modules {
		if m.OrderIndex != i {
			t.Errorf("module %d order_index = %d", i, m.OrderIndex)
		}
		if len(m.Subtopics) == 0 {
			t.Errorf("module %d has no subtopics", i)
		}
		for j, st := range m.Subtopics {
			if st.OrderIndex != j {
				t.Errorf("module %d subtopic %d order_index = %d", i, j, st.OrderIndex)
			}
			if st.HasLesson || st.VideoChecked || st.Generated {
				t.Errorf("new subtopic %q has generated state", st.Title)
			}
		}
	}
}

func TestCourseByTopicNormalized(t *testing.T) {
	s := openTestStore(t)
	u, c := seedCourse(t, s, "Python Basics")
	ctx := context.Background()

	for _, topic := range []string{"Python Basics", "python basics", "  PYTHON   Basics "} {
		got, err := s.CourseByTopic(ctx, u.ID, topic)
		if err != nil {
			t.Fatalf("lookup %q: %v", topic, err)
		}
		if got == nil || got.ID != c.ID {
			t.Errorf("lookup %q: expected course %d, got %+v", topic, c.ID, got)
		}
	}

	got, err := s.CourseByTopic(ctx, u.ID, "unrelated topic")
	if err != nil {
		t.Fatalf("miss lookup: %v", err)
	}
	if got != nil {
		t.Errorf("expected cache miss, got course %d", got.ID)
	}
}

func TestCreateCourseTreeDuplicateTopicReturnsWinner(t *testing.T) {
	s := openTestStore(t)
	u, c := seedCourse(t, s, "Python Basics")
	ctx := context.Background()

	// A second create for the same (user, topic) loses the unique-index
	// race and comes back with the existing tree, like GetOrCreateUser.
	got, err := s.CreateCourseTree(ctx, u.ID, "python BASICS", testOutline())
	if err != nil {
		t.Fatalf("duplicate create: %v", err)
	}
	if got.ID != c.ID {
		t.Errorf("expected course %d, got %d", c.ID, got.ID)
	}

	courses, err := s.UserCourses(ctx, u.ID)
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(courses) != 1 {
		t.Errorf("courses = %d, want 1", len(courses))
	}
}

func TestSaveLessonIdempotent(t *testing.T) {
	s := openTestStore(t)
	_, c := seedCourse(t, s, "Python Basics")
	ctx := context.Background()
	id := c.Modules[0].Subtopics[0].ID

	if err := s.SaveLesson(ctx, id, "first version", 5); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// A losing duplicate writer must not clobber the stored text.
	if err := s.SaveLesson(ctx, id, "second version", 9); err != nil {
		t.Fatalf("second save: %v", err)
	}

	st, err := s.GetSubtopic(ctx, id)
	if err != nil {
		t.Fatalf("get subtopic: %v", err)
	}
	if !st.HasLesson || st.Content != "first version" {
		t.Errorf("content = %q, want first version", st.Content)
	}
	if st.ReadingMinutes != 5 {
		t.Errorf("reading_minutes = %d, want 5", st.ReadingMinutes)
	}
	if !st.Generated {
		t.Error("is_generated not set")
	}

	if err := s.SaveLesson(ctx, 99999, "x", 1); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("unknown subtopic: got %v, want ErrNotFound", err)
	}
}

func TestSaveVideoAbsentMarker(t *testing.T) {
	s := openTestStore(t)
	_, c := seedCourse(t, s, "Python Basics")
	ctx := context.Background()
	id := c.Modules[0].Subtopics[0].ID

	if err := s.SaveVideo(ctx, id, "", "", "python basics tutorial"); err != nil {
		t.Fatalf("save absent video: %v", err)
	}

	st, err := s.GetSubtopic(ctx, id)
	if err != nil {
		t.Fatalf("get subtopic: %v", err)
	}
	if !st.VideoChecked {
		t.Error("video_checked not set")
	}
	if st.VideoURL != "" {
		t.Errorf("video_url = %q, want empty", st.VideoURL)
	}
	if st.Keywords != "python basics tutorial" {
		t.Errorf("keywords = %q", st.Keywords)
	}

	// Outcome is sticky: a later write does not replace it.
	if err := s.SaveVideo(ctx, id, "https://youtube.com/watch?v=x", "X", ""); err != nil {
		t.Fatalf("duplicate save: %v", err)
	}
	st, _ = s.GetSubtopic(ctx, id)
	if st.VideoURL != "" {
		t.Errorf("expected absent marker to win, got url %q", st.VideoURL)
	}
}

func quizSet(n int) []content.QuizQuestion {
	items := make([]content.QuizQuestion, n)
	for i := range items {
		items[i] = content.QuizQuestion{
			Question:      "Q?",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: "A",
			Explanation:   "because",
		}
	}
	return items
}

func TestSaveQuizAtomicAndOnce(t *testing.T) {
	s := openTestStore(t)
	_, c := seedCourse(t, s, "Python Basics")
	ctx := context.Background()
	id := c.Modules[0].Subtopics[0].ID

	if err := s.SaveQuiz(ctx, id, quizSet(5)); err != nil {
		t.Fatalf("save quiz: %v", err)
	}

	got, err := s.SubtopicQuizzes(ctx, id)
	if err != nil {
		t.Fatalf("query quizzes: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("quiz rows = %d, want 5", len(got))
	}
	for i, q := range got {
		if q.OrderIndex != i {
			t.Errorf("quiz %d order_index = %d", i, q.OrderIndex)
		}
	}

	// A duplicate set is dropped, not merged.
	if err := s.SaveQuiz(ctx, id, quizSet(5)); err != nil {
		t.Fatalf("duplicate save: %v", err)
	}
	got, _ = s.SubtopicQuizzes(ctx, id)
	if len(got) != 5 {
		t.Errorf("quiz rows after duplicate save = %d, want 5", len(got))
	}

	if err := s.SaveQuiz(ctx, 99999, quizSet(5)); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("unknown subtopic: got %v, want ErrNotFound", err)
	}
}

func TestQuizSubtopicIDs(t *testing.T) {
	s := openTestStore(t)
	_, c := seedCourse(t, s, "Python Basics")
	ctx := context.Background()

	withQuiz := c.Modules[0].Subtopics[0].ID
	if err := s.SaveQuiz(ctx, withQuiz, quizSet(5)); err != nil {
		t.Fatalf("save quiz: %v", err)
	}

	got, err := s.QuizSubtopicIDs(ctx, c.ID)
	if err != nil {
		t.Fatalf("quiz subtopic ids: %v", err)
	}
	if len(got) != 1 || !got[withQuiz] {
		t.Errorf("quiz subtopics = %v, want {%d}", got, withQuiz)
	}

	// Another user's course with its own quiz must not leak in.
	u2, err := s.GetOrCreateUser(ctx, "u2", "")
	if err != nil {
		t.Fatalf("second user: %v", err)
	}
	c2, err := s.CreateCourseTree(ctx, u2.ID, "Go Basics", testOutline())
	if err != nil {
		t.Fatalf("second course: %v", err)
	}
	if err := s.SaveQuiz(ctx, c2.Modules[0].Subtopics[0].ID, quizSet(5)); err != nil {
		t.Fatalf("second quiz: %v", err)
	}
	got, err = s.QuizSubtopicIDs(ctx, c.ID)
	if err != nil {
		t.Fatalf("re-query: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("quiz subtopics after second course = %v", got)
	}
}

func TestRecordProgressAppends(t *testing.T) {
	s := openTestStore(t)
	u, c := seedCourse(t, s, "Python Basics")
	ctx := context.Background()
	id := c.Modules[0].Subtopics[0].ID

	for i := 0; i < 3; i++ {
		score := float64(60 + 10*i)
		_, err := s.RecordProgress(ctx, content.ProgressRecord{
			UserID:     u.ID,
			SubtopicID: id,
			Score:      &score,
			Completed:  true,
			TimeSpent:  90 * time.Second,
		})
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}

	rows, err := s.ProgressFor(ctx, u.ID, id)
	if err != nil {
		t.Fatalf("query progress: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("progress rows = %d, want 3", len(rows))
	}
	seen := map[string]bool{}
	for _, r := range rows {
		if seen[r.AttemptID.String()] {
			t.Errorf("duplicate attempt id %s", r.AttemptID)
		}
		seen[r.AttemptID.String()] = true
		if r.TimeSpent != 90*time.Second {
			t.Errorf("time_spent = %s", r.TimeSpent)
		}
	}
}

func TestSubtopicDeleteKeepsProgress(t *testing.T) {
	s := openTestStore(t)
	u, c := seedCourse(t, s, "Topic X")
	ctx := context.Background()
	id := c.Modules[0].Subtopics[0].ID

	if err := s.SaveQuiz(ctx, id, quizSet(5)); err != nil {
		t.Fatalf("save quiz: %v", err)
	}
	qs, _ := s.SubtopicQuizzes(ctx, id)
	score := 80.0
	if _, err := s.RecordProgress(ctx, content.ProgressRecord{
		UserID:     u.ID,
		SubtopicID: id,
		QuizID:     qs[0].ID,
		Score:      &score,
		Completed:  true,
	}); err != nil {
		t.Fatalf("record progress: %v", err)
	}

	if err := s.DeleteSubtopic(ctx, id); err != nil {
		t.Fatalf("delete subtopic: %v", err)
	}

	qs, err := s.SubtopicQuizzes(ctx, id)
	if err != nil {
		t.Fatalf("query quizzes: %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("quiz rows after delete = %d, want 0", len(qs))
	}

	rows, err := s.UserProgress(ctx, u.ID)
	if err != nil {
		t.Fatalf("query progress: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("progress rows = %d, want 1", len(rows))
	}
	if rows[0].QuizID != nil {
		t.Errorf("quiz_id = %v, want nil", *rows[0].QuizID)
	}
	if rows[0].SubtopicID != nil {
		t.Errorf("subtopic_id = %v, want nil", *rows[0].SubtopicID)
	}
}

func TestUserDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	u, c := seedCourse(t, s, "Topic X")
	ctx := context.Background()
	id := c.Modules[0].Subtopics[0].ID

	if err := s.SaveQuiz(ctx, id, quizSet(5)); err != nil {
		t.Fatalf("save quiz: %v", err)
	}
	if _, err := s.RecordProgress(ctx, content.ProgressRecord{
		UserID:     u.ID,
		SubtopicID: id,
		Completed:  true,
	}); err != nil {
		t.Fatalf("record progress: %v", err)
	}

	if err := s.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := s.GetCourse(ctx, c.ID); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("course after user delete: got %v, want ErrNotFound", err)
	}
	if _, err := s.GetSubtopic(ctx, id); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("subtopic after user delete: got %v, want ErrNotFound", err)
	}
	rows, err := s.UserProgress(ctx, u.ID)
	if err != nil {
		t.Fatalf("query progress: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("progress rows after user delete = %d, want 0", len(rows))
	}
}

func TestSubtopicContext(t *testing.T) {
	s := openTestStore(t)
	_, c := seedCourse(t, s, "Python Basics")
	ctx := context.Background()

	third := c.Modules[0].Subtopics[2]
	sctx, err := s.SubtopicContext(ctx, third.ID)
	if err != nil {
		t.Fatalf("subtopic context: %v", err)
	}
	if sctx.CourseTitle != "Python Basics" {
		t.Errorf("course title = %q", sctx.CourseTitle)
	}
	if sctx.ModuleTitle != "Getting Started" {
		t.Errorf("module title = %q", sctx.ModuleTitle)
	}
	want := []string{"What is Python?", "Installing Python"}
	if len(sctx.EarlierTitles) != len(want) {
		t.Fatalf("earlier titles = %v", sctx.EarlierTitles)
	}
	for i, title := range want {
		if sctx.EarlierTitles[i] != title {
			t.Errorf("earlier[%d] = %q, want %q", i, sctx.EarlierTitles[i], title)
		}
	}
}

func TestLLMCallAudit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, purpose := range []string{"outline", "lesson", "quiz"} {
		err := s.AppendLLMCall(ctx, LLMCallData{
			Provider:    "mock",
			Model:       "mock",
			Purpose:     purpose,
			InputTokens: 10,
			LatencyMs:   5,
			Success:     true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	calls, err := s.RecentLLMCalls(ctx, 2)
	if err != nil {
		t.Fatalf("recent calls: %v", err)
	}
	if len(calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(calls))
	}
	if calls[0].Purpose != "quiz" {
		t.Errorf("newest call purpose = %q, want quiz", calls[0].Purpose)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := s.AppendLLMCall(ctx, LLMCallData{
			Provider: "mock", Model: "mock-model", Purpose: "lesson",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 10, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	err := s.AppendLLMCall(ctx, LLMCallData{
		Provider: "mock", Model: "mock-model", Purpose: "outline",
		InputTokens: 10, OutputTokens: 5, LatencyMs: 30, Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	byPurpose, err := s.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		switch u.Purpose {
		case "lesson":
			if u.Calls != 3 || u.InputTokens != 300 || u.OutputTokens != 150 {
				t.Errorf("lesson usage = %+v", u)
			}
		case "outline":
			if u.Calls != 1 || u.InputTokens != 10 {
				t.Errorf("outline usage = %+v", u)
			}
		default:
			t.Errorf("unexpected purpose %q", u.Purpose)
		}
	}

	byModel, err := s.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 4 || byModel[0].InputTokens != 310 {
		t.Errorf("model usage = %+v", byModel)
	}
}
