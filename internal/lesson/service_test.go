package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/llm"
)

type fakeStore struct {
	subs map[int]*content.Subtopic
	ctxs map[int]*content.SubtopicContext
}

func newFakeStore(subs ...*content.Subtopic) *fakeStore {
	f := &fakeStore{
		subs: make(map[int]*content.Subtopic),
		ctxs: make(map[int]*content.SubtopicContext),
	}
	for _, s := range subs {
		f.subs[s.ID] = s
		f.ctxs[s.ID] = &content.SubtopicContext{
			Subtopic:    *s,
			ModuleTitle: "Module One",
			CourseTitle: "Test Course",
		}
	}
	return f
}

func (f *fakeStore) SubtopicContext(_ context.Context, id int) (*content.SubtopicContext, error) {
	sc, ok := f.ctxs[id]
	if !ok {
		return nil, fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
	}
	sc.Subtopic = *f.subs[id]
	return sc, nil
}

func (f *fakeStore) SaveLesson(_ context.Context, id int, text string, minutes int) error {
	sub, ok := f.subs[id]
	if !ok {
		return fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
	}
	if sub.HasLesson {
		return nil // first writer wins
	}
	sub.Content = text
	sub.HasLesson = true
	sub.ReadingMinutes = minutes
	sub.Generated = true
	return nil
}

func (f *fakeStore) GetSubtopic(_ context.Context, id int) (*content.Subtopic, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
	}
	cp := *sub
	return &cp, nil
}

func lessonJSON(words int) json.RawMessage {
	text := strings.TrimSpace(strings.Repeat("word ", words))
	raw, _ := json.Marshal(map[string]string{"content": text})
	return raw
}

func TestGetOrGenerate_GeneratesAndPersists(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: lessonJSON(400)})
	store := newFakeStore(&content.Subtopic{ID: 7, Title: "Vectors"})
	svc := NewService(mock, store, DefaultConfig())

	sub, created, err := svc.GetOrGenerate(t.Context(), 7)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if !created {
		t.Fatal("expected generation to run")
	}
	if !sub.HasLesson {
		t.Fatal("lesson not persisted")
	}
	if sub.ReadingMinutes != 2 {
		t.Errorf("reading minutes = %d, want 2", sub.ReadingMinutes)
	}
}

func TestGetOrGenerate_CacheHitSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	store := newFakeStore(&content.Subtopic{
		ID: 7, Title: "Vectors",
		Content: "cached text", HasLesson: true, ReadingMinutes: 1,
	})
	svc := NewService(mock, store, DefaultConfig())

	sub, created, err := svc.GetOrGenerate(t.Context(), 7)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if created {
		t.Fatal("expected a cache hit")
	}
	if sub.Content != "cached text" {
		t.Errorf("content = %q", sub.Content)
	}
	if mock.CallCount() != 0 {
		t.Errorf("cache hit must not call the provider, got %d calls", mock.CallCount())
	}
}

func TestGetOrGenerate_UnknownSubtopic(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), newFakeStore(), DefaultConfig())

	_, _, err := svc.GetOrGenerate(t.Context(), 99)
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetOrGenerate_RetriesShortLessonOnce(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: lessonJSON(20)},
		llm.MockResponse{Content: lessonJSON(300)},
	)
	store := newFakeStore(&content.Subtopic{ID: 7, Title: "Vectors"})
	svc := NewService(mock, store, DefaultConfig())

	sub, _, err := svc.GetOrGenerate(t.Context(), 7)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if !sub.HasLesson {
		t.Fatal("lesson not persisted")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestGetOrGenerate_TooShortAfterRetry(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: lessonJSON(20)},
		llm.MockResponse{Content: lessonJSON(30)},
	)
	store := newFakeStore(&content.Subtopic{ID: 7, Title: "Vectors"})
	svc := NewService(mock, store, DefaultConfig())

	_, _, err := svc.GetOrGenerate(t.Context(), 7)
	var failed *content.GenerationFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("expected GenerationFailedError, got %v", err)
	}
	if sub, _ := store.GetSubtopic(t.Context(), 7); sub.HasLesson {
		t.Error("nothing should have been persisted")
	}
}

func TestReadingMinutes(t *testing.T) {
	cases := []struct {
		words, want int
	}{
		{0, 1},
		{1, 1},
		{200, 1},
		{201, 2},
		{1000, 5},
	}
	for _, tc := range cases {
		text := strings.TrimSpace(strings.Repeat("w ", tc.words))
		if got := ReadingMinutes(text, 200); got != tc.want {
			t.Errorf("ReadingMinutes(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
}
