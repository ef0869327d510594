package video

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/coursegen/internal/content"
	"github.com/abhisek/coursegen/internal/llm"
)

type fakeStore struct {
	subs map[int]*content.Subtopic
}

func newFakeStore(subs ...*content.Subtopic) *fakeStore {
	f := &fakeStore{subs: make(map[int]*content.Subtopic)}
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

func (f *fakeStore) SaveVideo(_ context.Context, id int, url, title, keywords string) error {
	sub, ok := f.subs[id]
	if !ok {
		return fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
	}
	if sub.VideoChecked {
		return nil // first writer wins
	}
	sub.VideoChecked = true
	sub.Keywords = keywords
	sub.VideoURL = url
	sub.VideoTitle = title
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

type fakeSearcher struct {
	candidates []Candidate
	err        error // returned on every call
	failFirst  bool  // fail the first call only, then return candidates
	calls      int
	lastQuery  string
}

func (f *fakeSearcher) Search(_ context.Context, query string, _ int) ([]Candidate, error) {
	f.calls++
	f.lastQuery = query
	if f.failFirst && f.calls == 1 {
		return nil, errors.New("transient search failure")
	}
	return f.candidates, f.err
}

// fastConfig shrinks the search retry backoff so failure tests don't sleep.
func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.SearchRetryWait = time.Millisecond
	return cfg
}

func keywordsJSON(q string) json.RawMessage {
	raw, _ := json.Marshal(map[string]string{"keywords": q})
	return raw
}

func lessonSubtopic(id int) *content.Subtopic {
	return &content.Subtopic{ID: id, Title: "Vectors", Content: "text", HasLesson: true}
}

func goodCandidate(id string) Candidate {
	return Candidate{
		ID: id, Title: "Vectors tutorial", URL: "https://www.youtube.com/watch?v=" + id,
		Embeddable: true, Duration: 10 * time.Minute, ViewCount: 100000, LikeCount: 5000,
	}
}

func TestResolve_PersistsBestCandidate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: keywordsJSON("vectors linear algebra tutorial")})
	searcher := &fakeSearcher{candidates: []Candidate{
		{ID: "short", Title: "Vectors tutorial", Embeddable: true, Duration: 30 * time.Second, ViewCount: 9999999},
		goodCandidate("abc"),
		{ID: "noembed", Title: "Vectors course", Embeddable: false, Duration: 10 * time.Minute, ViewCount: 9999999},
	}}
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, searcher, store, DefaultConfig())

	sub, err := svc.Resolve(t.Context(), 7)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sub.VideoURL != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("video url = %q", sub.VideoURL)
	}
	if !sub.VideoChecked {
		t.Error("resolution outcome not marked")
	}
	if sub.Keywords != "vectors linear algebra tutorial" {
		t.Errorf("keywords = %q", sub.Keywords)
	}
	if searcher.lastQuery != "vectors linear algebra tutorial" {
		t.Errorf("search query = %q", searcher.lastQuery)
	}
}

func TestResolve_RequiresLesson(t *testing.T) {
	store := newFakeStore(&content.Subtopic{ID: 7, Title: "Vectors"})
	svc := NewService(llm.NewMockProvider(), &fakeSearcher{}, store, DefaultConfig())

	_, err := svc.Resolve(t.Context(), 7)
	if !errors.Is(err, content.ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
}

func TestResolve_NoQualifyingVideoPersistsAbsence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: keywordsJSON("vectors")})
	searcher := &fakeSearcher{candidates: []Candidate{
		{ID: "long", Title: "Vectors lecture", Embeddable: true, Duration: 3 * time.Hour},
	}}
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, searcher, store, DefaultConfig())

	sub, err := svc.Resolve(t.Context(), 7)
	if !errors.Is(err, content.ErrNoVideoFound) {
		t.Fatalf("expected ErrNoVideoFound, got %v", err)
	}
	if sub == nil || !sub.VideoChecked || sub.VideoURL != "" {
		t.Fatalf("absence not persisted: %+v", sub)
	}
}

func TestResolve_CachedOutcomeSkipsSearch(t *testing.T) {
	searcher := &fakeSearcher{candidates: []Candidate{goodCandidate("abc")}}
	sub := lessonSubtopic(7)
	sub.VideoChecked = true
	sub.VideoURL = "https://www.youtube.com/watch?v=cached"
	store := newFakeStore(sub)
	svc := NewService(llm.NewMockProvider(), searcher, store, DefaultConfig())

	got, err := svc.Resolve(t.Context(), 7)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.VideoURL != "https://www.youtube.com/watch?v=cached" {
		t.Errorf("video url = %q", got.VideoURL)
	}
	if searcher.calls != 0 {
		t.Errorf("cached outcome must not search, got %d calls", searcher.calls)
	}
}

func TestResolve_CachedAbsenceStaysAbsent(t *testing.T) {
	searcher := &fakeSearcher{candidates: []Candidate{goodCandidate("abc")}}
	sub := lessonSubtopic(7)
	sub.VideoChecked = true
	store := newFakeStore(sub)
	svc := NewService(llm.NewMockProvider(), searcher, store, DefaultConfig())

	_, err := svc.Resolve(t.Context(), 7)
	if !errors.Is(err, content.ErrNoVideoFound) {
		t.Fatalf("expected ErrNoVideoFound, got %v", err)
	}
	if searcher.calls != 0 {
		t.Errorf("cached absence must not search, got %d calls", searcher.calls)
	}
}

func TestResolve_SearchFailurePersistsNothing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: keywordsJSON("vectors")})
	searcher := &fakeSearcher{err: errors.New("quota exceeded")}
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, searcher, store, fastConfig())

	_, err := svc.Resolve(t.Context(), 7)
	if err == nil {
		t.Fatal("expected an error")
	}
	if searcher.calls != 2 {
		t.Errorf("expected one retry (2 calls), got %d", searcher.calls)
	}
	sub, _ := store.GetSubtopic(t.Context(), 7)
	if sub.VideoChecked {
		t.Error("search failure must not persist an outcome")
	}
}

func TestResolve_SearchRetriesOnceThenSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: keywordsJSON("vectors")})
	searcher := &fakeSearcher{failFirst: true, candidates: []Candidate{goodCandidate("abc")}}
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, searcher, store, fastConfig())

	sub, err := svc.Resolve(t.Context(), 7)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if searcher.calls != 2 {
		t.Errorf("expected 2 search calls, got %d", searcher.calls)
	}
	if sub.VideoURL != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("unexpected video url %q", sub.VideoURL)
	}
}

func TestResolve_SearchTimeoutIsSoftAndUnrecorded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: keywordsJSON("vectors")})
	searcher := &fakeSearcher{err: context.DeadlineExceeded}
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, searcher, store, fastConfig())

	sub, err := svc.Resolve(t.Context(), 7)
	if !errors.Is(err, content.ErrNoVideoFound) {
		t.Fatalf("expected ErrNoVideoFound, got %v", err)
	}
	if sub == nil {
		t.Fatal("subtopic must be returned on a soft failure")
	}
	stored, _ := store.GetSubtopic(t.Context(), 7)
	if stored.VideoChecked {
		t.Error("timeout must not persist an outcome, a later attempt searches again")
	}
}

func TestResolve_KeywordFailureFallsBackToTitles(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	searcher := &fakeSearcher{candidates: []Candidate{goodCandidate("abc")}}
	store := newFakeStore(lessonSubtopic(7))
	svc := NewService(mock, searcher, store, DefaultConfig())

	sub, err := svc.Resolve(t.Context(), 7)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if searcher.lastQuery != "Test Course Vectors tutorial" {
		t.Errorf("fallback query = %q", searcher.lastQuery)
	}
	if sub.VideoURL == "" {
		t.Error("expected a resolved video")
	}
}

func TestPickBest_PrefersPopularInstructional(t *testing.T) {
	cfg := DefaultConfig()
	candidates := []Candidate{
		{ID: "a", Title: "random vlog", Embeddable: true, Duration: 10 * time.Minute, ViewCount: 1000},
		{ID: "b", Title: "Vectors explained", Embeddable: true, Duration: 10 * time.Minute, ViewCount: 1000},
	}
	best := pickBest(candidates, cfg)
	if best == nil || best.ID != "b" {
		t.Fatalf("best = %+v", best)
	}
}

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"PT4M13S", 4*time.Minute + 13*time.Second, true},
		{"PT1H2M30S", time.Hour + 2*time.Minute + 30*time.Second, true},
		{"PT45S", 45 * time.Second, true},
		{"P1DT2H", 26 * time.Hour, true},
		{"P0D", 0, true},
		{"PT", 0, true},
		{"4M13S", 0, false},
		{"PT4X", 0, false},
	}
	for _, tc := range cases {
		got, err := parseISODuration(tc.in)
		if tc.ok && err != nil {
			t.Errorf("parseISODuration(%q): %v", tc.in, err)
			continue
		}
		if !tc.ok && err == nil {
			t.Errorf("parseISODuration(%q): expected error", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("parseISODuration(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
