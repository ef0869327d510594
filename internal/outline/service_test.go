package outline

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

// fakeStore is an in-memory Store for service tests.
type fakeStore struct {
	courses map[string]*content.Course // keyed by normalized topic
	created []content.Outline
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{courses: make(map[string]*content.Course)}
}

func (f *fakeStore) CourseByTopic(_ context.Context, _ int, topic string) (*content.Course, error) {
	return f.courses[content.NormalizeTopic(topic)], nil
}

func (f *fakeStore) CreateCourseTree(_ context.Context, userID int, title string, ol content.Outline) (*content.Course, error) {
	f.created = append(f.created, ol)
	f.nextID++
	c := &content.Course{ID: f.nextID, UserID: userID, Title: title}
	for mi, m := range ol.Modules {
		cm := content.Module{ID: f.nextID*100 + mi, Title: m.Title, OrderIndex: mi}
		for si, st := range m.Subtopics {
			cm.Subtopics = append(cm.Subtopics, content.Subtopic{Title: st, OrderIndex: si})
		}
		c.Modules = append(c.Modules, cm)
	}
	f.courses[content.NormalizeTopic(title)] = c
	return c, nil
}

// outlineJSON builds a response with nModules modules of nSubs subtopics each.
func outlineJSON(nModules, nSubs int) json.RawMessage {
	var mods []string
	for m := 0; m < nModules; m++ {
		var subs []string
		for s := 0; s < nSubs; s++ {
			subs = append(subs, fmt.Sprintf("%q", fmt.Sprintf("Subtopic %d.%d", m+1, s+1)))
		}
		mods = append(mods, fmt.Sprintf(
			`{"title":"Module %d","description":"Covers part %d.","subtopics":[%s]}`,
			m+1, m+1, strings.Join(subs, ","),
		))
	}
	return json.RawMessage(fmt.Sprintf(`{"modules":[%s]}`, strings.Join(mods, ",")))
}

func TestGetOrCreate_GeneratesAndPersists(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: outlineJSON(5, 4)})
	store := newFakeStore()
	svc := NewService(mock, store, DefaultConfig())

	c, created, err := svc.GetOrCreate(t.Context(), 1, "Linear Algebra")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !created {
		t.Fatal("expected generation to run")
	}
	if c.Title != "Linear Algebra" {
		t.Errorf("title = %q", c.Title)
	}
	if len(c.Modules) != 5 {
		t.Fatalf("expected 5 modules, got %d", len(c.Modules))
	}
	if len(c.Modules[0].Subtopics) != 4 {
		t.Fatalf("expected 4 subtopics, got %d", len(c.Modules[0].Subtopics))
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestGetOrCreate_CacheHitSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: outlineJSON(5, 4)})
	store := newFakeStore()
	svc := NewService(mock, store, DefaultConfig())

	if _, _, err := svc.GetOrCreate(t.Context(), 1, "Linear Algebra"); err != nil {
		t.Fatalf("first GetOrCreate: %v", err)
	}

	// Same topic modulo case and whitespace must hit the cache.
	c, created, err := svc.GetOrCreate(t.Context(), 1, "  linear   ALGEBRA ")
	if err != nil {
		t.Fatalf("second GetOrCreate: %v", err)
	}
	if created {
		t.Fatal("expected a cache hit")
	}
	if c == nil || c.Title != "Linear Algebra" {
		t.Fatalf("unexpected course: %+v", c)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call total, got %d", mock.CallCount())
	}
}

func TestGetOrCreate_EmptyTopic(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), newFakeStore(), DefaultConfig())

	_, _, err := svc.GetOrCreate(t.Context(), 1, "   ")
	if !errors.Is(err, content.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGenerate_ClampsOversizedTree(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: outlineJSON(8, 9)})
	svc := NewService(mock, newFakeStore(), DefaultConfig())

	ol, err := svc.Generate(t.Context(), "World History")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ol.Modules) != 6 {
		t.Errorf("expected clamp to 6 modules, got %d", len(ol.Modules))
	}
	for _, m := range ol.Modules {
		if len(m.Subtopics) != 6 {
			t.Errorf("module %q: expected clamp to 6 subtopics, got %d", m.Title, len(m.Subtopics))
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("clamping must not retry, got %d calls", mock.CallCount())
	}
}

func TestGenerate_RetriesUndersizedOnce(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON(2, 4)},
		llm.MockResponse{Content: outlineJSON(5, 4)},
	)
	svc := NewService(mock, newFakeStore(), DefaultConfig())

	ol, err := svc.Generate(t.Context(), "World History")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ol.Modules) != 5 {
		t.Errorf("expected 5 modules, got %d", len(ol.Modules))
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestGenerate_MalformedAfterRetry(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON(2, 4)},
		llm.MockResponse{Content: outlineJSON(5, 1)},
	)
	svc := NewService(mock, newFakeStore(), DefaultConfig())

	_, err := svc.Generate(t.Context(), "World History")
	var malformed *content.GenerationMalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected GenerationMalformedError, got %v", err)
	}
	if malformed.Stage != "outline" {
		t.Errorf("stage = %q", malformed.Stage)
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	store := newFakeStore()
	svc := NewService(mock, store, DefaultConfig())

	_, _, err := svc.GetOrCreate(t.Context(), 1, "Chemistry")
	var failed *content.GenerationFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("expected GenerationFailedError, got %v", err)
	}
	if len(store.created) != 0 {
		t.Error("nothing should have been persisted")
	}
}
