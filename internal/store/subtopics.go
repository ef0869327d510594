package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/subtopic"
	"github.com/abhisek/coursegen/internal/content"
)

// GetSubtopic returns a single subtopic by id.
func (s *Store) GetSubtopic(ctx context.Context, id int) (*content.Subtopic, error) {
	st, err := s.client.Subtopic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
		}
		return nil, fmt.Errorf("get subtopic: %w", err)
	}
	return subtopicFromEnt(st), nil
}

// SubtopicContext returns a subtopic together with its course title, module
// title, and the titles of earlier siblings, for prompt construction.
func (s *Store) SubtopicContext(ctx context.Context, id int) (*content.SubtopicContext, error) {
	st, err := s.client.Subtopic.Query().
		Where(subtopic.ID(id)).
		WithModule(func(q *ent.ModuleQuery) {
			q.WithCourse()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
		}
		return nil, fmt.Errorf("get subtopic context: %w", err)
	}

	mod := st.Edges.Module
	if mod == nil || mod.Edges.Course == nil {
		return nil, fmt.Errorf("subtopic %d: parent edges not loaded", id)
	}

	earlier, err := s.client.Subtopic.Query().
		Where(
			subtopic.ModuleID(st.ModuleID),
			subtopic.OrderIndexLT(st.OrderIndex),
		).
		Order(ent.Asc(subtopic.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query earlier siblings: %w", err)
	}

	sctx := &content.SubtopicContext{
		Subtopic:    *subtopicFromEnt(st),
		ModuleTitle: mod.Title,
		CourseTitle: mod.Edges.Course.Title,
	}
	for _, sib := range earlier {
		sctx.EarlierTitles = append(sctx.EarlierTitles, sib.Title)
	}
	return sctx, nil
}

// ModuleSubtopics returns a module's subtopics ordered by order_index.
func (s *Store) ModuleSubtopics(ctx context.Context, moduleID int) ([]content.Subtopic, error) {
	rows, err := s.client.Subtopic.Query().
		Where(subtopic.ModuleID(moduleID)).
		Order(ent.Asc(subtopic.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query module subtopics: %w", err)
	}
	out := make([]content.Subtopic, len(rows))
	for i, st := range rows {
		out[i] = *subtopicFromEnt(st)
	}
	return out, nil
}

// SaveLesson fills a subtopic's lesson fields if and only if they are still
// null. A concurrent duplicate generation loses the race silently: the call
// is a no-op when content is already set, and the stored text stays intact.
func (s *Store) SaveLesson(ctx context.Context, id int, text string, readingMinutes int) error {
	n, err := s.client.Subtopic.Update().
		Where(
			subtopic.ID(id),
			subtopic.ContentIsNil(),
		).
		SetContent(text).
		SetReadingMinutes(readingMinutes).
		SetIsGenerated(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson: %w", err)
	}
	if n == 0 {
		// Either the row doesn't exist or another writer filled it first.
		exists, err := s.client.Subtopic.Query().
			Where(subtopic.ID(id)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check subtopic: %w", err)
		}
		if !exists {
			return fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
		}
	}
	return nil
}

// SaveVideo records the outcome of video resolution. url may be empty, which
// persists the checked-but-absent marker. Like SaveLesson, the fill is
// idempotent: once a resolution outcome is recorded, later writes are no-ops.
func (s *Store) SaveVideo(ctx context.Context, id int, url, title, keywords string) error {
	upd := s.client.Subtopic.Update().
		Where(
			subtopic.ID(id),
			subtopic.VideoChecked(false),
		).
		SetVideoChecked(true)
	if keywords != "" {
		upd.SetYoutubeKeywords(keywords)
	}
	if url != "" {
		upd.SetVideoURL(url).SetVideoTitle(title)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("save video: %w", err)
	}
	if n == 0 {
		exists, err := s.client.Subtopic.Query().
			Where(subtopic.ID(id)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check subtopic: %w", err)
		}
		if !exists {
			return fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
		}
	}
	return nil
}

// DeleteSubtopic removes one subtopic. Its quiz rows cascade away; progress
// rows survive with their subtopic and quiz references nulled.
func (s *Store) DeleteSubtopic(ctx context.Context, id int) error {
	err := s.client.Subtopic.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("subtopic %d: %w", id, content.ErrNotFound)
		}
		return fmt.Errorf("delete subtopic: %w", err)
	}
	return nil
}

func subtopicFromEnt(st *ent.Subtopic) *content.Subtopic {
	out := &content.Subtopic{
		ID:           st.ID,
		ModuleID:     st.ModuleID,
		Title:        st.Title,
		OrderIndex:   st.OrderIndex,
		VideoChecked: st.VideoChecked,
		Generated:    st.IsGenerated,
		UpdatedAt:    st.UpdatedAt,
	}
	if st.Content != nil {
		out.Content = *st.Content
		out.HasLesson = true
	}
	if st.ReadingMinutes != nil {
		out.ReadingMinutes = *st.ReadingMinutes
	}
	if st.YoutubeKeywords != nil {
		out.Keywords = *st.YoutubeKeywords
	}
	if st.VideoURL != nil {
		out.VideoURL = *st.VideoURL
	}
	if st.VideoTitle != nil {
		out.VideoTitle = *st.VideoTitle
	}
	return out
}
