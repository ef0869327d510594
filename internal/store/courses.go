package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/course"
	"github.com/abhisek/coursegen/ent/module"
	"github.com/abhisek/coursegen/ent/subtopic"
	"github.com/abhisek/coursegen/internal/content"
)

// CreateCourseTree persists a course with its full module/subtopic tree in
// one transaction. Order indices are assigned densely in outline order.
// Subtopic content fields start null; later generators only fill them in.
func (s *Store) CreateCourseTree(ctx context.Context, userID int, title string, outline content.Outline) (*content.Course, error) {
	if len(outline.Modules) == 0 {
		return nil, fmt.Errorf("%w: outline has no modules", content.ErrInvalidInput)
	}
	for _, m := range outline.Modules {
		if len(m.Subtopics) == 0 {
			return nil, fmt.Errorf("%w: module %q has no subtopics", content.ErrInvalidInput, m.Title)
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	c, err := tx.Course.Create().
		SetUserID(userID).
		SetTitle(title).
		SetTopicKey(content.NormalizeTopic(title)).
		Save(ctx)
	if err != nil {
		cerr := rollback(tx, fmt.Errorf("create course: %w", err))
		if ent.IsConstraintError(err) {
			// A concurrent create for the same (user, topic) won the
			// unique-index race. Return the winner's tree.
			winner, werr := s.CourseByTopic(ctx, userID, title)
			if werr == nil && winner != nil {
				return winner, nil
			}
		}
		return nil, cerr
	}

	for mi, m := range outline.Modules {
		create := tx.Module.Create().
			SetCourseID(c.ID).
			SetTitle(m.Title).
			SetOrderIndex(mi)
		if m.Description != "" {
			create.SetDescription(m.Description)
		}
		mod, err := create.Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("create module %d: %w", mi, err))
		}

		bulk := make([]*ent.SubtopicCreate, len(m.Subtopics))
		for si, st := range m.Subtopics {
			bulk[si] = tx.Subtopic.Create().
				SetModuleID(mod.ID).
				SetTitle(st).
				SetOrderIndex(si)
		}
		if _, err := tx.Subtopic.CreateBulk(bulk...).Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("create subtopics of module %d: %w", mi, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit course tree: %w", err)
	}

	return s.GetCourse(ctx, c.ID)
}

// CourseByTopic looks up a user's course by normalized topic (lowercased,
// whitespace collapsed). Returns (nil, nil) on a cache miss.
func (s *Store) CourseByTopic(ctx context.Context, userID int, topic string) (*content.Course, error) {
	c, err := s.client.Course.Query().
		Where(
			course.UserID(userID),
			course.TopicKey(content.NormalizeTopic(topic)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query course by topic: %w", err)
	}
	return s.GetCourse(ctx, c.ID)
}

// GetCourse returns a course with its modules and subtopics, both ordered by
// order_index.
func (s *Store) GetCourse(ctx context.Context, id int) (*content.Course, error) {
	c, err := s.client.Course.Query().
		Where(course.ID(id)).
		WithModules(func(q *ent.ModuleQuery) {
			q.Order(ent.Asc(module.FieldOrderIndex)).
				WithSubtopics(func(sq *ent.SubtopicQuery) {
					sq.Order(ent.Asc(subtopic.FieldOrderIndex))
				})
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("course %d: %w", id, content.ErrNotFound)
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return courseFromEnt(c), nil
}

// UserCourses returns all courses owned by a user, newest first, without
// their trees.
func (s *Store) UserCourses(ctx context.Context, userID int) ([]content.Course, error) {
	rows, err := s.client.Course.Query().
		Where(course.UserID(userID)).
		Order(ent.Desc(course.FieldCreatedAt), ent.Desc(course.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query user courses: %w", err)
	}
	out := make([]content.Course, len(rows))
	for i, c := range rows {
		out[i] = *courseFromEnt(c)
	}
	return out, nil
}

// DeleteCourse removes a course and its whole subtree.
func (s *Store) DeleteCourse(ctx context.Context, id int) error {
	err := s.client.Course.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("course %d: %w", id, content.ErrNotFound)
		}
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// CourseSubtopicIDs returns the ids of every subtopic in a course, in
// module/subtopic order. Used for derived progress summaries.
func (s *Store) CourseSubtopicIDs(ctx context.Context, courseID int) ([]int, error) {
	ids, err := s.client.Subtopic.Query().
		Where(subtopic.HasModuleWith(module.CourseID(courseID))).
		Order(
			subtopic.ByModuleField(module.FieldOrderIndex),
			ent.Asc(subtopic.FieldOrderIndex),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query course subtopic ids: %w", err)
	}
	return ids, nil
}

func courseFromEnt(c *ent.Course) *content.Course {
	out := &content.Course{
		ID:          c.ID,
		UserID:      c.UserID,
		Title:       c.Title,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, m := range c.Edges.Modules {
		cm := content.Module{
			ID:          m.ID,
			CourseID:    m.CourseID,
			Title:       m.Title,
			Description: m.Description,
			OrderIndex:  m.OrderIndex,
		}
		for _, st := range m.Edges.Subtopics {
			cm.Subtopics = append(cm.Subtopics, *subtopicFromEnt(st))
		}
		out.Modules = append(out.Modules, cm)
	}
	return out
}
