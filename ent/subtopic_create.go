// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/module"
	"github.com/abhisek/coursegen/ent/progress"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/subtopic"
)

// SubtopicCreate is the builder for creating a Subtopic entity.
type SubtopicCreate struct {
	config
	mutation *SubtopicMutation
	hooks    []Hook
}

// SetModuleID sets the "module_id" field.
func (_c *SubtopicCreate) SetModuleID(v int) *SubtopicCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SubtopicCreate) SetTitle(v string) *SubtopicCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *SubtopicCreate) SetOrderIndex(v int) *SubtopicCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *SubtopicCreate) SetContent(v string) *SubtopicCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *SubtopicCreate) SetNillableContent(v *string) *SubtopicCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetReadingMinutes sets the "reading_minutes" field.
func (_c *SubtopicCreate) SetReadingMinutes(v int) *SubtopicCreate {
	_c.mutation.SetReadingMinutes(v)
	return _c
}

// SetNillableReadingMinutes sets the "reading_minutes" field if the given value is not nil.
func (_c *SubtopicCreate) SetNillableReadingMinutes(v *int) *SubtopicCreate {
	if v != nil {
		_c.SetReadingMinutes(*v)
	}
	return _c
}

// SetYoutubeKeywords sets the "youtube_keywords" field.
func (_c *SubtopicCreate) SetYoutubeKeywords(v string) *SubtopicCreate {
	_c.mutation.SetYoutubeKeywords(v)
	return _c
}

// SetNillableYoutubeKeywords sets the "youtube_keywords" field if the given value is not nil.
func (_c *SubtopicCreate) SetNillableYoutubeKeywords(v *string) *SubtopicCreate {
	if v != nil {
		_c.SetYoutubeKeywords(*v)
	}
	return _c
}

// SetVideoURL sets the "video_url" field.
func (_c *SubtopicCreate) SetVideoURL(v string) *SubtopicCreate {
	_c.mutation.SetVideoURL(v)
	return _c
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_c *SubtopicCreate) SetNillableVideoURL(v *string) *SubtopicCreate {
	if v != nil {
		_c.SetVideoURL(*v)
	}
	return _c
}

// SetVideoTitle sets the "video_title" field.
func (_c *SubtopicCreate) SetVideoTitle(v string) *SubtopicCreate {
	_c.mutation.SetVideoTitle(v)
	return _c
}

// SetNillableVideoTitle sets the "video_title" field if the given value is not nil.
func (_c *SubtopicCreate) SetNillableVideoTitle(v *string) *SubtopicCreate {
	if v != nil {
		_c.SetVideoTitle(*v)
	}
	return _c
}

// SetVideoChecked sets the "video_checked" field.
func (_c *SubtopicCreate) SetVideoChecked(v bool) *SubtopicCreate {
	_c.mutation.SetVideoChecked(v)
	return _c
}

// SetNillableVideoChecked sets the "video_checked" field if the given value is not nil.
func (_c *SubtopicCreate) SetNillableVideoChecked(v *bool) *SubtopicCreate {
	if v != nil {
		_c.SetVideoChecked(*v)
	}
	return _c
}

// SetIsGenerated sets the "is_generated" field.
func (_c *SubtopicCreate) SetIsGenerated(v bool) *SubtopicCreate {
	_c.mutation.SetIsGenerated(v)
	return _c
}

// SetNillableIsGenerated sets the "is_generated" field if the given value is not nil.
func (_c *SubtopicCreate) SetNillableIsGenerated(v *bool) *SubtopicCreate {
	if v != nil {
		_c.SetIsGenerated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubtopicCreate) SetCreatedAt(v time.Time) *SubtopicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubtopicCreate) SetNillableCreatedAt(v *time.Time) *SubtopicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubtopicCreate) SetUpdatedAt(v time.Time) *SubtopicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubtopicCreate) SetNillableUpdatedAt(v *time.Time) *SubtopicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetModule sets the "module" edge to the Module entity.
func (_c *SubtopicCreate) SetModule(v *Module) *SubtopicCreate {
	return _c.SetModuleID(v.ID)
}

// AddQuizIDs adds the "quizzes" edge to the Quiz entity by IDs.
func (_c *SubtopicCreate) AddQuizIDs(ids ...int) *SubtopicCreate {
	_c.mutation.AddQuizIDs(ids...)
	return _c
}

// AddQuizzes adds the "quizzes" edges to the Quiz entity.
func (_c *SubtopicCreate) AddQuizzes(v ...*Quiz) *SubtopicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuizIDs(ids...)
}

// AddProgresIDs adds the "progress" edge to the Progress entity by IDs.
func (_c *SubtopicCreate) AddProgresIDs(ids ...int) *SubtopicCreate {
	_c.mutation.AddProgresIDs(ids...)
	return _c
}

// AddProgress adds the "progress" edges to the Progress entity.
func (_c *SubtopicCreate) AddProgress(v ...*Progress) *SubtopicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProgresIDs(ids...)
}

// Mutation returns the SubtopicMutation object of the builder.
func (_c *SubtopicCreate) Mutation() *SubtopicMutation {
	return _c.mutation
}

// Save creates the Subtopic in the database.
func (_c *SubtopicCreate) Save(ctx context.Context) (*Subtopic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubtopicCreate) SaveX(ctx context.Context) *Subtopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubtopicCreate) defaults() {
	if _, ok := _c.mutation.VideoChecked(); !ok {
		v := subtopic.DefaultVideoChecked
		_c.mutation.SetVideoChecked(v)
	}
	if _, ok := _c.mutation.IsGenerated(); !ok {
		v := subtopic.DefaultIsGenerated
		_c.mutation.SetIsGenerated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subtopic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subtopic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubtopicCreate) check() error {
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "Subtopic.module_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Subtopic.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := subtopic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subtopic.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Subtopic.order_index"`)}
	}
	if v, ok := _c.mutation.OrderIndex(); ok {
		if err := subtopic.OrderIndexValidator(v); err != nil {
			return &ValidationError{Name: "order_index", err: fmt.Errorf(`ent: validator failed for field "Subtopic.order_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VideoChecked(); !ok {
		return &ValidationError{Name: "video_checked", err: errors.New(`ent: missing required field "Subtopic.video_checked"`)}
	}
	if _, ok := _c.mutation.IsGenerated(); !ok {
		return &ValidationError{Name: "is_generated", err: errors.New(`ent: missing required field "Subtopic.is_generated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subtopic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Subtopic.updated_at"`)}
	}
	if len(_c.mutation.ModuleIDs()) == 0 {
		return &ValidationError{Name: "module", err: errors.New(`ent: missing required edge "Subtopic.module"`)}
	}
	return nil
}

func (_c *SubtopicCreate) sqlSave(ctx context.Context) (*Subtopic, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubtopicCreate) createSpec() (*Subtopic, *sqlgraph.CreateSpec) {
	var (
		_node = &Subtopic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subtopic.Table, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(subtopic.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(subtopic.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(subtopic.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.ReadingMinutes(); ok {
		_spec.SetField(subtopic.FieldReadingMinutes, field.TypeInt, value)
		_node.ReadingMinutes = &value
	}
	if value, ok := _c.mutation.YoutubeKeywords(); ok {
		_spec.SetField(subtopic.FieldYoutubeKeywords, field.TypeString, value)
		_node.YoutubeKeywords = &value
	}
	if value, ok := _c.mutation.VideoURL(); ok {
		_spec.SetField(subtopic.FieldVideoURL, field.TypeString, value)
		_node.VideoURL = &value
	}
	if value, ok := _c.mutation.VideoTitle(); ok {
		_spec.SetField(subtopic.FieldVideoTitle, field.TypeString, value)
		_node.VideoTitle = &value
	}
	if value, ok := _c.mutation.VideoChecked(); ok {
		_spec.SetField(subtopic.FieldVideoChecked, field.TypeBool, value)
		_node.VideoChecked = value
	}
	if value, ok := _c.mutation.IsGenerated(); ok {
		_spec.SetField(subtopic.FieldIsGenerated, field.TypeBool, value)
		_node.IsGenerated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subtopic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subtopic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ModuleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtopic.ModuleTable,
			Columns: []string{subtopic.ModuleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(module.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ModuleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuizzesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subtopic.QuizzesTable,
			Columns: []string{subtopic.QuizzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProgressIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subtopic.ProgressTable,
			Columns: []string{subtopic.ProgressColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubtopicCreateBulk is the builder for creating many Subtopic entities in bulk.
type SubtopicCreateBulk struct {
	config
	err      error
	builders []*SubtopicCreate
}

// Save creates the Subtopic entities in the database.
func (_c *SubtopicCreateBulk) Save(ctx context.Context) ([]*Subtopic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subtopic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubtopicMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubtopicCreateBulk) SaveX(ctx context.Context) []*Subtopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
