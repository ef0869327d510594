// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/module"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/progress"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/subtopic"
)

// SubtopicUpdate is the builder for updating Subtopic entities.
type SubtopicUpdate struct {
	config
	hooks    []Hook
	mutation *SubtopicMutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (_u *SubtopicUpdate) Where(ps ...predicate.Subtopic) *SubtopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *SubtopicUpdate) SetModuleID(v int) *SubtopicUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableModuleID(v *int) *SubtopicUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubtopicUpdate) SetTitle(v string) *SubtopicUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableTitle(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *SubtopicUpdate) SetOrderIndex(v int) *SubtopicUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableOrderIndex(v *int) *SubtopicUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *SubtopicUpdate) AddOrderIndex(v int) *SubtopicUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *SubtopicUpdate) SetContent(v string) *SubtopicUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableContent(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SubtopicUpdate) ClearContent() *SubtopicUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetReadingMinutes sets the "reading_minutes" field.
func (_u *SubtopicUpdate) SetReadingMinutes(v int) *SubtopicUpdate {
	_u.mutation.ResetReadingMinutes()
	_u.mutation.SetReadingMinutes(v)
	return _u
}

// SetNillableReadingMinutes sets the "reading_minutes" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableReadingMinutes(v *int) *SubtopicUpdate {
	if v != nil {
		_u.SetReadingMinutes(*v)
	}
	return _u
}

// AddReadingMinutes adds value to the "reading_minutes" field.
func (_u *SubtopicUpdate) AddReadingMinutes(v int) *SubtopicUpdate {
	_u.mutation.AddReadingMinutes(v)
	return _u
}

// ClearReadingMinutes clears the value of the "reading_minutes" field.
func (_u *SubtopicUpdate) ClearReadingMinutes() *SubtopicUpdate {
	_u.mutation.ClearReadingMinutes()
	return _u
}

// SetYoutubeKeywords sets the "youtube_keywords" field.
func (_u *SubtopicUpdate) SetYoutubeKeywords(v string) *SubtopicUpdate {
	_u.mutation.SetYoutubeKeywords(v)
	return _u
}

// SetNillableYoutubeKeywords sets the "youtube_keywords" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableYoutubeKeywords(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetYoutubeKeywords(*v)
	}
	return _u
}

// ClearYoutubeKeywords clears the value of the "youtube_keywords" field.
func (_u *SubtopicUpdate) ClearYoutubeKeywords() *SubtopicUpdate {
	_u.mutation.ClearYoutubeKeywords()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *SubtopicUpdate) SetVideoURL(v string) *SubtopicUpdate {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableVideoURL(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *SubtopicUpdate) ClearVideoURL() *SubtopicUpdate {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetVideoTitle sets the "video_title" field.
func (_u *SubtopicUpdate) SetVideoTitle(v string) *SubtopicUpdate {
	_u.mutation.SetVideoTitle(v)
	return _u
}

// SetNillableVideoTitle sets the "video_title" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableVideoTitle(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetVideoTitle(*v)
	}
	return _u
}

// ClearVideoTitle clears the value of the "video_title" field.
func (_u *SubtopicUpdate) ClearVideoTitle() *SubtopicUpdate {
	_u.mutation.ClearVideoTitle()
	return _u
}

// SetVideoChecked sets the "video_checked" field.
func (_u *SubtopicUpdate) SetVideoChecked(v bool) *SubtopicUpdate {
	_u.mutation.SetVideoChecked(v)
	return _u
}

// SetNillableVideoChecked sets the "video_checked" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableVideoChecked(v *bool) *SubtopicUpdate {
	if v != nil {
		_u.SetVideoChecked(*v)
	}
	return _u
}

// SetIsGenerated sets the "is_generated" field.
func (_u *SubtopicUpdate) SetIsGenerated(v bool) *SubtopicUpdate {
	_u.mutation.SetIsGenerated(v)
	return _u
}

// SetNillableIsGenerated sets the "is_generated" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableIsGenerated(v *bool) *SubtopicUpdate {
	if v != nil {
		_u.SetIsGenerated(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubtopicUpdate) SetUpdatedAt(v time.Time) *SubtopicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetModule sets the "module" edge to the Module entity.
func (_u *SubtopicUpdate) SetModule(v *Module) *SubtopicUpdate {
	return _u.SetModuleID(v.ID)
}

// AddQuizIDs adds the "quizzes" edge to the Quiz entity by IDs.
func (_u *SubtopicUpdate) AddQuizIDs(ids ...int) *SubtopicUpdate {
	_u.mutation.AddQuizIDs(ids...)
	return _u
}

// AddQuizzes adds the "quizzes" edges to the Quiz entity.
func (_u *SubtopicUpdate) AddQuizzes(v ...*Quiz) *SubtopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuizIDs(ids...)
}

// AddProgresIDs adds the "progress" edge to the Progress entity by IDs.
func (_u *SubtopicUpdate) AddProgresIDs(ids ...int) *SubtopicUpdate {
	_u.mutation.AddProgresIDs(ids...)
	return _u
}

// AddProgress adds the "progress" edges to the Progress entity.
func (_u *SubtopicUpdate) AddProgress(v ...*Progress) *SubtopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgresIDs(ids...)
}

// Mutation returns the SubtopicMutation object of the builder.
func (_u *SubtopicUpdate) Mutation() *SubtopicMutation {
	return _u.mutation
}

// ClearModule clears the "module" edge to the Module entity.
func (_u *SubtopicUpdate) ClearModule() *SubtopicUpdate {
	_u.mutation.ClearModule()
	return _u
}

// ClearQuizzes clears all "quizzes" edges to the Quiz entity.
func (_u *SubtopicUpdate) ClearQuizzes() *SubtopicUpdate {
	_u.mutation.ClearQuizzes()
	return _u
}

// RemoveQuizIDs removes the "quizzes" edge to Quiz entities by IDs.
func (_u *SubtopicUpdate) RemoveQuizIDs(ids ...int) *SubtopicUpdate {
	_u.mutation.RemoveQuizIDs(ids...)
	return _u
}

// RemoveQuizzes removes "quizzes" edges to Quiz entities.
func (_u *SubtopicUpdate) RemoveQuizzes(v ...*Quiz) *SubtopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuizIDs(ids...)
}

// ClearProgress clears all "progress" edges to the Progress entity.
func (_u *SubtopicUpdate) ClearProgress() *SubtopicUpdate {
	_u.mutation.ClearProgress()
	return _u
}

// RemoveProgresIDs removes the "progress" edge to Progress entities by IDs.
func (_u *SubtopicUpdate) RemoveProgresIDs(ids ...int) *SubtopicUpdate {
	_u.mutation.RemoveProgresIDs(ids...)
	return _u
}

// RemoveProgress removes "progress" edges to Progress entities.
func (_u *SubtopicUpdate) RemoveProgress(v ...*Progress) *SubtopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgresIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubtopicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubtopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubtopicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subtopic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := subtopic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subtopic.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderIndex(); ok {
		if err := subtopic.OrderIndexValidator(v); err != nil {
			return &ValidationError{Name: "order_index", err: fmt.Errorf(`ent: validator failed for field "Subtopic.order_index": %w`, err)}
		}
	}
	if _u.mutation.ModuleCleared() && len(_u.mutation.ModuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subtopic.module"`)
	}
	return nil
}

func (_u *SubtopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subtopic.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(subtopic.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(subtopic.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(subtopic.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(subtopic.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.ReadingMinutes(); ok {
		_spec.SetField(subtopic.FieldReadingMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingMinutes(); ok {
		_spec.AddField(subtopic.FieldReadingMinutes, field.TypeInt, value)
	}
	if _u.mutation.ReadingMinutesCleared() {
		_spec.ClearField(subtopic.FieldReadingMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.YoutubeKeywords(); ok {
		_spec.SetField(subtopic.FieldYoutubeKeywords, field.TypeString, value)
	}
	if _u.mutation.YoutubeKeywordsCleared() {
		_spec.ClearField(subtopic.FieldYoutubeKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(subtopic.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(subtopic.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.VideoTitle(); ok {
		_spec.SetField(subtopic.FieldVideoTitle, field.TypeString, value)
	}
	if _u.mutation.VideoTitleCleared() {
		_spec.ClearField(subtopic.FieldVideoTitle, field.TypeString)
	}
	if value, ok := _u.mutation.VideoChecked(); ok {
		_spec.SetField(subtopic.FieldVideoChecked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsGenerated(); ok {
		_spec.SetField(subtopic.FieldIsGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subtopic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ModuleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModuleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizzesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuizzesIDs(); len(nodes) > 0 && !_u.mutation.QuizzesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizzesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgressCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressIDs(); len(nodes) > 0 && !_u.mutation.ProgressCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubtopicUpdateOne is the builder for updating a single Subtopic entity.
type SubtopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtopicMutation
}

// SetModuleID sets the "module_id" field.
func (_u *SubtopicUpdateOne) SetModuleID(v int) *SubtopicUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableModuleID(v *int) *SubtopicUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubtopicUpdateOne) SetTitle(v string) *SubtopicUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableTitle(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *SubtopicUpdateOne) SetOrderIndex(v int) *SubtopicUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableOrderIndex(v *int) *SubtopicUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *SubtopicUpdateOne) AddOrderIndex(v int) *SubtopicUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *SubtopicUpdateOne) SetContent(v string) *SubtopicUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableContent(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SubtopicUpdateOne) ClearContent() *SubtopicUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetReadingMinutes sets the "reading_minutes" field.
func (_u *SubtopicUpdateOne) SetReadingMinutes(v int) *SubtopicUpdateOne {
	_u.mutation.ResetReadingMinutes()
	_u.mutation.SetReadingMinutes(v)
	return _u
}

// SetNillableReadingMinutes sets the "reading_minutes" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableReadingMinutes(v *int) *SubtopicUpdateOne {
	if v != nil {
		_u.SetReadingMinutes(*v)
	}
	return _u
}

// AddReadingMinutes adds value to the "reading_minutes" field.
func (_u *SubtopicUpdateOne) AddReadingMinutes(v int) *SubtopicUpdateOne {
	_u.mutation.AddReadingMinutes(v)
	return _u
}

// ClearReadingMinutes clears the value of the "reading_minutes" field.
func (_u *SubtopicUpdateOne) ClearReadingMinutes() *SubtopicUpdateOne {
	_u.mutation.ClearReadingMinutes()
	return _u
}

// SetYoutubeKeywords sets the "youtube_keywords" field.
func (_u *SubtopicUpdateOne) SetYoutubeKeywords(v string) *SubtopicUpdateOne {
	_u.mutation.SetYoutubeKeywords(v)
	return _u
}

// SetNillableYoutubeKeywords sets the "youtube_keywords" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableYoutubeKeywords(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetYoutubeKeywords(*v)
	}
	return _u
}

// ClearYoutubeKeywords clears the value of the "youtube_keywords" field.
func (_u *SubtopicUpdateOne) ClearYoutubeKeywords() *SubtopicUpdateOne {
	_u.mutation.ClearYoutubeKeywords()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *SubtopicUpdateOne) SetVideoURL(v string) *SubtopicUpdateOne {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableVideoURL(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *SubtopicUpdateOne) ClearVideoURL() *SubtopicUpdateOne {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetVideoTitle sets the "video_title" field.
func (_u *SubtopicUpdateOne) SetVideoTitle(v string) *SubtopicUpdateOne {
	_u.mutation.SetVideoTitle(v)
	return _u
}

// SetNillableVideoTitle sets the "video_title" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableVideoTitle(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetVideoTitle(*v)
	}
	return _u
}

// ClearVideoTitle clears the value of the "video_title" field.
func (_u *SubtopicUpdateOne) ClearVideoTitle() *SubtopicUpdateOne {
	_u.mutation.ClearVideoTitle()
	return _u
}

// SetVideoChecked sets the "video_checked" field.
func (_u *SubtopicUpdateOne) SetVideoChecked(v bool) *SubtopicUpdateOne {
	_u.mutation.SetVideoChecked(v)
	return _u
}

// SetNillableVideoChecked sets the "video_checked" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableVideoChecked(v *bool) *SubtopicUpdateOne {
	if v != nil {
		_u.SetVideoChecked(*v)
	}
	return _u
}

// SetIsGenerated sets the "is_generated" field.
func (_u *SubtopicUpdateOne) SetIsGenerated(v bool) *SubtopicUpdateOne {
	_u.mutation.SetIsGenerated(v)
	return _u
}

// SetNillableIsGenerated sets the "is_generated" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableIsGenerated(v *bool) *SubtopicUpdateOne {
	if v != nil {
		_u.SetIsGenerated(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubtopicUpdateOne) SetUpdatedAt(v time.Time) *SubtopicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetModule sets the "module" edge to the Module entity.
func (_u *SubtopicUpdateOne) SetModule(v *Module) *SubtopicUpdateOne {
	return _u.SetModuleID(v.ID)
}

// AddQuizIDs adds the "quizzes" edge to the Quiz entity by IDs.
func (_u *SubtopicUpdateOne) AddQuizIDs(ids ...int) *SubtopicUpdateOne {
	_u.mutation.AddQuizIDs(ids...)
	return _u
}

// AddQuizzes adds the "quizzes" edges to the Quiz entity.
func (_u *SubtopicUpdateOne) AddQuizzes(v ...*Quiz) *SubtopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuizIDs(ids...)
}

// AddProgresIDs adds the "progress" edge to the Progress entity by IDs.
func (_u *SubtopicUpdateOne) AddProgresIDs(ids ...int) *SubtopicUpdateOne {
	_u.mutation.AddProgresIDs(ids...)
	return _u
}

// AddProgress adds the "progress" edges to the Progress entity.
func (_u *SubtopicUpdateOne) AddProgress(v ...*Progress) *SubtopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgresIDs(ids...)
}

// Mutation returns the SubtopicMutation object of the builder.
func (_u *SubtopicUpdateOne) Mutation() *SubtopicMutation {
	return _u.mutation
}

// ClearModule clears the "module" edge to the Module entity.
func (_u *SubtopicUpdateOne) ClearModule() *SubtopicUpdateOne {
	_u.mutation.ClearModule()
	return _u
}

// ClearQuizzes clears all "quizzes" edges to the Quiz entity.
func (_u *SubtopicUpdateOne) ClearQuizzes() *SubtopicUpdateOne {
	_u.mutation.ClearQuizzes()
	return _u
}

// RemoveQuizIDs removes the "quizzes" edge to Quiz entities by IDs.
func (_u *SubtopicUpdateOne) RemoveQuizIDs(ids ...int) *SubtopicUpdateOne {
	_u.mutation.RemoveQuizIDs(ids...)
	return _u
}

// RemoveQuizzes removes "quizzes" edges to Quiz entities.
func (_u *SubtopicUpdateOne) RemoveQuizzes(v ...*Quiz) *SubtopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuizIDs(ids...)
}

// ClearProgress clears all "progress" edges to the Progress entity.
func (_u *SubtopicUpdateOne) ClearProgress() *SubtopicUpdateOne {
	_u.mutation.ClearProgress()
	return _u
}

// RemoveProgresIDs removes the "progress" edge to Progress entities by IDs.
func (_u *SubtopicUpdateOne) RemoveProgresIDs(ids ...int) *SubtopicUpdateOne {
	_u.mutation.RemoveProgresIDs(ids...)
	return _u
}

// RemoveProgress removes "progress" edges to Progress entities.
func (_u *SubtopicUpdateOne) RemoveProgress(v ...*Progress) *SubtopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgresIDs(ids...)
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (_u *SubtopicUpdateOne) Where(ps ...predicate.Subtopic) *SubtopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubtopicUpdateOne) Select(field string, fields ...string) *SubtopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subtopic entity.
func (_u *SubtopicUpdateOne) Save(ctx context.Context) (*Subtopic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicUpdateOne) SaveX(ctx context.Context) *Subtopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubtopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubtopicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subtopic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := subtopic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subtopic.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderIndex(); ok {
		if err := subtopic.OrderIndexValidator(v); err != nil {
			return &ValidationError{Name: "order_index", err: fmt.Errorf(`ent: validator failed for field "Subtopic.order_index": %w`, err)}
		}
	}
	if _u.mutation.ModuleCleared() && len(_u.mutation.ModuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subtopic.module"`)
	}
	return nil
}

func (_u *SubtopicUpdateOne) sqlSave(ctx context.Context) (_node *Subtopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subtopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopic.FieldID)
		for _, f := range fields {
			if !subtopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtopic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subtopic.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(subtopic.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(subtopic.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(subtopic.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(subtopic.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.ReadingMinutes(); ok {
		_spec.SetField(subtopic.FieldReadingMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingMinutes(); ok {
		_spec.AddField(subtopic.FieldReadingMinutes, field.TypeInt, value)
	}
	if _u.mutation.ReadingMinutesCleared() {
		_spec.ClearField(subtopic.FieldReadingMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.YoutubeKeywords(); ok {
		_spec.SetField(subtopic.FieldYoutubeKeywords, field.TypeString, value)
	}
	if _u.mutation.YoutubeKeywordsCleared() {
		_spec.ClearField(subtopic.FieldYoutubeKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(subtopic.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(subtopic.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.VideoTitle(); ok {
		_spec.SetField(subtopic.FieldVideoTitle, field.TypeString, value)
	}
	if _u.mutation.VideoTitleCleared() {
		_spec.ClearField(subtopic.FieldVideoTitle, field.TypeString)
	}
	if value, ok := _u.mutation.VideoChecked(); ok {
		_spec.SetField(subtopic.FieldVideoChecked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsGenerated(); ok {
		_spec.SetField(subtopic.FieldIsGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subtopic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ModuleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModuleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizzesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuizzesIDs(); len(nodes) > 0 && !_u.mutation.QuizzesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizzesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgressCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressIDs(); len(nodes) > 0 && !_u.mutation.ProgressCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Subtopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
