// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/progress"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/subtopic"
	"github.com/abhisek/coursegen/ent/user"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressUpdate) SetUserID(v int) *ProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableUserID(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *ProgressUpdate) SetSubtopicID(v int) *ProgressUpdate {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableSubtopicID(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (_u *ProgressUpdate) ClearSubtopicID() *ProgressUpdate {
	_u.mutation.ClearSubtopicID()
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *ProgressUpdate) SetQuizID(v int) *ProgressUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableQuizID(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// ClearQuizID clears the value of the "quiz_id" field.
func (_u *ProgressUpdate) ClearQuizID() *ProgressUpdate {
	_u.mutation.ClearQuizID()
	return _u
}

// SetScore sets the "score" field.
func (_u *ProgressUpdate) SetScore(v float64) *ProgressUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableScore(v *float64) *ProgressUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ProgressUpdate) AddScore(v float64) *ProgressUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ProgressUpdate) ClearScore() *ProgressUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdate) SetCompleted(v bool) *ProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCompleted(v *bool) *ProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *ProgressUpdate) SetTimeSpent(v int) *ProgressUpdate {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableTimeSpent(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *ProgressUpdate) AddTimeSpent(v int) *ProgressUpdate {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ProgressUpdate) SetUser(v *User) *ProgressUpdate {
	return _u.SetUserID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Subtopic entity.
func (_u *ProgressUpdate) SetSubtopic(v *Subtopic) *ProgressUpdate {
	return _u.SetSubtopicID(v.ID)
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *ProgressUpdate) SetQuiz(v *Quiz) *ProgressUpdate {
	return _u.SetQuizID(v.ID)
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ProgressUpdate) ClearUser() *ProgressUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearSubtopic clears the "subtopic" edge to the Subtopic entity.
func (_u *ProgressUpdate) ClearSubtopic() *ProgressUpdate {
	_u.mutation.ClearSubtopic()
	return _u
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *ProgressUpdate) ClearQuiz() *ProgressUpdate {
	_u.mutation.ClearQuiz()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := progress.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Progress.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpent(); ok {
		if err := progress.TimeSpentValidator(v); err != nil {
			return &ValidationError{Name: "time_spent", err: fmt.Errorf(`ent: validator failed for field "Progress.time_spent": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Progress.user"`)
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(progress.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(progress.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(progress.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(progress.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(progress.FieldTimeSpent, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.UserTable,
			Columns: []string{progress.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.UserTable,
			Columns: []string{progress.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.SubtopicTable,
			Columns: []string{progress.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.SubtopicTable,
			Columns: []string{progress.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.QuizTable,
			Columns: []string{progress.QuizColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.QuizTable,
			Columns: []string{progress.QuizColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProgressUpdateOne) SetUserID(v int) *ProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableUserID(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *ProgressUpdateOne) SetSubtopicID(v int) *ProgressUpdateOne {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableSubtopicID(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (_u *ProgressUpdateOne) ClearSubtopicID() *ProgressUpdateOne {
	_u.mutation.ClearSubtopicID()
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *ProgressUpdateOne) SetQuizID(v int) *ProgressUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableQuizID(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// ClearQuizID clears the value of the "quiz_id" field.
func (_u *ProgressUpdateOne) ClearQuizID() *ProgressUpdateOne {
	_u.mutation.ClearQuizID()
	return _u
}

// SetScore sets the "score" field.
func (_u *ProgressUpdateOne) SetScore(v float64) *ProgressUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableScore(v *float64) *ProgressUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ProgressUpdateOne) AddScore(v float64) *ProgressUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ProgressUpdateOne) ClearScore() *ProgressUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdateOne) SetCompleted(v bool) *ProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCompleted(v *bool) *ProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *ProgressUpdateOne) SetTimeSpent(v int) *ProgressUpdateOne {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableTimeSpent(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *ProgressUpdateOne) AddTimeSpent(v int) *ProgressUpdateOne {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ProgressUpdateOne) SetUser(v *User) *ProgressUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Subtopic entity.
func (_u *ProgressUpdateOne) SetSubtopic(v *Subtopic) *ProgressUpdateOne {
	return _u.SetSubtopicID(v.ID)
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *ProgressUpdateOne) SetQuiz(v *Quiz) *ProgressUpdateOne {
	return _u.SetQuizID(v.ID)
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ProgressUpdateOne) ClearUser() *ProgressUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearSubtopic clears the "subtopic" edge to the Subtopic entity.
func (_u *ProgressUpdateOne) ClearSubtopic() *ProgressUpdateOne {
	_u.mutation.ClearSubtopic()
	return _u
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *ProgressUpdateOne) ClearQuiz() *ProgressUpdateOne {
	_u.mutation.ClearQuiz()
	return _u
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := progress.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Progress.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpent(); ok {
		if err := progress.TimeSpentValidator(v); err != nil {
			return &ValidationError{Name: "time_spent", err: fmt.Errorf(`ent: validator failed for field "Progress.time_spent": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Progress.user"`)
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(progress.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(progress.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(progress.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(progress.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(progress.FieldTimeSpent, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.UserTable,
			Columns: []string{progress.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.UserTable,
			Columns: []string{progress.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.SubtopicTable,
			Columns: []string{progress.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.SubtopicTable,
			Columns: []string{progress.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.QuizTable,
			Columns: []string{progress.QuizColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.QuizTable,
			Columns: []string{progress.QuizColumn},
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
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
