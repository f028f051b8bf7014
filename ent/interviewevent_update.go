// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervu/ent/interviewevent"
	"github.com/abhisek/intervu/ent/predicate"
)

// InterviewEventUpdate is the builder for updating InterviewEvent entities.
type InterviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewEventMutation
}

// Where appends a list predicates to the InterviewEventUpdate builder.
func (_u *InterviewEventUpdate) Where(ps ...predicate.InterviewEvent) *InterviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEventUpdate) SetSessionID(v string) *InterviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableSessionID(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *InterviewEventUpdate) SetAction(v string) *InterviewEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableAction(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *InterviewEventUpdate) SetPosition(v string) *InterviewEventUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillablePosition(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetTopicsCompleted sets the "topics_completed" field.
func (_u *InterviewEventUpdate) SetTopicsCompleted(v int) *InterviewEventUpdate {
	_u.mutation.ResetTopicsCompleted()
	_u.mutation.SetTopicsCompleted(v)
	return _u
}

// SetNillableTopicsCompleted sets the "topics_completed" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableTopicsCompleted(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetTopicsCompleted(*v)
	}
	return _u
}

// AddTopicsCompleted adds value to the "topics_completed" field.
func (_u *InterviewEventUpdate) AddTopicsCompleted(v int) *InterviewEventUpdate {
	_u.mutation.AddTopicsCompleted(v)
	return _u
}

// SetMeanScore sets the "mean_score" field.
func (_u *InterviewEventUpdate) SetMeanScore(v float64) *InterviewEventUpdate {
	_u.mutation.ResetMeanScore()
	_u.mutation.SetMeanScore(v)
	return _u
}

// SetNillableMeanScore sets the "mean_score" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableMeanScore(v *float64) *InterviewEventUpdate {
	if v != nil {
		_u.SetMeanScore(*v)
	}
	return _u
}

// AddMeanScore adds value to the "mean_score" field.
func (_u *InterviewEventUpdate) AddMeanScore(v float64) *InterviewEventUpdate {
	_u.mutation.AddMeanScore(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *InterviewEventUpdate) SetSuccess(v bool) *InterviewEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableSuccess(v *bool) *InterviewEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_u *InterviewEventUpdate) Mutation() *InterviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := interviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := interviewevent.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.position": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewevent.Table, interviewevent.Columns, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(interviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(interviewevent.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicsCompleted(); ok {
		_spec.SetField(interviewevent.FieldTopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicsCompleted(); ok {
		_spec.AddField(interviewevent.FieldTopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeanScore(); ok {
		_spec.SetField(interviewevent.FieldMeanScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMeanScore(); ok {
		_spec.AddField(interviewevent.FieldMeanScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(interviewevent.FieldSuccess, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewEventUpdateOne is the builder for updating a single InterviewEvent entity.
type InterviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEventUpdateOne) SetSessionID(v string) *InterviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableSessionID(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *InterviewEventUpdateOne) SetAction(v string) *InterviewEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableAction(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *InterviewEventUpdateOne) SetPosition(v string) *InterviewEventUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillablePosition(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetTopicsCompleted sets the "topics_completed" field.
func (_u *InterviewEventUpdateOne) SetTopicsCompleted(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetTopicsCompleted()
	_u.mutation.SetTopicsCompleted(v)
	return _u
}

// SetNillableTopicsCompleted sets the "topics_completed" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableTopicsCompleted(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetTopicsCompleted(*v)
	}
	return _u
}

// AddTopicsCompleted adds value to the "topics_completed" field.
func (_u *InterviewEventUpdateOne) AddTopicsCompleted(v int) *InterviewEventUpdateOne {
	_u.mutation.AddTopicsCompleted(v)
	return _u
}

// SetMeanScore sets the "mean_score" field.
func (_u *InterviewEventUpdateOne) SetMeanScore(v float64) *InterviewEventUpdateOne {
	_u.mutation.ResetMeanScore()
	_u.mutation.SetMeanScore(v)
	return _u
}

// SetNillableMeanScore sets the "mean_score" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableMeanScore(v *float64) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetMeanScore(*v)
	}
	return _u
}

// AddMeanScore adds value to the "mean_score" field.
func (_u *InterviewEventUpdateOne) AddMeanScore(v float64) *InterviewEventUpdateOne {
	_u.mutation.AddMeanScore(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *InterviewEventUpdateOne) SetSuccess(v bool) *InterviewEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableSuccess(v *bool) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_u *InterviewEventUpdateOne) Mutation() *InterviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewEventUpdate builder.
func (_u *InterviewEventUpdateOne) Where(ps ...predicate.InterviewEvent) *InterviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewEventUpdateOne) Select(field string, fields ...string) *InterviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewEvent entity.
func (_u *InterviewEventUpdateOne) Save(ctx context.Context) (*InterviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEventUpdateOne) SaveX(ctx context.Context) *InterviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := interviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := interviewevent.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.position": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewEventUpdateOne) sqlSave(ctx context.Context) (_node *InterviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewevent.Table, interviewevent.Columns, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewevent.FieldID)
		for _, f := range fields {
			if !interviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(interviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(interviewevent.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicsCompleted(); ok {
		_spec.SetField(interviewevent.FieldTopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicsCompleted(); ok {
		_spec.AddField(interviewevent.FieldTopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeanScore(); ok {
		_spec.SetField(interviewevent.FieldMeanScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMeanScore(); ok {
		_spec.AddField(interviewevent.FieldMeanScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(interviewevent.FieldSuccess, field.TypeBool, value)
	}
	_node = &InterviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
