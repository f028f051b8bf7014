// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/intervu/ent/interviewevent"
)

// InterviewEventCreate is the builder for creating a InterviewEvent entity.
type InterviewEventCreate struct {
	config
	mutation *InterviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InterviewEventCreate) SetSequence(v int64) *InterviewEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InterviewEventCreate) SetTimestamp(v time.Time) *InterviewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableTimestamp(v *time.Time) *InterviewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InterviewEventCreate) SetSessionID(v string) *InterviewEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *InterviewEventCreate) SetAction(v string) *InterviewEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *InterviewEventCreate) SetPosition(v string) *InterviewEventCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetTopicsCompleted sets the "topics_completed" field.
func (_c *InterviewEventCreate) SetTopicsCompleted(v int) *InterviewEventCreate {
	_c.mutation.SetTopicsCompleted(v)
	return _c
}

// SetNillableTopicsCompleted sets the "topics_completed" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableTopicsCompleted(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetTopicsCompleted(*v)
	}
	return _c
}

// SetMeanScore sets the "mean_score" field.
func (_c *InterviewEventCreate) SetMeanScore(v float64) *InterviewEventCreate {
	_c.mutation.SetMeanScore(v)
	return _c
}

// SetNillableMeanScore sets the "mean_score" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableMeanScore(v *float64) *InterviewEventCreate {
	if v != nil {
		_c.SetMeanScore(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *InterviewEventCreate) SetSuccess(v bool) *InterviewEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableSuccess(v *bool) *InterviewEventCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_c *InterviewEventCreate) Mutation() *InterviewEventMutation {
	return _c.mutation
}

// Save creates the InterviewEvent in the database.
func (_c *InterviewEventCreate) Save(ctx context.Context) (*InterviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewEventCreate) SaveX(ctx context.Context) *InterviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interviewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TopicsCompleted(); !ok {
		v := interviewevent.DefaultTopicsCompleted
		_c.mutation.SetTopicsCompleted(v)
	}
	if _, ok := _c.mutation.MeanScore(); !ok {
		v := interviewevent.DefaultMeanScore
		_c.mutation.SetMeanScore(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := interviewevent.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InterviewEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InterviewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InterviewEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "InterviewEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := interviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "InterviewEvent.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := interviewevent.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicsCompleted(); !ok {
		return &ValidationError{Name: "topics_completed", err: errors.New(`ent: missing required field "InterviewEvent.topics_completed"`)}
	}
	if _, ok := _c.mutation.MeanScore(); !ok {
		return &ValidationError{Name: "mean_score", err: errors.New(`ent: missing required field "InterviewEvent.mean_score"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "InterviewEvent.success"`)}
	}
	return nil
}

func (_c *InterviewEventCreate) sqlSave(ctx context.Context) (*InterviewEvent, error) {
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

func (_c *InterviewEventCreate) createSpec() (*InterviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewevent.Table, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(interviewevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(interviewevent.FieldPosition, field.TypeString, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.TopicsCompleted(); ok {
		_spec.SetField(interviewevent.FieldTopicsCompleted, field.TypeInt, value)
		_node.TopicsCompleted = value
	}
	if value, ok := _c.mutation.MeanScore(); ok {
		_spec.SetField(interviewevent.FieldMeanScore, field.TypeFloat64, value)
		_node.MeanScore = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(interviewevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	return _node, _spec
}

// InterviewEventCreateBulk is the builder for creating many InterviewEvent entities in bulk.
type InterviewEventCreateBulk struct {
	config
	err      error
	builders []*InterviewEventCreate
}

// Save creates the InterviewEvent entities in the database.
func (_c *InterviewEventCreateBulk) Save(ctx context.Context) ([]*InterviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewEventMutation)
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
func (_c *InterviewEventCreateBulk) SaveX(ctx context.Context) []*InterviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
