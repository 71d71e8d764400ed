// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topicmasteryevent"
)

// TopicMasteryEventCreate is the builder for creating a TopicMasteryEvent entity.
type TopicMasteryEventCreate struct {
	config
	mutation *TopicMasteryEventMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *TopicMasteryEventCreate) SetStudentID(v int) *TopicMasteryEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetTopicName sets the "topic_name" field.
func (_c *TopicMasteryEventCreate) SetTopicName(v string) *TopicMasteryEventCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TopicMasteryEventCreate) SetSessionID(v int) *TopicMasteryEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *TopicMasteryEventCreate) SetNillableSessionID(v *int) *TopicMasteryEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetEventDate sets the "event_date" field.
func (_c *TopicMasteryEventCreate) SetEventDate(v string) *TopicMasteryEventCreate {
	_c.mutation.SetEventDate(v)
	return _c
}

// SetPreviousMastery sets the "previous_mastery" field.
func (_c *TopicMasteryEventCreate) SetPreviousMastery(v int) *TopicMasteryEventCreate {
	_c.mutation.SetPreviousMastery(v)
	return _c
}

// SetNewMastery sets the "new_mastery" field.
func (_c *TopicMasteryEventCreate) SetNewMastery(v int) *TopicMasteryEventCreate {
	_c.mutation.SetNewMastery(v)
	return _c
}

// SetPreviousConfidence sets the "previous_confidence" field.
func (_c *TopicMasteryEventCreate) SetPreviousConfidence(v int) *TopicMasteryEventCreate {
	_c.mutation.SetPreviousConfidence(v)
	return _c
}

// SetNewConfidence sets the "new_confidence" field.
func (_c *TopicMasteryEventCreate) SetNewConfidence(v int) *TopicMasteryEventCreate {
	_c.mutation.SetNewConfidence(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *TopicMasteryEventCreate) SetExplanation(v map[string]interface{}) *TopicMasteryEventCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// Mutation returns the TopicMasteryEventMutation object of the builder.
func (_c *TopicMasteryEventCreate) Mutation() *TopicMasteryEventMutation {
	return _c.mutation
}

// Save creates the TopicMasteryEvent in the database.
func (_c *TopicMasteryEventCreate) Save(ctx context.Context) (*TopicMasteryEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicMasteryEventCreate) SaveX(ctx context.Context) *TopicMasteryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicMasteryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicMasteryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicMasteryEventCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "TopicMasteryEvent.student_id"`)}
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		return &ValidationError{Name: "topic_name", err: errors.New(`ent: missing required field "TopicMasteryEvent.topic_name"`)}
	}
	if v, ok := _c.mutation.TopicName(); ok {
		if err := topicmasteryevent.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "TopicMasteryEvent.topic_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventDate(); !ok {
		return &ValidationError{Name: "event_date", err: errors.New(`ent: missing required field "TopicMasteryEvent.event_date"`)}
	}
	if v, ok := _c.mutation.EventDate(); ok {
		if err := topicmasteryevent.EventDateValidator(v); err != nil {
			return &ValidationError{Name: "event_date", err: fmt.Errorf(`ent: validator failed for field "TopicMasteryEvent.event_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreviousMastery(); !ok {
		return &ValidationError{Name: "previous_mastery", err: errors.New(`ent: missing required field "TopicMasteryEvent.previous_mastery"`)}
	}
	if _, ok := _c.mutation.NewMastery(); !ok {
		return &ValidationError{Name: "new_mastery", err: errors.New(`ent: missing required field "TopicMasteryEvent.new_mastery"`)}
	}
	if _, ok := _c.mutation.PreviousConfidence(); !ok {
		return &ValidationError{Name: "previous_confidence", err: errors.New(`ent: missing required field "TopicMasteryEvent.previous_confidence"`)}
	}
	if _, ok := _c.mutation.NewConfidence(); !ok {
		return &ValidationError{Name: "new_confidence", err: errors.New(`ent: missing required field "TopicMasteryEvent.new_confidence"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "TopicMasteryEvent.explanation"`)}
	}
	return nil
}

func (_c *TopicMasteryEventCreate) sqlSave(ctx context.Context) (*TopicMasteryEvent, error) {
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

func (_c *TopicMasteryEventCreate) createSpec() (*TopicMasteryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicMasteryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicmasteryevent.Table, sqlgraph.NewFieldSpec(topicmasteryevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(topicmasteryevent.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(topicmasteryevent.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(topicmasteryevent.FieldSessionID, field.TypeInt, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.EventDate(); ok {
		_spec.SetField(topicmasteryevent.FieldEventDate, field.TypeString, value)
		_node.EventDate = value
	}
	if value, ok := _c.mutation.PreviousMastery(); ok {
		_spec.SetField(topicmasteryevent.FieldPreviousMastery, field.TypeInt, value)
		_node.PreviousMastery = value
	}
	if value, ok := _c.mutation.NewMastery(); ok {
		_spec.SetField(topicmasteryevent.FieldNewMastery, field.TypeInt, value)
		_node.NewMastery = value
	}
	if value, ok := _c.mutation.PreviousConfidence(); ok {
		_spec.SetField(topicmasteryevent.FieldPreviousConfidence, field.TypeInt, value)
		_node.PreviousConfidence = value
	}
	if value, ok := _c.mutation.NewConfidence(); ok {
		_spec.SetField(topicmasteryevent.FieldNewConfidence, field.TypeInt, value)
		_node.NewConfidence = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(topicmasteryevent.FieldExplanation, field.TypeJSON, value)
		_node.Explanation = value
	}
	return _node, _spec
}

// TopicMasteryEventCreateBulk is the builder for creating many TopicMasteryEvent entities in bulk.
type TopicMasteryEventCreateBulk struct {
	config
	err      error
	builders []*TopicMasteryEventCreate
}

// Save creates the TopicMasteryEvent entities in the database.
func (_c *TopicMasteryEventCreateBulk) Save(ctx context.Context) ([]*TopicMasteryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicMasteryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicMasteryEventMutation)
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
func (_c *TopicMasteryEventCreateBulk) SaveX(ctx context.Context) []*TopicMasteryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicMasteryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicMasteryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
