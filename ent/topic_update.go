// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topic"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *TopicUpdate) SetStudentID(v int) *TopicUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableStudentID(v *int) *TopicUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *TopicUpdate) AddStudentID(v int) *TopicUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *TopicUpdate) SetTopicName(v string) *TopicUpdate {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableTopicName(v *string) *TopicUpdate {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetParentTopic sets the "parent_topic" field.
func (_u *TopicUpdate) SetParentTopic(v string) *TopicUpdate {
	_u.mutation.SetParentTopic(v)
	return _u
}

// SetNillableParentTopic sets the "parent_topic" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableParentTopic(v *string) *TopicUpdate {
	if v != nil {
		_u.SetParentTopic(*v)
	}
	return _u
}

// ClearParentTopic clears the value of the "parent_topic" field.
func (_u *TopicUpdate) ClearParentTopic() *TopicUpdate {
	_u.mutation.ClearParentTopic()
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *TopicUpdate) SetMasteryScore(v int) *TopicUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableMasteryScore(v *int) *TopicUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *TopicUpdate) AddMasteryScore(v int) *TopicUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *TopicUpdate) SetConfidenceScore(v int) *TopicUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableConfidenceScore(v *int) *TopicUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *TopicUpdate) AddConfidenceScore(v int) *TopicUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdate) Mutation() *TopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdate) check() error {
	if v, ok := _u.mutation.TopicName(); ok {
		if err := topic.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "Topic.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryScore(); ok {
		if err := topic.MasteryScoreValidator(v); err != nil {
			return &ValidationError{Name: "mastery_score", err: fmt.Errorf(`ent: validator failed for field "Topic.mastery_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := topic.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Topic.confidence_score": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(topic.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(topic.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(topic.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentTopic(); ok {
		_spec.SetField(topic.FieldParentTopic, field.TypeString, value)
	}
	if _u.mutation.ParentTopicCleared() {
		_spec.ClearField(topic.FieldParentTopic, field.TypeString)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(topic.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(topic.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(topic.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(topic.FieldConfidenceScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetStudentID sets the "student_id" field.
func (_u *TopicUpdateOne) SetStudentID(v int) *TopicUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableStudentID(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *TopicUpdateOne) AddStudentID(v int) *TopicUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *TopicUpdateOne) SetTopicName(v string) *TopicUpdateOne {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableTopicName(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetParentTopic sets the "parent_topic" field.
func (_u *TopicUpdateOne) SetParentTopic(v string) *TopicUpdateOne {
	_u.mutation.SetParentTopic(v)
	return _u
}

// SetNillableParentTopic sets the "parent_topic" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableParentTopic(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetParentTopic(*v)
	}
	return _u
}

// ClearParentTopic clears the value of the "parent_topic" field.
func (_u *TopicUpdateOne) ClearParentTopic() *TopicUpdateOne {
	_u.mutation.ClearParentTopic()
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *TopicUpdateOne) SetMasteryScore(v int) *TopicUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableMasteryScore(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *TopicUpdateOne) AddMasteryScore(v int) *TopicUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *TopicUpdateOne) SetConfidenceScore(v int) *TopicUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableConfidenceScore(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *TopicUpdateOne) AddConfidenceScore(v int) *TopicUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdateOne) Mutation() *TopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Topic entity.
func (_u *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdateOne) check() error {
	if v, ok := _u.mutation.TopicName(); ok {
		if err := topic.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "Topic.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryScore(); ok {
		if err := topic.MasteryScoreValidator(v); err != nil {
			return &ValidationError{Name: "mastery_score", err: fmt.Errorf(`ent: validator failed for field "Topic.mastery_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := topic.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Topic.confidence_score": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(topic.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(topic.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(topic.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentTopic(); ok {
		_spec.SetField(topic.FieldParentTopic, field.TypeString, value)
	}
	if _u.mutation.ParentTopicCleared() {
		_spec.ClearField(topic.FieldParentTopic, field.TypeString)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(topic.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(topic.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(topic.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(topic.FieldConfidenceScore, field.TypeInt, value)
	}
	_node = &Topic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
