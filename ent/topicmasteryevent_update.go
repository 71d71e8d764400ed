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
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topicmasteryevent"
)

// TopicMasteryEventUpdate is the builder for updating TopicMasteryEvent entities.
type TopicMasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMasteryEventMutation
}

// Where appends a list predicates to the TopicMasteryEventUpdate builder.
func (_u *TopicMasteryEventUpdate) Where(ps ...predicate.TopicMasteryEvent) *TopicMasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *TopicMasteryEventUpdate) SetStudentID(v int) *TopicMasteryEventUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TopicMasteryEventUpdate) SetNillableStudentID(v *int) *TopicMasteryEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *TopicMasteryEventUpdate) AddStudentID(v int) *TopicMasteryEventUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *TopicMasteryEventUpdate) SetTopicName(v string) *TopicMasteryEventUpdate {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *TopicMasteryEventUpdate) SetNillableTopicName(v *string) *TopicMasteryEventUpdate {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TopicMasteryEventUpdate) SetSessionID(v int) *TopicMasteryEventUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TopicMasteryEventUpdate) SetNillableSessionID(v *int) *TopicMasteryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *TopicMasteryEventUpdate) AddSessionID(v int) *TopicMasteryEventUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TopicMasteryEventUpdate) ClearSessionID() *TopicMasteryEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *TopicMasteryEventUpdate) SetEventDate(v string) *TopicMasteryEventUpdate {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *TopicMasteryEventUpdate) SetNillableEventDate(v *string) *TopicMasteryEventUpdate {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// SetPreviousMastery sets the "previous_mastery" field.
func (_u *TopicMasteryEventUpdate) SetPreviousMastery(v int) *TopicMasteryEventUpdate {
	_u.mutation.ResetPreviousMastery()
	_u.mutation.SetPreviousMastery(v)
	return _u
}

// SetNillablePreviousMastery sets the "previous_mastery" field if the given value is not nil.
func (_u *TopicMasteryEventUpdate) SetNillablePreviousMastery(v *int) *TopicMasteryEventUpdate {
	if v != nil {
		_u.SetPreviousMastery(*v)
	}
	return _u
}

// AddPreviousMastery adds value to the "previous_mastery" field.
func (_u *TopicMasteryEventUpdate) AddPreviousMastery(v int) *TopicMasteryEventUpdate {
	_u.mutation.AddPreviousMastery(v)
	return _u
}

// SetNewMastery sets the "new_mastery" field.
func (_u *TopicMasteryEventUpdate) SetNewMastery(v int) *TopicMasteryEventUpdate {
	_u.mutation.ResetNewMastery()
	_u.mutation.SetNewMastery(v)
	return _u
}

// SetNillableNewMastery sets the "new_mastery" field if the given value is not nil.
func (_u *TopicMasteryEventUpdate) SetNillableNewMastery(v *int) *TopicMasteryEventUpdate {
	if v != nil {
		_u.SetNewMastery(*v)
	}
	return _u
}

// AddNewMastery adds value to the "new_mastery" field.
func (_u *TopicMasteryEventUpdate) AddNewMastery(v int) *TopicMasteryEventUpdate {
	_u.mutation.AddNewMastery(v)
	return _u
}

// SetPreviousConfidence sets the "previous_confidence" field.
func (_u *TopicMasteryEventUpdate) SetPreviousConfidence(v int) *TopicMasteryEventUpdate {
	_u.mutation.ResetPreviousConfidence()
	_u.mutation.SetPreviousConfidence(v)
	return _u
}

// SetNillablePreviousConfidence sets the "previous_confidence" field if the given value is not nil.
func (_u *TopicMasteryEventUpdate) SetNillablePreviousConfidence(v *int) *TopicMasteryEventUpdate {
	if v != nil {
		_u.SetPreviousConfidence(*v)
	}
	return _u
}

// AddPreviousConfidence adds value to the "previous_confidence" field.
func (_u *TopicMasteryEventUpdate) AddPreviousConfidence(v int) *TopicMasteryEventUpdate {
	_u.mutation.AddPreviousConfidence(v)
	return _u
}

// SetNewConfidence sets the "new_confidence" field.
func (_u *TopicMasteryEventUpdate) SetNewConfidence(v int) *TopicMasteryEventUpdate {
	_u.mutation.ResetNewConfidence()
	_u.mutation.SetNewConfidence(v)
	return _u
}

// SetNillableNewConfidence sets the "new_confidence" field if the given value is not nil.
func (_u *TopicMasteryEventUpdate) SetNillableNewConfidence(v *int) *TopicMasteryEventUpdate {
	if v != nil {
		_u.SetNewConfidence(*v)
	}
	return _u
}

// AddNewConfidence adds value to the "new_confidence" field.
func (_u *TopicMasteryEventUpdate) AddNewConfidence(v int) *TopicMasteryEventUpdate {
	_u.mutation.AddNewConfidence(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *TopicMasteryEventUpdate) SetExplanation(v map[string]interface{}) *TopicMasteryEventUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// Mutation returns the TopicMasteryEventMutation object of the builder.
func (_u *TopicMasteryEventUpdate) Mutation() *TopicMasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicMasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicMasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicMasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicMasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicMasteryEventUpdate) check() error {
	if v, ok := _u.mutation.TopicName(); ok {
		if err := topicmasteryevent.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "TopicMasteryEvent.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventDate(); ok {
		if err := topicmasteryevent.EventDateValidator(v); err != nil {
			return &ValidationError{Name: "event_date", err: fmt.Errorf(`ent: validator failed for field "TopicMasteryEvent.event_date": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicMasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicmasteryevent.Table, topicmasteryevent.Columns, sqlgraph.NewFieldSpec(topicmasteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(topicmasteryevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(topicmasteryevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(topicmasteryevent.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(topicmasteryevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(topicmasteryevent.FieldSessionID, field.TypeInt, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(topicmasteryevent.FieldSessionID, field.TypeInt)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(topicmasteryevent.FieldEventDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousMastery(); ok {
		_spec.SetField(topicmasteryevent.FieldPreviousMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousMastery(); ok {
		_spec.AddField(topicmasteryevent.FieldPreviousMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewMastery(); ok {
		_spec.SetField(topicmasteryevent.FieldNewMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewMastery(); ok {
		_spec.AddField(topicmasteryevent.FieldNewMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreviousConfidence(); ok {
		_spec.SetField(topicmasteryevent.FieldPreviousConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousConfidence(); ok {
		_spec.AddField(topicmasteryevent.FieldPreviousConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewConfidence(); ok {
		_spec.SetField(topicmasteryevent.FieldNewConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewConfidence(); ok {
		_spec.AddField(topicmasteryevent.FieldNewConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(topicmasteryevent.FieldExplanation, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicmasteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicMasteryEventUpdateOne is the builder for updating a single TopicMasteryEvent entity.
type TopicMasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMasteryEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *TopicMasteryEventUpdateOne) SetStudentID(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TopicMasteryEventUpdateOne) SetNillableStudentID(v *int) *TopicMasteryEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *TopicMasteryEventUpdateOne) AddStudentID(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *TopicMasteryEventUpdateOne) SetTopicName(v string) *TopicMasteryEventUpdateOne {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *TopicMasteryEventUpdateOne) SetNillableTopicName(v *string) *TopicMasteryEventUpdateOne {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TopicMasteryEventUpdateOne) SetSessionID(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TopicMasteryEventUpdateOne) SetNillableSessionID(v *int) *TopicMasteryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *TopicMasteryEventUpdateOne) AddSessionID(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TopicMasteryEventUpdateOne) ClearSessionID() *TopicMasteryEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *TopicMasteryEventUpdateOne) SetEventDate(v string) *TopicMasteryEventUpdateOne {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *TopicMasteryEventUpdateOne) SetNillableEventDate(v *string) *TopicMasteryEventUpdateOne {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// SetPreviousMastery sets the "previous_mastery" field.
func (_u *TopicMasteryEventUpdateOne) SetPreviousMastery(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.ResetPreviousMastery()
	_u.mutation.SetPreviousMastery(v)
	return _u
}

// SetNillablePreviousMastery sets the "previous_mastery" field if the given value is not nil.
func (_u *TopicMasteryEventUpdateOne) SetNillablePreviousMastery(v *int) *TopicMasteryEventUpdateOne {
	if v != nil {
		_u.SetPreviousMastery(*v)
	}
	return _u
}

// AddPreviousMastery adds value to the "previous_mastery" field.
func (_u *TopicMasteryEventUpdateOne) AddPreviousMastery(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.AddPreviousMastery(v)
	return _u
}

// SetNewMastery sets the "new_mastery" field.
func (_u *TopicMasteryEventUpdateOne) SetNewMastery(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.ResetNewMastery()
	_u.mutation.SetNewMastery(v)
	return _u
}

// SetNillableNewMastery sets the "new_mastery" field if the given value is not nil.
func (_u *TopicMasteryEventUpdateOne) SetNillableNewMastery(v *int) *TopicMasteryEventUpdateOne {
	if v != nil {
		_u.SetNewMastery(*v)
	}
	return _u
}

// AddNewMastery adds value to the "new_mastery" field.
func (_u *TopicMasteryEventUpdateOne) AddNewMastery(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.AddNewMastery(v)
	return _u
}

// SetPreviousConfidence sets the "previous_confidence" field.
func (_u *TopicMasteryEventUpdateOne) SetPreviousConfidence(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.ResetPreviousConfidence()
	_u.mutation.SetPreviousConfidence(v)
	return _u
}

// SetNillablePreviousConfidence sets the "previous_confidence" field if the given value is not nil.
func (_u *TopicMasteryEventUpdateOne) SetNillablePreviousConfidence(v *int) *TopicMasteryEventUpdateOne {
	if v != nil {
		_u.SetPreviousConfidence(*v)
	}
	return _u
}

// AddPreviousConfidence adds value to the "previous_confidence" field.
func (_u *TopicMasteryEventUpdateOne) AddPreviousConfidence(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.AddPreviousConfidence(v)
	return _u
}

// SetNewConfidence sets the "new_confidence" field.
func (_u *TopicMasteryEventUpdateOne) SetNewConfidence(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.ResetNewConfidence()
	_u.mutation.SetNewConfidence(v)
	return _u
}

// SetNillableNewConfidence sets the "new_confidence" field if the given value is not nil.
func (_u *TopicMasteryEventUpdateOne) SetNillableNewConfidence(v *int) *TopicMasteryEventUpdateOne {
	if v != nil {
		_u.SetNewConfidence(*v)
	}
	return _u
}

// AddNewConfidence adds value to the "new_confidence" field.
func (_u *TopicMasteryEventUpdateOne) AddNewConfidence(v int) *TopicMasteryEventUpdateOne {
	_u.mutation.AddNewConfidence(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *TopicMasteryEventUpdateOne) SetExplanation(v map[string]interface{}) *TopicMasteryEventUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// Mutation returns the TopicMasteryEventMutation object of the builder.
func (_u *TopicMasteryEventUpdateOne) Mutation() *TopicMasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicMasteryEventUpdate builder.
func (_u *TopicMasteryEventUpdateOne) Where(ps ...predicate.TopicMasteryEvent) *TopicMasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicMasteryEventUpdateOne) Select(field string, fields ...string) *TopicMasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicMasteryEvent entity.
func (_u *TopicMasteryEventUpdateOne) Save(ctx context.Context) (*TopicMasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicMasteryEventUpdateOne) SaveX(ctx context.Context) *TopicMasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicMasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicMasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicMasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.TopicName(); ok {
		if err := topicmasteryevent.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "TopicMasteryEvent.topic_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventDate(); ok {
		if err := topicmasteryevent.EventDateValidator(v); err != nil {
			return &ValidationError{Name: "event_date", err: fmt.Errorf(`ent: validator failed for field "TopicMasteryEvent.event_date": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicMasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *TopicMasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicmasteryevent.Table, topicmasteryevent.Columns, sqlgraph.NewFieldSpec(topicmasteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicMasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicmasteryevent.FieldID)
		for _, f := range fields {
			if !topicmasteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicmasteryevent.FieldID {
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
		_spec.SetField(topicmasteryevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(topicmasteryevent.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(topicmasteryevent.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(topicmasteryevent.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(topicmasteryevent.FieldSessionID, field.TypeInt, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(topicmasteryevent.FieldSessionID, field.TypeInt)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(topicmasteryevent.FieldEventDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousMastery(); ok {
		_spec.SetField(topicmasteryevent.FieldPreviousMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousMastery(); ok {
		_spec.AddField(topicmasteryevent.FieldPreviousMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewMastery(); ok {
		_spec.SetField(topicmasteryevent.FieldNewMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewMastery(); ok {
		_spec.AddField(topicmasteryevent.FieldNewMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreviousConfidence(); ok {
		_spec.SetField(topicmasteryevent.FieldPreviousConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreviousConfidence(); ok {
		_spec.AddField(topicmasteryevent.FieldPreviousConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewConfidence(); ok {
		_spec.SetField(topicmasteryevent.FieldNewConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewConfidence(); ok {
		_spec.AddField(topicmasteryevent.FieldNewConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(topicmasteryevent.FieldExplanation, field.TypeJSON, value)
	}
	_node = &TopicMasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicmasteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
