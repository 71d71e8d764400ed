// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/goal"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// GoalUpdate is the builder for updating Goal entities.
type GoalUpdate struct {
	config
	hooks    []Hook
	mutation *GoalMutation
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdate) Where(ps ...predicate.Goal) *GoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *GoalUpdate) SetStudentID(v int) *GoalUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableStudentID(v *int) *GoalUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *GoalUpdate) AddStudentID(v int) *GoalUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *GoalUpdate) SetDescription(v string) *GoalUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableDescription(v *string) *GoalUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMeasurableOutcome sets the "measurable_outcome" field.
func (_u *GoalUpdate) SetMeasurableOutcome(v string) *GoalUpdate {
	_u.mutation.SetMeasurableOutcome(v)
	return _u
}

// SetNillableMeasurableOutcome sets the "measurable_outcome" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableMeasurableOutcome(v *string) *GoalUpdate {
	if v != nil {
		_u.SetMeasurableOutcome(*v)
	}
	return _u
}

// ClearMeasurableOutcome clears the value of the "measurable_outcome" field.
func (_u *GoalUpdate) ClearMeasurableOutcome() *GoalUpdate {
	_u.mutation.ClearMeasurableOutcome()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *GoalUpdate) SetDeadline(v string) *GoalUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableDeadline(v *string) *GoalUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *GoalUpdate) ClearDeadline() *GoalUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalUpdate) SetStatus(v string) *GoalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableStatus(v *string) *GoalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdate) Mutation() *GoalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GoalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := goal.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Goal.description": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(goal.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(goal.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(goal.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeasurableOutcome(); ok {
		_spec.SetField(goal.FieldMeasurableOutcome, field.TypeString, value)
	}
	if _u.mutation.MeasurableOutcomeCleared() {
		_spec.ClearField(goal.FieldMeasurableOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(goal.FieldDeadline, field.TypeString, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(goal.FieldDeadline, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GoalUpdateOne is the builder for updating a single Goal entity.
type GoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GoalMutation
}

// SetStudentID sets the "student_id" field.
func (_u *GoalUpdateOne) SetStudentID(v int) *GoalUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableStudentID(v *int) *GoalUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *GoalUpdateOne) AddStudentID(v int) *GoalUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *GoalUpdateOne) SetDescription(v string) *GoalUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableDescription(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMeasurableOutcome sets the "measurable_outcome" field.
func (_u *GoalUpdateOne) SetMeasurableOutcome(v string) *GoalUpdateOne {
	_u.mutation.SetMeasurableOutcome(v)
	return _u
}

// SetNillableMeasurableOutcome sets the "measurable_outcome" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableMeasurableOutcome(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetMeasurableOutcome(*v)
	}
	return _u
}

// ClearMeasurableOutcome clears the value of the "measurable_outcome" field.
func (_u *GoalUpdateOne) ClearMeasurableOutcome() *GoalUpdateOne {
	_u.mutation.ClearMeasurableOutcome()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *GoalUpdateOne) SetDeadline(v string) *GoalUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableDeadline(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *GoalUpdateOne) ClearDeadline() *GoalUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalUpdateOne) SetStatus(v string) *GoalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableStatus(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdateOne) Mutation() *GoalMutation {
	return _u.mutation
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdateOne) Where(ps ...predicate.Goal) *GoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GoalUpdateOne) Select(field string, fields ...string) *GoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Goal entity.
func (_u *GoalUpdateOne) Save(ctx context.Context) (*Goal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdateOne) SaveX(ctx context.Context) *Goal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := goal.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Goal.description": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdateOne) sqlSave(ctx context.Context) (_node *Goal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Goal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, goal.FieldID)
		for _, f := range fields {
			if !goal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != goal.FieldID {
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
		_spec.SetField(goal.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(goal.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(goal.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeasurableOutcome(); ok {
		_spec.SetField(goal.FieldMeasurableOutcome, field.TypeString, value)
	}
	if _u.mutation.MeasurableOutcomeCleared() {
		_spec.ClearField(goal.FieldMeasurableOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(goal.FieldDeadline, field.TypeString, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(goal.FieldDeadline, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeString, value)
	}
	_node = &Goal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
