// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/milestone"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// MilestoneUpdate is the builder for updating Milestone entities.
type MilestoneUpdate struct {
	config
	hooks    []Hook
	mutation *MilestoneMutation
}

// Where appends a list predicates to the MilestoneUpdate builder.
func (_u *MilestoneUpdate) Where(ps ...predicate.Milestone) *MilestoneUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MilestoneUpdate) SetStudentID(v int) *MilestoneUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableStudentID(v *int) *MilestoneUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *MilestoneUpdate) AddStudentID(v int) *MilestoneUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetGoalDescription sets the "goal_description" field.
func (_u *MilestoneUpdate) SetGoalDescription(v string) *MilestoneUpdate {
	_u.mutation.SetGoalDescription(v)
	return _u
}

// SetNillableGoalDescription sets the "goal_description" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableGoalDescription(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetGoalDescription(*v)
	}
	return _u
}

// SetMilestone sets the "milestone" field.
func (_u *MilestoneUpdate) SetMilestone(v string) *MilestoneUpdate {
	_u.mutation.SetMilestone(v)
	return _u
}

// SetNillableMilestone sets the "milestone" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableMilestone(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetMilestone(*v)
	}
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *MilestoneUpdate) SetSuccessCriteria(v string) *MilestoneUpdate {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// SetNillableSuccessCriteria sets the "success_criteria" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableSuccessCriteria(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetSuccessCriteria(*v)
	}
	return _u
}

// Mutation returns the MilestoneMutation object of the builder.
func (_u *MilestoneUpdate) Mutation() *MilestoneMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MilestoneUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MilestoneUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneUpdate) check() error {
	if v, ok := _u.mutation.GoalDescription(); ok {
		if err := milestone.GoalDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "goal_description", err: fmt.Errorf(`ent: validator failed for field "Milestone.goal_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Milestone(); ok {
		if err := milestone.MilestoneValidator(v); err != nil {
			return &ValidationError{Name: "milestone", err: fmt.Errorf(`ent: validator failed for field "Milestone.milestone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCriteria(); ok {
		if err := milestone.SuccessCriteriaValidator(v); err != nil {
			return &ValidationError{Name: "success_criteria", err: fmt.Errorf(`ent: validator failed for field "Milestone.success_criteria": %w`, err)}
		}
	}
	return nil
}

func (_u *MilestoneUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestone.Table, milestone.Columns, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(milestone.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(milestone.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoalDescription(); ok {
		_spec.SetField(milestone.FieldGoalDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Milestone(); ok {
		_spec.SetField(milestone.FieldMilestone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(milestone.FieldSuccessCriteria, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MilestoneUpdateOne is the builder for updating a single Milestone entity.
type MilestoneUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MilestoneMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MilestoneUpdateOne) SetStudentID(v int) *MilestoneUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableStudentID(v *int) *MilestoneUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *MilestoneUpdateOne) AddStudentID(v int) *MilestoneUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetGoalDescription sets the "goal_description" field.
func (_u *MilestoneUpdateOne) SetGoalDescription(v string) *MilestoneUpdateOne {
	_u.mutation.SetGoalDescription(v)
	return _u
}

// SetNillableGoalDescription sets the "goal_description" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableGoalDescription(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetGoalDescription(*v)
	}
	return _u
}

// SetMilestone sets the "milestone" field.
func (_u *MilestoneUpdateOne) SetMilestone(v string) *MilestoneUpdateOne {
	_u.mutation.SetMilestone(v)
	return _u
}

// SetNillableMilestone sets the "milestone" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableMilestone(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetMilestone(*v)
	}
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *MilestoneUpdateOne) SetSuccessCriteria(v string) *MilestoneUpdateOne {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// SetNillableSuccessCriteria sets the "success_criteria" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableSuccessCriteria(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetSuccessCriteria(*v)
	}
	return _u
}

// Mutation returns the MilestoneMutation object of the builder.
func (_u *MilestoneUpdateOne) Mutation() *MilestoneMutation {
	return _u.mutation
}

// Where appends a list predicates to the MilestoneUpdate builder.
func (_u *MilestoneUpdateOne) Where(ps ...predicate.Milestone) *MilestoneUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MilestoneUpdateOne) Select(field string, fields ...string) *MilestoneUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Milestone entity.
func (_u *MilestoneUpdateOne) Save(ctx context.Context) (*Milestone, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneUpdateOne) SaveX(ctx context.Context) *Milestone {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MilestoneUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneUpdateOne) check() error {
	if v, ok := _u.mutation.GoalDescription(); ok {
		if err := milestone.GoalDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "goal_description", err: fmt.Errorf(`ent: validator failed for field "Milestone.goal_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Milestone(); ok {
		if err := milestone.MilestoneValidator(v); err != nil {
			return &ValidationError{Name: "milestone", err: fmt.Errorf(`ent: validator failed for field "Milestone.milestone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessCriteria(); ok {
		if err := milestone.SuccessCriteriaValidator(v); err != nil {
			return &ValidationError{Name: "success_criteria", err: fmt.Errorf(`ent: validator failed for field "Milestone.success_criteria": %w`, err)}
		}
	}
	return nil
}

func (_u *MilestoneUpdateOne) sqlSave(ctx context.Context) (_node *Milestone, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestone.Table, milestone.Columns, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Milestone.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, milestone.FieldID)
		for _, f := range fields {
			if !milestone.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != milestone.FieldID {
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
		_spec.SetField(milestone.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(milestone.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoalDescription(); ok {
		_spec.SetField(milestone.FieldGoalDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Milestone(); ok {
		_spec.SetField(milestone.FieldMilestone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(milestone.FieldSuccessCriteria, field.TypeString, value)
	}
	_node = &Milestone{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
