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
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/student"
)

// StudentUpdate is the builder for updating Student entities.
type StudentUpdate struct {
	config
	hooks    []Hook
	mutation *StudentMutation
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdate) Where(ps ...predicate.Student) *StudentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StudentUpdate) SetName(v string) *StudentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableName(v *string) *StudentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *StudentUpdate) SetGrade(v string) *StudentUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableGrade(v *string) *StudentUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *StudentUpdate) ClearGrade() *StudentUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetCurriculum sets the "curriculum" field.
func (_u *StudentUpdate) SetCurriculum(v string) *StudentUpdate {
	_u.mutation.SetCurriculum(v)
	return _u
}

// SetNillableCurriculum sets the "curriculum" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableCurriculum(v *string) *StudentUpdate {
	if v != nil {
		_u.SetCurriculum(*v)
	}
	return _u
}

// ClearCurriculum clears the value of the "curriculum" field.
func (_u *StudentUpdate) ClearCurriculum() *StudentUpdate {
	_u.mutation.ClearCurriculum()
	return _u
}

// SetTargetExam sets the "target_exam" field.
func (_u *StudentUpdate) SetTargetExam(v string) *StudentUpdate {
	_u.mutation.SetTargetExam(v)
	return _u
}

// SetNillableTargetExam sets the "target_exam" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableTargetExam(v *string) *StudentUpdate {
	if v != nil {
		_u.SetTargetExam(*v)
	}
	return _u
}

// ClearTargetExam clears the value of the "target_exam" field.
func (_u *StudentUpdate) ClearTargetExam() *StudentUpdate {
	_u.mutation.ClearTargetExam()
	return _u
}

// SetLongTermGoalSummary sets the "long_term_goal_summary" field.
func (_u *StudentUpdate) SetLongTermGoalSummary(v string) *StudentUpdate {
	_u.mutation.SetLongTermGoalSummary(v)
	return _u
}

// SetNillableLongTermGoalSummary sets the "long_term_goal_summary" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableLongTermGoalSummary(v *string) *StudentUpdate {
	if v != nil {
		_u.SetLongTermGoalSummary(*v)
	}
	return _u
}

// ClearLongTermGoalSummary clears the value of the "long_term_goal_summary" field.
func (_u *StudentUpdate) ClearLongTermGoalSummary() *StudentUpdate {
	_u.mutation.ClearLongTermGoalSummary()
	return _u
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdate) Mutation() *StudentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := student.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Student.name": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(student.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(student.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.Curriculum(); ok {
		_spec.SetField(student.FieldCurriculum, field.TypeString, value)
	}
	if _u.mutation.CurriculumCleared() {
		_spec.ClearField(student.FieldCurriculum, field.TypeString)
	}
	if value, ok := _u.mutation.TargetExam(); ok {
		_spec.SetField(student.FieldTargetExam, field.TypeString, value)
	}
	if _u.mutation.TargetExamCleared() {
		_spec.ClearField(student.FieldTargetExam, field.TypeString)
	}
	if value, ok := _u.mutation.LongTermGoalSummary(); ok {
		_spec.SetField(student.FieldLongTermGoalSummary, field.TypeString, value)
	}
	if _u.mutation.LongTermGoalSummaryCleared() {
		_spec.ClearField(student.FieldLongTermGoalSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentUpdateOne is the builder for updating a single Student entity.
type StudentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentMutation
}

// SetName sets the "name" field.
func (_u *StudentUpdateOne) SetName(v string) *StudentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableName(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *StudentUpdateOne) SetGrade(v string) *StudentUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableGrade(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *StudentUpdateOne) ClearGrade() *StudentUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetCurriculum sets the "curriculum" field.
func (_u *StudentUpdateOne) SetCurriculum(v string) *StudentUpdateOne {
	_u.mutation.SetCurriculum(v)
	return _u
}

// SetNillableCurriculum sets the "curriculum" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableCurriculum(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetCurriculum(*v)
	}
	return _u
}

// ClearCurriculum clears the value of the "curriculum" field.
func (_u *StudentUpdateOne) ClearCurriculum() *StudentUpdateOne {
	_u.mutation.ClearCurriculum()
	return _u
}

// SetTargetExam sets the "target_exam" field.
func (_u *StudentUpdateOne) SetTargetExam(v string) *StudentUpdateOne {
	_u.mutation.SetTargetExam(v)
	return _u
}

// SetNillableTargetExam sets the "target_exam" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableTargetExam(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetTargetExam(*v)
	}
	return _u
}

// ClearTargetExam clears the value of the "target_exam" field.
func (_u *StudentUpdateOne) ClearTargetExam() *StudentUpdateOne {
	_u.mutation.ClearTargetExam()
	return _u
}

// SetLongTermGoalSummary sets the "long_term_goal_summary" field.
func (_u *StudentUpdateOne) SetLongTermGoalSummary(v string) *StudentUpdateOne {
	_u.mutation.SetLongTermGoalSummary(v)
	return _u
}

// SetNillableLongTermGoalSummary sets the "long_term_goal_summary" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableLongTermGoalSummary(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetLongTermGoalSummary(*v)
	}
	return _u
}

// ClearLongTermGoalSummary clears the value of the "long_term_goal_summary" field.
func (_u *StudentUpdateOne) ClearLongTermGoalSummary() *StudentUpdateOne {
	_u.mutation.ClearLongTermGoalSummary()
	return _u
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdateOne) Mutation() *StudentMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdateOne) Where(ps ...predicate.Student) *StudentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentUpdateOne) Select(field string, fields ...string) *StudentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Student entity.
func (_u *StudentUpdateOne) Save(ctx context.Context) (*Student, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdateOne) SaveX(ctx context.Context) *Student {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := student.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Student.name": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentUpdateOne) sqlSave(ctx context.Context) (_node *Student, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Student.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, student.FieldID)
		for _, f := range fields {
			if !student.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != student.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(student.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(student.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.Curriculum(); ok {
		_spec.SetField(student.FieldCurriculum, field.TypeString, value)
	}
	if _u.mutation.CurriculumCleared() {
		_spec.ClearField(student.FieldCurriculum, field.TypeString)
	}
	if value, ok := _u.mutation.TargetExam(); ok {
		_spec.SetField(student.FieldTargetExam, field.TypeString, value)
	}
	if _u.mutation.TargetExamCleared() {
		_spec.ClearField(student.FieldTargetExam, field.TypeString)
	}
	if value, ok := _u.mutation.LongTermGoalSummary(); ok {
		_spec.SetField(student.FieldLongTermGoalSummary, field.TypeString, value)
	}
	if _u.mutation.LongTermGoalSummaryCleared() {
		_spec.ClearField(student.FieldLongTermGoalSummary, field.TypeString)
	}
	_node = &Student{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
