// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/mentalblock"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// MentalBlockUpdate is the builder for updating MentalBlock entities.
type MentalBlockUpdate struct {
	config
	hooks    []Hook
	mutation *MentalBlockMutation
}

// Where appends a list predicates to the MentalBlockUpdate builder.
func (_u *MentalBlockUpdate) Where(ps ...predicate.MentalBlock) *MentalBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MentalBlockUpdate) SetStudentID(v int) *MentalBlockUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableStudentID(v *int) *MentalBlockUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *MentalBlockUpdate) AddStudentID(v int) *MentalBlockUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MentalBlockUpdate) SetDescription(v string) *MentalBlockUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableDescription(v *string) *MentalBlockUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetFirstDetected sets the "first_detected" field.
func (_u *MentalBlockUpdate) SetFirstDetected(v string) *MentalBlockUpdate {
	_u.mutation.SetFirstDetected(v)
	return _u
}

// SetNillableFirstDetected sets the "first_detected" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableFirstDetected(v *string) *MentalBlockUpdate {
	if v != nil {
		_u.SetFirstDetected(*v)
	}
	return _u
}

// SetLastDetected sets the "last_detected" field.
func (_u *MentalBlockUpdate) SetLastDetected(v string) *MentalBlockUpdate {
	_u.mutation.SetLastDetected(v)
	return _u
}

// SetNillableLastDetected sets the "last_detected" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableLastDetected(v *string) *MentalBlockUpdate {
	if v != nil {
		_u.SetLastDetected(*v)
	}
	return _u
}

// SetFrequencyCount sets the "frequency_count" field.
func (_u *MentalBlockUpdate) SetFrequencyCount(v int) *MentalBlockUpdate {
	_u.mutation.ResetFrequencyCount()
	_u.mutation.SetFrequencyCount(v)
	return _u
}

// SetNillableFrequencyCount sets the "frequency_count" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableFrequencyCount(v *int) *MentalBlockUpdate {
	if v != nil {
		_u.SetFrequencyCount(*v)
	}
	return _u
}

// AddFrequencyCount adds value to the "frequency_count" field.
func (_u *MentalBlockUpdate) AddFrequencyCount(v int) *MentalBlockUpdate {
	_u.mutation.AddFrequencyCount(v)
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *MentalBlockUpdate) SetSeverityScore(v int) *MentalBlockUpdate {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableSeverityScore(v *int) *MentalBlockUpdate {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *MentalBlockUpdate) AddSeverityScore(v int) *MentalBlockUpdate {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// Mutation returns the MentalBlockMutation object of the builder.
func (_u *MentalBlockUpdate) Mutation() *MentalBlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MentalBlockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MentalBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalBlockUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := mentalblock.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstDetected(); ok {
		if err := mentalblock.FirstDetectedValidator(v); err != nil {
			return &ValidationError{Name: "first_detected", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.first_detected": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastDetected(); ok {
		if err := mentalblock.LastDetectedValidator(v); err != nil {
			return &ValidationError{Name: "last_detected", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.last_detected": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FrequencyCount(); ok {
		if err := mentalblock.FrequencyCountValidator(v); err != nil {
			return &ValidationError{Name: "frequency_count", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.frequency_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeverityScore(); ok {
		if err := mentalblock.SeverityScoreValidator(v); err != nil {
			return &ValidationError{Name: "severity_score", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.severity_score": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalblock.Table, mentalblock.Columns, sqlgraph.NewFieldSpec(mentalblock.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(mentalblock.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(mentalblock.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentalblock.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstDetected(); ok {
		_spec.SetField(mentalblock.FieldFirstDetected, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastDetected(); ok {
		_spec.SetField(mentalblock.FieldLastDetected, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrequencyCount(); ok {
		_spec.SetField(mentalblock.FieldFrequencyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequencyCount(); ok {
		_spec.AddField(mentalblock.FieldFrequencyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(mentalblock.FieldSeverityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(mentalblock.FieldSeverityScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MentalBlockUpdateOne is the builder for updating a single MentalBlock entity.
type MentalBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MentalBlockMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MentalBlockUpdateOne) SetStudentID(v int) *MentalBlockUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableStudentID(v *int) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *MentalBlockUpdateOne) AddStudentID(v int) *MentalBlockUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MentalBlockUpdateOne) SetDescription(v string) *MentalBlockUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableDescription(v *string) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetFirstDetected sets the "first_detected" field.
func (_u *MentalBlockUpdateOne) SetFirstDetected(v string) *MentalBlockUpdateOne {
	_u.mutation.SetFirstDetected(v)
	return _u
}

// SetNillableFirstDetected sets the "first_detected" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableFirstDetected(v *string) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetFirstDetected(*v)
	}
	return _u
}

// SetLastDetected sets the "last_detected" field.
func (_u *MentalBlockUpdateOne) SetLastDetected(v string) *MentalBlockUpdateOne {
	_u.mutation.SetLastDetected(v)
	return _u
}

// SetNillableLastDetected sets the "last_detected" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableLastDetected(v *string) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetLastDetected(*v)
	}
	return _u
}

// SetFrequencyCount sets the "frequency_count" field.
func (_u *MentalBlockUpdateOne) SetFrequencyCount(v int) *MentalBlockUpdateOne {
	_u.mutation.ResetFrequencyCount()
	_u.mutation.SetFrequencyCount(v)
	return _u
}

// SetNillableFrequencyCount sets the "frequency_count" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableFrequencyCount(v *int) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetFrequencyCount(*v)
	}
	return _u
}

// AddFrequencyCount adds value to the "frequency_count" field.
func (_u *MentalBlockUpdateOne) AddFrequencyCount(v int) *MentalBlockUpdateOne {
	_u.mutation.AddFrequencyCount(v)
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *MentalBlockUpdateOne) SetSeverityScore(v int) *MentalBlockUpdateOne {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableSeverityScore(v *int) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *MentalBlockUpdateOne) AddSeverityScore(v int) *MentalBlockUpdateOne {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// Mutation returns the MentalBlockMutation object of the builder.
func (_u *MentalBlockUpdateOne) Mutation() *MentalBlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the MentalBlockUpdate builder.
func (_u *MentalBlockUpdateOne) Where(ps ...predicate.MentalBlock) *MentalBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MentalBlockUpdateOne) Select(field string, fields ...string) *MentalBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MentalBlock entity.
func (_u *MentalBlockUpdateOne) Save(ctx context.Context) (*MentalBlock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalBlockUpdateOne) SaveX(ctx context.Context) *MentalBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MentalBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalBlockUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := mentalblock.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstDetected(); ok {
		if err := mentalblock.FirstDetectedValidator(v); err != nil {
			return &ValidationError{Name: "first_detected", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.first_detected": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastDetected(); ok {
		if err := mentalblock.LastDetectedValidator(v); err != nil {
			return &ValidationError{Name: "last_detected", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.last_detected": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FrequencyCount(); ok {
		if err := mentalblock.FrequencyCountValidator(v); err != nil {
			return &ValidationError{Name: "frequency_count", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.frequency_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeverityScore(); ok {
		if err := mentalblock.SeverityScoreValidator(v); err != nil {
			return &ValidationError{Name: "severity_score", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.severity_score": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalBlockUpdateOne) sqlSave(ctx context.Context) (_node *MentalBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalblock.Table, mentalblock.Columns, sqlgraph.NewFieldSpec(mentalblock.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MentalBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mentalblock.FieldID)
		for _, f := range fields {
			if !mentalblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mentalblock.FieldID {
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
		_spec.SetField(mentalblock.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(mentalblock.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentalblock.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstDetected(); ok {
		_spec.SetField(mentalblock.FieldFirstDetected, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastDetected(); ok {
		_spec.SetField(mentalblock.FieldLastDetected, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrequencyCount(); ok {
		_spec.SetField(mentalblock.FieldFrequencyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequencyCount(); ok {
		_spec.AddField(mentalblock.FieldFrequencyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(mentalblock.FieldSeverityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(mentalblock.FieldSeverityScore, field.TypeInt, value)
	}
	_node = &MentalBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
