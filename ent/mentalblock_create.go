// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/mentalblock"
)

// MentalBlockCreate is the builder for creating a MentalBlock entity.
type MentalBlockCreate struct {
	config
	mutation *MentalBlockMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MentalBlockCreate) SetStudentID(v int) *MentalBlockCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MentalBlockCreate) SetDescription(v string) *MentalBlockCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetFirstDetected sets the "first_detected" field.
func (_c *MentalBlockCreate) SetFirstDetected(v string) *MentalBlockCreate {
	_c.mutation.SetFirstDetected(v)
	return _c
}

// SetLastDetected sets the "last_detected" field.
func (_c *MentalBlockCreate) SetLastDetected(v string) *MentalBlockCreate {
	_c.mutation.SetLastDetected(v)
	return _c
}

// SetFrequencyCount sets the "frequency_count" field.
func (_c *MentalBlockCreate) SetFrequencyCount(v int) *MentalBlockCreate {
	_c.mutation.SetFrequencyCount(v)
	return _c
}

// SetNillableFrequencyCount sets the "frequency_count" field if the given value is not nil.
func (_c *MentalBlockCreate) SetNillableFrequencyCount(v *int) *MentalBlockCreate {
	if v != nil {
		_c.SetFrequencyCount(*v)
	}
	return _c
}

// SetSeverityScore sets the "severity_score" field.
func (_c *MentalBlockCreate) SetSeverityScore(v int) *MentalBlockCreate {
	_c.mutation.SetSeverityScore(v)
	return _c
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_c *MentalBlockCreate) SetNillableSeverityScore(v *int) *MentalBlockCreate {
	if v != nil {
		_c.SetSeverityScore(*v)
	}
	return _c
}

// Mutation returns the MentalBlockMutation object of the builder.
func (_c *MentalBlockCreate) Mutation() *MentalBlockMutation {
	return _c.mutation
}

// Save creates the MentalBlock in the database.
func (_c *MentalBlockCreate) Save(ctx context.Context) (*MentalBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MentalBlockCreate) SaveX(ctx context.Context) *MentalBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MentalBlockCreate) defaults() {
	if _, ok := _c.mutation.FrequencyCount(); !ok {
		v := mentalblock.DefaultFrequencyCount
		_c.mutation.SetFrequencyCount(v)
	}
	if _, ok := _c.mutation.SeverityScore(); !ok {
		v := mentalblock.DefaultSeverityScore
		_c.mutation.SetSeverityScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MentalBlockCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "MentalBlock.student_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "MentalBlock.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := mentalblock.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstDetected(); !ok {
		return &ValidationError{Name: "first_detected", err: errors.New(`ent: missing required field "MentalBlock.first_detected"`)}
	}
	if v, ok := _c.mutation.FirstDetected(); ok {
		if err := mentalblock.FirstDetectedValidator(v); err != nil {
			return &ValidationError{Name: "first_detected", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.first_detected": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastDetected(); !ok {
		return &ValidationError{Name: "last_detected", err: errors.New(`ent: missing required field "MentalBlock.last_detected"`)}
	}
	if v, ok := _c.mutation.LastDetected(); ok {
		if err := mentalblock.LastDetectedValidator(v); err != nil {
			return &ValidationError{Name: "last_detected", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.last_detected": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FrequencyCount(); !ok {
		return &ValidationError{Name: "frequency_count", err: errors.New(`ent: missing required field "MentalBlock.frequency_count"`)}
	}
	if v, ok := _c.mutation.FrequencyCount(); ok {
		if err := mentalblock.FrequencyCountValidator(v); err != nil {
			return &ValidationError{Name: "frequency_count", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.frequency_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeverityScore(); !ok {
		return &ValidationError{Name: "severity_score", err: errors.New(`ent: missing required field "MentalBlock.severity_score"`)}
	}
	if v, ok := _c.mutation.SeverityScore(); ok {
		if err := mentalblock.SeverityScoreValidator(v); err != nil {
			return &ValidationError{Name: "severity_score", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.severity_score": %w`, err)}
		}
	}
	return nil
}

func (_c *MentalBlockCreate) sqlSave(ctx context.Context) (*MentalBlock, error) {
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

func (_c *MentalBlockCreate) createSpec() (*MentalBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &MentalBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mentalblock.Table, sqlgraph.NewFieldSpec(mentalblock.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(mentalblock.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(mentalblock.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.FirstDetected(); ok {
		_spec.SetField(mentalblock.FieldFirstDetected, field.TypeString, value)
		_node.FirstDetected = value
	}
	if value, ok := _c.mutation.LastDetected(); ok {
		_spec.SetField(mentalblock.FieldLastDetected, field.TypeString, value)
		_node.LastDetected = value
	}
	if value, ok := _c.mutation.FrequencyCount(); ok {
		_spec.SetField(mentalblock.FieldFrequencyCount, field.TypeInt, value)
		_node.FrequencyCount = value
	}
	if value, ok := _c.mutation.SeverityScore(); ok {
		_spec.SetField(mentalblock.FieldSeverityScore, field.TypeInt, value)
		_node.SeverityScore = value
	}
	return _node, _spec
}

// MentalBlockCreateBulk is the builder for creating many MentalBlock entities in bulk.
type MentalBlockCreateBulk struct {
	config
	err      error
	builders []*MentalBlockCreate
}

// Save creates the MentalBlock entities in the database.
func (_c *MentalBlockCreateBulk) Save(ctx context.Context) ([]*MentalBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MentalBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MentalBlockMutation)
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
func (_c *MentalBlockCreateBulk) SaveX(ctx context.Context) []*MentalBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
