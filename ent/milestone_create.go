// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/milestone"
)

// MilestoneCreate is the builder for creating a Milestone entity.
type MilestoneCreate struct {
	config
	mutation *MilestoneMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MilestoneCreate) SetStudentID(v int) *MilestoneCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetGoalDescription sets the "goal_description" field.
func (_c *MilestoneCreate) SetGoalDescription(v string) *MilestoneCreate {
	_c.mutation.SetGoalDescription(v)
	return _c
}

// SetMilestone sets the "milestone" field.
func (_c *MilestoneCreate) SetMilestone(v string) *MilestoneCreate {
	_c.mutation.SetMilestone(v)
	return _c
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_c *MilestoneCreate) SetSuccessCriteria(v string) *MilestoneCreate {
	_c.mutation.SetSuccessCriteria(v)
	return _c
}

// Mutation returns the MilestoneMutation object of the builder.
func (_c *MilestoneCreate) Mutation() *MilestoneMutation {
	return _c.mutation
}

// Save creates the Milestone in the database.
func (_c *MilestoneCreate) Save(ctx context.Context) (*Milestone, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MilestoneCreate) SaveX(ctx context.Context) *Milestone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MilestoneCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MilestoneCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MilestoneCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Milestone.student_id"`)}
	}
	if _, ok := _c.mutation.GoalDescription(); !ok {
		return &ValidationError{Name: "goal_description", err: errors.New(`ent: missing required field "Milestone.goal_description"`)}
	}
	if v, ok := _c.mutation.GoalDescription(); ok {
		if err := milestone.GoalDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "goal_description", err: fmt.Errorf(`ent: validator failed for field "Milestone.goal_description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Milestone(); !ok {
		return &ValidationError{Name: "milestone", err: errors.New(`ent: missing required field "Milestone.milestone"`)}
	}
	if v, ok := _c.mutation.Milestone(); ok {
		if err := milestone.MilestoneValidator(v); err != nil {
			return &ValidationError{Name: "milestone", err: fmt.Errorf(`ent: validator failed for field "Milestone.milestone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessCriteria(); !ok {
		return &ValidationError{Name: "success_criteria", err: errors.New(`ent: missing required field "Milestone.success_criteria"`)}
	}
	if v, ok := _c.mutation.SuccessCriteria(); ok {
		if err := milestone.SuccessCriteriaValidator(v); err != nil {
			return &ValidationError{Name: "success_criteria", err: fmt.Errorf(`ent: validator failed for field "Milestone.success_criteria": %w`, err)}
		}
	}
	return nil
}

func (_c *MilestoneCreate) sqlSave(ctx context.Context) (*Milestone, error) {
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

func (_c *MilestoneCreate) createSpec() (*Milestone, *sqlgraph.CreateSpec) {
	var (
		_node = &Milestone{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(milestone.Table, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(milestone.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.GoalDescription(); ok {
		_spec.SetField(milestone.FieldGoalDescription, field.TypeString, value)
		_node.GoalDescription = value
	}
	if value, ok := _c.mutation.Milestone(); ok {
		_spec.SetField(milestone.FieldMilestone, field.TypeString, value)
		_node.Milestone = value
	}
	if value, ok := _c.mutation.SuccessCriteria(); ok {
		_spec.SetField(milestone.FieldSuccessCriteria, field.TypeString, value)
		_node.SuccessCriteria = value
	}
	return _node, _spec
}

// MilestoneCreateBulk is the builder for creating many Milestone entities in bulk.
type MilestoneCreateBulk struct {
	config
	err      error
	builders []*MilestoneCreate
}

// Save creates the Milestone entities in the database.
func (_c *MilestoneCreateBulk) Save(ctx context.Context) ([]*Milestone, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Milestone, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MilestoneMutation)
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
func (_c *MilestoneCreateBulk) SaveX(ctx context.Context) []*Milestone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MilestoneCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MilestoneCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
