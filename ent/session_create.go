// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *SessionCreate) SetStudentID(v int) *SessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetTranscriptText sets the "transcript_text" field.
func (_c *SessionCreate) SetTranscriptText(v string) *SessionCreate {
	_c.mutation.SetTranscriptText(v)
	return _c
}

// SetSessionDate sets the "session_date" field.
func (_c *SessionCreate) SetSessionDate(v string) *SessionCreate {
	_c.mutation.SetSessionDate(v)
	return _c
}

// SetExtractedSummary sets the "extracted_summary" field.
func (_c *SessionCreate) SetExtractedSummary(v string) *SessionCreate {
	_c.mutation.SetExtractedSummary(v)
	return _c
}

// SetNillableExtractedSummary sets the "extracted_summary" field if the given value is not nil.
func (_c *SessionCreate) SetNillableExtractedSummary(v *string) *SessionCreate {
	if v != nil {
		_c.SetExtractedSummary(*v)
	}
	return _c
}

// SetDetectedTopics sets the "detected_topics" field.
func (_c *SessionCreate) SetDetectedTopics(v []string) *SessionCreate {
	_c.mutation.SetDetectedTopics(v)
	return _c
}

// SetDetectedMisconceptions sets the "detected_misconceptions" field.
func (_c *SessionCreate) SetDetectedMisconceptions(v []string) *SessionCreate {
	_c.mutation.SetDetectedMisconceptions(v)
	return _c
}

// SetDetectedStrengths sets the "detected_strengths" field.
func (_c *SessionCreate) SetDetectedStrengths(v []string) *SessionCreate {
	_c.mutation.SetDetectedStrengths(v)
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *SessionCreate) SetEngagementScore(v int) *SessionCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_c *SessionCreate) SetNillableEngagementScore(v *int) *SessionCreate {
	if v != nil {
		_c.SetEngagementScore(*v)
	}
	return _c
}

// SetParentSummary sets the "parent_summary" field.
func (_c *SessionCreate) SetParentSummary(v string) *SessionCreate {
	_c.mutation.SetParentSummary(v)
	return _c
}

// SetNillableParentSummary sets the "parent_summary" field if the given value is not nil.
func (_c *SessionCreate) SetNillableParentSummary(v *string) *SessionCreate {
	if v != nil {
		_c.SetParentSummary(*v)
	}
	return _c
}

// SetTutorInsight sets the "tutor_insight" field.
func (_c *SessionCreate) SetTutorInsight(v string) *SessionCreate {
	_c.mutation.SetTutorInsight(v)
	return _c
}

// SetNillableTutorInsight sets the "tutor_insight" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTutorInsight(v *string) *SessionCreate {
	if v != nil {
		_c.SetTutorInsight(*v)
	}
	return _c
}

// SetRecommendedNextTargets sets the "recommended_next_targets" field.
func (_c *SessionCreate) SetRecommendedNextTargets(v []string) *SessionCreate {
	_c.mutation.SetRecommendedNextTargets(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Session.student_id"`)}
	}
	if _, ok := _c.mutation.TranscriptText(); !ok {
		return &ValidationError{Name: "transcript_text", err: errors.New(`ent: missing required field "Session.transcript_text"`)}
	}
	if _, ok := _c.mutation.SessionDate(); !ok {
		return &ValidationError{Name: "session_date", err: errors.New(`ent: missing required field "Session.session_date"`)}
	}
	if v, ok := _c.mutation.SessionDate(); ok {
		if err := session.SessionDateValidator(v); err != nil {
			return &ValidationError{Name: "session_date", err: fmt.Errorf(`ent: validator failed for field "Session.session_date": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(session.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.TranscriptText(); ok {
		_spec.SetField(session.FieldTranscriptText, field.TypeString, value)
		_node.TranscriptText = value
	}
	if value, ok := _c.mutation.SessionDate(); ok {
		_spec.SetField(session.FieldSessionDate, field.TypeString, value)
		_node.SessionDate = value
	}
	if value, ok := _c.mutation.ExtractedSummary(); ok {
		_spec.SetField(session.FieldExtractedSummary, field.TypeString, value)
		_node.ExtractedSummary = value
	}
	if value, ok := _c.mutation.DetectedTopics(); ok {
		_spec.SetField(session.FieldDetectedTopics, field.TypeJSON, value)
		_node.DetectedTopics = value
	}
	if value, ok := _c.mutation.DetectedMisconceptions(); ok {
		_spec.SetField(session.FieldDetectedMisconceptions, field.TypeJSON, value)
		_node.DetectedMisconceptions = value
	}
	if value, ok := _c.mutation.DetectedStrengths(); ok {
		_spec.SetField(session.FieldDetectedStrengths, field.TypeJSON, value)
		_node.DetectedStrengths = value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(session.FieldEngagementScore, field.TypeInt, value)
		_node.EngagementScore = &value
	}
	if value, ok := _c.mutation.ParentSummary(); ok {
		_spec.SetField(session.FieldParentSummary, field.TypeString, value)
		_node.ParentSummary = value
	}
	if value, ok := _c.mutation.TutorInsight(); ok {
		_spec.SetField(session.FieldTutorInsight, field.TypeString, value)
		_node.TutorInsight = value
	}
	if value, ok := _c.mutation.RecommendedNextTargets(); ok {
		_spec.SetField(session.FieldRecommendedNextTargets, field.TypeJSON, value)
		_node.RecommendedNextTargets = value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
