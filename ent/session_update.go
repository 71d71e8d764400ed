// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionUpdate) SetStudentID(v int) *SessionUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStudentID(v *int) *SessionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *SessionUpdate) AddStudentID(v int) *SessionUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetTranscriptText sets the "transcript_text" field.
func (_u *SessionUpdate) SetTranscriptText(v string) *SessionUpdate {
	_u.mutation.SetTranscriptText(v)
	return _u
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTranscriptText(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTranscriptText(*v)
	}
	return _u
}

// SetSessionDate sets the "session_date" field.
func (_u *SessionUpdate) SetSessionDate(v string) *SessionUpdate {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSessionDate(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// SetExtractedSummary sets the "extracted_summary" field.
func (_u *SessionUpdate) SetExtractedSummary(v string) *SessionUpdate {
	_u.mutation.SetExtractedSummary(v)
	return _u
}

// SetNillableExtractedSummary sets the "extracted_summary" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableExtractedSummary(v *string) *SessionUpdate {
	if v != nil {
		_u.SetExtractedSummary(*v)
	}
	return _u
}

// ClearExtractedSummary clears the value of the "extracted_summary" field.
func (_u *SessionUpdate) ClearExtractedSummary() *SessionUpdate {
	_u.mutation.ClearExtractedSummary()
	return _u
}

// SetDetectedTopics sets the "detected_topics" field.
func (_u *SessionUpdate) SetDetectedTopics(v []string) *SessionUpdate {
	_u.mutation.SetDetectedTopics(v)
	return _u
}

// AppendDetectedTopics appends value to the "detected_topics" field.
func (_u *SessionUpdate) AppendDetectedTopics(v []string) *SessionUpdate {
	_u.mutation.AppendDetectedTopics(v)
	return _u
}

// ClearDetectedTopics clears the value of the "detected_topics" field.
func (_u *SessionUpdate) ClearDetectedTopics() *SessionUpdate {
	_u.mutation.ClearDetectedTopics()
	return _u
}

// SetDetectedMisconceptions sets the "detected_misconceptions" field.
func (_u *SessionUpdate) SetDetectedMisconceptions(v []string) *SessionUpdate {
	_u.mutation.SetDetectedMisconceptions(v)
	return _u
}

// AppendDetectedMisconceptions appends value to the "detected_misconceptions" field.
func (_u *SessionUpdate) AppendDetectedMisconceptions(v []string) *SessionUpdate {
	_u.mutation.AppendDetectedMisconceptions(v)
	return _u
}

// ClearDetectedMisconceptions clears the value of the "detected_misconceptions" field.
func (_u *SessionUpdate) ClearDetectedMisconceptions() *SessionUpdate {
	_u.mutation.ClearDetectedMisconceptions()
	return _u
}

// SetDetectedStrengths sets the "detected_strengths" field.
func (_u *SessionUpdate) SetDetectedStrengths(v []string) *SessionUpdate {
	_u.mutation.SetDetectedStrengths(v)
	return _u
}

// AppendDetectedStrengths appends value to the "detected_strengths" field.
func (_u *SessionUpdate) AppendDetectedStrengths(v []string) *SessionUpdate {
	_u.mutation.AppendDetectedStrengths(v)
	return _u
}

// ClearDetectedStrengths clears the value of the "detected_strengths" field.
func (_u *SessionUpdate) ClearDetectedStrengths() *SessionUpdate {
	_u.mutation.ClearDetectedStrengths()
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *SessionUpdate) SetEngagementScore(v int) *SessionUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEngagementScore(v *int) *SessionUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *SessionUpdate) AddEngagementScore(v int) *SessionUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// ClearEngagementScore clears the value of the "engagement_score" field.
func (_u *SessionUpdate) ClearEngagementScore() *SessionUpdate {
	_u.mutation.ClearEngagementScore()
	return _u
}

// SetParentSummary sets the "parent_summary" field.
func (_u *SessionUpdate) SetParentSummary(v string) *SessionUpdate {
	_u.mutation.SetParentSummary(v)
	return _u
}

// SetNillableParentSummary sets the "parent_summary" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableParentSummary(v *string) *SessionUpdate {
	if v != nil {
		_u.SetParentSummary(*v)
	}
	return _u
}

// ClearParentSummary clears the value of the "parent_summary" field.
func (_u *SessionUpdate) ClearParentSummary() *SessionUpdate {
	_u.mutation.ClearParentSummary()
	return _u
}

// SetTutorInsight sets the "tutor_insight" field.
func (_u *SessionUpdate) SetTutorInsight(v string) *SessionUpdate {
	_u.mutation.SetTutorInsight(v)
	return _u
}

// SetNillableTutorInsight sets the "tutor_insight" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTutorInsight(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTutorInsight(*v)
	}
	return _u
}

// ClearTutorInsight clears the value of the "tutor_insight" field.
func (_u *SessionUpdate) ClearTutorInsight() *SessionUpdate {
	_u.mutation.ClearTutorInsight()
	return _u
}

// SetRecommendedNextTargets sets the "recommended_next_targets" field.
func (_u *SessionUpdate) SetRecommendedNextTargets(v []string) *SessionUpdate {
	_u.mutation.SetRecommendedNextTargets(v)
	return _u
}

// AppendRecommendedNextTargets appends value to the "recommended_next_targets" field.
func (_u *SessionUpdate) AppendRecommendedNextTargets(v []string) *SessionUpdate {
	_u.mutation.AppendRecommendedNextTargets(v)
	return _u
}

// ClearRecommendedNextTargets clears the value of the "recommended_next_targets" field.
func (_u *SessionUpdate) ClearRecommendedNextTargets() *SessionUpdate {
	_u.mutation.ClearRecommendedNextTargets()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.SessionDate(); ok {
		if err := session.SessionDateValidator(v); err != nil {
			return &ValidationError{Name: "session_date", err: fmt.Errorf(`ent: validator failed for field "Session.session_date": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(session.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(session.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TranscriptText(); ok {
		_spec.SetField(session.FieldTranscriptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(session.FieldSessionDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedSummary(); ok {
		_spec.SetField(session.FieldExtractedSummary, field.TypeString, value)
	}
	if _u.mutation.ExtractedSummaryCleared() {
		_spec.ClearField(session.FieldExtractedSummary, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedTopics(); ok {
		_spec.SetField(session.FieldDetectedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldDetectedTopics, value)
		})
	}
	if _u.mutation.DetectedTopicsCleared() {
		_spec.ClearField(session.FieldDetectedTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedMisconceptions(); ok {
		_spec.SetField(session.FieldDetectedMisconceptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldDetectedMisconceptions, value)
		})
	}
	if _u.mutation.DetectedMisconceptionsCleared() {
		_spec.ClearField(session.FieldDetectedMisconceptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedStrengths(); ok {
		_spec.SetField(session.FieldDetectedStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldDetectedStrengths, value)
		})
	}
	if _u.mutation.DetectedStrengthsCleared() {
		_spec.ClearField(session.FieldDetectedStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(session.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(session.FieldEngagementScore, field.TypeInt, value)
	}
	if _u.mutation.EngagementScoreCleared() {
		_spec.ClearField(session.FieldEngagementScore, field.TypeInt)
	}
	if value, ok := _u.mutation.ParentSummary(); ok {
		_spec.SetField(session.FieldParentSummary, field.TypeString, value)
	}
	if _u.mutation.ParentSummaryCleared() {
		_spec.ClearField(session.FieldParentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.TutorInsight(); ok {
		_spec.SetField(session.FieldTutorInsight, field.TypeString, value)
	}
	if _u.mutation.TutorInsightCleared() {
		_spec.ClearField(session.FieldTutorInsight, field.TypeString)
	}
	if value, ok := _u.mutation.RecommendedNextTargets(); ok {
		_spec.SetField(session.FieldRecommendedNextTargets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendedNextTargets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldRecommendedNextTargets, value)
		})
	}
	if _u.mutation.RecommendedNextTargetsCleared() {
		_spec.ClearField(session.FieldRecommendedNextTargets, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetStudentID sets the "student_id" field.
func (_u *SessionUpdateOne) SetStudentID(v int) *SessionUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStudentID(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *SessionUpdateOne) AddStudentID(v int) *SessionUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetTranscriptText sets the "transcript_text" field.
func (_u *SessionUpdateOne) SetTranscriptText(v string) *SessionUpdateOne {
	_u.mutation.SetTranscriptText(v)
	return _u
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTranscriptText(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTranscriptText(*v)
	}
	return _u
}

// SetSessionDate sets the "session_date" field.
func (_u *SessionUpdateOne) SetSessionDate(v string) *SessionUpdateOne {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSessionDate(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// SetExtractedSummary sets the "extracted_summary" field.
func (_u *SessionUpdateOne) SetExtractedSummary(v string) *SessionUpdateOne {
	_u.mutation.SetExtractedSummary(v)
	return _u
}

// SetNillableExtractedSummary sets the "extracted_summary" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableExtractedSummary(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetExtractedSummary(*v)
	}
	return _u
}

// ClearExtractedSummary clears the value of the "extracted_summary" field.
func (_u *SessionUpdateOne) ClearExtractedSummary() *SessionUpdateOne {
	_u.mutation.ClearExtractedSummary()
	return _u
}

// SetDetectedTopics sets the "detected_topics" field.
func (_u *SessionUpdateOne) SetDetectedTopics(v []string) *SessionUpdateOne {
	_u.mutation.SetDetectedTopics(v)
	return _u
}

// AppendDetectedTopics appends value to the "detected_topics" field.
func (_u *SessionUpdateOne) AppendDetectedTopics(v []string) *SessionUpdateOne {
	_u.mutation.AppendDetectedTopics(v)
	return _u
}

// ClearDetectedTopics clears the value of the "detected_topics" field.
func (_u *SessionUpdateOne) ClearDetectedTopics() *SessionUpdateOne {
	_u.mutation.ClearDetectedTopics()
	return _u
}

// SetDetectedMisconceptions sets the "detected_misconceptions" field.
func (_u *SessionUpdateOne) SetDetectedMisconceptions(v []string) *SessionUpdateOne {
	_u.mutation.SetDetectedMisconceptions(v)
	return _u
}

// AppendDetectedMisconceptions appends value to the "detected_misconceptions" field.
func (_u *SessionUpdateOne) AppendDetectedMisconceptions(v []string) *SessionUpdateOne {
	_u.mutation.AppendDetectedMisconceptions(v)
	return _u
}

// ClearDetectedMisconceptions clears the value of the "detected_misconceptions" field.
func (_u *SessionUpdateOne) ClearDetectedMisconceptions() *SessionUpdateOne {
	_u.mutation.ClearDetectedMisconceptions()
	return _u
}

// SetDetectedStrengths sets the "detected_strengths" field.
func (_u *SessionUpdateOne) SetDetectedStrengths(v []string) *SessionUpdateOne {
	_u.mutation.SetDetectedStrengths(v)
	return _u
}

// AppendDetectedStrengths appends value to the "detected_strengths" field.
func (_u *SessionUpdateOne) AppendDetectedStrengths(v []string) *SessionUpdateOne {
	_u.mutation.AppendDetectedStrengths(v)
	return _u
}

// ClearDetectedStrengths clears the value of the "detected_strengths" field.
func (_u *SessionUpdateOne) ClearDetectedStrengths() *SessionUpdateOne {
	_u.mutation.ClearDetectedStrengths()
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *SessionUpdateOne) SetEngagementScore(v int) *SessionUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEngagementScore(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *SessionUpdateOne) AddEngagementScore(v int) *SessionUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// ClearEngagementScore clears the value of the "engagement_score" field.
func (_u *SessionUpdateOne) ClearEngagementScore() *SessionUpdateOne {
	_u.mutation.ClearEngagementScore()
	return _u
}

// SetParentSummary sets the "parent_summary" field.
func (_u *SessionUpdateOne) SetParentSummary(v string) *SessionUpdateOne {
	_u.mutation.SetParentSummary(v)
	return _u
}

// SetNillableParentSummary sets the "parent_summary" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableParentSummary(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetParentSummary(*v)
	}
	return _u
}

// ClearParentSummary clears the value of the "parent_summary" field.
func (_u *SessionUpdateOne) ClearParentSummary() *SessionUpdateOne {
	_u.mutation.ClearParentSummary()
	return _u
}

// SetTutorInsight sets the "tutor_insight" field.
func (_u *SessionUpdateOne) SetTutorInsight(v string) *SessionUpdateOne {
	_u.mutation.SetTutorInsight(v)
	return _u
}

// SetNillableTutorInsight sets the "tutor_insight" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTutorInsight(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTutorInsight(*v)
	}
	return _u
}

// ClearTutorInsight clears the value of the "tutor_insight" field.
func (_u *SessionUpdateOne) ClearTutorInsight() *SessionUpdateOne {
	_u.mutation.ClearTutorInsight()
	return _u
}

// SetRecommendedNextTargets sets the "recommended_next_targets" field.
func (_u *SessionUpdateOne) SetRecommendedNextTargets(v []string) *SessionUpdateOne {
	_u.mutation.SetRecommendedNextTargets(v)
	return _u
}

// AppendRecommendedNextTargets appends value to the "recommended_next_targets" field.
func (_u *SessionUpdateOne) AppendRecommendedNextTargets(v []string) *SessionUpdateOne {
	_u.mutation.AppendRecommendedNextTargets(v)
	return _u
}

// ClearRecommendedNextTargets clears the value of the "recommended_next_targets" field.
func (_u *SessionUpdateOne) ClearRecommendedNextTargets() *SessionUpdateOne {
	_u.mutation.ClearRecommendedNextTargets()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionDate(); ok {
		if err := session.SessionDateValidator(v); err != nil {
			return &ValidationError{Name: "session_date", err: fmt.Errorf(`ent: validator failed for field "Session.session_date": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
		_spec.SetField(session.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(session.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TranscriptText(); ok {
		_spec.SetField(session.FieldTranscriptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(session.FieldSessionDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedSummary(); ok {
		_spec.SetField(session.FieldExtractedSummary, field.TypeString, value)
	}
	if _u.mutation.ExtractedSummaryCleared() {
		_spec.ClearField(session.FieldExtractedSummary, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedTopics(); ok {
		_spec.SetField(session.FieldDetectedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldDetectedTopics, value)
		})
	}
	if _u.mutation.DetectedTopicsCleared() {
		_spec.ClearField(session.FieldDetectedTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedMisconceptions(); ok {
		_spec.SetField(session.FieldDetectedMisconceptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedMisconceptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldDetectedMisconceptions, value)
		})
	}
	if _u.mutation.DetectedMisconceptionsCleared() {
		_spec.ClearField(session.FieldDetectedMisconceptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedStrengths(); ok {
		_spec.SetField(session.FieldDetectedStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldDetectedStrengths, value)
		})
	}
	if _u.mutation.DetectedStrengthsCleared() {
		_spec.ClearField(session.FieldDetectedStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(session.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(session.FieldEngagementScore, field.TypeInt, value)
	}
	if _u.mutation.EngagementScoreCleared() {
		_spec.ClearField(session.FieldEngagementScore, field.TypeInt)
	}
	if value, ok := _u.mutation.ParentSummary(); ok {
		_spec.SetField(session.FieldParentSummary, field.TypeString, value)
	}
	if _u.mutation.ParentSummaryCleared() {
		_spec.ClearField(session.FieldParentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.TutorInsight(); ok {
		_spec.SetField(session.FieldTutorInsight, field.TypeString, value)
	}
	if _u.mutation.TutorInsightCleared() {
		_spec.ClearField(session.FieldTutorInsight, field.TypeString)
	}
	if value, ok := _u.mutation.RecommendedNextTargets(); ok {
		_spec.SetField(session.FieldRecommendedNextTargets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendedNextTargets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldRecommendedNextTargets, value)
		})
	}
	if _u.mutation.RecommendedNextTargetsCleared() {
		_spec.ClearField(session.FieldRecommendedNextTargets, field.TypeJSON)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
