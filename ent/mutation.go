// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/goal"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/mentalblock"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/milestone"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/session"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/student"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topic"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topicmasteryevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGoal              = "Goal"
	TypeMentalBlock       = "MentalBlock"
	TypeMilestone         = "Milestone"
	TypeSession           = "Session"
	TypeStudent           = "Student"
	TypeTopic             = "Topic"
	TypeTopicMasteryEvent = "TopicMasteryEvent"
)

// GoalMutation represents an operation that mutates the Goal nodes in the graph.
type GoalMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	student_id         *int
	addstudent_id      *int
	description        *string
	measurable_outcome *string
	deadline           *string
	status             *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Goal, error)
	predicates         []predicate.Goal
}

var _ ent.Mutation = (*GoalMutation)(nil)

// goalOption allows management of the mutation configuration using functional options.
type goalOption func(*GoalMutation)

// newGoalMutation creates new mutation for the Goal entity.
func newGoalMutation(c config, op Op, opts ...goalOption) *GoalMutation {
	m := &GoalMutation{
		config:        c,
		op:            op,
		typ:           TypeGoal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGoalID sets the ID field of the mutation.
func withGoalID(id int) goalOption {
	return func(m *GoalMutation) {
		var (
			err   error
			once  sync.Once
			value *Goal
		)
		m.oldValue = func(ctx context.Context) (*Goal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Goal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGoal sets the old Goal of the mutation.
func withGoal(node *Goal) goalOption {
	return func(m *GoalMutation) {
		m.oldValue = func(context.Context) (*Goal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GoalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GoalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GoalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GoalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Goal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *GoalMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *GoalMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *GoalMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *GoalMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *GoalMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetDescription sets the "description" field.
func (m *GoalMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *GoalMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *GoalMutation) ResetDescription() {
	m.description = nil
}

// SetMeasurableOutcome sets the "measurable_outcome" field.
func (m *GoalMutation) SetMeasurableOutcome(s string) {
	m.measurable_outcome = &s
}

// MeasurableOutcome returns the value of the "measurable_outcome" field in the mutation.
func (m *GoalMutation) MeasurableOutcome() (r string, exists bool) {
	v := m.measurable_outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldMeasurableOutcome returns the old "measurable_outcome" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldMeasurableOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeasurableOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeasurableOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeasurableOutcome: %w", err)
	}
	return oldValue.MeasurableOutcome, nil
}

// ClearMeasurableOutcome clears the value of the "measurable_outcome" field.
func (m *GoalMutation) ClearMeasurableOutcome() {
	m.measurable_outcome = nil
	m.clearedFields[goal.FieldMeasurableOutcome] = struct{}{}
}

// MeasurableOutcomeCleared returns if the "measurable_outcome" field was cleared in this mutation.
func (m *GoalMutation) MeasurableOutcomeCleared() bool {
	_, ok := m.clearedFields[goal.FieldMeasurableOutcome]
	return ok
}

// ResetMeasurableOutcome resets all changes to the "measurable_outcome" field.
func (m *GoalMutation) ResetMeasurableOutcome() {
	m.measurable_outcome = nil
	delete(m.clearedFields, goal.FieldMeasurableOutcome)
}

// SetDeadline sets the "deadline" field.
func (m *GoalMutation) SetDeadline(s string) {
	m.deadline = &s
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *GoalMutation) Deadline() (r string, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldDeadline(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *GoalMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[goal.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *GoalMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[goal.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *GoalMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, goal.FieldDeadline)
}

// SetStatus sets the "status" field.
func (m *GoalMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *GoalMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Goal entity.
// If the Goal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GoalMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GoalMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the GoalMutation builder.
func (m *GoalMutation) Where(ps ...predicate.Goal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GoalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GoalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Goal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GoalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GoalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Goal).
func (m *GoalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GoalMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.student_id != nil {
		fields = append(fields, goal.FieldStudentID)
	}
	if m.description != nil {
		fields = append(fields, goal.FieldDescription)
	}
	if m.measurable_outcome != nil {
		fields = append(fields, goal.FieldMeasurableOutcome)
	}
	if m.deadline != nil {
		fields = append(fields, goal.FieldDeadline)
	}
	if m.status != nil {
		fields = append(fields, goal.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GoalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case goal.FieldStudentID:
		return m.StudentID()
	case goal.FieldDescription:
		return m.Description()
	case goal.FieldMeasurableOutcome:
		return m.MeasurableOutcome()
	case goal.FieldDeadline:
		return m.Deadline()
	case goal.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GoalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case goal.FieldStudentID:
		return m.OldStudentID(ctx)
	case goal.FieldDescription:
		return m.OldDescription(ctx)
	case goal.FieldMeasurableOutcome:
		return m.OldMeasurableOutcome(ctx)
	case goal.FieldDeadline:
		return m.OldDeadline(ctx)
	case goal.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Goal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case goal.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case goal.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case goal.FieldMeasurableOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeasurableOutcome(v)
		return nil
	case goal.FieldDeadline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case goal.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GoalMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_id != nil {
		fields = append(fields, goal.FieldStudentID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GoalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case goal.FieldStudentID:
		return m.AddedStudentID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GoalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case goal.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	}
	return fmt.Errorf("unknown Goal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GoalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(goal.FieldMeasurableOutcome) {
		fields = append(fields, goal.FieldMeasurableOutcome)
	}
	if m.FieldCleared(goal.FieldDeadline) {
		fields = append(fields, goal.FieldDeadline)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GoalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GoalMutation) ClearField(name string) error {
	switch name {
	case goal.FieldMeasurableOutcome:
		m.ClearMeasurableOutcome()
		return nil
	case goal.FieldDeadline:
		m.ClearDeadline()
		return nil
	}
	return fmt.Errorf("unknown Goal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GoalMutation) ResetField(name string) error {
	switch name {
	case goal.FieldStudentID:
		m.ResetStudentID()
		return nil
	case goal.FieldDescription:
		m.ResetDescription()
		return nil
	case goal.FieldMeasurableOutcome:
		m.ResetMeasurableOutcome()
		return nil
	case goal.FieldDeadline:
		m.ResetDeadline()
		return nil
	case goal.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Goal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GoalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GoalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GoalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GoalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GoalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GoalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GoalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Goal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GoalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Goal edge %s", name)
}

// MentalBlockMutation represents an operation that mutates the MentalBlock nodes in the graph.
type MentalBlockMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	student_id         *int
	addstudent_id      *int
	description        *string
	first_detected     *string
	last_detected      *string
	frequency_count    *int
	addfrequency_count *int
	severity_score     *int
	addseverity_score  *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*MentalBlock, error)
	predicates         []predicate.MentalBlock
}

var _ ent.Mutation = (*MentalBlockMutation)(nil)

// mentalblockOption allows management of the mutation configuration using functional options.
type mentalblockOption func(*MentalBlockMutation)

// newMentalBlockMutation creates new mutation for the MentalBlock entity.
func newMentalBlockMutation(c config, op Op, opts ...mentalblockOption) *MentalBlockMutation {
	m := &MentalBlockMutation{
		config:        c,
		op:            op,
		typ:           TypeMentalBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMentalBlockID sets the ID field of the mutation.
func withMentalBlockID(id int) mentalblockOption {
	return func(m *MentalBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *MentalBlock
		)
		m.oldValue = func(ctx context.Context) (*MentalBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MentalBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMentalBlock sets the old MentalBlock of the mutation.
func withMentalBlock(node *MentalBlock) mentalblockOption {
	return func(m *MentalBlockMutation) {
		m.oldValue = func(context.Context) (*MentalBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MentalBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MentalBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MentalBlockMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MentalBlockMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MentalBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *MentalBlockMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *MentalBlockMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the MentalBlock entity.
// If the MentalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalBlockMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *MentalBlockMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *MentalBlockMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *MentalBlockMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetDescription sets the "description" field.
func (m *MentalBlockMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MentalBlockMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MentalBlock entity.
// If the MentalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalBlockMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *MentalBlockMutation) ResetDescription() {
	m.description = nil
}

// SetFirstDetected sets the "first_detected" field.
func (m *MentalBlockMutation) SetFirstDetected(s string) {
	m.first_detected = &s
}

// FirstDetected returns the value of the "first_detected" field in the mutation.
func (m *MentalBlockMutation) FirstDetected() (r string, exists bool) {
	v := m.first_detected
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstDetected returns the old "first_detected" field's value of the MentalBlock entity.
// If the MentalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalBlockMutation) OldFirstDetected(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstDetected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstDetected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstDetected: %w", err)
	}
	return oldValue.FirstDetected, nil
}

// ResetFirstDetected resets all changes to the "first_detected" field.
func (m *MentalBlockMutation) ResetFirstDetected() {
	m.first_detected = nil
}

// SetLastDetected sets the "last_detected" field.
func (m *MentalBlockMutation) SetLastDetected(s string) {
	m.last_detected = &s
}

// LastDetected returns the value of the "last_detected" field in the mutation.
func (m *MentalBlockMutation) LastDetected() (r string, exists bool) {
	v := m.last_detected
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDetected returns the old "last_detected" field's value of the MentalBlock entity.
// If the MentalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalBlockMutation) OldLastDetected(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDetected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDetected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDetected: %w", err)
	}
	return oldValue.LastDetected, nil
}

// ResetLastDetected resets all changes to the "last_detected" field.
func (m *MentalBlockMutation) ResetLastDetected() {
	m.last_detected = nil
}

// SetFrequencyCount sets the "frequency_count" field.
func (m *MentalBlockMutation) SetFrequencyCount(i int) {
	m.frequency_count = &i
	m.addfrequency_count = nil
}

// FrequencyCount returns the value of the "frequency_count" field in the mutation.
func (m *MentalBlockMutation) FrequencyCount() (r int, exists bool) {
	v := m.frequency_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequencyCount returns the old "frequency_count" field's value of the MentalBlock entity.
// If the MentalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalBlockMutation) OldFrequencyCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequencyCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequencyCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequencyCount: %w", err)
	}
	return oldValue.FrequencyCount, nil
}

// AddFrequencyCount adds i to the "frequency_count" field.
func (m *MentalBlockMutation) AddFrequencyCount(i int) {
	if m.addfrequency_count != nil {
		*m.addfrequency_count += i
	} else {
		m.addfrequency_count = &i
	}
}

// AddedFrequencyCount returns the value that was added to the "frequency_count" field in this mutation.
func (m *MentalBlockMutation) AddedFrequencyCount() (r int, exists bool) {
	v := m.addfrequency_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFrequencyCount resets all changes to the "frequency_count" field.
func (m *MentalBlockMutation) ResetFrequencyCount() {
	m.frequency_count = nil
	m.addfrequency_count = nil
}

// SetSeverityScore sets the "severity_score" field.
func (m *MentalBlockMutation) SetSeverityScore(i int) {
	m.severity_score = &i
	m.addseverity_score = nil
}

// SeverityScore returns the value of the "severity_score" field in the mutation.
func (m *MentalBlockMutation) SeverityScore() (r int, exists bool) {
	v := m.severity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityScore returns the old "severity_score" field's value of the MentalBlock entity.
// If the MentalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalBlockMutation) OldSeverityScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityScore: %w", err)
	}
	return oldValue.SeverityScore, nil
}

// AddSeverityScore adds i to the "severity_score" field.
func (m *MentalBlockMutation) AddSeverityScore(i int) {
	if m.addseverity_score != nil {
		*m.addseverity_score += i
	} else {
		m.addseverity_score = &i
	}
}

// AddedSeverityScore returns the value that was added to the "severity_score" field in this mutation.
func (m *MentalBlockMutation) AddedSeverityScore() (r int, exists bool) {
	v := m.addseverity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeverityScore resets all changes to the "severity_score" field.
func (m *MentalBlockMutation) ResetSeverityScore() {
	m.severity_score = nil
	m.addseverity_score = nil
}

// Where appends a list predicates to the MentalBlockMutation builder.
func (m *MentalBlockMutation) Where(ps ...predicate.MentalBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MentalBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MentalBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MentalBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MentalBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MentalBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MentalBlock).
func (m *MentalBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MentalBlockMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.student_id != nil {
		fields = append(fields, mentalblock.FieldStudentID)
	}
	if m.description != nil {
		fields = append(fields, mentalblock.FieldDescription)
	}
	if m.first_detected != nil {
		fields = append(fields, mentalblock.FieldFirstDetected)
	}
	if m.last_detected != nil {
		fields = append(fields, mentalblock.FieldLastDetected)
	}
	if m.frequency_count != nil {
		fields = append(fields, mentalblock.FieldFrequencyCount)
	}
	if m.severity_score != nil {
		fields = append(fields, mentalblock.FieldSeverityScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MentalBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mentalblock.FieldStudentID:
		return m.StudentID()
	case mentalblock.FieldDescription:
		return m.Description()
	case mentalblock.FieldFirstDetected:
		return m.FirstDetected()
	case mentalblock.FieldLastDetected:
		return m.LastDetected()
	case mentalblock.FieldFrequencyCount:
		return m.FrequencyCount()
	case mentalblock.FieldSeverityScore:
		return m.SeverityScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MentalBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mentalblock.FieldStudentID:
		return m.OldStudentID(ctx)
	case mentalblock.FieldDescription:
		return m.OldDescription(ctx)
	case mentalblock.FieldFirstDetected:
		return m.OldFirstDetected(ctx)
	case mentalblock.FieldLastDetected:
		return m.OldLastDetected(ctx)
	case mentalblock.FieldFrequencyCount:
		return m.OldFrequencyCount(ctx)
	case mentalblock.FieldSeverityScore:
		return m.OldSeverityScore(ctx)
	}
	return nil, fmt.Errorf("unknown MentalBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MentalBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mentalblock.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case mentalblock.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case mentalblock.FieldFirstDetected:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstDetected(v)
		return nil
	case mentalblock.FieldLastDetected:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDetected(v)
		return nil
	case mentalblock.FieldFrequencyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequencyCount(v)
		return nil
	case mentalblock.FieldSeverityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityScore(v)
		return nil
	}
	return fmt.Errorf("unknown MentalBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MentalBlockMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_id != nil {
		fields = append(fields, mentalblock.FieldStudentID)
	}
	if m.addfrequency_count != nil {
		fields = append(fields, mentalblock.FieldFrequencyCount)
	}
	if m.addseverity_score != nil {
		fields = append(fields, mentalblock.FieldSeverityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MentalBlockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mentalblock.FieldStudentID:
		return m.AddedStudentID()
	case mentalblock.FieldFrequencyCount:
		return m.AddedFrequencyCount()
	case mentalblock.FieldSeverityScore:
		return m.AddedSeverityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MentalBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mentalblock.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case mentalblock.FieldFrequencyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFrequencyCount(v)
		return nil
	case mentalblock.FieldSeverityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeverityScore(v)
		return nil
	}
	return fmt.Errorf("unknown MentalBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MentalBlockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MentalBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MentalBlockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MentalBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MentalBlockMutation) ResetField(name string) error {
	switch name {
	case mentalblock.FieldStudentID:
		m.ResetStudentID()
		return nil
	case mentalblock.FieldDescription:
		m.ResetDescription()
		return nil
	case mentalblock.FieldFirstDetected:
		m.ResetFirstDetected()
		return nil
	case mentalblock.FieldLastDetected:
		m.ResetLastDetected()
		return nil
	case mentalblock.FieldFrequencyCount:
		m.ResetFrequencyCount()
		return nil
	case mentalblock.FieldSeverityScore:
		m.ResetSeverityScore()
		return nil
	}
	return fmt.Errorf("unknown MentalBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MentalBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MentalBlockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MentalBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MentalBlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MentalBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MentalBlockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MentalBlockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MentalBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MentalBlockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MentalBlock edge %s", name)
}

// MilestoneMutation represents an operation that mutates the Milestone nodes in the graph.
type MilestoneMutation struct {
	config
	op               Op
	typ              string
	id               *int
	student_id       *int
	addstudent_id    *int
	goal_description *string
	milestone        *string
	success_criteria *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Milestone, error)
	predicates       []predicate.Milestone
}

var _ ent.Mutation = (*MilestoneMutation)(nil)

// milestoneOption allows management of the mutation configuration using functional options.
type milestoneOption func(*MilestoneMutation)

// newMilestoneMutation creates new mutation for the Milestone entity.
func newMilestoneMutation(c config, op Op, opts ...milestoneOption) *MilestoneMutation {
	m := &MilestoneMutation{
		config:        c,
		op:            op,
		typ:           TypeMilestone,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMilestoneID sets the ID field of the mutation.
func withMilestoneID(id int) milestoneOption {
	return func(m *MilestoneMutation) {
		var (
			err   error
			once  sync.Once
			value *Milestone
		)
		m.oldValue = func(ctx context.Context) (*Milestone, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Milestone.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMilestone sets the old Milestone of the mutation.
func withMilestone(node *Milestone) milestoneOption {
	return func(m *MilestoneMutation) {
		m.oldValue = func(context.Context) (*Milestone, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MilestoneMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MilestoneMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MilestoneMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MilestoneMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Milestone.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *MilestoneMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *MilestoneMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *MilestoneMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *MilestoneMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *MilestoneMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetGoalDescription sets the "goal_description" field.
func (m *MilestoneMutation) SetGoalDescription(s string) {
	m.goal_description = &s
}

// GoalDescription returns the value of the "goal_description" field in the mutation.
func (m *MilestoneMutation) GoalDescription() (r string, exists bool) {
	v := m.goal_description
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalDescription returns the old "goal_description" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldGoalDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalDescription: %w", err)
	}
	return oldValue.GoalDescription, nil
}

// ResetGoalDescription resets all changes to the "goal_description" field.
func (m *MilestoneMutation) ResetGoalDescription() {
	m.goal_description = nil
}

// SetMilestone sets the "milestone" field.
func (m *MilestoneMutation) SetMilestone(s string) {
	m.milestone = &s
}

// Milestone returns the value of the "milestone" field in the mutation.
func (m *MilestoneMutation) Milestone() (r string, exists bool) {
	v := m.milestone
	if v == nil {
		return
	}
	return *v, true
}

// OldMilestone returns the old "milestone" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldMilestone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMilestone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMilestone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMilestone: %w", err)
	}
	return oldValue.Milestone, nil
}

// ResetMilestone resets all changes to the "milestone" field.
func (m *MilestoneMutation) ResetMilestone() {
	m.milestone = nil
}

// SetSuccessCriteria sets the "success_criteria" field.
func (m *MilestoneMutation) SetSuccessCriteria(s string) {
	m.success_criteria = &s
}

// SuccessCriteria returns the value of the "success_criteria" field in the mutation.
func (m *MilestoneMutation) SuccessCriteria() (r string, exists bool) {
	v := m.success_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCriteria returns the old "success_criteria" field's value of the Milestone entity.
// If the Milestone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MilestoneMutation) OldSuccessCriteria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCriteria: %w", err)
	}
	return oldValue.SuccessCriteria, nil
}

// ResetSuccessCriteria resets all changes to the "success_criteria" field.
func (m *MilestoneMutation) ResetSuccessCriteria() {
	m.success_criteria = nil
}

// Where appends a list predicates to the MilestoneMutation builder.
func (m *MilestoneMutation) Where(ps ...predicate.Milestone) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MilestoneMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MilestoneMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Milestone, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MilestoneMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MilestoneMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Milestone).
func (m *MilestoneMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MilestoneMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.student_id != nil {
		fields = append(fields, milestone.FieldStudentID)
	}
	if m.goal_description != nil {
		fields = append(fields, milestone.FieldGoalDescription)
	}
	if m.milestone != nil {
		fields = append(fields, milestone.FieldMilestone)
	}
	if m.success_criteria != nil {
		fields = append(fields, milestone.FieldSuccessCriteria)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MilestoneMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case milestone.FieldStudentID:
		return m.StudentID()
	case milestone.FieldGoalDescription:
		return m.GoalDescription()
	case milestone.FieldMilestone:
		return m.Milestone()
	case milestone.FieldSuccessCriteria:
		return m.SuccessCriteria()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MilestoneMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case milestone.FieldStudentID:
		return m.OldStudentID(ctx)
	case milestone.FieldGoalDescription:
		return m.OldGoalDescription(ctx)
	case milestone.FieldMilestone:
		return m.OldMilestone(ctx)
	case milestone.FieldSuccessCriteria:
		return m.OldSuccessCriteria(ctx)
	}
	return nil, fmt.Errorf("unknown Milestone field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MilestoneMutation) SetField(name string, value ent.Value) error {
	switch name {
	case milestone.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case milestone.FieldGoalDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalDescription(v)
		return nil
	case milestone.FieldMilestone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMilestone(v)
		return nil
	case milestone.FieldSuccessCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCriteria(v)
		return nil
	}
	return fmt.Errorf("unknown Milestone field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MilestoneMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_id != nil {
		fields = append(fields, milestone.FieldStudentID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MilestoneMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case milestone.FieldStudentID:
		return m.AddedStudentID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MilestoneMutation) AddField(name string, value ent.Value) error {
	switch name {
	case milestone.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	}
	return fmt.Errorf("unknown Milestone numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MilestoneMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MilestoneMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MilestoneMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Milestone nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MilestoneMutation) ResetField(name string) error {
	switch name {
	case milestone.FieldStudentID:
		m.ResetStudentID()
		return nil
	case milestone.FieldGoalDescription:
		m.ResetGoalDescription()
		return nil
	case milestone.FieldMilestone:
		m.ResetMilestone()
		return nil
	case milestone.FieldSuccessCriteria:
		m.ResetSuccessCriteria()
		return nil
	}
	return fmt.Errorf("unknown Milestone field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MilestoneMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MilestoneMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MilestoneMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MilestoneMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MilestoneMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MilestoneMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MilestoneMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Milestone unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MilestoneMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Milestone edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                             Op
	typ                            string
	id                             *int
	student_id                     *int
	addstudent_id                  *int
	transcript_text                *string
	session_date                   *string
	extracted_summary              *string
	detected_topics                *[]string
	appenddetected_topics          []string
	detected_misconceptions        *[]string
	appenddetected_misconceptions  []string
	detected_strengths             *[]string
	appenddetected_strengths       []string
	engagement_score               *int
	addengagement_score            *int
	parent_summary                 *string
	tutor_insight                  *string
	recommended_next_targets       *[]string
	appendrecommended_next_targets []string
	clearedFields                  map[string]struct{}
	done                           bool
	oldValue                       func(context.Context) (*Session, error)
	predicates                     []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id int) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *SessionMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *SessionMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *SessionMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *SessionMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *SessionMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetTranscriptText sets the "transcript_text" field.
func (m *SessionMutation) SetTranscriptText(s string) {
	m.transcript_text = &s
}

// TranscriptText returns the value of the "transcript_text" field in the mutation.
func (m *SessionMutation) TranscriptText() (r string, exists bool) {
	v := m.transcript_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptText returns the old "transcript_text" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTranscriptText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptText: %w", err)
	}
	return oldValue.TranscriptText, nil
}

// ResetTranscriptText resets all changes to the "transcript_text" field.
func (m *SessionMutation) ResetTranscriptText() {
	m.transcript_text = nil
}

// SetSessionDate sets the "session_date" field.
func (m *SessionMutation) SetSessionDate(s string) {
	m.session_date = &s
}

// SessionDate returns the value of the "session_date" field in the mutation.
func (m *SessionMutation) SessionDate() (r string, exists bool) {
	v := m.session_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDate returns the old "session_date" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDate: %w", err)
	}
	return oldValue.SessionDate, nil
}

// ResetSessionDate resets all changes to the "session_date" field.
func (m *SessionMutation) ResetSessionDate() {
	m.session_date = nil
}

// SetExtractedSummary sets the "extracted_summary" field.
func (m *SessionMutation) SetExtractedSummary(s string) {
	m.extracted_summary = &s
}

// ExtractedSummary returns the value of the "extracted_summary" field in the mutation.
func (m *SessionMutation) ExtractedSummary() (r string, exists bool) {
	v := m.extracted_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedSummary returns the old "extracted_summary" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExtractedSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedSummary: %w", err)
	}
	return oldValue.ExtractedSummary, nil
}

// ClearExtractedSummary clears the value of the "extracted_summary" field.
func (m *SessionMutation) ClearExtractedSummary() {
	m.extracted_summary = nil
	m.clearedFields[session.FieldExtractedSummary] = struct{}{}
}

// ExtractedSummaryCleared returns if the "extracted_summary" field was cleared in this mutation.
func (m *SessionMutation) ExtractedSummaryCleared() bool {
	_, ok := m.clearedFields[session.FieldExtractedSummary]
	return ok
}

// ResetExtractedSummary resets all changes to the "extracted_summary" field.
func (m *SessionMutation) ResetExtractedSummary() {
	m.extracted_summary = nil
	delete(m.clearedFields, session.FieldExtractedSummary)
}

// SetDetectedTopics sets the "detected_topics" field.
func (m *SessionMutation) SetDetectedTopics(s []string) {
	m.detected_topics = &s
	m.appenddetected_topics = nil
}

// DetectedTopics returns the value of the "detected_topics" field in the mutation.
func (m *SessionMutation) DetectedTopics() (r []string, exists bool) {
	v := m.detected_topics
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedTopics returns the old "detected_topics" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDetectedTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedTopics: %w", err)
	}
	return oldValue.DetectedTopics, nil
}

// AppendDetectedTopics adds s to the "detected_topics" field.
func (m *SessionMutation) AppendDetectedTopics(s []string) {
	m.appenddetected_topics = append(m.appenddetected_topics, s...)
}

// AppendedDetectedTopics returns the list of values that were appended to the "detected_topics" field in this mutation.
func (m *SessionMutation) AppendedDetectedTopics() ([]string, bool) {
	if len(m.appenddetected_topics) == 0 {
		return nil, false
	}
	return m.appenddetected_topics, true
}

// ClearDetectedTopics clears the value of the "detected_topics" field.
func (m *SessionMutation) ClearDetectedTopics() {
	m.detected_topics = nil
	m.appenddetected_topics = nil
	m.clearedFields[session.FieldDetectedTopics] = struct{}{}
}

// DetectedTopicsCleared returns if the "detected_topics" field was cleared in this mutation.
func (m *SessionMutation) DetectedTopicsCleared() bool {
	_, ok := m.clearedFields[session.FieldDetectedTopics]
	return ok
}

// ResetDetectedTopics resets all changes to the "detected_topics" field.
func (m *SessionMutation) ResetDetectedTopics() {
	m.detected_topics = nil
	m.appenddetected_topics = nil
	delete(m.clearedFields, session.FieldDetectedTopics)
}

// SetDetectedMisconceptions sets the "detected_misconceptions" field.
func (m *SessionMutation) SetDetectedMisconceptions(s []string) {
	m.detected_misconceptions = &s
	m.appenddetected_misconceptions = nil
}

// DetectedMisconceptions returns the value of the "detected_misconceptions" field in the mutation.
func (m *SessionMutation) DetectedMisconceptions() (r []string, exists bool) {
	v := m.detected_misconceptions
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedMisconceptions returns the old "detected_misconceptions" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDetectedMisconceptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedMisconceptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedMisconceptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedMisconceptions: %w", err)
	}
	return oldValue.DetectedMisconceptions, nil
}

// AppendDetectedMisconceptions adds s to the "detected_misconceptions" field.
func (m *SessionMutation) AppendDetectedMisconceptions(s []string) {
	m.appenddetected_misconceptions = append(m.appenddetected_misconceptions, s...)
}

// AppendedDetectedMisconceptions returns the list of values that were appended to the "detected_misconceptions" field in this mutation.
func (m *SessionMutation) AppendedDetectedMisconceptions() ([]string, bool) {
	if len(m.appenddetected_misconceptions) == 0 {
		return nil, false
	}
	return m.appenddetected_misconceptions, true
}

// ClearDetectedMisconceptions clears the value of the "detected_misconceptions" field.
func (m *SessionMutation) ClearDetectedMisconceptions() {
	m.detected_misconceptions = nil
	m.appenddetected_misconceptions = nil
	m.clearedFields[session.FieldDetectedMisconceptions] = struct{}{}
}

// DetectedMisconceptionsCleared returns if the "detected_misconceptions" field was cleared in this mutation.
func (m *SessionMutation) DetectedMisconceptionsCleared() bool {
	_, ok := m.clearedFields[session.FieldDetectedMisconceptions]
	return ok
}

// ResetDetectedMisconceptions resets all changes to the "detected_misconceptions" field.
func (m *SessionMutation) ResetDetectedMisconceptions() {
	m.detected_misconceptions = nil
	m.appenddetected_misconceptions = nil
	delete(m.clearedFields, session.FieldDetectedMisconceptions)
}

// SetDetectedStrengths sets the "detected_strengths" field.
func (m *SessionMutation) SetDetectedStrengths(s []string) {
	m.detected_strengths = &s
	m.appenddetected_strengths = nil
}

// DetectedStrengths returns the value of the "detected_strengths" field in the mutation.
func (m *SessionMutation) DetectedStrengths() (r []string, exists bool) {
	v := m.detected_strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedStrengths returns the old "detected_strengths" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDetectedStrengths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedStrengths: %w", err)
	}
	return oldValue.DetectedStrengths, nil
}

// AppendDetectedStrengths adds s to the "detected_strengths" field.
func (m *SessionMutation) AppendDetectedStrengths(s []string) {
	m.appenddetected_strengths = append(m.appenddetected_strengths, s...)
}

// AppendedDetectedStrengths returns the list of values that were appended to the "detected_strengths" field in this mutation.
func (m *SessionMutation) AppendedDetectedStrengths() ([]string, bool) {
	if len(m.appenddetected_strengths) == 0 {
		return nil, false
	}
	return m.appenddetected_strengths, true
}

// ClearDetectedStrengths clears the value of the "detected_strengths" field.
func (m *SessionMutation) ClearDetectedStrengths() {
	m.detected_strengths = nil
	m.appenddetected_strengths = nil
	m.clearedFields[session.FieldDetectedStrengths] = struct{}{}
}

// DetectedStrengthsCleared returns if the "detected_strengths" field was cleared in this mutation.
func (m *SessionMutation) DetectedStrengthsCleared() bool {
	_, ok := m.clearedFields[session.FieldDetectedStrengths]
	return ok
}

// ResetDetectedStrengths resets all changes to the "detected_strengths" field.
func (m *SessionMutation) ResetDetectedStrengths() {
	m.detected_strengths = nil
	m.appenddetected_strengths = nil
	delete(m.clearedFields, session.FieldDetectedStrengths)
}

// SetEngagementScore sets the "engagement_score" field.
func (m *SessionMutation) SetEngagementScore(i int) {
	m.engagement_score = &i
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *SessionMutation) EngagementScore() (r int, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEngagementScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds i to the "engagement_score" field.
func (m *SessionMutation) AddEngagementScore(i int) {
	if m.addengagement_score != nil {
		*m.addengagement_score += i
	} else {
		m.addengagement_score = &i
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *SessionMutation) AddedEngagementScore() (r int, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearEngagementScore clears the value of the "engagement_score" field.
func (m *SessionMutation) ClearEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
	m.clearedFields[session.FieldEngagementScore] = struct{}{}
}

// EngagementScoreCleared returns if the "engagement_score" field was cleared in this mutation.
func (m *SessionMutation) EngagementScoreCleared() bool {
	_, ok := m.clearedFields[session.FieldEngagementScore]
	return ok
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *SessionMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
	delete(m.clearedFields, session.FieldEngagementScore)
}

// SetParentSummary sets the "parent_summary" field.
func (m *SessionMutation) SetParentSummary(s string) {
	m.parent_summary = &s
}

// ParentSummary returns the value of the "parent_summary" field in the mutation.
func (m *SessionMutation) ParentSummary() (r string, exists bool) {
	v := m.parent_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSummary returns the old "parent_summary" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldParentSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSummary: %w", err)
	}
	return oldValue.ParentSummary, nil
}

// ClearParentSummary clears the value of the "parent_summary" field.
func (m *SessionMutation) ClearParentSummary() {
	m.parent_summary = nil
	m.clearedFields[session.FieldParentSummary] = struct{}{}
}

// ParentSummaryCleared returns if the "parent_summary" field was cleared in this mutation.
func (m *SessionMutation) ParentSummaryCleared() bool {
	_, ok := m.clearedFields[session.FieldParentSummary]
	return ok
}

// ResetParentSummary resets all changes to the "parent_summary" field.
func (m *SessionMutation) ResetParentSummary() {
	m.parent_summary = nil
	delete(m.clearedFields, session.FieldParentSummary)
}

// SetTutorInsight sets the "tutor_insight" field.
func (m *SessionMutation) SetTutorInsight(s string) {
	m.tutor_insight = &s
}

// TutorInsight returns the value of the "tutor_insight" field in the mutation.
func (m *SessionMutation) TutorInsight() (r string, exists bool) {
	v := m.tutor_insight
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorInsight returns the old "tutor_insight" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTutorInsight(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorInsight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorInsight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorInsight: %w", err)
	}
	return oldValue.TutorInsight, nil
}

// ClearTutorInsight clears the value of the "tutor_insight" field.
func (m *SessionMutation) ClearTutorInsight() {
	m.tutor_insight = nil
	m.clearedFields[session.FieldTutorInsight] = struct{}{}
}

// TutorInsightCleared returns if the "tutor_insight" field was cleared in this mutation.
func (m *SessionMutation) TutorInsightCleared() bool {
	_, ok := m.clearedFields[session.FieldTutorInsight]
	return ok
}

// ResetTutorInsight resets all changes to the "tutor_insight" field.
func (m *SessionMutation) ResetTutorInsight() {
	m.tutor_insight = nil
	delete(m.clearedFields, session.FieldTutorInsight)
}

// SetRecommendedNextTargets sets the "recommended_next_targets" field.
func (m *SessionMutation) SetRecommendedNextTargets(s []string) {
	m.recommended_next_targets = &s
	m.appendrecommended_next_targets = nil
}

// RecommendedNextTargets returns the value of the "recommended_next_targets" field in the mutation.
func (m *SessionMutation) RecommendedNextTargets() (r []string, exists bool) {
	v := m.recommended_next_targets
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedNextTargets returns the old "recommended_next_targets" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRecommendedNextTargets(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedNextTargets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedNextTargets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedNextTargets: %w", err)
	}
	return oldValue.RecommendedNextTargets, nil
}

// AppendRecommendedNextTargets adds s to the "recommended_next_targets" field.
func (m *SessionMutation) AppendRecommendedNextTargets(s []string) {
	m.appendrecommended_next_targets = append(m.appendrecommended_next_targets, s...)
}

// AppendedRecommendedNextTargets returns the list of values that were appended to the "recommended_next_targets" field in this mutation.
func (m *SessionMutation) AppendedRecommendedNextTargets() ([]string, bool) {
	if len(m.appendrecommended_next_targets) == 0 {
		return nil, false
	}
	return m.appendrecommended_next_targets, true
}

// ClearRecommendedNextTargets clears the value of the "recommended_next_targets" field.
func (m *SessionMutation) ClearRecommendedNextTargets() {
	m.recommended_next_targets = nil
	m.appendrecommended_next_targets = nil
	m.clearedFields[session.FieldRecommendedNextTargets] = struct{}{}
}

// RecommendedNextTargetsCleared returns if the "recommended_next_targets" field was cleared in this mutation.
func (m *SessionMutation) RecommendedNextTargetsCleared() bool {
	_, ok := m.clearedFields[session.FieldRecommendedNextTargets]
	return ok
}

// ResetRecommendedNextTargets resets all changes to the "recommended_next_targets" field.
func (m *SessionMutation) ResetRecommendedNextTargets() {
	m.recommended_next_targets = nil
	m.appendrecommended_next_targets = nil
	delete(m.clearedFields, session.FieldRecommendedNextTargets)
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.student_id != nil {
		fields = append(fields, session.FieldStudentID)
	}
	if m.transcript_text != nil {
		fields = append(fields, session.FieldTranscriptText)
	}
	if m.session_date != nil {
		fields = append(fields, session.FieldSessionDate)
	}
	if m.extracted_summary != nil {
		fields = append(fields, session.FieldExtractedSummary)
	}
	if m.detected_topics != nil {
		fields = append(fields, session.FieldDetectedTopics)
	}
	if m.detected_misconceptions != nil {
		fields = append(fields, session.FieldDetectedMisconceptions)
	}
	if m.detected_strengths != nil {
		fields = append(fields, session.FieldDetectedStrengths)
	}
	if m.engagement_score != nil {
		fields = append(fields, session.FieldEngagementScore)
	}
	if m.parent_summary != nil {
		fields = append(fields, session.FieldParentSummary)
	}
	if m.tutor_insight != nil {
		fields = append(fields, session.FieldTutorInsight)
	}
	if m.recommended_next_targets != nil {
		fields = append(fields, session.FieldRecommendedNextTargets)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldStudentID:
		return m.StudentID()
	case session.FieldTranscriptText:
		return m.TranscriptText()
	case session.FieldSessionDate:
		return m.SessionDate()
	case session.FieldExtractedSummary:
		return m.ExtractedSummary()
	case session.FieldDetectedTopics:
		return m.DetectedTopics()
	case session.FieldDetectedMisconceptions:
		return m.DetectedMisconceptions()
	case session.FieldDetectedStrengths:
		return m.DetectedStrengths()
	case session.FieldEngagementScore:
		return m.EngagementScore()
	case session.FieldParentSummary:
		return m.ParentSummary()
	case session.FieldTutorInsight:
		return m.TutorInsight()
	case session.FieldRecommendedNextTargets:
		return m.RecommendedNextTargets()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldStudentID:
		return m.OldStudentID(ctx)
	case session.FieldTranscriptText:
		return m.OldTranscriptText(ctx)
	case session.FieldSessionDate:
		return m.OldSessionDate(ctx)
	case session.FieldExtractedSummary:
		return m.OldExtractedSummary(ctx)
	case session.FieldDetectedTopics:
		return m.OldDetectedTopics(ctx)
	case session.FieldDetectedMisconceptions:
		return m.OldDetectedMisconceptions(ctx)
	case session.FieldDetectedStrengths:
		return m.OldDetectedStrengths(ctx)
	case session.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case session.FieldParentSummary:
		return m.OldParentSummary(ctx)
	case session.FieldTutorInsight:
		return m.OldTutorInsight(ctx)
	case session.FieldRecommendedNextTargets:
		return m.OldRecommendedNextTargets(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case session.FieldTranscriptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptText(v)
		return nil
	case session.FieldSessionDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDate(v)
		return nil
	case session.FieldExtractedSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedSummary(v)
		return nil
	case session.FieldDetectedTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedTopics(v)
		return nil
	case session.FieldDetectedMisconceptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedMisconceptions(v)
		return nil
	case session.FieldDetectedStrengths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedStrengths(v)
		return nil
	case session.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case session.FieldParentSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSummary(v)
		return nil
	case session.FieldTutorInsight:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorInsight(v)
		return nil
	case session.FieldRecommendedNextTargets:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedNextTargets(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_id != nil {
		fields = append(fields, session.FieldStudentID)
	}
	if m.addengagement_score != nil {
		fields = append(fields, session.FieldEngagementScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldStudentID:
		return m.AddedStudentID()
	case session.FieldEngagementScore:
		return m.AddedEngagementScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case session.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldExtractedSummary) {
		fields = append(fields, session.FieldExtractedSummary)
	}
	if m.FieldCleared(session.FieldDetectedTopics) {
		fields = append(fields, session.FieldDetectedTopics)
	}
	if m.FieldCleared(session.FieldDetectedMisconceptions) {
		fields = append(fields, session.FieldDetectedMisconceptions)
	}
	if m.FieldCleared(session.FieldDetectedStrengths) {
		fields = append(fields, session.FieldDetectedStrengths)
	}
	if m.FieldCleared(session.FieldEngagementScore) {
		fields = append(fields, session.FieldEngagementScore)
	}
	if m.FieldCleared(session.FieldParentSummary) {
		fields = append(fields, session.FieldParentSummary)
	}
	if m.FieldCleared(session.FieldTutorInsight) {
		fields = append(fields, session.FieldTutorInsight)
	}
	if m.FieldCleared(session.FieldRecommendedNextTargets) {
		fields = append(fields, session.FieldRecommendedNextTargets)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldExtractedSummary:
		m.ClearExtractedSummary()
		return nil
	case session.FieldDetectedTopics:
		m.ClearDetectedTopics()
		return nil
	case session.FieldDetectedMisconceptions:
		m.ClearDetectedMisconceptions()
		return nil
	case session.FieldDetectedStrengths:
		m.ClearDetectedStrengths()
		return nil
	case session.FieldEngagementScore:
		m.ClearEngagementScore()
		return nil
	case session.FieldParentSummary:
		m.ClearParentSummary()
		return nil
	case session.FieldTutorInsight:
		m.ClearTutorInsight()
		return nil
	case session.FieldRecommendedNextTargets:
		m.ClearRecommendedNextTargets()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldStudentID:
		m.ResetStudentID()
		return nil
	case session.FieldTranscriptText:
		m.ResetTranscriptText()
		return nil
	case session.FieldSessionDate:
		m.ResetSessionDate()
		return nil
	case session.FieldExtractedSummary:
		m.ResetExtractedSummary()
		return nil
	case session.FieldDetectedTopics:
		m.ResetDetectedTopics()
		return nil
	case session.FieldDetectedMisconceptions:
		m.ResetDetectedMisconceptions()
		return nil
	case session.FieldDetectedStrengths:
		m.ResetDetectedStrengths()
		return nil
	case session.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case session.FieldParentSummary:
		m.ResetParentSummary()
		return nil
	case session.FieldTutorInsight:
		m.ResetTutorInsight()
		return nil
	case session.FieldRecommendedNextTargets:
		m.ResetRecommendedNextTargets()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// StudentMutation represents an operation that mutates the Student nodes in the graph.
type StudentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	name                   *string
	grade                  *string
	curriculum             *string
	target_exam            *string
	long_term_goal_summary *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Student, error)
	predicates             []predicate.Student
}

var _ ent.Mutation = (*StudentMutation)(nil)

// studentOption allows management of the mutation configuration using functional options.
type studentOption func(*StudentMutation)

// newStudentMutation creates new mutation for the Student entity.
func newStudentMutation(c config, op Op, opts ...studentOption) *StudentMutation {
	m := &StudentMutation{
		config:        c,
		op:            op,
		typ:           TypeStudent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentID sets the ID field of the mutation.
func withStudentID(id int) studentOption {
	return func(m *StudentMutation) {
		var (
			err   error
			once  sync.Once
			value *Student
		)
		m.oldValue = func(ctx context.Context) (*Student, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Student.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudent sets the old Student of the mutation.
func withStudent(node *Student) studentOption {
	return func(m *StudentMutation) {
		m.oldValue = func(context.Context) (*Student, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Student.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *StudentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StudentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StudentMutation) ResetName() {
	m.name = nil
}

// SetGrade sets the "grade" field.
func (m *StudentMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *StudentMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ClearGrade clears the value of the "grade" field.
func (m *StudentMutation) ClearGrade() {
	m.grade = nil
	m.clearedFields[student.FieldGrade] = struct{}{}
}

// GradeCleared returns if the "grade" field was cleared in this mutation.
func (m *StudentMutation) GradeCleared() bool {
	_, ok := m.clearedFields[student.FieldGrade]
	return ok
}

// ResetGrade resets all changes to the "grade" field.
func (m *StudentMutation) ResetGrade() {
	m.grade = nil
	delete(m.clearedFields, student.FieldGrade)
}

// SetCurriculum sets the "curriculum" field.
func (m *StudentMutation) SetCurriculum(s string) {
	m.curriculum = &s
}

// Curriculum returns the value of the "curriculum" field in the mutation.
func (m *StudentMutation) Curriculum() (r string, exists bool) {
	v := m.curriculum
	if v == nil {
		return
	}
	return *v, true
}

// OldCurriculum returns the old "curriculum" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCurriculum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurriculum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurriculum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurriculum: %w", err)
	}
	return oldValue.Curriculum, nil
}

// ClearCurriculum clears the value of the "curriculum" field.
func (m *StudentMutation) ClearCurriculum() {
	m.curriculum = nil
	m.clearedFields[student.FieldCurriculum] = struct{}{}
}

// CurriculumCleared returns if the "curriculum" field was cleared in this mutation.
func (m *StudentMutation) CurriculumCleared() bool {
	_, ok := m.clearedFields[student.FieldCurriculum]
	return ok
}

// ResetCurriculum resets all changes to the "curriculum" field.
func (m *StudentMutation) ResetCurriculum() {
	m.curriculum = nil
	delete(m.clearedFields, student.FieldCurriculum)
}

// SetTargetExam sets the "target_exam" field.
func (m *StudentMutation) SetTargetExam(s string) {
	m.target_exam = &s
}

// TargetExam returns the value of the "target_exam" field in the mutation.
func (m *StudentMutation) TargetExam() (r string, exists bool) {
	v := m.target_exam
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetExam returns the old "target_exam" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldTargetExam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetExam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetExam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetExam: %w", err)
	}
	return oldValue.TargetExam, nil
}

// ClearTargetExam clears the value of the "target_exam" field.
func (m *StudentMutation) ClearTargetExam() {
	m.target_exam = nil
	m.clearedFields[student.FieldTargetExam] = struct{}{}
}

// TargetExamCleared returns if the "target_exam" field was cleared in this mutation.
func (m *StudentMutation) TargetExamCleared() bool {
	_, ok := m.clearedFields[student.FieldTargetExam]
	return ok
}

// ResetTargetExam resets all changes to the "target_exam" field.
func (m *StudentMutation) ResetTargetExam() {
	m.target_exam = nil
	delete(m.clearedFields, student.FieldTargetExam)
}

// SetLongTermGoalSummary sets the "long_term_goal_summary" field.
func (m *StudentMutation) SetLongTermGoalSummary(s string) {
	m.long_term_goal_summary = &s
}

// LongTermGoalSummary returns the value of the "long_term_goal_summary" field in the mutation.
func (m *StudentMutation) LongTermGoalSummary() (r string, exists bool) {
	v := m.long_term_goal_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldLongTermGoalSummary returns the old "long_term_goal_summary" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldLongTermGoalSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongTermGoalSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongTermGoalSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongTermGoalSummary: %w", err)
	}
	return oldValue.LongTermGoalSummary, nil
}

// ClearLongTermGoalSummary clears the value of the "long_term_goal_summary" field.
func (m *StudentMutation) ClearLongTermGoalSummary() {
	m.long_term_goal_summary = nil
	m.clearedFields[student.FieldLongTermGoalSummary] = struct{}{}
}

// LongTermGoalSummaryCleared returns if the "long_term_goal_summary" field was cleared in this mutation.
func (m *StudentMutation) LongTermGoalSummaryCleared() bool {
	_, ok := m.clearedFields[student.FieldLongTermGoalSummary]
	return ok
}

// ResetLongTermGoalSummary resets all changes to the "long_term_goal_summary" field.
func (m *StudentMutation) ResetLongTermGoalSummary() {
	m.long_term_goal_summary = nil
	delete(m.clearedFields, student.FieldLongTermGoalSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *StudentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StudentMutation builder.
func (m *StudentMutation) Where(ps ...predicate.Student) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Student, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Student).
func (m *StudentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, student.FieldName)
	}
	if m.grade != nil {
		fields = append(fields, student.FieldGrade)
	}
	if m.curriculum != nil {
		fields = append(fields, student.FieldCurriculum)
	}
	if m.target_exam != nil {
		fields = append(fields, student.FieldTargetExam)
	}
	if m.long_term_goal_summary != nil {
		fields = append(fields, student.FieldLongTermGoalSummary)
	}
	if m.created_at != nil {
		fields = append(fields, student.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case student.FieldName:
		return m.Name()
	case student.FieldGrade:
		return m.Grade()
	case student.FieldCurriculum:
		return m.Curriculum()
	case student.FieldTargetExam:
		return m.TargetExam()
	case student.FieldLongTermGoalSummary:
		return m.LongTermGoalSummary()
	case student.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case student.FieldName:
		return m.OldName(ctx)
	case student.FieldGrade:
		return m.OldGrade(ctx)
	case student.FieldCurriculum:
		return m.OldCurriculum(ctx)
	case student.FieldTargetExam:
		return m.OldTargetExam(ctx)
	case student.FieldLongTermGoalSummary:
		return m.OldLongTermGoalSummary(ctx)
	case student.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Student field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case student.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case student.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case student.FieldCurriculum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurriculum(v)
		return nil
	case student.FieldTargetExam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetExam(v)
		return nil
	case student.FieldLongTermGoalSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongTermGoalSummary(v)
		return nil
	case student.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Student numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(student.FieldGrade) {
		fields = append(fields, student.FieldGrade)
	}
	if m.FieldCleared(student.FieldCurriculum) {
		fields = append(fields, student.FieldCurriculum)
	}
	if m.FieldCleared(student.FieldTargetExam) {
		fields = append(fields, student.FieldTargetExam)
	}
	if m.FieldCleared(student.FieldLongTermGoalSummary) {
		fields = append(fields, student.FieldLongTermGoalSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentMutation) ClearField(name string) error {
	switch name {
	case student.FieldGrade:
		m.ClearGrade()
		return nil
	case student.FieldCurriculum:
		m.ClearCurriculum()
		return nil
	case student.FieldTargetExam:
		m.ClearTargetExam()
		return nil
	case student.FieldLongTermGoalSummary:
		m.ClearLongTermGoalSummary()
		return nil
	}
	return fmt.Errorf("unknown Student nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentMutation) ResetField(name string) error {
	switch name {
	case student.FieldName:
		m.ResetName()
		return nil
	case student.FieldGrade:
		m.ResetGrade()
		return nil
	case student.FieldCurriculum:
		m.ResetCurriculum()
		return nil
	case student.FieldTargetExam:
		m.ResetTargetExam()
		return nil
	case student.FieldLongTermGoalSummary:
		m.ResetLongTermGoalSummary()
		return nil
	case student.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Student unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Student edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	student_id          *int
	addstudent_id       *int
	topic_name          *string
	parent_topic        *string
	mastery_score       *int
	addmastery_score    *int
	confidence_score    *int
	addconfidence_score *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Topic, error)
	predicates          []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id int) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *TopicMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *TopicMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *TopicMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *TopicMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *TopicMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetTopicName sets the "topic_name" field.
func (m *TopicMutation) SetTopicName(s string) {
	m.topic_name = &s
}

// TopicName returns the value of the "topic_name" field in the mutation.
func (m *TopicMutation) TopicName() (r string, exists bool) {
	v := m.topic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicName returns the old "topic_name" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldTopicName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicName: %w", err)
	}
	return oldValue.TopicName, nil
}

// ResetTopicName resets all changes to the "topic_name" field.
func (m *TopicMutation) ResetTopicName() {
	m.topic_name = nil
}

// SetParentTopic sets the "parent_topic" field.
func (m *TopicMutation) SetParentTopic(s string) {
	m.parent_topic = &s
}

// ParentTopic returns the value of the "parent_topic" field in the mutation.
func (m *TopicMutation) ParentTopic() (r string, exists bool) {
	v := m.parent_topic
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTopic returns the old "parent_topic" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldParentTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTopic: %w", err)
	}
	return oldValue.ParentTopic, nil
}

// ClearParentTopic clears the value of the "parent_topic" field.
func (m *TopicMutation) ClearParentTopic() {
	m.parent_topic = nil
	m.clearedFields[topic.FieldParentTopic] = struct{}{}
}

// ParentTopicCleared returns if the "parent_topic" field was cleared in this mutation.
func (m *TopicMutation) ParentTopicCleared() bool {
	_, ok := m.clearedFields[topic.FieldParentTopic]
	return ok
}

// ResetParentTopic resets all changes to the "parent_topic" field.
func (m *TopicMutation) ResetParentTopic() {
	m.parent_topic = nil
	delete(m.clearedFields, topic.FieldParentTopic)
}

// SetMasteryScore sets the "mastery_score" field.
func (m *TopicMutation) SetMasteryScore(i int) {
	m.mastery_score = &i
	m.addmastery_score = nil
}

// MasteryScore returns the value of the "mastery_score" field in the mutation.
func (m *TopicMutation) MasteryScore() (r int, exists bool) {
	v := m.mastery_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryScore returns the old "mastery_score" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldMasteryScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryScore: %w", err)
	}
	return oldValue.MasteryScore, nil
}

// AddMasteryScore adds i to the "mastery_score" field.
func (m *TopicMutation) AddMasteryScore(i int) {
	if m.addmastery_score != nil {
		*m.addmastery_score += i
	} else {
		m.addmastery_score = &i
	}
}

// AddedMasteryScore returns the value that was added to the "mastery_score" field in this mutation.
func (m *TopicMutation) AddedMasteryScore() (r int, exists bool) {
	v := m.addmastery_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryScore resets all changes to the "mastery_score" field.
func (m *TopicMutation) ResetMasteryScore() {
	m.mastery_score = nil
	m.addmastery_score = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *TopicMutation) SetConfidenceScore(i int) {
	m.confidence_score = &i
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *TopicMutation) ConfidenceScore() (r int, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldConfidenceScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds i to the "confidence_score" field.
func (m *TopicMutation) AddConfidenceScore(i int) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += i
	} else {
		m.addconfidence_score = &i
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *TopicMutation) AddedConfidenceScore() (r int, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *TopicMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.student_id != nil {
		fields = append(fields, topic.FieldStudentID)
	}
	if m.topic_name != nil {
		fields = append(fields, topic.FieldTopicName)
	}
	if m.parent_topic != nil {
		fields = append(fields, topic.FieldParentTopic)
	}
	if m.mastery_score != nil {
		fields = append(fields, topic.FieldMasteryScore)
	}
	if m.confidence_score != nil {
		fields = append(fields, topic.FieldConfidenceScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldStudentID:
		return m.StudentID()
	case topic.FieldTopicName:
		return m.TopicName()
	case topic.FieldParentTopic:
		return m.ParentTopic()
	case topic.FieldMasteryScore:
		return m.MasteryScore()
	case topic.FieldConfidenceScore:
		return m.ConfidenceScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldStudentID:
		return m.OldStudentID(ctx)
	case topic.FieldTopicName:
		return m.OldTopicName(ctx)
	case topic.FieldParentTopic:
		return m.OldParentTopic(ctx)
	case topic.FieldMasteryScore:
		return m.OldMasteryScore(ctx)
	case topic.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case topic.FieldTopicName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicName(v)
		return nil
	case topic.FieldParentTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTopic(v)
		return nil
	case topic.FieldMasteryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryScore(v)
		return nil
	case topic.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_id != nil {
		fields = append(fields, topic.FieldStudentID)
	}
	if m.addmastery_score != nil {
		fields = append(fields, topic.FieldMasteryScore)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, topic.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldStudentID:
		return m.AddedStudentID()
	case topic.FieldMasteryScore:
		return m.AddedMasteryScore()
	case topic.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topic.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case topic.FieldMasteryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryScore(v)
		return nil
	case topic.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topic.FieldParentTopic) {
		fields = append(fields, topic.FieldParentTopic)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	switch name {
	case topic.FieldParentTopic:
		m.ClearParentTopic()
		return nil
	}
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldStudentID:
		m.ResetStudentID()
		return nil
	case topic.FieldTopicName:
		m.ResetTopicName()
		return nil
	case topic.FieldParentTopic:
		m.ResetParentTopic()
		return nil
	case topic.FieldMasteryScore:
		m.ResetMasteryScore()
		return nil
	case topic.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Topic edge %s", name)
}

// TopicMasteryEventMutation represents an operation that mutates the TopicMasteryEvent nodes in the graph.
type TopicMasteryEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	student_id             *int
	addstudent_id          *int
	topic_name             *string
	session_id             *int
	addsession_id          *int
	event_date             *string
	previous_mastery       *int
	addprevious_mastery    *int
	new_mastery            *int
	addnew_mastery         *int
	previous_confidence    *int
	addprevious_confidence *int
	new_confidence         *int
	addnew_confidence      *int
	explanation            *map[string]interface{}
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*TopicMasteryEvent, error)
	predicates             []predicate.TopicMasteryEvent
}

var _ ent.Mutation = (*TopicMasteryEventMutation)(nil)

// topicmasteryeventOption allows management of the mutation configuration using functional options.
type topicmasteryeventOption func(*TopicMasteryEventMutation)

// newTopicMasteryEventMutation creates new mutation for the TopicMasteryEvent entity.
func newTopicMasteryEventMutation(c config, op Op, opts ...topicmasteryeventOption) *TopicMasteryEventMutation {
	m := &TopicMasteryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicMasteryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicMasteryEventID sets the ID field of the mutation.
func withTopicMasteryEventID(id int) topicmasteryeventOption {
	return func(m *TopicMasteryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicMasteryEvent
		)
		m.oldValue = func(ctx context.Context) (*TopicMasteryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicMasteryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicMasteryEvent sets the old TopicMasteryEvent of the mutation.
func withTopicMasteryEvent(node *TopicMasteryEvent) topicmasteryeventOption {
	return func(m *TopicMasteryEventMutation) {
		m.oldValue = func(context.Context) (*TopicMasteryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMasteryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMasteryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMasteryEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMasteryEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicMasteryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *TopicMasteryEventMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *TopicMasteryEventMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the TopicMasteryEvent entity.
// If the TopicMasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryEventMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *TopicMasteryEventMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *TopicMasteryEventMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *TopicMasteryEventMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetTopicName sets the "topic_name" field.
func (m *TopicMasteryEventMutation) SetTopicName(s string) {
	m.topic_name = &s
}

// TopicName returns the value of the "topic_name" field in the mutation.
func (m *TopicMasteryEventMutation) TopicName() (r string, exists bool) {
	v := m.topic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicName returns the old "topic_name" field's value of the TopicMasteryEvent entity.
// If the TopicMasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryEventMutation) OldTopicName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicName: %w", err)
	}
	return oldValue.TopicName, nil
}

// ResetTopicName resets all changes to the "topic_name" field.
func (m *TopicMasteryEventMutation) ResetTopicName() {
	m.topic_name = nil
}

// SetSessionID sets the "session_id" field.
func (m *TopicMasteryEventMutation) SetSessionID(i int) {
	m.session_id = &i
	m.addsession_id = nil
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TopicMasteryEventMutation) SessionID() (r int, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TopicMasteryEvent entity.
// If the TopicMasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryEventMutation) OldSessionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// AddSessionID adds i to the "session_id" field.
func (m *TopicMasteryEventMutation) AddSessionID(i int) {
	if m.addsession_id != nil {
		*m.addsession_id += i
	} else {
		m.addsession_id = &i
	}
}

// AddedSessionID returns the value that was added to the "session_id" field in this mutation.
func (m *TopicMasteryEventMutation) AddedSessionID() (r int, exists bool) {
	v := m.addsession_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSessionID clears the value of the "session_id" field.
func (m *TopicMasteryEventMutation) ClearSessionID() {
	m.session_id = nil
	m.addsession_id = nil
	m.clearedFields[topicmasteryevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *TopicMasteryEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[topicmasteryevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TopicMasteryEventMutation) ResetSessionID() {
	m.session_id = nil
	m.addsession_id = nil
	delete(m.clearedFields, topicmasteryevent.FieldSessionID)
}

// SetEventDate sets the "event_date" field.
func (m *TopicMasteryEventMutation) SetEventDate(s string) {
	m.event_date = &s
}

// EventDate returns the value of the "event_date" field in the mutation.
func (m *TopicMasteryEventMutation) EventDate() (r string, exists bool) {
	v := m.event_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEventDate returns the old "event_date" field's value of the TopicMasteryEvent entity.
// If the TopicMasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryEventMutation) OldEventDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventDate: %w", err)
	}
	return oldValue.EventDate, nil
}

// ResetEventDate resets all changes to the "event_date" field.
func (m *TopicMasteryEventMutation) ResetEventDate() {
	m.event_date = nil
}

// SetPreviousMastery sets the "previous_mastery" field.
func (m *TopicMasteryEventMutation) SetPreviousMastery(i int) {
	m.previous_mastery = &i
	m.addprevious_mastery = nil
}

// PreviousMastery returns the value of the "previous_mastery" field in the mutation.
func (m *TopicMasteryEventMutation) PreviousMastery() (r int, exists bool) {
	v := m.previous_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousMastery returns the old "previous_mastery" field's value of the TopicMasteryEvent entity.
// If the TopicMasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryEventMutation) OldPreviousMastery(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousMastery: %w", err)
	}
	return oldValue.PreviousMastery, nil
}

// AddPreviousMastery adds i to the "previous_mastery" field.
func (m *TopicMasteryEventMutation) AddPreviousMastery(i int) {
	if m.addprevious_mastery != nil {
		*m.addprevious_mastery += i
	} else {
		m.addprevious_mastery = &i
	}
}

// AddedPreviousMastery returns the value that was added to the "previous_mastery" field in this mutation.
func (m *TopicMasteryEventMutation) AddedPreviousMastery() (r int, exists bool) {
	v := m.addprevious_mastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreviousMastery resets all changes to the "previous_mastery" field.
func (m *TopicMasteryEventMutation) ResetPreviousMastery() {
	m.previous_mastery = nil
	m.addprevious_mastery = nil
}

// SetNewMastery sets the "new_mastery" field.
func (m *TopicMasteryEventMutation) SetNewMastery(i int) {
	m.new_mastery = &i
	m.addnew_mastery = nil
}

// NewMastery returns the value of the "new_mastery" field in the mutation.
func (m *TopicMasteryEventMutation) NewMastery() (r int, exists bool) {
	v := m.new_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldNewMastery returns the old "new_mastery" field's value of the TopicMasteryEvent entity.
// If the TopicMasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryEventMutation) OldNewMastery(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewMastery: %w", err)
	}
	return oldValue.NewMastery, nil
}

// AddNewMastery adds i to the "new_mastery" field.
func (m *TopicMasteryEventMutation) AddNewMastery(i int) {
	if m.addnew_mastery != nil {
		*m.addnew_mastery += i
	} else {
		m.addnew_mastery = &i
	}
}

// AddedNewMastery returns the value that was added to the "new_mastery" field in this mutation.
func (m *TopicMasteryEventMutation) AddedNewMastery() (r int, exists bool) {
	v := m.addnew_mastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewMastery resets all changes to the "new_mastery" field.
func (m *TopicMasteryEventMutation) ResetNewMastery() {
	m.new_mastery = nil
	m.addnew_mastery = nil
}

// SetPreviousConfidence sets the "previous_confidence" field.
func (m *TopicMasteryEventMutation) SetPreviousConfidence(i int) {
	m.previous_confidence = &i
	m.addprevious_confidence = nil
}

// PreviousConfidence returns the value of the "previous_confidence" field in the mutation.
func (m *TopicMasteryEventMutation) PreviousConfidence() (r int, exists bool) {
	v := m.previous_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousConfidence returns the old "previous_confidence" field's value of the TopicMasteryEvent entity.
// If the TopicMasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryEventMutation) OldPreviousConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousConfidence: %w", err)
	}
	return oldValue.PreviousConfidence, nil
}

// AddPreviousConfidence adds i to the "previous_confidence" field.
func (m *TopicMasteryEventMutation) AddPreviousConfidence(i int) {
	if m.addprevious_confidence != nil {
		*m.addprevious_confidence += i
	} else {
		m.addprevious_confidence = &i
	}
}

// AddedPreviousConfidence returns the value that was added to the "previous_confidence" field in this mutation.
func (m *TopicMasteryEventMutation) AddedPreviousConfidence() (r int, exists bool) {
	v := m.addprevious_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreviousConfidence resets all changes to the "previous_confidence" field.
func (m *TopicMasteryEventMutation) ResetPreviousConfidence() {
	m.previous_confidence = nil
	m.addprevious_confidence = nil
}

// SetNewConfidence sets the "new_confidence" field.
func (m *TopicMasteryEventMutation) SetNewConfidence(i int) {
	m.new_confidence = &i
	m.addnew_confidence = nil
}

// NewConfidence returns the value of the "new_confidence" field in the mutation.
func (m *TopicMasteryEventMutation) NewConfidence() (r int, exists bool) {
	v := m.new_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldNewConfidence returns the old "new_confidence" field's value of the TopicMasteryEvent entity.
// If the TopicMasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryEventMutation) OldNewConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewConfidence: %w", err)
	}
	return oldValue.NewConfidence, nil
}

// AddNewConfidence adds i to the "new_confidence" field.
func (m *TopicMasteryEventMutation) AddNewConfidence(i int) {
	if m.addnew_confidence != nil {
		*m.addnew_confidence += i
	} else {
		m.addnew_confidence = &i
	}
}

// AddedNewConfidence returns the value that was added to the "new_confidence" field in this mutation.
func (m *TopicMasteryEventMutation) AddedNewConfidence() (r int, exists bool) {
	v := m.addnew_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewConfidence resets all changes to the "new_confidence" field.
func (m *TopicMasteryEventMutation) ResetNewConfidence() {
	m.new_confidence = nil
	m.addnew_confidence = nil
}

// SetExplanation sets the "explanation" field.
func (m *TopicMasteryEventMutation) SetExplanation(value map[string]interface{}) {
	m.explanation = &value
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *TopicMasteryEventMutation) Explanation() (r map[string]interface{}, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the TopicMasteryEvent entity.
// If the TopicMasteryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryEventMutation) OldExplanation(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *TopicMasteryEventMutation) ResetExplanation() {
	m.explanation = nil
}

// Where appends a list predicates to the TopicMasteryEventMutation builder.
func (m *TopicMasteryEventMutation) Where(ps ...predicate.TopicMasteryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMasteryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMasteryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicMasteryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMasteryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMasteryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicMasteryEvent).
func (m *TopicMasteryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMasteryEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.student_id != nil {
		fields = append(fields, topicmasteryevent.FieldStudentID)
	}
	if m.topic_name != nil {
		fields = append(fields, topicmasteryevent.FieldTopicName)
	}
	if m.session_id != nil {
		fields = append(fields, topicmasteryevent.FieldSessionID)
	}
	if m.event_date != nil {
		fields = append(fields, topicmasteryevent.FieldEventDate)
	}
	if m.previous_mastery != nil {
		fields = append(fields, topicmasteryevent.FieldPreviousMastery)
	}
	if m.new_mastery != nil {
		fields = append(fields, topicmasteryevent.FieldNewMastery)
	}
	if m.previous_confidence != nil {
		fields = append(fields, topicmasteryevent.FieldPreviousConfidence)
	}
	if m.new_confidence != nil {
		fields = append(fields, topicmasteryevent.FieldNewConfidence)
	}
	if m.explanation != nil {
		fields = append(fields, topicmasteryevent.FieldExplanation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMasteryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicmasteryevent.FieldStudentID:
		return m.StudentID()
	case topicmasteryevent.FieldTopicName:
		return m.TopicName()
	case topicmasteryevent.FieldSessionID:
		return m.SessionID()
	case topicmasteryevent.FieldEventDate:
		return m.EventDate()
	case topicmasteryevent.FieldPreviousMastery:
		return m.PreviousMastery()
	case topicmasteryevent.FieldNewMastery:
		return m.NewMastery()
	case topicmasteryevent.FieldPreviousConfidence:
		return m.PreviousConfidence()
	case topicmasteryevent.FieldNewConfidence:
		return m.NewConfidence()
	case topicmasteryevent.FieldExplanation:
		return m.Explanation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMasteryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicmasteryevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case topicmasteryevent.FieldTopicName:
		return m.OldTopicName(ctx)
	case topicmasteryevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case topicmasteryevent.FieldEventDate:
		return m.OldEventDate(ctx)
	case topicmasteryevent.FieldPreviousMastery:
		return m.OldPreviousMastery(ctx)
	case topicmasteryevent.FieldNewMastery:
		return m.OldNewMastery(ctx)
	case topicmasteryevent.FieldPreviousConfidence:
		return m.OldPreviousConfidence(ctx)
	case topicmasteryevent.FieldNewConfidence:
		return m.OldNewConfidence(ctx)
	case topicmasteryevent.FieldExplanation:
		return m.OldExplanation(ctx)
	}
	return nil, fmt.Errorf("unknown TopicMasteryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMasteryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicmasteryevent.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case topicmasteryevent.FieldTopicName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicName(v)
		return nil
	case topicmasteryevent.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case topicmasteryevent.FieldEventDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventDate(v)
		return nil
	case topicmasteryevent.FieldPreviousMastery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousMastery(v)
		return nil
	case topicmasteryevent.FieldNewMastery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewMastery(v)
		return nil
	case topicmasteryevent.FieldPreviousConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousConfidence(v)
		return nil
	case topicmasteryevent.FieldNewConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewConfidence(v)
		return nil
	case topicmasteryevent.FieldExplanation:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	}
	return fmt.Errorf("unknown TopicMasteryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMasteryEventMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_id != nil {
		fields = append(fields, topicmasteryevent.FieldStudentID)
	}
	if m.addsession_id != nil {
		fields = append(fields, topicmasteryevent.FieldSessionID)
	}
	if m.addprevious_mastery != nil {
		fields = append(fields, topicmasteryevent.FieldPreviousMastery)
	}
	if m.addnew_mastery != nil {
		fields = append(fields, topicmasteryevent.FieldNewMastery)
	}
	if m.addprevious_confidence != nil {
		fields = append(fields, topicmasteryevent.FieldPreviousConfidence)
	}
	if m.addnew_confidence != nil {
		fields = append(fields, topicmasteryevent.FieldNewConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMasteryEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicmasteryevent.FieldStudentID:
		return m.AddedStudentID()
	case topicmasteryevent.FieldSessionID:
		return m.AddedSessionID()
	case topicmasteryevent.FieldPreviousMastery:
		return m.AddedPreviousMastery()
	case topicmasteryevent.FieldNewMastery:
		return m.AddedNewMastery()
	case topicmasteryevent.FieldPreviousConfidence:
		return m.AddedPreviousConfidence()
	case topicmasteryevent.FieldNewConfidence:
		return m.AddedNewConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMasteryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicmasteryevent.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case topicmasteryevent.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionID(v)
		return nil
	case topicmasteryevent.FieldPreviousMastery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreviousMastery(v)
		return nil
	case topicmasteryevent.FieldNewMastery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewMastery(v)
		return nil
	case topicmasteryevent.FieldPreviousConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreviousConfidence(v)
		return nil
	case topicmasteryevent.FieldNewConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TopicMasteryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMasteryEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topicmasteryevent.FieldSessionID) {
		fields = append(fields, topicmasteryevent.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMasteryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMasteryEventMutation) ClearField(name string) error {
	switch name {
	case topicmasteryevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown TopicMasteryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMasteryEventMutation) ResetField(name string) error {
	switch name {
	case topicmasteryevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case topicmasteryevent.FieldTopicName:
		m.ResetTopicName()
		return nil
	case topicmasteryevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case topicmasteryevent.FieldEventDate:
		m.ResetEventDate()
		return nil
	case topicmasteryevent.FieldPreviousMastery:
		m.ResetPreviousMastery()
		return nil
	case topicmasteryevent.FieldNewMastery:
		m.ResetNewMastery()
		return nil
	case topicmasteryevent.FieldPreviousConfidence:
		m.ResetPreviousConfidence()
		return nil
	case topicmasteryevent.FieldNewConfidence:
		m.ResetNewConfidence()
		return nil
	case topicmasteryevent.FieldExplanation:
		m.ResetExplanation()
		return nil
	}
	return fmt.Errorf("unknown TopicMasteryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMasteryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMasteryEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMasteryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMasteryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMasteryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMasteryEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMasteryEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicMasteryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMasteryEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicMasteryEvent edge %s", name)
}
