// Code generated by ent, DO NOT EDIT.

package topicmasteryevent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldStudentID, v))
}

// TopicName applies equality check predicate on the "topic_name" field. It's identical to TopicNameEQ.
func TopicName(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldTopicName, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldSessionID, v))
}

// EventDate applies equality check predicate on the "event_date" field. It's identical to EventDateEQ.
func EventDate(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldEventDate, v))
}

// PreviousMastery applies equality check predicate on the "previous_mastery" field. It's identical to PreviousMasteryEQ.
func PreviousMastery(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldPreviousMastery, v))
}

// NewMastery applies equality check predicate on the "new_mastery" field. It's identical to NewMasteryEQ.
func NewMastery(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldNewMastery, v))
}

// PreviousConfidence applies equality check predicate on the "previous_confidence" field. It's identical to PreviousConfidenceEQ.
func PreviousConfidence(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldPreviousConfidence, v))
}

// NewConfidence applies equality check predicate on the "new_confidence" field. It's identical to NewConfidenceEQ.
func NewConfidence(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldNewConfidence, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLTE(FieldStudentID, v))
}

// TopicNameEQ applies the EQ predicate on the "topic_name" field.
func TopicNameEQ(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldTopicName, v))
}

// TopicNameNEQ applies the NEQ predicate on the "topic_name" field.
func TopicNameNEQ(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNEQ(FieldTopicName, v))
}

// TopicNameIn applies the In predicate on the "topic_name" field.
func TopicNameIn(vs ...string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIn(FieldTopicName, vs...))
}

// TopicNameNotIn applies the NotIn predicate on the "topic_name" field.
func TopicNameNotIn(vs ...string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotIn(FieldTopicName, vs...))
}

// TopicNameGT applies the GT predicate on the "topic_name" field.
func TopicNameGT(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGT(FieldTopicName, v))
}

// TopicNameGTE applies the GTE predicate on the "topic_name" field.
func TopicNameGTE(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGTE(FieldTopicName, v))
}

// TopicNameLT applies the LT predicate on the "topic_name" field.
func TopicNameLT(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLT(FieldTopicName, v))
}

// TopicNameLTE applies the LTE predicate on the "topic_name" field.
func TopicNameLTE(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLTE(FieldTopicName, v))
}

// TopicNameContains applies the Contains predicate on the "topic_name" field.
func TopicNameContains(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldContains(FieldTopicName, v))
}

// TopicNameHasPrefix applies the HasPrefix predicate on the "topic_name" field.
func TopicNameHasPrefix(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldHasPrefix(FieldTopicName, v))
}

// TopicNameHasSuffix applies the HasSuffix predicate on the "topic_name" field.
func TopicNameHasSuffix(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldHasSuffix(FieldTopicName, v))
}

// TopicNameEqualFold applies the EqualFold predicate on the "topic_name" field.
func TopicNameEqualFold(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEqualFold(FieldTopicName, v))
}

// TopicNameContainsFold applies the ContainsFold predicate on the "topic_name" field.
func TopicNameContainsFold(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldContainsFold(FieldTopicName, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotNull(FieldSessionID))
}

// EventDateEQ applies the EQ predicate on the "event_date" field.
func EventDateEQ(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldEventDate, v))
}

// EventDateNEQ applies the NEQ predicate on the "event_date" field.
func EventDateNEQ(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNEQ(FieldEventDate, v))
}

// EventDateIn applies the In predicate on the "event_date" field.
func EventDateIn(vs ...string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIn(FieldEventDate, vs...))
}

// EventDateNotIn applies the NotIn predicate on the "event_date" field.
func EventDateNotIn(vs ...string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotIn(FieldEventDate, vs...))
}

// EventDateGT applies the GT predicate on the "event_date" field.
func EventDateGT(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGT(FieldEventDate, v))
}

// EventDateGTE applies the GTE predicate on the "event_date" field.
func EventDateGTE(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGTE(FieldEventDate, v))
}

// EventDateLT applies the LT predicate on the "event_date" field.
func EventDateLT(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLT(FieldEventDate, v))
}

// EventDateLTE applies the LTE predicate on the "event_date" field.
func EventDateLTE(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLTE(FieldEventDate, v))
}

// EventDateContains applies the Contains predicate on the "event_date" field.
func EventDateContains(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldContains(FieldEventDate, v))
}

// EventDateHasPrefix applies the HasPrefix predicate on the "event_date" field.
func EventDateHasPrefix(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldHasPrefix(FieldEventDate, v))
}

// EventDateHasSuffix applies the HasSuffix predicate on the "event_date" field.
func EventDateHasSuffix(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldHasSuffix(FieldEventDate, v))
}

// EventDateEqualFold applies the EqualFold predicate on the "event_date" field.
func EventDateEqualFold(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEqualFold(FieldEventDate, v))
}

// EventDateContainsFold applies the ContainsFold predicate on the "event_date" field.
func EventDateContainsFold(v string) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldContainsFold(FieldEventDate, v))
}

// PreviousMasteryEQ applies the EQ predicate on the "previous_mastery" field.
func PreviousMasteryEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldPreviousMastery, v))
}

// PreviousMasteryNEQ applies the NEQ predicate on the "previous_mastery" field.
func PreviousMasteryNEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNEQ(FieldPreviousMastery, v))
}

// PreviousMasteryIn applies the In predicate on the "previous_mastery" field.
func PreviousMasteryIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIn(FieldPreviousMastery, vs...))
}

// PreviousMasteryNotIn applies the NotIn predicate on the "previous_mastery" field.
func PreviousMasteryNotIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotIn(FieldPreviousMastery, vs...))
}

// PreviousMasteryGT applies the GT predicate on the "previous_mastery" field.
func PreviousMasteryGT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGT(FieldPreviousMastery, v))
}

// PreviousMasteryGTE applies the GTE predicate on the "previous_mastery" field.
func PreviousMasteryGTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGTE(FieldPreviousMastery, v))
}

// PreviousMasteryLT applies the LT predicate on the "previous_mastery" field.
func PreviousMasteryLT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLT(FieldPreviousMastery, v))
}

// PreviousMasteryLTE applies the LTE predicate on the "previous_mastery" field.
func PreviousMasteryLTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLTE(FieldPreviousMastery, v))
}

// NewMasteryEQ applies the EQ predicate on the "new_mastery" field.
func NewMasteryEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldNewMastery, v))
}

// NewMasteryNEQ applies the NEQ predicate on the "new_mastery" field.
func NewMasteryNEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNEQ(FieldNewMastery, v))
}

// NewMasteryIn applies the In predicate on the "new_mastery" field.
func NewMasteryIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIn(FieldNewMastery, vs...))
}

// NewMasteryNotIn applies the NotIn predicate on the "new_mastery" field.
func NewMasteryNotIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotIn(FieldNewMastery, vs...))
}

// NewMasteryGT applies the GT predicate on the "new_mastery" field.
func NewMasteryGT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGT(FieldNewMastery, v))
}

// NewMasteryGTE applies the GTE predicate on the "new_mastery" field.
func NewMasteryGTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGTE(FieldNewMastery, v))
}

// NewMasteryLT applies the LT predicate on the "new_mastery" field.
func NewMasteryLT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLT(FieldNewMastery, v))
}

// NewMasteryLTE applies the LTE predicate on the "new_mastery" field.
func NewMasteryLTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLTE(FieldNewMastery, v))
}

// PreviousConfidenceEQ applies the EQ predicate on the "previous_confidence" field.
func PreviousConfidenceEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldPreviousConfidence, v))
}

// PreviousConfidenceNEQ applies the NEQ predicate on the "previous_confidence" field.
func PreviousConfidenceNEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNEQ(FieldPreviousConfidence, v))
}

// PreviousConfidenceIn applies the In predicate on the "previous_confidence" field.
func PreviousConfidenceIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIn(FieldPreviousConfidence, vs...))
}

// PreviousConfidenceNotIn applies the NotIn predicate on the "previous_confidence" field.
func PreviousConfidenceNotIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotIn(FieldPreviousConfidence, vs...))
}

// PreviousConfidenceGT applies the GT predicate on the "previous_confidence" field.
func PreviousConfidenceGT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGT(FieldPreviousConfidence, v))
}

// PreviousConfidenceGTE applies the GTE predicate on the "previous_confidence" field.
func PreviousConfidenceGTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGTE(FieldPreviousConfidence, v))
}

// PreviousConfidenceLT applies the LT predicate on the "previous_confidence" field.
func PreviousConfidenceLT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLT(FieldPreviousConfidence, v))
}

// PreviousConfidenceLTE applies the LTE predicate on the "previous_confidence" field.
func PreviousConfidenceLTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLTE(FieldPreviousConfidence, v))
}

// NewConfidenceEQ applies the EQ predicate on the "new_confidence" field.
func NewConfidenceEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldEQ(FieldNewConfidence, v))
}

// NewConfidenceNEQ applies the NEQ predicate on the "new_confidence" field.
func NewConfidenceNEQ(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNEQ(FieldNewConfidence, v))
}

// NewConfidenceIn applies the In predicate on the "new_confidence" field.
func NewConfidenceIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldIn(FieldNewConfidence, vs...))
}

// NewConfidenceNotIn applies the NotIn predicate on the "new_confidence" field.
func NewConfidenceNotIn(vs ...int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldNotIn(FieldNewConfidence, vs...))
}

// NewConfidenceGT applies the GT predicate on the "new_confidence" field.
func NewConfidenceGT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGT(FieldNewConfidence, v))
}

// NewConfidenceGTE applies the GTE predicate on the "new_confidence" field.
func NewConfidenceGTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldGTE(FieldNewConfidence, v))
}

// NewConfidenceLT applies the LT predicate on the "new_confidence" field.
func NewConfidenceLT(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLT(FieldNewConfidence, v))
}

// NewConfidenceLTE applies the LTE predicate on the "new_confidence" field.
func NewConfidenceLTE(v int) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.FieldLTE(FieldNewConfidence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicMasteryEvent) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicMasteryEvent) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicMasteryEvent) predicate.TopicMasteryEvent {
	return predicate.TopicMasteryEvent(sql.NotPredicates(p))
}
