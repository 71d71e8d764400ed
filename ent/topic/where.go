// Code generated by ent, DO NOT EDIT.

package topic

import (
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldStudentID, v))
}

// TopicName applies equality check predicate on the "topic_name" field. It's identical to TopicNameEQ.
func TopicName(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldTopicName, v))
}

// ParentTopic applies equality check predicate on the "parent_topic" field. It's identical to ParentTopicEQ.
func ParentTopic(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldParentTopic, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldMasteryScore, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldConfidenceScore, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldStudentID, v))
}

// TopicNameEQ applies the EQ predicate on the "topic_name" field.
func TopicNameEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldTopicName, v))
}

// TopicNameNEQ applies the NEQ predicate on the "topic_name" field.
func TopicNameNEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldTopicName, v))
}

// TopicNameIn applies the In predicate on the "topic_name" field.
func TopicNameIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldTopicName, vs...))
}

// TopicNameNotIn applies the NotIn predicate on the "topic_name" field.
func TopicNameNotIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldTopicName, vs...))
}

// TopicNameGT applies the GT predicate on the "topic_name" field.
func TopicNameGT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldTopicName, v))
}

// TopicNameGTE applies the GTE predicate on the "topic_name" field.
func TopicNameGTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldTopicName, v))
}

// TopicNameLT applies the LT predicate on the "topic_name" field.
func TopicNameLT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldTopicName, v))
}

// TopicNameLTE applies the LTE predicate on the "topic_name" field.
func TopicNameLTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldTopicName, v))
}

// TopicNameContains applies the Contains predicate on the "topic_name" field.
func TopicNameContains(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContains(FieldTopicName, v))
}

// TopicNameHasPrefix applies the HasPrefix predicate on the "topic_name" field.
func TopicNameHasPrefix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasPrefix(FieldTopicName, v))
}

// TopicNameHasSuffix applies the HasSuffix predicate on the "topic_name" field.
func TopicNameHasSuffix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasSuffix(FieldTopicName, v))
}

// TopicNameEqualFold applies the EqualFold predicate on the "topic_name" field.
func TopicNameEqualFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEqualFold(FieldTopicName, v))
}

// TopicNameContainsFold applies the ContainsFold predicate on the "topic_name" field.
func TopicNameContainsFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContainsFold(FieldTopicName, v))
}

// ParentTopicEQ applies the EQ predicate on the "parent_topic" field.
func ParentTopicEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldParentTopic, v))
}

// ParentTopicNEQ applies the NEQ predicate on the "parent_topic" field.
func ParentTopicNEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldParentTopic, v))
}

// ParentTopicIn applies the In predicate on the "parent_topic" field.
func ParentTopicIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldParentTopic, vs...))
}

// ParentTopicNotIn applies the NotIn predicate on the "parent_topic" field.
func ParentTopicNotIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldParentTopic, vs...))
}

// ParentTopicGT applies the GT predicate on the "parent_topic" field.
func ParentTopicGT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldParentTopic, v))
}

// ParentTopicGTE applies the GTE predicate on the "parent_topic" field.
func ParentTopicGTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldParentTopic, v))
}

// ParentTopicLT applies the LT predicate on the "parent_topic" field.
func ParentTopicLT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldParentTopic, v))
}

// ParentTopicLTE applies the LTE predicate on the "parent_topic" field.
func ParentTopicLTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldParentTopic, v))
}

// ParentTopicContains applies the Contains predicate on the "parent_topic" field.
func ParentTopicContains(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContains(FieldParentTopic, v))
}

// ParentTopicHasPrefix applies the HasPrefix predicate on the "parent_topic" field.
func ParentTopicHasPrefix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasPrefix(FieldParentTopic, v))
}

// ParentTopicHasSuffix applies the HasSuffix predicate on the "parent_topic" field.
func ParentTopicHasSuffix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasSuffix(FieldParentTopic, v))
}

// ParentTopicIsNil applies the IsNil predicate on the "parent_topic" field.
func ParentTopicIsNil() predicate.Topic {
	return predicate.Topic(sql.FieldIsNull(FieldParentTopic))
}

// ParentTopicNotNil applies the NotNil predicate on the "parent_topic" field.
func ParentTopicNotNil() predicate.Topic {
	return predicate.Topic(sql.FieldNotNull(FieldParentTopic))
}

// ParentTopicEqualFold applies the EqualFold predicate on the "parent_topic" field.
func ParentTopicEqualFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEqualFold(FieldParentTopic, v))
}

// ParentTopicContainsFold applies the ContainsFold predicate on the "parent_topic" field.
func ParentTopicContainsFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContainsFold(FieldParentTopic, v))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldMasteryScore, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldConfidenceScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Topic) predicate.Topic {
	return predicate.Topic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Topic) predicate.Topic {
	return predicate.Topic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Topic) predicate.Topic {
	return predicate.Topic(sql.NotPredicates(p))
}
