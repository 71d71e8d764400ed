// Code generated by ent, DO NOT EDIT.

package mentalblock

import (
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldStudentID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldDescription, v))
}

// FirstDetected applies equality check predicate on the "first_detected" field. It's identical to FirstDetectedEQ.
func FirstDetected(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldFirstDetected, v))
}

// LastDetected applies equality check predicate on the "last_detected" field. It's identical to LastDetectedEQ.
func LastDetected(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldLastDetected, v))
}

// FrequencyCount applies equality check predicate on the "frequency_count" field. It's identical to FrequencyCountEQ.
func FrequencyCount(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldFrequencyCount, v))
}

// SeverityScore applies equality check predicate on the "severity_score" field. It's identical to SeverityScoreEQ.
func SeverityScore(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldSeverityScore, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldStudentID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContainsFold(FieldDescription, v))
}

// FirstDetectedEQ applies the EQ predicate on the "first_detected" field.
func FirstDetectedEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldFirstDetected, v))
}

// FirstDetectedNEQ applies the NEQ predicate on the "first_detected" field.
func FirstDetectedNEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldFirstDetected, v))
}

// FirstDetectedIn applies the In predicate on the "first_detected" field.
func FirstDetectedIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldFirstDetected, vs...))
}

// FirstDetectedNotIn applies the NotIn predicate on the "first_detected" field.
func FirstDetectedNotIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldFirstDetected, vs...))
}

// FirstDetectedGT applies the GT predicate on the "first_detected" field.
func FirstDetectedGT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldFirstDetected, v))
}

// FirstDetectedGTE applies the GTE predicate on the "first_detected" field.
func FirstDetectedGTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldFirstDetected, v))
}

// FirstDetectedLT applies the LT predicate on the "first_detected" field.
func FirstDetectedLT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldFirstDetected, v))
}

// FirstDetectedLTE applies the LTE predicate on the "first_detected" field.
func FirstDetectedLTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldFirstDetected, v))
}

// FirstDetectedContains applies the Contains predicate on the "first_detected" field.
func FirstDetectedContains(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContains(FieldFirstDetected, v))
}

// FirstDetectedHasPrefix applies the HasPrefix predicate on the "first_detected" field.
func FirstDetectedHasPrefix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasPrefix(FieldFirstDetected, v))
}

// FirstDetectedHasSuffix applies the HasSuffix predicate on the "first_detected" field.
func FirstDetectedHasSuffix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasSuffix(FieldFirstDetected, v))
}

// FirstDetectedEqualFold applies the EqualFold predicate on the "first_detected" field.
func FirstDetectedEqualFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEqualFold(FieldFirstDetected, v))
}

// FirstDetectedContainsFold applies the ContainsFold predicate on the "first_detected" field.
func FirstDetectedContainsFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContainsFold(FieldFirstDetected, v))
}

// LastDetectedEQ applies the EQ predicate on the "last_detected" field.
func LastDetectedEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldLastDetected, v))
}

// LastDetectedNEQ applies the NEQ predicate on the "last_detected" field.
func LastDetectedNEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldLastDetected, v))
}

// LastDetectedIn applies the In predicate on the "last_detected" field.
func LastDetectedIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldLastDetected, vs...))
}

// LastDetectedNotIn applies the NotIn predicate on the "last_detected" field.
func LastDetectedNotIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldLastDetected, vs...))
}

// LastDetectedGT applies the GT predicate on the "last_detected" field.
func LastDetectedGT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldLastDetected, v))
}

// LastDetectedGTE applies the GTE predicate on the "last_detected" field.
func LastDetectedGTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldLastDetected, v))
}

// LastDetectedLT applies the LT predicate on the "last_detected" field.
func LastDetectedLT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldLastDetected, v))
}

// LastDetectedLTE applies the LTE predicate on the "last_detected" field.
func LastDetectedLTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldLastDetected, v))
}

// LastDetectedContains applies the Contains predicate on the "last_detected" field.
func LastDetectedContains(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContains(FieldLastDetected, v))
}

// LastDetectedHasPrefix applies the HasPrefix predicate on the "last_detected" field.
func LastDetectedHasPrefix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasPrefix(FieldLastDetected, v))
}

// LastDetectedHasSuffix applies the HasSuffix predicate on the "last_detected" field.
func LastDetectedHasSuffix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasSuffix(FieldLastDetected, v))
}

// LastDetectedEqualFold applies the EqualFold predicate on the "last_detected" field.
func LastDetectedEqualFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEqualFold(FieldLastDetected, v))
}

// LastDetectedContainsFold applies the ContainsFold predicate on the "last_detected" field.
func LastDetectedContainsFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContainsFold(FieldLastDetected, v))
}

// FrequencyCountEQ applies the EQ predicate on the "frequency_count" field.
func FrequencyCountEQ(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldFrequencyCount, v))
}

// FrequencyCountNEQ applies the NEQ predicate on the "frequency_count" field.
func FrequencyCountNEQ(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldFrequencyCount, v))
}

// FrequencyCountIn applies the In predicate on the "frequency_count" field.
func FrequencyCountIn(vs ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldFrequencyCount, vs...))
}

// FrequencyCountNotIn applies the NotIn predicate on the "frequency_count" field.
func FrequencyCountNotIn(vs ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldFrequencyCount, vs...))
}

// FrequencyCountGT applies the GT predicate on the "frequency_count" field.
func FrequencyCountGT(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldFrequencyCount, v))
}

// FrequencyCountGTE applies the GTE predicate on the "frequency_count" field.
func FrequencyCountGTE(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldFrequencyCount, v))
}

// FrequencyCountLT applies the LT predicate on the "frequency_count" field.
func FrequencyCountLT(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldFrequencyCount, v))
}

// FrequencyCountLTE applies the LTE predicate on the "frequency_count" field.
func FrequencyCountLTE(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldFrequencyCount, v))
}

// SeverityScoreEQ applies the EQ predicate on the "severity_score" field.
func SeverityScoreEQ(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldSeverityScore, v))
}

// SeverityScoreNEQ applies the NEQ predicate on the "severity_score" field.
func SeverityScoreNEQ(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldSeverityScore, v))
}

// SeverityScoreIn applies the In predicate on the "severity_score" field.
func SeverityScoreIn(vs ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldSeverityScore, vs...))
}

// SeverityScoreNotIn applies the NotIn predicate on the "severity_score" field.
func SeverityScoreNotIn(vs ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldSeverityScore, vs...))
}

// SeverityScoreGT applies the GT predicate on the "severity_score" field.
func SeverityScoreGT(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldSeverityScore, v))
}

// SeverityScoreGTE applies the GTE predicate on the "severity_score" field.
func SeverityScoreGTE(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldSeverityScore, v))
}

// SeverityScoreLT applies the LT predicate on the "severity_score" field.
func SeverityScoreLT(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldSeverityScore, v))
}

// SeverityScoreLTE applies the LTE predicate on the "severity_score" field.
func SeverityScoreLTE(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldSeverityScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MentalBlock) predicate.MentalBlock {
	return predicate.MentalBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MentalBlock) predicate.MentalBlock {
	return predicate.MentalBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MentalBlock) predicate.MentalBlock {
	return predicate.MentalBlock(sql.NotPredicates(p))
}
