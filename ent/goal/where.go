// Code generated by ent, DO NOT EDIT.

package goal

import (
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldStudentID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldDescription, v))
}

// MeasurableOutcome applies equality check predicate on the "measurable_outcome" field. It's identical to MeasurableOutcomeEQ.
func MeasurableOutcome(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldMeasurableOutcome, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldDeadline, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldStatus, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldStudentID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldDescription, v))
}

// MeasurableOutcomeEQ applies the EQ predicate on the "measurable_outcome" field.
func MeasurableOutcomeEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeNEQ applies the NEQ predicate on the "measurable_outcome" field.
func MeasurableOutcomeNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeIn applies the In predicate on the "measurable_outcome" field.
func MeasurableOutcomeIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldMeasurableOutcome, vs...))
}

// MeasurableOutcomeNotIn applies the NotIn predicate on the "measurable_outcome" field.
func MeasurableOutcomeNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldMeasurableOutcome, vs...))
}

// MeasurableOutcomeGT applies the GT predicate on the "measurable_outcome" field.
func MeasurableOutcomeGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeGTE applies the GTE predicate on the "measurable_outcome" field.
func MeasurableOutcomeGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeLT applies the LT predicate on the "measurable_outcome" field.
func MeasurableOutcomeLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeLTE applies the LTE predicate on the "measurable_outcome" field.
func MeasurableOutcomeLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeContains applies the Contains predicate on the "measurable_outcome" field.
func MeasurableOutcomeContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeHasPrefix applies the HasPrefix predicate on the "measurable_outcome" field.
func MeasurableOutcomeHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeHasSuffix applies the HasSuffix predicate on the "measurable_outcome" field.
func MeasurableOutcomeHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeIsNil applies the IsNil predicate on the "measurable_outcome" field.
func MeasurableOutcomeIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldMeasurableOutcome))
}

// MeasurableOutcomeNotNil applies the NotNil predicate on the "measurable_outcome" field.
func MeasurableOutcomeNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldMeasurableOutcome))
}

// MeasurableOutcomeEqualFold applies the EqualFold predicate on the "measurable_outcome" field.
func MeasurableOutcomeEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldMeasurableOutcome, v))
}

// MeasurableOutcomeContainsFold applies the ContainsFold predicate on the "measurable_outcome" field.
func MeasurableOutcomeContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldMeasurableOutcome, v))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldDeadline, v))
}

// DeadlineContains applies the Contains predicate on the "deadline" field.
func DeadlineContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldDeadline, v))
}

// DeadlineHasPrefix applies the HasPrefix predicate on the "deadline" field.
func DeadlineHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldDeadline, v))
}

// DeadlineHasSuffix applies the HasSuffix predicate on the "deadline" field.
func DeadlineHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldDeadline, v))
}

// DeadlineIsNil applies the IsNil predicate on the "deadline" field.
func DeadlineIsNil() predicate.Goal {
	return predicate.Goal(sql.FieldIsNull(FieldDeadline))
}

// DeadlineNotNil applies the NotNil predicate on the "deadline" field.
func DeadlineNotNil() predicate.Goal {
	return predicate.Goal(sql.FieldNotNull(FieldDeadline))
}

// DeadlineEqualFold applies the EqualFold predicate on the "deadline" field.
func DeadlineEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldDeadline, v))
}

// DeadlineContainsFold applies the ContainsFold predicate on the "deadline" field.
func DeadlineContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldDeadline, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.NotPredicates(p))
}
