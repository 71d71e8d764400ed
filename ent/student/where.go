// Code generated by ent, DO NOT EDIT.

package student

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldGrade, v))
}

// Curriculum applies equality check predicate on the "curriculum" field. It's identical to CurriculumEQ.
func Curriculum(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCurriculum, v))
}

// TargetExam applies equality check predicate on the "target_exam" field. It's identical to TargetExamEQ.
func TargetExam(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldTargetExam, v))
}

// LongTermGoalSummary applies equality check predicate on the "long_term_goal_summary" field. It's identical to LongTermGoalSummaryEQ.
func LongTermGoalSummary(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldLongTermGoalSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldName, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeIsNil applies the IsNil predicate on the "grade" field.
func GradeIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldGrade))
}

// GradeNotNil applies the NotNil predicate on the "grade" field.
func GradeNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldGrade))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldGrade, v))
}

// CurriculumEQ applies the EQ predicate on the "curriculum" field.
func CurriculumEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCurriculum, v))
}

// CurriculumNEQ applies the NEQ predicate on the "curriculum" field.
func CurriculumNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCurriculum, v))
}

// CurriculumIn applies the In predicate on the "curriculum" field.
func CurriculumIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCurriculum, vs...))
}

// CurriculumNotIn applies the NotIn predicate on the "curriculum" field.
func CurriculumNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCurriculum, vs...))
}

// CurriculumGT applies the GT predicate on the "curriculum" field.
func CurriculumGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCurriculum, v))
}

// CurriculumGTE applies the GTE predicate on the "curriculum" field.
func CurriculumGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCurriculum, v))
}

// CurriculumLT applies the LT predicate on the "curriculum" field.
func CurriculumLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCurriculum, v))
}

// CurriculumLTE applies the LTE predicate on the "curriculum" field.
func CurriculumLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCurriculum, v))
}

// CurriculumContains applies the Contains predicate on the "curriculum" field.
func CurriculumContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldCurriculum, v))
}

// CurriculumHasPrefix applies the HasPrefix predicate on the "curriculum" field.
func CurriculumHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldCurriculum, v))
}

// CurriculumHasSuffix applies the HasSuffix predicate on the "curriculum" field.
func CurriculumHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldCurriculum, v))
}

// CurriculumIsNil applies the IsNil predicate on the "curriculum" field.
func CurriculumIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldCurriculum))
}

// CurriculumNotNil applies the NotNil predicate on the "curriculum" field.
func CurriculumNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldCurriculum))
}

// CurriculumEqualFold applies the EqualFold predicate on the "curriculum" field.
func CurriculumEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldCurriculum, v))
}

// CurriculumContainsFold applies the ContainsFold predicate on the "curriculum" field.
func CurriculumContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldCurriculum, v))
}

// TargetExamEQ applies the EQ predicate on the "target_exam" field.
func TargetExamEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldTargetExam, v))
}

// TargetExamNEQ applies the NEQ predicate on the "target_exam" field.
func TargetExamNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldTargetExam, v))
}

// TargetExamIn applies the In predicate on the "target_exam" field.
func TargetExamIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldTargetExam, vs...))
}

// TargetExamNotIn applies the NotIn predicate on the "target_exam" field.
func TargetExamNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldTargetExam, vs...))
}

// TargetExamGT applies the GT predicate on the "target_exam" field.
func TargetExamGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldTargetExam, v))
}

// TargetExamGTE applies the GTE predicate on the "target_exam" field.
func TargetExamGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldTargetExam, v))
}

// TargetExamLT applies the LT predicate on the "target_exam" field.
func TargetExamLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldTargetExam, v))
}

// TargetExamLTE applies the LTE predicate on the "target_exam" field.
func TargetExamLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldTargetExam, v))
}

// TargetExamContains applies the Contains predicate on the "target_exam" field.
func TargetExamContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldTargetExam, v))
}

// TargetExamHasPrefix applies the HasPrefix predicate on the "target_exam" field.
func TargetExamHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldTargetExam, v))
}

// TargetExamHasSuffix applies the HasSuffix predicate on the "target_exam" field.
func TargetExamHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldTargetExam, v))
}

// TargetExamIsNil applies the IsNil predicate on the "target_exam" field.
func TargetExamIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldTargetExam))
}

// TargetExamNotNil applies the NotNil predicate on the "target_exam" field.
func TargetExamNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldTargetExam))
}

// TargetExamEqualFold applies the EqualFold predicate on the "target_exam" field.
func TargetExamEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldTargetExam, v))
}

// TargetExamContainsFold applies the ContainsFold predicate on the "target_exam" field.
func TargetExamContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldTargetExam, v))
}

// LongTermGoalSummaryEQ applies the EQ predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryNEQ applies the NEQ predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryIn applies the In predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldLongTermGoalSummary, vs...))
}

// LongTermGoalSummaryNotIn applies the NotIn predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldLongTermGoalSummary, vs...))
}

// LongTermGoalSummaryGT applies the GT predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryGTE applies the GTE predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryLT applies the LT predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryLTE applies the LTE predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryContains applies the Contains predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryHasPrefix applies the HasPrefix predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryHasSuffix applies the HasSuffix predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryIsNil applies the IsNil predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldLongTermGoalSummary))
}

// LongTermGoalSummaryNotNil applies the NotNil predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldLongTermGoalSummary))
}

// LongTermGoalSummaryEqualFold applies the EqualFold predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldLongTermGoalSummary, v))
}

// LongTermGoalSummaryContainsFold applies the ContainsFold predicate on the "long_term_goal_summary" field.
func LongTermGoalSummaryContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldLongTermGoalSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Student) predicate.Student {
	return predicate.Student(sql.NotPredicates(p))
}
