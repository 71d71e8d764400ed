// Code generated by ent, DO NOT EDIT.

package milestone

import (
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldStudentID, v))
}

// GoalDescription applies equality check predicate on the "goal_description" field. It's identical to GoalDescriptionEQ.
func GoalDescription(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldGoalDescription, v))
}

// Milestone applies equality check predicate on the "milestone" field. It's identical to MilestoneEQ.
func Milestone(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldMilestone, v))
}

// SuccessCriteria applies equality check predicate on the "success_criteria" field. It's identical to SuccessCriteriaEQ.
func SuccessCriteria(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldSuccessCriteria, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldStudentID, v))
}

// GoalDescriptionEQ applies the EQ predicate on the "goal_description" field.
func GoalDescriptionEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldGoalDescription, v))
}

// GoalDescriptionNEQ applies the NEQ predicate on the "goal_description" field.
func GoalDescriptionNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldGoalDescription, v))
}

// GoalDescriptionIn applies the In predicate on the "goal_description" field.
func GoalDescriptionIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldGoalDescription, vs...))
}

// GoalDescriptionNotIn applies the NotIn predicate on the "goal_description" field.
func GoalDescriptionNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldGoalDescription, vs...))
}

// GoalDescriptionGT applies the GT predicate on the "goal_description" field.
func GoalDescriptionGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldGoalDescription, v))
}

// GoalDescriptionGTE applies the GTE predicate on the "goal_description" field.
func GoalDescriptionGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldGoalDescription, v))
}

// GoalDescriptionLT applies the LT predicate on the "goal_description" field.
func GoalDescriptionLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldGoalDescription, v))
}

// GoalDescriptionLTE applies the LTE predicate on the "goal_description" field.
func GoalDescriptionLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldGoalDescription, v))
}

// GoalDescriptionContains applies the Contains predicate on the "goal_description" field.
func GoalDescriptionContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldGoalDescription, v))
}

// GoalDescriptionHasPrefix applies the HasPrefix predicate on the "goal_description" field.
func GoalDescriptionHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldGoalDescription, v))
}

// GoalDescriptionHasSuffix applies the HasSuffix predicate on the "goal_description" field.
func GoalDescriptionHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldGoalDescription, v))
}

// GoalDescriptionEqualFold applies the EqualFold predicate on the "goal_description" field.
func GoalDescriptionEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldGoalDescription, v))
}

// GoalDescriptionContainsFold applies the ContainsFold predicate on the "goal_description" field.
func GoalDescriptionContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldGoalDescription, v))
}

// MilestoneEQ applies the EQ predicate on the "milestone" field.
func MilestoneEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldMilestone, v))
}

// MilestoneNEQ applies the NEQ predicate on the "milestone" field.
func MilestoneNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldMilestone, v))
}

// MilestoneIn applies the In predicate on the "milestone" field.
func MilestoneIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldMilestone, vs...))
}

// MilestoneNotIn applies the NotIn predicate on the "milestone" field.
func MilestoneNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldMilestone, vs...))
}

// MilestoneGT applies the GT predicate on the "milestone" field.
func MilestoneGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldMilestone, v))
}

// MilestoneGTE applies the GTE predicate on the "milestone" field.
func MilestoneGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldMilestone, v))
}

// MilestoneLT applies the LT predicate on the "milestone" field.
func MilestoneLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldMilestone, v))
}

// MilestoneLTE applies the LTE predicate on the "milestone" field.
func MilestoneLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldMilestone, v))
}

// MilestoneContains applies the Contains predicate on the "milestone" field.
func MilestoneContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldMilestone, v))
}

// MilestoneHasPrefix applies the HasPrefix predicate on the "milestone" field.
func MilestoneHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldMilestone, v))
}

// MilestoneHasSuffix applies the HasSuffix predicate on the "milestone" field.
func MilestoneHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldMilestone, v))
}

// MilestoneEqualFold applies the EqualFold predicate on the "milestone" field.
func MilestoneEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldMilestone, v))
}

// MilestoneContainsFold applies the ContainsFold predicate on the "milestone" field.
func MilestoneContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldMilestone, v))
}

// SuccessCriteriaEQ applies the EQ predicate on the "success_criteria" field.
func SuccessCriteriaEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldSuccessCriteria, v))
}

// SuccessCriteriaNEQ applies the NEQ predicate on the "success_criteria" field.
func SuccessCriteriaNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldSuccessCriteria, v))
}

// SuccessCriteriaIn applies the In predicate on the "success_criteria" field.
func SuccessCriteriaIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldSuccessCriteria, vs...))
}

// SuccessCriteriaNotIn applies the NotIn predicate on the "success_criteria" field.
func SuccessCriteriaNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldSuccessCriteria, vs...))
}

// SuccessCriteriaGT applies the GT predicate on the "success_criteria" field.
func SuccessCriteriaGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldSuccessCriteria, v))
}

// SuccessCriteriaGTE applies the GTE predicate on the "success_criteria" field.
func SuccessCriteriaGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldSuccessCriteria, v))
}

// SuccessCriteriaLT applies the LT predicate on the "success_criteria" field.
func SuccessCriteriaLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldSuccessCriteria, v))
}

// SuccessCriteriaLTE applies the LTE predicate on the "success_criteria" field.
func SuccessCriteriaLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldSuccessCriteria, v))
}

// SuccessCriteriaContains applies the Contains predicate on the "success_criteria" field.
func SuccessCriteriaContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldSuccessCriteria, v))
}

// SuccessCriteriaHasPrefix applies the HasPrefix predicate on the "success_criteria" field.
func SuccessCriteriaHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldSuccessCriteria, v))
}

// SuccessCriteriaHasSuffix applies the HasSuffix predicate on the "success_criteria" field.
func SuccessCriteriaHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldSuccessCriteria, v))
}

// SuccessCriteriaEqualFold applies the EqualFold predicate on the "success_criteria" field.
func SuccessCriteriaEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldSuccessCriteria, v))
}

// SuccessCriteriaContainsFold applies the ContainsFold predicate on the "success_criteria" field.
func SuccessCriteriaContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldSuccessCriteria, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Milestone) predicate.Milestone {
	return predicate.Milestone(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Milestone) predicate.Milestone {
	return predicate.Milestone(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Milestone) predicate.Milestone {
	return predicate.Milestone(sql.NotPredicates(p))
}
