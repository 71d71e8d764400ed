// Code generated by ent, DO NOT EDIT.

package milestone

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the milestone type in the database.
	Label = "milestone"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldGoalDescription holds the string denoting the goal_description field in the database.
	FieldGoalDescription = "goal_description"
	// FieldMilestone holds the string denoting the milestone field in the database.
	FieldMilestone = "milestone"
	// FieldSuccessCriteria holds the string denoting the success_criteria field in the database.
	FieldSuccessCriteria = "success_criteria"
	// Table holds the table name of the milestone in the database.
	Table = "milestones"
)

// Columns holds all SQL columns for milestone fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldGoalDescription,
	FieldMilestone,
	FieldSuccessCriteria,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// GoalDescriptionValidator is a validator for the "goal_description" field. It is called by the builders before save.
	GoalDescriptionValidator func(string) error
	// MilestoneValidator is a validator for the "milestone" field. It is called by the builders before save.
	MilestoneValidator func(string) error
	// SuccessCriteriaValidator is a validator for the "success_criteria" field. It is called by the builders before save.
	SuccessCriteriaValidator func(string) error
)

// OrderOption defines the ordering options for the Milestone queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByGoalDescription orders the results by the goal_description field.
func ByGoalDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalDescription, opts...).ToFunc()
}

// ByMilestone orders the results by the milestone field.
func ByMilestone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMilestone, opts...).ToFunc()
}

// BySuccessCriteria orders the results by the success_criteria field.
func BySuccessCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessCriteria, opts...).ToFunc()
}
