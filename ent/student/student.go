// Code generated by ent, DO NOT EDIT.

package student

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the student type in the database.
	Label = "student"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldCurriculum holds the string denoting the curriculum field in the database.
	FieldCurriculum = "curriculum"
	// FieldTargetExam holds the string denoting the target_exam field in the database.
	FieldTargetExam = "target_exam"
	// FieldLongTermGoalSummary holds the string denoting the long_term_goal_summary field in the database.
	FieldLongTermGoalSummary = "long_term_goal_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the student in the database.
	Table = "students"
)

// Columns holds all SQL columns for student fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldGrade,
	FieldCurriculum,
	FieldTargetExam,
	FieldLongTermGoalSummary,
	FieldCreatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Student queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByCurriculum orders the results by the curriculum field.
func ByCurriculum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurriculum, opts...).ToFunc()
}

// ByTargetExam orders the results by the target_exam field.
func ByTargetExam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetExam, opts...).ToFunc()
}

// ByLongTermGoalSummary orders the results by the long_term_goal_summary field.
func ByLongTermGoalSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongTermGoalSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
