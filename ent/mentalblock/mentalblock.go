// Code generated by ent, DO NOT EDIT.

package mentalblock

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mentalblock type in the database.
	Label = "mental_block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldFirstDetected holds the string denoting the first_detected field in the database.
	FieldFirstDetected = "first_detected"
	// FieldLastDetected holds the string denoting the last_detected field in the database.
	FieldLastDetected = "last_detected"
	// FieldFrequencyCount holds the string denoting the frequency_count field in the database.
	FieldFrequencyCount = "frequency_count"
	// FieldSeverityScore holds the string denoting the severity_score field in the database.
	FieldSeverityScore = "severity_score"
	// Table holds the table name of the mentalblock in the database.
	Table = "mental_blocks"
)

// Columns holds all SQL columns for mentalblock fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldDescription,
	FieldFirstDetected,
	FieldLastDetected,
	FieldFrequencyCount,
	FieldSeverityScore,
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
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// FirstDetectedValidator is a validator for the "first_detected" field. It is called by the builders before save.
	FirstDetectedValidator func(string) error
	// LastDetectedValidator is a validator for the "last_detected" field. It is called by the builders before save.
	LastDetectedValidator func(string) error
	// DefaultFrequencyCount holds the default value on creation for the "frequency_count" field.
	DefaultFrequencyCount int
	// FrequencyCountValidator is a validator for the "frequency_count" field. It is called by the builders before save.
	FrequencyCountValidator func(int) error
	// DefaultSeverityScore holds the default value on creation for the "severity_score" field.
	DefaultSeverityScore int
	// SeverityScoreValidator is a validator for the "severity_score" field. It is called by the builders before save.
	SeverityScoreValidator func(int) error
)

// OrderOption defines the ordering options for the MentalBlock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByFirstDetected orders the results by the first_detected field.
func ByFirstDetected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDetected, opts...).ToFunc()
}

// ByLastDetected orders the results by the last_detected field.
func ByLastDetected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDetected, opts...).ToFunc()
}

// ByFrequencyCount orders the results by the frequency_count field.
func ByFrequencyCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequencyCount, opts...).ToFunc()
}

// BySeverityScore orders the results by the severity_score field.
func BySeverityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverityScore, opts...).ToFunc()
}
