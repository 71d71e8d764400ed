// Code generated by ent, DO NOT EDIT.

package topicmasteryevent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicmasteryevent type in the database.
	Label = "topic_mastery_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldTopicName holds the string denoting the topic_name field in the database.
	FieldTopicName = "topic_name"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldEventDate holds the string denoting the event_date field in the database.
	FieldEventDate = "event_date"
	// FieldPreviousMastery holds the string denoting the previous_mastery field in the database.
	FieldPreviousMastery = "previous_mastery"
	// FieldNewMastery holds the string denoting the new_mastery field in the database.
	FieldNewMastery = "new_mastery"
	// FieldPreviousConfidence holds the string denoting the previous_confidence field in the database.
	FieldPreviousConfidence = "previous_confidence"
	// FieldNewConfidence holds the string denoting the new_confidence field in the database.
	FieldNewConfidence = "new_confidence"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// Table holds the table name of the topicmasteryevent in the database.
	Table = "topic_mastery_events"
)

// Columns holds all SQL columns for topicmasteryevent fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldTopicName,
	FieldSessionID,
	FieldEventDate,
	FieldPreviousMastery,
	FieldNewMastery,
	FieldPreviousConfidence,
	FieldNewConfidence,
	FieldExplanation,
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
	// TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	TopicNameValidator func(string) error
	// EventDateValidator is a validator for the "event_date" field. It is called by the builders before save.
	EventDateValidator func(string) error
)

// OrderOption defines the ordering options for the TopicMasteryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByTopicName orders the results by the topic_name field.
func ByTopicName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicName, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByEventDate orders the results by the event_date field.
func ByEventDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventDate, opts...).ToFunc()
}

// ByPreviousMastery orders the results by the previous_mastery field.
func ByPreviousMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousMastery, opts...).ToFunc()
}

// ByNewMastery orders the results by the new_mastery field.
func ByNewMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewMastery, opts...).ToFunc()
}

// ByPreviousConfidence orders the results by the previous_confidence field.
func ByPreviousConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousConfidence, opts...).ToFunc()
}

// ByNewConfidence orders the results by the new_confidence field.
func ByNewConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewConfidence, opts...).ToFunc()
}
