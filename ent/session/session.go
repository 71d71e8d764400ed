// Code generated by ent, DO NOT EDIT.

package session

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldTranscriptText holds the string denoting the transcript_text field in the database.
	FieldTranscriptText = "transcript_text"
	// FieldSessionDate holds the string denoting the session_date field in the database.
	FieldSessionDate = "session_date"
	// FieldExtractedSummary holds the string denoting the extracted_summary field in the database.
	FieldExtractedSummary = "extracted_summary"
	// FieldDetectedTopics holds the string denoting the detected_topics field in the database.
	FieldDetectedTopics = "detected_topics"
	// FieldDetectedMisconceptions holds the string denoting the detected_misconceptions field in the database.
	FieldDetectedMisconceptions = "detected_misconceptions"
	// FieldDetectedStrengths holds the string denoting the detected_strengths field in the database.
	FieldDetectedStrengths = "detected_strengths"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldParentSummary holds the string denoting the parent_summary field in the database.
	FieldParentSummary = "parent_summary"
	// FieldTutorInsight holds the string denoting the tutor_insight field in the database.
	FieldTutorInsight = "tutor_insight"
	// FieldRecommendedNextTargets holds the string denoting the recommended_next_targets field in the database.
	FieldRecommendedNextTargets = "recommended_next_targets"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldTranscriptText,
	FieldSessionDate,
	FieldExtractedSummary,
	FieldDetectedTopics,
	FieldDetectedMisconceptions,
	FieldDetectedStrengths,
	FieldEngagementScore,
	FieldParentSummary,
	FieldTutorInsight,
	FieldRecommendedNextTargets,
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
	// SessionDateValidator is a validator for the "session_date" field. It is called by the builders before save.
	SessionDateValidator func(string) error
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByTranscriptText orders the results by the transcript_text field.
func ByTranscriptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptText, opts...).ToFunc()
}

// BySessionDate orders the results by the session_date field.
func BySessionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionDate, opts...).ToFunc()
}

// ByExtractedSummary orders the results by the extracted_summary field.
func ByExtractedSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedSummary, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByParentSummary orders the results by the parent_summary field.
func ByParentSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentSummary, opts...).ToFunc()
}

// ByTutorInsight orders the results by the tutor_insight field.
func ByTutorInsight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTutorInsight, opts...).ToFunc()
}
