// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID int `json:"student_id,omitempty"`
	// TranscriptText holds the value of the "transcript_text" field.
	TranscriptText string `json:"transcript_text,omitempty"`
	// Caller-supplied date string; the core never generates timestamps
	SessionDate string `json:"session_date,omitempty"`
	// ExtractedSummary holds the value of the "extracted_summary" field.
	ExtractedSummary string `json:"extracted_summary,omitempty"`
	// DetectedTopics holds the value of the "detected_topics" field.
	DetectedTopics []string `json:"detected_topics,omitempty"`
	// DetectedMisconceptions holds the value of the "detected_misconceptions" field.
	DetectedMisconceptions []string `json:"detected_misconceptions,omitempty"`
	// DetectedStrengths holds the value of the "detected_strengths" field.
	DetectedStrengths []string `json:"detected_strengths,omitempty"`
	// EngagementScore holds the value of the "engagement_score" field.
	EngagementScore *int `json:"engagement_score,omitempty"`
	// ParentSummary holds the value of the "parent_summary" field.
	ParentSummary string `json:"parent_summary,omitempty"`
	// TutorInsight holds the value of the "tutor_insight" field.
	TutorInsight string `json:"tutor_insight,omitempty"`
	// RecommendedNextTargets holds the value of the "recommended_next_targets" field.
	RecommendedNextTargets []string `json:"recommended_next_targets,omitempty"`
	selectValues           sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldDetectedTopics, session.FieldDetectedMisconceptions, session.FieldDetectedStrengths, session.FieldRecommendedNextTargets:
			values[i] = new([]byte)
		case session.FieldID, session.FieldStudentID, session.FieldEngagementScore:
			values[i] = new(sql.NullInt64)
		case session.FieldTranscriptText, session.FieldSessionDate, session.FieldExtractedSummary, session.FieldParentSummary, session.FieldTutorInsight:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case session.FieldStudentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = int(value.Int64)
			}
		case session.FieldTranscriptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_text", values[i])
			} else if value.Valid {
				_m.TranscriptText = value.String
			}
		case session.FieldSessionDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_date", values[i])
			} else if value.Valid {
				_m.SessionDate = value.String
			}
		case session.FieldExtractedSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_summary", values[i])
			} else if value.Valid {
				_m.ExtractedSummary = value.String
			}
		case session.FieldDetectedTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detected_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetectedTopics); err != nil {
					return fmt.Errorf("unmarshal field detected_topics: %w", err)
				}
			}
		case session.FieldDetectedMisconceptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detected_misconceptions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetectedMisconceptions); err != nil {
					return fmt.Errorf("unmarshal field detected_misconceptions: %w", err)
				}
			}
		case session.FieldDetectedStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detected_strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetectedStrengths); err != nil {
					return fmt.Errorf("unmarshal field detected_strengths: %w", err)
				}
			}
		case session.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = new(int)
				*_m.EngagementScore = int(value.Int64)
			}
		case session.FieldParentSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_summary", values[i])
			} else if value.Valid {
				_m.ParentSummary = value.String
			}
		case session.FieldTutorInsight:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_insight", values[i])
			} else if value.Valid {
				_m.TutorInsight = value.String
			}
		case session.FieldRecommendedNextTargets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_next_targets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecommendedNextTargets); err != nil {
					return fmt.Errorf("unmarshal field recommended_next_targets: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("transcript_text=")
	builder.WriteString(_m.TranscriptText)
	builder.WriteString(", ")
	builder.WriteString("session_date=")
	builder.WriteString(_m.SessionDate)
	builder.WriteString(", ")
	builder.WriteString("extracted_summary=")
	builder.WriteString(_m.ExtractedSummary)
	builder.WriteString(", ")
	builder.WriteString("detected_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedTopics))
	builder.WriteString(", ")
	builder.WriteString("detected_misconceptions=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedMisconceptions))
	builder.WriteString(", ")
	builder.WriteString("detected_strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedStrengths))
	builder.WriteString(", ")
	if v := _m.EngagementScore; v != nil {
		builder.WriteString("engagement_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("parent_summary=")
	builder.WriteString(_m.ParentSummary)
	builder.WriteString(", ")
	builder.WriteString("tutor_insight=")
	builder.WriteString(_m.TutorInsight)
	builder.WriteString(", ")
	builder.WriteString("recommended_next_targets=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendedNextTargets))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
