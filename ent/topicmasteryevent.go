// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topicmasteryevent"
)

// TopicMasteryEvent is the model entity for the TopicMasteryEvent schema.
type TopicMasteryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID int `json:"student_id,omitempty"`
	// TopicName holds the value of the "topic_name" field.
	TopicName string `json:"topic_name,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID *int `json:"session_id,omitempty"`
	// EventDate holds the value of the "event_date" field.
	EventDate string `json:"event_date,omitempty"`
	// PreviousMastery holds the value of the "previous_mastery" field.
	PreviousMastery int `json:"previous_mastery,omitempty"`
	// NewMastery holds the value of the "new_mastery" field.
	NewMastery int `json:"new_mastery,omitempty"`
	// PreviousConfidence holds the value of the "previous_confidence" field.
	PreviousConfidence int `json:"previous_confidence,omitempty"`
	// NewConfidence holds the value of the "new_confidence" field.
	NewConfidence int `json:"new_confidence,omitempty"`
	// Growth engine explanation record, persisted verbatim
	Explanation  map[string]interface{} `json:"explanation,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicMasteryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicmasteryevent.FieldExplanation:
			values[i] = new([]byte)
		case topicmasteryevent.FieldID, topicmasteryevent.FieldStudentID, topicmasteryevent.FieldSessionID, topicmasteryevent.FieldPreviousMastery, topicmasteryevent.FieldNewMastery, topicmasteryevent.FieldPreviousConfidence, topicmasteryevent.FieldNewConfidence:
			values[i] = new(sql.NullInt64)
		case topicmasteryevent.FieldTopicName, topicmasteryevent.FieldEventDate:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicMasteryEvent fields.
func (_m *TopicMasteryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicmasteryevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicmasteryevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = int(value.Int64)
			}
		case topicmasteryevent.FieldTopicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_name", values[i])
			} else if value.Valid {
				_m.TopicName = value.String
			}
		case topicmasteryevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(int)
				*_m.SessionID = int(value.Int64)
			}
		case topicmasteryevent.FieldEventDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_date", values[i])
			} else if value.Valid {
				_m.EventDate = value.String
			}
		case topicmasteryevent.FieldPreviousMastery:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_mastery", values[i])
			} else if value.Valid {
				_m.PreviousMastery = int(value.Int64)
			}
		case topicmasteryevent.FieldNewMastery:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_mastery", values[i])
			} else if value.Valid {
				_m.NewMastery = int(value.Int64)
			}
		case topicmasteryevent.FieldPreviousConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_confidence", values[i])
			} else if value.Valid {
				_m.PreviousConfidence = int(value.Int64)
			}
		case topicmasteryevent.FieldNewConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_confidence", values[i])
			} else if value.Valid {
				_m.NewConfidence = int(value.Int64)
			}
		case topicmasteryevent.FieldExplanation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Explanation); err != nil {
					return fmt.Errorf("unmarshal field explanation: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicMasteryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TopicMasteryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TopicMasteryEvent.
// Note that you need to call TopicMasteryEvent.Unwrap() before calling this method if this TopicMasteryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicMasteryEvent) Update() *TopicMasteryEventUpdateOne {
	return NewTopicMasteryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicMasteryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicMasteryEvent) Unwrap() *TopicMasteryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicMasteryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicMasteryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TopicMasteryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("topic_name=")
	builder.WriteString(_m.TopicName)
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("event_date=")
	builder.WriteString(_m.EventDate)
	builder.WriteString(", ")
	builder.WriteString("previous_mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousMastery))
	builder.WriteString(", ")
	builder.WriteString("new_mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewMastery))
	builder.WriteString(", ")
	builder.WriteString("previous_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviousConfidence))
	builder.WriteString(", ")
	builder.WriteString("new_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewConfidence))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Explanation))
	builder.WriteByte(')')
	return builder.String()
}

// TopicMasteryEvents is a parsable slice of TopicMasteryEvent.
type TopicMasteryEvents []*TopicMasteryEvent
