// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent/mentalblock"
)

// MentalBlock is the model entity for the MentalBlock schema.
type MentalBlock struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID int `json:"student_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// FirstDetected holds the value of the "first_detected" field.
	FirstDetected string `json:"first_detected,omitempty"`
	// LastDetected holds the value of the "last_detected" field.
	LastDetected string `json:"last_detected,omitempty"`
	// FrequencyCount holds the value of the "frequency_count" field.
	FrequencyCount int `json:"frequency_count,omitempty"`
	// SeverityScore holds the value of the "severity_score" field.
	SeverityScore int `json:"severity_score,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MentalBlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mentalblock.FieldID, mentalblock.FieldStudentID, mentalblock.FieldFrequencyCount, mentalblock.FieldSeverityScore:
			values[i] = new(sql.NullInt64)
		case mentalblock.FieldDescription, mentalblock.FieldFirstDetected, mentalblock.FieldLastDetected:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MentalBlock fields.
func (_m *MentalBlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mentalblock.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mentalblock.FieldStudentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = int(value.Int64)
			}
		case mentalblock.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case mentalblock.FieldFirstDetected:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_detected", values[i])
			} else if value.Valid {
				_m.FirstDetected = value.String
			}
		case mentalblock.FieldLastDetected:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_detected", values[i])
			} else if value.Valid {
				_m.LastDetected = value.String
			}
		case mentalblock.FieldFrequencyCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field frequency_count", values[i])
			} else if value.Valid {
				_m.FrequencyCount = int(value.Int64)
			}
		case mentalblock.FieldSeverityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field severity_score", values[i])
			} else if value.Valid {
				_m.SeverityScore = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MentalBlock.
// This includes values selected through modifiers, order, etc.
func (_m *MentalBlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MentalBlock.
// Note that you need to call MentalBlock.Unwrap() before calling this method if this MentalBlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MentalBlock) Update() *MentalBlockUpdateOne {
	return NewMentalBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MentalBlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MentalBlock) Unwrap() *MentalBlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MentalBlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MentalBlock) String() string {
	var builder strings.Builder
	builder.WriteString("MentalBlock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("first_detected=")
	builder.WriteString(_m.FirstDetected)
	builder.WriteString(", ")
	builder.WriteString("last_detected=")
	builder.WriteString(_m.LastDetected)
	builder.WriteString(", ")
	builder.WriteString("frequency_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrequencyCount))
	builder.WriteString(", ")
	builder.WriteString("severity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeverityScore))
	builder.WriteByte(')')
	return builder.String()
}

// MentalBlocks is a parsable slice of MentalBlock.
type MentalBlocks []*MentalBlock
