package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MentalBlock tracks a recurring misconception flagged for escalation.
// Rows merge on (student, description): repeats bump frequency and severity.
type MentalBlock struct {
	ent.Schema
}

func (MentalBlock) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.String("description").
			NotEmpty(),
		field.String("first_detected").
			NotEmpty(),
		field.String("last_detected").
			NotEmpty(),
		field.Int("frequency_count").
			Default(1).
			Min(1),
		field.Int("severity_score").
			Default(0).
			Min(0).
			Max(100),
	}
}

func (MentalBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "description").
			Unique(),
	}
}
