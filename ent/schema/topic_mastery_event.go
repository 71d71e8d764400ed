package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicMasteryEvent is the audit trail for one growth-engine transition.
// The explanation payload is stored exactly as the engine produced it.
type TopicMasteryEvent struct {
	ent.Schema
}

func (TopicMasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.String("topic_name").
			NotEmpty(),
		field.Int("session_id").
			Optional().
			Nillable(),
		field.String("event_date").
			NotEmpty(),
		field.Int("previous_mastery"),
		field.Int("new_mastery"),
		field.Int("previous_confidence"),
		field.Int("new_confidence"),
		field.JSON("explanation", map[string]any{}).
			Comment("Growth engine explanation record, persisted verbatim"),
	}
}

func (TopicMasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "topic_name"),
		index.Fields("event_date"),
	}
}
