package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is a student's per-topic mastery/confidence state, unique per
// (student, topic name). Scores stay in [0,100]; the extractor clamps
// every transition before it reaches storage.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.String("topic_name").
			NotEmpty(),
		field.String("parent_topic").
			Optional(),
		field.Int("mastery_score").
			Default(0).
			Min(0).
			Max(100),
		field.Int("confidence_score").
			Default(0).
			Min(0).
			Max(100),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "topic_name").
			Unique(),
	}
}
