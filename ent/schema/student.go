package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Student is one tutored student. All other rows reference a student by id.
type Student struct {
	ent.Schema
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("grade").
			Optional(),
		field.String("curriculum").
			Optional(),
		field.String("target_exam").
			Optional(),
		field.String("long_term_goal_summary").
			Optional().
			Comment("Summary produced at trial intake"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Student) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
