package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Milestone is one of the templated milestone stages attached to a goal.
type Milestone struct {
	ent.Schema
}

func (Milestone) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.String("goal_description").
			NotEmpty(),
		field.String("milestone").
			NotEmpty(),
		field.String("success_criteria").
			NotEmpty(),
	}
}

func (Milestone) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
	}
}
