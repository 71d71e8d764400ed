package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal is a long-term goal extracted at trial intake or added later.
type Goal struct {
	ent.Schema
}

func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.String("description").
			NotEmpty(),
		field.String("measurable_outcome").
			Optional(),
		field.String("deadline").
			Optional(),
		field.String("status").
			Default("not started").
			Comment("not started, in progress, or achieved"),
	}
}

func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
	}
}
