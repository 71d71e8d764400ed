package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session records one processed tutoring session: the raw transcript plus
// everything the extractor derived from it.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.Text("transcript_text"),
		field.String("session_date").
			NotEmpty().
			Comment("Caller-supplied date string; the core never generates timestamps"),
		field.String("extracted_summary").
			Optional(),
		field.JSON("detected_topics", []string{}).
			Optional(),
		field.JSON("detected_misconceptions", []string{}).
			Optional(),
		field.JSON("detected_strengths", []string{}).
			Optional(),
		field.Int("engagement_score").
			Optional().
			Nillable(),
		field.String("parent_summary").
			Optional(),
		field.String("tutor_insight").
			Optional(),
		field.JSON("recommended_next_targets", []string{}).
			Optional(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("session_date"),
	}
}
