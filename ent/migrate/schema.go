// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString},
		{Name: "measurable_outcome", Type: field.TypeString, Nullable: true},
		{Name: "deadline", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "not started"},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_student_id",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[1]},
			},
		},
	}
	// MentalBlocksColumns holds the columns for the "mental_blocks" table.
	MentalBlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString},
		{Name: "first_detected", Type: field.TypeString},
		{Name: "last_detected", Type: field.TypeString},
		{Name: "frequency_count", Type: field.TypeInt, Default: 1},
		{Name: "severity_score", Type: field.TypeInt, Default: 0},
	}
	// MentalBlocksTable holds the schema information for the "mental_blocks" table.
	MentalBlocksTable = &schema.Table{
		Name:       "mental_blocks",
		Columns:    MentalBlocksColumns,
		PrimaryKey: []*schema.Column{MentalBlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mentalblock_student_id_description",
				Unique:  true,
				Columns: []*schema.Column{MentalBlocksColumns[1], MentalBlocksColumns[2]},
			},
		},
	}
	// MilestonesColumns holds the columns for the "milestones" table.
	MilestonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "goal_description", Type: field.TypeString},
		{Name: "milestone", Type: field.TypeString},
		{Name: "success_criteria", Type: field.TypeString},
	}
	// MilestonesTable holds the schema information for the "milestones" table.
	MilestonesTable = &schema.Table{
		Name:       "milestones",
		Columns:    MilestonesColumns,
		PrimaryKey: []*schema.Column{MilestonesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "milestone_student_id",
				Unique:  false,
				Columns: []*schema.Column{MilestonesColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "transcript_text", Type: field.TypeString, Size: 2147483647},
		{Name: "session_date", Type: field.TypeString},
		{Name: "extracted_summary", Type: field.TypeString, Nullable: true},
		{Name: "detected_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "detected_misconceptions", Type: field.TypeJSON, Nullable: true},
		{Name: "detected_strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "engagement_score", Type: field.TypeInt, Nullable: true},
		{Name: "parent_summary", Type: field.TypeString, Nullable: true},
		{Name: "tutor_insight", Type: field.TypeString, Nullable: true},
		{Name: "recommended_next_targets", Type: field.TypeJSON, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_student_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_session_date",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
		},
	}
	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString, Nullable: true},
		{Name: "curriculum", Type: field.TypeString, Nullable: true},
		{Name: "target_exam", Type: field.TypeString, Nullable: true},
		{Name: "long_term_goal_summary", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudentsTable holds the schema information for the "students" table.
	StudentsTable = &schema.Table{
		Name:       "students",
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "student_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudentsColumns[6]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "topic_name", Type: field.TypeString},
		{Name: "parent_topic", Type: field.TypeString, Nullable: true},
		{Name: "mastery_score", Type: field.TypeInt, Default: 0},
		{Name: "confidence_score", Type: field.TypeInt, Default: 0},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_student_id_topic_name",
				Unique:  true,
				Columns: []*schema.Column{TopicsColumns[1], TopicsColumns[2]},
			},
		},
	}
	// TopicMasteryEventsColumns holds the columns for the "topic_mastery_events" table.
	TopicMasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "topic_name", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeInt, Nullable: true},
		{Name: "event_date", Type: field.TypeString},
		{Name: "previous_mastery", Type: field.TypeInt},
		{Name: "new_mastery", Type: field.TypeInt},
		{Name: "previous_confidence", Type: field.TypeInt},
		{Name: "new_confidence", Type: field.TypeInt},
		{Name: "explanation", Type: field.TypeJSON},
	}
	// TopicMasteryEventsTable holds the schema information for the "topic_mastery_events" table.
	TopicMasteryEventsTable = &schema.Table{
		Name:       "topic_mastery_events",
		Columns:    TopicMasteryEventsColumns,
		PrimaryKey: []*schema.Column{TopicMasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicmasteryevent_student_id_topic_name",
				Unique:  false,
				Columns: []*schema.Column{TopicMasteryEventsColumns[1], TopicMasteryEventsColumns[2]},
			},
			{
				Name:    "topicmasteryevent_event_date",
				Unique:  false,
				Columns: []*schema.Column{TopicMasteryEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GoalsTable,
		MentalBlocksTable,
		MilestonesTable,
		SessionsTable,
		StudentsTable,
		TopicsTable,
		TopicMasteryEventsTable,
	}
)

func init() {
}
