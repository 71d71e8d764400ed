package store

import (
	"context"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/extract"
)

// Student is a stored student row.
type Student struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Grade               string `json:"grade,omitempty"`
	Curriculum          string `json:"curriculum,omitempty"`
	TargetExam          string `json:"target_exam,omitempty"`
	LongTermGoalSummary string `json:"long_term_goal_summary,omitempty"`
}

// StudentData is the input for creating a student.
type StudentData struct {
	Name                string
	Grade               string
	Curriculum          string
	TargetExam          string
	LongTermGoalSummary string
}

// StudentRepo manages student rows.
type StudentRepo interface {
	Create(ctx context.Context, data StudentData) (int, error)
	Get(ctx context.Context, id int) (*Student, error)
	// List returns all students, most recently created first.
	List(ctx context.Context) ([]Student, error)
	UpdateGoalSummary(ctx context.Context, id int, summary string) error
}

// TopicRepo manages per-student topic mastery rows.
type TopicRepo interface {
	// Upsert creates or updates the (student, topic) row. An empty parent
	// keeps the stored parent on update.
	Upsert(ctx context.Context, studentID int, data extract.TopicState) error
	// ListByStudent returns topics ordered by parent topic then name.
	ListByStudent(ctx context.Context, studentID int) ([]extract.TopicState, error)
}

// GoalRepo manages goals and their templated milestones.
type GoalRepo interface {
	AddGoals(ctx context.Context, studentID int, goals []extract.Goal) error
	AddMilestones(ctx context.Context, studentID int, milestones []extract.Milestone) error
	// ListGoals orders active goals before achieved ones, then by deadline,
	// then by insertion order.
	ListGoals(ctx context.Context, studentID int) ([]extract.Goal, error)
	ListMilestones(ctx context.Context, studentID int) ([]extract.Milestone, error)
}

// SessionData is the input for recording a processed session.
type SessionData struct {
	TranscriptText         string
	SessionDate            string
	ExtractedSummary       string
	DetectedTopics         []string
	DetectedMisconceptions []string
	DetectedStrengths      []string
	EngagementScore        *int
	ParentSummary          string
	TutorInsight           string
	RecommendedNextTargets []string
}

// Session is a stored session row, without the raw transcript.
type Session struct {
	ID                     int      `json:"id"`
	SessionDate            string   `json:"session_date"`
	ExtractedSummary       string   `json:"extracted_summary,omitempty"`
	DetectedTopics         []string `json:"detected_topics"`
	DetectedMisconceptions []string `json:"detected_misconceptions"`
	DetectedStrengths      []string `json:"detected_strengths"`
	EngagementScore        *int     `json:"engagement_score"`
	ParentSummary          string   `json:"parent_summary,omitempty"`
	TutorInsight           string   `json:"tutor_insight,omitempty"`
	RecommendedNextTargets []string `json:"recommended_next_targets"`
}

// SessionRepo manages session rows.
type SessionRepo interface {
	Add(ctx context.Context, studentID int, data SessionData) (int, error)
	// ListRecent returns up to limit sessions, most recent first.
	ListRecent(ctx context.Context, studentID int, limit int) ([]Session, error)
}

// TopicEventData is the input for one mastery-transition audit record.
type TopicEventData struct {
	TopicName          string
	SessionID          *int
	EventDate          string
	PreviousMastery    int
	NewMastery         int
	PreviousConfidence int
	NewConfidence      int
	Explanation        map[string]any
}

// TopicEvent is a stored mastery-transition audit record.
type TopicEvent struct {
	ID                 int            `json:"id"`
	TopicName          string         `json:"topic_name"`
	SessionID          *int           `json:"session_id"`
	EventDate          string         `json:"event_date"`
	PreviousMastery    int            `json:"previous_mastery"`
	NewMastery         int            `json:"new_mastery"`
	PreviousConfidence int            `json:"previous_confidence"`
	NewConfidence      int            `json:"new_confidence"`
	Explanation        map[string]any `json:"explanation"`
}

// TopicEventRepo manages the mastery audit trail.
type TopicEventRepo interface {
	Record(ctx context.Context, studentID int, data TopicEventData) error
	// ListByStudent returns events in event-date order, oldest first.
	// topicName filters to one topic when non-empty.
	ListByStudent(ctx context.Context, studentID int, topicName string) ([]TopicEvent, error)
}

// MentalBlock is a stored mental-block row.
type MentalBlock struct {
	ID             int    `json:"id"`
	Description    string `json:"description"`
	FirstDetected  string `json:"first_detected"`
	LastDetected   string `json:"last_detected"`
	FrequencyCount int    `json:"frequency_count"`
	SeverityScore  int    `json:"severity_score"`
}

// MentalBlockRepo manages mental-block escalation state.
type MentalBlockRepo interface {
	// Upsert merges a candidate into the stored block for (student,
	// description): a new row starts at the candidate's initial severity
	// and frequency 1; an existing row bumps frequency and adds the repeat
	// severity delta, clamped to [0,100].
	Upsert(ctx context.Context, studentID int, cand extract.MentalBlockCandidate, detectedAt string) (*MentalBlock, error)
	// ListByStudent orders by severity, then frequency, then recency,
	// all descending.
	ListByStudent(ctx context.Context, studentID int) ([]MentalBlock, error)
}
