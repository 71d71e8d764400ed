// Package extract orchestrates transcript extraction: the one-shot trial
// intake and the per-session pipeline that feeds detected signals through
// the growth engine. Extractors are stateless across calls; all history
// arrives as read-only input and results are handed back for the caller
// to persist.
package extract

import (
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/detect"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/growth"
)

// TrialRequest is the input for one-shot trial intake. Optional metadata
// fields use "" for absent.
type TrialRequest struct {
	TranscriptText string
	StudentName    string
	Grade          string
	Curriculum     string
	TargetExam     string
	SessionDate    string
}

// Goal is a templated goal record derived from goal or struggle language.
type Goal struct {
	Description       string `json:"description"`
	MeasurableOutcome string `json:"measurable_outcome"`
	Deadline          string `json:"deadline,omitempty"`
	Status            string `json:"status"`
}

// TopicState is a per-topic mastery/confidence pair. As input it is the
// caller's stored snapshot; as output it is a seed for a new topic.
type TopicState struct {
	TopicName       string `json:"topic_name"`
	ParentTopic     string `json:"parent_topic"`
	MasteryScore    int    `json:"mastery_score"`
	ConfidenceScore int    `json:"confidence_score"`
}

// Milestone is one of the three fixed stages emitted per goal.
type Milestone struct {
	GoalDescription string `json:"goal_description"`
	Milestone       string `json:"milestone"`
	SuccessCriteria string `json:"success_criteria"`
}

// RoadmapTopic is one topic slot in the inferred curriculum roadmap.
type RoadmapTopic struct {
	ParentTopic string `json:"parent_topic"`
	TopicName   string `json:"topic_name"`
}

// Roadmap is the inferred curriculum focus derived from student metadata
// and the trial transcript.
type Roadmap struct {
	Grade        string         `json:"grade,omitempty"`
	Curriculum   string         `json:"curriculum,omitempty"`
	TargetExam   string         `json:"target_exam,omitempty"`
	FocusDomains []string       `json:"focus_domains"`
	Topics       []RoadmapTopic `json:"topics"`
}

// TrialDebug carries the trial extraction's working data for inspection.
type TrialDebug struct {
	TopicScores   []*detect.TopicScore `json:"topic_scores"`
	GoalLines     []string             `json:"goal_lines"`
	StruggleLines []string             `json:"struggle_lines"`
}

// TrialResult is the full trial intake output bundle.
type TrialResult struct {
	LongTermGoalSummary       string       `json:"long_term_goal_summary"`
	Goals                     []Goal       `json:"goals"`
	Topics                    []TopicState `json:"topics"`
	Milestones                []Milestone  `json:"milestones"`
	InferredCurriculumRoadmap Roadmap      `json:"inferred_curriculum_roadmap"`
	Debug                     TrialDebug   `json:"debug"`
}

// SessionRecord is the read-only view of a prior session the extractor
// needs for repeat detection.
type SessionRecord struct {
	DetectedMisconceptions []string
}

// SessionRequest is the input for per-session extraction. RecentSessions
// is ordered most-recent-first.
type SessionRequest struct {
	TranscriptText string
	SessionDate    string
	KnownTopics    []TopicState
	RecentSessions []SessionRecord
}

// TopicUpdate is one topic's transition, with the growth engine's full
// explanation attached for the audit trail.
type TopicUpdate struct {
	PreviousMastery    int                `json:"previous_mastery"`
	NewMastery         int                `json:"new_mastery"`
	PreviousConfidence int                `json:"previous_confidence"`
	NewConfidence      int                `json:"new_confidence"`
	Explanation        growth.Explanation `json:"explanation"`
}

// MentalBlockCandidate proposes a recurring misconception for escalation.
// Stateful severity/frequency tracking happens in storage, not here.
type MentalBlockCandidate struct {
	Description         string `json:"description"`
	SessionCount        int    `json:"session_count"`
	AvoidanceSignals    int    `json:"avoidance_signals"`
	InitialSeverity     int    `json:"initial_severity"`
	RepeatSeverityDelta int    `json:"repeat_severity_delta"`
}

// SessionDebug carries the session extraction's working data.
type SessionDebug struct {
	TurnCount   int                  `json:"turn_count"`
	TopicScores []*detect.TopicScore `json:"topic_scores"`
	Config      growth.Config        `json:"config"`
}

// SessionResult is the full per-session output bundle.
type SessionResult struct {
	ExtractedSummary       string                     `json:"extracted_summary"`
	DetectedTopics         []string                   `json:"detected_topics"`
	DetectedMisconceptions []string                   `json:"detected_misconceptions"`
	DetectedStrengths      []string                   `json:"detected_strengths"`
	EngagementScore        int                        `json:"engagement_score"`
	ParentSummary          string                     `json:"parent_summary"`
	TutorInsight           string                     `json:"tutor_insight"`
	RecommendedNextTargets []string                   `json:"recommended_next_targets"`
	PerTopicSignals        map[string]*detect.Signals `json:"per_topic_signals"`
	PerTopicUpdates        map[string]TopicUpdate     `json:"per_topic_updates"`
	MentalBlockCandidates  []MentalBlockCandidate     `json:"mental_block_candidates"`
	Debug                  SessionDebug               `json:"debug"`
}
