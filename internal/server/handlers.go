package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/extract"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/logger"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/store"
)

// recentSessionLimit is how much history feeds one session extraction.
// The extractor applies its own narrower windows on top.
const recentSessionLimit = 25

// Handlers holds the API's dependencies.
type Handlers struct {
	log       *logger.Logger
	extractor *extract.Extractor
	students  store.StudentRepo
	topics    store.TopicRepo
	goals     store.GoalRepo
	sessions  store.SessionRepo
	events    store.TopicEventRepo
	blocks    store.MentalBlockRepo
}

// NewHandlers wires the API handlers.
func NewHandlers(
	log *logger.Logger,
	extractor *extract.Extractor,
	students store.StudentRepo,
	topics store.TopicRepo,
	goals store.GoalRepo,
	sessions store.SessionRepo,
	events store.TopicEventRepo,
	blocks store.MentalBlockRepo,
) *Handlers {
	return &Handlers{
		log:       log,
		extractor: extractor,
		students:  students,
		topics:    topics,
		goals:     goals,
		sessions:  sessions,
		events:    events,
		blocks:    blocks,
	}
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handlers) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mastery_update_formula": "new_mastery = clamp(prev_mastery + round(delta), 0, 100)",
		"delta":                  "delta = improvement_factor + independent_bonus - error_penalty - repeated_error_penalty (bounded per session)",
		"growth_config":          h.extractor.Config(),
	})
}

func (h *Handlers) ListStudents(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "list students", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

type createStudentRequest struct {
	Name       string `json:"name"`
	Grade      string `json:"grade"`
	Curriculum string `json:"curriculum"`
	TargetExam string `json:"target_exam"`
}

func (h *Handlers) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_json"})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_name"})
		return
	}

	id, err := h.students.Create(c.Request.Context(), store.StudentData{
		Name:       name,
		Grade:      strings.TrimSpace(req.Grade),
		Curriculum: strings.TrimSpace(req.Curriculum),
		TargetExam: strings.TrimSpace(req.TargetExam),
	})
	if err != nil {
		h.serverError(c, "create student", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"student_id": id})
}

func (h *Handlers) Dashboard(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_student_id"})
		return
	}
	ctx := c.Request.Context()

	student, err := h.students.Get(ctx, id)
	if err != nil {
		h.serverError(c, "get student", err)
		return
	}
	if student == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student_not_found"})
		return
	}

	goals, err := h.goals.ListGoals(ctx, id)
	if err != nil {
		h.serverError(c, "list goals", err)
		return
	}
	milestones, err := h.goals.ListMilestones(ctx, id)
	if err != nil {
		h.serverError(c, "list milestones", err)
		return
	}
	topics, err := h.topics.ListByStudent(ctx, id)
	if err != nil {
		h.serverError(c, "list topics", err)
		return
	}
	sessions, err := h.sessions.ListRecent(ctx, id, 50)
	if err != nil {
		h.serverError(c, "list sessions", err)
		return
	}
	blocks, err := h.blocks.ListByStudent(ctx, id)
	if err != nil {
		h.serverError(c, "list mental blocks", err)
		return
	}
	events, err := h.events.ListByStudent(ctx, id, c.Query("topic"))
	if err != nil {
		h.serverError(c, "list topic events", err)
		return
	}

	view := c.DefaultQuery("view", "tutor")
	c.JSON(http.StatusOK, gin.H{
		"student":       student,
		"view":          view,
		"goals":         goals,
		"milestones":    milestones,
		"topics":        topics,
		"sessions":      sessions,
		"mental_blocks": blocks,
		"topic_events":  events,
	})
}

type trialRequest struct {
	Student        createStudentRequest `json:"student"`
	TranscriptText string               `json:"transcript_text"`
	SessionDate    string               `json:"session_date"`
}

func (h *Handlers) Trial(c *gin.Context) {
	var req trialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_json"})
		return
	}
	transcript := strings.TrimSpace(req.TranscriptText)
	if transcript == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_transcript_text"})
		return
	}
	sessionDate := strings.TrimSpace(req.SessionDate)
	if sessionDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_session_date"})
		return
	}
	name := strings.TrimSpace(req.Student.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_student_name"})
		return
	}
	ctx := c.Request.Context()

	result := h.extractor.ExtractTrial(extract.TrialRequest{
		TranscriptText: transcript,
		StudentName:    name,
		Grade:          strings.TrimSpace(req.Student.Grade),
		Curriculum:     strings.TrimSpace(req.Student.Curriculum),
		TargetExam:     strings.TrimSpace(req.Student.TargetExam),
		SessionDate:    sessionDate,
	})

	studentID, err := h.students.Create(ctx, store.StudentData{
		Name:                name,
		Grade:               strings.TrimSpace(req.Student.Grade),
		Curriculum:          strings.TrimSpace(req.Student.Curriculum),
		TargetExam:          strings.TrimSpace(req.Student.TargetExam),
		LongTermGoalSummary: result.LongTermGoalSummary,
	})
	if err != nil {
		h.serverError(c, "create student", err)
		return
	}

	if err := h.goals.AddGoals(ctx, studentID, result.Goals); err != nil {
		h.serverError(c, "add goals", err)
		return
	}
	if err := h.goals.AddMilestones(ctx, studentID, result.Milestones); err != nil {
		h.serverError(c, "add milestones", err)
		return
	}
	for _, t := range result.Topics {
		if err := h.topics.Upsert(ctx, studentID, t); err != nil {
			h.serverError(c, "upsert topic", err)
			return
		}
	}

	// Record the trial itself as a session for the timeline.
	if _, err := h.sessions.Add(ctx, studentID, store.SessionData{
		TranscriptText:         transcript,
		SessionDate:            sessionDate,
		ExtractedSummary:       "Trial intake: goals + roadmap captured.",
		DetectedTopics:         topicNames(result.Topics, 8),
		DetectedMisconceptions: []string{},
		DetectedStrengths:      []string{},
		ParentSummary:          "Trial session completed. Goals and roadmap are set.",
		TutorInsight:           "Trial transcript processed into goals + topic map.",
		RecommendedNextTargets: topicNames(result.Topics, 3),
	}); err != nil {
		h.serverError(c, "add trial session", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"student_id":       studentID,
		"trial_extraction": result,
	})
}

type sessionRequest struct {
	StudentID      int    `json:"student_id"`
	TranscriptText string `json:"transcript_text"`
	SessionDate    string `json:"session_date"`
}

func (h *Handlers) Session(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_json"})
		return
	}
	if req.StudentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_student_id"})
		return
	}
	transcript := strings.TrimSpace(req.TranscriptText)
	if transcript == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_transcript_text"})
		return
	}
	sessionDate := strings.TrimSpace(req.SessionDate)
	if sessionDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_session_date"})
		return
	}
	ctx := c.Request.Context()

	student, err := h.students.Get(ctx, req.StudentID)
	if err != nil {
		h.serverError(c, "get student", err)
		return
	}
	if student == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student_not_found"})
		return
	}

	knownTopics, err := h.topics.ListByStudent(ctx, req.StudentID)
	if err != nil {
		h.serverError(c, "list topics", err)
		return
	}
	recent, err := h.sessions.ListRecent(ctx, req.StudentID, recentSessionLimit)
	if err != nil {
		h.serverError(c, "list sessions", err)
		return
	}
	history := make([]extract.SessionRecord, len(recent))
	for i, s := range recent {
		history[i] = extract.SessionRecord{DetectedMisconceptions: s.DetectedMisconceptions}
	}

	result := h.extractor.ExtractSession(extract.SessionRequest{
		TranscriptText: transcript,
		SessionDate:    sessionDate,
		KnownTopics:    knownTopics,
		RecentSessions: history,
	})

	sessionID, err := h.sessions.Add(ctx, req.StudentID, store.SessionData{
		TranscriptText:         transcript,
		SessionDate:            sessionDate,
		ExtractedSummary:       result.ExtractedSummary,
		DetectedTopics:         result.DetectedTopics,
		DetectedMisconceptions: result.DetectedMisconceptions,
		DetectedStrengths:      result.DetectedStrengths,
		EngagementScore:        &result.EngagementScore,
		ParentSummary:          result.ParentSummary,
		TutorInsight:           result.TutorInsight,
		RecommendedNextTargets: result.RecommendedNextTargets,
	})
	if err != nil {
		h.serverError(c, "add session", err)
		return
	}

	knownByName := make(map[string]extract.TopicState, len(knownTopics))
	for _, kt := range knownTopics {
		knownByName[kt.TopicName] = kt
	}
	// Persist in topic-name order so event rows come out deterministic.
	updated := make([]string, 0, len(result.PerTopicUpdates))
	for topicName := range result.PerTopicUpdates {
		updated = append(updated, topicName)
	}
	sort.Strings(updated)
	for _, topicName := range updated {
		upd := result.PerTopicUpdates[topicName]
		parent := knownByName[topicName].ParentTopic
		if parent == "" {
			parent = string(h.extractor.Taxonomy().ParentOf(topicName))
		}
		if err := h.topics.Upsert(ctx, req.StudentID, extract.TopicState{
			TopicName:       topicName,
			ParentTopic:     parent,
			MasteryScore:    upd.NewMastery,
			ConfidenceScore: upd.NewConfidence,
		}); err != nil {
			h.serverError(c, "upsert topic", err)
			return
		}

		explanation, err := toMap(upd.Explanation)
		if err != nil {
			h.serverError(c, "encode explanation", err)
			return
		}
		if err := h.events.Record(ctx, req.StudentID, store.TopicEventData{
			TopicName:          topicName,
			SessionID:          &sessionID,
			EventDate:          sessionDate,
			PreviousMastery:    upd.PreviousMastery,
			NewMastery:         upd.NewMastery,
			PreviousConfidence: upd.PreviousConfidence,
			NewConfidence:      upd.NewConfidence,
			Explanation:        explanation,
		}); err != nil {
			h.serverError(c, "record topic event", err)
			return
		}
	}

	applied := make([]store.MentalBlock, 0, len(result.MentalBlockCandidates))
	for _, cand := range result.MentalBlockCandidates {
		mb, err := h.blocks.Upsert(ctx, req.StudentID, cand, sessionDate)
		if err != nil {
			h.serverError(c, "upsert mental block", err)
			return
		}
		applied = append(applied, *mb)
	}

	if strings.TrimSpace(student.LongTermGoalSummary) == "" {
		if err := h.students.UpdateGoalSummary(ctx, req.StudentID, "Ongoing goals tracked via dashboard."); err != nil {
			h.serverError(c, "update goal summary", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"student_id": req.StudentID,
		"session_id": sessionID,
		"session_extraction": gin.H{
			"extracted_summary":        result.ExtractedSummary,
			"detected_topics":          result.DetectedTopics,
			"detected_misconceptions":  result.DetectedMisconceptions,
			"detected_strengths":       result.DetectedStrengths,
			"engagement_score":         result.EngagementScore,
			"parent_summary":           result.ParentSummary,
			"tutor_insight":            result.TutorInsight,
			"recommended_next_targets": result.RecommendedNextTargets,
			"per_topic_signals":        result.PerTopicSignals,
			"per_topic_updates":        result.PerTopicUpdates,
			"mental_blocks_applied":    applied,
			"debug":                    result.Debug,
		},
	})
}

func (h *Handlers) serverError(c *gin.Context, op string, err error) {
	h.log.Error(op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}

// toMap converts a typed record into the map form ent stores as JSON.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return m, nil
}

func topicNames(topics []extract.TopicState, limit int) []string {
	out := make([]string, 0, limit)
	for _, t := range topics {
		out = append(out, t.TopicName)
		if len(out) == limit {
			break
		}
	}
	return out
}
