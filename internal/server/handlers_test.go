package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/extract"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/growth"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/logger"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/store"
)

// In-memory repo fakes. Each implements just enough of the store
// interfaces for handler behavior to be observable.

type memStore struct {
	students []store.Student
	topics   map[int]map[string]extract.TopicState
	goals    map[int][]extract.Goal
	miles    map[int][]extract.Milestone
	sessions map[int][]store.Session
	events   map[int][]store.TopicEvent
	blocks   map[int]map[string]*store.MentalBlock
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{
		topics:   make(map[int]map[string]extract.TopicState),
		goals:    make(map[int][]extract.Goal),
		miles:    make(map[int][]extract.Milestone),
		sessions: make(map[int][]store.Session),
		events:   make(map[int][]store.TopicEvent),
		blocks:   make(map[int]map[string]*store.MentalBlock),
		nextID:   1,
	}
}

type memStudentRepo struct{ s *memStore }

func (r *memStudentRepo) Create(_ context.Context, data store.StudentData) (int, error) {
	id := r.s.nextID
	r.s.nextID++
	r.s.students = append(r.s.students, store.Student{
		ID: id, Name: data.Name, Grade: data.Grade, Curriculum: data.Curriculum,
		TargetExam: data.TargetExam, LongTermGoalSummary: data.LongTermGoalSummary,
	})
	return id, nil
}

func (r *memStudentRepo) Get(_ context.Context, id int) (*store.Student, error) {
	for i := range r.s.students {
		if r.s.students[i].ID == id {
			out := r.s.students[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memStudentRepo) List(_ context.Context) ([]store.Student, error) {
	out := make([]store.Student, len(r.s.students))
	copy(out, r.s.students)
	return out, nil
}

func (r *memStudentRepo) UpdateGoalSummary(_ context.Context, id int, summary string) error {
	for i := range r.s.students {
		if r.s.students[i].ID == id {
			r.s.students[i].LongTermGoalSummary = summary
		}
	}
	return nil
}

type memTopicRepo struct{ s *memStore }

func (r *memTopicRepo) Upsert(_ context.Context, studentID int, data extract.TopicState) error {
	m := r.s.topics[studentID]
	if m == nil {
		m = make(map[string]extract.TopicState)
		r.s.topics[studentID] = m
	}
	if existing, ok := m[data.TopicName]; ok && data.ParentTopic == "" {
		data.ParentTopic = existing.ParentTopic
	}
	m[data.TopicName] = data
	return nil
}

func (r *memTopicRepo) ListByStudent(_ context.Context, studentID int) ([]extract.TopicState, error) {
	var out []extract.TopicState
	for _, ts := range r.s.topics[studentID] {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ParentTopic != out[j].ParentTopic {
			return out[i].ParentTopic < out[j].ParentTopic
		}
		return out[i].TopicName < out[j].TopicName
	})
	return out, nil
}

type memGoalRepo struct{ s *memStore }

func (r *memGoalRepo) AddGoals(_ context.Context, studentID int, goals []extract.Goal) error {
	r.s.goals[studentID] = append(r.s.goals[studentID], goals...)
	return nil
}

func (r *memGoalRepo) AddMilestones(_ context.Context, studentID int, miles []extract.Milestone) error {
	r.s.miles[studentID] = append(r.s.miles[studentID], miles...)
	return nil
}

func (r *memGoalRepo) ListGoals(_ context.Context, studentID int) ([]extract.Goal, error) {
	return r.s.goals[studentID], nil
}

func (r *memGoalRepo) ListMilestones(_ context.Context, studentID int) ([]extract.Milestone, error) {
	return r.s.miles[studentID], nil
}

type memSessionRepo struct{ s *memStore }

func (r *memSessionRepo) Add(_ context.Context, studentID int, data store.SessionData) (int, error) {
	id := r.s.nextID
	r.s.nextID++
	sess := store.Session{
		ID: id, SessionDate: data.SessionDate, ExtractedSummary: data.ExtractedSummary,
		DetectedTopics: data.DetectedTopics, DetectedMisconceptions: data.DetectedMisconceptions,
		DetectedStrengths: data.DetectedStrengths, EngagementScore: data.EngagementScore,
		ParentSummary: data.ParentSummary, TutorInsight: data.TutorInsight,
		RecommendedNextTargets: data.RecommendedNextTargets,
	}
	// most recent first
	r.s.sessions[studentID] = append([]store.Session{sess}, r.s.sessions[studentID]...)
	return id, nil
}

func (r *memSessionRepo) ListRecent(_ context.Context, studentID int, limit int) ([]store.Session, error) {
	out := r.s.sessions[studentID]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memTopicEventRepo struct{ s *memStore }

func (r *memTopicEventRepo) Record(_ context.Context, studentID int, data store.TopicEventData) error {
	id := r.s.nextID
	r.s.nextID++
	r.s.events[studentID] = append(r.s.events[studentID], store.TopicEvent{
		ID: id, TopicName: data.TopicName, SessionID: data.SessionID, EventDate: data.EventDate,
		PreviousMastery: data.PreviousMastery, NewMastery: data.NewMastery,
		PreviousConfidence: data.PreviousConfidence, NewConfidence: data.NewConfidence,
		Explanation: data.Explanation,
	})
	return nil
}

func (r *memTopicEventRepo) ListByStudent(_ context.Context, studentID int, topicName string) ([]store.TopicEvent, error) {
	var out []store.TopicEvent
	for _, ev := range r.s.events[studentID] {
		if topicName == "" || ev.TopicName == topicName {
			out = append(out, ev)
		}
	}
	return out, nil
}

type memMentalBlockRepo struct{ s *memStore }

func (r *memMentalBlockRepo) Upsert(_ context.Context, studentID int, cand extract.MentalBlockCandidate, detectedAt string) (*store.MentalBlock, error) {
	m := r.s.blocks[studentID]
	if m == nil {
		m = make(map[string]*store.MentalBlock)
		r.s.blocks[studentID] = m
	}
	mb, ok := m[cand.Description]
	if !ok {
		mb = &store.MentalBlock{
			ID: r.s.nextID, Description: cand.Description,
			FirstDetected: detectedAt, LastDetected: detectedAt,
			FrequencyCount: 1, SeverityScore: cand.InitialSeverity,
		}
		r.s.nextID++
		m[cand.Description] = mb
	} else {
		mb.FrequencyCount++
		mb.LastDetected = detectedAt
		mb.SeverityScore += cand.RepeatSeverityDelta
		if mb.SeverityScore > 100 {
			mb.SeverityScore = 100
		}
	}
	out := *mb
	return &out, nil
}

func (r *memMentalBlockRepo) ListByStudent(_ context.Context, studentID int) ([]store.MentalBlock, error) {
	var out []store.MentalBlock
	for _, mb := range r.s.blocks[studentID] {
		out = append(out, *mb)
	}
	return out, nil
}

func newTestServer(t *testing.T) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	extractor, err := extract.New(nil, growth.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	ms := newMemStore()
	h := NewHandlers(
		logger.Nop(),
		extractor,
		&memStudentRepo{ms},
		&memTopicRepo{ms},
		&memGoalRepo{ms},
		&memSessionRepo{ms},
		&memTopicEventRepo{ms},
		&memMentalBlockRepo{ms},
	)
	return New(h, "", logger.Nop()).Engine(), ms
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("%s %s: bad response JSON: %v\n%s", method, path, err, w.Body.String())
		}
	}
	return w, parsed
}

func TestHealth(t *testing.T) {
	engine, _ := newTestServer(t)
	w, body := doJSON(t, engine, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["ok"] != true {
		t.Errorf("body = %v", body)
	}
}

func TestConfigEndpoint(t *testing.T) {
	engine, _ := newTestServer(t)
	w, body := doJSON(t, engine, http.MethodGet, "/api/config", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if _, ok := body["growth_config"]; !ok {
		t.Errorf("missing growth_config: %v", body)
	}
	if _, ok := body["mastery_update_formula"]; !ok {
		t.Errorf("missing mastery_update_formula: %v", body)
	}
}

func TestCreateStudent_Validation(t *testing.T) {
	engine, _ := newTestServer(t)

	w, body := doJSON(t, engine, http.MethodPost, "/api/students", "{not json")
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_json" {
		t.Errorf("status=%d body=%v", w.Code, body)
	}

	w, body = doJSON(t, engine, http.MethodPost, "/api/students", `{"name": "  "}`)
	if w.Code != http.StatusBadRequest || body["error"] != "missing_name" {
		t.Errorf("status=%d body=%v", w.Code, body)
	}
}

func TestCreateStudent_AndList(t *testing.T) {
	engine, ms := newTestServer(t)

	w, body := doJSON(t, engine, http.MethodPost, "/api/students", `{"name": "Sam", "grade": "7"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", w.Code, body)
	}
	if body["student_id"] == nil {
		t.Fatalf("no student_id in %v", body)
	}
	if len(ms.students) != 1 || ms.students[0].Name != "Sam" {
		t.Errorf("stored students = %v", ms.students)
	}

	w, body = doJSON(t, engine, http.MethodGet, "/api/students", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	students, ok := body["students"].([]any)
	if !ok || len(students) != 1 {
		t.Errorf("students = %v", body["students"])
	}
}

func TestDashboard_NotFound(t *testing.T) {
	engine, _ := newTestServer(t)
	w, body := doJSON(t, engine, http.MethodGet, "/api/students/99/dashboard", "")
	if w.Code != http.StatusNotFound || body["error"] != "student_not_found" {
		t.Errorf("status=%d body=%v", w.Code, body)
	}

	w, body = doJSON(t, engine, http.MethodGet, "/api/students/abc/dashboard", "")
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_student_id" {
		t.Errorf("status=%d body=%v", w.Code, body)
	}
}

func TestTrial_Validation(t *testing.T) {
	engine, _ := newTestServer(t)
	tests := []struct {
		body    string
		wantErr string
	}{
		{`{"student": {"name": "Sam"}, "session_date": "2026-01-10"}`, "missing_transcript_text"},
		{`{"student": {"name": "Sam"}, "transcript_text": "Tutor: hi"}`, "missing_session_date"},
		{`{"transcript_text": "Tutor: hi", "session_date": "2026-01-10"}`, "missing_student_name"},
	}
	for _, tt := range tests {
		w, body := doJSON(t, engine, http.MethodPost, "/api/trial", tt.body)
		if w.Code != http.StatusBadRequest || body["error"] != tt.wantErr {
			t.Errorf("body %s: status=%d resp=%v, want %s", tt.body, w.Code, body, tt.wantErr)
		}
	}
}

func TestTrial_PersistsIntake(t *testing.T) {
	engine, ms := newTestServer(t)
	req := `{
		"student": {"name": "Sam", "target_exam": "SAT"},
		"transcript_text": "Parent: We want to raise his SAT score.\nStudent: Quadratic problems are hard for me.",
		"session_date": "2026-01-10"
	}`

	w, body := doJSON(t, engine, http.MethodPost, "/api/trial", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", w.Code, body)
	}
	if body["trial_extraction"] == nil {
		t.Fatal("no trial_extraction in response")
	}

	if len(ms.students) != 1 {
		t.Fatalf("students = %v", ms.students)
	}
	sid := ms.students[0].ID
	if ms.students[0].LongTermGoalSummary == "" {
		t.Error("goal summary not stored")
	}
	if len(ms.goals[sid]) == 0 {
		t.Error("no goals stored")
	}
	if len(ms.miles[sid]) != len(ms.goals[sid])*3 {
		t.Errorf("milestones = %d, want %d", len(ms.miles[sid]), len(ms.goals[sid])*3)
	}
	if len(ms.topics[sid]) == 0 {
		t.Error("no topics seeded")
	}
	if len(ms.sessions[sid]) != 1 {
		t.Errorf("trial session rows = %d, want 1", len(ms.sessions[sid]))
	}
}

func TestSession_Validation(t *testing.T) {
	engine, _ := newTestServer(t)

	w, body := doJSON(t, engine, http.MethodPost, "/api/session",
		`{"transcript_text": "Tutor: hi", "session_date": "2026-02-01"}`)
	if w.Code != http.StatusBadRequest || body["error"] != "missing_student_id" {
		t.Errorf("status=%d body=%v", w.Code, body)
	}

	w, body = doJSON(t, engine, http.MethodPost, "/api/session",
		`{"student_id": 42, "transcript_text": "Tutor: hi", "session_date": "2026-02-01"}`)
	if w.Code != http.StatusNotFound || body["error"] != "student_not_found" {
		t.Errorf("status=%d body=%v", w.Code, body)
	}
}

func TestSession_PersistsExtraction(t *testing.T) {
	engine, ms := newTestServer(t)

	_, created := doJSON(t, engine, http.MethodPost, "/api/students", `{"name": "Sam"}`)
	sid := int(created["student_id"].(float64))

	req := `{
		"student_id": 1,
		"transcript_text": "Student: The fraction answer is 3/4.",
		"session_date": "2026-02-01"
	}`
	w, body := doJSON(t, engine, http.MethodPost, "/api/session", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", w.Code, body)
	}

	if len(ms.sessions[sid]) != 1 {
		t.Fatalf("session rows = %d, want 1", len(ms.sessions[sid]))
	}
	if _, ok := ms.topics[sid]["Fractions"]; !ok {
		t.Errorf("Fractions not upserted: %v", ms.topics[sid])
	}
	if len(ms.events[sid]) == 0 {
		t.Error("no topic events recorded")
	}
	if ms.events[sid][0].Explanation == nil {
		t.Error("event explanation missing")
	}
	// blank summary gets the placeholder after the first session
	if ms.students[0].LongTermGoalSummary != "Ongoing goals tracked via dashboard." {
		t.Errorf("goal summary = %q", ms.students[0].LongTermGoalSummary)
	}

	extraction, ok := body["session_extraction"].(map[string]any)
	if !ok {
		t.Fatalf("no session_extraction in %v", body)
	}
	if extraction["engagement_score"] == nil {
		t.Error("engagement_score missing from response")
	}
}

func TestSession_EventsInTopicOrder(t *testing.T) {
	engine, ms := newTestServer(t)

	_, created := doJSON(t, engine, http.MethodPost, "/api/students", `{"name": "Sam"}`)
	sid := int(created["student_id"].(float64))

	req := `{
		"student_id": 1,
		"transcript_text": "Student: The fraction 1/2 is the decimal 0.5, which is 50%.",
		"session_date": "2026-02-01"
	}`
	w, body := doJSON(t, engine, http.MethodPost, "/api/session", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", w.Code, body)
	}

	var got []string
	for _, ev := range ms.events[sid] {
		got = append(got, ev.TopicName)
	}
	want := []string{"Decimals", "Fractions", "Percents"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("event topics = %v, want %v", got, want)
	}
}

func TestSession_MentalBlockApplied(t *testing.T) {
	engine, ms := newTestServer(t)

	_, created := doJSON(t, engine, http.MethodPost, "/api/students", `{"name": "Sam"}`)
	sid := int(created["student_id"].(float64))

	transcript := "Student: I hate these. Should I cross-multiply here"
	w, body := doJSON(t, engine, http.MethodPost, "/api/session",
		`{"student_id": 1, "transcript_text": "`+transcript+`", "session_date": "2026-02-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", w.Code, body)
	}

	if len(ms.blocks[sid]) != 1 {
		t.Fatalf("stored blocks = %v", ms.blocks[sid])
	}
	extraction := body["session_extraction"].(map[string]any)
	applied, ok := extraction["mental_blocks_applied"].([]any)
	if !ok || len(applied) != 1 {
		t.Errorf("mental_blocks_applied = %v", extraction["mental_blocks_applied"])
	}
}

func TestAPI_UnknownRouteWithoutStatic(t *testing.T) {
	engine, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
