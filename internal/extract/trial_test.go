package extract

import (
	"strings"
	"testing"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/growth"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := New(nil, growth.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestExtractTrial_GoalsFromCueLines(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractTrial(TrialRequest{
		TranscriptText: "Parent: We want to raise his math grade.\nStudent: Fractions are hard for me.",
		StudentName:    "Sam",
		SessionDate:    "2026-01-10",
	})

	if len(result.Goals) != 2 {
		t.Fatalf("got %d goals, want 2: %v", len(result.Goals), result.Goals)
	}
	if !strings.Contains(result.Goals[0].Description, "want to raise") {
		t.Errorf("goal 0 = %q", result.Goals[0].Description)
	}
	if !strings.HasPrefix(result.Goals[1].Description, "Reduce recurring difficulty: ") {
		t.Errorf("goal 1 = %q, want struggle prefix", result.Goals[1].Description)
	}
	for _, g := range result.Goals {
		if g.Status != "not started" {
			t.Errorf("status = %q, want %q", g.Status, "not started")
		}
	}
}

func TestExtractTrial_FallbackGoal(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractTrial(TrialRequest{
		TranscriptText: "Tutor: Hello.\nStudent: Hi.",
		StudentName:    "Sam",
		SessionDate:    "2026-01-10",
	})

	if len(result.Goals) != 1 {
		t.Fatalf("got %d goals, want 1 fallback", len(result.Goals))
	}
	if result.Goals[0].Description != fallbackGoalDescription {
		t.Errorf("goal = %q", result.Goals[0].Description)
	}
}

func TestExtractTrial_ThreeMilestonesPerGoal(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractTrial(TrialRequest{
		TranscriptText: "Parent: We want to pass the placement test.\nStudent: I need to finish homework faster.",
		StudentName:    "Sam",
		SessionDate:    "2026-01-10",
	})

	if want := len(result.Goals) * 3; len(result.Milestones) != want {
		t.Errorf("got %d milestones, want %d", len(result.Milestones), want)
	}
	for _, m := range result.Milestones {
		if m.GoalDescription == "" || m.Milestone == "" || m.SuccessCriteria == "" {
			t.Errorf("incomplete milestone: %+v", m)
		}
	}
}

func TestExtractTrial_SATRoadmapFocus(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractTrial(TrialRequest{
		TranscriptText: "Student: The quadratic ones slow me down.",
		StudentName:    "Sam",
		TargetExam:     "SAT",
		SessionDate:    "2026-01-10",
	})

	roadmap := result.InferredCurriculumRoadmap
	wantFocus := []string{"Algebra", "Geometry", "Data & Probability", "Word Problems"}
	if len(roadmap.FocusDomains) != len(wantFocus) {
		t.Fatalf("focus = %v, want %v", roadmap.FocusDomains, wantFocus)
	}
	for i, d := range wantFocus {
		if roadmap.FocusDomains[i] != d {
			t.Errorf("focus[%d] = %q, want %q", i, roadmap.FocusDomains[i], d)
		}
	}
	// mentioned topics float to the front of the roadmap
	if len(roadmap.Topics) == 0 || roadmap.Topics[0].TopicName != "Quadratics" {
		t.Errorf("roadmap head = %+v, want Quadratics first", roadmap.Topics[:min(3, len(roadmap.Topics))])
	}
}

func TestExtractTrial_DefaultRoadmapFocus(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractTrial(TrialRequest{
		TranscriptText: "Tutor: Hello.",
		StudentName:    "Sam",
		SessionDate:    "2026-01-10",
	})

	wantFocus := []string{"Arithmetic", "Algebra", "Geometry"}
	got := result.InferredCurriculumRoadmap.FocusDomains
	if len(got) != len(wantFocus) {
		t.Fatalf("focus = %v, want %v", got, wantFocus)
	}
	for i, d := range wantFocus {
		if got[i] != d {
			t.Errorf("focus[%d] = %q, want %q", i, got[i], d)
		}
	}
}

func TestExtractTrial_TopicSeeds(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractTrial(TrialRequest{
		TranscriptText: "Student: The quadratic ones slow me down.",
		StudentName:    "Sam",
		TargetExam:     "SAT",
		SessionDate:    "2026-01-10",
	})

	var sawMentioned, sawUnmentioned bool
	for _, ts := range result.Topics {
		if ts.ConfidenceScore != 50 {
			t.Errorf("%s confidence = %d, want 50", ts.TopicName, ts.ConfidenceScore)
		}
		switch ts.TopicName {
		case "Quadratics":
			sawMentioned = true
			if ts.MasteryScore != 25 {
				t.Errorf("mentioned topic seed = %d, want 25", ts.MasteryScore)
			}
		case "Functions":
			sawUnmentioned = true
			if ts.MasteryScore != 15 {
				t.Errorf("unmentioned topic seed = %d, want 15", ts.MasteryScore)
			}
		}
	}
	if !sawMentioned || !sawUnmentioned {
		t.Errorf("roadmap missing expected topics: mentioned=%v unmentioned=%v", sawMentioned, sawUnmentioned)
	}
}

func TestExtractTrial_SummaryMentionsGoalsAndTopics(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractTrial(TrialRequest{
		TranscriptText: "Parent: We want to improve fractions.\nStudent: I can simplify 1/2 sometimes.",
		StudentName:    "Sam",
		SessionDate:    "2026-01-10",
	})

	if !strings.Contains(result.LongTermGoalSummary, "Goals mentioned:") {
		t.Errorf("summary = %q, want goals section", result.LongTermGoalSummary)
	}
	if !strings.Contains(result.LongTermGoalSummary, "Topics discussed:") {
		t.Errorf("summary = %q, want topics section", result.LongTermGoalSummary)
	}
}
