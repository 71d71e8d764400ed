package extract

import (
	"reflect"
	"strings"
	"testing"
)

const crossMultiplyLabel = "Uses cross-multiplication incorrectly or in the wrong context"

func sessionsWith(label string, n int) []SessionRecord {
	out := make([]SessionRecord, n)
	for i := range out {
		out[i] = SessionRecord{DetectedMisconceptions: []string{label}}
	}
	return out
}

func TestExtractSession_DetectedTopicsRanked(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractSession(SessionRequest{
		TranscriptText: "Tutor: Today is fractions and decimals.\nStudent: fraction fraction fraction",
		SessionDate:    "2026-02-01",
	})

	if len(result.DetectedTopics) == 0 || result.DetectedTopics[0] != "Fractions" {
		t.Errorf("detected = %v, want Fractions first", result.DetectedTopics)
	}
	if !strings.HasPrefix(result.ExtractedSummary, "Topics covered: ") {
		t.Errorf("summary = %q", result.ExtractedSummary)
	}
}

func TestExtractSession_NoTopics(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractSession(SessionRequest{
		TranscriptText: "Tutor: How was your week?\nStudent: Fine.",
		SessionDate:    "2026-02-01",
	})

	if result.ExtractedSummary != "Topics covered: General problem solving" {
		t.Errorf("summary = %q", result.ExtractedSummary)
	}
	if result.ParentSummary == "" {
		t.Error("parent summary is empty")
	}
}

func TestExtractSession_UpdatesUseKnownScores(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractSession(SessionRequest{
		TranscriptText: "Student: The fraction answer is 3/4.",
		SessionDate:    "2026-02-01",
		KnownTopics: []TopicState{
			{TopicName: "Fractions", ParentTopic: "Arithmetic", MasteryScore: 40, ConfidenceScore: 55},
		},
	})

	upd, ok := result.PerTopicUpdates["Fractions"]
	if !ok {
		t.Fatalf("no update for Fractions: %v", result.PerTopicUpdates)
	}
	if upd.PreviousMastery != 40 || upd.PreviousConfidence != 55 {
		t.Errorf("previous = %d/%d, want 40/55", upd.PreviousMastery, upd.PreviousConfidence)
	}
	if upd.NewMastery <= upd.PreviousMastery {
		t.Errorf("mastery did not grow: %d -> %d", upd.PreviousMastery, upd.NewMastery)
	}
}

func TestExtractSession_UnknownTopicGetsDefaults(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractSession(SessionRequest{
		TranscriptText: "Student: The fraction answer is 3/4.",
		SessionDate:    "2026-02-01",
	})

	upd, ok := result.PerTopicUpdates["Fractions"]
	if !ok {
		t.Fatalf("no update for Fractions: %v", result.PerTopicUpdates)
	}
	if upd.PreviousMastery != defaultMastery || upd.PreviousConfidence != defaultConfidence {
		t.Errorf("previous = %d/%d, want defaults %d/%d",
			upd.PreviousMastery, upd.PreviousConfidence, defaultMastery, defaultConfidence)
	}
}

func TestExtractSession_MentalBlockNeedsThreeSessions(t *testing.T) {
	e := newTestExtractor(t)
	transcript := "Student: Should I cross-multiply here"

	// first and second occurrence: below threshold, no avoidance
	for prior := 0; prior < 2; prior++ {
		result := e.ExtractSession(SessionRequest{
			TranscriptText: transcript,
			SessionDate:    "2026-02-01",
			RecentSessions: sessionsWith(crossMultiplyLabel, prior),
		})
		if len(result.MentalBlockCandidates) != 0 {
			t.Errorf("prior=%d: got candidates %v, want none", prior, result.MentalBlockCandidates)
		}
	}

	// third occurrence crosses the threshold
	result := e.ExtractSession(SessionRequest{
		TranscriptText: transcript,
		SessionDate:    "2026-02-01",
		RecentSessions: sessionsWith(crossMultiplyLabel, 2),
	})
	if len(result.MentalBlockCandidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(result.MentalBlockCandidates))
	}
	cand := result.MentalBlockCandidates[0]
	if cand.Description != crossMultiplyLabel {
		t.Errorf("description = %q", cand.Description)
	}
	if cand.SessionCount != 3 {
		t.Errorf("session count = %d, want 3", cand.SessionCount)
	}
	if cand.InitialSeverity != 35 || cand.RepeatSeverityDelta != 15 {
		t.Errorf("severity = %d/%d, want 35/15", cand.InitialSeverity, cand.RepeatSeverityDelta)
	}
}

func TestExtractSession_AvoidanceEscalatesImmediately(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractSession(SessionRequest{
		TranscriptText: "Student: I hate these. Should I cross-multiply here",
		SessionDate:    "2026-02-01",
	})

	if len(result.MentalBlockCandidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(result.MentalBlockCandidates))
	}
	cand := result.MentalBlockCandidates[0]
	if cand.SessionCount != 1 {
		t.Errorf("session count = %d, want 1", cand.SessionCount)
	}
	if cand.InitialSeverity != 50 || cand.RepeatSeverityDelta != 30 {
		t.Errorf("severity = %d/%d, want avoidance-boosted 50/30", cand.InitialSeverity, cand.RepeatSeverityDelta)
	}
}

func TestExtractSession_RepeatedErrorBoost(t *testing.T) {
	e := newTestExtractor(t)
	req := SessionRequest{
		TranscriptText: "Student: The fraction is 3/4 but I cross-multiply wrong.",
		SessionDate:    "2026-02-01",
	}

	fresh := e.ExtractSession(req)
	if got := fresh.PerTopicSignals["Fractions"].RepeatedErrorCount; got != 0 {
		t.Errorf("fresh repeated errors = %d, want 0", got)
	}

	req.RecentSessions = sessionsWith(crossMultiplyLabel, 1)
	repeat := e.ExtractSession(req)
	if got := repeat.PerTopicSignals["Fractions"].RepeatedErrorCount; got != 1 {
		t.Errorf("repeated errors = %d, want 1", got)
	}
	if repeat.PerTopicUpdates["Fractions"].NewMastery >= fresh.PerTopicUpdates["Fractions"].NewMastery {
		t.Errorf("repeat session mastery %d not below fresh %d",
			repeat.PerTopicUpdates["Fractions"].NewMastery, fresh.PerTopicUpdates["Fractions"].NewMastery)
	}
}

func TestExtractSession_RecommendationsLowestMasteryFirst(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractSession(SessionRequest{
		TranscriptText: "Tutor: We covered fractions, decimals, and percent today.",
		SessionDate:    "2026-02-01",
		KnownTopics: []TopicState{
			{TopicName: "Fractions", MasteryScore: 80, ConfidenceScore: 60},
			{TopicName: "Decimals", MasteryScore: 20, ConfidenceScore: 50},
			{TopicName: "Percents", MasteryScore: 50, ConfidenceScore: 50},
		},
	})

	want := []string{"Decimals", "Percents", "Fractions"}
	if !reflect.DeepEqual(result.RecommendedNextTargets, want) {
		t.Errorf("recommended = %v, want %v", result.RecommendedNextTargets, want)
	}
}

func TestExtractSession_RecommendationsBackfillFromKnown(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractSession(SessionRequest{
		TranscriptText: "Student: I finished the fraction sheet, it was 1/2.",
		SessionDate:    "2026-02-01",
		KnownTopics: []TopicState{
			{TopicName: "Fractions", MasteryScore: 30, ConfidenceScore: 50},
			{TopicName: "Decimals", MasteryScore: 10, ConfidenceScore: 50},
			{TopicName: "Angles", MasteryScore: 5, ConfidenceScore: 50},
		},
	})

	want := []string{"Fractions", "Angles", "Decimals"}
	if !reflect.DeepEqual(result.RecommendedNextTargets, want) {
		t.Errorf("recommended = %v, want %v", result.RecommendedNextTargets, want)
	}
}

func TestExtractSession_EngagementInTutorInsight(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractSession(SessionRequest{
		TranscriptText: "Student: got it, the fraction is 1/2",
		SessionDate:    "2026-02-01",
	})

	if result.EngagementScore != 74 {
		t.Errorf("engagement = %d, want 74", result.EngagementScore)
	}
	if !strings.Contains(result.TutorInsight, "engagement=74/100") {
		t.Errorf("tutor insight = %q", result.TutorInsight)
	}
}

func TestExtractSession_DebugTurnCount(t *testing.T) {
	e := newTestExtractor(t)
	result := e.ExtractSession(SessionRequest{
		TranscriptText: "Tutor: Hi.\nStudent: Hello.\nTutor: Let's begin fractions.",
		SessionDate:    "2026-02-01",
	})
	if result.Debug.TurnCount != 3 {
		t.Errorf("turn count = %d, want 3", result.Debug.TurnCount)
	}
}
