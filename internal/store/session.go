package store

import (
	"context"
	"fmt"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent"
	entsession "github.com/varunupadhyay1669-gif/ai-tutor-board/ent/session"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Add(ctx context.Context, studentID int, data SessionData) (int, error) {
	create := r.client.Session.Create().
		SetStudentID(studentID).
		SetTranscriptText(data.TranscriptText).
		SetSessionDate(data.SessionDate).
		SetDetectedTopics(emptyIfNil(data.DetectedTopics)).
		SetDetectedMisconceptions(emptyIfNil(data.DetectedMisconceptions)).
		SetDetectedStrengths(emptyIfNil(data.DetectedStrengths)).
		SetRecommendedNextTargets(emptyIfNil(data.RecommendedNextTargets))
	if data.ExtractedSummary != "" {
		create.SetExtractedSummary(data.ExtractedSummary)
	}
	if data.EngagementScore != nil {
		create.SetEngagementScore(*data.EngagementScore)
	}
	if data.ParentSummary != "" {
		create.SetParentSummary(data.ParentSummary)
	}
	if data.TutorInsight != "" {
		create.SetTutorInsight(data.TutorInsight)
	}

	s, err := create.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	return s.ID, nil
}

func (r *sessionRepo) ListRecent(ctx context.Context, studentID int, limit int) ([]Session, error) {
	q := r.client.Session.Query().
		Where(entsession.StudentID(studentID)).
		Order(ent.Desc(entsession.FieldSessionDate), ent.Desc(entsession.FieldID))
	if limit > 0 {
		q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions for student %d: %w", studentID, err)
	}

	out := make([]Session, len(rows))
	for i, s := range rows {
		out[i] = Session{
			ID:                     s.ID,
			SessionDate:            s.SessionDate,
			ExtractedSummary:       s.ExtractedSummary,
			DetectedTopics:         emptyIfNil(s.DetectedTopics),
			DetectedMisconceptions: emptyIfNil(s.DetectedMisconceptions),
			DetectedStrengths:      emptyIfNil(s.DetectedStrengths),
			EngagementScore:        s.EngagementScore,
			ParentSummary:          s.ParentSummary,
			TutorInsight:           s.TutorInsight,
			RecommendedNextTargets: emptyIfNil(s.RecommendedNextTargets),
		}
	}
	return out, nil
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
