package store

import (
	"context"
	"fmt"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent"
	enttopicmasteryevent "github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topicmasteryevent"
)

// topicEventRepo implements TopicEventRepo using the ent client.
type topicEventRepo struct {
	client *ent.Client
}

func (r *topicEventRepo) Record(ctx context.Context, studentID int, data TopicEventData) error {
	create := r.client.TopicMasteryEvent.Create().
		SetStudentID(studentID).
		SetTopicName(data.TopicName).
		SetEventDate(data.EventDate).
		SetPreviousMastery(data.PreviousMastery).
		SetNewMastery(data.NewMastery).
		SetPreviousConfidence(data.PreviousConfidence).
		SetNewConfidence(data.NewConfidence).
		SetExplanation(data.Explanation)
	if data.SessionID != nil {
		create.SetSessionID(*data.SessionID)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("record topic event %q: %w", data.TopicName, err)
	}
	return nil
}

func (r *topicEventRepo) ListByStudent(ctx context.Context, studentID int, topicName string) ([]TopicEvent, error) {
	q := r.client.TopicMasteryEvent.Query().
		Where(enttopicmasteryevent.StudentID(studentID)).
		Order(
			ent.Asc(enttopicmasteryevent.FieldEventDate),
			ent.Asc(enttopicmasteryevent.FieldID),
		)
	if topicName != "" {
		q.Where(enttopicmasteryevent.TopicName(topicName))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topic events for student %d: %w", studentID, err)
	}

	out := make([]TopicEvent, len(rows))
	for i, e := range rows {
		out[i] = TopicEvent{
			ID:                 e.ID,
			TopicName:          e.TopicName,
			SessionID:          e.SessionID,
			EventDate:          e.EventDate,
			PreviousMastery:    e.PreviousMastery,
			NewMastery:         e.NewMastery,
			PreviousConfidence: e.PreviousConfidence,
			NewConfidence:      e.NewConfidence,
			Explanation:        e.Explanation,
		}
	}
	return out, nil
}
