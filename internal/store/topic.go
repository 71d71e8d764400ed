package store

import (
	"context"
	"fmt"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent"
	enttopic "github.com/varunupadhyay1669-gif/ai-tutor-board/ent/topic"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/extract"
)

// topicRepo implements TopicRepo using the ent client.
type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Upsert(ctx context.Context, studentID int, data extract.TopicState) error {
	existing, err := r.client.Topic.Query().
		Where(
			enttopic.StudentID(studentID),
			enttopic.TopicName(data.TopicName),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query topic %q: %w", data.TopicName, err)
	}

	if existing != nil {
		update := existing.Update().
			SetMasteryScore(data.MasteryScore).
			SetConfidenceScore(data.ConfidenceScore)
		if data.ParentTopic != "" {
			update.SetParentTopic(data.ParentTopic)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("update topic %q: %w", data.TopicName, err)
		}
		return nil
	}

	create := r.client.Topic.Create().
		SetStudentID(studentID).
		SetTopicName(data.TopicName).
		SetMasteryScore(data.MasteryScore).
		SetConfidenceScore(data.ConfidenceScore)
	if data.ParentTopic != "" {
		create.SetParentTopic(data.ParentTopic)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("create topic %q: %w", data.TopicName, err)
	}
	return nil
}

func (r *topicRepo) ListByStudent(ctx context.Context, studentID int) ([]extract.TopicState, error) {
	rows, err := r.client.Topic.Query().
		Where(enttopic.StudentID(studentID)).
		Order(ent.Asc(enttopic.FieldParentTopic), ent.Asc(enttopic.FieldTopicName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics for student %d: %w", studentID, err)
	}
	out := make([]extract.TopicState, len(rows))
	for i, t := range rows {
		out[i] = extract.TopicState{
			TopicName:       t.TopicName,
			ParentTopic:     t.ParentTopic,
			MasteryScore:    t.MasteryScore,
			ConfidenceScore: t.ConfidenceScore,
		}
	}
	return out, nil
}
