package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent"
	entgoal "github.com/varunupadhyay1669-gif/ai-tutor-board/ent/goal"
	entmilestone "github.com/varunupadhyay1669-gif/ai-tutor-board/ent/milestone"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/extract"
)

// goalRepo implements GoalRepo using the ent client.
type goalRepo struct {
	client *ent.Client
}

func (r *goalRepo) AddGoals(ctx context.Context, studentID int, goals []extract.Goal) error {
	for _, g := range goals {
		create := r.client.Goal.Create().
			SetStudentID(studentID).
			SetDescription(g.Description).
			SetStatus(goalStatus(g.Status))
		if g.MeasurableOutcome != "" {
			create.SetMeasurableOutcome(g.MeasurableOutcome)
		}
		if g.Deadline != "" {
			create.SetDeadline(g.Deadline)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("create goal: %w", err)
		}
	}
	return nil
}

func (r *goalRepo) AddMilestones(ctx context.Context, studentID int, milestones []extract.Milestone) error {
	for _, m := range milestones {
		err := r.client.Milestone.Create().
			SetStudentID(studentID).
			SetGoalDescription(m.GoalDescription).
			SetMilestone(m.Milestone).
			SetSuccessCriteria(m.SuccessCriteria).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create milestone: %w", err)
		}
	}
	return nil
}

func (r *goalRepo) ListGoals(ctx context.Context, studentID int) ([]extract.Goal, error) {
	rows, err := r.client.Goal.Query().
		Where(entgoal.StudentID(studentID)).
		Order(ent.Asc(entgoal.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals for student %d: %w", studentID, err)
	}

	// Active goals first, then by deadline, then insertion order.
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := statusRank(rows[i].Status), statusRank(rows[j].Status)
		if ri != rj {
			return ri < rj
		}
		if rows[i].Deadline != rows[j].Deadline {
			return rows[i].Deadline < rows[j].Deadline
		}
		return rows[i].ID < rows[j].ID
	})

	out := make([]extract.Goal, len(rows))
	for i, g := range rows {
		out[i] = extract.Goal{
			Description:       g.Description,
			MeasurableOutcome: g.MeasurableOutcome,
			Deadline:          g.Deadline,
			Status:            g.Status,
		}
	}
	return out, nil
}

func (r *goalRepo) ListMilestones(ctx context.Context, studentID int) ([]extract.Milestone, error) {
	rows, err := r.client.Milestone.Query().
		Where(entmilestone.StudentID(studentID)).
		Order(ent.Asc(entmilestone.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list milestones for student %d: %w", studentID, err)
	}
	out := make([]extract.Milestone, len(rows))
	for i, m := range rows {
		out[i] = extract.Milestone{
			GoalDescription: m.GoalDescription,
			Milestone:       m.Milestone,
			SuccessCriteria: m.SuccessCriteria,
		}
	}
	return out, nil
}

func goalStatus(s string) string {
	if s == "" {
		return "not started"
	}
	return s
}

func statusRank(status string) int {
	switch status {
	case "achieved":
		return 2
	case "in progress":
		return 1
	default:
		return 0
	}
}
