package store

import (
	"context"
	"fmt"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent"
	entstudent "github.com/varunupadhyay1669-gif/ai-tutor-board/ent/student"
)

// studentRepo implements StudentRepo using the ent client.
type studentRepo struct {
	client *ent.Client
}

func (r *studentRepo) Create(ctx context.Context, data StudentData) (int, error) {
	create := r.client.Student.Create().
		SetName(data.Name)
	if data.Grade != "" {
		create.SetGrade(data.Grade)
	}
	if data.Curriculum != "" {
		create.SetCurriculum(data.Curriculum)
	}
	if data.TargetExam != "" {
		create.SetTargetExam(data.TargetExam)
	}
	if data.LongTermGoalSummary != "" {
		create.SetLongTermGoalSummary(data.LongTermGoalSummary)
	}

	s, err := create.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create student: %w", err)
	}
	return s.ID, nil
}

func (r *studentRepo) Get(ctx context.Context, id int) (*Student, error) {
	s, err := r.client.Student.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student %d: %w", id, err)
	}
	out := entStudentToStudent(s)
	return &out, nil
}

func (r *studentRepo) List(ctx context.Context) ([]Student, error) {
	rows, err := r.client.Student.Query().
		Order(ent.Desc(entstudent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	out := make([]Student, len(rows))
	for i, s := range rows {
		out[i] = entStudentToStudent(s)
	}
	return out, nil
}

func (r *studentRepo) UpdateGoalSummary(ctx context.Context, id int, summary string) error {
	err := r.client.Student.UpdateOneID(id).
		SetLongTermGoalSummary(summary).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update student %d goal summary: %w", id, err)
	}
	return nil
}

func entStudentToStudent(s *ent.Student) Student {
	return Student{
		ID:                  s.ID,
		Name:                s.Name,
		Grade:               s.Grade,
		Curriculum:          s.Curriculum,
		TargetExam:          s.TargetExam,
		LongTermGoalSummary: s.LongTermGoalSummary,
	}
}
