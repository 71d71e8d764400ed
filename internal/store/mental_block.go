package store

import (
	"context"
	"fmt"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/ent"
	entmentalblock "github.com/varunupadhyay1669-gif/ai-tutor-board/ent/mentalblock"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/extract"
)

// mentalBlockRepo implements MentalBlockRepo using the ent client.
type mentalBlockRepo struct {
	client *ent.Client
}

func (r *mentalBlockRepo) Upsert(ctx context.Context, studentID int, cand extract.MentalBlockCandidate, detectedAt string) (*MentalBlock, error) {
	existing, err := r.client.MentalBlock.Query().
		Where(
			entmentalblock.StudentID(studentID),
			entmentalblock.Description(cand.Description),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query mental block %q: %w", cand.Description, err)
	}

	if existing != nil {
		newFreq := existing.FrequencyCount + 1
		newSev := clampScore(existing.SeverityScore + cand.RepeatSeverityDelta)
		updated, err := existing.Update().
			SetLastDetected(detectedAt).
			SetFrequencyCount(newFreq).
			SetSeverityScore(newSev).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update mental block %q: %w", cand.Description, err)
		}
		return entMentalBlockToMentalBlock(updated), nil
	}

	created, err := r.client.MentalBlock.Create().
		SetStudentID(studentID).
		SetDescription(cand.Description).
		SetFirstDetected(detectedAt).
		SetLastDetected(detectedAt).
		SetFrequencyCount(1).
		SetSeverityScore(clampScore(cand.InitialSeverity)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create mental block %q: %w", cand.Description, err)
	}
	return entMentalBlockToMentalBlock(created), nil
}

func (r *mentalBlockRepo) ListByStudent(ctx context.Context, studentID int) ([]MentalBlock, error) {
	rows, err := r.client.MentalBlock.Query().
		Where(entmentalblock.StudentID(studentID)).
		Order(
			ent.Desc(entmentalblock.FieldSeverityScore),
			ent.Desc(entmentalblock.FieldFrequencyCount),
			ent.Desc(entmentalblock.FieldLastDetected),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mental blocks for student %d: %w", studentID, err)
	}
	out := make([]MentalBlock, len(rows))
	for i, mb := range rows {
		out[i] = *entMentalBlockToMentalBlock(mb)
	}
	return out, nil
}

func entMentalBlockToMentalBlock(mb *ent.MentalBlock) *MentalBlock {
	return &MentalBlock{
		ID:             mb.ID,
		Description:    mb.Description,
		FirstDetected:  mb.FirstDetected,
		LastDetected:   mb.LastDetected,
		FrequencyCount: mb.FrequencyCount,
		SeverityScore:  mb.SeverityScore,
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
