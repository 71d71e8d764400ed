// Package growth converts per-topic behavioral signals into bounded,
// auditable mastery and confidence updates. The engine is a pure function:
// no I/O, no retained state, safe to call concurrently.
package growth

import (
	"math"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/detect"
)

// DeltaComponents itemizes the additive parts of the raw mastery delta.
type DeltaComponents struct {
	ImprovementFactor    float64 `json:"improvement_factor"`
	IndependentBonus     float64 `json:"independent_bonus"`
	ErrorPenalty         float64 `json:"error_penalty"`
	RepeatedErrorPenalty float64 `json:"repeated_error_penalty"`
}

// DerivedSignals holds the intermediate ratios computed from raw counters.
type DerivedSignals struct {
	CorrectionSpeed float64 `json:"correction_speed"`
	Independence    float64 `json:"independence"`
}

// Explanation is the audit record for one update. Its field set is a stable
// contract: the storage and UI layers render it verbatim, so removing or
// renaming a field is a regression.
type Explanation struct {
	Formula         string          `json:"formula"`
	DeltaComponents DeltaComponents `json:"delta_components"`
	DerivedSignals  DerivedSignals  `json:"derived_signals"`
	BoundedDelta    float64         `json:"bounded_delta"`
	MasteryDelta    int             `json:"mastery_delta"`
	ConfidenceDelta int             `json:"confidence_delta"`
	SignalsUsed     detect.Signals  `json:"signals_used"`
}

// Update computes the new mastery and confidence for one topic from its
// previous scores and the session's behavioral signals. Every transition is
// new = clamp(previous + round(bounded_delta), 0, 100); signals alone never
// overwrite a score.
func Update(previousMastery, previousConfidence int, sig detect.Signals, cfg Config) (int, int, Explanation) {
	correctionSpeed := 1.0 / (1.0 + float64(sig.HintCount)/float64(max(1, sig.ErrorCount)))
	independence := float64(sig.IndependentCount) / float64(max(1, sig.AttemptCount))

	components := DeltaComponents{
		ImprovementFactor:    10.0 * cfg.ImprovementWeight * correctionSpeed * independence,
		IndependentBonus:     cfg.IndependentBonus * float64(sig.IndependentCount),
		ErrorPenalty:         cfg.ErrorPenalty * float64(sig.ErrorCount),
		RepeatedErrorPenalty: cfg.RepeatedErrorPenalty * float64(sig.RepeatedErrorCount),
	}

	rawDelta := components.ImprovementFactor + components.IndependentBonus -
		components.ErrorPenalty - components.RepeatedErrorPenalty
	boundedDelta := clampFloat(rawDelta, float64(cfg.MinSessionDelta), float64(cfg.MaxSessionDelta))
	masteryDelta := int(math.Round(boundedDelta))
	newMastery := clampInt(previousMastery+masteryDelta, 0, 100)

	rawConfDelta := float64(sig.ConfidencePositive)*cfg.ConfidencePositiveWeight -
		float64(sig.ConfidenceNegative)*cfg.ConfidenceNegativeWeight
	rawConfDelta += 6.0 * independence
	rawConfDelta -= 2.0 * float64(sig.ErrorCount)
	confDelta := int(math.Round(clampFloat(rawConfDelta, -12.0, 12.0)))
	newConfidence := clampInt(previousConfidence+confDelta, 0, 100)

	explanation := Explanation{
		Formula:         "new = clamp(prev + round(delta), 0, 100)",
		DeltaComponents: components,
		DerivedSignals: DerivedSignals{
			CorrectionSpeed: correctionSpeed,
			Independence:    independence,
		},
		BoundedDelta:    boundedDelta,
		MasteryDelta:    masteryDelta,
		ConfidenceDelta: confDelta,
		SignalsUsed:     sig,
	}

	return newMastery, newConfidence, explanation
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
