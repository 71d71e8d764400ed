package detect

import (
	"testing"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/taxonomy"
)

func seedSignals(names ...string) map[string]*Signals {
	m := make(map[string]*Signals, len(names))
	for _, n := range names {
		m[n] = &Signals{}
	}
	return m
}

func TestAccumulateTurn_StudentIndependent(t *testing.T) {
	signals := seedSignals("Fractions")
	AccumulateTurn(signals, taxonomy.Default(), Turn{
		Speaker: SpeakerStudent,
		Text:    "I think 3/4 is the answer",
	})

	sig := signals["Fractions"]
	if sig.AttemptCount != 1 {
		t.Errorf("attempts = %d, want 1", sig.AttemptCount)
	}
	if sig.ErrorCount != 0 {
		t.Errorf("errors = %d, want 0", sig.ErrorCount)
	}
	if sig.IndependentCount != 1 {
		t.Errorf("independent = %d, want 1", sig.IndependentCount)
	}
}

func TestAccumulateTurn_QuestionCountsAsError(t *testing.T) {
	signals := seedSignals("Fractions")
	AccumulateTurn(signals, taxonomy.Default(), Turn{
		Speaker: SpeakerStudent,
		Text:    "Is it 5/6?",
	})

	sig := signals["Fractions"]
	if sig.ErrorCount != 1 || sig.ConfidenceNegative != 1 {
		t.Errorf("errors = %d, confNeg = %d, want 1, 1", sig.ErrorCount, sig.ConfidenceNegative)
	}
	// a hesitant turn never counts as independent, even with a numeric answer
	if sig.IndependentCount != 0 {
		t.Errorf("independent = %d, want 0", sig.IndependentCount)
	}
}

func TestAccumulateTurn_TutorHintsOnly(t *testing.T) {
	signals := seedSignals("Fractions")
	AccumulateTurn(signals, taxonomy.Default(), Turn{
		Speaker: SpeakerTutor,
		Text:    "Hint: remember the common denominator",
	})

	sig := signals["Fractions"]
	if sig.HintCount != 1 {
		t.Errorf("hints = %d, want 1", sig.HintCount)
	}
	if sig.AttemptCount != 0 {
		t.Errorf("attempts = %d, want 0: tutor turns must not count as attempts", sig.AttemptCount)
	}
}

func TestAccumulateTurn_ParentCountsAsStudent(t *testing.T) {
	signals := seedSignals("Fractions")
	AccumulateTurn(signals, taxonomy.Default(), Turn{
		Speaker: SpeakerParent,
		Text:    "He said the fraction answer was 2/3, so that part makes sense",
	})

	if signals["Fractions"].AttemptCount != 1 {
		t.Errorf("attempts = %d, want 1", signals["Fractions"].AttemptCount)
	}
	if signals["Fractions"].ConfidencePositive != 1 {
		t.Errorf("confPos = %d, want 1", signals["Fractions"].ConfidencePositive)
	}
}

func TestAccumulateTurn_UnseededTopicSkipped(t *testing.T) {
	signals := seedSignals("Decimals")
	AccumulateTurn(signals, taxonomy.Default(), Turn{
		Speaker: SpeakerStudent,
		Text:    "the fraction is 1/2",
	})

	if len(signals) != 1 {
		t.Errorf("signals grew to %d entries, want 1", len(signals))
	}
	if signals["Decimals"].Active() {
		t.Error("Decimals accumulated signals from an unrelated turn")
	}
}

func TestSignalsActive(t *testing.T) {
	var s Signals
	if s.Active() {
		t.Error("zero signals reported active")
	}
	s.HintCount = 1
	if !s.Active() {
		t.Error("non-zero signals reported inactive")
	}
}

func TestLooksLikeFinalAnswer(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"so the answer is 12", true},
		{"x = 4", true},
		{"42", true},
		{"I wonder about this", false},
		{"12\nbut wait", false},
	}
	for _, tt := range tests {
		if got := looksLikeFinalAnswer(tt.text); got != tt.want {
			t.Errorf("looksLikeFinalAnswer(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
