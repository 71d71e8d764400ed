package growth

import (
	"math"
	"testing"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/detect"
)

func TestUpdate_SingleIndependentAttempt(t *testing.T) {
	sig := detect.Signals{AttemptCount: 1, IndependentCount: 1}
	mastery, confidence, exp := Update(15, 50, sig, DefaultConfig())

	// full correction speed and independence: 10*1*1*1 + 2*1 = 12
	if exp.MasteryDelta != 12 {
		t.Errorf("mastery delta = %d, want 12", exp.MasteryDelta)
	}
	if mastery != 27 {
		t.Errorf("mastery = %d, want 27", mastery)
	}
	// confidence: 6*independence = 6
	if exp.ConfidenceDelta != 6 {
		t.Errorf("confidence delta = %d, want 6", exp.ConfidenceDelta)
	}
	if confidence != 56 {
		t.Errorf("confidence = %d, want 56", confidence)
	}
}

func TestUpdate_NoSignalsNoChange(t *testing.T) {
	mastery, confidence, exp := Update(40, 60, detect.Signals{}, DefaultConfig())
	if mastery != 40 || confidence != 60 {
		t.Errorf("got %d/%d, want 40/60 unchanged", mastery, confidence)
	}
	if exp.MasteryDelta != 0 || exp.ConfidenceDelta != 0 {
		t.Errorf("deltas = %d/%d, want 0/0", exp.MasteryDelta, exp.ConfidenceDelta)
	}
}

func TestUpdate_DeltaBoundedBelow(t *testing.T) {
	sig := detect.Signals{AttemptCount: 6, ErrorCount: 6, ConfidenceNegative: 6}
	mastery, confidence, exp := Update(5, 10, sig, DefaultConfig())

	// raw delta -15 clamps to the session floor of -12
	if exp.BoundedDelta != -12 {
		t.Errorf("bounded delta = %f, want -12", exp.BoundedDelta)
	}
	if mastery != 0 {
		t.Errorf("mastery = %d, want 0 (floor)", mastery)
	}
	if exp.ConfidenceDelta != -12 {
		t.Errorf("confidence delta = %d, want -12", exp.ConfidenceDelta)
	}
	if confidence != 0 {
		t.Errorf("confidence = %d, want 0 (floor)", confidence)
	}
}

func TestUpdate_ScoreCappedAt100(t *testing.T) {
	sig := detect.Signals{AttemptCount: 2, IndependentCount: 2, ConfidencePositive: 3}
	mastery, confidence, _ := Update(95, 98, sig, DefaultConfig())
	if mastery != 100 {
		t.Errorf("mastery = %d, want 100", mastery)
	}
	if confidence != 100 {
		t.Errorf("confidence = %d, want 100", confidence)
	}
}

func TestUpdate_HintsSlowCorrectionSpeed(t *testing.T) {
	with := detect.Signals{AttemptCount: 2, IndependentCount: 1, ErrorCount: 1, HintCount: 3}
	without := detect.Signals{AttemptCount: 2, IndependentCount: 1, ErrorCount: 1}

	_, _, expWith := Update(50, 50, with, DefaultConfig())
	_, _, expWithout := Update(50, 50, without, DefaultConfig())

	if expWith.DerivedSignals.CorrectionSpeed >= expWithout.DerivedSignals.CorrectionSpeed {
		t.Errorf("correction speed with hints (%f) not below without (%f)",
			expWith.DerivedSignals.CorrectionSpeed, expWithout.DerivedSignals.CorrectionSpeed)
	}
	if expWith.MasteryDelta > expWithout.MasteryDelta {
		t.Errorf("hints increased mastery delta: %d > %d", expWith.MasteryDelta, expWithout.MasteryDelta)
	}
}

func TestUpdate_ExplanationRecordsInputs(t *testing.T) {
	sig := detect.Signals{AttemptCount: 3, IndependentCount: 1, ErrorCount: 1}
	_, _, exp := Update(30, 40, sig, DefaultConfig())

	if exp.Formula == "" {
		t.Error("formula is empty")
	}
	if exp.SignalsUsed != sig {
		t.Errorf("signals_used = %+v, want %+v", exp.SignalsUsed, sig)
	}
	wantIndep := 1.0 / 3.0
	if math.Abs(exp.DerivedSignals.Independence-wantIndep) > 1e-9 {
		t.Errorf("independence = %f, want %f", exp.DerivedSignals.Independence, wantIndep)
	}
}

func TestUpdate_RepeatedErrorPenalty(t *testing.T) {
	sig := detect.Signals{AttemptCount: 1, RepeatedErrorCount: 2}
	_, _, exp := Update(50, 50, sig, DefaultConfig())
	if exp.DeltaComponents.RepeatedErrorPenalty != 8.0 {
		t.Errorf("repeated error penalty = %f, want 8.0", exp.DeltaComponents.RepeatedErrorPenalty)
	}
	if exp.MasteryDelta != -8 {
		t.Errorf("mastery delta = %d, want -8", exp.MasteryDelta)
	}
}
