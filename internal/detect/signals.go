package detect

import (
	"strings"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/taxonomy"
)

// Signals is the per-topic behavioral accumulator built from turn-level
// attribution. All counters are non-negative; the accumulator is built
// fresh per extraction and never persisted directly.
type Signals struct {
	AttemptCount       int `json:"attempt_count"`
	ErrorCount         int `json:"error_count"`
	RepeatedErrorCount int `json:"repeated_error_count"`
	IndependentCount   int `json:"independent_count"`
	HintCount          int `json:"hint_count"`
	ConfidencePositive int `json:"confidence_positive"`
	ConfidenceNegative int `json:"confidence_negative"`
}

// Active reports whether any counter is non-zero.
func (s *Signals) Active() bool {
	return s.AttemptCount+s.ErrorCount+s.RepeatedErrorCount+s.IndependentCount+
		s.HintCount+s.ConfidencePositive+s.ConfidenceNegative > 0
}

// AccumulateTurn applies one turn's learning signals to the seeded
// accumulators. Topics matched by the turn but absent from signals are
// skipped: only topics the caller seeded (known or detected) accumulate.
//
// Tutor turns contribute hint counts only. Every other speaker is treated
// as the student; Parent and Unknown turns count the same way, since
// transcripts frequently mislabel or omit the student prefix.
func AccumulateTurn(signals map[string]*Signals, tax *taxonomy.Taxonomy, turn Turn) {
	matched := TopicsInText(tax, turn.Text)
	if len(matched) == 0 {
		return
	}

	for _, topic := range matched {
		sig, ok := signals[topic]
		if !ok {
			continue
		}

		if turn.Speaker == SpeakerTutor {
			if hintCueRe.MatchString(turn.Text) {
				sig.HintCount++
			}
			continue
		}

		sig.AttemptCount++
		negative := anyMatch(negativeConfidencePatterns, turn.Text) || strings.Contains(turn.Text, "?")
		if negative {
			sig.ErrorCount++
			sig.ConfidenceNegative++
		}
		if anyMatch(positiveConfidencePatterns, turn.Text) {
			sig.ConfidencePositive++
		}
		if looksLikeFinalAnswer(turn.Text) && !negative {
			sig.IndependentCount++
		}
	}
}

// looksLikeFinalAnswer reports whether a turn reads as a final-answer
// statement: an answer cue, or a short single-line numeric token.
func looksLikeFinalAnswer(text string) bool {
	if answerCueRe.MatchString(text) {
		return true
	}
	return numericTokenRe.MatchString(text) && len(text) <= 60 && !strings.Contains(text, "\n")
}
