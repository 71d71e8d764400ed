// Package detect is the heuristic transcript signal detector. It splits raw
// tutoring transcripts into speaker turns and derives topic, confidence,
// misconception, and engagement signals with deterministic pattern matching.
// No NLP, no I/O: every function is pure over its inputs.
package detect

import (
	"regexp"
	"strings"
)

// ConfidenceCounts holds transcript-wide pattern occurrence totals.
type ConfidenceCounts struct {
	Positive  int
	Negative  int
	Avoidance int
}

// CountConfidence tallies positive/negative confidence and avoidance
// language across the whole transcript. Counts are total occurrences,
// not turn-scoped presence.
func CountConfidence(text string) ConfidenceCounts {
	return ConfidenceCounts{
		Positive:  countMatches(positiveConfidencePatterns, text),
		Negative:  countMatches(negativeConfidencePatterns, text),
		Avoidance: countMatches(avoidancePatterns, text),
	}
}

// EngagementScore folds confidence counts into a 0-100 engagement estimate
// anchored at a neutral 70.
func EngagementScore(c ConfidenceCounts) int {
	score := 70 + 4*c.Positive - 6*c.Negative - 10*c.Avoidance
	return clampInt(score, 0, 100)
}

// Misconceptions returns the human-readable misconception labels whose
// pattern matches anywhere in the transcript, each at most once, in fixed
// pattern order.
func Misconceptions(text string) []string {
	return matchLabels(misconceptionPatterns, text)
}

// Strengths returns the matched strength labels, each at most once.
func Strengths(text string) []string {
	return matchLabels(strengthPatterns, text)
}

// GoalLines returns normalized transcript lines containing goal vocabulary,
// capped at 10.
func GoalLines(text string) []string {
	return cueLines(text, goalCuePatterns)
}

// StruggleLines returns normalized transcript lines containing struggle
// vocabulary, capped at 10.
func StruggleLines(text string) []string {
	return cueLines(text, struggleCuePatterns)
}

func cueLines(text string, patterns []*regexp.Regexp) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, re := range patterns {
			if re.MatchString(line) {
				out = append(out, Normalize(line))
				break
			}
		}
		if len(out) == 10 {
			break
		}
	}
	return out
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
