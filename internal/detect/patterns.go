package detect

import "regexp"

// Pattern sets are compiled once at package load and iterated data-driven.
// Matching is always case-insensitive against the raw transcript or turn text.

var negativeConfidencePatterns = compileAll([]string{
	`\bi don't know\b`,
	`\bnot sure\b`,
	`\bconfus(ed|ing)\b`,
	`\bstuck\b`,
	`\bi can't\b`,
	`\bthis is hard\b`,
	`\bI'm bad at\b`,
})

var avoidancePatterns = compileAll([]string{
	`\bi hate\b`,
	`\bi always\b`,
	`\bi never\b`,
	`\bi give up\b`,
	`\bcan we not\b`,
})

var positiveConfidencePatterns = compileAll([]string{
	`\bgot it\b`,
	`\bmakes sense\b`,
	`\bokay\b`,
	`\bi understand\b`,
	`\bthat was easy\b`,
})

var goalCuePatterns = compileAll([]string{
	`\bgoal\b`,
	`\bwant to\b`,
	`\btrying to\b`,
	`\bneed to\b`,
	`\bimprove\b`,
	`\bget better\b`,
	`\bscore\b`,
})

var struggleCuePatterns = compileAll([]string{
	`\bstruggle\b`,
	`\bhard for me\b`,
	`\bkeeps? mess(ing)? up\b`,
	`\bconfus(ed|ing)\b`,
})

var (
	hintCueRe      = regexp.MustCompile(`(?i)\b(hint|remember|try|think about|let's)\b`)
	answerCueRe    = regexp.MustCompile(`(?i)(=|\banswer\b|\bso\b|\btherefore\b)`)
	numericTokenRe = regexp.MustCompile(`\b\d+\s*/\s*\d+\b|\b-?\d+(?:\.\d+)?\b`)

	// Structural topic detectors (transcript shorthand that keyword lists miss).
	fractionTokenRe   = regexp.MustCompile(`\b\d+\s*/\s*\d+\b`)
	assignmentTokenRe = regexp.MustCompile(`\b[xy]\s*=\s*[-+]?\d+`)
)

// labeledPattern pairs a detection regex with the human-readable label that
// downstream storage and UI render unmodified.
type labeledPattern struct {
	re    *regexp.Regexp
	label string
}

var misconceptionPatterns = []labeledPattern{
	{regexp.MustCompile(`(?i)add(ing)? the denominators`), "Adds denominators when working with fractions"},
	{regexp.MustCompile(`(?i)cross[- ]multiply`), "Uses cross-multiplication incorrectly or in the wrong context"},
	{regexp.MustCompile(`(?i)sign error|wrong sign|forgot the negative`), "Sign error with negatives"},
	{regexp.MustCompile(`(?i)distribut(e|ion)`), "Distribution mistakes (missed a term or sign)"},
}

var strengthPatterns = []labeledPattern{
	{regexp.MustCompile(`(?i)\bgot it\b`), "Understands after explanation"},
	{regexp.MustCompile(`(?i)\bsolved\b|\bI did\b`), "Completes problems to a final answer"},
	{regexp.MustCompile(`(?i)\bchecks? my work\b|\bdouble[- ]check\b`), "Shows self-checking behavior"},
}

func compileAll(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// anyMatch reports whether any pattern in the set matches text.
func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// countMatches sums all match occurrences across the pattern set.
func countMatches(patterns []*regexp.Regexp, text string) int {
	n := 0
	for _, re := range patterns {
		n += len(re.FindAllStringIndex(text, -1))
	}
	return n
}

// matchLabels returns the labels whose pattern matches text, in pattern
// order, each at most once.
func matchLabels(patterns []labeledPattern, text string) []string {
	var out []string
	for _, p := range patterns {
		if p.re.MatchString(text) {
			out = append(out, p.label)
		}
	}
	return out
}
