package detect

import (
	"sort"
	"strings"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/taxonomy"
)

// TopicScore records how strongly a topic surfaced in a piece of text.
// HitCount counts every keyword occurrence, not just presence, so scores
// can rank topics by salience.
type TopicScore struct {
	TopicName   string   `json:"topic_name"`
	ParentTopic string   `json:"parent_topic"`
	HitCount    int      `json:"hit_count"`
	Hits        []string `json:"hits"`
}

// DetectTopics scans text for every taxonomy keyword plus three structural
// detectors: a fraction-shaped token (counts double, it is a strong signal),
// a literal "%", and an assignment-like "x = N" token.
func DetectTopics(tax *taxonomy.Taxonomy, text string) map[string]*TopicScore {
	textLower := strings.ToLower(text)
	scores := make(map[string]*TopicScore)

	for _, tp := range tax.Topics() {
		hitCount := 0
		var hits []string
		for _, kw := range tp.Keywords {
			kwLower := strings.ToLower(kw)
			if strings.Contains(textLower, kwLower) {
				hitCount += strings.Count(textLower, kwLower)
				hits = append(hits, kw)
			}
		}
		if hitCount > 0 {
			scores[tp.Name] = &TopicScore{
				TopicName:   tp.Name,
				ParentTopic: string(tp.Parent),
				HitCount:    hitCount,
				Hits:        hits,
			}
		}
	}

	if fractionTokenRe.MatchString(text) {
		s := ensureScore(scores, "Fractions", string(taxonomy.DomainArithmetic))
		s.HitCount += 2
		s.Hits = append(s.Hits, "<fraction a/b>")
	}
	if strings.Contains(text, "%") {
		s := ensureScore(scores, "Percents", string(taxonomy.DomainArithmetic))
		s.HitCount++
		s.Hits = append(s.Hits, "%")
	}
	if assignmentTokenRe.MatchString(textLower) {
		s := ensureScore(scores, "Equations", string(taxonomy.DomainAlgebra))
		s.HitCount++
		s.Hits = append(s.Hits, "x=.../y=...")
	}

	return scores
}

func ensureScore(scores map[string]*TopicScore, name, parent string) *TopicScore {
	if s, ok := scores[name]; ok {
		return s
	}
	s := &TopicScore{TopicName: name, ParentTopic: parent}
	scores[name] = s
	return s
}

// RankByHits orders scores by descending hit count, ties broken by topic
// name ascending. This is the canonical "most salient topics" order.
func RankByHits(scores map[string]*TopicScore) []*TopicScore {
	out := make([]*TopicScore, 0, len(scores))
	for _, s := range scores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HitCount != out[j].HitCount {
			return out[i].HitCount > out[j].HitCount
		}
		return out[i].TopicName < out[j].TopicName
	})
	return out
}

// RankByHitsThenParent orders scores by descending hit count, then parent
// domain, then topic name. Used at trial intake where topics group under
// their parent bucket.
func RankByHitsThenParent(scores map[string]*TopicScore) []*TopicScore {
	out := make([]*TopicScore, 0, len(scores))
	for _, s := range scores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HitCount != out[j].HitCount {
			return out[i].HitCount > out[j].HitCount
		}
		if out[i].ParentTopic != out[j].ParentTopic {
			return out[i].ParentTopic < out[j].ParentTopic
		}
		return out[i].TopicName < out[j].TopicName
	})
	return out
}

// TopicsInText returns the deduplicated, lexicographically sorted set of
// topic names whose keywords (or structural detectors) match the text.
// Used for per-turn attribution.
func TopicsInText(tax *taxonomy.Taxonomy, text string) []string {
	textLower := strings.ToLower(text)
	seen := make(map[string]bool)

	for _, tp := range tax.Topics() {
		for _, kw := range tp.Keywords {
			if strings.Contains(textLower, strings.ToLower(kw)) {
				seen[tp.Name] = true
				break
			}
		}
	}
	if fractionTokenRe.MatchString(text) {
		seen["Fractions"] = true
	}
	if strings.Contains(text, "%") {
		seen["Percents"] = true
	}
	if assignmentTokenRe.MatchString(textLower) {
		seen["Equations"] = true
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
