package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/detect"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/growth"
)

const (
	// detectedTopicLimit caps transcript-wide topic ranking per session.
	detectedTopicLimit = 8
	// repeatWindow is how many recent sessions feed repeated-error boosting.
	repeatWindow = 10
	// mentalBlockWindow is how many recent sessions feed mental-block
	// session counting. Deliberately wider than repeatWindow.
	mentalBlockWindow = 25

	defaultMastery    = 15
	defaultConfidence = 50
)

// ExtractSession runs the per-session pipeline: turn splitting and
// detection, signal accumulation, growth updates for every active topic,
// summaries, next-target recommendation, and mental-block candidacy.
func (e *Extractor) ExtractSession(req SessionRequest) SessionResult {
	text := req.TranscriptText
	turns := detect.SplitTurns(text)

	topicScores := detect.DetectTopics(e.tax, text)
	ranked := detect.RankByHits(topicScores)
	detectedTopics := make([]string, 0, detectedTopicLimit)
	for _, s := range ranked {
		detectedTopics = append(detectedTopics, s.TopicName)
		if len(detectedTopics) == detectedTopicLimit {
			break
		}
	}

	counts := detect.CountConfidence(text)
	engagement := detect.EngagementScore(counts)
	misconceptions := detect.Misconceptions(text)
	strengths := detect.Strengths(text)

	extractedSummary := "Topics covered: General problem solving"
	if len(detectedTopics) > 0 {
		extractedSummary = "Topics covered: " + strings.Join(detectedTopics, ", ")
	}

	// Seed accumulators for every known topic and every detected topic, so
	// turn attribution can update both.
	signals := make(map[string]*detect.Signals)
	for _, known := range req.KnownTopics {
		name := strings.TrimSpace(known.TopicName)
		if name == "" {
			continue
		}
		signals[name] = &detect.Signals{}
	}
	for _, t := range detectedTopics {
		if _, ok := signals[t]; !ok {
			signals[t] = &detect.Signals{}
		}
	}

	for _, turn := range turns {
		detect.AccumulateTurn(signals, e.tax, turn)
	}

	// Repeated-error boost: a misconception seen in recent sessions bumps
	// the repeat counter on every detected topic, not just its own. Blunt
	// on purpose; precise attribution is not available from transcripts.
	recentMis := make(map[string]int)
	for i, s := range req.RecentSessions {
		if i == repeatWindow {
			break
		}
		for _, m := range s.DetectedMisconceptions {
			recentMis[m]++
		}
	}
	for _, m := range misconceptions {
		if recentMis[m] == 0 {
			continue
		}
		for _, t := range detectedTopics {
			if _, ok := signals[t]; !ok {
				signals[t] = &detect.Signals{}
			}
			signals[t].RepeatedErrorCount++
		}
	}

	knownByName := make(map[string]TopicState, len(req.KnownTopics))
	for _, kt := range req.KnownTopics {
		knownByName[kt.TopicName] = kt
	}

	activeSet := make(map[string]bool)
	for _, t := range detectedTopics {
		activeSet[t] = true
	}
	for name, sig := range signals {
		if sig.Active() {
			activeSet[name] = true
		}
	}
	activeTopics := make([]string, 0, len(activeSet))
	for name := range activeSet {
		activeTopics = append(activeTopics, name)
	}
	sort.Strings(activeTopics)

	perTopicUpdates := make(map[string]TopicUpdate, len(activeTopics))
	for _, topic := range activeTopics {
		sig := signals[topic]
		if sig == nil {
			sig = &detect.Signals{}
		}
		prevMastery, prevConfidence := defaultMastery, defaultConfidence
		if known, ok := knownByName[topic]; ok {
			prevMastery = known.MasteryScore
			prevConfidence = known.ConfidenceScore
		}
		newMastery, newConfidence, explanation := growth.Update(prevMastery, prevConfidence, *sig, e.cfg)
		perTopicUpdates[topic] = TopicUpdate{
			PreviousMastery:    prevMastery,
			NewMastery:         newMastery,
			PreviousConfidence: prevConfidence,
			NewConfidence:      newConfidence,
			Explanation:        explanation,
		}
	}

	parentSummary := "Today we worked on problem solving."
	if len(detectedTopics) > 0 {
		parentSummary = fmt.Sprintf("Today we worked on %s.", strings.Join(head(detectedTopics, 3), ", "))
	}
	if counts.Positive >= counts.Negative {
		parentSummary += " Your student showed growing confidence."
	} else {
		parentSummary += " We identified a few areas to strengthen."
	}

	misLabel := "none detected"
	if len(misconceptions) > 0 {
		misLabel = strings.Join(misconceptions, ", ")
	}
	tutorInsight := fmt.Sprintf(
		"Signals: engagement=%d/100, confidence_pos=%d, confidence_neg=%d, avoidance=%d. Misconceptions: %s.",
		engagement, counts.Positive, counts.Negative, counts.Avoidance, misLabel,
	)

	recommended := recommendNextTargets(detectedTopics, knownByName)

	mentalBlocks := e.mentalBlockCandidates(misconceptions, req.RecentSessions, counts.Avoidance)

	activeSignals := make(map[string]*detect.Signals, len(activeTopics))
	for _, topic := range activeTopics {
		if sig, ok := signals[topic]; ok {
			activeSignals[topic] = sig
		}
	}

	return SessionResult{
		ExtractedSummary:       extractedSummary,
		DetectedTopics:         detectedTopics,
		DetectedMisconceptions: misconceptions,
		DetectedStrengths:      strengths,
		EngagementScore:        engagement,
		ParentSummary:          parentSummary,
		TutorInsight:           tutorInsight,
		RecommendedNextTargets: recommended,
		PerTopicSignals:        activeSignals,
		PerTopicUpdates:        perTopicUpdates,
		MentalBlockCandidates:  mentalBlocks,
		Debug: SessionDebug{
			TurnCount:   len(turns),
			TopicScores: headScores(ranked, 10),
			Config:      e.cfg,
		},
	}
}

// recommendNextTargets picks up to three topics, lowest previous mastery
// first (ties by name): detected topics first, then backfill from all
// known topics until three or exhausted.
func recommendNextTargets(detected []string, known map[string]TopicState) []string {
	prevMastery := func(name string) int {
		if kt, ok := known[name]; ok {
			return kt.MasteryScore
		}
		return defaultMastery
	}
	byMastery := func(names []string) {
		sort.Slice(names, func(i, j int) bool {
			mi, mj := prevMastery(names[i]), prevMastery(names[j])
			if mi != mj {
				return mi < mj
			}
			return names[i] < names[j]
		})
	}

	rec := make([]string, len(detected))
	copy(rec, detected)
	byMastery(rec)
	if len(rec) > 3 {
		rec = rec[:3]
	}
	if len(rec) < 3 {
		allKnown := make([]string, 0, len(known))
		for name := range known {
			allKnown = append(allKnown, name)
		}
		byMastery(allKnown)
		chosen := make(map[string]bool, len(rec))
		for _, r := range rec {
			chosen[r] = true
		}
		for _, name := range allKnown {
			if chosen[name] {
				continue
			}
			rec = append(rec, name)
			if len(rec) == 3 {
				break
			}
		}
	}
	return rec
}

// mentalBlockCandidates proposes escalation for misconceptions that either
// recur across the mental-block window or co-occur with avoidance language.
func (e *Extractor) mentalBlockCandidates(misconceptions []string, recent []SessionRecord, avoidance int) []MentalBlockCandidate {
	priorCount := make(map[string]int, len(misconceptions))
	for _, m := range misconceptions {
		priorCount[m] = 0
	}
	for i, s := range recent {
		if i == mentalBlockWindow {
			break
		}
		for _, m := range s.DetectedMisconceptions {
			if _, tracked := priorCount[m]; tracked {
				priorCount[m]++
			}
		}
	}

	var out []MentalBlockCandidate
	for _, m := range misconceptions {
		sessionCount := priorCount[m] + 1 // prior occurrences plus this session
		if sessionCount < e.cfg.MentalBlockSessionThreshold && avoidance == 0 {
			continue
		}
		initial := e.cfg.MentalBlockBaseSeverity
		repeatDelta := e.cfg.MentalBlockRepeatDelta
		if avoidance > 0 {
			initial += e.cfg.MentalBlockAvoidanceBonus
			repeatDelta += e.cfg.MentalBlockAvoidanceBonus
		}
		out = append(out, MentalBlockCandidate{
			Description:         m,
			SessionCount:        sessionCount,
			AvoidanceSignals:    avoidance,
			InitialSeverity:     initial,
			RepeatSeverityDelta: repeatDelta,
		})
	}
	return out
}
