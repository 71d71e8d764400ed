package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/detect"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/taxonomy"
)

var examFocusRe = regexp.MustCompile(`(?i)\bSAT\b|\bACT\b`)

const fallbackGoalDescription = "Build consistent math confidence and mastery over time."

// ExtractTrial runs one-shot, history-free intake: goals and struggles from
// cue lines, an inferred curriculum roadmap, seeded topic scores, and three
// templated milestones per goal.
func (e *Extractor) ExtractTrial(req TrialRequest) TrialResult {
	text := req.TranscriptText
	goalLines := detect.GoalLines(text)
	struggleLines := detect.StruggleLines(text)
	topicScores := detect.DetectTopics(e.tax, text)

	var goals []Goal
	for _, gl := range goalLines {
		goals = append(goals, Goal{
			Description:       gl,
			MeasurableOutcome: "Show measurable improvement across weekly checks (accuracy + independence).",
			Status:            "not started",
		})
	}
	for _, sl := range struggleLines {
		// Struggle statements become implicit goals.
		goals = append(goals, Goal{
			Description:       "Reduce recurring difficulty: " + sl,
			MeasurableOutcome: "Student solves similar problems with 80%+ accuracy and 1 hint or fewer.",
			Status:            "not started",
		})
	}
	if len(goals) == 0 {
		goals = append(goals, Goal{
			Description:       fallbackGoalDescription,
			MeasurableOutcome: "Mastery and confidence trend upward across the topic map.",
			Status:            "not started",
		})
	}

	mentioned := detect.RankByHitsThenParent(topicScores)
	roadmap := e.inferRoadmap(req.Grade, req.Curriculum, req.TargetExam, mentioned)

	mentionedNames := make(map[string]bool, len(mentioned))
	for _, m := range mentioned {
		mentionedNames[m.TopicName] = true
	}
	topics := make([]TopicState, 0, len(roadmap.Topics))
	for _, rt := range roadmap.Topics {
		// Seed mastery a little higher for topics the trial actually touched.
		seed := 15
		if mentionedNames[rt.TopicName] {
			seed = 25
		}
		topics = append(topics, TopicState{
			TopicName:       rt.TopicName,
			ParentTopic:     rt.ParentTopic,
			MasteryScore:    seed,
			ConfidenceScore: 50,
		})
	}

	var summaryBits []string
	if len(goalLines) > 0 {
		summaryBits = append(summaryBits, "Goals mentioned: "+strings.Join(head(goalLines, 3), ", "))
	}
	if len(struggleLines) > 0 {
		summaryBits = append(summaryBits, "Common challenges: "+strings.Join(head(struggleLines, 3), ", "))
	}
	if len(mentioned) > 0 {
		names := make([]string, 0, 4)
		for _, m := range mentioned {
			names = append(names, m.TopicName)
			if len(names) == 4 {
				break
			}
		}
		summaryBits = append(summaryBits, "Topics discussed: "+strings.Join(names, ", "))
	}
	summary := detect.Normalize(strings.Join(summaryBits, " • "))
	if summary == "" {
		summary = "Trial goals and roadmap captured."
	}

	return TrialResult{
		LongTermGoalSummary:       summary,
		Goals:                     goals,
		Topics:                    topics,
		Milestones:                milestonesFromGoals(goals),
		InferredCurriculumRoadmap: roadmap,
		Debug: TrialDebug{
			TopicScores:   headScores(mentioned, 10),
			GoalLines:     goalLines,
			StruggleLines: struggleLines,
		},
	}
}

// inferRoadmap picks focus domains from the target exam and lists every
// topic under them, mentioned topics first, then parent domain, then name.
func (e *Extractor) inferRoadmap(grade, curriculum, targetExam string, mentioned []*detect.TopicScore) Roadmap {
	exam := detect.Normalize(targetExam)

	var focus []taxonomy.Domain
	if exam != "" && examFocusRe.MatchString(exam) {
		focus = []taxonomy.Domain{
			taxonomy.DomainAlgebra,
			taxonomy.DomainGeometry,
			taxonomy.DomainData,
			taxonomy.DomainWordProblems,
		}
	}
	if len(focus) == 0 {
		focus = []taxonomy.Domain{
			taxonomy.DomainArithmetic,
			taxonomy.DomainAlgebra,
			taxonomy.DomainGeometry,
		}
	}

	mentionedSet := make(map[string]bool, len(mentioned))
	for _, m := range mentioned {
		mentionedSet[m.ParentTopic+"\x00"+m.TopicName] = true
	}

	var topics []RoadmapTopic
	for _, d := range focus {
		for _, tp := range e.tax.TopicsIn(d) {
			topics = append(topics, RoadmapTopic{ParentTopic: string(d), TopicName: tp.Name})
		}
	}
	sortRoadmapTopics(topics, mentionedSet)

	focusNames := make([]string, len(focus))
	for i, d := range focus {
		focusNames[i] = string(d)
	}
	return Roadmap{
		Grade:        detect.Normalize(grade),
		Curriculum:   detect.Normalize(curriculum),
		TargetExam:   exam,
		FocusDomains: focusNames,
		Topics:       topics,
	}
}

// milestonesFromGoals emits the three fixed milestone stages for each of
// the first 10 goals. Purely templated, independent of transcript content.
func milestonesFromGoals(goals []Goal) []Milestone {
	var out []Milestone
	for i, g := range goals {
		if i == 10 {
			break
		}
		desc := strings.TrimSpace(g.Description)
		if desc == "" {
			continue
		}
		out = append(out,
			Milestone{
				GoalDescription: desc,
				Milestone:       "Baseline check-in and identify top 3 gaps",
				SuccessCriteria: "Tutor has a clear topic gap list + baseline accuracy estimate",
			},
			Milestone{
				GoalDescription: desc,
				Milestone:       "Midpoint: consistent accuracy with light prompting",
				SuccessCriteria: "Student solves most problems with 1 hint or fewer",
			},
			Milestone{
				GoalDescription: desc,
				Milestone:       "Target: independent solving under time pressure",
				SuccessCriteria: "Student solves independently with minimal hesitation",
			},
		)
	}
	return out
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func headScores(items []*detect.TopicScore, n int) []*detect.TopicScore {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// sortRoadmapTopics orders roadmap slots with transcript-mentioned topics
// first, then by parent domain, then topic name.
func sortRoadmapTopics(topics []RoadmapTopic, mentioned map[string]bool) {
	sort.Slice(topics, func(i, j int) bool {
		mi := mentioned[topics[i].ParentTopic+"\x00"+topics[i].TopicName]
		mj := mentioned[topics[j].ParentTopic+"\x00"+topics[j].TopicName]
		if mi != mj {
			return mi
		}
		if topics[i].ParentTopic != topics[j].ParentTopic {
			return topics[i].ParentTopic < topics[j].ParentTopic
		}
		return topics[i].TopicName < topics[j].TopicName
	})
}
