package detect

import (
	"reflect"
	"testing"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/taxonomy"
)

func TestDetectTopics_StructuralDetectors(t *testing.T) {
	scores := DetectTopics(taxonomy.Default(), "The shirt is 50% off and 1/2 price.")

	fr, ok := scores["Fractions"]
	if !ok {
		t.Fatal("Fractions not detected")
	}
	if fr.HitCount != 2 {
		t.Errorf("Fractions hits = %d, want 2", fr.HitCount)
	}

	pc, ok := scores["Percents"]
	if !ok {
		t.Fatal("Percents not detected")
	}
	// one keyword hit for "%" plus the structural detector
	if pc.HitCount != 2 {
		t.Errorf("Percents hits = %d, want 2", pc.HitCount)
	}
}

func TestDetectTopics_AssignmentToken(t *testing.T) {
	scores := DetectTopics(taxonomy.Default(), "Solve for x = 5")
	eq, ok := scores["Equations"]
	if !ok {
		t.Fatal("Equations not detected")
	}
	// "solve for" + "x =" keywords, plus the structural assignment token
	if eq.HitCount != 3 {
		t.Errorf("Equations hits = %d, want 3", eq.HitCount)
	}
}

func TestDetectTopics_KeywordOccurrencesCounted(t *testing.T) {
	scores := DetectTopics(taxonomy.Default(), "quadratic this, quadratic that, and a parabola")
	q := scores["Quadratics"]
	if q == nil {
		t.Fatal("Quadratics not detected")
	}
	if q.HitCount != 3 {
		t.Errorf("Quadratics hits = %d, want 3", q.HitCount)
	}
	if q.ParentTopic != string(taxonomy.DomainAlgebra) {
		t.Errorf("parent = %q, want %q", q.ParentTopic, taxonomy.DomainAlgebra)
	}
}

func TestDetectTopics_NoMatches(t *testing.T) {
	scores := DetectTopics(taxonomy.Default(), "we talked about the weather")
	if len(scores) != 0 {
		t.Errorf("got %d topics, want 0", len(scores))
	}
}

func TestRankByHits_Ordering(t *testing.T) {
	scores := map[string]*TopicScore{
		"B": {TopicName: "B", HitCount: 2},
		"A": {TopicName: "A", HitCount: 2},
		"C": {TopicName: "C", HitCount: 5},
	}
	ranked := RankByHits(scores)
	var names []string
	for _, s := range ranked {
		names = append(names, s.TopicName)
	}
	want := []string{"C", "A", "B"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestRankByHitsThenParent_Ordering(t *testing.T) {
	scores := map[string]*TopicScore{
		"X": {TopicName: "X", ParentTopic: "Geometry", HitCount: 1},
		"Y": {TopicName: "Y", ParentTopic: "Algebra", HitCount: 1},
		"Z": {TopicName: "Z", ParentTopic: "Algebra", HitCount: 1},
	}
	ranked := RankByHitsThenParent(scores)
	var names []string
	for _, s := range ranked {
		names = append(names, s.TopicName)
	}
	want := []string{"Y", "Z", "X"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestTopicsInText_SortedDeduped(t *testing.T) {
	got := TopicsInText(taxonomy.Default(), "the fraction 3/4 has a numerator")
	want := []string{"Fractions"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopicsInText = %v, want %v", got, want)
	}

	got = TopicsInText(taxonomy.Default(), "graph the equation of the circle")
	want = []string{"Circles", "Coordinate Geometry", "Equations"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopicsInText = %v, want %v", got, want)
	}
}
