package detect

import (
	"reflect"
	"strings"
	"testing"
)

func TestCountConfidence(t *testing.T) {
	text := "Student: I don't know. This is hard. I hate fractions.\nStudent: Okay, got it."
	c := CountConfidence(text)
	if c.Negative != 2 {
		t.Errorf("negative = %d, want 2", c.Negative)
	}
	if c.Avoidance != 1 {
		t.Errorf("avoidance = %d, want 1", c.Avoidance)
	}
	if c.Positive != 2 {
		t.Errorf("positive = %d, want 2", c.Positive)
	}
}

func TestEngagementScore(t *testing.T) {
	tests := []struct {
		name   string
		counts ConfidenceCounts
		want   int
	}{
		{"neutral", ConfidenceCounts{}, 70},
		{"positive", ConfidenceCounts{Positive: 3}, 82},
		{"mixed", ConfidenceCounts{Positive: 1, Negative: 2, Avoidance: 1}, 52},
		{"floor", ConfidenceCounts{Avoidance: 10}, 0},
		{"ceiling", ConfidenceCounts{Positive: 20}, 100},
	}
	for _, tt := range tests {
		if got := EngagementScore(tt.counts); got != tt.want {
			t.Errorf("%s: EngagementScore = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMisconceptions(t *testing.T) {
	text := "He keeps adding the denominators, and there was a sign error too."
	got := Misconceptions(text)
	want := []string{
		"Adds denominators when working with fractions",
		"Sign error with negatives",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Misconceptions = %v, want %v", got, want)
	}
}

func TestMisconceptions_EachLabelOnce(t *testing.T) {
	text := "cross-multiply here, then cross multiply there"
	got := Misconceptions(text)
	if len(got) != 1 {
		t.Errorf("got %d labels, want 1: %v", len(got), got)
	}
}

func TestStrengths(t *testing.T) {
	got := Strengths("Student: got it! I solved the last one and I double-check my work.")
	want := []string{
		"Understands after explanation",
		"Completes problems to a final answer",
		"Shows self-checking behavior",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strengths = %v, want %v", got, want)
	}

	// "double-checked" misses the word boundary after "check".
	got = Strengths("Student: I double-checked it.")
	if len(got) != 0 {
		t.Errorf("Strengths = %v, want none", got)
	}
}

func TestGoalLines(t *testing.T) {
	text := "Parent: We want to raise his SAT score.\nTutor: Noted.\nStudent: My goal is fewer careless mistakes."
	got := GoalLines(text)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(got), got)
	}
	if got[0] != "Parent: We want to raise his SAT score." {
		t.Errorf("line = %q", got[0])
	}
}

func TestGoalLines_CappedAtTen(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString("I want to do better\n")
	}
	if got := GoalLines(b.String()); len(got) != 10 {
		t.Errorf("got %d lines, want 10", len(got))
	}
}

func TestStruggleLines(t *testing.T) {
	got := StruggleLines("Student: Fractions are hard for me.\nTutor: Which part is confusing?")
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(got), got)
	}
}
