package detect

import (
	"reflect"
	"testing"
)

func TestSplitTurns_Basic(t *testing.T) {
	text := "Tutor: Let's look at fractions.\nStudent: Okay.\nParent: He practiced yesterday."
	got := SplitTurns(text)
	want := []Turn{
		{Speaker: SpeakerTutor, Text: "Let's look at fractions."},
		{Speaker: SpeakerStudent, Text: "Okay."},
		{Speaker: SpeakerParent, Text: "He practiced yesterday."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitTurns = %v, want %v", got, want)
	}
}

func TestSplitTurns_ContinuationLines(t *testing.T) {
	text := "Student: I tried the problem\nbut got stuck halfway.\nTutor: Show me."
	got := SplitTurns(text)
	if len(got) != 2 {
		t.Fatalf("got %d turns, want 2", len(got))
	}
	if got[0].Text != "I tried the problem but got stuck halfway." {
		t.Errorf("continuation not merged: %q", got[0].Text)
	}
}

func TestSplitTurns_CaseInsensitivePrefix(t *testing.T) {
	got := SplitTurns("tutor: hello\nSTUDENT:  hi there")
	if len(got) != 2 {
		t.Fatalf("got %d turns, want 2", len(got))
	}
	if got[0].Speaker != SpeakerTutor || got[1].Speaker != SpeakerStudent {
		t.Errorf("speakers = %v, %v", got[0].Speaker, got[1].Speaker)
	}
	if got[1].Text != "hi there" {
		t.Errorf("text = %q, want %q", got[1].Text, "hi there")
	}
}

func TestSplitTurns_NoPrefixFallback(t *testing.T) {
	got := SplitTurns("just some raw notes\nwith no speakers")
	if len(got) != 1 {
		t.Fatalf("got %d turns, want 1", len(got))
	}
	if got[0].Speaker != SpeakerUnknown {
		t.Errorf("speaker = %v, want Unknown", got[0].Speaker)
	}
	if got[0].Text != "just some raw notes with no speakers" {
		t.Errorf("text = %q", got[0].Text)
	}
}

func TestSplitTurns_Empty(t *testing.T) {
	if got := SplitTurns("   \n  \n"); len(got) != 0 {
		t.Errorf("got %d turns, want 0", len(got))
	}
}

func TestSplitTurns_EmptyTurnDropped(t *testing.T) {
	got := SplitTurns("Tutor:\nStudent: 42")
	if len(got) != 1 {
		t.Fatalf("got %d turns, want 1", len(got))
	}
	if got[0].Speaker != SpeakerStudent {
		t.Errorf("speaker = %v, want Student", got[0].Speaker)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"a\tb\nc", "a b c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
