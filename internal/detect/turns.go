package detect

import (
	"regexp"
	"strings"
)

// Speaker identifies who produced a transcript turn.
type Speaker string

const (
	SpeakerTutor   Speaker = "Tutor"
	SpeakerStudent Speaker = "Student"
	SpeakerParent  Speaker = "Parent"
	SpeakerUnknown Speaker = "Unknown"
)

// Turn is a contiguous block of transcript text attributed to one speaker.
type Turn struct {
	Speaker Speaker
	Text    string
}

var (
	speakerRe = regexp.MustCompile(`(?i)^\s*(Tutor|Student|Parent)\s*:\s*(.*)$`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// Normalize collapses runs of whitespace to single spaces and trims the ends.
func Normalize(text string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

// SplitTurns parses a transcript into speaker turns. A line matching
// "Speaker: text" starts a new turn; other lines append to the current one.
// A transcript with no speaker prefixes at all yields a single Unknown turn.
func SplitTurns(text string) []Turn {
	var turns []Turn

	current := Turn{Speaker: SpeakerUnknown}
	flush := func() {
		if strings.TrimSpace(current.Text) != "" {
			turns = append(turns, Turn{Speaker: current.Speaker, Text: Normalize(current.Text)})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if m := speakerRe.FindStringSubmatch(line); m != nil {
			flush()
			current = Turn{Speaker: titleSpeaker(m[1]), Text: m[2]}
			continue
		}
		current.Text += "\n" + line
	}
	flush()

	if len(turns) == 0 && strings.TrimSpace(text) != "" {
		turns = []Turn{{Speaker: SpeakerUnknown, Text: Normalize(text)}}
	}
	return turns
}

func titleSpeaker(s string) Speaker {
	switch strings.ToLower(s) {
	case "tutor":
		return SpeakerTutor
	case "student":
		return SpeakerStudent
	case "parent":
		return SpeakerParent
	}
	return SpeakerUnknown
}
