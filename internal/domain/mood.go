package domain

import "strings"

// Mood is one of the five self-reported emotional states.
type Mood string

const (
	MoodGood        Mood = "😊 Good"
	MoodOkay        Mood = "😐 Okay"
	MoodStressed    Mood = "😫 Stressed"
	MoodOverwhelmed Mood = "😞 Overwhelmed"
	MoodTired       Mood = "😴 Tired"
)

// AllMoods lists the taxonomy in the order it is offered to the user.
var AllMoods = []Mood{
	MoodGood,
	MoodOkay,
	MoodStressed,
	MoodOverwhelmed,
	MoodTired,
}

type moodInfo struct {
	score        int
	affirmations []string
}

var moodCatalog = map[Mood]moodInfo{
	MoodGood: {
		score: 4,
		affirmations: []string{
			"Keep that glow going ✨",
			"You’re building a version of you that you’ll be proud of.",
			"Take a second to notice how good this feels.",
		},
	},
	MoodOkay: {
		score: 3,
		affirmations: []string{
			"You don’t have to be amazing today. Showing up is enough.",
			"‘Okay’ is a perfectly valid place to be.",
			"Tiny steps still count as progress.",
		},
	},
	MoodStressed: {
		score: 2,
		affirmations: []string{
			"You’re allowed to pause. The world can wait a minute.",
			"Your best today might look different than yesterday, and that’s okay.",
			"You’ve survived 100% of your hard days so far.",
		},
	},
	MoodOverwhelmed: {
		score: 1,
		affirmations: []string{
			"You don’t have to handle everything at once.",
			"You are not your to-do list.",
			"Even on the days you feel like you’re failing, you’re still learning.",
		},
	},
	MoodTired: {
		score: 2,
		affirmations: []string{
			"Rest is productive too.",
			"You deserve gentleness, especially from yourself.",
			"Slow is still a speed.",
		},
	},
}

// IsValid reports whether m belongs to the taxonomy.
func (m Mood) IsValid() bool {
	_, ok := moodCatalog[m]
	return ok
}

// Word returns the label without its emoji, e.g. "Stressed".
func (m Mood) Word() string {
	s := string(m)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Emoji returns the leading emoji of the label.
func (m Mood) Emoji() string {
	s := string(m)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return ""
}

// ScoreOf returns the wellbeing score (1-4) for a mood.
func ScoreOf(m Mood) (int, error) {
	info, ok := moodCatalog[m]
	if !ok {
		return 0, &UnknownMoodError{Mood: m}
	}
	return info.score, nil
}

// MustScoreOf is ScoreOf for callers that already hold a validated mood.
// It panics on an unknown mood.
func MustScoreOf(m Mood) int {
	score, err := ScoreOf(m)
	if err != nil {
		panic(err)
	}
	return score
}

// AffirmationsOf returns the affirmation pool for a mood. The returned
// slice is a copy and is never empty.
func AffirmationsOf(m Mood) ([]string, error) {
	info, ok := moodCatalog[m]
	if !ok {
		return nil, &UnknownMoodError{Mood: m}
	}
	out := make([]string, len(info.affirmations))
	copy(out, info.affirmations)
	return out, nil
}

// ParseMood accepts either the full label ("😫 Stressed") or the bare word
// ("stressed"), case-insensitively.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	for _, m := range AllMoods {
		if string(m) == s || strings.EqualFold(m.Word(), s) {
			return m, nil
		}
	}
	return "", &UnknownMoodError{Mood: Mood(s)}
}
