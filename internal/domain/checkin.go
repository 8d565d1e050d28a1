package domain

import "time"

const (
	// DateLayout is the calendar-day key stored on every check-in.
	DateLayout = "2006-01-02"
	// TimeLayout is the wall-clock time shown next to a check-in.
	TimeLayout = "03:04 PM"
)

// MoodEntry is a single check-in. Score is captured when the entry is
// created and is never recomputed.
type MoodEntry struct {
	ID       string
	Date     string
	Time     string
	Mood     Mood
	Score    int
	LoggedAt time.Time
}

// NewMoodEntry creates a check-in for mood at the given instant.
func NewMoodEntry(mood Mood, at time.Time) (MoodEntry, error) {
	score, err := ScoreOf(mood)
	if err != nil {
		return MoodEntry{}, err
	}
	return MoodEntry{
		ID:       generateID(),
		Date:     at.Format(DateLayout),
		Time:     at.Format(TimeLayout),
		Mood:     mood,
		Score:    score,
		LoggedAt: at,
	}, nil
}

// Day parses the entry's calendar date.
func (e MoodEntry) Day() (time.Time, error) {
	return time.Parse(DateLayout, e.Date)
}

// MoodLog is the append-only journal of check-ins for the current session.
// Entries keep insertion order; duplicates per day are expected.
type MoodLog struct {
	entries []MoodEntry
}

// NewMoodLog creates an empty log.
func NewMoodLog() *MoodLog {
	return &MoodLog{}
}

// Append adds an entry to the end of the log.
func (l *MoodLog) Append(entry MoodEntry) {
	l.entries = append(l.entries, entry)
}

// Len returns the number of entries.
func (l *MoodLog) Len() int {
	return len(l.entries)
}

// All returns a copy of the entries in insertion order.
func (l *MoodLog) All() []MoodEntry {
	out := make([]MoodEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent entry, if any.
func (l *MoodLog) Last() (MoodEntry, bool) {
	if len(l.entries) == 0 {
		return MoodEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// ScoresInOrder returns the score of every entry in insertion order.
func (l *MoodLog) ScoresInOrder() []int {
	scores := make([]int, len(l.entries))
	for i, e := range l.entries {
		scores[i] = e.Score
	}
	return scores
}

// DistinctDates returns each calendar day that has at least one check-in,
// in first-seen order. Entries whose date does not parse are skipped.
func (l *MoodLog) DistinctDates() []time.Time {
	seen := make(map[string]struct{}, len(l.entries))
	var dates []time.Time
	for _, e := range l.entries {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		day, err := e.Day()
		if err != nil {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, day)
	}
	return dates
}

// CheckinResult is what the user sees after logging a mood.
type CheckinResult struct {
	Entry       MoodEntry
	Streak      int
	Affirmation string
}
