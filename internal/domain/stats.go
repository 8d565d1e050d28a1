package domain

// JournalStats aggregates the check-ins and exercise runs of the session.
type JournalStats struct {
	Checkins           int
	AverageScore       float64
	ByMood             map[Mood]int
	ExercisesCompleted int
	ExercisesCancelled int

	// Days is the number of distinct calendar days with a check-in.
	Days int
	// Moods lists every check-in mood, oldest first.
	Moods []Mood
	// Runs holds the exercise runs of the session, newest first.
	Runs []*ExerciseRun
}

// TopMood returns the most frequent mood, preferring taxonomy order on ties.
func (s JournalStats) TopMood() (Mood, bool) {
	var top Mood
	best := 0
	for _, m := range AllMoods {
		if n := s.ByMood[m]; n > best {
			top, best = m, n
		}
	}
	return top, best > 0
}
