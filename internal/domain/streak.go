package domain

import (
	"fmt"
	"time"
)

// ComputeStreak counts consecutive calendar days, ending at today, that
// appear in dates. If today is absent the streak is 0 even when earlier
// days are present. Each time is compared by its own calendar day, so
// callers may mix parsed dates and local wall-clock times.
func ComputeStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d.Format(DateLayout)] = struct{}{}
	}

	y, m, d := today.Date()
	streak := 0
	for {
		day := time.Date(y, m, d-streak, 12, 0, 0, 0, time.UTC)
		if _, ok := set[day.Format(DateLayout)]; !ok {
			return streak
		}
		streak++
	}
}

// StreakLabel renders a streak as "1 day" or "N days".
func StreakLabel(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
