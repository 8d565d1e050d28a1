package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/ports"
)

// Wellness is the application state shared by the TUI, the CLI and the MCP
// server: the session's mood log, the screen navigator and the exercise
// runner. It implements ports.WellnessProvider.
type Wellness struct {
	mu        sync.Mutex
	checkins  *CheckinService
	exercises *ExerciseService
	nav       *domain.Navigator
	storage   ports.Storage
	clock     ports.Clock
}

// Ensure Wellness implements ports.WellnessProvider.
var _ ports.WellnessProvider = (*Wellness)(nil)

// NewWellness wires the application state. storage may be nil, in which
// case nothing is journaled and Stats only reflects the mood log.
func NewWellness(storage ports.Storage, catalog ports.ExerciseCatalog, clock ports.Clock) *Wellness {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Wellness{
		checkins:  NewCheckinService(storage, clock),
		exercises: NewExerciseService(storage, catalog, clock),
		nav:       domain.NewNavigator(),
		storage:   storage,
		clock:     clock,
	}
}

// Checkins exposes the check-in service.
func (w *Wellness) Checkins() *CheckinService {
	return w.checkins
}

// Exercises exposes the exercise service.
func (w *Wellness) Exercises() *ExerciseService {
	return w.exercises
}

// Now returns the current time on the service clock.
func (w *Wellness) Now() time.Time {
	return w.clock.Now()
}

// LogMood records a check-in.
func (w *Wellness) LogMood(ctx context.Context, mood domain.Mood) (domain.CheckinResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checkins.LogMood(ctx, mood)
}

// GetPlan recommends exercises for mood and need.
func (w *Wellness) GetPlan(mood domain.Mood, need domain.Need) domain.Plan {
	return domain.Recommend(mood, need)
}

// StartExercise runs kind for total seconds (zero for the default length).
func (w *Wellness) StartExercise(ctx context.Context, kind domain.ExerciseKind, total int) (*TickStream, error) {
	return w.exercises.Start(ctx, kind, total)
}

// PreviewExercise returns the spec kind would run with.
func (w *Wellness) PreviewExercise(kind domain.ExerciseKind, total int) (domain.ExerciseSpec, error) {
	return w.exercises.Preview(kind, total)
}

// RequestNavigation queues a screen change for the next render.
func (w *Wellness) RequestNavigation(screen domain.Screen) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nav.RequestNavigation(screen)
}

// ApplyNavigation applies any pending request and returns the current screen.
func (w *Wellness) ApplyNavigation() domain.Screen {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nav.Apply()
}

// BackToHome queues a return to the home screen.
func (w *Wellness) BackToHome() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nav.BackToHome()
}

// CurrentScreen returns the screen being shown.
func (w *Wellness) CurrentScreen() domain.Screen {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nav.Current()
}

// PendingScreen returns the queued screen, if any.
func (w *Wellness) PendingScreen() (domain.Screen, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nav.Pending()
}

// MoodHistoryScores returns check-in scores in insertion order.
func (w *Wellness) MoodHistoryScores() []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checkins.Scores()
}

// Streak returns the consecutive-day streak ending today.
func (w *Wellness) Streak() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checkins.Streak()
}

// History returns every check-in of the session.
func (w *Wellness) History() []domain.MoodEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checkins.History()
}

// Stats aggregates the session journal.
func (w *Wellness) Stats(ctx context.Context) (domain.JournalStats, error) {
	if w.storage == nil {
		return w.statsFromLog(), nil
	}

	counts, err := w.storage.Checkins().CountByMood(ctx)
	if err != nil {
		return domain.JournalStats{}, fmt.Errorf("failed to count check-ins: %w", err)
	}
	avg, err := w.storage.Checkins().AverageScore(ctx)
	if err != nil {
		return domain.JournalStats{}, fmt.Errorf("failed to average scores: %w", err)
	}
	entries, err := w.storage.Checkins().FindAll(ctx)
	if err != nil {
		return domain.JournalStats{}, fmt.Errorf("failed to list check-ins: %w", err)
	}
	days, err := w.storage.Checkins().DistinctDates(ctx)
	if err != nil {
		return domain.JournalStats{}, fmt.Errorf("failed to list check-in days: %w", err)
	}
	completed, cancelled, err := w.exercises.stats(ctx)
	if err != nil {
		return domain.JournalStats{}, fmt.Errorf("failed to count exercise runs: %w", err)
	}
	// The journal lives for one session, so every run is recent.
	runs, err := w.storage.Exercises().FindRecent(ctx, time.Time{})
	if err != nil {
		return domain.JournalStats{}, fmt.Errorf("failed to list exercise runs: %w", err)
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	moods := make([]domain.Mood, len(entries))
	for i, e := range entries {
		moods[i] = e.Mood
	}
	return domain.JournalStats{
		Checkins:           total,
		AverageScore:       avg,
		ByMood:             counts,
		ExercisesCompleted: completed,
		ExercisesCancelled: cancelled,
		Days:               len(days),
		Moods:              moods,
		Runs:               runs,
	}, nil
}

func (w *Wellness) statsFromLog() domain.JournalStats {
	history := w.History()
	stats := domain.JournalStats{
		Checkins: len(history),
		ByMood:   make(map[domain.Mood]int),
	}
	sum := 0
	days := make(map[string]bool)
	for _, e := range history {
		stats.ByMood[e.Mood]++
		stats.Moods = append(stats.Moods, e.Mood)
		days[e.Date] = true
		sum += e.Score
	}
	stats.Days = len(days)
	if len(history) > 0 {
		stats.AverageScore = float64(sum) / float64(len(history))
	}
	return stats
}
