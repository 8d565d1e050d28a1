package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/xvierd/mindminute/internal/adapters/storage"
	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/ports"
	"github.com/xvierd/mindminute/internal/routine"
	"github.com/xvierd/mindminute/internal/services"
)

// instantClock never waits between ticks.
type instantClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *instantClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *instantClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *instantClock) NewTicker(time.Duration) ports.Ticker {
	ch := make(chan time.Time)
	close(ch)
	return instantTicker{ch: ch}
}

type instantTicker struct{ ch chan time.Time }

func (t instantTicker) C() <-chan time.Time { return t.ch }
func (t instantTicker) Stop()               {}

// setupApp wires the application the way the CLI does, over an in-memory journal.
func setupApp(t *testing.T, start time.Time) (*services.Wellness, *instantClock) {
	t.Helper()

	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	clock := &instantClock{now: start}
	return services.NewWellness(store, routine.NewCatalog(config.DefaultConfig()), clock), clock
}

var dayT = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// TestStressedCheckinToBreathing follows a first-time user from check-in to
// the first step of their plan.
func TestStressedCheckinToBreathing(t *testing.T) {
	app, _ := setupApp(t, dayT)
	ctx := context.Background()

	res, err := app.LogMood(ctx, domain.MoodStressed)
	if err != nil {
		t.Fatalf("LogMood() error = %v", err)
	}
	if res.Streak != 1 {
		t.Errorf("streak = %d, want 1", res.Streak)
	}
	if res.Entry.Score != 2 || res.Entry.Date != "2026-03-10" {
		t.Errorf("entry = %+v", res.Entry)
	}

	plan := app.GetPlan(domain.MoodStressed, domain.Need("I really need to calm down"))
	if len(plan.Steps) != 3 {
		t.Fatalf("plan has %d steps, want 3", len(plan.Steps))
	}
	if plan.Steps[0].Target != domain.ScreenBreathing {
		t.Errorf("first step targets %s, want breathing", plan.Steps[0].Target)
	}

	if err := app.RequestNavigation(plan.Steps[0].Target); err != nil {
		t.Fatalf("RequestNavigation() error = %v", err)
	}
	if app.CurrentScreen() != domain.ScreenHome {
		t.Error("navigation should only apply on the next render")
	}
	if got := app.ApplyNavigation(); got != domain.ScreenBreathing {
		t.Errorf("ApplyNavigation() = %s, want breathing", got)
	}
	if got := app.ApplyNavigation(); got != domain.ScreenBreathing {
		t.Errorf("second ApplyNavigation() = %s, want breathing to stay", got)
	}
}

func TestStreakAcrossDays(t *testing.T) {
	app, clock := setupApp(t, dayT)
	ctx := context.Background()

	for day := 1; day <= 3; day++ {
		// Two check-ins on the same day count once.
		for i := 0; i < 2; i++ {
			res, err := app.LogMood(ctx, domain.MoodOkay)
			if err != nil {
				t.Fatal(err)
			}
			if res.Streak != day {
				t.Errorf("day %d: streak = %d", day, res.Streak)
			}
		}
		clock.Advance(24 * time.Hour)
	}

	// Nothing logged on the fourth day yet.
	if got := app.Streak(); got != 0 {
		t.Errorf("Streak() = %d, want 0 before today's check-in", got)
	}

	clock.Advance(24 * time.Hour)
	res, err := app.LogMood(ctx, domain.MoodGood)
	if err != nil {
		t.Fatal(err)
	}
	if res.Streak != 1 {
		t.Errorf("streak after a gap = %d, want 1", res.Streak)
	}

	scores := app.MoodHistoryScores()
	if len(scores) != 7 || scores[6] != 4 {
		t.Errorf("MoodHistoryScores() = %v", scores)
	}
}

func TestExerciseRunsAreJournaled(t *testing.T) {
	app, _ := setupApp(t, dayT)
	ctx := context.Background()

	stream, err := app.StartExercise(ctx, domain.ExerciseBreathing, 30)
	if err != nil {
		t.Fatalf("StartExercise() error = %v", err)
	}

	var ticks []domain.PhaseTick
	for tick := range stream.Ticks() {
		ticks = append(ticks, tick)
	}
	if err := stream.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if len(ticks) != 30 || !ticks[29].Done {
		t.Fatalf("got %d ticks, want 30 ending with Done", len(ticks))
	}
	if ticks[4].Phase != "Hold" || ticks[8].Phase != "Exhale" || ticks[14].Phase != "Inhale" {
		t.Error("breathing ticks should follow the 4-4-6 cycle")
	}

	sos, err := app.StartExercise(ctx, domain.ExerciseSOS, 0)
	if err != nil {
		t.Fatalf("StartExercise(sos) error = %v", err)
	}
	<-sos.Ticks()
	sos.Cancel()
	for range sos.Ticks() {
	}
	if err := sos.Wait(); err == nil {
		t.Error("cancelled exercise should report an error")
	}

	stats, err := app.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.ExercisesCompleted != 1 || stats.ExercisesCancelled != 1 {
		t.Errorf("stats = %+v, want one completed and one cancelled", stats)
	}
	if len(stats.Runs) != 2 {
		t.Errorf("Runs = %d, want 2", len(stats.Runs))
	}
}

func TestJournalStats(t *testing.T) {
	app, _ := setupApp(t, dayT)
	ctx := context.Background()

	for _, m := range []domain.Mood{domain.MoodTired, domain.MoodTired, domain.MoodGood, domain.MoodOverwhelmed} {
		if _, err := app.LogMood(ctx, m); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := app.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Checkins != 4 {
		t.Errorf("Checkins = %d, want 4", stats.Checkins)
	}
	if stats.AverageScore != 2.25 {
		t.Errorf("AverageScore = %v, want 2.25", stats.AverageScore)
	}
	if top, ok := stats.TopMood(); !ok || top != domain.MoodTired {
		t.Errorf("TopMood() = %s, %v", top, ok)
	}
}
