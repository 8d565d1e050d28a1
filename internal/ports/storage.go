// Package ports defines the interfaces between the MindMinute services and
// the infrastructure that drives or is driven by them.
package ports

import (
	"context"
	"time"

	"github.com/xvierd/mindminute/internal/domain"
)

// CheckinRepository journals mood check-ins.
// This is a driven port (implemented by adapters).
type CheckinRepository interface {
	// Save appends a check-in to the journal.
	Save(ctx context.Context, entry domain.MoodEntry) error

	// FindAll returns every check-in in insertion order.
	FindAll(ctx context.Context) ([]domain.MoodEntry, error)

	// CountByMood returns the number of check-ins per mood.
	CountByMood(ctx context.Context) (map[domain.Mood]int, error)

	// AverageScore returns the mean score, or 0 with no check-ins.
	AverageScore(ctx context.Context) (float64, error)

	// DistinctDates returns every calendar day with a check-in.
	// Stored dates that do not parse are skipped.
	DistinctDates(ctx context.Context) ([]time.Time, error)
}

// ExerciseRepository journals timed exercise runs.
// This is a driven port (implemented by adapters).
type ExerciseRepository interface {
	// Save records a new run.
	Save(ctx context.Context, run *domain.ExerciseRun) error

	// Update stores the run's latest status.
	Update(ctx context.Context, run *domain.ExerciseRun) error

	// FindRecent returns runs started at or after since, newest first.
	FindRecent(ctx context.Context, since time.Time) ([]*domain.ExerciseRun, error)

	// CountByStatus returns how many runs ended with status.
	CountByStatus(ctx context.Context, status domain.RunStatus) (int, error)
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	Checkins() CheckinRepository
	Exercises() ExerciseRepository

	// Close releases the underlying database.
	Close() error

	// Migrate creates the schema.
	Migrate() error
}
