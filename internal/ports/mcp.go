package ports

import (
	"context"

	"github.com/xvierd/mindminute/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start serves MCP requests until ctx is done or the transport closes.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// WellnessProvider is what the MCP server needs from the services layer.
// This is a driven port (implemented by services.Wellness).
type WellnessProvider interface {
	LogMood(ctx context.Context, mood domain.Mood) (domain.CheckinResult, error)
	GetPlan(mood domain.Mood, need domain.Need) domain.Plan
	Streak() int
	History() []domain.MoodEntry
	MoodHistoryScores() []int
	PreviewExercise(kind domain.ExerciseKind, total int) (domain.ExerciseSpec, error)
	RequestNavigation(screen domain.Screen) error
	ApplyNavigation() domain.Screen
	CurrentScreen() domain.Screen
	Stats(ctx context.Context) (domain.JournalStats, error)
}
